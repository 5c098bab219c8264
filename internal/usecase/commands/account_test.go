//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/password"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	cmds    commands.AccountCommands
	session auth.Session
	find    func(t *testing.T) *user.User
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	users := newSeededUsers(t)
	email, err := user.NewEmail("test@example.com")
	require.NoError(t, err)
	demo, err := users.FindByEmail(context.Background(), email)
	require.NoError(t, err)

	return &accountFixture{
		cmds:    commands.NewAccountCommands(users, clock.NewMockClock(builder.Today), slog.Default()),
		session: auth.NewSession(demo.ID(), demo.Email().Value(), "token"),
		find: func(t *testing.T) *user.User {
			t.Helper()
			u, err := users.FindByID(context.Background(), demo.ID())
			require.NoError(t, err)
			return u
		},
	}
}

func TestAccountCommands_ChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		req     reqdto.ChangePasswordRequest
		wantErr error
	}{
		{
			name:    "confirmation mismatch",
			req:     reqdto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: builder.StrongPassword, ConfirmPassword: "Other!Pass1"},
			wantErr: commands.ErrPasswordConfirmMismatch,
		},
		{
			name:    "weak new password",
			req:     reqdto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "weakpass", ConfirmPassword: "weakpass"},
			wantErr: commands.ErrWeakPassword,
		},
		{
			name:    "wrong current password",
			req:     reqdto.ChangePasswordRequest{CurrentPassword: "not-it", NewPassword: builder.StrongPassword, ConfirmPassword: builder.StrongPassword},
			wantErr: commands.ErrCurrentPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)

			err := f.cmds.ChangePassword(context.Background(), f.session, tt.req)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}

	t.Run("stores the new hash", func(t *testing.T) {
		f := newAccountFixture(t)

		err := f.cmds.ChangePassword(context.Background(), f.session, reqdto.ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     builder.StrongPassword,
			ConfirmPassword: builder.StrongPassword,
		})

		require.NoError(t, err)
		assert.NoError(t, password.ComparePassword(f.find(t).PasswordHash(), builder.StrongPassword))
	})
}

func TestAccountCommands_UpdateProfile(t *testing.T) {
	t.Run("saves the profile", func(t *testing.T) {
		f := newAccountFixture(t)

		view, err := f.cmds.UpdateProfile(context.Background(), f.session, reqdto.UpdateProfileRequest{
			FirstName: "Alex",
			LastName:  "Smith",
			Email:     "alex@example.com",
			Bio:       "Event planner",
		})

		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", view.Email)
		assert.Equal(t, "Alex", f.find(t).Profile().FirstName)
	})

	t.Run("missing first name is invalid", func(t *testing.T) {
		f := newAccountFixture(t)

		_, err := f.cmds.UpdateProfile(context.Background(), f.session, reqdto.UpdateProfileRequest{Email: "test@example.com"})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestAccountCommands_UpdateNotifications(t *testing.T) {
	f := newAccountFixture(t)

	view, err := f.cmds.UpdateNotifications(context.Background(), f.session, reqdto.UpdateNotificationsRequest{Email: true, Marketing: true})

	require.NoError(t, err)
	assert.True(t, view.Notifications.Email)
	assert.False(t, view.Notifications.SMS)
	assert.True(t, view.Notifications.Marketing)
}

func TestAccountCommands_DeleteAccount(t *testing.T) {
	t.Run("removes the account", func(t *testing.T) {
		f := newAccountFixture(t)

		require.NoError(t, f.cmds.DeleteAccount(context.Background(), f.session))

		err := f.cmds.ChangePassword(context.Background(), f.session, reqdto.ChangePasswordRequest{
			CurrentPassword: "password123", NewPassword: builder.StrongPassword, ConfirmPassword: builder.StrongPassword,
		})
		assert.True(t, errs.Is(err, commands.ErrAccountNotFound))
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		f := newAccountFixture(t)
		stranger := auth.NewSession(uuid.New(), "ghost@example.com", "token")

		err := f.cmds.DeleteAccount(context.Background(), stranger)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
