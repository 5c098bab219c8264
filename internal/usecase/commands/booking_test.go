//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/infra/memory"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCommands_Cancel(t *testing.T) {
	owner := auth.NewSession(uuid.New(), "owner@example.com", "token")
	record := builder.NewBookingBuilder().BuildRecord(builder.GardenPavilion(), owner.UserID())

	tests := []struct {
		name    string
		caller  auth.Session
		id      string
		today   time.Time
		wantErr error
	}{
		{
			name:   "upcoming booking is cancelled",
			caller: owner,
			id:     record.ID,
			today:  builder.Today,
		},
		{
			name:   "active booking is cancelled",
			caller: owner,
			id:     record.ID,
			today:  time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "completed booking is kept",
			caller:  owner,
			id:      record.ID,
			today:   time.Date(2024, time.June, 4, 9, 0, 0, 0, time.UTC),
			wantErr: commands.ErrBookingFinished,
		},
		{
			name:    "another user's booking is forbidden",
			caller:  auth.NewSession(uuid.New(), "other@example.com", "token"),
			id:      record.ID,
			today:   builder.Today,
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "unknown booking",
			caller:  owner,
			id:      "missing",
			today:   builder.Today,
			wantErr: commands.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewMockClock(tt.today)
			store := memory.NewBookingStore(slog.Default(), clk, 0)
			store.Insert(record)
			cmds := commands.NewBookingCommands(store, clk, config.NewTestConfig(), slog.Default())

			err := cmds.Cancel(context.Background(), tt.caller, tt.id)

			remaining, listErr := store.ListBookings(context.Background(), owner)
			require.NoError(t, listErr)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Len(t, remaining, 1)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, remaining)
		})
	}
}
