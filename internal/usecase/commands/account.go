package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/password"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrInvalidProfile          = errs.New("invalid profile")
	ErrEmailTaken              = errs.New("email is already in use")
	ErrCurrentPasswordMismatch = errs.New("Current password is incorrect")
	ErrPasswordConfirmMismatch = errs.New("Passwords do not match")
	ErrWeakPassword            = errs.New("new password is too weak")
	ErrAccountNotFound         = errs.New("account not found")
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

type AccountCommands interface {
	UpdateProfile(ctx context.Context, s auth.Session, req reqdto.UpdateProfileRequest) (*queries.UserView, error)
	UpdateNotifications(ctx context.Context, s auth.Session, req reqdto.UpdateNotificationsRequest) (*queries.UserView, error)
	ChangePassword(ctx context.Context, s auth.Session, req reqdto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, s auth.Session) error
}

type accountCommandsImpl struct {
	users  shared.UserRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewAccountCommands(users shared.UserRepository, clk clock.Clock, logger *slog.Logger) AccountCommands {
	return &accountCommandsImpl{
		users:  users,
		clock:  clk,
		logger: logger,
	}
}

func (a *accountCommandsImpl) UpdateProfile(ctx context.Context, s auth.Session, req reqdto.UpdateProfileRequest) (*queries.UserView, error) {
	email, profile, err := req.ToDomain()
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidProfile, errs.ErrValidation)
	}

	u, err := a.load(ctx, s)
	if err != nil {
		return nil, err
	}

	if email != u.Email() {
		other, err := a.users.FindByEmail(ctx, email)
		if err == nil && other.ID() != u.ID() {
			return nil, errs.Mark(ErrEmailTaken, errs.ErrConflict)
		}
	}

	if err := u.UpdateProfile(email, profile, a.clock.Now()); err != nil {
		return nil, errs.MarkAll(err, ErrInvalidProfile, errs.ErrValidation)
	}
	if err := a.save(ctx, u); err != nil {
		return nil, err
	}
	return queries.ToUserView(u), nil
}

func (a *accountCommandsImpl) UpdateNotifications(ctx context.Context, s auth.Session, req reqdto.UpdateNotificationsRequest) (*queries.UserView, error) {
	u, err := a.load(ctx, s)
	if err != nil {
		return nil, err
	}

	u.SetNotifications(req.ToDomain(), a.clock.Now())
	if err := a.save(ctx, u); err != nil {
		return nil, err
	}
	return queries.ToUserView(u), nil
}

// ChangePassword requires the current password, a strong new one and a
// matching confirmation.
func (a *accountCommandsImpl) ChangePassword(ctx context.Context, s auth.Session, req reqdto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return errs.Mark(ErrPasswordConfirmMismatch, errs.ErrValidation)
	}
	pw, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return errs.MarkAll(err, ErrWeakPassword, errs.ErrValidation)
	}

	u, err := a.load(ctx, s)
	if err != nil {
		return err
	}
	if err := password.ComparePassword(u.PasswordHash(), req.CurrentPassword); err != nil {
		return errs.Mark(ErrCurrentPasswordMismatch, errs.ErrValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Wrap(err, "hash password")
	}
	u.SetPasswordHash(hash, a.clock.Now())
	if err := a.save(ctx, u); err != nil {
		return err
	}

	a.logger.Info("password changed", "user_id", u.ID())
	return nil
}

func (a *accountCommandsImpl) DeleteAccount(ctx context.Context, s auth.Session) error {
	if err := a.users.Delete(ctx, s.UserID()); err != nil {
		return a.classify(err, "delete user")
	}
	a.logger.Info("account deleted", "user_id", s.UserID())
	return nil
}

func (a *accountCommandsImpl) load(ctx context.Context, s auth.Session) (*user.User, error) {
	u, err := a.users.FindByID(ctx, s.UserID())
	if err != nil {
		return nil, a.classify(err, "find user")
	}
	return u, nil
}

func (a *accountCommandsImpl) save(ctx context.Context, u *user.User) error {
	if err := a.users.Update(ctx, u); err != nil {
		err = a.classify(err, "update user")
		if errs.Is(err, errs.ErrConflict) {
			return errs.Mark(ErrEmailTaken, errs.ErrConflict)
		}
		return err
	}
	return nil
}

func (a *accountCommandsImpl) classify(err error, msg string) error {
	err = shared.ClassifyRepoErr(err, msg)
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(err, ErrAccountNotFound)
	}
	return err
}
