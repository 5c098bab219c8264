package commands

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/pkg/password"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("Invalid credentials")
	ErrUserAlreadyExists    = errs.New("User already exists")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrInvalidRegistration  = errs.New("invalid registration")
)

type LoginResult struct {
	User        *queries.UserView
	AccessToken string
	ExpiresIn   time.Duration
}

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      shared.UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(users shared.UserRepository, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

// Register creates the account and signs the new user in.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	email, pw, profile, err := req.ToDomain()
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidRegistration, errs.ErrValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(email, hash, profile, a.clock.Now())
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidRegistration, errs.ErrValidation)
	}

	if err := a.users.Create(ctx, u); err != nil {
		err = shared.ClassifyRepoErr(err, "create user")
		if errs.Is(err, errs.ErrConflict) {
			return nil, errs.Mark(ErrUserAlreadyExists, errs.ErrConflict)
		}
		return nil, err
	}

	a.logger.Info("user registered", "user_id", u.ID())
	return a.issue(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	return a.issue(u)
}

func (a *authCommandsImpl) issue(u *user.User) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(u.ID(), u.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		User:        queries.ToUserView(u),
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	u, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil {
		err = shared.ClassifyRepoErr(err, "find user by email")
		// Return same error as password mismatch to prevent user enumeration attacks
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
