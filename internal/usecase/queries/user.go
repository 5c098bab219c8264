package queries

import (
	"context"

	"github.com/google/uuid"

	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.New("user not found")
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	users shared.UserRepository
}

func NewUserQueries(users shared.UserRepository) UserQueries {
	return &userQueriesImpl{
		users: users,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.users.FindByID(ctx, userID)
	if err != nil {
		err = shared.ClassifyRepoErr(err, "find current user")
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}

	return ToUserView(u), nil
}
