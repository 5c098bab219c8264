package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"

	"github.com/google/uuid"
)

// UserStore indexes users by id and by lower-cased email.
type UserStore struct {
	logger *slog.Logger

	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

func NewUserStore(logger *slog.Logger) *UserStore {
	return &UserStore{
		logger:  logger,
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Seed adds the given accounts, hashing their passwords.
func (s *UserStore) Seed(seed []SeedUser, now time.Time) error {
	return SeedAccounts(context.Background(), s, seed, now)
}

func (s *UserStore) Create(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[u.Email().Value()]; taken {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "email already registered", nil)
	}
	s.byID[u.ID()] = clone(u)
	s.byEmail[u.Email().Value()] = u.ID()
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return clone(u), nil
}

func (s *UserStore) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email.Value()]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return clone(s.byID[id]), nil
}

func (s *UserStore) Update(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[u.ID()]
	if !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	if owner, taken := s.byEmail[u.Email().Value()]; taken && owner != u.ID() {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "email already registered", nil)
	}
	delete(s.byEmail, existing.Email().Value())
	s.byID[u.ID()] = clone(u)
	s.byEmail[u.Email().Value()] = u.ID()
	return nil
}

func (s *UserStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	delete(s.byEmail, u.Email().Value())
	delete(s.byID, id)
	return nil
}

// clone keeps callers from mutating stored users in place.
func clone(u *user.User) *user.User {
	return user.Reconstruct(u.ID(), u.Email(), u.PasswordHash(), u.Profile(), u.Notifications(), u.CreatedAt(), u.UpdatedAt())
}
