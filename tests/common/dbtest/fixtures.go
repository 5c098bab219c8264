//go:build unit || e2e

package dbtest

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"venue-booking/internal/infra/memory"
	"venue-booking/internal/infra/postgres"
	"venue-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the password of every user created by CreateTestUser.
const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPassword(TestPassword)
	require.NoError(t, err)

	userID := uuid.New()
	now := time.Now().UTC()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, first_name, created_at, updated_at)
		VALUES ($1, $2, $3, 'Test', $4, $4) ON CONFLICT (email) DO NOTHING`,
		userID, email, hash, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// inserts the venue catalog and demo account needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	logger := slog.Default()

	if err := postgres.NewVenueStore(pool, logger).Upsert(ctx, memory.SeedVenues()); err != nil {
		return err
	}
	return memory.SeedAccounts(ctx, postgres.NewUserStore(pool, logger), memory.SeedUsers(), time.Now())
}

// clears bookings and accounts and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE bookings, users CASCADE"); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
