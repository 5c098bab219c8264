//go:build unit

package memory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/memory"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/password"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVenueStore(t *testing.T) {
	t.Run("seed catalog keeps order", func(t *testing.T) {
		store, err := memory.NewVenueStore(discardLogger(), 0, memory.SeedVenues())
		require.NoError(t, err)

		venues, err := store.ListVenues(t.Context())

		require.NoError(t, err)
		require.Len(t, venues, len(memory.SeedVenues()))
		assert.Equal(t, "Grand Ballroom", venues[0].Name())
		assert.Equal(t, "Garden Pavilion", venues[1].Name())
	})

	t.Run("invalid seed is rejected", func(t *testing.T) {
		_, err := memory.NewVenueStore(discardLogger(), 0, []venue.Params{{ID: 1, Name: "", Capacity: 10}})

		assert.ErrorIs(t, err, venue.ErrEmptyName)
	})

	t.Run("unknown venue is not found", func(t *testing.T) {
		store, err := memory.NewVenueStore(discardLogger(), 0, memory.SeedVenues())
		require.NoError(t, err)

		_, err = store.GetVenue(t.Context(), 99)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("put replaces and remove drops", func(t *testing.T) {
		store, err := memory.NewVenueStore(discardLogger(), 0, memory.SeedVenues())
		require.NoError(t, err)

		store.Put(builder.NewVenueBuilder().WithName("Renamed Pavilion").MustBuild())
		v, err := store.GetVenue(t.Context(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Pavilion", v.Name())

		store.Remove(2)
		_, err = store.GetVenue(t.Context(), 2)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("latency honours cancellation", func(t *testing.T) {
		store, err := memory.NewVenueStore(discardLogger(), time.Minute, memory.SeedVenues())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err = store.ListVenues(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBookingStore(t *testing.T) {
	owner := auth.NewSession(uuid.New(), "owner@example.com", "t1")
	other := auth.NewSession(uuid.New(), "other@example.com", "t2")

	newStore := func() *memory.BookingStore {
		return memory.NewBookingStore(discardLogger(), clock.NewMockClock(builder.Today), 0)
	}

	t.Run("submit then list only the owner's bookings", func(t *testing.T) {
		store := newStore()
		draft, err := builder.NewBookingBuilder().BuildDraft(builder.GardenPavilion())
		require.NoError(t, err)

		conf, err := store.SubmitBooking(t.Context(), owner, draft)
		require.NoError(t, err)
		require.NotEmpty(t, conf.BookingID)

		mine, err := store.ListBookings(t.Context(), owner)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, conf.BookingID, mine[0].ID)
		assert.Equal(t, builder.Today, mine[0].CreatedAt)
		assert.Equal(t, int64(450000), mine[0].TotalPriceCents)

		theirs, err := store.ListBookings(t.Context(), other)
		require.NoError(t, err)
		assert.Empty(t, theirs)
	})

	t.Run("anonymous submit is refused", func(t *testing.T) {
		store := newStore()
		draft, err := builder.NewBookingBuilder().BuildDraft(builder.GardenPavilion())
		require.NoError(t, err)

		_, err = store.SubmitBooking(t.Context(), auth.Session{}, draft)

		assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
	})

	t.Run("cancel removes the booking", func(t *testing.T) {
		store := newStore()
		rec := builder.NewBookingBuilder().BuildRecord(builder.GardenPavilion(), owner.UserID())
		store.Insert(rec)

		require.NoError(t, store.CancelBooking(t.Context(), owner, rec.ID))

		_, err := store.GetBooking(t.Context(), owner, rec.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		err = store.CancelBooking(t.Context(), owner, rec.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserStore(t *testing.T) {
	newUser := func(t *testing.T, email string) *user.User {
		t.Helper()
		return builder.NewUserBuilder().WithEmail(email).MustBuild()
	}

	t.Run("duplicate email is a duplicate key", func(t *testing.T) {
		store := memory.NewUserStore(discardLogger())
		require.NoError(t, store.Create(t.Context(), newUser(t, "a@example.com")))

		err := store.Create(t.Context(), newUser(t, "a@example.com"))

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("returned users are copies", func(t *testing.T) {
		store := memory.NewUserStore(discardLogger())
		u := newUser(t, "a@example.com")
		require.NoError(t, store.Create(t.Context(), u))

		found, err := store.FindByID(t.Context(), u.ID())
		require.NoError(t, err)
		found.SetPasswordHash("changed", builder.Today)

		again, err := store.FindByID(t.Context(), u.ID())
		require.NoError(t, err)
		assert.Equal(t, u.PasswordHash(), again.PasswordHash())
	})

	t.Run("update cannot take another user's email", func(t *testing.T) {
		store := memory.NewUserStore(discardLogger())
		a := newUser(t, "a@example.com")
		b := newUser(t, "b@example.com")
		require.NoError(t, store.Create(t.Context(), a))
		require.NoError(t, store.Create(t.Context(), b))

		taken, err := user.NewEmail("a@example.com")
		require.NoError(t, err)
		require.NoError(t, b.UpdateProfile(taken, b.Profile(), builder.Today))

		err = store.Update(t.Context(), b)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("update moves the email index", func(t *testing.T) {
		store := memory.NewUserStore(discardLogger())
		a := newUser(t, "a@example.com")
		require.NoError(t, store.Create(t.Context(), a))

		moved, err := user.NewEmail("moved@example.com")
		require.NoError(t, err)
		require.NoError(t, a.UpdateProfile(moved, a.Profile(), builder.Today))
		require.NoError(t, store.Update(t.Context(), a))

		old, err := user.NewEmail("a@example.com")
		require.NoError(t, err)
		_, err = store.FindByEmail(t.Context(), old)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		_, err = store.FindByEmail(t.Context(), moved)
		assert.NoError(t, err)
	})

	t.Run("seeded demo account accepts its password", func(t *testing.T) {
		store := memory.NewUserStore(discardLogger())
		require.NoError(t, store.Seed(memory.SeedUsers(), builder.Today))
		// seeding twice leaves the existing account alone
		require.NoError(t, store.Seed(memory.SeedUsers(), builder.Today))

		email, err := user.NewEmail("test@example.com")
		require.NoError(t, err)
		u, err := store.FindByEmail(t.Context(), email)
		require.NoError(t, err)
		assert.NoError(t, password.ComparePassword(u.PasswordHash(), "password123"))
	})

	t.Run("delete frees the email", func(t *testing.T) {
		store := memory.NewUserStore(discardLogger())
		a := newUser(t, "a@example.com")
		require.NoError(t, store.Create(t.Context(), a))
		require.NoError(t, store.Delete(t.Context(), a.ID()))

		assert.NoError(t, store.Create(t.Context(), newUser(t, "a@example.com")))
		assert.True(t, infra.IsKind(store.Delete(t.Context(), uuid.New()), infra.KindNotFound))
	})
}
