//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra/memory"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVenueQueries(t *testing.T) queries.VenueQueries {
	t.Helper()
	store, err := memory.NewVenueStore(slog.Default(), 0, memory.SeedVenues())
	require.NoError(t, err)
	return queries.NewVenueQueries(store)
}

func venueNames(views []*queries.VenueView) []string {
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	return names
}

func TestVenueQueries_Search(t *testing.T) {
	t.Run("default criteria keeps catalog order", func(t *testing.T) {
		q := newVenueQueries(t)

		views, err := q.Search(context.Background(), venue.DefaultCriteria())

		require.NoError(t, err)
		require.Len(t, views, len(memory.SeedVenues()))
		assert.Equal(t, "Grand Ballroom", views[0].Name)
		assert.Equal(t, "Garden Pavilion", views[1].Name)
	})

	t.Run("search term is case insensitive", func(t *testing.T) {
		q := newVenueQueries(t)
		c := venue.DefaultCriteria()
		c.SearchTerm = "GARDEN"

		views, err := q.Search(context.Background(), c)

		require.NoError(t, err)
		assert.Contains(t, venueNames(views), "Garden Pavilion")
		assert.NotContains(t, venueNames(views), "Grand Ballroom")
	})

	t.Run("inverted range is invalid", func(t *testing.T) {
		q := newVenueQueries(t)
		c := venue.DefaultCriteria()
		c.PriceRange = venue.Range{Min: 3000, Max: 1000}

		_, err := q.Search(context.Background(), c)

		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrInvalidCriteria))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("unknown category is not a filter", func(t *testing.T) {
		q := newVenueQueries(t)
		c := venue.DefaultCriteria()
		c.Category = "Yoga Retreat"

		views, err := q.Search(context.Background(), c)

		require.Error(t, err)
		assert.Nil(t, views)
		assert.True(t, errs.Is(err, venue.ErrUnknownCategory))
		assert.True(t, errs.Is(err, queries.ErrInvalidCriteria))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestVenueQueries_GetByID(t *testing.T) {
	q := newVenueQueries(t)

	view, err := q.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Grand Ballroom", view.Name)

	_, err = q.GetByID(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errs.Is(err, queries.ErrVenueNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestBookingQueries_ListByStatus(t *testing.T) {
	owner := auth.NewSession(uuid.New(), "owner@example.com", "token")
	pavilion := builder.GardenPavilion()
	june := builder.NewBookingBuilder().BuildRecord(pavilion, owner.UserID())
	july := builder.NewBookingBuilder().
		WithDates(booking.NewDate(2024, time.July, 10), booking.NewDate(2024, time.July, 12)).
		BuildRecord(pavilion, owner.UserID())
	foreign := builder.NewBookingBuilder().BuildRecord(pavilion, uuid.New())

	// June 2 falls inside the first booking and before the second
	clk := clock.NewMockClock(time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC))
	store := memory.NewBookingStore(slog.Default(), clk, 0)
	for _, b := range []booking.Booking{june, july, foreign} {
		store.Insert(b)
	}
	q := queries.NewBookingQueries(store, clk, config.NewTestConfig())

	statusOf := func(s booking.Status) *booking.Status { return &s }
	tests := []struct {
		name   string
		status *booking.Status
		want   []string
	}{
		{name: "all of the caller's bookings", status: nil, want: []string{june.ID, july.ID}},
		{name: "active", status: statusOf(booking.StatusActive), want: []string{june.ID}},
		{name: "upcoming", status: statusOf(booking.StatusUpcoming), want: []string{july.ID}},
		{name: "completed", status: statusOf(booking.StatusCompleted), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := q.ListByStatus(context.Background(), owner, tt.status)

			require.NoError(t, err)
			got := make([]string, 0, len(views))
			for _, v := range views {
				got = append(got, v.ID)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("booking ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
