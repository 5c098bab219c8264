//go:build unit

package venue_test

import (
	"testing"

	"venue-booking/internal/domain/venue"
	"venue-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VenueBuilder)
	errIs  error
}

func TestVenue(t *testing.T) {
	t.Run("builds from valid params", func(t *testing.T) {
		actual, err := builder.NewVenueBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, venue.ID(2), actual.ID())
		assert.Equal(t, "Garden Pavilion", actual.Name())
		assert.Equal(t, int64(150000), actual.Price().Cents())
		assert.True(t, actual.HasCategory(venue.CategoryWedding))
		assert.False(t, actual.HasCategory(venue.CategoryConcert))
	})

	t.Run("categories are copied", func(t *testing.T) {
		b := builder.NewVenueBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		b.Categories[0] = venue.CategoryConcert
		got := actual.Categories()
		got[1] = venue.CategoryConcert

		assert.Equal(t, []venue.Category{venue.CategoryWedding, venue.CategoryBirthday, venue.CategoryGraduation}, actual.Categories())
	})

	t.Run("capacity", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "one is OK", mutate: func(b *builder.VenueBuilder) { b.WithCapacity(1) }},
			{name: "zero is NG", mutate: func(b *builder.VenueBuilder) { b.WithCapacity(0) }, errIs: venue.ErrInvalidCapacity},
			{name: "negative is NG", mutate: func(b *builder.VenueBuilder) { b.WithCapacity(-5) }, errIs: venue.ErrInvalidCapacity},
		})
	})

	t.Run("price", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "free is OK", mutate: func(b *builder.VenueBuilder) { b.WithPrice(0) }},
			{name: "negative is NG", mutate: func(b *builder.VenueBuilder) { b.WithPrice(-0.01) }, errIs: venue.ErrInvalidPrice},
		})
	})

	t.Run("rating and identity", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "rating 5 is OK", mutate: func(b *builder.VenueBuilder) { b.WithRating(5) }},
			{name: "rating above 5 is NG", mutate: func(b *builder.VenueBuilder) { b.WithRating(5.1) }, errIs: venue.ErrInvalidRating},
			{name: "blank name is NG", mutate: func(b *builder.VenueBuilder) { b.WithName("   ") }, errIs: venue.ErrEmptyName},
			{name: "zero id is NG", mutate: func(b *builder.VenueBuilder) { b.WithID(0) }, errIs: venue.ErrInvalidID},
		})
	})

	t.Run("unknown category tags are kept", func(t *testing.T) {
		actual, err := builder.NewVenueBuilder().WithCategories("Trade Show").BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.HasCategory("Trade Show"))
		assert.False(t, venue.Category("Trade Show").IsKnown())
	})
}

func TestMoney(t *testing.T) {
	m, err := venue.NewMoney(1500)
	require.NoError(t, err)

	assert.Equal(t, 4500.0, m.Times(3).Amount())
	assert.True(t, m.Times(0).IsZero())

	_, err = venue.NewMoney(-1)
	assert.ErrorIs(t, err, venue.ErrNegativeMoney)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewVenueBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
