package postgres

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const venueColumns = `id, name, location, type, categories, capacity, price_cents, rating, review_count, description, features, image_url`

type VenueStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewVenueStore(db *pgxpool.Pool, logger *slog.Logger) *VenueStore {
	return &VenueStore{db: db, logger: logger}
}

func (s *VenueStore) ListVenues(ctx context.Context) ([]*venue.Venue, error) {
	rows, err := s.db.Query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list venues", err)
	}
	defer rows.Close()

	venues := make([]*venue.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan venue", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list venues", err)
	}
	return venues, nil
}

func (s *VenueStore) GetVenue(ctx context.Context, id venue.ID) (*venue.Venue, error) {
	row := s.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, int64(id))
	v, err := scanVenue(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "venue not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to get venue", err)
	}
	return v, nil
}

// Upsert writes catalog entries, replacing rows with the same id.
func (s *VenueStore) Upsert(ctx context.Context, params []venue.Params) error {
	batch := &pgx.Batch{}
	for _, p := range params {
		v, err := venue.New(p)
		if err != nil {
			return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid venue", err)
		}
		batch.Queue(`
			INSERT INTO venues (`+venueColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, location = EXCLUDED.location, type = EXCLUDED.type,
				categories = EXCLUDED.categories, capacity = EXCLUDED.capacity,
				price_cents = EXCLUDED.price_cents, rating = EXCLUDED.rating,
				review_count = EXCLUDED.review_count, description = EXCLUDED.description,
				features = EXCLUDED.features, image_url = EXCLUDED.image_url`,
			int64(v.ID()), v.Name(), string(v.Location()), string(v.Type()), categoryStrings(v.Categories()),
			v.Capacity(), v.Price().Cents(), v.Rating(), v.ReviewCount(), v.Description(), nonNil(v.Features()), v.ImageURL(),
		)
	}

	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to upsert venues", err)
	}
	return nil
}

func scanVenue(row pgx.Row) (*venue.Venue, error) {
	var (
		p          venue.Params
		id         int64
		location   string
		venueType  string
		categories []string
		priceCents int64
	)
	if err := row.Scan(&id, &p.Name, &location, &venueType, &categories, &p.Capacity, &priceCents,
		&p.Rating, &p.ReviewCount, &p.Description, &p.Features, &p.ImageURL); err != nil {
		return nil, err
	}
	p.ID = venue.ID(id)
	p.Location = venue.Location(location)
	p.Type = venue.Type(venueType)
	p.Price = float64(priceCents) / 100
	for _, c := range categories {
		p.Categories = append(p.Categories, venue.Category(c))
	}
	return venue.New(p)
}

func categoryStrings(cs []venue.Category) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, string(c))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
