package postgres

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, user_id, venue_id, venue_name, start_date, end_date, attendees, event_type, purpose,
	contact_name, contact_phone, contact_email, special_requirements, total_price_cents, created_at`

type BookingStore struct {
	db     *pgxpool.Pool
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingStore(db *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) *BookingStore {
	return &BookingStore{db: db, clock: clk, logger: logger}
}

// SubmitBooking inserts the draft after checking the venue still exists.
func (s *BookingStore) SubmitBooking(ctx context.Context, sess auth.Session, d booking.Draft) (booking.Confirmation, error) {
	if sess.IsZero() {
		return booking.Confirmation{}, infra.WrapRepoErr(s.logger, infra.KindUnauthorized, "booking requires a signed-in user", nil)
	}
	b := booking.FromDraft(uuid.NewString(), sess.UserID(), d, s.clock.Now())

	id, err := WithDefaultRetry(ctx, s.db, func(tx DBTX) (string, error) {
		var venueID int64
		if err := tx.QueryRow(ctx, `SELECT id FROM venues WHERE id = $1 FOR SHARE`, int64(b.VenueID)).Scan(&venueID); err != nil {
			if pgconv.IsNoRows(err) {
				return "", infra.WrapRepoErr(s.logger, infra.KindNotFound, "venue not found", err)
			}
			return "", infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to check venue", err)
		}

		_, err := tx.Exec(ctx, `INSERT INTO bookings (`+bookingColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			b.ID, b.UserID, int64(b.VenueID), b.VenueName,
			pgconv.DateFromTime(b.StartDate.Time()), pgconv.DateFromTime(b.EndDate.Time()),
			b.Attendees, b.EventType, b.Purpose, b.ContactName, b.ContactPhone, b.ContactEmail,
			b.SpecialRequirements, b.TotalPriceCents, b.CreatedAt,
		)
		if err != nil {
			return "", infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to insert booking", err)
		}
		return b.ID, nil
	})
	if err != nil {
		return booking.Confirmation{}, err
	}
	return booking.Confirmation{BookingID: id}, nil
}

func (s *BookingStore) ListBookings(ctx context.Context, sess auth.Session) ([]booking.Booking, error) {
	rows, err := s.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at, id`, sess.UserID())
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	out := make([]booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	return out, nil
}

func (s *BookingStore) GetBooking(ctx context.Context, _ auth.Session, id string) (booking.Booking, error) {
	b, err := scanBooking(s.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.Booking{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", err)
		}
		return booking.Booking{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to get booking", err)
	}
	return b, nil
}

func (s *BookingStore) CancelBooking(ctx context.Context, sess auth.Session, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1 AND user_id = $2`, id, sess.UserID())
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func scanBooking(row pgx.Row) (booking.Booking, error) {
	var (
		b          booking.Booking
		venueID    int64
		start, end pgtype.Date
		createdAt  time.Time
	)
	if err := row.Scan(&b.ID, &b.UserID, &venueID, &b.VenueName, &start, &end, &b.Attendees, &b.EventType,
		&b.Purpose, &b.ContactName, &b.ContactPhone, &b.ContactEmail, &b.SpecialRequirements,
		&b.TotalPriceCents, &createdAt); err != nil {
		return booking.Booking{}, err
	}
	b.VenueID = venue.ID(venueID)
	b.StartDate = booking.DateOf(pgconv.TimeFromDate(start), time.UTC)
	b.EndDate = booking.DateOf(pgconv.TimeFromDate(end), time.UTC)
	b.CreatedAt = createdAt
	return b, nil
}
