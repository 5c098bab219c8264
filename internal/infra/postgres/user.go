package postgres

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password_hash, first_name, last_name, phone, location, bio,
	notify_email, notify_sms, notify_marketing, created_at, updated_at`

type UserStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewUserStore(db *pgxpool.Pool, logger *slog.Logger) *UserStore {
	return &UserStore{db: db, logger: logger}
}

func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	p, n := u.Profile(), u.Notifications()
	_, err := s.db.Exec(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), p.FirstName, p.LastName, p.Phone, p.Location, p.Bio,
		n.Email, n.SMS, n.Marketing, u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "email already registered", err)
		}
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to create user", err)
	}
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *UserStore) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	return s.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email.Value())
}

func (s *UserStore) Update(ctx context.Context, u *user.User) error {
	p, n := u.Profile(), u.Notifications()
	_, err := WithDefaultRetry(ctx, s.db, func(tx DBTX) (struct{}, error) {
		tag, err := tx.Exec(ctx, `UPDATE users SET
				email = $2, password_hash = $3, first_name = $4, last_name = $5, phone = $6,
				location = $7, bio = $8, notify_email = $9, notify_sms = $10, notify_marketing = $11,
				updated_at = $12
			WHERE id = $1`,
			u.ID(), u.Email().Value(), u.PasswordHash(), p.FirstName, p.LastName, p.Phone, p.Location, p.Bio,
			n.Email, n.SMS, n.Marketing, u.UpdatedAt(),
		)
		if err != nil {
			if pgconv.IsUniqueViolation(err) {
				return struct{}{}, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "email already registered", err)
			}
			return struct{}{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to update user", err)
		}
		if tag.RowsAffected() == 0 {
			return struct{}{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
		}
		return struct{}{}, nil
	})
	return err
}

// Delete removes the user; their bookings go with them by cascade.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (s *UserStore) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find user", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                   uuid.UUID
		email, hash          string
		p                    user.Profile
		n                    user.Notifications
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &email, &hash, &p.FirstName, &p.LastName, &p.Phone, &p.Location, &p.Bio,
		&n.Email, &n.SMS, &n.Marketing, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(id, e, hash, p, n, createdAt, updatedAt), nil
}
