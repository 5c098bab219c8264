package bootstrap

import (
	"context"
	"log/slog"

	"venue-booking/internal/infra/db"
	"venue-booking/internal/infra/memory"
	"venue-booking/internal/infra/postgres"
	"venue-booking/internal/infra/restapi"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStorage,
	),
)

// Storage is the set of ports selected by STORAGE_DRIVER.
type Storage struct {
	fx.Out

	Catalog shared.VenueCatalog
	Gateway shared.BookingGateway
	Users   shared.UserRepository
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Storage, error) {
	logger.Info("Initializing storage", "driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		return newPostgresStorage(lc, cfg, clk, logger)
	case config.StorageREST:
		return newRESTStorage(cfg, clk, logger)
	default:
		return newMemoryStorage(cfg, clk, logger)
	}
}

func newMemoryStorage(cfg config.Config, clk clock.Clock, logger *slog.Logger) (Storage, error) {
	venues, err := memory.NewVenueStore(logger, cfg.Storage.MemoryLatency, memory.SeedVenues())
	if err != nil {
		return Storage{}, errs.Wrap(err, "seed venue catalog")
	}
	users, err := newSeededUsers(clk, logger)
	if err != nil {
		return Storage{}, err
	}
	return Storage{
		Catalog: venues,
		Gateway: memory.NewBookingStore(logger, clk, cfg.Storage.MemoryLatency),
		Users:   users,
	}, nil
}

// newRESTStorage proxies venues and bookings upstream. Accounts stay local.
func newRESTStorage(cfg config.Config, clk clock.Clock, logger *slog.Logger) (Storage, error) {
	client := restapi.NewClient(cfg.Upstream, logger)
	users, err := newSeededUsers(clk, logger)
	if err != nil {
		return Storage{}, err
	}
	return Storage{
		Catalog: restapi.NewVenueCatalog(client),
		Gateway: restapi.NewBookingGateway(client),
		Users:   users,
	}, nil
}

func newPostgresStorage(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Storage, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Storage{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	ctx := context.Background()
	if err := db.Migrate(ctx, pool); err != nil {
		cleanup()
		return Storage{}, err
	}

	venues := postgres.NewVenueStore(pool, logger)
	if err := venues.Upsert(ctx, memory.SeedVenues()); err != nil {
		cleanup()
		return Storage{}, errs.Wrap(err, "seed venue catalog")
	}

	users := postgres.NewUserStore(pool, logger)
	if err := memory.SeedAccounts(ctx, users, memory.SeedUsers(), clk.Now()); err != nil {
		cleanup()
		return Storage{}, err
	}

	return Storage{
		Catalog: venues,
		Gateway: postgres.NewBookingStore(pool, clk, logger),
		Users:   users,
	}, nil
}

func newSeededUsers(clk clock.Clock, logger *slog.Logger) (*memory.UserStore, error) {
	users := memory.NewUserStore(logger)
	if err := users.Seed(memory.SeedUsers(), clk.Now()); err != nil {
		return nil, errs.Wrap(err, "seed demo accounts")
	}
	return users, nil
}
