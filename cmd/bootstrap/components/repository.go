package components

import (
	"log/slog"

	"booking-engine/internal/infra/cache"
	"booking-engine/internal/infra/readstore"
	repo_impl "booking-engine/internal/infra/repository"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewResourceRepository,
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			repo_impl.NewEntitlementRepository,
			fx.As(new(commands.EntitlementRepository)),
		),
		fx.Annotate(
			repo_impl.NewPricingRepository,
			fx.As(new(commands.PricingReads)),
		),
		// Candidate lookups on the write path go through the Redis cache;
		// the raw read store serves the availability query directly.
		fx.Annotate(
			NewCandidateCache,
			fx.As(new(commands.ResourceReads)),
			fx.As(new(commands.AvailabilityCache)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		fx.Annotate(
			readstore.NewEntitlementReadStore,
			fx.As(new(queries.EntitlementReadStore)),
		),
	),
)

func NewCandidateCache(rdb *redis.Client, repo *repo_impl.ResourceRepository, cfg config.Config, logger *slog.Logger) *cache.CandidateCache {
	return cache.NewCandidateCache(rdb, repo, cfg.Cache.CandidateTTL, logger)
}
