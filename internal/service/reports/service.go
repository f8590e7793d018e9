// Package reports serves the two read-only aggregates: revenue per movie
// and session summaries for one movie.
package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/pagination"
	"github.com/Jaum1981/cine-api/internal/repository"
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
	redisrepo "github.com/Jaum1981/cine-api/internal/repository/redis"
)

type Config struct {
	RevenueTTL time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.RevenueTTL <= 0 {
		cfg.RevenueTTL = 30 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// MovieRevenue returns the revenue-per-movie report, cached per sort
// direction. Sales writes invalidate the cache after commit, so staleness is
// bounded by the TTL only when the cache invalidation itself fails.
func (s *Service) MovieRevenue(ctx context.Context, descending bool) ([]domain.MovieRevenue, error) {
	const op = "service.reports.MovieRevenue"

	key := redisrepo.KeyMovieRevenue(descending)

	report, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.RevenueTTL,
		func(ctx context.Context) ([]domain.MovieRevenue, error) {
			rows, err := s.store.Reports().MovieRevenue(ctx, descending)
			if err != nil {
				return nil, err
			}
			if rows == nil {
				rows = []domain.MovieRevenue{}
			}

			return rows, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return report, nil
}

// MovieSessions returns one page of session summaries for a movie, bounded
// by the optional inclusive date range. The movie must exist.
func (s *Service) MovieSessions(
	ctx context.Context,
	movieID int64,
	after, before *time.Time,
	p pagination.Params,
) (pagination.Page[domain.SessionSummary], error) {
	const op = "service.reports.MovieSessions"

	var zero pagination.Page[domain.SessionSummary]

	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.store.Movies().Get(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, fmt.Errorf("%s: %w", op, ErrMovieNotFound)
		}

		return zero, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.store.Reports().CountMovieSessions(ctx, movieID, after, before)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	summaries, err := s.store.Reports().MovieSessions(ctx, movieID, after, before, p.Limit(), p.Offset())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return pagination.NewPage(summaries, pagination.NewMeta(p, total, len(summaries))), nil
}
