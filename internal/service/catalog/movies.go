package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/pagination"
	"github.com/Jaum1981/cine-api/internal/repository"
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
)

func (s *Service) CreateMovie(ctx context.Context, m domain.Movie) (*domain.Movie, error) {
	const op = "service.catalog.CreateMovie"

	created, err := s.store.Movies().Create(ctx, m)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrMovieConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	const op = "service.catalog.GetMovie"

	m, err := s.store.Movies().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrMovieNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (s *Service) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	const op = "service.catalog.ListMovies"

	movies, err := s.store.Movies().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return movies, nil
}

// FilterMovies returns one page of movies matching the filter. Paging
// parameters are validated before any query runs.
func (s *Service) FilterMovies(
	ctx context.Context,
	f domain.MovieFilter,
	p pagination.Params,
) (pagination.Page[domain.Movie], error) {
	const op = "service.catalog.FilterMovies"

	var zero pagination.Page[domain.Movie]

	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.store.Movies().Count(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	movies, err := s.store.Movies().List(ctx, f, p.Limit(), p.Offset())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return pagination.NewPage(movies, pagination.NewMeta(p, total, len(movies))), nil
}

func (s *Service) CountMovies(ctx context.Context, f domain.MovieFilter) (int, error) {
	const op = "service.catalog.CountMovies"

	total, err := s.store.Movies().Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

// UpdateMovie applies a partial update inside one transaction: fields absent
// from the patch keep their stored values.
func (s *Service) UpdateMovie(
	ctx context.Context,
	id int64,
	patch domain.MoviePatch,
) (*domain.Movie, error) {
	const op = "service.catalog.UpdateMovie"

	var updated *domain.Movie

	err := s.store.RunTx(ctx, nil, func(ctx context.Context, tx postgresrepo.DB) error {
		repo := s.store.Movies().With(tx)

		m, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(m)

		if err := repo.Update(ctx, *m); err != nil {
			return err
		}

		updated = m
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrMovieNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Service) DeleteMovie(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteMovie"

	if err := s.store.Movies().Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrMovieNotFound)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%s: %w", op, ErrReferenced)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LinkDirector attaches a director to a movie. Both rows must exist.
func (s *Service) LinkDirector(ctx context.Context, movieID, directorID int64) error {
	const op = "service.catalog.LinkDirector"

	if err := s.store.Movies().LinkDirector(ctx, movieID, directorID); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return fmt.Errorf("%s: %w", op, ErrLinkConflict)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%s: %w", op, ErrLinkTargetMissing)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) UnlinkDirector(ctx context.Context, movieID, directorID int64) error {
	const op = "service.catalog.UnlinkDirector"

	if err := s.store.Movies().UnlinkDirector(ctx, movieID, directorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrLinkNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MovieDirectors lists the directors linked to a movie. The movie must
// exist; an empty link set is not an error.
func (s *Service) MovieDirectors(ctx context.Context, movieID int64) ([]domain.Director, error) {
	const op = "service.catalog.MovieDirectors"

	if _, err := s.store.Movies().Get(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrMovieNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	directors, err := s.store.Movies().ListDirectors(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return directors, nil
}
