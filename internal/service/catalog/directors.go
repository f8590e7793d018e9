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

func (s *Service) CreateDirector(ctx context.Context, d domain.Director) (*domain.Director, error) {
	const op = "service.catalog.CreateDirector"

	created, err := s.store.Directors().Create(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrDirectorConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) GetDirector(ctx context.Context, id int64) (*domain.Director, error) {
	const op = "service.catalog.GetDirector"

	d, err := s.store.Directors().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrDirectorNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

func (s *Service) ListDirectors(ctx context.Context) ([]domain.Director, error) {
	const op = "service.catalog.ListDirectors"

	directors, err := s.store.Directors().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return directors, nil
}

func (s *Service) FilterDirectors(
	ctx context.Context,
	f domain.DirectorFilter,
	p pagination.Params,
) (pagination.Page[domain.Director], error) {
	const op = "service.catalog.FilterDirectors"

	var zero pagination.Page[domain.Director]

	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.store.Directors().Count(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	directors, err := s.store.Directors().List(ctx, f, p.Limit(), p.Offset())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return pagination.NewPage(directors, pagination.NewMeta(p, total, len(directors))), nil
}

func (s *Service) CountDirectors(ctx context.Context, f domain.DirectorFilter) (int, error) {
	const op = "service.catalog.CountDirectors"

	total, err := s.store.Directors().Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Service) UpdateDirector(
	ctx context.Context,
	id int64,
	patch domain.DirectorPatch,
) (*domain.Director, error) {
	const op = "service.catalog.UpdateDirector"

	var updated *domain.Director

	err := s.store.RunTx(ctx, nil, func(ctx context.Context, tx postgresrepo.DB) error {
		repo := s.store.Directors().With(tx)

		d, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(d)

		if err := repo.Update(ctx, *d); err != nil {
			return err
		}

		updated = d
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrDirectorNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Service) DeleteDirector(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteDirector"

	if err := s.store.Directors().Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrDirectorNotFound)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%s: %w", op, ErrReferenced)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DirectorMovies lists the movies linked to a director.
func (s *Service) DirectorMovies(ctx context.Context, directorID int64) ([]domain.Movie, error) {
	const op = "service.catalog.DirectorMovies"

	if _, err := s.store.Directors().Get(ctx, directorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrDirectorNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	movies, err := s.store.Directors().ListMovies(ctx, directorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return movies, nil
}
