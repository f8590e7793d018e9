// Package scheduling manages screening sessions. Writes go through the unit
// of work so the cached reports are dropped only after a durable commit.
package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/pagination"
	"github.com/Jaum1981/cine-api/internal/repository"
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
	redisrepo "github.com/Jaum1981/cine-api/internal/repository/redis"
	"github.com/Jaum1981/cine-api/internal/uow"
)

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	uow   *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, u *uow.UoW) *Service {
	return &Service{store: store, cache: cache, uow: u}
}

func (s *Service) translateWriteErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%s: %w", op, ErrSessionConflict)
	case errors.Is(err, repository.ErrForeignKey):
		return fmt.Errorf("%s: %w", op, ErrRoomOrMovieMissing)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *Service) CreateSession(ctx context.Context, sess domain.Session) (*domain.Session, error) {
	const op = "service.scheduling.CreateSession"

	var created *domain.Session

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		c, err := s.store.Sessions().With(tx).Create(ctx, sess)
		if err != nil {
			return err
		}

		created = c
		after(func(ctx context.Context) {
			_ = s.cache.InvalidateReports(ctx)
		})
		return nil
	})
	if err != nil {
		return nil, s.translateWriteErr(op, err)
	}

	return created, nil
}

func (s *Service) GetSession(ctx context.Context, id int64) (*domain.Session, error) {
	const op = "service.scheduling.GetSession"

	sess, err := s.store.Sessions().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sess, nil
}

func (s *Service) ListSessions(ctx context.Context) ([]domain.Session, error) {
	const op = "service.scheduling.ListSessions"

	sessions, err := s.store.Sessions().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sessions, nil
}

func (s *Service) FilterSessions(
	ctx context.Context,
	f domain.SessionFilter,
	p pagination.Params,
) (pagination.Page[domain.Session], error) {
	const op = "service.scheduling.FilterSessions"

	var zero pagination.Page[domain.Session]

	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.store.Sessions().Count(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	sessions, err := s.store.Sessions().List(ctx, f, p.Limit(), p.Offset())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return pagination.NewPage(sessions, pagination.NewMeta(p, total, len(sessions))), nil
}

func (s *Service) CountSessions(ctx context.Context, f domain.SessionFilter) (int, error) {
	const op = "service.scheduling.CountSessions"

	total, err := s.store.Sessions().Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Service) UpdateSession(
	ctx context.Context,
	id int64,
	patch domain.SessionPatch,
) (*domain.Session, error) {
	const op = "service.scheduling.UpdateSession"

	var updated *domain.Session

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		repo := s.store.Sessions().With(tx)

		sess, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(sess)

		if err := repo.Update(ctx, *sess); err != nil {
			return err
		}

		updated = sess
		after(func(ctx context.Context) {
			_ = s.cache.InvalidateReports(ctx)
		})
		return nil
	})
	if err != nil {
		return nil, s.translateWriteErr(op, err)
	}

	return updated, nil
}

func (s *Service) DeleteSession(ctx context.Context, id int64) error {
	const op = "service.scheduling.DeleteSession"

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Sessions().With(tx).Delete(ctx, id); err != nil {
			return err
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateReports(ctx)
		})
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%s: %w", op, ErrSessionReferenced)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
