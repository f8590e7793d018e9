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

func (s *Service) CreateRoom(ctx context.Context, r domain.Room) (*domain.Room, error) {
	const op = "service.catalog.CreateRoom"

	created, err := s.store.Rooms().Create(ctx, r)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrRoomConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	const op = "service.catalog.GetRoom"

	r, err := s.store.Rooms().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrRoomNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	const op = "service.catalog.ListRooms"

	rooms, err := s.store.Rooms().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rooms, nil
}

func (s *Service) FilterRooms(
	ctx context.Context,
	f domain.RoomFilter,
	p pagination.Params,
) (pagination.Page[domain.Room], error) {
	const op = "service.catalog.FilterRooms"

	var zero pagination.Page[domain.Room]

	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.store.Rooms().Count(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	rooms, err := s.store.Rooms().List(ctx, f, p.Limit(), p.Offset())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return pagination.NewPage(rooms, pagination.NewMeta(p, total, len(rooms))), nil
}

func (s *Service) CountRooms(ctx context.Context, f domain.RoomFilter) (int, error) {
	const op = "service.catalog.CountRooms"

	total, err := s.store.Rooms().Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Service) UpdateRoom(
	ctx context.Context,
	id int64,
	patch domain.RoomPatch,
) (*domain.Room, error) {
	const op = "service.catalog.UpdateRoom"

	var updated *domain.Room

	err := s.store.RunTx(ctx, nil, func(ctx context.Context, tx postgresrepo.DB) error {
		repo := s.store.Rooms().With(tx)

		r, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(r)

		if err := repo.Update(ctx, *r); err != nil {
			return err
		}

		updated = r
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrRoomNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteRoom"

	if err := s.store.Rooms().Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrRoomNotFound)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%s: %w", op, ErrReferenced)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
