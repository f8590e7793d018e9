package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/pagination"
	"github.com/Jaum1981/cine-api/internal/repository"
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
	"github.com/Jaum1981/cine-api/internal/uow"
)

func (s *Service) translateTicketErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrTicketNotFound)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%s: %w", op, ErrTicketConflict)
	case errors.Is(err, repository.ErrForeignKey):
		return fmt.Errorf("%s: %w", op, ErrSessionMissing)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *Service) CreateTicket(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	const op = "service.sales.CreateTicket"

	var created *domain.Ticket

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		c, err := s.store.Tickets().With(tx).Create(ctx, t)
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
		return nil, s.translateTicketErr(op, err)
	}

	return created, nil
}

func (s *Service) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "service.sales.GetTicket"

	t, err := s.store.Tickets().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTicketNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (s *Service) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	const op = "service.sales.ListTickets"

	tickets, err := s.store.Tickets().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tickets, nil
}

func (s *Service) FilterTickets(
	ctx context.Context,
	f domain.TicketFilter,
	p pagination.Params,
) (pagination.Page[domain.Ticket], error) {
	const op = "service.sales.FilterTickets"

	var zero pagination.Page[domain.Ticket]

	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.store.Tickets().Count(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	tickets, err := s.store.Tickets().List(ctx, f, p.Limit(), p.Offset())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return pagination.NewPage(tickets, pagination.NewMeta(p, total, len(tickets))), nil
}

func (s *Service) CountTickets(ctx context.Context, f domain.TicketFilter) (int, error) {
	const op = "service.sales.CountTickets"

	total, err := s.store.Tickets().Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Service) UpdateTicket(
	ctx context.Context,
	id int64,
	patch domain.TicketPatch,
) (*domain.Ticket, error) {
	const op = "service.sales.UpdateTicket"

	var updated *domain.Ticket

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		repo := s.store.Tickets().With(tx)

		t, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(t)

		if err := repo.Update(ctx, *t); err != nil {
			return err
		}

		updated = t
		after(func(ctx context.Context) {
			_ = s.cache.InvalidateReports(ctx)
		})
		return nil
	})
	if err != nil {
		return nil, s.translateTicketErr(op, err)
	}

	return updated, nil
}

func (s *Service) DeleteTicket(ctx context.Context, id int64) error {
	const op = "service.sales.DeleteTicket"

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Tickets().With(tx).Delete(ctx, id); err != nil {
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
			return fmt.Errorf("%s: %w", op, ErrTicketNotFound)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%s: %w", op, ErrTicketReferenced)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
