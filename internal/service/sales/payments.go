package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/pagination"
	"github.com/Jaum1981/cine-api/internal/repository"
	postgresrepo "github.com/Jaum1981/cine-api/internal/repository/postgres"
)

func (s *Service) translatePaymentErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrPaymentNotFound)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%s: %w", op, ErrPaymentConflict)
	case errors.Is(err, repository.ErrForeignKey):
		return fmt.Errorf("%s: %w", op, ErrTicketMissing)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// CreatePayment records payment details. A second payment for the same
// ticket is accepted; the 1:1 relation is not enforced by the schema.
func (s *Service) CreatePayment(ctx context.Context, p domain.PaymentDetails) (*domain.PaymentDetails, error) {
	const op = "service.sales.CreatePayment"

	created, err := s.store.Payments().Create(ctx, p)
	if err != nil {
		return nil, s.translatePaymentErr(op, err)
	}

	return created, nil
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.PaymentDetails, error) {
	const op = "service.sales.GetPayment"

	p, err := s.store.Payments().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrPaymentNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]domain.PaymentDetails, error) {
	const op = "service.sales.ListPayments"

	payments, err := s.store.Payments().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}

func (s *Service) FilterPayments(
	ctx context.Context,
	f domain.PaymentFilter,
	p pagination.Params,
) (pagination.Page[domain.PaymentDetails], error) {
	const op = "service.sales.FilterPayments"

	var zero pagination.Page[domain.PaymentDetails]

	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.store.Payments().Count(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	payments, err := s.store.Payments().List(ctx, f, p.Limit(), p.Offset())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return pagination.NewPage(payments, pagination.NewMeta(p, total, len(payments))), nil
}

func (s *Service) CountPayments(ctx context.Context, f domain.PaymentFilter) (int, error) {
	const op = "service.sales.CountPayments"

	total, err := s.store.Payments().Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Service) UpdatePayment(
	ctx context.Context,
	id int64,
	patch domain.PaymentPatch,
) (*domain.PaymentDetails, error) {
	const op = "service.sales.UpdatePayment"

	var updated *domain.PaymentDetails

	err := s.store.RunTx(ctx, nil, func(ctx context.Context, tx postgresrepo.DB) error {
		repo := s.store.Payments().With(tx)

		p, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(p)

		if err := repo.Update(ctx, *p); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, s.translatePaymentErr(op, err)
	}

	return updated, nil
}

func (s *Service) DeletePayment(ctx context.Context, id int64) error {
	const op = "service.sales.DeletePayment"

	if err := s.store.Payments().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrPaymentNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
