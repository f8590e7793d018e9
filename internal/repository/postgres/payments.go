package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/repository"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *PaymentRepo) With(db DB) *PaymentRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *PaymentRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts payment details. ticket_id is not unique-constrained: a
// second payment for the same ticket is accepted, matching the historical
// behavior of the schema.
func (r *PaymentRepo) Create(ctx context.Context, p domain.PaymentDetails) (*domain.PaymentDetails, error) {
	const op = "postgresrepo.PaymentRepo.Create"

	db := r.handle()

	var err error
	if p.ID != 0 {
		err = db.QueryRow(ctx,
			`INSERT INTO payment_details (payment_id, transaction_id, payment_method,
			                              final_price, status, payment_date, ticket_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING payment_id`,
			p.ID, p.TransactionID, p.PaymentMethod,
			p.FinalPrice, p.Status, p.PaymentDate, p.TicketID,
		).Scan(&p.ID)
	} else {
		err = db.QueryRow(ctx,
			`INSERT INTO payment_details (transaction_id, payment_method,
			                              final_price, status, payment_date, ticket_id)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING payment_id`,
			p.TransactionID, p.PaymentMethod,
			p.FinalPrice, p.Status, p.PaymentDate, p.TicketID,
		).Scan(&p.ID)
	}
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &p, nil
}

func (r *PaymentRepo) Get(ctx context.Context, id int64) (*domain.PaymentDetails, error) {
	const op = "postgresrepo.PaymentRepo.Get"

	db := r.handle()

	var p domain.PaymentDetails
	err := db.QueryRow(ctx,
		`SELECT payment_id, transaction_id, payment_method, final_price, status, payment_date, ticket_id
		 FROM payment_details WHERE payment_id = $1`,
		id,
	).Scan(&p.ID, &p.TransactionID, &p.PaymentMethod, &p.FinalPrice, &p.Status, &p.PaymentDate, &p.TicketID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &p, nil
}

func (r *PaymentRepo) ListAll(ctx context.Context) ([]domain.PaymentDetails, error) {
	const op = "postgresrepo.PaymentRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT payment_id, transaction_id, payment_method, final_price, status, payment_date, ticket_id
		 FROM payment_details
		 ORDER BY payment_id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.PaymentDetails
	for rows.Next() {
		var p domain.PaymentDetails
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.PaymentMethod, &p.FinalPrice,
			&p.Status, &p.PaymentDate, &p.TicketID); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *PaymentRepo) List(
	ctx context.Context,
	f domain.PaymentFilter,
	limit, offset int,
) ([]domain.PaymentDetails, error) {
	const op = "postgresrepo.PaymentRepo.List"

	db := r.handle()

	b := paymentConds(f)
	n := b.next()
	q := fmt.Sprintf(
		`SELECT payment_id, transaction_id, payment_method, final_price, status, payment_date, ticket_id
		 FROM payment_details %s
		 ORDER BY payment_id
		 LIMIT $%d OFFSET $%d`,
		b.where(), n, n+1,
	)

	rows, err := db.Query(ctx, q, append(b.args, limit, offset)...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.PaymentDetails
	for rows.Next() {
		var p domain.PaymentDetails
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.PaymentMethod, &p.FinalPrice,
			&p.Status, &p.PaymentDate, &p.TicketID); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *PaymentRepo) Count(ctx context.Context, f domain.PaymentFilter) (int, error) {
	const op = "postgresrepo.PaymentRepo.Count"

	db := r.handle()

	b := paymentConds(f)

	var total int
	err := db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM payment_details %s`, b.where()),
		b.args...,
	).Scan(&total)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return total, nil
}

func (r *PaymentRepo) Update(ctx context.Context, p domain.PaymentDetails) error {
	const op = "postgresrepo.PaymentRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE payment_details
		 SET transaction_id = $2, payment_method = $3, final_price = $4,
		     status = $5, payment_date = $6, ticket_id = $7
		 WHERE payment_id = $1`,
		p.ID, p.TransactionID, p.PaymentMethod, p.FinalPrice, p.Status, p.PaymentDate, p.TicketID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.PaymentRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM payment_details WHERE payment_id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
