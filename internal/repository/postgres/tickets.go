package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/repository"
)

type TicketRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *TicketRepo) With(db DB) *TicketRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *TicketRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *TicketRepo) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	const op = "postgresrepo.TicketRepo.Create"

	db := r.handle()

	var err error
	if t.ID != 0 {
		err = db.QueryRow(ctx,
			`INSERT INTO tickets (ticket_id, chair_number, ticket_type, ticket_price,
			                      purchase_date, payment_status, session_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING ticket_id`,
			t.ID, t.ChairNumber, t.TicketType, t.TicketPrice,
			t.PurchaseDate, t.PaymentStatus, t.SessionID,
		).Scan(&t.ID)
	} else {
		err = db.QueryRow(ctx,
			`INSERT INTO tickets (chair_number, ticket_type, ticket_price,
			                      purchase_date, payment_status, session_id)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING ticket_id`,
			t.ChairNumber, t.TicketType, t.TicketPrice,
			t.PurchaseDate, t.PaymentStatus, t.SessionID,
		).Scan(&t.ID)
	}
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

func (r *TicketRepo) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "postgresrepo.TicketRepo.Get"

	db := r.handle()

	var t domain.Ticket
	err := db.QueryRow(ctx,
		`SELECT ticket_id, chair_number, ticket_type, ticket_price,
		        purchase_date, payment_status, session_id
		 FROM tickets WHERE ticket_id = $1`,
		id,
	).Scan(&t.ID, &t.ChairNumber, &t.TicketType, &t.TicketPrice,
		&t.PurchaseDate, &t.PaymentStatus, &t.SessionID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

func (r *TicketRepo) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	const op = "postgresrepo.TicketRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT ticket_id, chair_number, ticket_type, ticket_price,
		        purchase_date, payment_status, session_id
		 FROM tickets
		 ORDER BY ticket_id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.ChairNumber, &t.TicketType, &t.TicketPrice,
			&t.PurchaseDate, &t.PaymentStatus, &t.SessionID); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *TicketRepo) List(
	ctx context.Context,
	f domain.TicketFilter,
	limit, offset int,
) ([]domain.Ticket, error) {
	const op = "postgresrepo.TicketRepo.List"

	db := r.handle()

	b := ticketConds(f)
	n := b.next()
	q := fmt.Sprintf(
		`SELECT ticket_id, chair_number, ticket_type, ticket_price,
		        purchase_date, payment_status, session_id
		 FROM tickets %s
		 ORDER BY ticket_id
		 LIMIT $%d OFFSET $%d`,
		b.where(), n, n+1,
	)

	rows, err := db.Query(ctx, q, append(b.args, limit, offset)...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.ChairNumber, &t.TicketType, &t.TicketPrice,
			&t.PurchaseDate, &t.PaymentStatus, &t.SessionID); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *TicketRepo) Count(ctx context.Context, f domain.TicketFilter) (int, error) {
	const op = "postgresrepo.TicketRepo.Count"

	db := r.handle()

	b := ticketConds(f)

	var total int
	err := db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM tickets %s`, b.where()),
		b.args...,
	).Scan(&total)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return total, nil
}

func (r *TicketRepo) Update(ctx context.Context, t domain.Ticket) error {
	const op = "postgresrepo.TicketRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE tickets
		 SET chair_number = $2, ticket_type = $3, ticket_price = $4,
		     purchase_date = $5, payment_status = $6, session_id = $7
		 WHERE ticket_id = $1`,
		t.ID, t.ChairNumber, t.TicketType, t.TicketPrice,
		t.PurchaseDate, t.PaymentStatus, t.SessionID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.TicketRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM tickets WHERE ticket_id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
