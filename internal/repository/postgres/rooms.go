package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/repository"
)

type RoomRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *RoomRepo) With(db DB) *RoomRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *RoomRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *RoomRepo) Create(ctx context.Context, rm domain.Room) (*domain.Room, error) {
	const op = "postgresrepo.RoomRepo.Create"

	db := r.handle()

	var err error
	if rm.ID != 0 {
		err = db.QueryRow(ctx,
			`INSERT INTO rooms (room_id, room_name, capacity, screen_type, audio_system, accessibility)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING room_id`,
			rm.ID, rm.Name, rm.Capacity, rm.ScreenType, rm.AudioSystem, rm.Accessibility,
		).Scan(&rm.ID)
	} else {
		err = db.QueryRow(ctx,
			`INSERT INTO rooms (room_name, capacity, screen_type, audio_system, accessibility)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING room_id`,
			rm.Name, rm.Capacity, rm.ScreenType, rm.AudioSystem, rm.Accessibility,
		).Scan(&rm.ID)
	}
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &rm, nil
}

func (r *RoomRepo) Get(ctx context.Context, id int64) (*domain.Room, error) {
	const op = "postgresrepo.RoomRepo.Get"

	db := r.handle()

	var rm domain.Room
	err := db.QueryRow(ctx,
		`SELECT room_id, room_name, capacity, screen_type, audio_system, accessibility
		 FROM rooms WHERE room_id = $1`,
		id,
	).Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.ScreenType, &rm.AudioSystem, &rm.Accessibility)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &rm, nil
}

func (r *RoomRepo) ListAll(ctx context.Context) ([]domain.Room, error) {
	const op = "postgresrepo.RoomRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT room_id, room_name, capacity, screen_type, audio_system, accessibility
		 FROM rooms
		 ORDER BY room_id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.ScreenType, &rm.AudioSystem, &rm.Accessibility); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *RoomRepo) List(
	ctx context.Context,
	f domain.RoomFilter,
	limit, offset int,
) ([]domain.Room, error) {
	const op = "postgresrepo.RoomRepo.List"

	db := r.handle()

	b := roomConds(f)
	n := b.next()
	q := fmt.Sprintf(
		`SELECT room_id, room_name, capacity, screen_type, audio_system, accessibility
		 FROM rooms %s
		 ORDER BY room_id
		 LIMIT $%d OFFSET $%d`,
		b.where(), n, n+1,
	)

	rows, err := db.Query(ctx, q, append(b.args, limit, offset)...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.ScreenType, &rm.AudioSystem, &rm.Accessibility); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *RoomRepo) Count(ctx context.Context, f domain.RoomFilter) (int, error) {
	const op = "postgresrepo.RoomRepo.Count"

	db := r.handle()

	b := roomConds(f)

	var total int
	err := db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM rooms %s`, b.where()),
		b.args...,
	).Scan(&total)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return total, nil
}

func (r *RoomRepo) Update(ctx context.Context, rm domain.Room) error {
	const op = "postgresrepo.RoomRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE rooms
		 SET room_name = $2, capacity = $3, screen_type = $4, audio_system = $5, accessibility = $6
		 WHERE room_id = $1`,
		rm.ID, rm.Name, rm.Capacity, rm.ScreenType, rm.AudioSystem, rm.Accessibility,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *RoomRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.RoomRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM rooms WHERE room_id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
