package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/repository"
)

type DirectorRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *DirectorRepo) With(db DB) *DirectorRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *DirectorRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *DirectorRepo) Create(ctx context.Context, d domain.Director) (*domain.Director, error) {
	const op = "postgresrepo.DirectorRepo.Create"

	db := r.handle()

	var err error
	if d.ID != 0 {
		err = db.QueryRow(ctx,
			`INSERT INTO directors (director_id, director_name, nationality, birth_date, biography, website)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING director_id`,
			d.ID, d.Name, d.Nationality, d.BirthDate, d.Biography, d.Website,
		).Scan(&d.ID)
	} else {
		err = db.QueryRow(ctx,
			`INSERT INTO directors (director_name, nationality, birth_date, biography, website)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING director_id`,
			d.Name, d.Nationality, d.BirthDate, d.Biography, d.Website,
		).Scan(&d.ID)
	}
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &d, nil
}

func (r *DirectorRepo) Get(ctx context.Context, id int64) (*domain.Director, error) {
	const op = "postgresrepo.DirectorRepo.Get"

	db := r.handle()

	var d domain.Director
	err := db.QueryRow(ctx,
		`SELECT director_id, director_name, nationality, birth_date, biography, website
		 FROM directors WHERE director_id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Nationality, &d.BirthDate, &d.Biography, &d.Website)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &d, nil
}

func (r *DirectorRepo) ListAll(ctx context.Context) ([]domain.Director, error) {
	const op = "postgresrepo.DirectorRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT director_id, director_name, nationality, birth_date, biography, website
		 FROM directors
		 ORDER BY director_id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Director
	for rows.Next() {
		var d domain.Director
		if err := rows.Scan(&d.ID, &d.Name, &d.Nationality, &d.BirthDate, &d.Biography, &d.Website); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *DirectorRepo) List(
	ctx context.Context,
	f domain.DirectorFilter,
	limit, offset int,
) ([]domain.Director, error) {
	const op = "postgresrepo.DirectorRepo.List"

	db := r.handle()

	b := directorConds(f)
	n := b.next()
	q := fmt.Sprintf(
		`SELECT director_id, director_name, nationality, birth_date, biography, website
		 FROM directors %s
		 ORDER BY director_id
		 LIMIT $%d OFFSET $%d`,
		b.where(), n, n+1,
	)

	rows, err := db.Query(ctx, q, append(b.args, limit, offset)...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Director
	for rows.Next() {
		var d domain.Director
		if err := rows.Scan(&d.ID, &d.Name, &d.Nationality, &d.BirthDate, &d.Biography, &d.Website); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *DirectorRepo) Count(ctx context.Context, f domain.DirectorFilter) (int, error) {
	const op = "postgresrepo.DirectorRepo.Count"

	db := r.handle()

	b := directorConds(f)

	var total int
	err := db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM directors %s`, b.where()),
		b.args...,
	).Scan(&total)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return total, nil
}

func (r *DirectorRepo) Update(ctx context.Context, d domain.Director) error {
	const op = "postgresrepo.DirectorRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE directors
		 SET director_name = $2, nationality = $3, birth_date = $4, biography = $5, website = $6
		 WHERE director_id = $1`,
		d.ID, d.Name, d.Nationality, d.BirthDate, d.Biography, d.Website,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *DirectorRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.DirectorRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM directors WHERE director_id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// ListMovies resolves the reverse side of the movie/director link at query
// time; there is no maintained in-memory back-reference.
func (r *DirectorRepo) ListMovies(ctx context.Context, directorID int64) ([]domain.Movie, error) {
	const op = "postgresrepo.DirectorRepo.ListMovies"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT m.movie_id, m.movie_title, m.genre, m.duration, m.rating, m.synopsis
		 FROM movies m
		 JOIN movie_directors md ON md.movie_id = m.movie_id
		 WHERE md.director_id = $1
		 ORDER BY m.movie_id`,
		directorID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Duration, &m.Rating, &m.Synopsis); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
