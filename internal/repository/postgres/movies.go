package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/repository"
)

type MovieRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *MovieRepo) With(db DB) *MovieRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *MovieRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a movie. A non-zero ID is an explicit client-supplied
// identifier; a collision surfaces as repository.ErrConflict via the unique
// violation, never as an overwrite.
func (r *MovieRepo) Create(ctx context.Context, m domain.Movie) (*domain.Movie, error) {
	const op = "postgresrepo.MovieRepo.Create"

	db := r.handle()

	var err error
	if m.ID != 0 {
		err = db.QueryRow(ctx,
			`INSERT INTO movies (movie_id, movie_title, genre, duration, rating, synopsis)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING movie_id`,
			m.ID, m.Title, m.Genre, m.Duration, m.Rating, m.Synopsis,
		).Scan(&m.ID)
	} else {
		err = db.QueryRow(ctx,
			`INSERT INTO movies (movie_title, genre, duration, rating, synopsis)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING movie_id`,
			m.Title, m.Genre, m.Duration, m.Rating, m.Synopsis,
		).Scan(&m.ID)
	}
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &m, nil
}

func (r *MovieRepo) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	const op = "postgresrepo.MovieRepo.Get"

	db := r.handle()

	var m domain.Movie
	err := db.QueryRow(ctx,
		`SELECT movie_id, movie_title, genre, duration, rating, synopsis
		 FROM movies WHERE movie_id = $1`,
		id,
	).Scan(&m.ID, &m.Title, &m.Genre, &m.Duration, &m.Rating, &m.Synopsis)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &m, nil
}

func (r *MovieRepo) ListAll(ctx context.Context) ([]domain.Movie, error) {
	const op = "postgresrepo.MovieRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT movie_id, movie_title, genre, duration, rating, synopsis
		 FROM movies
		 ORDER BY movie_id`,
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

// List returns one page of movies matching the filter, ordered by movie_id so
// pagination stays deterministic.
func (r *MovieRepo) List(
	ctx context.Context,
	f domain.MovieFilter,
	limit, offset int,
) ([]domain.Movie, error) {
	const op = "postgresrepo.MovieRepo.List"

	db := r.handle()

	b := movieConds(f)
	n := b.next()
	q := fmt.Sprintf(
		`SELECT movie_id, movie_title, genre, duration, rating, synopsis
		 FROM movies %s
		 ORDER BY movie_id
		 LIMIT $%d OFFSET $%d`,
		b.where(), n, n+1,
	)

	rows, err := db.Query(ctx, q, append(b.args, limit, offset)...)
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

func (r *MovieRepo) Count(ctx context.Context, f domain.MovieFilter) (int, error) {
	const op = "postgresrepo.MovieRepo.Count"

	db := r.handle()

	b := movieConds(f)

	var total int
	err := db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM movies %s`, b.where()),
		b.args...,
	).Scan(&total)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return total, nil
}

func (r *MovieRepo) Update(ctx context.Context, m domain.Movie) error {
	const op = "postgresrepo.MovieRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE movies
		 SET movie_title = $2, genre = $3, duration = $4, rating = $5, synopsis = $6
		 WHERE movie_id = $1`,
		m.ID, m.Title, m.Genre, m.Duration, m.Rating, m.Synopsis,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.MovieRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM movies WHERE movie_id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// LinkDirector attaches a director to a movie. Missing rows on either side
// surface as repository.ErrForeignKey; a duplicate link as ErrConflict.
func (r *MovieRepo) LinkDirector(ctx context.Context, movieID, directorID int64) error {
	const op = "postgresrepo.MovieRepo.LinkDirector"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO movie_directors (movie_id, director_id) VALUES ($1, $2)`,
		movieID, directorID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *MovieRepo) UnlinkDirector(ctx context.Context, movieID, directorID int64) error {
	const op = "postgresrepo.MovieRepo.UnlinkDirector"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`DELETE FROM movie_directors WHERE movie_id = $1 AND director_id = $2`,
		movieID, directorID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *MovieRepo) ListDirectors(ctx context.Context, movieID int64) ([]domain.Director, error) {
	const op = "postgresrepo.MovieRepo.ListDirectors"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT d.director_id, d.director_name, d.nationality, d.birth_date, d.biography, d.website
		 FROM directors d
		 JOIN movie_directors md ON md.director_id = d.director_id
		 WHERE md.movie_id = $1
		 ORDER BY d.director_id`,
		movieID,
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
