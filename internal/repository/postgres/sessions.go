package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/repository"
)

type SessionRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *SessionRepo) With(db DB) *SessionRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *SessionRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a session. room_id/movie_id pointing at missing rows trip
// the foreign keys and come back as repository.ErrForeignKey.
func (r *SessionRepo) Create(ctx context.Context, s domain.Session) (*domain.Session, error) {
	const op = "postgresrepo.SessionRepo.Create"

	db := r.handle()

	var err error
	if s.ID != 0 {
		err = db.QueryRow(ctx,
			`INSERT INTO sessions (session_id, date_time, exhibition_type, language_audio,
			                       language_subtitles, status_session, room_id, movie_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING session_id`,
			s.ID, s.DateTime, s.ExhibitionType, s.LanguageAudio,
			s.LanguageSubtitles, s.StatusSession, s.RoomID, s.MovieID,
		).Scan(&s.ID)
	} else {
		err = db.QueryRow(ctx,
			`INSERT INTO sessions (date_time, exhibition_type, language_audio,
			                       language_subtitles, status_session, room_id, movie_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING session_id`,
			s.DateTime, s.ExhibitionType, s.LanguageAudio,
			s.LanguageSubtitles, s.StatusSession, s.RoomID, s.MovieID,
		).Scan(&s.ID)
	}
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (r *SessionRepo) Get(ctx context.Context, id int64) (*domain.Session, error) {
	const op = "postgresrepo.SessionRepo.Get"

	db := r.handle()

	var s domain.Session
	err := db.QueryRow(ctx,
		`SELECT session_id, date_time, exhibition_type, language_audio,
		        language_subtitles, status_session, room_id, movie_id
		 FROM sessions WHERE session_id = $1`,
		id,
	).Scan(&s.ID, &s.DateTime, &s.ExhibitionType, &s.LanguageAudio,
		&s.LanguageSubtitles, &s.StatusSession, &s.RoomID, &s.MovieID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (r *SessionRepo) ListAll(ctx context.Context) ([]domain.Session, error) {
	const op = "postgresrepo.SessionRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT session_id, date_time, exhibition_type, language_audio,
		        language_subtitles, status_session, room_id, movie_id
		 FROM sessions
		 ORDER BY date_time, session_id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.DateTime, &s.ExhibitionType, &s.LanguageAudio,
			&s.LanguageSubtitles, &s.StatusSession, &s.RoomID, &s.MovieID); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// List orders by date_time with session_id as the tiebreaker; two sessions at
// the same instant must not swap between pages.
func (r *SessionRepo) List(
	ctx context.Context,
	f domain.SessionFilter,
	limit, offset int,
) ([]domain.Session, error) {
	const op = "postgresrepo.SessionRepo.List"

	db := r.handle()

	b := sessionConds(f)
	n := b.next()
	q := fmt.Sprintf(
		`SELECT session_id, date_time, exhibition_type, language_audio,
		        language_subtitles, status_session, room_id, movie_id
		 FROM sessions %s
		 ORDER BY date_time, session_id
		 LIMIT $%d OFFSET $%d`,
		b.where(), n, n+1,
	)

	rows, err := db.Query(ctx, q, append(b.args, limit, offset)...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.DateTime, &s.ExhibitionType, &s.LanguageAudio,
			&s.LanguageSubtitles, &s.StatusSession, &s.RoomID, &s.MovieID); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *SessionRepo) Count(ctx context.Context, f domain.SessionFilter) (int, error) {
	const op = "postgresrepo.SessionRepo.Count"

	db := r.handle()

	b := sessionConds(f)

	var total int
	err := db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM sessions %s`, b.where()),
		b.args...,
	).Scan(&total)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return total, nil
}

func (r *SessionRepo) Update(ctx context.Context, s domain.Session) error {
	const op = "postgresrepo.SessionRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE sessions
		 SET date_time = $2, exhibition_type = $3, language_audio = $4,
		     language_subtitles = $5, status_session = $6, room_id = $7, movie_id = $8
		 WHERE session_id = $1`,
		s.ID, s.DateTime, s.ExhibitionType, s.LanguageAudio,
		s.LanguageSubtitles, s.StatusSession, s.RoomID, s.MovieID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.SessionRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
