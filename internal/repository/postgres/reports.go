package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jaum1981/cine-api/internal/domain"
)

type ReportRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReportRepo) With(db DB) *ReportRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReportRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// MovieRevenue aggregates ticket sales per movie. Movies join their sessions
// inner (a movie with no sessions does not appear) and sessions join tickets
// LEFT, so a movie whose sessions sold nothing still shows 0.0 revenue and 0
// tickets. Ties on revenue break by movie_id for stable output.
func (r *ReportRepo) MovieRevenue(ctx context.Context, descending bool) ([]domain.MovieRevenue, error) {
	const op = "postgresrepo.ReportRepo.MovieRevenue"

	db := r.handle()

	dir := "ASC"
	if descending {
		dir = "DESC"
	}

	rows, err := db.Query(ctx, fmt.Sprintf(
		`SELECT m.movie_id, m.movie_title,
		        COALESCE(SUM(t.ticket_price), 0) AS total_revenue,
		        COUNT(t.ticket_id) AS tickets_sold
		 FROM movies m
		 JOIN sessions s ON s.movie_id = m.movie_id
		 LEFT JOIN tickets t ON t.session_id = s.session_id
		 GROUP BY m.movie_id, m.movie_title
		 ORDER BY total_revenue %s, m.movie_id`,
		dir,
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.MovieRevenue
	for rows.Next() {
		var mr domain.MovieRevenue
		if err := rows.Scan(&mr.MovieID, &mr.MovieTitle, &mr.TotalRevenue, &mr.TicketsSold); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, mr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func movieSessionConds(movieID int64, after, before *time.Time) *condSet {
	b := &condSet{}
	b.add("s.movie_id", "=", movieID)
	atLeast(b, "s.date_time", after)
	atMost(b, "s.date_time", before)
	return b
}

// MovieSessions lists one page of session summaries for a movie. Tickets
// join LEFT so a session with no sales still appears with zero aggregates.
func (r *ReportRepo) MovieSessions(
	ctx context.Context,
	movieID int64,
	after, before *time.Time,
	limit, offset int,
) ([]domain.SessionSummary, error) {
	const op = "postgresrepo.ReportRepo.MovieSessions"

	db := r.handle()

	b := movieSessionConds(movieID, after, before)
	n := b.next()
	q := fmt.Sprintf(
		`SELECT s.session_id, s.date_time, s.exhibition_type, s.language_audio,
		        s.language_subtitles, s.status_session,
		        COUNT(t.ticket_id) AS tickets_sold,
		        COALESCE(SUM(t.ticket_price), 0) AS revenue
		 FROM sessions s
		 LEFT JOIN tickets t ON t.session_id = s.session_id
		 %s
		 GROUP BY s.session_id, s.date_time, s.exhibition_type, s.language_audio,
		          s.language_subtitles, s.status_session
		 ORDER BY s.date_time, s.session_id
		 LIMIT $%d OFFSET $%d`,
		b.where(), n, n+1,
	)

	rows, err := db.Query(ctx, q, append(b.args, limit, offset)...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.SessionSummary
	for rows.Next() {
		var ss domain.SessionSummary
		if err := rows.Scan(&ss.SessionID, &ss.DateTime, &ss.ExhibitionType, &ss.LanguageAudio,
			&ss.LanguageSubtitles, &ss.StatusSession, &ss.TicketsSold, &ss.Revenue); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// CountMovieSessions counts the sessions that MovieSessions would page
// through, before grouping.
func (r *ReportRepo) CountMovieSessions(
	ctx context.Context,
	movieID int64,
	after, before *time.Time,
) (int, error) {
	const op = "postgresrepo.ReportRepo.CountMovieSessions"

	db := r.handle()

	b := movieSessionConds(movieID, after, before)

	var total int
	err := db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM sessions s %s`, b.where()),
		b.args...,
	).Scan(&total)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return total, nil
}
