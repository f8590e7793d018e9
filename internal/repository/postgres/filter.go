package postgresrepo

import (
	"fmt"
	"strings"

	"github.com/Jaum1981/cine-api/internal/domain"
)

// condSet accumulates WHERE predicates with positional arguments. Nil
// criteria add nothing, set criteria combine with AND. Placeholders are
// numbered after any seed arguments, so builders can extend a query that
// already binds values.
type condSet struct {
	conds []string
	args  []any
}

func (b *condSet) add(col, cmp string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf("%s %s $%d", col, cmp, len(b.args)))
}

// where renders the clause, or an empty string when no predicate was added.
func (b *condSet) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// next returns the placeholder number for the first argument appended after
// the predicate set (LIMIT/OFFSET, typically).
func (b *condSet) next() int {
	return len(b.args) + 1
}

func eq[T any](b *condSet, col string, v *T) {
	if v == nil {
		return
	}
	b.add(col, "=", *v)
}

func contains(b *condSet, col string, v *string) {
	if v == nil {
		return
	}
	b.add(col, "ILIKE", "%"+*v+"%")
}

func atLeast[T any](b *condSet, col string, v *T) {
	if v == nil {
		return
	}
	b.add(col, ">=", *v)
}

func atMost[T any](b *condSet, col string, v *T) {
	if v == nil {
		return
	}
	b.add(col, "<=", *v)
}

func movieConds(f domain.MovieFilter) *condSet {
	b := &condSet{}
	contains(b, "movie_title", f.TitleContains)
	eq(b, "genre", f.Genre)
	return b
}

func directorConds(f domain.DirectorFilter) *condSet {
	b := &condSet{}
	contains(b, "director_name", f.NameContains)
	eq(b, "nationality", f.Nationality)
	return b
}

func roomConds(f domain.RoomFilter) *condSet {
	b := &condSet{}
	contains(b, "room_name", f.NameContains)
	eq(b, "screen_type", f.ScreenType)
	eq(b, "accessibility", f.Accessibility)
	return b
}

func sessionConds(f domain.SessionFilter) *condSet {
	b := &condSet{}
	atLeast(b, "date_time", f.After)
	atMost(b, "date_time", f.Before)
	eq(b, "status_session", f.StatusSession)
	eq(b, "room_id", f.RoomID)
	eq(b, "movie_id", f.MovieID)
	return b
}

func ticketConds(f domain.TicketFilter) *condSet {
	b := &condSet{}
	eq(b, "chair_number", f.ChairNumber)
	eq(b, "ticket_type", f.TicketType)
	eq(b, "payment_status", f.PaymentStatus)
	return b
}

func paymentConds(f domain.PaymentFilter) *condSet {
	b := &condSet{}
	contains(b, "transaction_id", f.TransactionIDContains)
	eq(b, "payment_method", f.PaymentMethod)
	eq(b, "status", f.Status)
	return b
}
