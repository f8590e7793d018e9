package postgresrepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Jaum1981/cine-api/internal/domain"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func int64Ptr(i int64) *int64       { return &i }
func boolPtr(b bool) *bool          { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestCondSetEmpty(t *testing.T) {
	b := movieConds(domain.MovieFilter{})

	assert.Equal(t, "", b.where())
	assert.Empty(t, b.args)
	assert.Equal(t, 1, b.next())
}

func TestMovieCondsSubstringIsWrapped(t *testing.T) {
	b := movieConds(domain.MovieFilter{TitleContains: strPtr("matrix")})

	assert.Equal(t, "WHERE movie_title ILIKE $1", b.where())
	assert.Equal(t, []any{"%matrix%"}, b.args)
}

func TestMovieCondsConjunction(t *testing.T) {
	b := movieConds(domain.MovieFilter{
		TitleContains: strPtr("mat"),
		Genre:         strPtr("sci-fi"),
	})

	assert.Equal(t, "WHERE movie_title ILIKE $1 AND genre = $2", b.where())
	assert.Equal(t, []any{"%mat%", "sci-fi"}, b.args)
	assert.Equal(t, 3, b.next())
}

func TestRoomCondsBool(t *testing.T) {
	b := roomConds(domain.RoomFilter{Accessibility: boolPtr(false)})

	// An explicit false must still produce a predicate; only nil is "absent".
	assert.Equal(t, "WHERE accessibility = $1", b.where())
	assert.Equal(t, []any{false}, b.args)
}

func TestSessionCondsDateRange(t *testing.T) {
	after := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)

	b := sessionConds(domain.SessionFilter{
		After:   timePtr(after),
		Before:  timePtr(before),
		RoomID:  int64Ptr(4),
		MovieID: int64Ptr(9),
	})

	assert.Equal(t,
		"WHERE date_time >= $1 AND date_time <= $2 AND room_id = $3 AND movie_id = $4",
		b.where(),
	)
	assert.Equal(t, []any{after, before, int64(4), int64(9)}, b.args)
}

func TestTicketCondsExactOnly(t *testing.T) {
	b := ticketConds(domain.TicketFilter{
		ChairNumber:   intPtr(12),
		PaymentStatus: strPtr("paid"),
	})

	assert.Equal(t, "WHERE chair_number = $1 AND payment_status = $2", b.where())
	assert.Equal(t, []any{12, "paid"}, b.args)
}

func TestPaymentCondsSubstringAndExact(t *testing.T) {
	b := paymentConds(domain.PaymentFilter{
		TransactionIDContains: strPtr("TX-20"),
		PaymentMethod:         strPtr("pix"),
	})

	assert.Equal(t, "WHERE transaction_id ILIKE $1 AND payment_method = $2", b.where())
	assert.Equal(t, []any{"%TX-20%", "pix"}, b.args)
}

func TestMovieSessionCondsSeedsMovieID(t *testing.T) {
	after := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	b := movieSessionConds(7, timePtr(after), nil)

	assert.Equal(t, "WHERE s.movie_id = $1 AND s.date_time >= $2", b.where())
	assert.Equal(t, []any{int64(7), after}, b.args)
	assert.Equal(t, 3, b.next())
}
