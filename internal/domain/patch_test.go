package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string       { return &s }
func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func timePtr(t time.Time) *time.Time {
	return &t
}

func TestMoviePatch_Apply(t *testing.T) {
	m := Movie{
		ID:       1,
		Title:    "Old Title",
		Genre:    "Drama",
		Duration: 120,
		Rating:   "PG-13",
		Synopsis: "old synopsis",
	}

	MoviePatch{
		Title:    strPtr("New Title"),
		Duration: intPtr(141),
	}.Apply(&m)

	assert.Equal(t, "New Title", m.Title)
	assert.Equal(t, 141, m.Duration)
	// absent fields keep their stored values
	assert.Equal(t, "Drama", m.Genre)
	assert.Equal(t, "PG-13", m.Rating)
	assert.Equal(t, "old synopsis", m.Synopsis)
	assert.Equal(t, int64(1), m.ID)
}

func TestMoviePatch_Apply_Empty(t *testing.T) {
	m := Movie{ID: 7, Title: "Unchanged", Genre: "Horror", Duration: 95}
	before := m

	MoviePatch{}.Apply(&m)

	assert.Equal(t, before, m)
}

func TestDirectorPatch_Apply(t *testing.T) {
	born := time.Date(1970, 7, 30, 0, 0, 0, 0, time.UTC)
	d := Director{
		ID:          2,
		Name:        "Old Name",
		Nationality: "British",
		BirthDate:   born,
		Biography:   "bio",
		Website:     "https://example.com",
	}

	newBorn := time.Date(1969, 1, 1, 0, 0, 0, 0, time.UTC)
	DirectorPatch{
		BirthDate: timePtr(newBorn),
		Website:   strPtr("https://example.org"),
	}.Apply(&d)

	assert.Equal(t, newBorn, d.BirthDate)
	assert.Equal(t, "https://example.org", d.Website)
	assert.Equal(t, "Old Name", d.Name)
	assert.Equal(t, "British", d.Nationality)
}

func TestRoomPatch_Apply_BoolFalse(t *testing.T) {
	r := Room{ID: 3, Name: "IMAX 1", Capacity: 200, Accessibility: true}

	falseVal := false
	RoomPatch{Accessibility: &falseVal}.Apply(&r)

	// explicit false must win over the stored true
	assert.False(t, r.Accessibility)
	assert.Equal(t, "IMAX 1", r.Name)
	assert.Equal(t, 200, r.Capacity)
}

func TestSessionPatch_Apply_NullableFKs(t *testing.T) {
	when := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
	s := Session{
		ID:            4,
		DateTime:      when,
		StatusSession: "scheduled",
		RoomID:        int64Ptr(10),
	}

	SessionPatch{
		StatusSession: strPtr("cancelled"),
		MovieID:       int64Ptr(99),
	}.Apply(&s)

	assert.Equal(t, "cancelled", s.StatusSession)
	if assert.NotNil(t, s.MovieID) {
		assert.Equal(t, int64(99), *s.MovieID)
	}
	// untouched FK stays as it was
	if assert.NotNil(t, s.RoomID) {
		assert.Equal(t, int64(10), *s.RoomID)
	}
	assert.Equal(t, when, s.DateTime)
}

func TestSessionPatch_Apply_Subtitles(t *testing.T) {
	s := Session{ID: 5, LanguageSubtitles: strPtr("pt-BR")}

	SessionPatch{LanguageSubtitles: strPtr("en")}.Apply(&s)

	if assert.NotNil(t, s.LanguageSubtitles) {
		assert.Equal(t, "en", *s.LanguageSubtitles)
	}

	SessionPatch{}.Apply(&s)
	if assert.NotNil(t, s.LanguageSubtitles) {
		assert.Equal(t, "en", *s.LanguageSubtitles)
	}
}

func TestTicketPatch_Apply(t *testing.T) {
	bought := time.Date(2026, 2, 1, 14, 0, 0, 0, time.UTC)
	tk := Ticket{
		ID:            6,
		ChairNumber:   12,
		TicketType:    "full",
		TicketPrice:   25.0,
		PurchaseDate:  bought,
		PaymentStatus: "pending",
	}

	TicketPatch{
		TicketPrice:   float64Ptr(12.5),
		PaymentStatus: strPtr("paid"),
		SessionID:     int64Ptr(41),
	}.Apply(&tk)

	assert.Equal(t, 12.5, tk.TicketPrice)
	assert.Equal(t, "paid", tk.PaymentStatus)
	if assert.NotNil(t, tk.SessionID) {
		assert.Equal(t, int64(41), *tk.SessionID)
	}
	assert.Equal(t, 12, tk.ChairNumber)
	assert.Equal(t, bought, tk.PurchaseDate)
}

func TestPaymentPatch_Apply(t *testing.T) {
	paid := time.Date(2026, 2, 1, 14, 5, 0, 0, time.UTC)
	p := PaymentDetails{
		ID:            8,
		TransactionID: "tx-001",
		PaymentMethod: "credit_card",
		FinalPrice:    25.0,
		Status:        "pending",
		PaymentDate:   paid,
	}

	PaymentPatch{
		Status:   strPtr("approved"),
		TicketID: int64Ptr(6),
	}.Apply(&p)

	assert.Equal(t, "approved", p.Status)
	if assert.NotNil(t, p.TicketID) {
		assert.Equal(t, int64(6), *p.TicketID)
	}
	assert.Equal(t, "tx-001", p.TransactionID)
	assert.Equal(t, "credit_card", p.PaymentMethod)
	assert.Equal(t, 25.0, p.FinalPrice)
}
