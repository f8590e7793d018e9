package httpgin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectorRequest_ToDomain(t *testing.T) {
	req := CreateDirectorRequest{
		DirectorID:  5,
		Name:        "Denis Villeneuve",
		Nationality: "Canadian",
		BirthDate:   "1967-10-03T00:00:00Z",
		Biography:   "bio",
		Website:     "https://example.com",
	}

	d, err := req.toDomain()
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.ID)
	assert.Equal(t, time.Date(1967, 10, 3, 0, 0, 0, 0, time.UTC), d.BirthDate.UTC())
}

func TestCreateDirectorRequest_BadWebsite(t *testing.T) {
	req := CreateDirectorRequest{
		Name:        "X",
		Nationality: "Y",
		BirthDate:   "1967-10-03T00:00:00Z",
		Biography:   "Z",
		Website:     "ftp://example.com",
	}

	_, err := req.toDomain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "website")
}

func TestCreateDirectorRequest_BadDate(t *testing.T) {
	req := CreateDirectorRequest{
		Name:        "X",
		Nationality: "Y",
		BirthDate:   "03/10/1967",
		Biography:   "Z",
		Website:     "https://example.com",
	}

	_, err := req.toDomain()
	require.Error(t, err)
	// the error must name the offending field
	assert.Contains(t, err.Error(), "birth_date")
}

func TestUpdateDirectorRequest_ToPatch_PartialDates(t *testing.T) {
	req := UpdateDirectorRequest{Name: strPtr("New Name")}

	patch, err := req.toPatch()
	require.NoError(t, err)
	assert.Nil(t, patch.BirthDate)
	require.NotNil(t, patch.Name)
	assert.Equal(t, "New Name", *patch.Name)
}

func TestUpdateDirectorRequest_ToPatch_WebsiteValidated(t *testing.T) {
	req := UpdateDirectorRequest{Website: strPtr("example.com")}

	_, err := req.toPatch()
	require.Error(t, err)
}

func TestCreateSessionRequest_ToDomain(t *testing.T) {
	req := CreateSessionRequest{
		DateTime:       "2026-03-14T19:30:00Z",
		ExhibitionType: "3D",
		LanguageAudio:  "en",
		StatusSession:  "scheduled",
		RoomID:         int64Ptr(2),
	}

	s, err := req.toDomain()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC), s.DateTime.UTC())
	assert.Nil(t, s.MovieID)
	assert.Nil(t, s.LanguageSubtitles)
	require.NotNil(t, s.RoomID)
	assert.Equal(t, int64(2), *s.RoomID)
}

func TestCreateSessionRequest_BadDate(t *testing.T) {
	req := CreateSessionRequest{
		DateTime:       "next friday",
		ExhibitionType: "2D",
		LanguageAudio:  "en",
		StatusSession:  "scheduled",
	}

	_, err := req.toDomain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date_time")
}

func TestUpdateSessionRequest_ToPatch(t *testing.T) {
	req := UpdateSessionRequest{
		DateTime:      strPtr("2026-04-01T21:00:00Z"),
		StatusSession: strPtr("cancelled"),
	}

	patch, err := req.toPatch()
	require.NoError(t, err)
	require.NotNil(t, patch.DateTime)
	assert.Equal(t, time.Date(2026, 4, 1, 21, 0, 0, 0, time.UTC), patch.DateTime.UTC())
	assert.Nil(t, patch.ExhibitionType)
	assert.Nil(t, patch.RoomID)
}

func TestCreateTicketRequest_ToDomain(t *testing.T) {
	req := CreateTicketRequest{
		ChairNumber:   12,
		TicketType:    "half",
		TicketPrice:   12.5,
		PurchaseDate:  "2026-02-01T14:00:00Z",
		PaymentStatus: "pending",
		SessionID:     int64Ptr(41),
	}

	tk, err := req.toDomain()
	require.NoError(t, err)
	assert.Equal(t, 12.5, tk.TicketPrice)
	require.NotNil(t, tk.SessionID)
	assert.Equal(t, int64(41), *tk.SessionID)
}

func TestCreatePaymentRequest_BadDate(t *testing.T) {
	req := CreatePaymentRequest{
		TransactionID: "tx-1",
		PaymentMethod: "pix",
		FinalPrice:    10,
		Status:        "approved",
		PaymentDate:   "yesterday",
	}

	_, err := req.toDomain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment_date")
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
