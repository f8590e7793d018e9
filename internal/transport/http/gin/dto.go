package httpgin

import (
	"fmt"
	"strings"
	"time"

	"github.com/Jaum1981/cine-api/internal/domain"
)

type CreateMovieRequest struct {
	MovieID  int64  `json:"movie_id"`
	Title    string `json:"movie_title" binding:"required"`
	Genre    string `json:"genre" binding:"required"`
	Duration int    `json:"duration" binding:"required,gt=0"`
	Rating   string `json:"rating" binding:"required"`
	Synopsis string `json:"synopsis" binding:"required"`
}

func (r CreateMovieRequest) toDomain() domain.Movie {
	return domain.Movie{
		ID:       r.MovieID,
		Title:    r.Title,
		Genre:    r.Genre,
		Duration: r.Duration,
		Rating:   r.Rating,
		Synopsis: r.Synopsis,
	}
}

type UpdateMovieRequest struct {
	Title    *string `json:"movie_title"`
	Genre    *string `json:"genre"`
	Duration *int    `json:"duration"`
	Rating   *string `json:"rating"`
	Synopsis *string `json:"synopsis"`
}

func (r UpdateMovieRequest) toPatch() domain.MoviePatch {
	return domain.MoviePatch{
		Title:    r.Title,
		Genre:    r.Genre,
		Duration: r.Duration,
		Rating:   r.Rating,
		Synopsis: r.Synopsis,
	}
}

type CreateDirectorRequest struct {
	DirectorID  int64  `json:"director_id"`
	Name        string `json:"director_name" binding:"required"`
	Nationality string `json:"nationality" binding:"required"`
	BirthDate   string `json:"birth_date" binding:"required"`
	Biography   string `json:"biography" binding:"required"`
	Website     string `json:"website" binding:"required"`
}

func (r CreateDirectorRequest) toDomain() (domain.Director, error) {
	if err := validateWebsite(r.Website); err != nil {
		return domain.Director{}, err
	}

	birthDate, err := parseTimeField("birth_date", r.BirthDate)
	if err != nil {
		return domain.Director{}, err
	}

	return domain.Director{
		ID:          r.DirectorID,
		Name:        r.Name,
		Nationality: r.Nationality,
		BirthDate:   birthDate,
		Biography:   r.Biography,
		Website:     r.Website,
	}, nil
}

type UpdateDirectorRequest struct {
	Name        *string `json:"director_name"`
	Nationality *string `json:"nationality"`
	BirthDate   *string `json:"birth_date"`
	Biography   *string `json:"biography"`
	Website     *string `json:"website"`
}

func (r UpdateDirectorRequest) toPatch() (domain.DirectorPatch, error) {
	if r.Website != nil {
		if err := validateWebsite(*r.Website); err != nil {
			return domain.DirectorPatch{}, err
		}
	}

	birthDate, err := parseOptTimeField("birth_date", r.BirthDate)
	if err != nil {
		return domain.DirectorPatch{}, err
	}

	return domain.DirectorPatch{
		Name:        r.Name,
		Nationality: r.Nationality,
		BirthDate:   birthDate,
		Biography:   r.Biography,
		Website:     r.Website,
	}, nil
}

type CreateRoomRequest struct {
	RoomID        int64  `json:"room_id"`
	Name          string `json:"room_name" binding:"required"`
	Capacity      int    `json:"capacity" binding:"required,gt=0"`
	ScreenType    string `json:"screen_type" binding:"required"`
	AudioSystem   string `json:"audio_system" binding:"required"`
	Accessibility *bool  `json:"accessibility" binding:"required"`
}

func (r CreateRoomRequest) toDomain() domain.Room {
	return domain.Room{
		ID:            r.RoomID,
		Name:          r.Name,
		Capacity:      r.Capacity,
		ScreenType:    r.ScreenType,
		AudioSystem:   r.AudioSystem,
		Accessibility: *r.Accessibility,
	}
}

type UpdateRoomRequest struct {
	Name          *string `json:"room_name"`
	Capacity      *int    `json:"capacity"`
	ScreenType    *string `json:"screen_type"`
	AudioSystem   *string `json:"audio_system"`
	Accessibility *bool   `json:"accessibility"`
}

func (r UpdateRoomRequest) toPatch() domain.RoomPatch {
	return domain.RoomPatch{
		Name:          r.Name,
		Capacity:      r.Capacity,
		ScreenType:    r.ScreenType,
		AudioSystem:   r.AudioSystem,
		Accessibility: r.Accessibility,
	}
}

type CreateSessionRequest struct {
	SessionID         int64   `json:"session_id"`
	DateTime          string  `json:"date_time" binding:"required"`
	ExhibitionType    string  `json:"exhibition_type" binding:"required"`
	LanguageAudio     string  `json:"language_audio" binding:"required"`
	LanguageSubtitles *string `json:"language_subtitles"`
	StatusSession     string  `json:"status_session" binding:"required"`
	RoomID            *int64  `json:"room_id"`
	MovieID           *int64  `json:"movie_id"`
}

func (r CreateSessionRequest) toDomain() (domain.Session, error) {
	dateTime, err := parseTimeField("date_time", r.DateTime)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		ID:                r.SessionID,
		DateTime:          dateTime,
		ExhibitionType:    r.ExhibitionType,
		LanguageAudio:     r.LanguageAudio,
		LanguageSubtitles: r.LanguageSubtitles,
		StatusSession:     r.StatusSession,
		RoomID:            r.RoomID,
		MovieID:           r.MovieID,
	}, nil
}

type UpdateSessionRequest struct {
	DateTime          *string `json:"date_time"`
	ExhibitionType    *string `json:"exhibition_type"`
	LanguageAudio     *string `json:"language_audio"`
	LanguageSubtitles *string `json:"language_subtitles"`
	StatusSession     *string `json:"status_session"`
	RoomID            *int64  `json:"room_id"`
	MovieID           *int64  `json:"movie_id"`
}

func (r UpdateSessionRequest) toPatch() (domain.SessionPatch, error) {
	dateTime, err := parseOptTimeField("date_time", r.DateTime)
	if err != nil {
		return domain.SessionPatch{}, err
	}

	return domain.SessionPatch{
		DateTime:          dateTime,
		ExhibitionType:    r.ExhibitionType,
		LanguageAudio:     r.LanguageAudio,
		LanguageSubtitles: r.LanguageSubtitles,
		StatusSession:     r.StatusSession,
		RoomID:            r.RoomID,
		MovieID:           r.MovieID,
	}, nil
}

type CreateTicketRequest struct {
	TicketID      int64   `json:"ticket_id"`
	ChairNumber   int     `json:"chair_number" binding:"required,gt=0"`
	TicketType    string  `json:"ticket_type" binding:"required"`
	TicketPrice   float64 `json:"ticket_price" binding:"required,gte=0"`
	PurchaseDate  string  `json:"purchase_date" binding:"required"`
	PaymentStatus string  `json:"payment_status" binding:"required"`
	SessionID     *int64  `json:"session_id"`
}

func (r CreateTicketRequest) toDomain() (domain.Ticket, error) {
	purchaseDate, err := parseTimeField("purchase_date", r.PurchaseDate)
	if err != nil {
		return domain.Ticket{}, err
	}

	return domain.Ticket{
		ID:            r.TicketID,
		ChairNumber:   r.ChairNumber,
		TicketType:    r.TicketType,
		TicketPrice:   r.TicketPrice,
		PurchaseDate:  purchaseDate,
		PaymentStatus: r.PaymentStatus,
		SessionID:     r.SessionID,
	}, nil
}

type UpdateTicketRequest struct {
	ChairNumber   *int     `json:"chair_number"`
	TicketType    *string  `json:"ticket_type"`
	TicketPrice   *float64 `json:"ticket_price"`
	PurchaseDate  *string  `json:"purchase_date"`
	PaymentStatus *string  `json:"payment_status"`
	SessionID     *int64   `json:"session_id"`
}

func (r UpdateTicketRequest) toPatch() (domain.TicketPatch, error) {
	purchaseDate, err := parseOptTimeField("purchase_date", r.PurchaseDate)
	if err != nil {
		return domain.TicketPatch{}, err
	}

	return domain.TicketPatch{
		ChairNumber:   r.ChairNumber,
		TicketType:    r.TicketType,
		TicketPrice:   r.TicketPrice,
		PurchaseDate:  purchaseDate,
		PaymentStatus: r.PaymentStatus,
		SessionID:     r.SessionID,
	}, nil
}

type CreatePaymentRequest struct {
	PaymentID     int64   `json:"payment_id"`
	TransactionID string  `json:"transaction_id" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	FinalPrice    float64 `json:"final_price" binding:"required,gte=0"`
	Status        string  `json:"status" binding:"required"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
	TicketID      *int64  `json:"ticket_id"`
}

func (r CreatePaymentRequest) toDomain() (domain.PaymentDetails, error) {
	paymentDate, err := parseTimeField("payment_date", r.PaymentDate)
	if err != nil {
		return domain.PaymentDetails{}, err
	}

	return domain.PaymentDetails{
		ID:            r.PaymentID,
		TransactionID: r.TransactionID,
		PaymentMethod: r.PaymentMethod,
		FinalPrice:    r.FinalPrice,
		Status:        r.Status,
		PaymentDate:   paymentDate,
		TicketID:      r.TicketID,
	}, nil
}

type UpdatePaymentRequest struct {
	TransactionID *string  `json:"transaction_id"`
	PaymentMethod *string  `json:"payment_method"`
	FinalPrice    *float64 `json:"final_price"`
	Status        *string  `json:"status"`
	PaymentDate   *string  `json:"payment_date"`
	TicketID      *int64   `json:"ticket_id"`
}

func (r UpdatePaymentRequest) toPatch() (domain.PaymentPatch, error) {
	paymentDate, err := parseOptTimeField("payment_date", r.PaymentDate)
	if err != nil {
		return domain.PaymentPatch{}, err
	}

	return domain.PaymentPatch{
		TransactionID: r.TransactionID,
		PaymentMethod: r.PaymentMethod,
		FinalPrice:    r.FinalPrice,
		Status:        r.Status,
		PaymentDate:   paymentDate,
		TicketID:      r.TicketID,
	}, nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

// parseTimeField parses an RFC3339 timestamp, naming the offending field on
// failure so validation errors point at the right input.
func parseTimeField(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s (expected RFC3339)", field)
	}
	return t, nil
}

func parseOptTimeField(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}

	t, err := parseTimeField(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func validateWebsite(website string) error {
	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		return fmt.Errorf("invalid website (must start with http:// or https://)")
	}
	return nil
}
