package domain

import "time"

// Movie is a film in the catalog. Directors are attached through the
// movie_directors link table, sessions reference movies by movie_id.
type Movie struct {
	ID       int64  `json:"movie_id"`
	Title    string `json:"movie_title"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
	Rating   string `json:"rating"`
	Synopsis string `json:"synopsis"`
}

type Director struct {
	ID          int64     `json:"director_id"`
	Name        string    `json:"director_name"`
	Nationality string    `json:"nationality"`
	BirthDate   time.Time `json:"birth_date"`
	Biography   string    `json:"biography"`
	Website     string    `json:"website"`
}

type Room struct {
	ID            int64  `json:"room_id"`
	Name          string `json:"room_name"`
	Capacity      int    `json:"capacity"`
	ScreenType    string `json:"screen_type"`
	AudioSystem   string `json:"audio_system"`
	Accessibility bool   `json:"accessibility"`
}

// Session is a single screening. RoomID and MovieID are optional; when set
// they must reference existing rows (enforced by the database).
type Session struct {
	ID                int64     `json:"session_id"`
	DateTime          time.Time `json:"date_time"`
	ExhibitionType    string    `json:"exhibition_type"`
	LanguageAudio     string    `json:"language_audio"`
	LanguageSubtitles *string   `json:"language_subtitles"`
	StatusSession     string    `json:"status_session"`
	RoomID            *int64    `json:"room_id"`
	MovieID           *int64    `json:"movie_id"`
}

type Ticket struct {
	ID            int64     `json:"ticket_id"`
	ChairNumber   int       `json:"chair_number"`
	TicketType    string    `json:"ticket_type"`
	TicketPrice   float64   `json:"ticket_price"`
	PurchaseDate  time.Time `json:"purchase_date"`
	PaymentStatus string    `json:"payment_status"`
	SessionID     *int64    `json:"session_id"`
}

// PaymentDetails pairs with a ticket one-to-one by convention; the schema
// does not enforce uniqueness of ticket_id.
type PaymentDetails struct {
	ID            int64     `json:"payment_id"`
	TransactionID string    `json:"transaction_id"`
	PaymentMethod string    `json:"payment_method"`
	FinalPrice    float64   `json:"final_price"`
	Status        string    `json:"status"`
	PaymentDate   time.Time `json:"payment_date"`
	TicketID      *int64    `json:"ticket_id"`
}

// MovieRevenue is one row of the revenue-per-movie report.
type MovieRevenue struct {
	MovieID      int64   `json:"movie_id"`
	MovieTitle   string  `json:"movie_title"`
	TotalRevenue float64 `json:"total_revenue"`
	TicketsSold  int64   `json:"tickets_sold"`
}

// SessionSummary annotates a session with its ticket aggregates. Sessions
// without tickets report zero sold and zero revenue.
type SessionSummary struct {
	SessionID         int64     `json:"session_id"`
	DateTime          time.Time `json:"date_time"`
	ExhibitionType    string    `json:"exhibition_type"`
	LanguageAudio     string    `json:"language_audio"`
	LanguageSubtitles *string   `json:"language_subtitles"`
	StatusSession     string    `json:"status_session"`
	TicketsSold       int64     `json:"tickets_sold"`
	Revenue           float64   `json:"revenue"`
}
