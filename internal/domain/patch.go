package domain

import "time"

// Patch types carry partial updates. A nil field means "leave untouched",
// mirroring the create/update contract: absent fields are never reset.
// Each Apply enumerates its fields explicitly so a renamed column breaks the
// build instead of silently no-opping.

type MoviePatch struct {
	Title    *string
	Genre    *string
	Duration *int
	Rating   *string
	Synopsis *string
}

func (p MoviePatch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Genre != nil {
		m.Genre = *p.Genre
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.Synopsis != nil {
		m.Synopsis = *p.Synopsis
	}
}

type DirectorPatch struct {
	Name        *string
	Nationality *string
	BirthDate   *time.Time
	Biography   *string
	Website     *string
}

func (p DirectorPatch) Apply(d *Director) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Nationality != nil {
		d.Nationality = *p.Nationality
	}
	if p.BirthDate != nil {
		d.BirthDate = *p.BirthDate
	}
	if p.Biography != nil {
		d.Biography = *p.Biography
	}
	if p.Website != nil {
		d.Website = *p.Website
	}
}

type RoomPatch struct {
	Name          *string
	Capacity      *int
	ScreenType    *string
	AudioSystem   *string
	Accessibility *bool
}

func (p RoomPatch) Apply(r *Room) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.ScreenType != nil {
		r.ScreenType = *p.ScreenType
	}
	if p.AudioSystem != nil {
		r.AudioSystem = *p.AudioSystem
	}
	if p.Accessibility != nil {
		r.Accessibility = *p.Accessibility
	}
}

type SessionPatch struct {
	DateTime          *time.Time
	ExhibitionType    *string
	LanguageAudio     *string
	LanguageSubtitles *string
	StatusSession     *string
	RoomID            *int64
	MovieID           *int64
}

func (p SessionPatch) Apply(s *Session) {
	if p.DateTime != nil {
		s.DateTime = *p.DateTime
	}
	if p.ExhibitionType != nil {
		s.ExhibitionType = *p.ExhibitionType
	}
	if p.LanguageAudio != nil {
		s.LanguageAudio = *p.LanguageAudio
	}
	if p.LanguageSubtitles != nil {
		s.LanguageSubtitles = p.LanguageSubtitles
	}
	if p.StatusSession != nil {
		s.StatusSession = *p.StatusSession
	}
	if p.RoomID != nil {
		s.RoomID = p.RoomID
	}
	if p.MovieID != nil {
		s.MovieID = p.MovieID
	}
}

type TicketPatch struct {
	ChairNumber   *int
	TicketType    *string
	TicketPrice   *float64
	PurchaseDate  *time.Time
	PaymentStatus *string
	SessionID     *int64
}

func (p TicketPatch) Apply(t *Ticket) {
	if p.ChairNumber != nil {
		t.ChairNumber = *p.ChairNumber
	}
	if p.TicketType != nil {
		t.TicketType = *p.TicketType
	}
	if p.TicketPrice != nil {
		t.TicketPrice = *p.TicketPrice
	}
	if p.PurchaseDate != nil {
		t.PurchaseDate = *p.PurchaseDate
	}
	if p.PaymentStatus != nil {
		t.PaymentStatus = *p.PaymentStatus
	}
	if p.SessionID != nil {
		t.SessionID = p.SessionID
	}
}

type PaymentPatch struct {
	TransactionID *string
	PaymentMethod *string
	FinalPrice    *float64
	Status        *string
	PaymentDate   *time.Time
	TicketID      *int64
}

func (p PaymentPatch) Apply(pd *PaymentDetails) {
	if p.TransactionID != nil {
		pd.TransactionID = *p.TransactionID
	}
	if p.PaymentMethod != nil {
		pd.PaymentMethod = *p.PaymentMethod
	}
	if p.FinalPrice != nil {
		pd.FinalPrice = *p.FinalPrice
	}
	if p.Status != nil {
		pd.Status = *p.Status
	}
	if p.PaymentDate != nil {
		pd.PaymentDate = *p.PaymentDate
	}
	if p.TicketID != nil {
		pd.TicketID = p.TicketID
	}
}
