package domain

import "time"

// Filter types hold optional listing criteria. A nil field contributes no
// predicate; set fields combine with AND.

type MovieFilter struct {
	TitleContains *string
	Genre         *string
}

type DirectorFilter struct {
	NameContains *string
	Nationality  *string
}

type RoomFilter struct {
	NameContains  *string
	ScreenType    *string
	Accessibility *bool
}

type SessionFilter struct {
	After         *time.Time
	Before        *time.Time
	StatusSession *string
	RoomID        *int64
	MovieID       *int64
}

type TicketFilter struct {
	ChairNumber   *int
	TicketType    *string
	PaymentStatus *string
}

type PaymentFilter struct {
	TransactionIDContains *string
	PaymentMethod         *string
	Status                *string
}
