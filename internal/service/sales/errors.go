package sales

import "errors"

var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrTicketConflict   = errors.New("ticket with id already exists")
	ErrSessionMissing   = errors.New("session_id does not exist")
	ErrTicketReferenced = errors.New("ticket has payment details")
	ErrPaymentNotFound  = errors.New("payment details not found")
	ErrPaymentConflict  = errors.New("payment details with id already exist")
	ErrTicketMissing    = errors.New("ticket_id does not exist")
)
