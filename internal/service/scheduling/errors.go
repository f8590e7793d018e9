package scheduling

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionConflict    = errors.New("session with id already exists")
	ErrRoomOrMovieMissing = errors.New("room_id or movie_id does not exist")
	ErrSessionReferenced  = errors.New("session has tickets")
)
