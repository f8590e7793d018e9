package catalog

import "errors"

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrMovieConflict     = errors.New("movie with id already exists")
	ErrDirectorNotFound  = errors.New("director not found")
	ErrDirectorConflict  = errors.New("director with id already exists")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomConflict      = errors.New("room with id already exists")
	ErrLinkConflict      = errors.New("movie and director already linked")
	ErrLinkNotFound      = errors.New("movie and director are not linked")
	ErrLinkTargetMissing = errors.New("movie or director does not exist")
	ErrReferenced        = errors.New("row is referenced by other records")
)
