package httpgin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jaum1981/cine-api/internal/pagination"
	"github.com/Jaum1981/cine-api/internal/service/catalog"
	"github.com/Jaum1981/cine-api/internal/service/reports"
	"github.com/Jaum1981/cine-api/internal/service/sales"
	"github.com/Jaum1981/cine-api/internal/service/scheduling"
)

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// respondErr maps service sentinel errors to HTTP statuses. Anything not in
// the table is a 500 with a generic body; the wrapped detail stays in logs.
func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// pagination
	case errors.Is(err, pagination.ErrPageOutOfRange),
		errors.Is(err, pagination.ErrPerPageOutOfRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	// catalog service
	case errors.Is(err, catalog.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found"})
		return
	case errors.Is(err, catalog.ErrMovieConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "movie with this id already exists"})
		return
	case errors.Is(err, catalog.ErrDirectorNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "director not found"})
		return
	case errors.Is(err, catalog.ErrDirectorConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "director with this id already exists"})
		return
	case errors.Is(err, catalog.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	case errors.Is(err, catalog.ErrRoomConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "room with this id already exists"})
		return
	case errors.Is(err, catalog.ErrLinkConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "movie and director already linked"})
		return
	case errors.Is(err, catalog.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie and director are not linked"})
		return
	case errors.Is(err, catalog.ErrLinkTargetMissing):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie or director does not exist"})
		return
	case errors.Is(err, catalog.ErrReferenced):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "record is referenced by other records"})
		return
	// scheduling service
	case errors.Is(err, scheduling.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	case errors.Is(err, scheduling.ErrSessionConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "session with this id already exists"})
		return
	case errors.Is(err, scheduling.ErrRoomOrMovieMissing):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "room_id or movie_id does not exist"})
		return
	case errors.Is(err, scheduling.ErrSessionReferenced):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session has tickets"})
		return
	// sales service
	case errors.Is(err, sales.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "ticket not found"})
		return
	case errors.Is(err, sales.ErrTicketConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "ticket with this id already exists"})
		return
	case errors.Is(err, sales.ErrSessionMissing):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session_id does not exist"})
		return
	case errors.Is(err, sales.ErrTicketReferenced):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ticket has payment details"})
		return
	case errors.Is(err, sales.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "payment details not found"})
		return
	case errors.Is(err, sales.ErrPaymentConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "payment details with this id already exist"})
		return
	case errors.Is(err, sales.ErrTicketMissing):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ticket_id does not exist"})
		return
	// reports service
	case errors.Is(err, reports.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found"})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// emptyIfNil keeps bare-array endpoints from serializing null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// --- query/param helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

// pageParams reads page/per_page from the query string. Missing values get
// the defaults; non-numeric values are a 400 right away, range checks happen
// in the service via Params.Validate.
func pageParams(c *gin.Context) (pagination.Params, bool) {
	p := pagination.Params{Page: 1, PerPage: pagination.DefaultPerPage}

	if s := c.Query("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, "invalid page")
			return p, false
		}
		p.Page = v
	}

	if s := c.Query("per_page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, "invalid per_page")
			return p, false
		}
		p.PerPage = v
	}

	return p, true
}

func optString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func optInt(c *gin.Context, name string) (*int, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	return &v, true
}

func optInt64(c *gin.Context, name string) (*int64, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	return &v, true
}

func optBool(c *gin.Context, name string) (*bool, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	return &v, true
}

func optTime(c *gin.Context, name string) (*time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		badRequest(c, "invalid "+name+" (expected RFC3339)")
		return nil, false
	}
	return &t, true
}
