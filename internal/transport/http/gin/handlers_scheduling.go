package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/service"
)

// @Summary  Create session
// @Tags     sessions
// @Param    req body  CreateSessionRequest true "payload"
// @Success  201 {object} domain.Session
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /sessions [post]
func handleCreateSession(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		sess, err := req.toDomain()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		created, err := svcs.Scheduling.CreateSession(c.Request.Context(), sess)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  List all sessions
// @Tags     sessions
// @Success  200 {array} domain.Session
// @Router   /sessions [get]
func handleListSessions(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := svcs.Scheduling.ListSessions(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(sessions))
	}
}

// @Summary  Filter sessions
// @Tags     sessions
// @Param    page           query int    false "page number"
// @Param    per_page       query int    false "page size"
// @Param    after          query string false "inclusive lower date_time bound (RFC3339)"
// @Param    before         query string false "inclusive upper date_time bound (RFC3339)"
// @Param    status_session query string false "exact match"
// @Param    room_id        query int    false "exact match"
// @Param    movie_id       query int    false "exact match"
// @Success  200 {object} pagination.Page[domain.Session]
// @Failure  400 {object} ErrorResponse
// @Router   /sessions/filter [get]
func handleFilterSessions(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := pageParams(c)
		if !ok {
			return
		}

		f, ok := sessionFilterQuery(c)
		if !ok {
			return
		}

		page, err := svcs.Scheduling.FilterSessions(c.Request.Context(), f, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary  Count sessions
// @Tags     sessions
// @Param    after          query string false "inclusive lower date_time bound (RFC3339)"
// @Param    before         query string false "inclusive upper date_time bound (RFC3339)"
// @Param    status_session query string false "exact match"
// @Param    room_id        query int    false "exact match"
// @Param    movie_id       query int    false "exact match"
// @Success  200 {object} CountResponse
// @Router   /sessions/count [get]
func handleCountSessions(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := sessionFilterQuery(c)
		if !ok {
			return
		}

		n, err := svcs.Scheduling.CountSessions(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

func sessionFilterQuery(c *gin.Context) (domain.SessionFilter, bool) {
	var f domain.SessionFilter

	after, ok := optTime(c, "after")
	if !ok {
		return f, false
	}
	before, ok := optTime(c, "before")
	if !ok {
		return f, false
	}
	roomID, ok := optInt64(c, "room_id")
	if !ok {
		return f, false
	}
	movieID, ok := optInt64(c, "movie_id")
	if !ok {
		return f, false
	}

	f = domain.SessionFilter{
		After:         after,
		Before:        before,
		StatusSession: optString(c, "status_session"),
		RoomID:        roomID,
		MovieID:       movieID,
	}
	return f, true
}

// @Summary  Get session
// @Tags     sessions
// @Param    id  path  int  true  "Session ID"
// @Success  200 {object} domain.Session
// @Failure  404 {object} ErrorResponse
// @Router   /sessions/{id} [get]
func handleGetSession(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		sess, err := svcs.Scheduling.GetSession(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// @Summary  Update session (partial)
// @Tags     sessions
// @Param    id  path  int  true  "Session ID"
// @Param    req body  UpdateSessionRequest true "fields to change"
// @Success  200 {object} domain.Session
// @Failure  404 {object} ErrorResponse
// @Router   /sessions/{id} [put]
func handleUpdateSession(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req UpdateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		patch, err := req.toPatch()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		sess, err := svcs.Scheduling.UpdateSession(c.Request.Context(), id, patch)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// @Summary  Delete session
// @Tags     sessions
// @Param    id  path  int  true  "Session ID"
// @Success  200 {object} DeleteResponse
// @Failure  404 {object} ErrorResponse
// @Router   /sessions/{id} [delete]
func handleDeleteSession(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Scheduling.DeleteSession(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, DeleteResponse{Message: "session deleted"})
	}
}
