package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jaum1981/cine-api/internal/service"
)

// @Summary  Revenue per movie
// @Tags     reports
// @Param    sort query string false "desc (default) or asc"
// @Success  200 {array} domain.MovieRevenue
// @Failure  400 {object} ErrorResponse
// @Router   /reports/movie-revenue [get]
func handleMovieRevenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		descending := true
		switch c.Query("sort") {
		case "", "desc":
		case "asc":
			descending = false
		default:
			badRequest(c, "invalid sort (expected asc or desc)")
			return
		}

		report, err := svcs.Reports.MovieRevenue(c.Request.Context(), descending)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 30s: the report is cached server-side too
		writeJSONWithCache(c, http.StatusOK, report, "public, max-age=30", true)
	}
}

// @Summary  Session summaries for a movie
// @Tags     reports
// @Param    id       path  int    true  "Movie ID"
// @Param    page     query int    false "page number"
// @Param    per_page query int    false "page size"
// @Param    after    query string false "inclusive lower date_time bound (RFC3339)"
// @Param    before   query string false "inclusive upper date_time bound (RFC3339)"
// @Success  200 {object} pagination.Page[domain.SessionSummary]
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /reports/movies/{id}/sessions [get]
func handleMovieSessions(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		p, ok := pageParams(c)
		if !ok {
			return
		}

		after, ok := optTime(c, "after")
		if !ok {
			return
		}
		before, ok := optTime(c, "before")
		if !ok {
			return
		}

		page, err := svcs.Reports.MovieSessions(c.Request.Context(), movieID, after, before, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, page, "public, max-age=15", true)
	}
}
