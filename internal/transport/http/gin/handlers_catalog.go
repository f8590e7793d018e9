package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jaum1981/cine-api/internal/domain"
	"github.com/Jaum1981/cine-api/internal/service"
)

// --- movies ---

// @Summary  Create movie
// @Tags     movies
// @Param    req body  CreateMovieRequest true "payload"
// @Success  201 {object} domain.Movie
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /movies [post]
func handleCreateMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		m, err := svcs.Catalog.CreateMovie(c.Request.Context(), req.toDomain())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// @Summary  List all movies
// @Tags     movies
// @Success  200 {array} domain.Movie
// @Router   /movies [get]
func handleListMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := svcs.Catalog.ListMovies(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(movies))
	}
}

// @Summary  Filter movies
// @Tags     movies
// @Param    page           query int    false "page number"
// @Param    per_page       query int    false "page size"
// @Param    title_contains query string false "substring match"
// @Param    genre          query string false "exact match"
// @Success  200 {object} pagination.Page[domain.Movie]
// @Failure  400 {object} ErrorResponse
// @Router   /movies/filter [get]
func handleFilterMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := pageParams(c)
		if !ok {
			return
		}

		f := domain.MovieFilter{
			TitleContains: optString(c, "title_contains"),
			Genre:         optString(c, "genre"),
		}

		page, err := svcs.Catalog.FilterMovies(c.Request.Context(), f, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary  Count movies
// @Tags     movies
// @Param    title_contains query string false "substring match"
// @Param    genre          query string false "exact match"
// @Success  200 {object} CountResponse
// @Router   /movies/count [get]
func handleCountMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := domain.MovieFilter{
			TitleContains: optString(c, "title_contains"),
			Genre:         optString(c, "genre"),
		}

		n, err := svcs.Catalog.CountMovies(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

// @Summary  Get movie
// @Tags     movies
// @Param    id  path  int  true  "Movie ID"
// @Success  200 {object} domain.Movie
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{id} [get]
func handleGetMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		m, err := svcs.Catalog.GetMovie(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// @Summary  Update movie (partial)
// @Tags     movies
// @Param    id  path  int  true  "Movie ID"
// @Param    req body  UpdateMovieRequest true "fields to change"
// @Success  200 {object} domain.Movie
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{id} [put]
func handleUpdateMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req UpdateMovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		m, err := svcs.Catalog.UpdateMovie(c.Request.Context(), id, req.toPatch())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// @Summary  Delete movie
// @Tags     movies
// @Param    id  path  int  true  "Movie ID"
// @Success  200 {object} DeleteResponse
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{id} [delete]
func handleDeleteMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Catalog.DeleteMovie(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, DeleteResponse{Message: "movie deleted"})
	}
}

// --- movie <-> director links ---

// @Summary  Link director to movie
// @Tags     movies
// @Param    id           path int true "Movie ID"
// @Param    director_id  path int true "Director ID"
// @Success  201 {object} gin.H
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /movies/{id}/directors/{director_id} [post]
func handleLinkDirector(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		directorID, ok := parseInt64Param(c, "director_id")
		if !ok {
			return
		}

		if err := svcs.Catalog.LinkDirector(c.Request.Context(), movieID, directorID); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"linked": true})
	}
}

// @Summary  Unlink director from movie
// @Tags     movies
// @Param    id           path int true "Movie ID"
// @Param    director_id  path int true "Director ID"
// @Success  200 {object} DeleteResponse
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{id}/directors/{director_id} [delete]
func handleUnlinkDirector(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		directorID, ok := parseInt64Param(c, "director_id")
		if !ok {
			return
		}

		if err := svcs.Catalog.UnlinkDirector(c.Request.Context(), movieID, directorID); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, DeleteResponse{Message: "link removed"})
	}
}

// @Summary  List directors of a movie
// @Tags     movies
// @Param    id  path  int  true  "Movie ID"
// @Success  200 {array} domain.Director
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{id}/directors [get]
func handleMovieDirectors(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		directors, err := svcs.Catalog.MovieDirectors(c.Request.Context(), movieID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(directors))
	}
}

// @Summary  List movies of a director
// @Tags     directors
// @Param    id  path  int  true  "Director ID"
// @Success  200 {array} domain.Movie
// @Failure  404 {object} ErrorResponse
// @Router   /directors/{id}/movies [get]
func handleDirectorMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		directorID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		movies, err := svcs.Catalog.DirectorMovies(c.Request.Context(), directorID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(movies))
	}
}

// --- directors ---

// @Summary  Create director
// @Tags     directors
// @Param    req body  CreateDirectorRequest true "payload"
// @Success  201 {object} domain.Director
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /directors [post]
func handleCreateDirector(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateDirectorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		d, err := req.toDomain()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		created, err := svcs.Catalog.CreateDirector(c.Request.Context(), d)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  List all directors
// @Tags     directors
// @Success  200 {array} domain.Director
// @Router   /directors [get]
func handleListDirectors(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		directors, err := svcs.Catalog.ListDirectors(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(directors))
	}
}

// @Summary  Filter directors
// @Tags     directors
// @Param    page          query int    false "page number"
// @Param    per_page      query int    false "page size"
// @Param    name_contains query string false "substring match"
// @Param    nationality   query string false "exact match"
// @Success  200 {object} pagination.Page[domain.Director]
// @Failure  400 {object} ErrorResponse
// @Router   /directors/filter [get]
func handleFilterDirectors(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := pageParams(c)
		if !ok {
			return
		}

		f := domain.DirectorFilter{
			NameContains: optString(c, "name_contains"),
			Nationality:  optString(c, "nationality"),
		}

		page, err := svcs.Catalog.FilterDirectors(c.Request.Context(), f, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary  Count directors
// @Tags     directors
// @Param    name_contains query string false "substring match"
// @Param    nationality   query string false "exact match"
// @Success  200 {object} CountResponse
// @Router   /directors/count [get]
func handleCountDirectors(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := domain.DirectorFilter{
			NameContains: optString(c, "name_contains"),
			Nationality:  optString(c, "nationality"),
		}

		n, err := svcs.Catalog.CountDirectors(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

// @Summary  Get director
// @Tags     directors
// @Param    id  path  int  true  "Director ID"
// @Success  200 {object} domain.Director
// @Failure  404 {object} ErrorResponse
// @Router   /directors/{id} [get]
func handleGetDirector(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		d, err := svcs.Catalog.GetDirector(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// @Summary  Update director (partial)
// @Tags     directors
// @Param    id  path  int  true  "Director ID"
// @Param    req body  UpdateDirectorRequest true "fields to change"
// @Success  200 {object} domain.Director
// @Failure  404 {object} ErrorResponse
// @Router   /directors/{id} [put]
func handleUpdateDirector(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req UpdateDirectorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		patch, err := req.toPatch()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		d, err := svcs.Catalog.UpdateDirector(c.Request.Context(), id, patch)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// @Summary  Delete director
// @Tags     directors
// @Param    id  path  int  true  "Director ID"
// @Success  200 {object} DeleteResponse
// @Failure  404 {object} ErrorResponse
// @Router   /directors/{id} [delete]
func handleDeleteDirector(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Catalog.DeleteDirector(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, DeleteResponse{Message: "director deleted"})
	}
}

// --- rooms ---

// @Summary  Create room
// @Tags     rooms
// @Param    req body  CreateRoomRequest true "payload"
// @Success  201 {object} domain.Room
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /rooms [post]
func handleCreateRoom(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		r, err := svcs.Catalog.CreateRoom(c.Request.Context(), req.toDomain())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

// @Summary  List all rooms
// @Tags     rooms
// @Success  200 {array} domain.Room
// @Router   /rooms [get]
func handleListRooms(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := svcs.Catalog.ListRooms(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(rooms))
	}
}

// @Summary  Filter rooms
// @Tags     rooms
// @Param    page          query int    false "page number"
// @Param    per_page      query int    false "page size"
// @Param    name_contains query string false "substring match"
// @Param    screen_type   query string false "exact match"
// @Param    accessibility query bool   false "exact match"
// @Success  200 {object} pagination.Page[domain.Room]
// @Failure  400 {object} ErrorResponse
// @Router   /rooms/filter [get]
func handleFilterRooms(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := pageParams(c)
		if !ok {
			return
		}

		accessibility, ok := optBool(c, "accessibility")
		if !ok {
			return
		}

		f := domain.RoomFilter{
			NameContains:  optString(c, "name_contains"),
			ScreenType:    optString(c, "screen_type"),
			Accessibility: accessibility,
		}

		page, err := svcs.Catalog.FilterRooms(c.Request.Context(), f, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary  Count rooms
// @Tags     rooms
// @Param    name_contains query string false "substring match"
// @Param    screen_type   query string false "exact match"
// @Param    accessibility query bool   false "exact match"
// @Success  200 {object} CountResponse
// @Router   /rooms/count [get]
func handleCountRooms(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessibility, ok := optBool(c, "accessibility")
		if !ok {
			return
		}

		f := domain.RoomFilter{
			NameContains:  optString(c, "name_contains"),
			ScreenType:    optString(c, "screen_type"),
			Accessibility: accessibility,
		}

		n, err := svcs.Catalog.CountRooms(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

// @Summary  Get room
// @Tags     rooms
// @Param    id  path  int  true  "Room ID"
// @Success  200 {object} domain.Room
// @Failure  404 {object} ErrorResponse
// @Router   /rooms/{id} [get]
func handleGetRoom(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		r, err := svcs.Catalog.GetRoom(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// @Summary  Update room (partial)
// @Tags     rooms
// @Param    id  path  int  true  "Room ID"
// @Param    req body  UpdateRoomRequest true "fields to change"
// @Success  200 {object} domain.Room
// @Failure  404 {object} ErrorResponse
// @Router   /rooms/{id} [put]
func handleUpdateRoom(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req UpdateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		r, err := svcs.Catalog.UpdateRoom(c.Request.Context(), id, req.toPatch())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// @Summary  Delete room
// @Tags     rooms
// @Param    id  path  int  true  "Room ID"
// @Success  200 {object} DeleteResponse
// @Failure  404 {object} ErrorResponse
// @Router   /rooms/{id} [delete]
func handleDeleteRoom(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Catalog.DeleteRoom(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, DeleteResponse{Message: "room deleted"})
	}
}
