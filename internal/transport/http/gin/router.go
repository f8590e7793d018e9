package httpgin

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Jaum1981/cine-api/internal/service"
)

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	movies := r.Group("/movies")
	{
		movies.POST("", handleCreateMovie(svcs))
		movies.GET("", handleListMovies(svcs))
		movies.GET("/filter", handleFilterMovies(svcs))
		movies.GET("/count", handleCountMovies(svcs))
		movies.GET("/:id", handleGetMovie(svcs))
		movies.PUT("/:id", handleUpdateMovie(svcs))
		movies.DELETE("/:id", handleDeleteMovie(svcs))

		movies.GET("/:id/directors", handleMovieDirectors(svcs))
		movies.POST("/:id/directors/:director_id", handleLinkDirector(svcs))
		movies.DELETE("/:id/directors/:director_id", handleUnlinkDirector(svcs))
	}

	directors := r.Group("/directors")
	{
		directors.POST("", handleCreateDirector(svcs))
		directors.GET("", handleListDirectors(svcs))
		directors.GET("/filter", handleFilterDirectors(svcs))
		directors.GET("/count", handleCountDirectors(svcs))
		directors.GET("/:id", handleGetDirector(svcs))
		directors.PUT("/:id", handleUpdateDirector(svcs))
		directors.DELETE("/:id", handleDeleteDirector(svcs))

		directors.GET("/:id/movies", handleDirectorMovies(svcs))
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", handleCreateRoom(svcs))
		rooms.GET("", handleListRooms(svcs))
		rooms.GET("/filter", handleFilterRooms(svcs))
		rooms.GET("/count", handleCountRooms(svcs))
		rooms.GET("/:id", handleGetRoom(svcs))
		rooms.PUT("/:id", handleUpdateRoom(svcs))
		rooms.DELETE("/:id", handleDeleteRoom(svcs))
	}

	sessions := r.Group("/sessions")
	{
		sessions.POST("", handleCreateSession(svcs))
		sessions.GET("", handleListSessions(svcs))
		sessions.GET("/filter", handleFilterSessions(svcs))
		sessions.GET("/count", handleCountSessions(svcs))
		sessions.GET("/:id", handleGetSession(svcs))
		sessions.PUT("/:id", handleUpdateSession(svcs))
		sessions.DELETE("/:id", handleDeleteSession(svcs))
	}

	tickets := r.Group("/tickets")
	{
		tickets.POST("", handleCreateTicket(svcs))
		tickets.GET("", handleListTickets(svcs))
		tickets.GET("/filter", handleFilterTickets(svcs))
		tickets.GET("/count", handleCountTickets(svcs))
		tickets.GET("/:id", handleGetTicket(svcs))
		tickets.PUT("/:id", handleUpdateTicket(svcs))
		tickets.DELETE("/:id", handleDeleteTicket(svcs))
	}

	payments := r.Group("/payments")
	{
		payments.POST("", handleCreatePayment(svcs))
		payments.GET("", handleListPayments(svcs))
		payments.GET("/filter", handleFilterPayments(svcs))
		payments.GET("/count", handleCountPayments(svcs))
		payments.GET("/:id", handleGetPayment(svcs))
		payments.PUT("/:id", handleUpdatePayment(svcs))
		payments.DELETE("/:id", handleDeletePayment(svcs))
	}

	reports := r.Group("/reports")
	{
		reports.GET("/movie-revenue", handleMovieRevenue(svcs))
		reports.GET("/movies/:id/sessions", handleMovieSessions(svcs))
	}

	return r
}
