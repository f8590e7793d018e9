package httpgin

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaum1981/cine-api/internal/pagination"
	"github.com/Jaum1981/cine-api/internal/service/catalog"
	"github.com/Jaum1981/cine-api/internal/service/reports"
	"github.com/Jaum1981/cine-api/internal/service/sales"
	"github.com/Jaum1981/cine-api/internal/service/scheduling"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestRespondErr_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"page out of range", pagination.ErrPageOutOfRange, http.StatusBadRequest},
		{"per_page out of range", pagination.ErrPerPageOutOfRange, http.StatusBadRequest},
		{"movie not found", catalog.ErrMovieNotFound, http.StatusNotFound},
		{"movie conflict", catalog.ErrMovieConflict, http.StatusConflict},
		{"director not found", catalog.ErrDirectorNotFound, http.StatusNotFound},
		{"director conflict", catalog.ErrDirectorConflict, http.StatusConflict},
		{"room not found", catalog.ErrRoomNotFound, http.StatusNotFound},
		{"room conflict", catalog.ErrRoomConflict, http.StatusConflict},
		{"link conflict", catalog.ErrLinkConflict, http.StatusConflict},
		{"link not found", catalog.ErrLinkNotFound, http.StatusNotFound},
		{"link target missing", catalog.ErrLinkTargetMissing, http.StatusNotFound},
		{"referenced", catalog.ErrReferenced, http.StatusBadRequest},
		{"session not found", scheduling.ErrSessionNotFound, http.StatusNotFound},
		{"session conflict", scheduling.ErrSessionConflict, http.StatusConflict},
		{"room or movie missing", scheduling.ErrRoomOrMovieMissing, http.StatusBadRequest},
		{"session referenced", scheduling.ErrSessionReferenced, http.StatusBadRequest},
		{"ticket not found", sales.ErrTicketNotFound, http.StatusNotFound},
		{"ticket conflict", sales.ErrTicketConflict, http.StatusConflict},
		{"session missing", sales.ErrSessionMissing, http.StatusBadRequest},
		{"ticket referenced", sales.ErrTicketReferenced, http.StatusBadRequest},
		{"payment not found", sales.ErrPaymentNotFound, http.StatusNotFound},
		{"payment conflict", sales.ErrPaymentConflict, http.StatusConflict},
		{"ticket missing", sales.ErrTicketMissing, http.StatusBadRequest},
		{"report movie not found", reports.ErrMovieNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("/")
			respondErr(c, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespondErr_WrappedError(t *testing.T) {
	c, w := testContext("/")
	wrapped := errors.Join(errors.New("service.catalog.GetMovie"), catalog.ErrMovieNotFound)
	respondErr(c, wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"movie not found"}`, w.Body.String())
}

func TestRespondErr_UnknownHidesDetail(t *testing.T) {
	c, w := testContext("/")
	respondErr(c, errors.New("pq: something leaked"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestPageParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, _ := testContext("/movies/filter")
		p, ok := pageParams(c)
		require.True(t, ok)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, pagination.DefaultPerPage, p.PerPage)
	})

	t.Run("explicit values", func(t *testing.T) {
		c, _ := testContext("/movies/filter?page=3&per_page=25")
		p, ok := pageParams(c)
		require.True(t, ok)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.PerPage)
	})

	t.Run("non-numeric page is a 400", func(t *testing.T) {
		c, w := testContext("/movies/filter?page=abc")
		_, ok := pageParams(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric per_page is a 400", func(t *testing.T) {
		c, w := testContext("/movies/filter?per_page=ten")
		_, ok := pageParams(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("out-of-range values pass through for the service to reject", func(t *testing.T) {
		c, _ := testContext("/movies/filter?page=0&per_page=500")
		p, ok := pageParams(c)
		require.True(t, ok)
		assert.Error(t, p.Validate())
	})
}

func TestOptTime(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		c, _ := testContext("/sessions/filter")
		v, ok := optTime(c, "after")
		require.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("valid RFC3339", func(t *testing.T) {
		c, _ := testContext("/sessions/filter?after=2026-03-14T19:30:00Z")
		v, ok := optTime(c, "after")
		require.True(t, ok)
		require.NotNil(t, v)
		assert.Equal(t, time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC), v.UTC())
	})

	t.Run("malformed names the field", func(t *testing.T) {
		c, w := testContext("/sessions/filter?before=14-03-2026")
		_, ok := optTime(c, "before")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "before")
	})
}

func TestOptBool(t *testing.T) {
	c, _ := testContext("/rooms/filter?accessibility=false")
	v, ok := optBool(c, "accessibility")
	require.True(t, ok)
	require.NotNil(t, v)
	assert.False(t, *v)

	c2, w2 := testContext("/rooms/filter?accessibility=maybe")
	_, ok = optBool(c2, "accessibility")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestOptInt64(t *testing.T) {
	c, _ := testContext("/sessions/filter?room_id=42")
	v, ok := optInt64(c, "room_id")
	require.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, int64(42), *v)

	c2, w2 := testContext("/sessions/filter?room_id=x")
	_, ok = optInt64(c2, "room_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestEmptyIfNil(t *testing.T) {
	assert.Equal(t, []int{}, emptyIfNil[int](nil))
	assert.Equal(t, []int{1}, emptyIfNil([]int{1}))
}
