package httpgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONWithCache(t *testing.T) {
	body := map[string]any{"movie_id": 1, "total_revenue": 125.5}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/movie-revenue", nil)

	writeJSONWithCache(c, http.StatusOK, body, "public, max-age=30", true)

	require.Equal(t, http.StatusOK, w.Code)
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "public, max-age=30", w.Header().Get("Cache-Control"))

	// same payload with If-None-Match gives 304 and no body
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/reports/movie-revenue", nil)
	c2.Request.Header.Set("If-None-Match", etag)

	writeJSONWithCache(c2, http.StatusOK, body, "public, max-age=30", true)
	// gin defers the status until the engine flushes it; with CreateTestContext
	// no engine runs, so flush manually before inspecting the recorder.
	c2.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNotModified, w2.Code)
	assert.Empty(t, w2.Body.String())
	assert.Equal(t, etag, w2.Header().Get("ETag"))
}
