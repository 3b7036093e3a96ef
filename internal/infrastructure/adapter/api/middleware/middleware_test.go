package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	timeprovider "github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/loan-tracker/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(f map[string]any) bool {
		return f["error"] == "kaboom" && f["path"] == "/boom"
	})).Once()

	r := gin.New()
	r.Use(ErrorHandler(mockLogger))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestLogger_LogsRequests(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusOK && f["path"] == "/ok" && f["request_id"] == "req-1"
	})).Once()
	mockLogger.EXPECT().Warn("Request failed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusInternalServerError
	})).Once()

	ids := mockcore.NewMockIDGenerator(t)

	r := gin.New()
	r.Use(RequestID(ids))
	r.Use(Logger(mockLogger, timeprovider.NewRealTimeProvider()))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	serve(r, req)

	req = httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(RequestIDHeader, "req-2")
	serve(r, req)
}

func TestRequestID_AssignsWhenMissing(t *testing.T) {
	ids := mockcore.NewMockIDGenerator(t)
	ids.EXPECT().NewID().Return("generated").Once()

	r := gin.New()
	r.Use(RequestID(ids))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "generated", w.Body.String())
	assert.Equal(t, "generated", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	t.Run("Wildcard allows every origin", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"*"}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example")
		w := serve(r, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(nil))
		r.POST("/api/users", func(c *gin.Context) { t.Fatal("handler must not run") })
		r.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })

		req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
		req.Header.Set("Origin", "https://app.example")
		w := serve(r, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("Listed origin is echoed", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"https://app.example"}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example")
		w := serve(r, req)
		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		w = serve(r, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		var tooLarge *http.MaxBytesError
		if assert.ErrorAs(t, err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"too":"long for the limit"}`)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSPA(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	r := gin.New()
	r.NoRoute(SPA(dir))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/loans/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil))
	assert.NotContains(t, w.Body.String(), "root:")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodPost, "/loans", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
