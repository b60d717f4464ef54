package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))
	r.GET("/boom", func(c *ginext.Context) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRecovery_DoesNotTouchHealthyRequests(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/ok", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_ReusesCallerID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		assert.Equal(t, "caller-id", c.GetString("request_id"))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-id", w.Header().Get(RequestIDHeader))
}
