package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/pkg/logger"
	"github.com/your-org/voice-shop/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGenerated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestIDPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")

	assert.Equal(t, "abc-123", serve(r, req).Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{Security: config.SecurityConfig{
		CORSAllowedOrigins: []string{"http://localhost:3000", "*.example.com"},
		CORSAllowedMethods: []string{"GET", "POST"},
	}}
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := map[string]bool{
		"http://localhost:3000":    true,
		"https://shop.example.com": true,
		"https://evilexample.com":  false,
		"http://other":             false,
	}
	for origin, allowed := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", origin)
		got := serve(r, req).Header().Get("Access-Control-Allow-Origin")
		if allowed {
			assert.Equal(t, origin, got)
		} else {
			assert.Empty(t, got, origin)
		}
	}

	pre := httptest.NewRequest(http.MethodOptions, "/", nil)
	w := serve(r, pre)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestRequestSizeLimit(t *testing.T) {
	r := gin.New()
	r.Use(RequestSizeLimit(8))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("way more than eight bytes")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.True(t, hasDeadline)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusRequestTimeout, serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil)).Code)
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	cfg := &config.Config{Security: config.SecurityConfig{RateLimitPerMinute: 1}}
	r := gin.New()
	r.Use(RateLimit(cfg, nil, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.New("test")
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	serve(r, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/items/2", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/items/:id", "GET", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("unmatched", "GET", "404")))
}

func TestLogger(t *testing.T) {
	log, hook := logrustest.NewNullLogger()
	r := gin.New()
	r.Use(RequestID(), Logger(log))
	r.GET("/carts/:id", func(c *gin.Context) { c.String(http.StatusOK, "hi") })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("store exploded"))
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/carts/c-1", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := serve(r, req)
	assert.Equal(t, "hi", w.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "/carts/:id", entry.Data["route"])
	assert.Equal(t, "/carts/c-1", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])

	serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	entry = hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Data["error"], "store exploded")

	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	entry = hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "unmatched", entry.Data["route"])
}
