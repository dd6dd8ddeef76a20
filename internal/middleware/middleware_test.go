package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(reg *prometheus.Registry) (*gin.Engine, *PrometheusMiddleware) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pm := NewPrometheusMiddleware("test", reg)
	r.Use(NewRequestLogger().Handler(), pm.Handler())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/actions/:name", func(c *gin.Context) {
		c.Set(ActionNameKey, c.Param("name"))
		c.Set(ActionResultKey, "queued")
		c.Status(http.StatusAccepted)
	})
	return r, pm
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDIsGeneratedOrKept(t *testing.T) {
	r, _ := newRouter(prometheus.NewRegistry())

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "сервер должен выдать UUID")

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, id)
	assert.Equal(t, id, serve(r, req).Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	assert.NotEqual(t, "not-a-uuid", serve(r, req).Header().Get(RequestIDHeader))
}

func TestUnmatchedRoutesShareOneLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, pm := newRouter(reg)

	serve(r, httptest.NewRequest(http.MethodGet, "/a", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/b/c", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.errors.WithLabelValues("GET", UnmatchedRoute, "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(pm.errors))
}

func TestActionCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, pm := newRouter(reg)

	for i := 0; i < 3; i++ {
		rec := serve(r, httptest.NewRequest(http.MethodPost, "/actions/save", nil))
		require.Equal(t, http.StatusAccepted, rec.Code)
	}
	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(pm.actions.WithLabelValues("save", "queued")))
	assert.Equal(t, 1, testutil.CollectAndCount(pm.actions))
	assert.Equal(t, 0.0, testutil.ToFloat64(pm.inflight))
}
