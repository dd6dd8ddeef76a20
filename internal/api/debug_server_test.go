package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/annel0/voxel-sandbox/internal/game"
	"github.com/annel0/voxel-sandbox/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu        sync.Mutex
	stats     game.Stats
	submitted []game.Action
	full      bool
}

func (f *fakeSource) Snapshot() game.Stats { return f.stats }

func (f *fakeSource) Submit(a game.Action) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full {
		return false
	}
	f.submitted = append(f.submitted, a)
	return true
}

func newTestServer(t *testing.T, src GameSource) *DebugServer {
	sampler, err := metrics.NewProcessSampler()
	require.NoError(t, err)
	return NewDebugServer(Config{Source: src, Registry: prometheus.NewRegistry(), Sampler: sampler})
}

func do(ds *DebugServer, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ds.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	ds := newTestServer(t, &fakeSource{})
	rec := do(ds, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestStats(t *testing.T) {
	src := &fakeSource{stats: game.Stats{Tick: 42, TPS: 20, Zombies: 7}}
	ds := newTestServer(t, src)
	rec := do(ds, http.MethodGet, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    StatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint64(42), resp.Data.Game.Tick)
	assert.Equal(t, 7, resp.Data.Game.Zombies)
	require.NotNil(t, resp.Data.Process)
	assert.Positive(t, resp.Data.Process.Goroutines)
}

func TestStatsWithoutGame(t *testing.T) {
	ds := NewDebugServer(Config{})
	assert.Equal(t, http.StatusServiceUnavailable, do(ds, http.MethodGet, "/stats").Code)
}

func TestActions(t *testing.T) {
	src := &fakeSource{}
	ds := newTestServer(t, src)

	assert.Equal(t, http.StatusAccepted, do(ds, http.MethodPost, "/actions/save").Code)
	assert.Equal(t, http.StatusBadRequest, do(ds, http.MethodPost, "/actions/explode").Code)
	assert.Equal(t, []game.Action{game.ActionSave}, src.submitted)

	src.full = true
	assert.Equal(t, http.StatusServiceUnavailable, do(ds, http.MethodPost, "/actions/respawn").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ds := newTestServer(t, &fakeSource{})
	do(ds, http.MethodGet, "/health")

	rec := do(ds, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "debug_api_http_request_duration_seconds"))
}
