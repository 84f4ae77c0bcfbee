package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"nodevitals/internal/errors"
	"nodevitals/internal/server"
	"nodevitals/internal/vitals"
)

// stubScraper is a vitals.System returning canned results.
type stubScraper struct {
	snapshot vitals.MetricsSnapshot
	err      error
}

func (s *stubScraper) ScrapeMetrics(_ context.Context) (vitals.MetricsSnapshot, error) {
	if s.err != nil {
		return vitals.MetricsSnapshot{}, s.err
	}
	return s.snapshot, nil
}

func sampleSnapshot() vitals.MetricsSnapshot {
	return vitals.MetricsSnapshot{
		CPU: vitals.CPUMetrics{
			Frequency: "3200 MHz (8 logical cores)",
			Load:      "load average: 0.50 0.25 0.10",
			Time:      "user 100.0s system 50.0s idle 1000.0s",
		},
		Memory: vitals.MemoryMetrics{
			Memory: "used 500 of 2000 bytes (25.0%)",
			Swap:   "used 100 of 1000 bytes (10.0%)",
		},
		Disk: vitals.DiskMetrics{
			BlockStorageSize: 30,
			BlockStoragePath: "/var/lib/nodevitals/blocks",
		},
	}
}

func newTestServer(t *testing.T, scraper vitals.System) server.Server {
	t.Helper()
	srv, err := server.New("127.0.0.1:0", scraper)
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv server.Server, path, accept string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewValidatesInputs(t *testing.T) {
	_, err := server.New("", &stubScraper{})
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidAddress, errors.CodeOf(err))

	_, err = server.New(":9120", nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
}

func TestHealthEndpointBeforeLifecycleReports(t *testing.T) {
	srv := newTestServer(t, &stubScraper{snapshot: sampleSnapshot()})

	rec := get(t, srv, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(errors.ErrUnavailable), body.Code)
}

func TestHealthEndpointReportsLifecycleStates(t *testing.T) {
	srv := newTestServer(t, &stubScraper{snapshot: sampleSnapshot()})

	srv.Health().Set(vitals.HealthHealthy)
	rec := get(t, srv, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"healthy"}`, rec.Body.String())

	srv.Health().Set(vitals.HealthReady)
	rec = get(t, srv, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"ready"}`, rec.Body.String())
}

func TestHealthEndpointBinaryEncoding(t *testing.T) {
	srv := newTestServer(t, &stubScraper{snapshot: sampleSnapshot()})
	srv.Health().Set(vitals.HealthReady)

	rec := get(t, srv, "/health", "application/msgpack")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/msgpack", rec.Header().Get("Content-Type"))

	var body struct {
		Status vitals.HealthState `msgpack:"status"`
	}
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, vitals.HealthReady, body.Status)
}

func TestMetricsEndpointHumanReadable(t *testing.T) {
	srv := newTestServer(t, &stubScraper{snapshot: sampleSnapshot()})

	rec := get(t, srv, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var decoded vitals.MetricsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, sampleSnapshot(), decoded)
}

func TestMetricsEndpointBinaryEncoding(t *testing.T) {
	srv := newTestServer(t, &stubScraper{snapshot: sampleSnapshot()})

	rec := get(t, srv, "/metrics", "application/msgpack")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/msgpack", rec.Header().Get("Content-Type"))

	decoded, err := vitals.DecodeBinary(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), decoded)
}

func TestMetricsEndpointScrapeFailure(t *testing.T) {
	scrapeErr := errors.New().WithData(vitals.ErrDirectoryUnreadable, "/srv/blocks")
	srv := newTestServer(t, &stubScraper{err: scrapeErr})

	rec := get(t, srv, "/metrics", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// No partial snapshot leaks into the error response.
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(vitals.ErrDirectoryUnreadable), body["code"])
	assert.NotContains(t, body, "cpu")
	assert.NotContains(t, body, "disk")
}

func TestMetricsEndpointMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &stubScraper{snapshot: sampleSnapshot()})

	req := httptest.NewRequest(http.MethodPost, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestStartStopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t, &stubScraper{snapshot: sampleSnapshot()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, srv.Start(ctx))
}
