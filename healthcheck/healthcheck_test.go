package healthcheck

import (
	"bytes"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"kucukaslan/timeapp/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, delay time.Duration) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	hits := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		time.Sleep(delay)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, hits
}

func configFor(t *testing.T, srv *httptest.Server, timeout time.Duration) *config.Config {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	return &config.Config{
		Port: port,
		HealthCheck: config.HealthCheckConfig{
			Host:    "127.0.0.1",
			Path:    "/healthz",
			Timeout: timeout,
		},
	}
}

func TestRunHealthy(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, 0)
	var stderr bytes.Buffer

	assert.Equal(t, 0, Run(configFor(t, srv, time.Second), &stderr))
	assert.Equal(t, int32(1), hits.Load())
	assert.Empty(t, stderr.String())
}

func TestRunAcceptsAny2xx(t *testing.T) {
	srv, _ := newServer(t, http.StatusNoContent, 0)
	assert.Equal(t, 0, Run(configFor(t, srv, time.Second), &bytes.Buffer{}))
}

func TestRunUnhealthyStatus(t *testing.T) {
	srv, _ := newServer(t, http.StatusServiceUnavailable, 0)
	var stderr bytes.Buffer

	assert.Equal(t, 1, Run(configFor(t, srv, time.Second), &stderr))
	assert.Contains(t, stderr.String(), "unexpected status 503")
}

func TestRunTimeout(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, 500*time.Millisecond)
	var stderr bytes.Buffer

	assert.Equal(t, 1, Run(configFor(t, srv, 50*time.Millisecond), &stderr))
	assert.NotEmpty(t, stderr.String())
}

func TestRunConnectionRefused(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, 0)
	cfg := configFor(t, srv, time.Second)
	srv.Close()

	assert.Equal(t, 1, Run(cfg, &bytes.Buffer{}))
}

func TestRunInvalidPort(t *testing.T) {
	var stderr bytes.Buffer
	cfg := &config.Config{Port: "not-a-port", HealthCheck: config.HealthCheckConfig{Host: "127.0.0.1", Path: "/healthz"}}

	assert.Equal(t, 1, Run(cfg, &stderr))
	assert.Contains(t, stderr.String(), "invalid PORT")
}
