package tournament

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"standings-chart/internal/features/standings"
	"standings-chart/internal/infra/retry"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{"standings":[{"name":"A","history":[{"hands":0,"credits":0},{"hands":1,"credits":10}]}]}`

func fastOptions(maxRetries int) Options {
	opts := DefaultOptions
	opts.Retry = retry.Options{MaxRetries: maxRetries, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	opts.RatePerSecond = 1000
	return opts
}

func TestFetchStandings(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", fastOptions(0))
	s, err := c.FetchStandings(context.Background(), "spring cup")
	require.NoError(t, err)

	assert.Equal(t, "/standings/spring%20cup", path)
	assert.Equal(t, []string{"A"}, s.Names())
}

func TestFetchStandingsRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	s, err := NewClient(srv.URL, fastOptions(3)).FetchStandings(context.Background(), "t1")
	require.NoError(t, err)
	assert.Len(t, s.Players, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchStandingsNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such tournament", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, fastOptions(3)).FetchStandings(context.Background(), "t1")

	var he *retry.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchStandingsInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"standings":[{"name":"A","history":[]}]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, fastOptions(0)).FetchStandings(context.Background(), "t1")
	assert.ErrorIs(t, err, standings.ErrEmptyHistory)
}

func TestFetchStandingsResponseSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	opts := fastOptions(0)
	opts.MaxResponseSize = 16
	_, err := NewClient(srv.URL, opts).FetchStandings(context.Background(), "t1")
	assert.ErrorContains(t, err, "failed to decode standings payload")
}

func TestCircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, fastOptions(0))
	for i := 0; i < 6; i++ {
		_, err := c.FetchStandings(context.Background(), "t1")
		require.Error(t, err)
	}

	_, err := c.FetchStandings(context.Background(), "t1")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(6), calls.Load())
}

func TestFetchStandingsRejectsEmptyTournament(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", fastOptions(0)).FetchStandings(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchStandingsCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, fastOptions(0)).FetchStandings(ctx, "t1")
	assert.ErrorIs(t, err, context.Canceled)
}
