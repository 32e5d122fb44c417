package tournament

// HTTP client for a tournament server that publishes live standings.
// Every request goes through a rate limiter and a circuit breaker; transient
// statuses (429, 5xx) are retried with jittered backoff.

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"standings-chart/internal/features/standings"
	"standings-chart/internal/infra/log"
	"standings-chart/internal/infra/retry"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options struct {
	Timeout         time.Duration
	Retry           retry.Options
	RatePerSecond   float64
	Burst           int
	MaxResponseSize int64
}

var DefaultOptions = Options{
	Timeout:         30 * time.Second,
	Retry:           retry.DefaultOptions,
	RatePerSecond:   10,
	Burst:           20,
	MaxResponseSize: 10 * 1024 * 1024,
}

type Client struct {
	baseURL         string
	httpClient      *http.Client
	rateLimiter     *rate.Limiter
	circuitBreaker  *gobreaker.CircuitBreaker
	retry           retry.Options
	maxResponseSize int64
}

func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions.Timeout
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = DefaultOptions.RatePerSecond
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultOptions.Burst
	}
	if opts.MaxResponseSize <= 0 {
		opts.MaxResponseSize = DefaultOptions.MaxResponseSize
	}

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "StandingsAPI",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		// a 404 or a bad payload says nothing about the server's health
		IsSuccessful: func(err error) bool {
			var he *retry.HTTPError
			if errors.As(err, &he) {
				return he.StatusCode < 500 && he.StatusCode != http.StatusTooManyRequests
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.LogWarn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		rateLimiter:     rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst),
		circuitBreaker:  circuitBreaker,
		retry:           opts.Retry,
		maxResponseSize: opts.MaxResponseSize,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}
}

// FetchStandings downloads and validates the standings of one tournament.
func (c *Client) FetchStandings(ctx context.Context, tournament string) (*standings.Standings, error) {
	if tournament == "" {
		return nil, errors.New("tournament is empty")
	}

	body, err := c.get(ctx, "/standings/"+url.PathEscape(tournament))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	s, err := standings.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	log.LogDebug("Standings fetched",
		zap.String("tournament", tournament),
		zap.Int("players", len(s.Players)))
	return s, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	var respBody []byte
	err := retry.Do(ctx, c.retry, func() error {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}

		requestID := log.GenerateRequestID()
		_, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			body, err := c.do(ctx, requestID, endpoint)
			if err != nil {
				return nil, err
			}
			respBody = body
			return nil, nil
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.LogError("Circuit breaker rejected request",
				zap.String("request_id", requestID),
				zap.String("endpoint", endpoint),
				zap.Error(err))
		}
		return err
	})
	return respBody, err
}

func (c *Client) do(ctx context.Context, requestID, endpoint string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.LogRequest(requestID, http.MethodGet, endpoint, zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.LogResponse(requestID, 0, time.Since(start).Milliseconds(), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize))
	duration := time.Since(start).Milliseconds()
	if err != nil {
		log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.LogResponse(requestID, resp.StatusCode, duration,
			zap.String("endpoint", endpoint),
			zap.String("error", "API error response received"))
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       body,
			RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", endpoint), zap.String("status", "success"))
	return body, nil
}
