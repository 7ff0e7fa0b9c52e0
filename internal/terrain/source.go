// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/meshrf/planner/internal/config"
	"github.com/meshrf/planner/internal/logging"
	"github.com/meshrf/planner/internal/metrics"
	"github.com/meshrf/planner/internal/rferrors"
)

// Source fetches the encoded bytes of a single terrain tile from an
// upstream provider.
type Source interface {
	Fetch(ctx context.Context, key TileKey) ([]byte, error)
}

// httpSource fetches terrain-RGB tiles over HTTP, protected by a
// circuit breaker so a failing or slow upstream degrades to fast
// failures instead of blocking every caller (spec.md §7
// TileUnavailable).
type httpSource struct {
	cfg    config.TileSourceConfig
	client *http.Client
	cb     *gobreaker.CircuitBreaker[[]byte]
	name   string
}

// NewHTTPSource builds an upstream terrain tile source from cfg,
// wrapping every fetch in a circuit breaker tuned by
// cfg.Breaker{MaxRequests,Interval,Timeout,FailureRatio,MinRequests}.
func NewHTTPSource(cfg config.TileSourceConfig) Source {
	name := "terrain-tile-source"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("terrain tile source circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &httpSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cb:     cb,
		name:   name,
	}
}

func (s *httpSource) Fetch(ctx context.Context, key TileKey) ([]byte, error) {
	start := time.Now()

	data, err := s.cb.Execute(func() ([]byte, error) {
		return s.doFetch(ctx, key)
	})

	metrics.RecordTileFetch(time.Since(start), err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker is open", rferrors.ErrTileUnavailable)
		}
		return nil, err
	}
	return data, nil
}

func (s *httpSource) doFetch(ctx context.Context, key TileKey) ([]byte, error) {
	url := expandURLTemplate(s.cfg.URLTemplate, key)
	if s.cfg.APIKey != "" {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "api_key=" + s.cfg.APIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build tile request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rferrors.ErrTileUnavailable, err)
	}
	defer rferrors.CloseQuietly(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tile source returned %d", rferrors.ErrTileUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading tile body: %v", rferrors.ErrTileUnavailable, err)
	}
	return data, nil
}

func expandURLTemplate(template string, key TileKey) string {
	r := strings.NewReplacer(
		"{z}", strconv.Itoa(key.Z),
		"{x}", strconv.Itoa(key.X),
		"{y}", strconv.Itoa(key.Y),
	)
	return r.Replace(template)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
