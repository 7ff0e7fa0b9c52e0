// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meshrf/planner/internal/config"
)

func TestExpandURLTemplate(t *testing.T) {
	got := expandURLTemplate("https://tiles.example.com/{z}/{x}/{y}.png", TileKey{Z: 12, X: 654, Y: 1423})
	want := "https://tiles.example.com/12/654/1423.png"
	if got != want {
		t.Errorf("expandURLTemplate() = %q, want %q", got, want)
	}
}

func TestHTTPSource_FetchSuccess(t *testing.T) {
	grid := flatGrid(4, 123.0)
	body, err := EncodeTerrainRGBPNG(grid)
	if err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}))
	defer server.Close()

	cfg := config.TileSourceConfig{
		URLTemplate:         server.URL + "/{z}/{x}/{y}.png",
		Timeout:             time.Second,
		BreakerMaxRequests:  1,
		BreakerInterval:     time.Minute,
		BreakerTimeout:      time.Second,
		BreakerFailureRatio: 0.6,
		BreakerMinRequests:  5,
	}
	src := NewHTTPSource(cfg)

	data, err := src.Fetch(context.Background(), TileKey{Z: 1, X: 1, Y: 1})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(data) != len(body) {
		t.Errorf("fetched %d bytes, want %d", len(data), len(body))
	}
}

func TestHTTPSource_Fetch404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := config.TileSourceConfig{
		URLTemplate:         server.URL + "/{z}/{x}/{y}.png",
		Timeout:             time.Second,
		BreakerMaxRequests:  1,
		BreakerInterval:     time.Minute,
		BreakerTimeout:      time.Second,
		BreakerFailureRatio: 0.6,
		BreakerMinRequests:  5,
	}
	src := NewHTTPSource(cfg)

	_, err := src.Fetch(context.Background(), TileKey{Z: 1, X: 1, Y: 1})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestHTTPSource_TripsBreakerOnRepeatedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := config.TileSourceConfig{
		URLTemplate:         server.URL + "/{z}/{x}/{y}.png",
		Timeout:             time.Second,
		BreakerMaxRequests:  1,
		BreakerInterval:     time.Minute,
		BreakerTimeout:      time.Minute,
		BreakerFailureRatio: 0.5,
		BreakerMinRequests:  2,
	}
	src := NewHTTPSource(cfg)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		src.Fetch(ctx, TileKey{Z: 1, X: 1, Y: 1})
	}

	_, err := src.Fetch(ctx, TileKey{Z: 1, X: 1, Y: 1})
	if err == nil {
		t.Fatal("expected circuit breaker to be open after repeated failures")
	}
}

func TestStateToStringAndFloat(t *testing.T) {
	if stateToString(3) != "unknown" {
		t.Error("expected unknown for out-of-range state")
	}
	if stateToFloat(3) != -1 {
		t.Error("expected -1 for out-of-range state")
	}
}
