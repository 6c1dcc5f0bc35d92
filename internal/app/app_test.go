package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tour-of-heroes/internal/config"
	"github.com/vovakirdan/tour-of-heroes/internal/log"
	"github.com/vovakirdan/tour-of-heroes/internal/proto"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"
	cfg.DatabasePath = filepath.Join(t.TempDir(), "heroes.db")
	cfg.RateLimitPerMinute = 0
	cfg.ShutdownTimeout = time.Second
	return cfg
}

func listHeroes(t *testing.T, a *App) []proto.Hero {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, proto.HeroesPath, nil)
	resp := httptest.NewRecorder()
	a.Handler().ServeHTTP(resp, req)

	var heroes []proto.Hero
	if err := json.Unmarshal(resp.Body.Bytes(), &heroes); err != nil {
		t.Fatalf("failed to decode heroes: %v", err)
	}
	return heroes
}

func TestNewSeedsOnlyOnce(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, err := New(ctx, &cfg, log.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := len(listHeroes(t, first)); got != 9 {
		t.Fatalf("expected 9 seeded heroes, got %d", got)
	}
	first.Close()

	second, err := New(ctx, &cfg, log.Nop())
	if err != nil {
		t.Fatalf("New failed on reopen: %v", err)
	}
	defer second.Close()
	if got := len(listHeroes(t, second)); got != 9 {
		t.Fatalf("reopen must not reseed, got %d heroes", got)
	}
}

func TestNewWithoutSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedHeroes = false

	a, err := New(context.Background(), &cfg, log.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()

	if got := len(listHeroes(t, a)); got != 0 {
		t.Fatalf("expected empty store, got %d heroes", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(context.Background(), &cfg, log.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
