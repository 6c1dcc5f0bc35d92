package http

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/tour-of-heroes/internal/config"
	"github.com/vovakirdan/tour-of-heroes/internal/store"
	"github.com/vovakirdan/tour-of-heroes/internal/store/sqlite"
)

// createTestStore creates an in-memory SQLite store with migrations applied.
func createTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.New(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// createTestRouter builds the API router over st with logging disabled.
func createTestRouter(t *testing.T, st store.Store, rateLimit int) *gin.Engine {
	t.Helper()

	disabledLogger := zerolog.New(nil)

	cfg := config.Config{
		Addr:               ":0",
		ReadHeaderTimeout:  time.Second,
		ShutdownTimeout:    time.Second,
		RateLimitPerMinute: rateLimit,
	}

	return NewRouter(st, &cfg, &disabledLogger)
}
