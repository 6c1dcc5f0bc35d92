package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
)

func TestHeroesViewLoadReplacesState(t *testing.T) {
	req := require.New(t)
	svc := newFakeService(core.Hero{ID: 12, Name: "Dr. Nice"}, core.Hero{ID: 13, Name: "Bombasto"})
	view := NewHeroesView(svc)

	req.Empty(view.Heroes())

	view.Load(context.Background())
	req.Equal([]core.Hero{{ID: 12, Name: "Dr. Nice"}, {ID: 13, Name: "Bombasto"}}, view.Heroes())

	svc.setFailing(true)
	view.Load(context.Background())
	req.NotNil(view.Heroes())
	req.Empty(view.Heroes())
}

func TestHeroesViewAddAppendsCreatedHero(t *testing.T) {
	req := require.New(t)
	svc := newFakeService()
	view := NewHeroesView(svc)

	req.True(view.Add(context.Background(), "  Mr. Nice  "))
	req.Equal([]core.Hero{{ID: 12, Name: "Mr. Nice"}}, view.Heroes())
	req.Equal([]string{"create Mr. Nice"}, svc.Calls())
}

func TestHeroesViewAddBlankIsNoop(t *testing.T) {
	req := require.New(t)
	svc := newFakeService()
	view := NewHeroesView(svc)

	req.False(view.Add(context.Background(), ""))
	req.False(view.Add(context.Background(), "   "))
	req.Empty(svc.Calls())
	req.Empty(view.Heroes())
}

func TestHeroesViewAddFailureAppendsNothing(t *testing.T) {
	req := require.New(t)
	svc := newFakeService()
	svc.setFailing(true)
	view := NewHeroesView(svc)

	req.False(view.Add(context.Background(), "Mr. Nice"))
	req.Empty(view.Heroes())
}

func TestHeroesViewDeleteIsOptimistic(t *testing.T) {
	req := require.New(t)
	svc := newFakeService(core.Hero{ID: 12, Name: "Mr. Nice"}, core.Hero{ID: 13, Name: "Bombasto"})
	svc.deleteGate = make(chan struct{})
	view := NewHeroesView(svc)
	view.Load(context.Background())

	view.Delete(context.Background(), core.Hero{ID: 12, Name: "Mr. Nice"})

	// Gone locally before the service has answered.
	req.Equal([]core.Hero{{ID: 13, Name: "Bombasto"}}, view.Heroes())

	close(svc.deleteGate)
	view.Wait()

	svc.mu.Lock()
	req.Equal([]int64{12}, svc.deleted)
	svc.mu.Unlock()
}

func TestHeroesViewDeleteSurvivesCanceledContext(t *testing.T) {
	req := require.New(t)
	svc := newFakeService(core.Hero{ID: 12, Name: "Mr. Nice"})
	view := NewHeroesView(svc)
	view.Load(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	view.Delete(ctx, core.Hero{ID: 12})
	cancel()
	view.Wait()

	view.Load(context.Background())
	req.Empty(view.Heroes())
}

func TestHeroesViewDeleteFailureKeepsLocalRemoval(t *testing.T) {
	req := require.New(t)
	svc := newFakeService(core.Hero{ID: 12, Name: "Mr. Nice"})
	view := NewHeroesView(svc)
	view.Load(context.Background())

	svc.setFailing(true)
	view.Delete(context.Background(), core.Hero{ID: 12})
	view.Wait()

	req.Empty(view.Heroes())
}
