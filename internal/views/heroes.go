package views

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
)

// HeroesView is the hero list screen.
type HeroesView struct {
	svc HeroService

	mu     sync.Mutex
	heroes []core.Hero

	background errgroup.Group
}

// NewHeroesView creates an empty list view.
func NewHeroesView(svc HeroService) *HeroesView {
	return &HeroesView{svc: svc, heroes: []core.Hero{}}
}

// Load replaces the list with the service's heroes. The last response to arrive wins.
func (v *HeroesView) Load(ctx context.Context) {
	heroes := v.svc.List(ctx).Value

	v.mu.Lock()
	v.heroes = heroes
	v.mu.Unlock()
}

// Add creates a hero named name and appends it once the service returns it.
// Blank names are ignored. It reports whether a hero was appended.
func (v *HeroesView) Add(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	res := v.svc.Create(ctx, name)
	if res.Failed() || res.Value == nil {
		return false
	}

	v.mu.Lock()
	v.heroes = append(v.heroes, *res.Value)
	v.mu.Unlock()
	return true
}

// Delete removes hero from the list right away, then asks the service to delete it
// in the background without waiting for or checking the outcome.
func (v *HeroesView) Delete(ctx context.Context, hero core.Hero) {
	v.mu.Lock()
	v.heroes = lo.Filter(v.heroes, func(h core.Hero, _ int) bool {
		return h.ID != hero.ID
	})
	v.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	v.background.Go(func() error {
		v.svc.Delete(bg, hero.ID)
		return nil
	})
}

// Wait blocks until background deletes have finished.
func (v *HeroesView) Wait() {
	_ = v.background.Wait()
}

// Heroes returns a copy of the current list.
func (v *HeroesView) Heroes() []core.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]core.Hero, len(v.heroes))
	copy(out, v.heroes)
	return out
}
