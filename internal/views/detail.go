package views

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
	"github.com/vovakirdan/tour-of-heroes/internal/messages"
)

// DetailView is the single hero screen.
type DetailView struct {
	svc      HeroService
	messages *messages.Log
	location Location

	mu   sync.Mutex
	hero *core.Hero
}

// NewDetailView creates a detail view that navigates back through location.
func NewDetailView(svc HeroService, msgs *messages.Log, location Location) *DetailView {
	return &DetailView{svc: svc, messages: msgs, location: location}
}

// Activate loads the hero named by the route's "id" parameter.
func (v *DetailView) Activate(ctx context.Context, route Route) {
	raw := route.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		v.messages.Add(fmt.Sprintf("HeroDetail: invalid hero id %q", raw))
		v.setHero(nil)
		return
	}

	v.setHero(v.svc.Get(ctx, id).Value)
}

// Hero returns a copy of the loaded hero, or nil.
func (v *DetailView) Hero() *core.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.hero == nil {
		return nil
	}
	h := *v.hero
	return &h
}

// SetName edits the loaded hero locally. It reports false when nothing is loaded.
func (v *DetailView) SetName(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.hero == nil {
		return false
	}
	v.hero.Name = name
	return true
}

// Save pushes the loaded hero to the service and, once the call completes
// whatever its outcome, navigates back. Without a hero it does nothing.
func (v *DetailView) Save(ctx context.Context) bool {
	hero := v.Hero()
	if hero == nil {
		return false
	}

	v.svc.Update(ctx, *hero)
	v.GoBack()
	return true
}

// GoBack navigates to the previous view.
func (v *DetailView) GoBack() {
	v.location.Back()
}

func (v *DetailView) setHero(h *core.Hero) {
	v.mu.Lock()
	v.hero = h
	v.mu.Unlock()
}
