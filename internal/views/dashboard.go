package views

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
)

// Dashboard positions shown as top heroes: the second through the fifth.
const (
	topHeroesStart = 1
	topHeroesEnd   = 5
)

// DashboardView shows a handful of top heroes.
type DashboardView struct {
	svc HeroService

	mu  sync.Mutex
	top []core.Hero
}

// NewDashboardView creates an empty dashboard.
func NewDashboardView(svc HeroService) *DashboardView {
	return &DashboardView{svc: svc, top: []core.Hero{}}
}

// Load fetches the list and keeps the top heroes.
func (v *DashboardView) Load(ctx context.Context) {
	heroes := v.svc.List(ctx).Value
	top := lo.Slice(heroes, topHeroesStart, topHeroesEnd)

	v.mu.Lock()
	v.top = append([]core.Hero{}, top...)
	v.mu.Unlock()
}

// TopHeroes returns a copy of the top heroes.
func (v *DashboardView) TopHeroes() []core.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]core.Hero{}, v.top...)
}
