package views

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tour-of-heroes/internal/client"
	"github.com/vovakirdan/tour-of-heroes/internal/core"
)

// DefaultDebounce is how long the search box must stay unchanged before searching.
const DefaultDebounce = 300 * time.Millisecond

// SearchView is the hero search box. Terms typed with Search are debounced,
// a term equal to the previous one is skipped, and a newer search cancels
// the one in flight so only the latest term's results are kept.
type SearchView struct {
	svc      HeroService
	debounce time.Duration
	notify   chan struct{}
	updates  chan []core.Hero

	mu      sync.Mutex
	pending string
	gen     uint64
	results []core.Hero
}

// NewSearchView creates a search view. A non-positive debounce uses DefaultDebounce.
func NewSearchView(svc HeroService, debounce time.Duration) *SearchView {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &SearchView{
		svc:      svc,
		debounce: debounce,
		notify:   make(chan struct{}, 1),
		updates:  make(chan []core.Hero, 1),
		results:  []core.Hero{},
	}
}

// Search records the current term. It never blocks.
func (v *SearchView) Search(term string) {
	v.mu.Lock()
	v.pending = term
	v.mu.Unlock()

	select {
	case v.notify <- struct{}{}:
	default:
	}
}

// Results returns a copy of the latest results.
func (v *SearchView) Results() []core.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]core.Hero{}, v.results...)
}

// Updates delivers each new result set. Only the latest unread one is kept.
func (v *SearchView) Updates() <-chan []core.Hero {
	return v.updates
}

// Run processes terms until ctx is done, then waits for the in-flight search to stop.
func (v *SearchView) Run(ctx context.Context) {
	var (
		timer    *time.Timer
		timerC   <-chan time.Time
		last     string
		searched bool
		cancel   context.CancelFunc = func() {}
		inflight sync.WaitGroup
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		cancel()
		inflight.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-v.notify:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(v.debounce)
			timerC = timer.C
		case <-timerC:
			timerC = nil

			v.mu.Lock()
			term := v.pending
			v.mu.Unlock()

			if searched && term == last {
				continue
			}
			last, searched = term, true

			cancel()
			cancel = v.start(ctx, term, &inflight)
		}
	}
}

// start runs one search in the background and returns the function that cancels it.
func (v *SearchView) start(ctx context.Context, term string, inflight *sync.WaitGroup) context.CancelFunc {
	reqCtx, cancel := context.WithCancel(ctx)
	gen := v.nextGen()

	inflight.Add(1)
	go func() {
		defer inflight.Done()
		res := v.svc.Search(reqCtx, term)
		if f := res.Failure(); f != nil && f.Kind == client.FailureCanceled {
			return
		}
		v.setResults(gen, res.Value)
	}()

	return cancel
}

func (v *SearchView) nextGen() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	return v.gen
}

// setResults drops results of a search that has since been superseded.
func (v *SearchView) setResults(gen uint64, heroes []core.Hero) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.results = append([]core.Hero{}, heroes...)

	// Sole sender, so after draining the send cannot block.
	select {
	case <-v.updates:
	default:
	}
	v.updates <- append([]core.Hero{}, heroes...)
}
