package views

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tour-of-heroes/internal/client"
	"github.com/vovakirdan/tour-of-heroes/internal/core"
)

var errUnreachable = errors.New("connection refused")

// fakeService is an in-memory HeroService.
type fakeService struct {
	mu      sync.Mutex
	heroes  map[int64]core.Hero
	nextID  int64
	failing bool

	// deleteGate, when set, holds Delete until closed.
	deleteGate chan struct{}
	// searchDelay, when set, is awaited by Search unless the context ends first.
	searchDelay map[string]chan struct{}

	calls   []string
	deleted []int64
}

func newFakeService(heroes ...core.Hero) *fakeService {
	f := &fakeService{heroes: make(map[int64]core.Hero), nextID: 11}
	for _, h := range heroes {
		f.heroes[h.ID] = h
		if h.ID > f.nextID {
			f.nextID = h.ID
		}
	}
	return f
}

func failed[T any](op string, fallback T) client.Result[T] {
	return client.Result[T]{Value: fallback, Err: &client.Failure{Op: op, Kind: client.FailureTransport, Err: errUnreachable}}
}

func (f *fakeService) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

func (f *fakeService) sorted() []core.Hero {
	out := make([]core.Hero, 0, len(f.heroes))
	for _, h := range f.heroes {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeService) List(ctx context.Context) client.Result[[]core.Hero] {
	f.record("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return failed("getHeroes", []core.Hero{})
	}
	return client.Result[[]core.Hero]{Value: f.sorted()}
}

func (f *fakeService) Get(ctx context.Context, id int64) client.Result[*core.Hero] {
	f.record("get")
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.heroes[id]
	if f.failing || !ok {
		return failed[*core.Hero]("getHero", nil)
	}
	return client.Result[*core.Hero]{Value: &h}
}

func (f *fakeService) Create(ctx context.Context, name string) client.Result[*core.Hero] {
	f.record("create " + name)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return failed[*core.Hero]("addHero", nil)
	}
	f.nextID++
	h := core.Hero{ID: f.nextID, Name: name}
	f.heroes[h.ID] = h
	return client.Result[*core.Hero]{Value: &h}
}

func (f *fakeService) Update(ctx context.Context, hero core.Hero) client.Result[client.Ack] {
	f.record("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.heroes[hero.ID]; f.failing || !ok {
		return failed("updateHero", client.Ack{})
	}
	f.heroes[hero.ID] = hero
	return client.Result[client.Ack]{}
}

func (f *fakeService) Delete(ctx context.Context, id int64) client.Result[client.Ack] {
	f.record("delete")
	if f.deleteGate != nil {
		<-f.deleteGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.failing {
		return failed("deleteHero", client.Ack{})
	}
	delete(f.heroes, id)
	return client.Result[client.Ack]{}
}

func (f *fakeService) Search(ctx context.Context, term string) client.Result[[]core.Hero] {
	f.record("search " + term)
	if strings.TrimSpace(term) == "" {
		return client.Result[[]core.Hero]{Value: []core.Hero{}}
	}

	f.mu.Lock()
	gate := f.searchDelay[term]
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return client.Result[[]core.Hero]{
				Value: []core.Hero{},
				Err:   &client.Failure{Op: "searchHeroes", Kind: client.FailureCanceled, Err: ctx.Err()},
			}
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := []core.Hero{}
	for _, h := range f.sorted() {
		if strings.Contains(strings.ToLower(h.Name), strings.ToLower(term)) {
			out = append(out, h)
		}
	}
	return client.Result[[]core.Hero]{Value: out}
}

func (f *fakeService) setFailing(v bool) {
	f.mu.Lock()
	f.failing = v
	f.mu.Unlock()
}
