// Package client is the data-access layer the views use to reach the heroes API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
	"github.com/vovakirdan/tour-of-heroes/internal/messages"
	"github.com/vovakirdan/tour-of-heroes/internal/proto"
)

const logPrefix = "HeroService: "

// Service issues hero API calls. Every call appends one line to the message log,
// and failures come back as a Result holding a fallback instead of an error to handle.
type Service struct {
	heroesURL string
	http      *http.Client
	messages  *messages.Log
	log       *zerolog.Logger
}

// NewService creates a service for the API rooted at baseURL.
// A nil httpClient uses http.DefaultClient.
func NewService(baseURL string, httpClient *http.Client, msgs *messages.Log, logger *zerolog.Logger) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{
		heroesURL: strings.TrimRight(baseURL, "/") + proto.HeroesPath,
		http:      httpClient,
		messages:  msgs,
		log:       logger,
	}
}

// List fetches every hero. Falls back to an empty slice.
// GET /api/heroes
func (s *Service) List(ctx context.Context) Result[[]core.Hero] {
	var body []proto.Hero
	if err := s.do(ctx, "getHeroes", http.MethodGet, s.heroesURL, nil, &body); err != nil {
		return handleError(s, err, []core.Hero{})
	}

	s.add("fetched heroes")
	return ok(heroesFromProto(body))
}

// Get fetches one hero. Falls back to nil; a 404 is a failure like any other.
// GET /api/heroes/{id}
func (s *Service) Get(ctx context.Context, id int64) Result[*core.Hero] {
	var body proto.Hero
	op := fmt.Sprintf("getHero id=%d", id)
	if err := s.do(ctx, op, http.MethodGet, s.heroURL(id), nil, &body); err != nil {
		return handleError[*core.Hero](s, err, nil)
	}

	s.add(fmt.Sprintf("fetched hero id=%d", id))
	hero := heroFromProto(body)
	return ok(&hero)
}

// Create adds a hero and returns it with the id the server assigned.
// Falls back to nil.
// POST /api/heroes
func (s *Service) Create(ctx context.Context, name string) Result[*core.Hero] {
	var body proto.Hero
	if err := s.do(ctx, "addHero", http.MethodPost, s.heroesURL, proto.CreateHero{Name: name}, &body); err != nil {
		return handleError[*core.Hero](s, err, nil)
	}

	s.add(fmt.Sprintf("added hero w/ id=%d", body.ID))
	hero := heroFromProto(body)
	return ok(&hero)
}

// Update saves a hero's name.
// PUT /api/heroes
func (s *Service) Update(ctx context.Context, hero core.Hero) Result[Ack] {
	req := proto.UpdateHero{ID: hero.ID, Name: hero.Name}
	if err := s.do(ctx, "updateHero", http.MethodPut, s.heroesURL, req, nil); err != nil {
		return handleError(s, err, Ack{})
	}

	s.add(fmt.Sprintf("updated hero id=%d", hero.ID))
	return ok(Ack{})
}

// Delete removes a hero.
// DELETE /api/heroes/{id}
func (s *Service) Delete(ctx context.Context, id int64) Result[Ack] {
	if err := s.do(ctx, "deleteHero", http.MethodDelete, s.heroURL(id), nil, nil); err != nil {
		return handleError(s, err, Ack{})
	}

	s.add(fmt.Sprintf("deleted hero id=%d", id))
	return ok(Ack{})
}

// Search finds heroes whose name contains term. A blank term returns an empty
// slice without calling the API or logging.
// GET /api/heroes/?name={term}
func (s *Service) Search(ctx context.Context, term string) Result[[]core.Hero] {
	if strings.TrimSpace(term) == "" {
		return ok([]core.Hero{})
	}

	target := s.heroesURL + "/?" + url.Values{proto.SearchParam: {term}}.Encode()

	var body []proto.Hero
	if err := s.do(ctx, "searchHeroes", http.MethodGet, target, nil, &body); err != nil {
		return handleError(s, err, []core.Hero{})
	}

	if len(body) > 0 {
		s.add(fmt.Sprintf("found heroes matching %q", term))
	} else {
		s.add(fmt.Sprintf("no heroes matching %q", term))
	}
	return ok(heroesFromProto(body))
}

// handleError logs a failure to the console logger and the message log and
// substitutes the fallback. Canceled calls are superseded, not failed, so
// they stay out of the message log.
func handleError[T any](s *Service, err error, fallback T) Result[T] {
	var f *Failure
	if !errors.As(err, &f) {
		f = &Failure{Kind: FailureTransport, Err: err}
	}

	if f.Kind == FailureCanceled {
		s.log.Debug().Str("op", f.Op).Msg("hero service call canceled")
		return Result[T]{Value: fallback, Err: f}
	}

	s.log.Error().
		Err(f.Err).
		Str("op", f.Op).
		Str("kind", string(f.Kind)).
		Int("status", f.Status).
		Msg("hero service call failed")
	s.add(fmt.Sprintf("%s failed: %s", f.Op, f.Error()))

	return Result[T]{Value: fallback, Err: f}
}

func (s *Service) add(msg string) {
	s.messages.Add(logPrefix + msg)
}

func (s *Service) heroURL(id int64) string {
	return fmt.Sprintf("%s/%d", s.heroesURL, id)
}

// do performs one JSON round trip. Errors are always *Failure with Op set.
func (s *Service) do(ctx context.Context, op, method, target string, in, out any) error {
	fail := func(f *Failure) error {
		f.Op = op
		if ctx.Err() != nil {
			f.Kind = FailureCanceled
		}
		return f
	}

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fail(&Failure{Kind: FailureTransport, Err: fmt.Errorf("encode request: %w", err)})
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fail(&Failure{Kind: FailureTransport, Err: fmt.Errorf("build request: %w", err)})
	}
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fail(&Failure{Kind: FailureTransport, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fail(statusFailure(method, req.URL.Path, resp.StatusCode))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(&Failure{
			Kind:   FailureDecode,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("decode %s %s response: %w", method, req.URL.Path, err),
		})
	}
	return nil
}

func heroFromProto(h proto.Hero) core.Hero {
	return core.Hero{ID: h.ID, Name: h.Name}
}

func heroesFromProto(in []proto.Hero) []core.Hero {
	out := make([]core.Hero, 0, len(in))
	for _, h := range in {
		out = append(out, heroFromProto(h))
	}
	return out
}
