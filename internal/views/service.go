// Package views holds the view models of the heroes app: the state each screen
// renders and the operations a user triggers on it.
package views

import (
	"context"

	"github.com/vovakirdan/tour-of-heroes/internal/client"
	"github.com/vovakirdan/tour-of-heroes/internal/core"
)

// HeroService is the data access the views depend on. *client.Service implements it.
type HeroService interface {
	List(ctx context.Context) client.Result[[]core.Hero]
	Get(ctx context.Context, id int64) client.Result[*core.Hero]
	Create(ctx context.Context, name string) client.Result[*core.Hero]
	Update(ctx context.Context, hero core.Hero) client.Result[client.Ack]
	Delete(ctx context.Context, id int64) client.Result[client.Ack]
	Search(ctx context.Context, term string) client.Result[[]core.Hero]
}

var _ HeroService = (*client.Service)(nil)
