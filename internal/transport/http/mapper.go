package http

import (
	"github.com/vovakirdan/tour-of-heroes/internal/proto"
	"github.com/vovakirdan/tour-of-heroes/internal/store"
)

func heroToProto(h *store.Hero) proto.Hero {
	return proto.Hero{ID: h.ID, Name: h.Name}
}

func heroesToProto(heroes []*store.Hero) []proto.Hero {
	// Never nil so the JSON body is [] rather than null.
	out := make([]proto.Hero, 0, len(heroes))
	for _, h := range heroes {
		out = append(out, heroToProto(h))
	}
	return out
}
