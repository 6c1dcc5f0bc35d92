package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
	"github.com/vovakirdan/tour-of-heroes/internal/proto"
	"github.com/vovakirdan/tour-of-heroes/internal/store"
)

// HeroHandlers provides HTTP handlers for hero endpoints.
type HeroHandlers struct {
	store store.HeroStore
	log   *zerolog.Logger
}

// NewHeroHandlers creates a new hero handlers instance.
func NewHeroHandlers(st store.HeroStore, logger *zerolog.Logger) *HeroHandlers {
	return &HeroHandlers{
		store: st,
		log:   logger,
	}
}

// ListHeroes lists all heroes, or searches them by name when ?name= is present.
// GET /api/heroes
// GET /api/heroes/?name=term
func (h *HeroHandlers) ListHeroes(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		heroes []*store.Hero
		err    error
	)
	term, searching := c.GetQuery(proto.SearchParam)
	term = strings.TrimSpace(term)
	if searching && term != "" {
		heroes, err = h.store.SearchHeroes(ctx, term)
	} else {
		heroes, err = h.store.ListHeroes(ctx)
	}
	if err != nil {
		h.log.Error().Err(err).Str("term", term).Msg("failed to list heroes")
		internalError(c)
		return
	}

	h.log.Debug().Str("term", term).Int("hero_count", len(heroes)).Msg("heroes listed")
	c.JSON(http.StatusOK, heroesToProto(heroes))
}

// GetHero returns a single hero.
// GET /api/heroes/:id
func (h *HeroHandlers) GetHero(c *gin.Context) {
	id, ok := heroIDParam(c)
	if !ok {
		return
	}

	hero, err := h.store.GetHero(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, id, "failed to get hero")
		return
	}

	c.JSON(http.StatusOK, heroToProto(hero))
}

// CreateHero adds a hero; the store assigns its id.
// POST /api/heroes
func (h *HeroHandlers) CreateHero(c *gin.Context) {
	var req proto.CreateHero
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create hero request")
		badRequest(c, "invalid request body")
		return
	}

	if err := core.ValidateName(req.Name); err != nil {
		badRequest(c, err.Error())
		return
	}

	hero, err := h.store.CreateHero(c.Request.Context(), core.NormalizeName(req.Name))
	if err != nil {
		h.log.Error().Err(err).Str("name", req.Name).Msg("failed to create hero")
		internalError(c)
		return
	}

	h.log.Info().Int64("hero_id", hero.ID).Str("name", hero.Name).Msg("hero created")
	c.JSON(http.StatusCreated, heroToProto(hero))
}

// UpdateHero renames a hero identified by the body id.
// PUT /api/heroes
func (h *HeroHandlers) UpdateHero(c *gin.Context) {
	var req proto.UpdateHero
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid update hero request")
		badRequest(c, "invalid request body")
		return
	}

	if err := core.ValidateName(req.Name); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.store.UpdateHero(c.Request.Context(), req.ID, core.NormalizeName(req.Name)); err != nil {
		h.storeError(c, err, req.ID, "failed to update hero")
		return
	}

	h.log.Info().Int64("hero_id", req.ID).Msg("hero updated")
	c.Status(http.StatusNoContent)
}

// DeleteHero removes a hero.
// DELETE /api/heroes/:id
func (h *HeroHandlers) DeleteHero(c *gin.Context) {
	id, ok := heroIDParam(c)
	if !ok {
		return
	}

	if err := h.store.DeleteHero(c.Request.Context(), id); err != nil {
		h.storeError(c, err, id, "failed to delete hero")
		return
	}

	h.log.Info().Int64("hero_id", id).Msg("hero deleted")
	c.Status(http.StatusNoContent)
}

func (h *HeroHandlers) storeError(c *gin.Context, err error, id int64, msg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, proto.Error{Error: core.ErrHeroNotFound.Error(), Code: core.ErrCodeHeroNotFound})
		return
	}
	h.log.Error().Err(err).Int64("hero_id", id).Msg(msg)
	internalError(c)
}

func heroIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid hero id")
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, proto.Error{Error: msg, Code: core.ErrCodeBadRequest})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, proto.Error{Error: "internal server error", Code: core.ErrCodeInternal})
}
