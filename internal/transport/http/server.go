package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/tour-of-heroes/internal/config"
	"github.com/vovakirdan/tour-of-heroes/internal/proto"
	"github.com/vovakirdan/tour-of-heroes/internal/store"
)

// NewServer builds the HTTP server serving the heroes REST API.
func NewServer(st store.Store, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(st, cfg, logger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// NewRouter registers routes and middleware on a fresh gin engine.
func NewRouter(st store.Store, cfg *config.Config, logger *zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(newRateLimiter(cfg.RateLimitPerMinute).middleware(logger))

	router.GET(proto.HealthPath, healthHandler)

	heroes := NewHeroHandlers(st, logger)
	api := router.Group(proto.HeroesPath)
	{
		// Both forms are registered so "/api/heroes/?name=" is served without a redirect.
		api.GET("", heroes.ListHeroes)
		api.GET("/", heroes.ListHeroes)
		api.GET("/:id", heroes.GetHero)
		api.POST("", heroes.CreateHero)
		api.PUT("", heroes.UpdateHero)
		api.DELETE("/:id", heroes.DeleteHero)
	}

	return router
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
