package http

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/ircbar/internal/auth"
	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/core"
)

// JWTConfig builds the API token settings from cfg. Tokens issued by the
// CLI carry no expiry unless ttl is set.
func JWTConfig(cfg *config.Config, ttl time.Duration) *auth.JWTConfig {
	return &auth.JWTConfig{
		Secret:   []byte(cfg.APISecret),
		Issuer:   cfg.APIIssuer,
		Audience: cfg.APIAudience,
		TTL:      ttl,
	}
}

// NewServer builds the HTTP server exposing bar items and info queries.
func NewServer(eng core.Engine, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	jwtCfg := JWTConfig(cfg, 0)

	router.GET("/health", healthHandler)

	handlers := NewAPIHandlers(eng, logger)
	api := router.Group("/api")
	if jwtCfg.Enabled() {
		api.Use(AuthMiddleware(jwtCfg, logger))
	}
	{
		api.GET("/items", handlers.ListItems)
		api.GET("/items/:name", handlers.GetItem)
		api.GET("/info", handlers.DescribeInfo)
		api.GET("/info/:name", handlers.GetInfo)
		api.GET("/infolist/:name", handlers.GetInfolist)
	}

	// The websocket handler needs the raw ResponseWriter to hijack the
	// connection, so it sits beside the gin router rather than behind it.
	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", NewWSHandler(eng, jwtCfg, cfg, logger))
	mux.Handle("/", router)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
