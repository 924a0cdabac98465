package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"orientation-backend/internal/catalog"
	"orientation-backend/internal/recommend"
	"orientation-backend/internal/scoretext"
	"orientation-backend/internal/shared/config"
	"orientation-backend/internal/shared/server/middleware"
	"orientation-backend/internal/shared/server/respond"
	"orientation-backend/internal/shared/storage/db"
	"orientation-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(rateLimits()),
	)

	cat, err := LoadCatalog(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	engine := recommend.NewEngine(cat)
	recommendHandler := recommend.NewHandler(engine, cat)
	extractHandler := scoretext.NewHandler()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	recommendHandler.RegisterRoutes(api)
	extractHandler.RegisterRoutes(api)

	return r, nil
}

// LoadCatalog builds the immutable catalog from the configured source. A
// Postgres source that fails to load falls back to the builtin dataset; a
// malformed builtin dataset is fatal.
func LoadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogSource == "postgres" && cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		database, err := db.Connect(ctx, cfg.DatabaseURL, opts)
		if err != nil {
			telemetry.Warn("catalog.fallback", map[string]any{"reason": "connect", "error": err.Error()})
			return catalog.Builtin()
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, database); err != nil {
			telemetry.Warn("catalog.fallback", map[string]any{"reason": "migrate", "error": err.Error()})
			return catalog.Builtin()
		}

		cat, err := catalog.LoadPG(ctx, database)
		if err != nil {
			telemetry.Warn("catalog.fallback", map[string]any{"reason": "load", "error": err.Error()})
			return catalog.Builtin()
		}
		return cat, nil
	}
	return catalog.Builtin()
}

func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				switch c.FullPath() {
				case "/api/v1/recommend", "/api/v1/extract":
					return "SCORING"
				}
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 10, Burst: 30},
			"SCORING": {Rate: 2, Burst: 10},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
