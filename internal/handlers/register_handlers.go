package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/middleware"
	"github.com/SscSPs/hr_records_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RouteDeps bundles the collaborators the router needs besides the services.
type RouteDeps struct {
	// Health is pinged by /health when the config enables the DB check. May be nil.
	Health portsrepo.HealthChecker
	// LoginLimiter throttles /api/auth/login. Nil disables throttling.
	LoginLimiter *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	RegisterValidators()

	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", healthHandler(cfg, deps.Health))

	api := r.Group("/api")

	registerAuthRoutes(api, services.Auth, services.Access, deps.LoginLimiter)

	// The bulk upload stays outside the API key gate.
	registerUploadRoutes(api, services.Employee, cfg.UploadMaxBytes)

	gated := api.Group("", middleware.APIKeyAuth(services.Access))
	registerEmployeeRoutes(gated, services.Employee)
	registerDepartmentRoutes(gated, services.Department)
	registerRoleRoutes(gated, services.Role)
	registerUserRoutes(gated, services.User)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.APIKeyHeader},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 || slices.Contains(cfg.CORSAllowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
	}
	return corsCfg
}

// healthHandler godoc
// @Summary Liveness and store connectivity
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string "Store unreachable"
// @Router /health [get]
func healthHandler(cfg *config.Config, health portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.EnableDBCheck && health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromContext(c).Error("Store health check failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
