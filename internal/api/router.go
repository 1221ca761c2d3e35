package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kajianrh/presensi-api/docs"
	"github.com/kajianrh/presensi-api/internal/api/handler"
	"github.com/kajianrh/presensi-api/internal/api/middleware"
	"github.com/kajianrh/presensi-api/internal/core/ports"
	"github.com/kajianrh/presensi-api/internal/core/service"
	mongorepo "github.com/kajianrh/presensi-api/internal/infrastructure/db/mongo"
	"github.com/kajianrh/presensi-api/internal/pkg/config"
)

// routeHandlers groups every handler mounted by the router.
type routeHandlers struct {
	auth     *handler.AuthHandler
	admin    *handler.AdminHandler
	jamaah   *handler.JamaahHandler
	kajian   *handler.KajianHandler
	presensi *handler.PresensiHandler
	report   *handler.ReportHandler
	health   *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when Redis is not configured.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	guard ports.AdmissionGuard,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderOrigin},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, "X-QR-Payload"},
	}))
	e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
		Skipper: skipOperational,
		Timeout: cfg.RequestTimeout,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "presensi_http",
		Skipper:   skipOperational,
	}))

	// --- Dependencies ---
	adminRepo := mongorepo.NewAdminRepository(db)
	jamaahRepo := mongorepo.NewJamaahRepository(db)
	kajianRepo := mongorepo.NewKajianRepository(db)
	presensiRepo := mongorepo.NewPresensiRepository(db)

	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	adminService := service.NewAdminService(adminRepo, log)
	jamaahService := service.NewJamaahService(jamaahRepo, log)
	kajianService := service.NewKajianService(kajianRepo, log)
	presensiService := service.NewPresensiService(kajianRepo, jamaahRepo, presensiRepo, guard, nil, log)
	reportService := service.NewReportService(kajianRepo, jamaahRepo, presensiRepo, log)
	qrService := service.NewQRService(cfg.FrontendURL, cfg.QRSize)

	checks := []handler.DependencyCheck{handler.MongoCheck(db)}
	if rdb != nil {
		checks = append(checks, handler.RedisCheck(rdb))
	}

	mountRoutes(e, routeHandlers{
		auth:     handler.NewAuthHandler(authService),
		admin:    handler.NewAdminHandler(adminService),
		jamaah:   handler.NewJamaahHandler(jamaahService),
		kajian:   handler.NewKajianHandler(kajianService, qrService),
		presensi: handler.NewPresensiHandler(presensiService),
		report:   handler.NewReportHandler(reportService),
		health:   handler.NewHealthHandler(checks...),
	}, middleware.Auth(authService))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func mountRoutes(e *echo.Echo, h routeHandlers, auth echo.MiddlewareFunc) {
	api := e.Group("/api")

	// --- Public routes ---
	api.POST("/auth/login", h.auth.Login)
	api.GET("/kajian/:id/public", h.kajian.Public)
	api.POST("/presensi", h.presensi.Submit)

	// --- Admin routes ---
	admin := api.Group("", auth)
	admin.GET("/auth/me", h.auth.Me)

	admin.GET("/admin", h.admin.List)
	admin.POST("/admin", h.admin.Create)
	admin.PUT("/admin/:id", h.admin.Update)
	admin.DELETE("/admin/:id", h.admin.Delete)

	admin.GET("/jamaah", h.jamaah.List)
	admin.POST("/jamaah", h.jamaah.Create)
	admin.PUT("/jamaah/:id", h.jamaah.Update)
	admin.DELETE("/jamaah/:id", h.jamaah.Delete)

	admin.GET("/kajian", h.kajian.List)
	admin.POST("/kajian", h.kajian.Create)
	admin.PUT("/kajian/:id", h.kajian.Update)
	admin.DELETE("/kajian/:id", h.kajian.Delete)
	admin.GET("/kajian/:id/qr", h.kajian.QR)

	admin.GET("/laporan/:id", h.report.Report)
	admin.GET("/laporan/:id/export", h.report.Export)

	// --- Health probes (no auth required) ---
	e.GET("/health", h.health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", h.health.Readiness) // readiness – are dependencies up?
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// skipOperational excludes probes, metrics and docs from timeouts and HTTP metrics.
func skipOperational(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

// requestLogger emits one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				event = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				event = log.Warn()
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
