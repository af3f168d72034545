package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hekmatehsan/geoweather-api/docs"
	"github.com/hekmatehsan/geoweather-api/internal/api/handler"
	"github.com/hekmatehsan/geoweather-api/internal/api/middleware"
	"github.com/hekmatehsan/geoweather-api/internal/core/ports"
	"github.com/hekmatehsan/geoweather-api/internal/core/service"
	"github.com/hekmatehsan/geoweather-api/internal/core/token"
	"github.com/hekmatehsan/geoweather-api/internal/infrastructure/config"
	mongodb "github.com/hekmatehsan/geoweather-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hekmatehsan/geoweather-api/internal/infrastructure/db/redis"
	"github.com/hekmatehsan/geoweather-api/internal/infrastructure/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case upstream lookups skip the response cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("geoweather"))

	// --- Dependencies ---
	tokens, err := token.NewService(cfg.TokenKey, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(tokens)

	geocoder := upstream.NewNominatimClient(cfg.Upstream.GeocodeBaseURL, cfg.Upstream.Timeout)
	weather := upstream.NewOpenWeatherClient(cfg.Upstream.WeatherBaseURL, cfg.Upstream.WeatherAPIKey, cfg.Upstream.Timeout)
	var cache ports.ResponseCache
	if rdb != nil {
		cache = redisdb.NewLookupCache(rdb)
	}
	geoService := service.NewGeoService(geocoder, weather, cache, log)
	geoHandler := handler.NewGeoHandler(geoService)
	homeHandler := handler.NewHomeHandler()

	// --- API routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/register", authHandler.Register)
	v1.POST("/login", authHandler.Login)
	v1.GET("/homepage", homeHandler.Homepage, authMiddleware)
	v1.GET("/validate-address", geoHandler.ValidateAddress)
	v1.POST("/state-weather-info", geoHandler.StateWeatherInfo, authMiddleware)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoswagger.WrapHandler)

	return e, nil
}
