package bootstrap

import (
	"strings"

	"github.com/dvrs00/teste-de-software/adapter/in/http"
	"github.com/dvrs00/teste-de-software/config"
	"github.com/dvrs00/teste-de-software/infra/middleware"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		return nil, nil, err
	}
	return NewApp(deps), cleanup, nil
}

// NewApp builds the fiber app around already wired dependencies.
func NewApp(deps *Dependencies) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		AppName:               "pessoas",
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),
		StrictRouting:         false,
		CaseSensitive:         false,

		// go-json as fiber's codec
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		BodyLimit:          cfg.BodyLimit,
		ServerHeader:       "",
		DisableDefaultDate: true,
	})

	// Global middleware stack (order matters)
	app.Use(middleware.Recover())
	app.Use(middleware.RequestID())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.Metrics(deps.Metrics))
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	allowOrigins := strings.Join(cfg.AllowedOrigins, ",")
	if allowOrigins == "" && !cfg.IsProduction() {
		allowOrigins = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,X-Request-ID",
		ExposeHeaders: "X-Request-ID,X-RateLimit-Limit,X-RateLimit-Remaining,Retry-After",
	}))

	http.NewHealthHandler(deps.PessoaRepo, deps.Metrics, deps.Redis).Register(app)
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	http.NewPessoaHandler(deps.PessoaService).Register(app,
		middleware.NoCache(),
		middleware.RateLimit(deps.Limiter),
	)

	return app
}
