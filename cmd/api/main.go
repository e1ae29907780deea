package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/jhoicas/ceramicas-api/docs"
	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/internal/application/usecase"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
	infrakafka "github.com/jhoicas/ceramicas-api/internal/infrastructure/kafka"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/memory"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/migrate"
	infrapdf "github.com/jhoicas/ceramicas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/ceramicas-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/ceramicas-api/internal/interfaces/http"
	"github.com/jhoicas/ceramicas-api/pkg/config"
	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Sentry (opcional)
	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.App.Env,
			Release:          cfg.App.Name,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Error().Err(err).Msg("inicializar sentry")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	userRepo, productRepo, closeStore := openStores(ctx, cfg, log)
	defer closeStore()

	// Eventos de producto: Kafka si hay brokers, si no se descartan
	var events ports.ProductEventPublisher = ports.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		pub := infrakafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.ProductTopic, log.Component("kafka"))
		defer pub.Close()
		events = pub
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.ProductTopic).Msg("eventos de producto habilitados")
	}

	// Rate limiter compartido en Redis si está configurado
	rateLimit := httpRouter.RateLimit{
		Max:    cfg.RateLimit.Max,
		Window: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}
	if cfg.Redis.URL != "" {
		storage, err := infraredis.New(ctx, cfg.Redis.URL, cfg.App.Name+":ratelimit:")
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer storage.Close()
		rateLimit.Storage = storage
	}

	validate := validation.New()
	authUC := auth.NewAuthUseCase(userRepo, validate, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, validate, events)
	adminUC := usecase.NewAdminUseCase(userRepo, productRepo, events, infrapdf.NewStatsReportGenerator(cfg.App.Name))

	if cfg.DB.Driver == config.DriverMemory {
		// sin base persistente el admin se siembra en cada arranque
		if _, _, err := authUC.SeedAdmin(ctx, auth.AdminSeed{
			Name: cfg.Admin.Name, Email: cfg.Admin.Email, Password: cfg.Admin.Password,
		}); err != nil {
			log.Fatal().Err(err).Msg("sembrar administrador")
		}
	}

	httpLog := log.Component("http")
	metrics := httpRouter.NewMetrics(prometheus.DefaultRegisterer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(httpLog),
	})
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(httpLog))
	app.Use(metrics.Middleware())
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.App.Env == "development"}))
	app.Use(sentryfiber.New(sentryfiber.Options{Repanic: true}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(cfg.HTTP.AllowedOrigins, " ", ""),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ceramicas API",
	}))

	app.Get("/", httpRouter.Welcome(cfg.App.Name))
	app.Get("/health", httpRouter.Health())
	app.Get("/metrics", httpRouter.MetricsHandler(prometheus.DefaultGatherer))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		AdminUC:   adminUC,
		RateLimit: rateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores elige el store según DB_DRIVER. En postgres aplica las
// migraciones pendientes si DB_AUTO_MIGRATE está activo.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.UserRepository, repository.ProductRepository, func()) {
	if cfg.DB.Driver == config.DriverMemory {
		store := memory.NewStore()
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		return memory.NewUserRepository(store), memory.NewProductRepository(store), func() {}
	}

	if cfg.DB.AutoMigrate {
		runner, err := migrate.New(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir, log.Component("migrate"))
		if err != nil {
			log.Fatal().Err(err).Msg("configurar migraciones")
		}
		if err := runner.Up(ctx); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	return postgres.NewUserRepository(pool), postgres.NewProductRepository(pool), pool.Close
}
