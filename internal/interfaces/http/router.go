package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/usecase"
)

const (
	cachePublic  = "public, max-age=60"
	cacheNoStore = "no-store"
)

// RateLimit límite por IP para login y registro. Storage nil = memoria del proceso.
type RateLimit struct {
	Max     int
	Window  time.Duration
	Storage fiber.Storage
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	AdminUC   *usecase.AdminUseCase
	RateLimit RateLimit
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.AuthUC)
	noStore := cacheControl(cacheNoStore)

	// Auth (público salvo profile)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	limit := authLimiter(deps.RateLimit)
	authGroup.Post("/register", limit, authHandler.Register)
	authGroup.Post("/login", limit, authHandler.Login)
	authGroup.Get("/profile", requireAuth, noStore, authHandler.Profile)

	// Products: lectura pública, escritura autenticada con control de dueño
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", cacheControl(cachePublic), productHandler.List)
	products.Get("/user/my-products", requireAuth, noStore, productHandler.ListMine)
	products.Get("/:id", cacheControl(cachePublic), productHandler.GetByID)
	products.Post("/", requireAuth, noStore, productHandler.Create)
	products.Put("/:id", requireAuth, noStore, productHandler.Update)
	products.Delete("/:id", requireAuth, noStore, productHandler.Delete)

	// Admin: autenticación y luego rol, siempre en ese orden
	admin := api.Group("/admin", requireAuth, RequireAdmin(), noStore)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.UpdateRole)
	admin.Put("/users/:id/status", adminHandler.ToggleStatus)
	admin.Get("/products", adminHandler.ListProducts)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/stats/report", adminHandler.StatsReport)
}

func authLimiter(cfg RateLimit) fiber.Handler {
	if cfg.Max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		Storage:    cfg.Storage,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests, try again later")
		},
	})
}

// Welcome respuesta de GET /.
func Welcome(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": appName,
			"endpoints": fiber.Map{
				"auth":     "/api/auth",
				"products": "/api/products",
				"admin":    "/api/admin",
				"docs":     "/docs",
				"health":   "/health",
				"metrics":  "/metrics",
			},
		})
	}
}

// Health respuesta de GET /health.
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "time": time.Now().UTC()})
	}
}
