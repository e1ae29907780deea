// seed_admin crea la cuenta administradora a partir de ADMIN_NAME, ADMIN_EMAIL y ADMIN_PASSWORD.
// Si ya existe un usuario con ese email no hace nada.
//
// Uso: go run ./cmd/seed_admin
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ceramicas-api/pkg/config"
	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed_admin")

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("seed_admin requiere DB_DRIVER=postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), validation.New(), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	user, created, err := authUC.SeedAdmin(ctx, auth.AdminSeed{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	if !created {
		log.Info().Str("email", user.Email).Str("role", user.Role).Msg("el administrador ya existe")
		return
	}
	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("administrador creado")
}
