// migrate aplica o revierte el esquema SQL.
//
// Uso:
//
//	go run ./cmd/migrate            # up
//	go run ./cmd/migrate -cmd status
//	go run ./cmd/migrate -cmd down [-to 1]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/ceramicas-api/internal/infrastructure/migrate"
	"github.com/jhoicas/ceramicas-api/pkg/config"
	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "up | down | status")
	to := flag.Int64("to", 0, "versión destino para down (0 = solo la última)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("migrate")

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("las migraciones solo aplican a postgres")
	}

	runner, err := migrate.New(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar migraciones")
	}

	ctx := context.Background()
	switch *cmd {
	case "up":
		err = runner.Up(ctx)
	case "down":
		err = runner.Down(ctx, *to)
	case "status":
		err = runner.Status(ctx)
	default:
		log.Fatal().Str("cmd", *cmd).Msg("comando desconocido")
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", *cmd).Msg("migración fallida")
	}
}
