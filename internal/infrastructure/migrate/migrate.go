// Package migrate aplica el esquema SQL con goose.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

// Runner ejecuta migraciones goose sobre una conexión database/sql (driver pgx).
type Runner struct {
	dsn           string
	migrationsDir string
	log           *logger.Logger
}

// New valida la configuración y devuelve el runner.
func New(dsn, migrationsDir string, log *logger.Logger) (Runner, error) {
	if dsn == "" {
		return Runner{}, errors.New("migrate: dsn vacío")
	}
	if migrationsDir == "" {
		return Runner{}, errors.New("migrate: directorio de migraciones vacío")
	}
	if _, err := os.Stat(migrationsDir); err != nil {
		return Runner{}, fmt.Errorf("migrate: localizar %s: %w", migrationsDir, err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return Runner{dsn: dsn, migrationsDir: migrationsDir, log: log}, nil
}

// Up aplica las migraciones pendientes.
func (r Runner) Up(ctx context.Context) error {
	return r.withDB(func(db *sql.DB) error {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		r.log.Info().Str("dir", r.migrationsDir).Msg("aplicando migraciones")
		if err := goose.UpContext(runCtx, db, r.migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		r.log.Info().Msg("migraciones aplicadas")
		return nil
	})
}

// Status reporta migraciones aplicadas y pendientes.
func (r Runner) Status(ctx context.Context) error {
	return r.withDB(func(db *sql.DB) error {
		if err := goose.StatusContext(ctx, db, r.migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		return nil
	})
}

// Down revierte la última migración o hasta targetVersion si es > 0.
func (r Runner) Down(ctx context.Context, targetVersion int64) error {
	return r.withDB(func(db *sql.DB) error {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if targetVersion > 0 {
			r.log.Info().Int64("target", targetVersion).Msg("revirtiendo migraciones")
			if err := goose.DownToContext(runCtx, db, r.migrationsDir, targetVersion); err != nil {
				return fmt.Errorf("rollback to version %d: %w", targetVersion, err)
			}
			return nil
		}
		r.log.Info().Msg("revirtiendo última migración")
		if err := goose.DownContext(runCtx, db, r.migrationsDir); err != nil {
			return fmt.Errorf("rollback latest migration: %w", err)
		}
		return nil
	})
}

func (r Runner) withDB(fn func(*sql.DB) error) error {
	goose.SetLogger(r.log)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}
	db, err := sql.Open("pgx", r.dsn)
	if err != nil {
		return fmt.Errorf("open sql connection: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping sql connection: %w", err)
	}
	return fn(db)
}
