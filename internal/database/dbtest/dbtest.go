// Package dbtest starts a throwaway Postgres for integration tests and loads
// a small fixture corpus into it.
package dbtest

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/quranapi/quran-api/internal/database"
)

//go:embed fixture.sql
var fixtureSQL string

const (
	dbName = "database"
	dbUser = "user"
	dbPwd  = "password"
)

// Env is a running container plus a migrated, seeded database service.
type Env struct {
	DB          database.Service
	DatabaseURL string
	terminate   func(context.Context, ...testcontainers.TerminateOption) error
}

// Start runs a postgres container, migrates the schema and loads the
// fixture. Callers invoke it from TestMain and skip their tests when it
// returns an error (e.g. no container runtime).
func Start(ctx context.Context) (env *Env, err error) {
	defer func() {
		// testcontainers panics when no docker host can be found.
		if r := recover(); r != nil {
			env, err = nil, fmt.Errorf("start postgres container: %v", r)
		}
	}()

	container, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}

	db, err := database.New(ctx, url)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	env = &Env{DB: db, DatabaseURL: url, terminate: container.Terminate}
	if err := env.Seed(ctx); err != nil {
		env.Stop(ctx)
		return nil, err
	}
	return env, nil
}

// Seed truncates every table and reloads the fixture corpus.
func (e *Env) Seed(ctx context.Context) error {
	if _, err := e.DB.Pool().Exec(ctx, fixtureSQL); err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}
	return nil
}

func (e *Env) Stop(ctx context.Context) error {
	e.DB.Close()
	return e.terminate(ctx)
}
