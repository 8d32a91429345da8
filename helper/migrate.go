package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"stayledger/config"
	"stayledger/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	migrationSource = "file://migrations/postgres"
)

var ErrUnknownAction = errors.New("unknown migration action")

type migration struct {
	run     func(mig *migrate.Migrate) error
	success string
	failure string
}

var migrations = map[string]migration{
	ActionUp: {
		run:     func(mig *migrate.Migrate) error { return mig.Up() },
		success: "Database migrations completed successfully",
		failure: "error running migrations",
	},
	ActionStepUp: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(1) },
		success: "Database migrations completed successfully",
		failure: "error running migrations",
	},
	ActionDown: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		success: "Database migrations rolled back successfully",
		failure: "error rolling back migrations",
	},
	ActionDrop: {
		run:     func(mig *migrate.Migrate) error { return mig.Down() },
		success: "Database migrations rolled back successfully",
		failure: "error rolling back migrations",
	},
}

// MigrationURL is the snapshot database DSN with the migrations table selected.
func MigrationURL(config *config.Config) string {
	dsn := postgres.DSN(config)
	if table := config.DB.Postgres.MigrationTable; table != "" {
		dsn += "&x-migrations-table=" + url.QueryEscape(table)
	}

	return dsn
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, MigrationURL(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	step, ok := migrations[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", step.failure, err)
	}

	log.Info().Str("action", action).Msg(step.success)

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
