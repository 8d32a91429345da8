package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"stayledger/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 5
	postgresMaxOpenConnection = 10
)

// New opens the snapshot database. It returns nil when every attempt failed.
func New(config *config.Config) *sqlx.DB {
	pg := config.DB.Postgres

	return Connect(DSN(config), pg.Host, pg.Port, DBName(config), pg.MaxRetry, pg.RetryWaitTime)
}

// DBName returns the database name with prefix if configured.
func DBName(config *config.Config) string {
	return config.DB.Postgres.Prefix + config.DB.Postgres.Name
}

func DSN(config *config.Config) string {
	pg := config.DB.Postgres

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Username,
		pg.Password,
		net.JoinHostPort(pg.Host, pg.Port),
		DBName(config),
		pg.SSLMode,
	)
}

// Connect retries until a connection succeeds or maxRetry attempts are spent.
func Connect(descriptor, host, port, dbName string, maxRetry, waitTime int) *sqlx.DB {
	for retry, attempts := 0, max(maxRetry, 1); retry < attempts; retry++ {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
