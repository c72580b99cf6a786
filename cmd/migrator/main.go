package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/YusovID/skillswap/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ilyakaznacheev/cleanenv"
)

// MigrationCfg reads only the postgres section so the migrator runs without API secrets.
type MigrationCfg struct {
	Postgres        config.Postgres `yaml:"postgres"`
	MigrationsPath  string          `env:"MIGRATIONS_PATH" env-default:"./migrations"`
	MigrationsTable string          `env:"MIGRATIONS_TABLE" env-default:"schema_migrations"`
}

func main() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbURL, err := withMigrationsTable(cfg.Postgres.DSN(), cfg.MigrationsTable)
	if err != nil {
		log.Fatalf("invalid database url: %v", err)
	}

	m, err := migrate.New("file://"+cfg.MigrationsPath, dbURL)
	if err != nil {
		log.Fatalf("can't create new migration: %v", err)
	}

	var cmd string
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "down":
		if err := down(m); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations rolled back successfully")
	case "up", "":
		if err := up(m); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations applied successfully")
	default:
		log.Fatalf("unknown command %q, expected up or down", cmd)
	}
}

func Load() (*MigrationCfg, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, fmt.Errorf("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("file '%s' doesn't exist: %w", configPath, err)
	}

	var cfg MigrationCfg
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can't read config: %w", err)
	}

	return &cfg, nil
}

func withMigrationsTable(dsn, table string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("x-migrations-table", table)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no new migrations to apply")
			return nil
		}

		return fmt.Errorf("can't do migrations: %w", err)
	}

	return nil
}

func down(m *migrate.Migrate) error {
	if err := m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("no migrations to roll back")
		}

		return fmt.Errorf("can't down migrations: %w", err)
	}

	return nil
}
