package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"medical-office-api/cmd/bootstrap"
	"medical-office-api/config"
	"medical-office-api/internal/infrastructure/database"

	"github.com/golang-migrate/migrate/v4"
)

const usage = "usage: migrate [up | down | force <version> | version]"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := bootstrap.NewLogger(cfg.App.LogLevel)

	dsn, err := cfg.DB.DSN()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	m, err := database.NewMigrator(dsn)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer m.Close()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		if len(os.Args) < 3 {
			log.Fatal(usage)
		}
		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatalf("invalid version: %v", convErr)
		}
		err = m.Force(version)
	case "version":
		version, dirty, verErr := m.Version()
		if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
			log.Fatalf("read version: %v", verErr)
		}
		log.WithField("dirty", dirty).Infof("Schema version %d", version)
		return
	default:
		log.Fatal(usage)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate %s: %v", command, err)
	}
	log.Infof("migrate %s complete", command)
}
