package main

import (
	"flag"

	"github.com/sirupsen/logrus"
	"github.com/task-management-api/config"
	"github.com/task-management-api/database"
	"github.com/task-management-api/logger"
)

func main() {
	seed := flag.Bool("seed", false, "insert sample users, projects and tasks after migrating")
	flag.Parse()

	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logger.InitLogger(cfg.LogLevel)

	logrus.Info("Starting database migration...")

	db, err := database.Open(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database schema: %v", err)
	}

	if *seed {
		if err := database.Seed(db); err != nil {
			logrus.Fatalf("Seeding failed: %v", err)
		}
		logrus.Infof("Sample data inserted, every sample user has the password %q", database.SeedPassword)
	}

	logrus.Info("Database migration completed successfully!")
}
