package main

import (
	"log"
	"os"

	"booking-demo-seeder/internal/catalog"
	"booking-demo-seeder/internal/config"
	"booking-demo-seeder/internal/credentials"
	"booking-demo-seeder/internal/database"
	"booking-demo-seeder/internal/generator"
	"booking-demo-seeder/internal/loader"
	"booking-demo-seeder/internal/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// The seeder is a one-shot batch job: it fabricates a full demo dataset,
// replaces the store's contents atomically, then writes the cleartext
// credential report. No retries anywhere; any failure aborts the run.
func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)
	runLog := logger.ForRun(uuid.NewString())

	// Organization catalogue: built-in unless a YAML override is configured
	orgs := catalog.Default()
	if cfg.CatalogFile != "" {
		orgs, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			runLog.Fatal("Failed to load organization catalogue: ", err)
		}
		runLog.Infof("Loaded organization catalogue from %s", cfg.CatalogFile)
	}
	if err := catalog.Validate(orgs); err != nil {
		runLog.Fatal("Invalid organization catalogue: ", err)
	}

	// Generate everything up front; nothing touches the store until the
	// whole dataset is consistent in memory.
	dataset, err := generator.Generate(runLog, orgs, generator.DefaultParams())
	if err != nil {
		runLog.Fatal("Failed to generate dataset: ", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		runLog.Fatal("Failed to initialize database: ", err)
	}

	// Atomic replace: on any failure the store keeps its prior contents.
	if err := loader.Load(runLog, db, dataset); err != nil {
		runLog.Fatal("Failed to load dataset: ", err)
	}

	// The report is written only after commit. If it fails the store is
	// already updated; exit non-zero so the operator knows the report is
	// missing, but do not pretend the data write failed.
	if err := credentials.WriteReport(cfg.PasswordReportPath, dataset.Credentials); err != nil {
		runLog.Error("Data committed but credential report failed: ", err)
		os.Exit(1)
	}
	runLog.Infof("Credential report written to %s", cfg.PasswordReportPath)
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
