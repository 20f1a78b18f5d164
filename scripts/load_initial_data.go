package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"field-marketing-backend/internal/config"
	"field-marketing-backend/internal/database"
	"field-marketing-backend/internal/repository"
	"field-marketing-backend/internal/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Loads a demo workspace for one owner outside of the sign-in flow, e.g.
//
//	go run ./scripts -owner github:1001
//	go run ./scripts -owner github:1001 -file team.yaml
func main() {
	owner := flag.String("owner", "", `owner key "<provider>:<user id>" to seed (required)`)
	file := flag.String("file", "", "YAML dataset to load instead of the built-in demo workspace")
	attempts := flag.Int("attempts", 60, "database connection attempts")
	flag.Parse()

	if *owner == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.Println("🚀 Loading demo workspace for", *owner)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dataset, err := loadDataset(*file)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, *attempts, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	demo := dataset.Build(*owner, time.Now())
	seeded, err := repository.NewProvisionRepository(db).ProvisionOnce(*owner, dataset.Version, demo)
	if err != nil {
		log.Fatalf("Failed to provision %s: %v", *owner, err)
	}
	if !seeded {
		log.Printf("⚠️  %s already has a provisioned workspace, nothing loaded", *owner)
		return
	}

	log.Printf("📋 Team members: %d", len(demo.TeamMembers))
	log.Printf("📋 Visits: %d", len(demo.Visits))
	log.Printf("📋 Leads: %d", len(demo.Leads))
	log.Printf("📋 Activities: %d", len(demo.Activities))
	log.Println("✅ Demo workspace loaded successfully!")
}

func loadDataset(path string) (*seed.Dataset, error) {
	if path == "" {
		return seed.Demo()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return seed.Parse(data)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
