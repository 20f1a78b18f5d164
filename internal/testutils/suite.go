package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"field-marketing-backend/internal/config"
	"field-marketing-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// postgresTag selects the image tag; override with TEST_POSTGRES_TAG
func postgresTag() string {
	if tag := os.Getenv("TEST_POSTGRES_TAG"); tag != "" {
		return tag
	}
	return "15-alpine"
}

// sharedPostgres is one container reused by every integration suite of a test binary
type sharedPostgres struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var shared sharedPostgres

// BaseTestSuite gives integration suites a migrated Postgres database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.cfg}
}

// RunIntegrationMain runs m and purges the shared container afterwards,
// also on SIGINT or SIGTERM. Use it from TestMain.
func RunIntegrationMain(m *testing.M) int {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logrus.Warn("Integration tests interrupted, purging Postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer closes the pool and purges the container
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		logrus.Warnf("Could not purge container %s: %v", shared.resource.Container.Name, err)
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite cleans the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: s.DB}
		if err := stmt.Parse(model); err != nil {
			s.T().Fatalf("parse %T: %v", model, err)
		}
		if err := s.DB.Exec(`TRUNCATE TABLE "` + stmt.Schema.Table + `" CASCADE`).Error; err != nil {
			s.T().Fatalf("truncate %s: %v", stmt.Schema.Table, err)
		}
	}
}

func (p *sharedPostgres) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	p.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        postgresTag(),
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	p.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// database/sql ping first, then GORM which migrates the schema
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres not ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	p.db = db
	p.cfg = &config.Config{
		DatabaseURL:             dsn,
		Port:                    "8080",
		LogLevel:                "debug",
		Environment:             "test",
		DefaultTimezone:         "UTC",
		ActivityFeedLimit:       50,
		DemoProvisioningEnabled: true,
	}

	logrus.Infof("Shared Postgres ready at %s", resource.GetHostPort("5432/tcp"))
	return nil
}
