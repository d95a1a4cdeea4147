package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrations are golang-migrate SQL pairs under db/migrations; seeds are
// plain SQL files under db/seeds applied in filename order. Both
// directories are optional, so a fresh checkout can boot on AutoMigrate
// alone.
const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

var (
	pingRetries  = 30
	pingInterval = 2 * time.Second
)

// MigrationRunner applies schema migrations and optional seed data
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
}

func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
	}
}

// WaitForDatabase blocks until postgres answers pings, for containerized
// starts where the database comes up after the service.
func (mr *MigrationRunner) WaitForDatabase() error {
	log.Println("Waiting for database to accept connections...")

	for attempt := 1; attempt <= pingRetries; attempt++ {
		if err := mr.db.Ping(); err == nil {
			log.Println("Database is ready")
			return nil
		} else {
			log.Printf("Database not ready (attempt %d/%d): %v", attempt, pingRetries, err)
		}
		time.Sleep(pingInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", pingRetries)
}

// newMigrate builds a migrate instance over the file source and the
// shared *sql.DB connection.
func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	return migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
}

// RunMigrations applies every pending migration. A missing migrations
// directory is not an error; the caller falls back to AutoMigrate.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		log.Printf("No migrations directory at %s, skipping", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	// A dirty version means a previous run died mid-migration; force the
	// recorded version so Up can proceed.
	if dirty {
		log.Printf("Database is dirty at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	log.Printf("Schema at version %d, applying pending migrations", version)

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err == migrate.ErrNoChange {
		log.Println("Schema already up to date")
		return nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	log.Printf("Migrations applied, schema now at version %d", newVersion)

	return nil
}

// LoadSeeds executes seed SQL files when SEED_DATABASE=true. A failing
// seed file is logged and skipped so one bad fixture cannot block boot;
// realistic per-user transaction data comes from the dev seeding endpoint
// instead.
func (mr *MigrationRunner) LoadSeeds() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		log.Println("Seed loading disabled (SEED_DATABASE != true)")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		log.Printf("No seeds directory at %s, skipping", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}

	if len(files) == 0 {
		log.Println("No seed files found")
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			log.Printf("Seed file %s failed, skipping: %v", filepath.Base(file), err)
			continue
		}

		log.Printf("Applied seed file %s", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus reports the current schema version and dirty flag
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m.Version()
}

// RunMigrationsIfEnabled is the boot-time entry point, gated on
// AUTO_MIGRATE=true. Seed failures are logged but never fatal.
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		log.Println("Auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	runner := NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		log.Printf("Seed loading failed: %v", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		log.Printf("Could not read migration status: %v", err)
	} else {
		log.Printf("Migration status: version=%d dirty=%v", version, dirty)
	}

	return nil
}
