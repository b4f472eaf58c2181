package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/schalder/ecombuildr-edge/internal/db/models"
)

// Config holds database configuration.
type Config struct {
	Driver      string // "postgres" or "sqlite"
	Host        string // for postgres
	Port        int    // for postgres
	Database    string // database name for postgres, file path for sqlite
	Username    string // for postgres
	Password    string // for postgres
	SSLMode     string // for postgres
	SQLLogLevel string // silent, error, warn, info
}

// Connect establishes a connection to the database.
func Connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch strings.ToLower(cfg.Driver) {
	case "sqlite":
		// SQLite connection with datetime parsing enabled
		// cfg.Database should be file path, e.g., "edge.db" or ":memory:" for in-memory
		dialector = sqlite.Open(cfg.Database + "?_time_format=sqlite")

	case "postgres", "postgresql":
		// PostgreSQL connection
		dsn := fmt.Sprintf(
			"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.Database, cfg.Username, cfg.Password, cfg.SSLMode,
		)
		dialector = postgres.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: sqlite, postgres)", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(sqlLogLevel(cfg.SQLLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// sqlLogLevel maps a config string to a gorm log level. Defaults to silent;
// the edge handler is on the hot path of crawler traffic and per-query logs
// at info level would dominate output.
func sqlLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// AutoMigrate runs automatic migrations for all models.
//
// The edge service only ever reads these tables; migrations exist so local and
// test databases can be seeded without the dashboard application.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CustomDomain{}, // Must be first (parent of connections)
		&models.DomainConnection{},
		&models.Website{},
		&models.WebsitePage{},
		&models.Funnel{},
		&models.FunnelStep{},
		&models.Product{},
	)
}
