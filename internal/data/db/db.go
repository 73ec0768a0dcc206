package db

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/envutil"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

// Service owns the GORM handle. SQLite is the default store; Postgres is
// selected with DB_DRIVER=postgres.
type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "DBService")

	driver := strings.ToLower(envutil.String("DB_DRIVER", "sqlite"))

	gormLog := gormLogger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var (
		handle *gorm.DB
		err    error
	)
	switch driver {
	case "sqlite":
		path := envutil.String("DB_PATH", "techmanager.db")
		serviceLog.Info("Opening SQLite database", "path", path)
		handle, err = gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog, TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		// SQLite ships with foreign keys off; cascade deletes need them.
		if err := handle.Exec(`PRAGMA foreign_keys = ON;`).Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	case "postgres":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			envutil.String("POSTGRES_USER", "postgres"),
			envutil.String("POSTGRES_PASSWORD", ""),
			envutil.String("POSTGRES_HOST", "localhost"),
			envutil.String("POSTGRES_PORT", "5432"),
			envutil.String("POSTGRES_NAME", "techmanager"),
		)
		serviceLog.Info("Connecting to Postgres")
		handle, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog, TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	return &Service{db: handle, log: serviceLog}, nil
}

// AutoMigrateAll creates or updates the five core tables, including the
// composite unique indexes and cascade foreign keys declared on the models.
func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables")
	return AutoMigrate(s.db)
}

func (s *Service) DB() *gorm.DB {
	return s.db
}

// AutoMigrate is shared with the test database bootstrap.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Technician{},
		&domain.Device{},
		&domain.Knowledge{},
		&domain.Update{},
		&domain.Verification{},
	)
}
