package config

import (
	"fmt"
	"os"

	"columns-cms/logger"
	"columns-cms/models"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// InitDB opens the database selected by DB_DRIVER and migrates the schema.
// It aborts the process when the database is unreachable.
func InitDB() *gorm.DB {
	db, err := OpenDB(os.Getenv("DB_DRIVER"))
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect database")
	}
	if err := Migrate(db); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate database")
	}
	return db
}

func OpenDB(driver string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			getenv("DB_SSLMODE", "disable"),
		)
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(getenv("DB_PATH", "columns.db"))
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return gorm.Open(dialector, GormConfig())
}

// GormConfig turns driver specific unique violations into gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Column{},
		&models.Post{},
		&models.Subscription{},
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
