package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() (string, error) {
	host, err := requireEnv("AURORA_HOST")
	if err != nil {
		return "", err
	}
	user, err := requireEnv("AURORA_USER")
	if err != nil {
		return "", err
	}
	name, err := requireEnv("AURORA_DB")
	if err != nil {
		return "", err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, getEnv("AURORA_PORT", "5432"), user, getEnv("AURORA_PASSWORD", ""),
		name, getEnv("AURORA_SSLMODE", "require"))
	return dsn, nil
}

// BootDB opens the pool and brings the schema up to the latest migration.
func BootDB() (*gorm.DB, error) {
	url, err := GetDatabaseURL()
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	db, err = gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(getEnvInt("DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetMaxIdleConns(getEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return db, err
	}

	GetLogrusInstance().Info("DB initialized")
	return db, nil
}

func CloseDB(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
