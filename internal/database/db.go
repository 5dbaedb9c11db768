package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"status-generic/config"
	"status-generic/pkg/logger"
)

// ErrDisabled is returned when the config turns the database off.
var ErrDisabled = errors.New("database: disabled by config")

var DB *gorm.DB

// connect opens the DB, registers read replicas and applies pool configuration
func connect(cfg config.DatabaseConfig, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}

	if len(cfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
		for _, r := range cfg.Replicas {
			replicas = append(replicas, mysql.Open(r))
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})
		if err := db.Use(resolver); err != nil {
			return nil, errors.Wrap(err, "register replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "sql handle")
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	lifetime := time.Duration(cfg.MaxLifetime) * time.Minute
	sqlDB.SetConnMaxIdleTime(lifetime)
	sqlDB.SetConnMaxLifetime(lifetime)

	return db, nil
}

// ensureConnection verifies DB connectivity and reconnects if needed
func ensureConnection() error {
	if !config.Cfg.Database.Enabled {
		return ErrDisabled
	}

	if DB != nil {
		sqlDB, err := DB.DB()
		if err == nil && sqlDB.Ping() == nil {
			return nil
		}
		logger.Warn("%v: connection lost, reconnecting", config.ModuleDatabase)
	}

	db, err := connect(config.Cfg.Database, config.Cfg.Dns)
	if err != nil {
		logger.Error(err, "%v: failed to connect", config.ModuleDatabase)
		return err
	}
	DB = db

	return nil
}

// GetDB returns a healthy *gorm.DB, attempting reconnect if necessary
func GetDB() (*gorm.DB, error) {
	if err := ensureConnection(); err != nil {
		return nil, err
	}
	return DB, nil
}

// Ping checks the connection within ctx.
func Ping(ctx context.Context) error {
	db, err := GetDB()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "sql handle")
	}
	return errors.Wrap(sqlDB.PingContext(ctx), "ping")
}
