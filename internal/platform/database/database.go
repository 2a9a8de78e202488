package database

import (
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	MaxRetries int
	RetryDelay time.Duration
}

// DSN builds the connection string for the configured driver.
func (cfg Config) DSN() (string, error) {
	switch cfg.Driver {
	case "postgres":
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName), nil
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	}
	return "", fmt.Errorf("unsupported sql driver %q", cfg.Driver)
}

// NewDB opens the database and pings it, retrying while the server starts.
func NewDB(cfg Config, logger *zap.Logger) (*sql.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 10
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var db *sql.DB
	for i := 1; i <= maxRetries; i++ {
		logger.Info("connecting to database",
			zap.String("driver", cfg.Driver), zap.Int("attempt", i), zap.Int("max_attempts", maxRetries))

		db, err = sql.Open(cfg.Driver, dsn)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			logger.Info("database connected")
			db.SetMaxOpenConns(5)
			db.SetMaxIdleConns(5)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		if db != nil {
			db.Close()
		}

		if i < maxRetries {
			logger.Warn("database not ready yet", zap.Duration("retry_in", delay), zap.Error(err))
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
