package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-assistant/models"
)

// mysqlDSN builds a driver DSN. A mysql:// URL or raw DSN in cfg.URL wins
// over the discrete settings.
func mysqlDSN(cfg DatabaseConfig) (string, error) {
	raw := strings.TrimSpace(cfg.URL)
	if raw != "" && !strings.HasPrefix(raw, "mysql://") {
		if _, err := mysqldriver.ParseDSN(raw); err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return raw, nil
	}

	dc := mysqldriver.NewConfig()
	dc.Net = "tcp"
	dc.ParseTime = true
	dc.Loc = time.UTC
	dc.Params = map[string]string{"charset": "utf8mb4"}

	if raw == "" {
		dc.User = cfg.User
		dc.Passwd = cfg.Password
		dc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		dc.DBName = cfg.Name
		return dc.FormatDSN(), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	port := u.Port()
	if port == "" {
		port = "3306"
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}
	dc.User = u.User.Username()
	dc.Passwd, _ = u.User.Password()
	dc.Addr = net.JoinHostPort(u.Hostname(), port)
	dc.DBName = dbName
	for key, values := range u.Query() {
		if len(values) > 0 {
			dc.Params[key] = values[0]
		}
	}
	return dc.FormatDSN(), nil
}

func gormLogLevel(raw string) logger.LogLevel {
	switch raw {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDatabase opens the MySQL connection, migrates the two tables and
// seeds the sample data when configured to.
func ConnectDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	dsn, err := mysqlDSN(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	// parent first: reservations reference room types by name
	if err := db.AutoMigrate(&models.RoomType{}, &models.Reservation{}); err != nil {
		return nil, err
	}

	if cfg.Seed {
		if err := SeedDatabase(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}
