package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared connection pool opened by InitDB.
var DB *gorm.DB

// OpenDB opens a gorm connection for one of the supported drivers.
func OpenDB(driver, dsn string, logMode logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
}

// InitDB opens the application database and stores it in DB.
func InitDB(s *Settings) {
	logMode := logger.Info
	if s.Env == "production" {
		logMode = logger.Warn
	}

	var err error
	DB, err = OpenDB(s.DBDriver, s.DBDSN, logMode)
	if err != nil {
		Logger.Fatal("Error connecting to the database", zap.String("driver", s.DBDriver), zap.Error(err))
	}
	Logger.Info("Database connected", zap.String("driver", s.DBDriver))
}
