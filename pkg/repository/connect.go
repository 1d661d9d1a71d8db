package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BeanJournal/configs"
	"droscher.com/BeanJournal/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dialector, err := dialectorFor(conf.DB)
	if err != nil {
		return nil, err
	}

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	logger.Info("opened database", zap.String("driver", conf.DB.Driver))

	return &Repository{DB: db, Logger: logger}, nil
}

func dialectorFor(conf configs.DB) (gorm.Dialector, error) {
	switch conf.Driver {
	case configs.DriverSQLite:
		return sqlite.Open(conf.Path), nil
	case configs.DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			conf.Host, conf.User, conf.Password, conf.Database, conf.Port)

		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: unsupported database driver %q", configs.ErrConfiguration, conf.Driver)
	}
}

// EnsureSchema creates the coffee_beans table if it does not exist yet. An existing
// table is left as is: there are no migrations.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	migrator := r.DB.WithContext(ctx).Migrator()
	if migrator.HasTable(&model.CoffeeBean{}) {
		return nil
	}

	r.Logger.Info("creating table", zap.String("table", model.CoffeeBean{}.TableName()))

	if err := migrator.CreateTable(&model.CoffeeBean{}); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	return nil
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}
