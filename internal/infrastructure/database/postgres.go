package database

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/swarnaabhushan/backoffice-api/internal/config"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
	"github.com/swarnaabhushan/backoffice-api/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Info
	if cfg.App.IsProduction() {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("connected to PostgreSQL", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))
	return db, nil
}

// Models lists every persisted entity in migration order
func Models() []interface{} {
	return []interface{}{
		&entity.User{},
		&entity.Item{},
		&entity.Bill{},
		&entity.Payment{},
		&entity.IdempotencyKey{},
	}
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// SeedAdmin creates the configured operator account when it does not exist
// yet. Nothing is seeded unless both ADMIN_EMAIL and ADMIN_PASSWORD are set.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	if email == "" || cfg.Admin.Password == "" {
		log.Info("admin seed skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entity.User{}).
		Where("email = ? AND is_deleted = ?", email, false).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if count > 0 {
		log.Info("admin user already exists", zap.String("email", email))
		return nil
	}

	hash, err := utils.HashPassword(cfg.Admin.Password, cfg.Security.SaltRounds)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}
	mobile := cfg.Admin.Mobile
	if mobile == "" {
		mobile = "0000000000"
	}

	admin := entity.User{
		Name:     name,
		Email:    &email,
		Mobile:   mobile,
		Password: hash,
		Role:     enum.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("admin user created", zap.String("email", email))
	return nil
}
