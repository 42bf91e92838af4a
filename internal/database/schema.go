package database

import (
	"fmt"

	"schoolhub_backend/internal/auth"
	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/logger"
	"schoolhub_backend/internal/models"

	"gorm.io/gorm"
)

// InitResult reports what Initialize did.
type InitResult struct {
	AlreadyInitialized bool     `json:"already_initialized"`
	Tables             []string `json:"tables"`
	AdminEmail         string   `json:"superadmin,omitempty"`
}

var tableNames = []string{"users", "events", "notifications", "user_notifications"}

// ddl is executed in order inside one transaction; a single failure rolls the
// whole initialization back so no partial schema survives.
var ddl = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'student' CHECK (role IN (
			'admin', 'super-admin', 'principal', 'school-admin', 'teacher',
			'student', 'parent', 'financial', 'library', 'labs', 'admission', 'club')),
		status VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive', 'suspended')),
		avatar_url TEXT,
		phone VARCHAR(50),
		address TEXT,
		date_of_birth TIMESTAMPTZ,
		emergency_contact TEXT,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(255) NOT NULL,
		description TEXT,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		location VARCHAR(255),
		event_type VARCHAR(100),
		color VARCHAR(7) NOT NULL DEFAULT '#3b82f6',
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		is_public BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (end_date >= start_date)
	)`,

	`CREATE TABLE notifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		type VARCHAR(20) NOT NULL DEFAULT 'info' CHECK (type IN ('info', 'warning', 'error', 'success')),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		action_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE user_notifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		notification_id UUID NOT NULL REFERENCES notifications(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		is_read BOOLEAN NOT NULL DEFAULT false,
		read_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX idx_users_email ON users(email)`,
	`CREATE INDEX idx_events_dates ON events(start_date, end_date)`,
	`CREATE INDEX idx_notifications_created_by ON notifications(created_by)`,
	`CREATE INDEX idx_user_notifications_user_id ON user_notifications(user_id)`,
	`CREATE INDEX idx_user_notifications_is_read ON user_notifications(is_read)`,
}

// Initialize creates the schema and the seed administrator on first run.
// It is idempotent: when the users table already exists it does nothing.
func Initialize(db *gorm.DB, cfg *config.Config) (*InitResult, error) {
	if db.Migrator().HasTable("users") {
		return &InitResult{AlreadyInitialized: true, Tables: tableNames}, nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range ddl {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("schema statement failed: %w", err)
			}
		}

		admin := &models.User{
			Email:        cfg.Seed.AdminEmail,
			PasswordHash: hashedPassword,
			Name:         "Super Administrator",
			Role:         models.UserRoleSuperAdmin,
			Status:       models.UserStatusActive,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Database schema initialized", "tables", tableNames, "admin", cfg.Seed.AdminEmail)

	return &InitResult{
		AlreadyInitialized: false,
		Tables:             tableNames,
		AdminEmail:         cfg.Seed.AdminEmail,
	}, nil
}
