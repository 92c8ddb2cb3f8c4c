package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"inkwell/internal/middleware"

	"gorm.io/gorm"
)

// MigrationRecord is a row in the migration ledger table.
type MigrationRecord struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:255"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the database table name for MigrationRecord.
func (MigrationRecord) TableName() string {
	return "migration_logs"
}

const ensureLedgerSQL = `
CREATE TABLE IF NOT EXISTS migration_logs (
	version BIGINT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_migration_logs_applied_at ON migration_logs (applied_at);`

// ledger tracks which SQL migrations have been applied.
type ledger struct {
	db *gorm.DB
}

func (l ledger) appliedVersions(ctx context.Context) ([]int, error) {
	var versions []int
	err := l.db.WithContext(ctx).
		Model(&MigrationRecord{}).
		Order("version ASC").
		Pluck("version", &versions).Error
	if err != nil {
		// A fresh database has no ledger table yet.
		if errors.Is(err, gorm.ErrRecordNotFound) || isMissingTableError(err) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}
	return versions, nil
}

func (l ledger) apply(ctx context.Context, m Migration) error {
	if err := l.db.WithContext(ctx).Exec(m.UpScript).Error; err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	rec := MigrationRecord{Version: m.Version, Name: m.Name}
	if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}
	middleware.Logger.Info("Migration applied",
		slog.Int("version", m.Version), slog.String("name", m.Name))
	return nil
}

func (l ledger) remove(ctx context.Context, version int) error {
	err := l.db.WithContext(ctx).
		Where("version = ?", version).
		Delete(&MigrationRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove migration record %d: %w", version, err)
	}
	middleware.Logger.Info("Migration rolled back", slog.Int("version", version))
	return nil
}

func isMissingTableError(err error) bool {
	return strings.Contains(err.Error(), "relation") && strings.Contains(err.Error(), "does not exist")
}

// AppliedMigrationVersions reports which registered migrations have already
// been applied, in ascending version order.
func AppliedMigrationVersions(ctx context.Context, db *gorm.DB) ([]int, error) {
	return ledger{db: db}.appliedVersions(ctx)
}

// RunMigrations ensures the migration ledger exists and applies every
// registered migration that is not yet recorded, in version order.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(ensureLedgerSQL).Error; err != nil {
		return fmt.Errorf("failed to ensure migration logs table: %w", err)
	}

	l := ledger{db: db}
	applied, err := l.appliedVersions(ctx)
	if err != nil {
		return err
	}
	if err := validateAppliedVersions(applied, migrations); err != nil {
		return err
	}

	appliedSet := make(map[int]bool, len(applied))
	for _, v := range applied {
		appliedSet[v] = true
	}

	for _, m := range migrations {
		if appliedSet[m.Version] {
			continue
		}
		middleware.Logger.Info("Applying migration",
			slog.Int("version", m.Version), slog.String("name", m.Name))
		if err := l.apply(ctx, m); err != nil {
			return err
		}
	}

	return nil
}

// validateAppliedVersions refuses to run against a ledger that records
// versions this binary does not know about, which usually means the binary
// is older than the database.
func validateAppliedVersions(applied []int, registered []Migration) error {
	known := make(map[int]struct{}, len(registered))
	for _, m := range registered {
		known[m.Version] = struct{}{}
	}

	var unknown []int
	for _, version := range applied {
		if _, ok := known[version]; !ok {
			unknown = append(unknown, version)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Ints(unknown)
	parts := make([]string, 0, len(unknown))
	for _, version := range unknown {
		parts = append(parts, fmt.Sprintf("%06d", version))
	}
	return fmt.Errorf(
		"migration_logs contains unknown versions not present in code: %s",
		strings.Join(parts, ", "),
	)
}

// RollbackMigration reverts a specific applied migration by version number.
func RollbackMigration(ctx context.Context, db *gorm.DB, version int) error {
	m := GetMigrationByVersion(version)
	if m == nil {
		return fmt.Errorf("migration version %d not found", version)
	}

	l := ledger{db: db}
	applied, err := l.appliedVersions(ctx)
	if err != nil {
		return err
	}

	found := false
	for _, v := range applied {
		if v == version {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("migration %d has not been applied", version)
	}

	middleware.Logger.Info("Rolling back migration",
		slog.Int("version", version), slog.String("name", m.Name))
	if err := db.WithContext(ctx).Exec(m.DownScript).Error; err != nil {
		return fmt.Errorf("failed to run rollback SQL for migration %d (%s): %w", version, m.Name, err)
	}
	return l.remove(ctx, version)
}
