package database

import (
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"inkwell/internal/middleware"
)

// Migration is a versioned SQL schema change with its rollback script.
// Files live under migrations/ as NNNNNN_name.up.sql / NNNNNN_name.down.sql
// pairs; every up script must have a down counterpart.
type Migration struct {
	Version    int
	Name       string
	UpScript   string
	DownScript string
}

//go:embed migrations/*.sql
var migrationFS embed.FS

var migrations []Migration

func init() {
	if err := RegisterMigrations(migrationFS); err != nil {
		middleware.Logger.Error("failed to register embedded migrations",
			slog.String("error", err.Error()))
	}
}

// RegisterMigrations loads every up/down pair from the given filesystem
// into the process-wide registry, sorted by version.
func RegisterMigrations(efs embed.FS) error {
	entries, err := efs.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		base := strings.TrimSuffix(name, ".up.sql")
		versionStr, migName, ok := strings.Cut(base, "_")
		if !ok {
			middleware.Logger.Warn("Skipping migration with invalid naming",
				slog.String("file", name))
			continue
		}
		version, err := strconv.Atoi(versionStr)
		if err != nil {
			middleware.Logger.Warn("Skipping migration with non-numeric version",
				slog.String("file", name))
			continue
		}

		up, err := efs.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("failed to read up migration %s: %w", name, err)
		}
		down, err := efs.ReadFile("migrations/" + base + ".down.sql")
		if err != nil {
			return fmt.Errorf("failed to read down migration %s.down.sql: %w", base, err)
		}

		migrations = append(migrations, Migration{
			Version:    version,
			Name:       migName,
			UpScript:   string(up),
			DownScript: string(down),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return nil
}

// GetMigrations returns the registered migrations in version order.
func GetMigrations() []Migration {
	return migrations
}

// GetMigrationByVersion returns the registered migration with the given
// version, or nil.
func GetMigrationByVersion(version int) *Migration {
	for i := range migrations {
		if migrations[i].Version == version {
			return &migrations[i]
		}
	}
	return nil
}

func (m *Migration) String() string {
	return fmt.Sprintf("%06d_%s", m.Version, m.Name)
}
