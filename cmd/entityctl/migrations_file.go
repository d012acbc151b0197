//go:build !embed_migrations

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsPath = "db/migrations"

// migrationsPath resolves the on-disk migrations directory, honoring the
// ENTITYKIT_MIGRATIONS_PATH override for deployments that install the SQL
// files outside the source tree.
func migrationsPath() string {
	if path := os.Getenv("ENTITYKIT_MIGRATIONS_PATH"); path != "" {
		return path
	}
	return defaultMigrationsPath
}

func createMigrateInstance(dbURL string) (*migrate.Migrate, error) {
	path := migrationsPath()
	fmt.Printf("Running migrations from file://%s\n", path)
	return migrate.New("file://"+path, dbURL)
}

func listMigrationFiles() ([]string, error) {
	path := migrationsPath()
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory %s: %w", path, err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
