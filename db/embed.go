// Package db holds the SQL migrations for the Postgres player source.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsPath is the directory of Migrations.
const MigrationsPath = "migrations"
