// Package migrations carries the embedded goose migration files for the
// PostgreSQL schema. The server applies them at startup via goose.SetBaseFS.
package migrations

import "embed"

// Migrations holds the versioned SQL migration files.
//
//go:embed *.sql
var Migrations embed.FS
