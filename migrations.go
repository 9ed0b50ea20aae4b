// Package newsletter holds assets embedded at the module root.
package newsletter

import "embed"

// Migrations contains the goose SQL migrations of the PostgreSQL schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
