// Package migrations embeds the PostgreSQL schema files so the binary can
// migrate without the source tree next to it.
package migrations

import "embed"

// Files holds the numbered .sql files of this directory
//
//go:embed *.sql
var Files embed.FS
