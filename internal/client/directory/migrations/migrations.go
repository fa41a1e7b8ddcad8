// Package migrations embeds the PostgreSQL schema of the user directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
