// Package migrations embeds the PostgreSQL schema for the listing site.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
