// Package migrations embeds the goose SQL migrations for the SQL-backed
// record store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
