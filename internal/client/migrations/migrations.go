// Package migrations embeds the goose schema migrations for the client's
// local SQLite database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
