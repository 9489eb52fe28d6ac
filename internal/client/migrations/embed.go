// Package migrations embeds the goose migrations for the client cache db.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
