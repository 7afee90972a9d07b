// Package migrations embeds the forward-only SQL migrations for the local
// client database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
