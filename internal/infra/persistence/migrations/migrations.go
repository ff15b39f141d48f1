// Package migrations embeds the goose SQL migrations for the postgres store.
package migrations

import "embed"

// FS holds every *.sql migration, applied in version order.
//
//go:embed *.sql
var FS embed.FS
