// Package migrations holds the goose SQL migrations of the service.
package migrations

import "embed"

// FS contains every *.sql migration at the root of the filesystem.
//
//go:embed *.sql
var FS embed.FS
