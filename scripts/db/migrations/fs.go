// Package migrations embeds the SQL migration scripts shipped with the
// binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
