// Package migrations bundles the versioned SQL schema files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
