// Package migrations embeds the SQLite schema migrations.
package migrations

import "embed"

// FS holds one directory of migrations per database: content and preferences.
//
//go:embed content/*.sql preferences/*.sql
var FS embed.FS

const (
	ContentRoot     = "content"
	PreferencesRoot = "preferences"
)
