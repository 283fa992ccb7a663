// Package sqlite provides SQLite-backed stores: the imported rules content
// database and the device preferences database.
//
// Both stores apply their embedded migrations on open.
package sqlite
