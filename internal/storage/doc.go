// Package storage defines the persistence contracts for gmscreen.
//
// Implementations live in subpackages: memory for tests and single-process
// runs, sqlite for durable storage.
//
// # Error Types
//
//   - ErrNotFound: a requested record is missing.
package storage
