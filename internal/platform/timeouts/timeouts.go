// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreRequest caps a single preferences store call made while serving a page.
const StoreRequest = 2 * time.Second

// ToolCall caps a single MCP tool invocation.
const ToolCall = 5 * time.Second
