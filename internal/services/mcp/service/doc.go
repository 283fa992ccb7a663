// Package service wires MCP transports to the domain handlers.
//
// It knows how to run MCP over stdio or streamable HTTP and delegates rule
// and dice semantics to the domain package.
package service
