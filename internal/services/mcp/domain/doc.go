// Package domain translates MCP tool and resource calls into rules catalog
// lookups and dice rolls.
//
// Each tool has a schema constructor (RulesSearchTool) and a handler
// constructor (RulesSearchHandler) so the service layer can register them
// without knowing their input and output types.
package domain
