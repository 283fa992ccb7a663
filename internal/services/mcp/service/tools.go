package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	coredice "github.com/louisbranch/gmscreen/internal/core/dice"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
	"github.com/louisbranch/gmscreen/internal/services/mcp/domain"
)

// capability is a named group of tools or resources installed together.
type capability struct {
	name    string
	tools   int
	install func(*mcp.Server) error
}

func capabilities(rules *lookup.Service, roller coredice.Roller) []capability {
	return []capability{
		{
			name:  "rules-tools",
			tools: 2,
			install: func(s *mcp.Server) error {
				if rules == nil {
					return fmt.Errorf("rules lookup is required")
				}
				addTool(s, domain.RulesSearchTool(), domain.RulesSearchHandler(rules))
				addTool(s, domain.RuleGetTool(), domain.RuleGetHandler(rules))
				return nil
			},
		},
		{
			name:  "dice-tools",
			tools: 2,
			install: func(s *mcp.Server) error {
				addTool(s, domain.DiceRollTool(), domain.DiceRollHandler(roller))
				addTool(s, domain.SkillCheckTool(), domain.SkillCheckHandler(roller))
				return nil
			},
		},
		{
			name: "rules-resources",
			install: func(s *mcp.Server) error {
				if rules == nil {
					return fmt.Errorf("rules lookup is required")
				}
				s.AddResource(domain.CatalogResource(), domain.CatalogResourceHandler(rules))
				s.AddResourceTemplate(domain.RuleResourceTemplate(), domain.RuleResourceHandler(rules))
				return nil
			},
		},
	}
}

// addTool keeps the typed handler signature so the SDK can infer schemas
// from the input and output structs.
func addTool[In, Out any](s *mcp.Server, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(s, tool, handler)
}
