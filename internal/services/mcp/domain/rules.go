package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/gmscreen/internal/platform/timeouts"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
)

// RuleEntry is the MCP shape of one catalog entry.
type RuleEntry struct {
	ID          string   `json:"id" jsonschema:"stable rule identifier"`
	Title       string   `json:"title" jsonschema:"display title"`
	Category    string   `json:"category" jsonschema:"rule category"`
	Subcategory string   `json:"subcategory,omitempty" jsonschema:"optional subcategory"`
	Content     string   `json:"content" jsonschema:"rule text with **bold** spans and - bullet lines"`
	Related     []string `json:"related" jsonschema:"ids of related rules"`
	QuickRef    bool     `json:"quick_ref" jsonschema:"entry belongs to the quick reference subset"`
	Page        int      `json:"page,omitempty" jsonschema:"source book page"`
}

// RuleGroup is the entries of one category.
type RuleGroup struct {
	Category string      `json:"category" jsonschema:"category shared by the entries"`
	Entries  []RuleEntry `json:"entries" jsonschema:"entries in catalog order"`
}

// RulesSearchInput represents the MCP tool input for searching rules.
type RulesSearchInput struct {
	Category     string `json:"category,omitempty" jsonschema:"category to keep, or all"`
	Query        string `json:"query,omitempty" jsonschema:"case-insensitive text to find in title, content, category or subcategory"`
	QuickRefOnly bool   `json:"quick_ref_only,omitempty" jsonschema:"only search the quick reference subset"`
}

// RulesSearchResult represents the MCP tool output for searching rules.
type RulesSearchResult struct {
	Total  int         `json:"total" jsonschema:"number of matched entries"`
	Groups []RuleGroup `json:"groups" jsonschema:"matches grouped by category"`
}

// RuleGetInput represents the MCP tool input for reading one rule.
type RuleGetInput struct {
	ID string `json:"id" jsonschema:"rule identifier"`
}

// RuleGetResult represents the MCP tool output for reading one rule.
type RuleGetResult struct {
	Rule    RuleEntry   `json:"rule" jsonschema:"the requested rule"`
	Related []RuleEntry `json:"related_entries" jsonschema:"related rules present in the catalog"`
}

// RulesSearchTool defines the MCP tool schema for searching rules.
func RulesSearchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "rules_search",
		Description: "Searches the rules catalog by category, text and quick reference flag",
	}
}

// RuleGetTool defines the MCP tool schema for reading one rule.
func RuleGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "rule_get",
		Description: "Returns one rule with its related rules",
	}
}

// RulesSearchHandler runs the rules filter pipeline.
func RulesSearchHandler(rules *lookup.Service) mcp.ToolHandlerFor[RulesSearchInput, RulesSearchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RulesSearchInput) (*mcp.CallToolResult, RulesSearchResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, timeouts.ToolCall)
		defer cancel()

		result, err := rules.Search(runCtx, lookup.SearchRequest{
			Category:     input.Category,
			Query:        input.Query,
			QuickRefOnly: input.QuickRefOnly,
		})
		if err != nil {
			return nil, RulesSearchResult{}, err
		}
		out := RulesSearchResult{Total: result.Total, Groups: make([]RuleGroup, 0, len(result.Groups))}
		for _, group := range result.Groups {
			out.Groups = append(out.Groups, RuleGroup{Category: string(group.Category), Entries: ruleEntries(group.Entries)})
		}
		return nil, out, nil
	}
}

// RuleGetHandler reads one rule and resolves its related entries.
func RuleGetHandler(rules *lookup.Service) mcp.ToolHandlerFor[RuleGetInput, RuleGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RuleGetInput) (*mcp.CallToolResult, RuleGetResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, timeouts.ToolCall)
		defer cancel()

		detail, err := rules.Get(runCtx, input.ID)
		if err != nil {
			return nil, RuleGetResult{}, err
		}
		return nil, RuleGetResult{Rule: ruleEntry(detail.Entry), Related: ruleEntries(detail.RelatedEntries)}, nil
	}
}

func ruleEntry(entry catalog.Entry) RuleEntry {
	related := entry.Related
	if related == nil {
		related = []string{}
	}
	return RuleEntry{
		ID:          entry.ID,
		Title:       entry.Title,
		Category:    string(entry.Category),
		Subcategory: entry.Subcategory,
		Content:     entry.Content,
		Related:     related,
		QuickRef:    entry.QuickRef,
		Page:        entry.Page,
	}
}

func ruleEntries(entries []catalog.Entry) []RuleEntry {
	out := make([]RuleEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ruleEntry(entry))
	}
	return out
}
