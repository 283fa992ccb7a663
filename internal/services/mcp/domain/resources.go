package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
)

const (
	// CatalogResourceURI addresses the whole catalog payload.
	CatalogResourceURI = "rules://catalog"
	// ruleResourcePrefix prefixes single rule resources, rules://rule/{id}.
	ruleResourcePrefix = "rules://rule/"
)

// CatalogResource describes the catalog payload resource.
func CatalogResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         CatalogResourceURI,
		Name:        "rules_catalog",
		Description: "The loaded rules catalog as a versioned JSON payload",
		MIMEType:    "application/json",
	}
}

// RuleResourceTemplate describes single rule resources.
func RuleResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		URITemplate: ruleResourcePrefix + "{id}",
		Name:        "rule",
		Description: "One rule with its related rules",
		MIMEType:    "application/json",
	}
}

// CatalogResourceHandler serves the catalog in the importer's payload format.
func CatalogResourceHandler(rules *lookup.Service) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := CatalogResourceURI
		if req != nil && req.Params != nil && strings.TrimSpace(req.Params.URI) != "" {
			uri = req.Params.URI
		}
		if rules == nil || rules.Catalog() == nil {
			return nil, fmt.Errorf("catalog is not loaded")
		}
		return jsonResource(uri, catalog.PayloadFromCatalog(rules.Catalog()))
	}
}

// RuleResourceHandler serves rules://rule/{id}.
func RuleResourceHandler(rules *lookup.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil {
			return nil, fmt.Errorf("resource uri is required")
		}
		uri := req.Params.URI
		id, err := parseRuleIDFromURI(uri)
		if err != nil {
			return nil, err
		}
		detail, err := rules.Get(ctx, id)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return jsonResource(uri, RuleGetResult{Rule: ruleEntry(detail.Entry), Related: ruleEntries(detail.RelatedEntries)})
	}
}

// parseRuleIDFromURI extracts the id from rules://rule/{id}.
func parseRuleIDFromURI(uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if !strings.HasPrefix(uri, ruleResourcePrefix) {
		return "", fmt.Errorf("invalid rule uri %q", uri)
	}
	id := strings.TrimSpace(strings.TrimPrefix(uri, ruleResourcePrefix))
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("rule id is required in uri %q", uri)
	}
	return id, nil
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
