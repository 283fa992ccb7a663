// Package lookup answers rules catalog queries for the JSON, MCP and
// terminal surfaces.
package lookup

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
	platformotel "github.com/louisbranch/gmscreen/internal/platform/otel"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/filter"
)

var tracer = platformotel.Tracer("rules/lookup")

// SearchRequest selects entries like the rules view does, plus an optional
// structured filter expression.
type SearchRequest struct {
	Category     string `json:"category,omitempty"`
	Query        string `json:"query,omitempty"`
	QuickRefOnly bool   `json:"quick_ref_only,omitempty"`
	Filter       string `json:"filter,omitempty"`
}

// SearchResult is the grouped output of a search.
type SearchResult struct {
	Total  int            `json:"total"`
	Groups []filter.Group `json:"groups"`
}

// RuleDetail is one entry with its related entries resolved.
type RuleDetail struct {
	catalog.Entry
	RelatedEntries []catalog.Entry `json:"related_entries"`
}

// Service reads a single immutable catalog.
type Service struct {
	catalog *catalog.Catalog
}

// New returns a Service over c.
func New(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

// Catalog returns the underlying catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// State converts req into a filter state. A blank category selects all.
func (req SearchRequest) State() filter.State {
	state := filter.NewState()
	if category := strings.TrimSpace(req.Category); category != "" {
		state.Category = category
	}
	state.Query = req.Query
	state.QuickRefOnly = req.QuickRefOnly
	return state
}

// Search filters and groups the catalog.
func (s *Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	_, span := tracer.Start(ctx, "rules.search")
	defer span.End()

	if s == nil || s.catalog == nil {
		return SearchResult{}, apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "catalog is not loaded")
	}
	expr, err := filter.ParseExpression(req.Filter)
	if err != nil {
		return SearchResult{}, apperrors.Wrap(apperrors.KindInvalidInput, "error.filter_expression", err)
	}
	result, err := filter.ApplyExpression(s.catalog, req.State(), expr)
	if err != nil {
		return SearchResult{}, apperrors.Wrap(apperrors.KindInvalidInput, "error.filter_expression", err)
	}
	span.SetAttributes(attribute.Int("rules.total", result.Total))
	groups := result.Groups
	if groups == nil {
		groups = []filter.Group{}
	}
	return SearchResult{Total: result.Total, Groups: groups}, nil
}

// Get returns the entry with id and its resolvable related entries.
func (s *Service) Get(ctx context.Context, id string) (RuleDetail, error) {
	_, span := tracer.Start(ctx, "rules.get")
	defer span.End()

	if s == nil || s.catalog == nil {
		return RuleDetail{}, apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "catalog is not loaded")
	}
	id = strings.TrimSpace(id)
	span.SetAttributes(attribute.String("rules.id", id))
	entry, ok := s.catalog.Lookup(id)
	if !ok {
		return RuleDetail{}, apperrors.EK(apperrors.KindNotFound, "error.rule_not_found", "rule not found: "+id)
	}
	return RuleDetail{Entry: entry, RelatedEntries: filter.RelatedEntries(s.catalog, entry)}, nil
}

// Categories returns facet counts for every published category.
func (s *Service) Categories(quickRefOnly bool) []filter.Facet {
	if s == nil || s.catalog == nil {
		return nil
	}
	state := filter.NewState()
	state.QuickRefOnly = quickRefOnly
	return filter.Facets(s.catalog, state)
}
