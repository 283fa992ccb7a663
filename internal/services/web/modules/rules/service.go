package rules

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
	platformotel "github.com/louisbranch/gmscreen/internal/platform/otel"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/filter"
	"github.com/louisbranch/gmscreen/internal/rules/markup"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
	"github.com/louisbranch/gmscreen/internal/services/web/templates"
)

var tracer = platformotel.Tracer("services/web/rules")

type service struct {
	catalog *catalog.Catalog
}

func newService(c *catalog.Catalog) service {
	return service{catalog: c}
}

// page runs the filter pipeline for state and builds the page view.
func (s service) page(ctx context.Context, state filter.State, loc templates.Localizer) templates.RulesPageView {
	_, span := tracer.Start(ctx, "rules.filter")
	defer span.End()

	result := filter.Apply(s.catalog, state)
	span.SetAttributes(
		attribute.String("rules.category", state.SelectedCategory()),
		attribute.Bool("rules.quick_ref_only", state.QuickRefOnly),
		attribute.Int("rules.total", result.Total),
	)

	view := templates.RulesPageView{
		Query:     state.Query,
		QuickOnly: state.QuickRefOnly,
		Open:      state.Expanded(),
		Options:   s.categoryOptions(state, loc),
		Total:     result.Total,
		Empty:     result.Empty(),
	}
	for _, group := range result.Groups {
		groupView := templates.RuleGroupView{Category: string(group.Category)}
		for _, entry := range group.Entries {
			groupView.Rules = append(groupView.Rules, s.ruleView(state, entry))
		}
		view.Groups = append(view.Groups, groupView)
	}
	return view
}

func (s service) categoryOptions(state filter.State, loc templates.Localizer) []templates.CategoryOption {
	selected := state.SelectedCategory()
	facets := filter.Facets(s.catalog, state)
	options := make([]templates.CategoryOption, 0, len(facets)+1)
	options = append(options, templates.CategoryOption{
		Value:    filter.AllCategories,
		Label:    templates.T(loc, "rules.category_all"),
		Selected: selected == filter.AllCategories,
		All:      true,
	})
	for _, facet := range facets {
		options = append(options, templates.CategoryOption{
			Value:    string(facet.Category),
			Label:    string(facet.Category),
			Count:    facet.Count,
			Selected: selected == string(facet.Category),
		})
	}
	return options
}

func (s service) ruleView(state filter.State, entry catalog.Entry) templates.RuleView {
	toggled := filter.ToggleSection(state, entry.ID)
	view := templates.RuleView{
		ID:          entry.ID,
		Title:       entry.Title,
		Subcategory: entry.Subcategory,
		QuickRef:    entry.QuickRef,
		Page:        entry.Page,
		Expanded:    state.IsExpanded(entry.ID),
		ToggleURL:   routepath.WithQuery(routepath.RulesPrefix, toggled.Encode()) + "#" + routepath.RuleAnchor(entry.ID),
	}
	if !view.Expanded {
		return view
	}
	view.ContentHTML = markup.Format(entry.Content)
	for _, related := range filter.RelatedEntries(s.catalog, entry) {
		view.Related = append(view.Related, templates.RelatedLink{
			ID:    related.ID,
			Title: related.Title,
			URL:   routepath.WithQuery(routepath.Rule(related.ID), state.Encode()),
		})
	}
	return view
}

// jump applies cross-reference navigation to id and returns the location of
// the resulting view.
func (s service) jump(ctx context.Context, state filter.State, id string) (string, error) {
	_, span := tracer.Start(ctx, "rules.follow_related")
	defer span.End()
	span.SetAttributes(attribute.String("rules.id", id))

	next, ok := filter.FollowRelated(s.catalog, state, id)
	if !ok {
		return "", apperrors.EK(apperrors.KindNotFound, "error.rule_not_found", "rule not found")
	}
	return routepath.WithQuery(routepath.RulesPrefix, next.Encode()) + "#" + routepath.RuleAnchor(id), nil
}
