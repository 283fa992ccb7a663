// Package filter implements the rules reference view: a pure pipeline that
// filters and groups catalog entries for a view state, plus the state
// transitions the view supports.
package filter

import (
	"slices"

	"github.com/louisbranch/gmscreen/internal/rules/catalog"
)

// AllCategories selects every category.
const AllCategories = "all"

// State is the view state of one rules view. The zero value is not a valid
// default; use NewState.
type State struct {
	Category     string
	Query        string
	QuickRefOnly bool
	expanded     []string
}

// NewState returns the default view state: all categories, no query, full
// catalog, nothing expanded.
func NewState() State {
	return State{Category: AllCategories}
}

// SelectedCategory returns the selected category, mapping blank to "all".
func (s State) SelectedCategory() string {
	if s.Category == "" {
		return AllCategories
	}
	return s.Category
}

// IsExpanded reports whether id is expanded.
func (s State) IsExpanded(id string) bool {
	_, found := slices.BinarySearch(s.expanded, id)
	return found
}

// Expanded returns the expanded ids in sorted order.
func (s State) Expanded() []string {
	return slices.Clone(s.expanded)
}

// WithExpanded returns a copy of s whose expanded set is ids.
func (s State) WithExpanded(ids ...string) State {
	set := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			set = append(set, id)
		}
	}
	slices.Sort(set)
	s.expanded = slices.Compact(set)
	return s
}

// ToggleSection flips the membership of id in the expanded set. It never
// touches the filter fields.
func ToggleSection(s State, id string) State {
	i, found := slices.BinarySearch(s.expanded, id)
	next := slices.Clone(s.expanded)
	if found {
		next = slices.Delete(next, i, i+1)
	} else {
		next = slices.Insert(next, i, id)
	}
	s.expanded = next
	return s
}

// FollowRelated navigates to entry id: the query becomes its title, the
// category resets to "all" and id is expanded. It reports false and returns
// s unchanged when id is not in c.
func FollowRelated(c *catalog.Catalog, s State, id string) (State, bool) {
	entry, ok := c.Lookup(id)
	if !ok {
		return s, false
	}
	next := s
	next.Query = entry.Title
	next.Category = AllCategories
	if !next.IsExpanded(id) {
		next = ToggleSection(next, id)
	} else {
		next.expanded = slices.Clone(s.expanded)
	}
	return next, true
}

// RelatedEntries resolves the related ids of entry in order. Ids that are
// not in c are skipped.
func RelatedEntries(c *catalog.Catalog, entry catalog.Entry) []catalog.Entry {
	out := make([]catalog.Entry, 0, len(entry.Related))
	for _, id := range entry.Related {
		if related, ok := c.Lookup(id); ok {
			out = append(out, related)
		}
	}
	return out
}
