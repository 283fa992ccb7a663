package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/louisbranch/gmscreen/internal/rules/catalog"
)

// Group is the entries of one category, in catalog order.
type Group struct {
	Category catalog.Category `json:"category"`
	Entries  []catalog.Entry  `json:"entries"`
}

// Result is the output of the pipeline. The zero Result is "not computed",
// which is distinct from a computed result with no entries.
type Result struct {
	Groups   []Group
	Total    int
	computed bool
}

// Computed reports whether r came from Apply.
func (r Result) Computed() bool {
	return r.computed
}

// Empty reports whether r was computed and matched nothing.
func (r Result) Empty() bool {
	return r.computed && r.Total == 0
}

// Entries returns the matched entries in group order.
func (r Result) Entries() []catalog.Entry {
	out := make([]catalog.Entry, 0, r.Total)
	for _, g := range r.Groups {
		out = append(out, g.Entries...)
	}
	return out
}

// Apply runs the pipeline: quick-reference working set, category, text
// search, then grouping by category in order of first appearance.
func Apply(c *catalog.Catalog, s State) Result {
	result, _ := apply(c, s, nil)
	return result
}

// ApplyExpression is Apply with a structured expression evaluated after the
// text search. A nil expression behaves like Apply.
func ApplyExpression(c *catalog.Catalog, s State, e *Expression) (Result, error) {
	return apply(c, s, e)
}

func apply(c *catalog.Catalog, s State, e *Expression) (Result, error) {
	match := newMatcher(s)
	byCategory := map[catalog.Category][]catalog.Entry{}
	total := 0
	var err error

	c.Each(func(entry catalog.Entry) bool {
		if !match(entry) {
			return true
		}
		if e != nil {
			ok, evalErr := e.Match(entry)
			if evalErr != nil {
				err = evalErr
				return false
			}
			if !ok {
				return true
			}
		}
		byCategory[entry.Category] = append(byCategory[entry.Category], cloneEntry(entry))
		total++
		return true
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{Total: total, computed: true}
	for _, category := range c.CategoryOrder() {
		if entries := byCategory[category]; len(entries) > 0 {
			result.Groups = append(result.Groups, Group{Category: category, Entries: entries})
		}
	}
	return result, nil
}

// newMatcher builds the predicate for the quick-ref, category and text steps.
func newMatcher(s State) func(catalog.Entry) bool {
	selected := s.SelectedCategory()
	all := selected == AllCategories
	category := catalog.Category(selected)
	// A selection outside the published enumeration matches nothing, even
	// when an entry carries that category.
	none := !all && !category.Published()

	fold := cases.Fold()
	query := ""
	if s.Query != "" {
		query = fold.String(s.Query)
	}

	return func(entry catalog.Entry) bool {
		if s.QuickRefOnly && !entry.QuickRef {
			return false
		}
		if none || (!all && entry.Category != category) {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(fold.String(entry.Title), query) ||
			strings.Contains(fold.String(entry.Content), query) ||
			strings.Contains(fold.String(string(entry.Category)), query) ||
			(entry.Subcategory != "" && strings.Contains(fold.String(entry.Subcategory), query))
	}
}

func cloneEntry(entry catalog.Entry) catalog.Entry {
	if entry.Related != nil {
		entry.Related = append([]string(nil), entry.Related...)
	}
	return entry
}

// Facet is the number of working-set entries in one published category.
type Facet struct {
	Category catalog.Category `json:"category"`
	Count    int              `json:"count"`
}

// Facets counts, for every published category, the entries of the working
// set (after the quick-reference step only).
func Facets(c *catalog.Catalog, s State) []Facet {
	counts := map[catalog.Category]int{}
	c.Each(func(entry catalog.Entry) bool {
		if !s.QuickRefOnly || entry.QuickRef {
			counts[entry.Category]++
		}
		return true
	})
	categories := catalog.Categories()
	out := make([]Facet, 0, len(categories))
	for _, category := range categories {
		out = append(out, Facet{Category: category, Count: counts[category]})
	}
	return out
}
