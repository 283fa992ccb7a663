package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// CategoryOption is one entry of the category dropdown.
type CategoryOption struct {
	Value    string
	Label    string
	Count    int
	Selected bool
	// All marks the "all categories" option, which shows no count.
	All      bool
}

// RelatedLink is a resolved cross-reference.
type RelatedLink struct {
	ID    string
	Title string
	URL   string
}

// RuleView is one rendered entry.
type RuleView struct {
	ID          string
	Title       string
	Subcategory string
	QuickRef    bool
	Page        int
	Expanded    bool
	ToggleURL   string
	// ContentHTML is already escaped and formatted.
	ContentHTML string
	Related     []RelatedLink
}

// RuleGroupView is the entries of one category.
type RuleGroupView struct {
	Category string
	Rules    []RuleView
}

// RulesPageView is the rules reference page.
type RulesPageView struct {
	Query     string
	QuickOnly bool
	Open      []string
	Options   []CategoryOption
	Groups    []RuleGroupView
	Total     int
	Empty     bool
}

// RulesPage renders the filter form and grouped results.
func RulesPage(view RulesPageView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="rules"><h1>`)
		h.text(T(loc, "rules.title"))
		h.raw(`</h1>`)
		rulesFilterForm(h, view, loc)
		h.raw(`<div id="rules-results" aria-live="polite"><p class="rules-count">`)
		h.text(T(loc, "rules.count", view.Total))
		h.raw(`</p>`)
		if view.Empty {
			h.raw(`<p class="rules-empty" role="status">`)
			h.text(T(loc, "rules.no_results"))
			h.raw(`</p>`)
		}
		for _, group := range view.Groups {
			ruleGroup(h, group, loc)
		}
		h.raw(`</div></section>`)
	})
}

func rulesFilterForm(h *html, view RulesPageView, loc Localizer) {
	h.raw(`<form id="rules-filter" class="rules-filter" method="get" data-live-filter`)
	h.attr("action", routepath.RulesPrefix)
	h.raw(`><label for="rules-category">`)
	h.text(T(loc, "rules.category"))
	h.raw(`</label><select id="rules-category" name="category">`)
	for _, option := range view.Options {
		h.raw(`<option`)
		h.attr("value", option.Value)
		h.flag("selected", option.Selected)
		h.raw(">")
		if option.All {
			h.text(option.Label)
		} else {
			h.text(T(loc, "rules.category_option", option.Label, option.Count))
		}
		h.raw("</option>")
	}
	h.raw(`</select><label for="rules-search">`)
	h.text(T(loc, "rules.search"))
	h.raw(`</label><input id="rules-search" type="search" name="q" autocomplete="off"`)
	h.attr("value", view.Query)
	h.attr("placeholder", T(loc, "rules.search_placeholder"))
	h.raw(`><label class="checkbox"><input type="checkbox" name="quick" value="1"`)
	h.flag("checked", view.QuickOnly)
	h.raw(`> `)
	h.text(T(loc, "rules.quick_only"))
	h.raw(`</label>`)
	for _, id := range view.Open {
		h.raw(`<input type="hidden" name="open"`)
		h.attr("value", id)
		h.raw(`>`)
	}
	h.raw(`<button type="submit">`)
	h.text(T(loc, "rules.apply"))
	h.raw(`</button><a class="rules-reset"`)
	h.attr("href", routepath.RulesPrefix)
	h.raw(`>`)
	h.text(T(loc, "rules.reset"))
	h.raw(`</a></form>`)
}

func ruleGroup(h *html, group RuleGroupView, loc Localizer) {
	h.raw(`<section class="rule-group"><h2>`)
	h.text(group.Category)
	h.raw(`</h2>`)
	for _, rule := range group.Rules {
		ruleArticle(h, rule, loc)
	}
	h.raw(`</section>`)
}

func ruleArticle(h *html, rule RuleView, loc Localizer) {
	class := "rule"
	if rule.Expanded {
		class += " rule-expanded"
	}
	h.raw(`<article`)
	h.attr("id", routepath.RuleAnchor(rule.ID))
	h.attr("class", class)
	h.raw(`><h3><a class="rule-toggle"`)
	h.attr("href", rule.ToggleURL)
	if rule.Expanded {
		h.attr("aria-expanded", "true")
		h.attr("title", T(loc, "rules.collapse"))
	} else {
		h.attr("aria-expanded", "false")
		h.attr("title", T(loc, "rules.expand"))
	}
	h.raw(`>`)
	h.text(rule.Title)
	h.raw(`</a>`)
	if rule.QuickRef {
		h.raw(` <span class="badge">`)
		h.text(T(loc, "rules.quick_badge"))
		h.raw(`</span>`)
	}
	if rule.Page > 0 {
		h.raw(` <span class="rule-page">`)
		h.text(T(loc, "rules.page", rule.Page))
		h.raw(`</span>`)
	}
	h.raw(`</h3>`)
	if rule.Subcategory != "" {
		h.raw(`<p class="rule-subcategory">`)
		h.text(rule.Subcategory)
		h.raw(`</p>`)
	}
	if rule.Expanded {
		h.raw(`<div class="rule-content">`)
		h.raw(rule.ContentHTML)
		h.raw(`</div>`)
		if len(rule.Related) > 0 {
			h.raw(`<nav class="rule-related"><h4>`)
			h.text(T(loc, "rules.related"))
			h.raw(`</h4><ul>`)
			for _, link := range rule.Related {
				h.raw(`<li><a`)
				h.attr("href", link.URL)
				h.attr("data-rule-id", link.ID)
				h.raw(`>`)
				h.text(link.Title)
				h.raw(`</a></li>`)
			}
			h.raw(`</ul></nav>`)
		}
	}
	h.raw(`</article>`)
}
