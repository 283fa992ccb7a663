package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
)

func (a *app) rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Search and read the rules catalog",
	}
	cmd.AddCommand(a.rulesSearchCmd())
	cmd.AddCommand(a.rulesShowCmd())
	cmd.AddCommand(a.rulesCategoriesCmd())
	return cmd
}

func (a *app) rulesSearchCmd() *cobra.Command {
	var req lookup.SearchRequest
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "List rules grouped by category",
		Long:  "Filter the catalog by category, quick-reference membership and a case-insensitive text query.",
		Example: `  gmscreen rules search initiative
  gmscreen rules search --category Combat --quick
  gmscreen rules search --filter 'page > 100'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				req.Query = args[0]
			}
			result, err := svc.Search(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			printSearch(out, newTheme(out, a.noColor), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Category, "category", "c", "", "only rules in this category")
	cmd.Flags().BoolVarP(&req.QuickRefOnly, "quick", "q", false, "only quick-reference rules")
	cmd.Flags().StringVar(&req.Filter, "filter", "", "structured filter, e.g. 'category = \"Combat\" AND page > 50'")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printSearch(w io.Writer, th theme, result lookup.SearchResult) {
	if result.Total == 0 {
		fmt.Fprintln(w, th.dim.Render("No rules match."))
		return
	}
	for i, group := range result.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", th.heading.Render(string(group.Category)), th.dim.Render(fmt.Sprintf("(%d)", len(group.Entries))))
		for _, entry := range group.Entries {
			fmt.Fprintf(w, "  %s  %s%s\n", th.id.Render(entry.ID), entry.Title, entrySuffix(th, entry))
		}
	}
}

func entrySuffix(th theme, entry catalog.Entry) string {
	var parts []string
	if entry.Subcategory != "" {
		parts = append(parts, entry.Subcategory)
	}
	if entry.Page > 0 {
		parts = append(parts, "p."+strconv.Itoa(entry.Page))
	}
	suffix := ""
	if len(parts) > 0 {
		suffix = " " + th.dim.Render(strings.Join(parts, " · "))
	}
	if entry.QuickRef {
		suffix += " " + th.badge.Render("[quick]")
	}
	return suffix
}

func (a *app) rulesShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one rule with its related rules",
		Example: `  gmscreen rules show combat-initiative`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			detail, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, detail)
			}
			printDetail(out, newTheme(out, a.noColor), detail, a.noColor)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printDetail(w io.Writer, th theme, detail lookup.RuleDetail, noColor bool) {
	fmt.Fprintf(w, "%s %s\n", th.heading.Render(detail.Title), th.id.Render("("+detail.ID+")"))
	meta := []string{string(detail.Category)}
	if detail.Subcategory != "" {
		meta = append(meta, detail.Subcategory)
	}
	if detail.Page > 0 {
		meta = append(meta, "p."+strconv.Itoa(detail.Page))
	}
	if detail.QuickRef {
		meta = append(meta, "quick reference")
	}
	fmt.Fprintln(w, th.dim.Render(strings.Join(meta, " · ")))
	fmt.Fprint(w, renderContent(detail.Content, noColor))

	if len(detail.RelatedEntries) == 0 {
		return
	}
	fmt.Fprintln(w, th.total.Render("Related:"))
	for _, related := range detail.RelatedEntries {
		fmt.Fprintf(w, "  - %s %s\n", related.Title, th.id.Render("("+related.ID+")"))
	}
}

func (a *app) rulesCategoriesCmd() *cobra.Command {
	var quick bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List published categories with entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			facets := svc.Categories(quick)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, facets)
			}
			th := newTheme(out, a.noColor)
			for _, facet := range facets {
				fmt.Fprintf(out, "%-12s %s\n", facet.Category, th.dim.Render(strconv.Itoa(facet.Count)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quick, "quick", "q", false, "count only quick-reference rules")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
