package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisbranch/gmscreen/internal/core/check"
	"github.com/louisbranch/gmscreen/internal/core/dice"
)

func seedFlag(cmd *cobra.Command, seed int64) *int64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return &seed
}

func (a *app) rollCmd() *cobra.Command {
	var seed int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "roll <notation>",
		Short: "Roll dice notation such as 2d6+3",
		Example: `  gmscreen roll 1d10
  gmscreen roll 3d6-1 --seed 42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roll, err := a.roller.Roll(strings.Join(args, ""), seedFlag(cmd, seed))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, roll)
			}
			printRoll(out, newTheme(out, a.noColor), roll)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a repeatable roll")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printRoll(w io.Writer, th theme, roll dice.NotationRoll) {
	fmt.Fprintf(w, "%s = %s\n", roll.Expression, th.total.Render(strconv.Itoa(roll.Total)))
	for _, r := range roll.Rolls {
		values := make([]string, len(r.Results))
		for i, v := range r.Results {
			values[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "  d%d: %s\n", r.Sides, strings.Join(values, ", "))
	}
	if roll.Modifier != 0 {
		fmt.Fprintf(w, "  modifier: %+d\n", roll.Modifier)
	}
	fmt.Fprintln(w, th.dim.Render(fmt.Sprintf("seed %d", roll.Seed)))
}

// parseDifficulty accepts a number or a DV table key such as "professional".
func parseDifficulty(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("difficulty must not be negative")
		}
		return n, nil
	}
	d, err := check.LookupDifficulty(value)
	if err != nil {
		return 0, err
	}
	return d.Value, nil
}

func (a *app) checkCmd() *cobra.Command {
	var seed int64
	var dv string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check <base>",
		Short: "Roll a skill check: base + 1d10 with criticals",
		Long:  "Roll STAT + skill + 1d10. A natural 10 adds another d10 and a natural 1 subtracts one. With --dv the total must beat the difficulty value.",
		Example: `  gmscreen check 12
  gmscreen check 12 --dv professional
  gmscreen check 9 --dv 15 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("base must be a number: %q", args[0])
			}
			difficulty, err := parseDifficulty(dv)
			if err != nil {
				return err
			}
			result, err := a.roller.Check(base, difficulty, seedFlag(cmd, seed))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			printCheck(out, newTheme(out, a.noColor), result)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a repeatable roll")
	cmd.Flags().StringVar(&dv, "dv", "", "difficulty value or name (simple, everyday, difficult, professional, heroic, incredible, legendary)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printCheck(w io.Writer, th theme, result dice.CheckResult) {
	fmt.Fprintf(w, "%d + %d = %s\n", result.Base, result.Natural, th.total.Render(strconv.Itoa(result.Total)))
	switch result.Critical {
	case dice.CriticalSuccess:
		fmt.Fprintf(w, "  %s +%d\n", th.success.Render("critical success"), result.Extra)
	case dice.CriticalFailure:
		fmt.Fprintf(w, "  %s -%d\n", th.failure.Render("critical failure"), result.Extra)
	}
	if result.Outcome != nil {
		verdict := th.failure.Render("failure")
		if result.Outcome.Success {
			verdict = th.success.Render("success")
		}
		fmt.Fprintf(w, "  vs DV %d: %s (margin %+d)\n", result.Outcome.Difficulty, verdict, result.Outcome.Margin)
	}
	fmt.Fprintln(w, th.dim.Render(fmt.Sprintf("seed %d", result.Seed)))
}
