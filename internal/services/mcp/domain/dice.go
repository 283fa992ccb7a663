package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/gmscreen/internal/core/check"
	coredice "github.com/louisbranch/gmscreen/internal/core/dice"
)

// DiceRollInput represents the MCP tool input for rolling notation.
type DiceRollInput struct {
	Notation string `json:"notation" jsonschema:"dice notation such as 1d10, 2d6+3 or 4d6-1"`
	Seed     *int64 `json:"seed,omitempty" jsonschema:"optional seed for a reproducible roll"`
}

// DiceRoll represents the results for a single dice spec.
type DiceRoll struct {
	Sides   int   `json:"sides" jsonschema:"number of sides for the die"`
	Results []int `json:"results" jsonschema:"individual roll results"`
	Total   int   `json:"total" jsonschema:"sum of the roll results"`
}

// DiceRollResult represents the MCP tool output for rolling notation.
type DiceRollResult struct {
	Expression string     `json:"expression" jsonschema:"canonical notation that was rolled"`
	Rolls      []DiceRoll `json:"rolls" jsonschema:"results for each dice spec"`
	Modifier   int        `json:"modifier" jsonschema:"flat modifier added to the dice"`
	Total      int        `json:"total" jsonschema:"dice total plus modifier"`
	Seed       int64      `json:"seed" jsonschema:"seed used for the roll"`
}

// SkillCheckInput represents the MCP tool input for a d10 skill check.
type SkillCheckInput struct {
	Base       int    `json:"base" jsonschema:"STAT + skill + modifiers added to the d10"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"optional DV key such as everyday or professional"`
	Seed       *int64 `json:"seed,omitempty" jsonschema:"optional seed for a reproducible roll"`
}

// SkillCheckResult represents the MCP tool output for a d10 skill check.
type SkillCheckResult struct {
	Base       int    `json:"base" jsonschema:"base value of the check"`
	Natural    int    `json:"natural" jsonschema:"natural d10 result"`
	Extra      int    `json:"extra,omitempty" jsonschema:"critical extra d10"`
	Critical   string `json:"critical,omitempty" jsonschema:"success or failure on a natural 10 or 1"`
	Total      int    `json:"total" jsonschema:"final check total"`
	Seed       int64  `json:"seed" jsonschema:"seed used for the roll"`
	Difficulty int    `json:"difficulty,omitempty" jsonschema:"DV the check was rolled against"`
	Success    *bool  `json:"success,omitempty" jsonschema:"whether the total beat the DV"`
	Margin     *int   `json:"margin,omitempty" jsonschema:"total minus DV"`
}

// DiceRollTool defines the MCP tool schema for rolling notation.
func DiceRollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_roll",
		Description: "Rolls dice notation such as 2d6+3",
	}
}

// SkillCheckTool defines the MCP tool schema for skill checks.
func SkillCheckTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "skill_check",
		Description: "Rolls base + 1d10 with critical success and failure, optionally against a DV",
	}
}

// DiceRollHandler rolls notation.
func DiceRollHandler(roller coredice.Roller) mcp.ToolHandlerFor[DiceRollInput, DiceRollResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DiceRollInput) (*mcp.CallToolResult, DiceRollResult, error) {
		roll, err := roller.Roll(input.Notation, input.Seed)
		if err != nil {
			return nil, DiceRollResult{}, fmt.Errorf("dice roll: %w", err)
		}
		out := DiceRollResult{
			Expression: roll.Expression,
			Rolls:      make([]DiceRoll, 0, len(roll.Rolls)),
			Modifier:   roll.Modifier,
			Total:      roll.Total,
			Seed:       roll.Seed,
		}
		for _, r := range roll.Rolls {
			out.Rolls = append(out.Rolls, DiceRoll{Sides: r.Sides, Results: r.Results, Total: r.Total})
		}
		return nil, out, nil
	}
}

// SkillCheckHandler rolls a skill check.
func SkillCheckHandler(roller coredice.Roller) mcp.ToolHandlerFor[SkillCheckInput, SkillCheckResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SkillCheckInput) (*mcp.CallToolResult, SkillCheckResult, error) {
		dv := 0
		if key := strings.TrimSpace(input.Difficulty); key != "" {
			difficulty, err := check.LookupDifficulty(key)
			if err != nil {
				return nil, SkillCheckResult{}, err
			}
			dv = difficulty.Value
		}
		result, err := roller.Check(input.Base, dv, input.Seed)
		if err != nil {
			return nil, SkillCheckResult{}, fmt.Errorf("skill check: %w", err)
		}
		out := SkillCheckResult{
			Base:     result.Base,
			Natural:  result.Natural,
			Extra:    result.Extra,
			Critical: string(result.Critical),
			Total:    result.Total,
			Seed:     result.Seed,
		}
		if result.Outcome != nil {
			success, margin := result.Outcome.Success, result.Outcome.Margin
			out.Difficulty = result.Outcome.Difficulty
			out.Success = &success
			out.Margin = &margin
		}
		return nil, out, nil
	}
}
