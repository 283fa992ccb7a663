// Package check resolves skill check totals against difficulty values.
package check

import (
	"fmt"
	"strings"
)

// Difficulty is a named difficulty value (DV) from the ruleset's table.
type Difficulty struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

var difficulties = []Difficulty{
	{Key: "simple", Label: "Simple", Value: 9},
	{Key: "everyday", Label: "Everyday", Value: 13},
	{Key: "difficult", Label: "Difficult", Value: 15},
	{Key: "professional", Label: "Professional", Value: 17},
	{Key: "heroic", Label: "Heroic", Value: 21},
	{Key: "incredible", Label: "Incredible", Value: 24},
	{Key: "legendary", Label: "Legendary", Value: 29},
}

// Difficulties returns the DV table in ascending order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// LookupDifficulty returns the DV for a key such as "professional".
func LookupDifficulty(key string) (Difficulty, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, d := range difficulties {
		if d.Key == key {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", key)
}

// Result represents the outcome of a difficulty check.
type Result struct {
	Difficulty int  `json:"difficulty"`
	Success    bool `json:"success"`
	Margin     int  `json:"margin"`
}

// MeetsDifficulty reports whether total beats difficulty. Ties go to the
// defender, so the total must be strictly greater.
func MeetsDifficulty(total, difficulty int) bool {
	return total > difficulty
}

// Margin is positive on success and zero or negative on failure.
func Margin(total, difficulty int) int {
	return total - difficulty
}

// Check resolves total against difficulty.
func Check(total, difficulty int) Result {
	return Result{
		Difficulty: difficulty,
		Success:    MeetsDifficulty(total, difficulty),
		Margin:     Margin(total, difficulty),
	}
}
