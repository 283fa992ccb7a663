package dice

import (
	"math/rand"

	"github.com/louisbranch/gmscreen/internal/core/check"
)

// CheckDie is the die rolled for skill checks.
const CheckDie = 10

// Critical labels an exploding result on a skill check.
type Critical string

const (
	CriticalNone    Critical = ""
	CriticalSuccess Critical = "success"
	CriticalFailure Critical = "failure"
)

// CheckRequest is a skill check: base (STAT + skill + modifiers) plus 1d10,
// optionally compared against a difficulty value.
type CheckRequest struct {
	Base       int
	Difficulty int
	Seed       int64
}

// CheckResult is the outcome of a skill check. Extra is the critical die,
// zero when no critical happened.
type CheckResult struct {
	Base     int           `json:"base"`
	Natural  int           `json:"natural"`
	Extra    int           `json:"extra,omitempty"`
	Critical Critical      `json:"critical,omitempty"`
	Total    int           `json:"total"`
	Seed     int64         `json:"seed"`
	Outcome  *check.Result `json:"outcome,omitempty"`
}

// Check rolls a skill check. A natural 10 rolls another d10 and adds it; a
// natural 1 rolls another d10 and subtracts it. The extra die never explodes.
// Outcome is set only when Difficulty is positive.
func Check(request CheckRequest) CheckResult {
	rng := rand.New(rand.NewSource(request.Seed))
	result := CheckResult{
		Base:    request.Base,
		Natural: rollDie(rng, CheckDie),
		Seed:    request.Seed,
	}
	result.Total = result.Base + result.Natural

	switch result.Natural {
	case CheckDie:
		result.Critical = CriticalSuccess
		result.Extra = rollDie(rng, CheckDie)
		result.Total += result.Extra
	case 1:
		result.Critical = CriticalFailure
		result.Extra = rollDie(rng, CheckDie)
		result.Total -= result.Extra
	}

	if request.Difficulty > 0 {
		outcome := check.Check(result.Total, request.Difficulty)
		result.Outcome = &outcome
	}
	return result
}
