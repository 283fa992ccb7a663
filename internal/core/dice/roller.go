package dice

import (
	"errors"
	"fmt"

	"github.com/louisbranch/gmscreen/internal/platform/random"
)

// Roller rolls notation and skill checks with an optional caller seed.
type Roller struct {
	// ResolveSeed returns the requested seed or mints one.
	ResolveSeed func(*int64) (int64, error)
}

// NewRoller returns a Roller that mints seeds from crypto/rand.
func NewRoller() Roller {
	return Roller{ResolveSeed: random.ResolveSeed}
}

// NotationRoll is a Result together with the canonical notation rolled.
type NotationRoll struct {
	Expression string `json:"expression"`
	Result
}

// IsInputError reports whether err came from invalid notation or dice bounds
// rather than seed generation.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidNotation) || errors.Is(err, ErrInvalidDiceSpec) || errors.Is(err, ErrMissingDice)
}

func (r Roller) seed(requested *int64) (int64, error) {
	resolve := r.ResolveSeed
	if resolve == nil {
		resolve = random.ResolveSeed
	}
	seed, err := resolve(requested)
	if err != nil {
		return 0, fmt.Errorf("resolve seed: %w", err)
	}
	return seed, nil
}

// Roll parses notation and rolls it.
func (r Roller) Roll(notation string, requested *int64) (NotationRoll, error) {
	expr, err := ParseNotation(notation)
	if err != nil {
		return NotationRoll{}, err
	}
	seed, err := r.seed(requested)
	if err != nil {
		return NotationRoll{}, err
	}
	result, err := RollDice(Request{Dice: expr.Dice, Modifier: expr.Modifier, Seed: seed})
	if err != nil {
		return NotationRoll{}, err
	}
	return NotationRoll{Expression: expr.String(), Result: result}, nil
}

// Check rolls base + 1d10, compared against difficulty when it is positive.
func (r Roller) Check(base int, difficulty int, requested *int64) (CheckResult, error) {
	seed, err := r.seed(requested)
	if err != nil {
		return CheckResult{}, err
	}
	return Check(CheckRequest{Base: base, Difficulty: difficulty, Seed: seed}), nil
}
