package dice

import "errors"

const (
	// MinCount and MaxCount bound the dice in one notation term.
	MinCount = 1
	MaxCount = 100
	// MinSides and MaxSides bound the faces of one die.
	MinSides = 2
	MaxSides = 1000
)

var (
	// ErrMissingDice is returned when a request has no dice.
	ErrMissingDice = errors.New("at least one die must be provided")
	// ErrInvalidDiceSpec is returned when a spec is outside the allowed bounds.
	ErrInvalidDiceSpec = errors.New("dice count and sides are out of range")
	// ErrInvalidNotation is returned when notation cannot be parsed.
	ErrInvalidNotation = errors.New("invalid dice notation")
)

// Spec describes one group of identical dice, e.g. 2d6.
type Spec struct {
	Sides int `json:"sides"`
	Count int `json:"count"`
}

// Request is a seeded roll of one or more dice groups plus a flat modifier.
type Request struct {
	Dice     []Spec
	Modifier int
	Seed     int64
}

// Roll holds the results of one Spec.
type Roll struct {
	Sides   int   `json:"sides"`
	Results []int `json:"results"`
	Total   int   `json:"total"`
}

// Result is the outcome of a Request. DiceTotal sums every die; Total adds
// the modifier.
type Result struct {
	Rolls     []Roll `json:"rolls"`
	DiceTotal int    `json:"dice_total"`
	Modifier  int    `json:"modifier"`
	Total     int    `json:"total"`
	Seed      int64  `json:"seed"`
}

// Valid reports whether the spec is within the allowed bounds.
func (s Spec) Valid() bool {
	return s.Count >= MinCount && s.Count <= MaxCount && s.Sides >= MinSides && s.Sides <= MaxSides
}
