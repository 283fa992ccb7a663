package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is parsed dice notation.
type Expression struct {
	Dice     []Spec
	Modifier int
}

// String renders the expression in canonical notation, e.g. "2d6+1d8-1".
func (e Expression) String() string {
	var b strings.Builder
	for i, spec := range e.Dice {
		if i > 0 {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%dd%d", spec.Count, spec.Sides)
	}
	switch {
	case e.Modifier > 0:
		fmt.Fprintf(&b, "+%d", e.Modifier)
	case e.Modifier < 0:
		fmt.Fprintf(&b, "%d", e.Modifier)
	}
	return b.String()
}

// ParseNotation parses NdS terms joined by "+", optionally followed by flat
// "+K" or "-K" modifiers. The count defaults to 1 ("d10"). Letters are case
// insensitive and whitespace is ignored. Dice terms cannot be subtracted.
//
// Every failure wraps ErrInvalidNotation.
func ParseNotation(notation string) (Expression, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(notation), ""))
	if compact == "" {
		return Expression{}, fmt.Errorf("%w: empty", ErrInvalidNotation)
	}

	var expr Expression
	for _, term := range splitTerms(compact) {
		sign, body := term[0], term[1:]
		if body == "" {
			return Expression{}, fmt.Errorf("%w: dangling %q", ErrInvalidNotation, string(sign))
		}
		if !strings.Contains(body, "d") {
			value, err := strconv.Atoi(body)
			if err != nil || value < 0 {
				return Expression{}, fmt.Errorf("%w: bad modifier %q", ErrInvalidNotation, body)
			}
			if sign == '-' {
				value = -value
			}
			expr.Modifier += value
			continue
		}
		if sign == '-' {
			return Expression{}, fmt.Errorf("%w: cannot subtract dice %q", ErrInvalidNotation, body)
		}
		spec, err := parseDiceTerm(body)
		if err != nil {
			return Expression{}, err
		}
		expr.Dice = append(expr.Dice, spec)
	}
	if len(expr.Dice) == 0 {
		return Expression{}, fmt.Errorf("%w: no dice", ErrInvalidNotation)
	}
	return expr, nil
}

// splitTerms cuts s before every sign, prefixing the first term with '+'.
func splitTerms(s string) []string {
	if s[0] != '+' && s[0] != '-' {
		s = "+" + s
	}
	var terms []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			terms = append(terms, s[start:i])
			start = i
		}
	}
	return append(terms, s[start:])
}

func parseDiceTerm(body string) (Spec, error) {
	countText, sidesText, _ := strings.Cut(body, "d")
	count := 1
	if countText != "" {
		n, err := strconv.Atoi(countText)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: bad count %q", ErrInvalidNotation, countText)
		}
		count = n
	}
	sides, err := strconv.Atoi(sidesText)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: bad sides %q", ErrInvalidNotation, sidesText)
	}
	spec := Spec{Count: count, Sides: sides}
	if !spec.Valid() {
		return Spec{}, fmt.Errorf("%w: %dd%d outside %d-%d dice of %d-%d sides",
			ErrInvalidNotation, count, sides, MinCount, MaxCount, MinSides, MaxSides)
	}
	return spec, nil
}
