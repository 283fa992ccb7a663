package dice

import "math/rand"

// RollDice rolls dice based on the provided request.
//
// # Determinism
//
// RollDice is deterministic with respect to the Seed field on Request.
// Given the same Seed and the same Dice slice (including order and values),
// RollDice will always produce the same Result.
//
// # Ordering
//
// Dice specs in Request.Dice are processed in slice order. The resulting
// Roll entries in Result.Rolls appear in the same order as the
// corresponding Spec entries in Request.Dice.
//
// # Errors
//
//   - At least one Spec must be provided in Request.Dice, otherwise
//     ErrMissingDice is returned.
//   - Each Spec must satisfy Spec.Valid, otherwise ErrInvalidDiceSpec is
//     returned.
func RollDice(request Request) (Result, error) {
	rng := rand.New(rand.NewSource(request.Seed))
	result, err := RollWithRng(rng, request.Dice)
	if err != nil {
		return Result{}, err
	}
	result.Modifier = request.Modifier
	result.Total = result.DiceTotal + request.Modifier
	result.Seed = request.Seed
	return result, nil
}

// RollWithRng rolls specs using a provided random source. The modifier and
// seed of the returned Result are left zero.
func RollWithRng(rng *rand.Rand, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		if !spec.Valid() {
			return Result{}, ErrInvalidDiceSpec
		}
		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			value := rollDie(rng, spec.Sides)
			results[i] = value
			rollTotal += value
		}
		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls:     rolls,
		DiceTotal: total,
		Total:     total,
	}, nil
}

// RollNotation parses notation and rolls it with seed.
func RollNotation(notation string, seed int64) (Result, error) {
	expr, err := ParseNotation(notation)
	if err != nil {
		return Result{}, err
	}
	return RollDice(Request{Dice: expr.Dice, Modifier: expr.Modifier, Seed: seed})
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
