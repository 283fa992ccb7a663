package dice

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRollDice_Basic(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		wantErr error
	}{
		{
			name:    "single d10",
			request: Request{Dice: []Spec{{Sides: 10, Count: 1}}, Seed: 42},
		},
		{
			name: "2d6 + 1d8 + 3",
			request: Request{
				Dice:     []Spec{{Sides: 6, Count: 2}, {Sides: 8, Count: 1}},
				Modifier: 3,
				Seed:     42,
			},
		},
		{
			name:    "no dice",
			request: Request{Dice: []Spec{}, Seed: 42},
			wantErr: ErrMissingDice,
		},
		{
			name:    "one-sided die",
			request: Request{Dice: []Spec{{Sides: 1, Count: 1}}, Seed: 42},
			wantErr: ErrInvalidDiceSpec,
		},
		{
			name:    "too many dice",
			request: Request{Dice: []Spec{{Sides: 6, Count: MaxCount + 1}}, Seed: 42},
			wantErr: ErrInvalidDiceSpec,
		},
		{
			name:    "zero count",
			request: Request{Dice: []Spec{{Sides: 6, Count: 0}}, Seed: 42},
			wantErr: ErrInvalidDiceSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RollDice(tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RollDice() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(result.Rolls) != len(tt.request.Dice) {
				t.Fatalf("RollDice() got %d rolls, want %d", len(result.Rolls), len(tt.request.Dice))
			}

			diceTotal := 0
			for i, roll := range result.Rolls {
				if len(roll.Results) != tt.request.Dice[i].Count {
					t.Errorf("Roll[%d] got %d results, want %d", i, len(roll.Results), tt.request.Dice[i].Count)
				}
				sum := 0
				for j, r := range roll.Results {
					if r < 1 || r > roll.Sides {
						t.Errorf("Roll[%d].Results[%d] = %d, out of range [1, %d]", i, j, r, roll.Sides)
					}
					sum += r
				}
				if roll.Total != sum {
					t.Errorf("Roll[%d].Total = %d, want %d", i, roll.Total, sum)
				}
				diceTotal += sum
			}
			if result.DiceTotal != diceTotal {
				t.Errorf("DiceTotal = %d, want %d", result.DiceTotal, diceTotal)
			}
			if result.Total != diceTotal+tt.request.Modifier {
				t.Errorf("Total = %d, want %d", result.Total, diceTotal+tt.request.Modifier)
			}
			if result.Seed != tt.request.Seed {
				t.Errorf("Seed = %d, want %d", result.Seed, tt.request.Seed)
			}
		})
	}
}

func TestRollDice_Determinism(t *testing.T) {
	request := Request{
		Dice: []Spec{{Sides: 10, Count: 2}, {Sides: 6, Count: 4}},
		Seed: 12345,
	}

	first, err := RollDice(request)
	if err != nil {
		t.Fatalf("RollDice() error = %v", err)
	}
	second, err := RollDice(request)
	if err != nil {
		t.Fatalf("RollDice() error = %v", err)
	}
	if first.Total != second.Total {
		t.Fatalf("totals differ: %d vs %d", first.Total, second.Total)
	}
	for i := range first.Rolls {
		for j := range first.Rolls[i].Results {
			if first.Rolls[i].Results[j] != second.Rolls[i].Results[j] {
				t.Errorf("Roll[%d].Results[%d] differs: %d vs %d", i, j, first.Rolls[i].Results[j], second.Rolls[i].Results[j])
			}
		}
	}
}

func TestRollWithRng(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	result, err := RollWithRng(rng, []Spec{{Sides: 6, Count: 2}})
	if err != nil {
		t.Fatalf("RollWithRng() error = %v", err)
	}
	if len(result.Rolls) != 1 || len(result.Rolls[0].Results) != 2 {
		t.Fatalf("RollWithRng() = %+v", result)
	}
}

func TestRollNotation(t *testing.T) {
	result, err := RollNotation("2d6+3", 7)
	if err != nil {
		t.Fatalf("RollNotation() error = %v", err)
	}
	want, err := RollDice(Request{Dice: []Spec{{Sides: 6, Count: 2}}, Modifier: 3, Seed: 7})
	if err != nil {
		t.Fatalf("RollDice() error = %v", err)
	}
	if result.Total != want.Total || result.Modifier != 3 {
		t.Fatalf("RollNotation() = %+v, want %+v", result, want)
	}

	if _, err := RollNotation("banana", 7); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("RollNotation(banana) error = %v, want ErrInvalidNotation", err)
	}
}
