package dice

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/gmscreen/internal/core/check"
	coredice "github.com/louisbranch/gmscreen/internal/core/dice"
	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
	platformotel "github.com/louisbranch/gmscreen/internal/platform/otel"
)

var tracer = platformotel.Tracer("services/web/dice")

type service struct {
	roller coredice.Roller
}

func newService() service {
	return service{roller: coredice.NewRoller()}
}

// parseSeed reads an optional seed. Blank text yields nil.
func parseSeed(text string) (*int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.dice_seed", "seed must be an integer")
	}
	return &seed, nil
}

// rollError maps roller failures onto app errors keyed by inputKey.
func rollError(err error, inputKey string) error {
	if coredice.IsInputError(err) {
		return apperrors.Wrap(apperrors.KindInvalidInput, inputKey, err)
	}
	return apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", err)
}

// roll parses notation and rolls it.
func (s service) roll(ctx context.Context, notation string, requested *int64) (coredice.NotationRoll, error) {
	_, span := tracer.Start(ctx, "dice.roll")
	defer span.End()

	roll, err := s.roller.Roll(notation, requested)
	if err != nil {
		return coredice.NotationRoll{}, rollError(err, "error.dice_notation")
	}
	span.SetAttributes(attribute.String("dice.notation", roll.Expression), attribute.Int("dice.total", roll.Total))
	return roll, nil
}

// skillCheck rolls base + 1d10, optionally against a named difficulty.
func (s service) skillCheck(ctx context.Context, baseText string, difficultyKey string, requested *int64) (coredice.CheckResult, error) {
	_, span := tracer.Start(ctx, "dice.check")
	defer span.End()

	base, err := strconv.Atoi(strings.TrimSpace(baseText))
	if err != nil {
		return coredice.CheckResult{}, apperrors.EK(apperrors.KindInvalidInput, "error.dice_check", "check base must be an integer")
	}
	dv := 0
	if key := strings.TrimSpace(difficultyKey); key != "" {
		difficulty, err := check.LookupDifficulty(key)
		if err != nil {
			return coredice.CheckResult{}, apperrors.Wrap(apperrors.KindInvalidInput, "error.dice_check", err)
		}
		dv = difficulty.Value
	}
	result, err := s.roller.Check(base, dv, requested)
	if err != nil {
		return coredice.CheckResult{}, rollError(err, "error.dice_check")
	}
	span.SetAttributes(attribute.Int("dice.total", result.Total), attribute.String("dice.critical", string(result.Critical)))
	return result, nil
}
