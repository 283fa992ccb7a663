package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/gmscreen/internal/core/check"
	"github.com/louisbranch/gmscreen/internal/core/dice"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// DicePageView is the dice roller page.
type DicePageView struct {
	Notation     string
	Seed         string
	Base         string
	Difficulty   string
	Difficulties []check.Difficulty
	Error        string
	Expression   string
	Roll         *dice.Result
	Check        *dice.CheckResult
}

// DicePage renders the notation and skill check forms plus any result.
func DicePage(view DicePageView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="dice"><h1>`)
		h.text(T(loc, "dice.title"))
		h.raw(`</h1>`)
		inlineError(h, view.Error)

		h.raw(`<form class="dice-form" method="get"`)
		h.attr("action", routepath.DicePrefix)
		h.raw(`><label for="dice-notation">`)
		h.text(T(loc, "dice.notation"))
		h.raw(`</label><input id="dice-notation" name="notation" autocomplete="off"`)
		h.attr("value", view.Notation)
		h.attr("placeholder", T(loc, "dice.notation_hint"))
		h.raw(`>`)
		seedInput(h, "dice-seed", view.Seed, loc)
		h.raw(`<button type="submit">`)
		h.text(T(loc, "dice.roll"))
		h.raw(`</button></form>`)

		h.raw(`<form class="dice-form" method="get"`)
		h.attr("action", routepath.DicePrefix)
		h.raw(`><label for="dice-check">`)
		h.text(T(loc, "dice.check"))
		h.raw(`</label><input id="dice-check" name="check" inputmode="numeric"`)
		h.attr("value", view.Base)
		h.raw(`><label for="dice-dv">`)
		h.text(T(loc, "dice.difficulty"))
		h.raw(`</label><select id="dice-dv" name="dv"><option value="">`)
		h.text(T(loc, "dice.difficulty_none"))
		h.raw(`</option>`)
		for _, dv := range view.Difficulties {
			h.raw(`<option`)
			h.attr("value", dv.Key)
			h.flag("selected", strings.EqualFold(view.Difficulty, dv.Key))
			h.raw(`>`)
			h.text(dv.Label + " (" + itoa(dv.Value) + ")")
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		seedInput(h, "dice-check-seed", view.Seed, loc)
		h.raw(`<button type="submit">`)
		h.text(T(loc, "dice.check_roll"))
		h.raw(`</button></form>`)

		if view.Roll != nil {
			rollResult(h, view.Expression, *view.Roll, loc)
		}
		if view.Check != nil {
			checkResult(h, *view.Check, loc)
		}
		h.raw(`</section>`)
	})
}

func seedInput(h *html, id string, value string, loc Localizer) {
	h.raw(`<label`)
	h.attr("for", id)
	h.raw(`>`)
	h.text(T(loc, "dice.seed"))
	h.raw(`</label><input name="seed" inputmode="numeric"`)
	h.attr("id", id)
	h.attr("value", value)
	h.raw(`>`)
}

func rollResult(h *html, expression string, result dice.Result, loc Localizer) {
	h.raw(`<output class="dice-result" data-roll><h2>`)
	h.text(expression)
	h.raw(`</h2><dl><dt>`)
	h.text(T(loc, "dice.rolls"))
	h.raw(`</dt><dd>`)
	for i, roll := range result.Rolls {
		if i > 0 {
			h.raw(` + `)
		}
		h.raw(`<span class="dice-roll">`)
		h.text("d" + itoa(roll.Sides) + " [" + joinInts(roll.Results) + "]")
		h.raw(`</span>`)
	}
	h.raw(`</dd>`)
	if result.Modifier != 0 {
		h.raw(`<dt>`)
		h.text(T(loc, "dice.modifier"))
		h.raw(`</dt><dd>`)
		h.text(signed(result.Modifier))
		h.raw(`</dd>`)
	}
	h.raw(`<dt>`)
	h.text(T(loc, "dice.total"))
	h.raw(`</dt><dd class="dice-total">`)
	h.text(itoa(result.Total))
	h.raw(`</dd></dl><p class="dice-seed">`)
	h.text(T(loc, "dice.seed_used", result.Seed))
	h.raw(`</p></output>`)
}

func checkResult(h *html, result dice.CheckResult, loc Localizer) {
	h.raw(`<output class="dice-result" data-roll><h2>`)
	h.text(itoa(result.Base) + " + 1d10")
	h.raw(`</h2><dl><dt>`)
	h.text(T(loc, "dice.rolls"))
	h.raw(`</dt><dd>`)
	h.text(T(loc, "dice.natural", result.Natural))
	if result.Extra != 0 {
		h.text(" / " + itoa(result.Extra))
	}
	h.raw(`</dd><dt>`)
	h.text(T(loc, "dice.total"))
	h.raw(`</dt><dd class="dice-total">`)
	h.text(itoa(result.Total))
	h.raw(`</dd></dl>`)
	switch result.Critical {
	case dice.CriticalSuccess:
		h.raw(`<p class="dice-critical dice-critical-success">`)
		h.text(T(loc, "dice.critical_success"))
		h.raw(`</p>`)
	case dice.CriticalFailure:
		h.raw(`<p class="dice-critical dice-critical-failure">`)
		h.text(T(loc, "dice.critical_failure"))
		h.raw(`</p>`)
	}
	if outcome := result.Outcome; outcome != nil {
		h.raw(`<p class="dice-outcome">`)
		if outcome.Success {
			h.text(T(loc, "dice.success", outcome.Difficulty, outcome.Margin))
		} else {
			h.text(T(loc, "dice.failure", outcome.Difficulty, outcome.Margin))
		}
		h.raw(`</p>`)
	}
	h.raw(`<p class="dice-seed">`)
	h.text(T(loc, "dice.seed_used", result.Seed))
	h.raw(`</p></output>`)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = itoa(value)
	}
	return strings.Join(parts, ", ")
}

func signed(value int) string {
	if value > 0 {
		return "+" + itoa(value)
	}
	return itoa(value)
}
