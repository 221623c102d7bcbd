package economy

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
)

// Heuristic rule names, in precedence order. Specific structured evidence
// beats general keyword evidence beats ignorance; the precedence is part
// of the behavior contract, not an implementation detail.
const (
	RuleEfficiency = "efficiency-multiplier"
	RulePercent    = "percentage-boost"
	RulePerClick   = "per-click-bonus"
	RuleSynergy    = "building-synergy"
	RuleClick      = "click-keyword"
	RuleUnknown    = "unknown-fallback"
)

var (
	// "<N>x as efficient", e.g. "Grandmas are 2x as efficient".
	efficiencyPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\s+as\s+efficient`)

	// "twice as efficient" is the game's phrasing for 2x.
	twicePattern = regexp.MustCompile(`twice\s+as\s+efficient`)

	// "<N>%", e.g. "increases CPS by 50%".
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

	// "+<N> <unit> per <click-word>", e.g. "+1 cookie per click".
	perClickPattern = regexp.MustCompile(`\+\s*(\d+(?:\.\d+)?)\s+\S+\s+per\s+(?:click|tap|press)`)
)

var clickKeywords = []string{"click", "cursor", "mouse", "tap"}

// estimateUpgradeDelta estimates the rate gained by an upgrade from its
// free-form effect text. It tests patterns in strict priority order,
// first match wins; the returned rule name identifies which heuristic
// fired. A matched rule that produces no positive estimate (a literal
// "0%", a multiplier on a zero-rate building) carries no usable evidence
// and degrades to the unknown fallback, so the delta is strictly
// positive whenever the global rate is.
func (m *Model) estimateUpgradeDelta(state *models.NormalizedState, text string) (float64, string) {
	delta, rule := m.rawEstimate(state, text)
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return state.Rate * m.assume.ConservativeBoost, RuleUnknown
	}
	return delta, rule
}

func (m *Model) rawEstimate(state *models.NormalizedState, text string) (float64, string) {
	lower := strings.ToLower(text)

	// 1. Explicit efficiency multiplier tied to a named building.
	if n, ok := parseEfficiency(lower); ok {
		if b := matchBuilding(state, lower); b != nil {
			return b.TotalRate * (n - 1), RuleEfficiency
		}
		// Referenced building not in this snapshot: fall through
		// rather than guess.
	}

	// 2. Percentage boost, scoped to a named building when one is
	// mentioned, otherwise applied to the global rate.
	if match := percentPattern.FindStringSubmatch(lower); match != nil {
		n, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			if b := matchBuilding(state, lower); b != nil {
				return b.TotalRate * (n / 100), RulePercent
			}
			return state.Rate * (n / 100), RulePercent
		}
	}

	// 3. Flat per-click bonus, converted via assumed click cadence.
	if match := perClickPattern.FindStringSubmatch(lower); match != nil {
		n, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return n * m.assume.ClicksPerSecond, RulePerClick
		}
	}

	// 4. Bare building reference with no parsed numbers.
	if b := matchBuilding(state, lower); b != nil {
		return b.TotalRate * m.assume.SynergyFactor, RuleSynergy
	}

	// 5. Click-related keywords with no parsed numbers.
	for _, kw := range clickKeywords {
		if strings.Contains(lower, kw) {
			return state.Rate * m.assume.ClickWeight, RuleClick
		}
	}

	// 6. Nothing recognized: conservative global boost so the upgrade
	// still ranks instead of disappearing.
	return state.Rate * m.assume.ConservativeBoost, RuleUnknown
}

func parseEfficiency(lower string) (float64, bool) {
	if match := efficiencyPattern.FindStringSubmatch(lower); match != nil {
		n, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return n, true
		}
	}
	if twicePattern.MatchString(lower) {
		return 2, true
	}
	return 0, false
}

// matchBuilding finds the building whose name appears in the text,
// preferring the longest name so "steel grandma" does not resolve to
// "grandma" when both exist.
func matchBuilding(state *models.NormalizedState, lower string) *models.Building {
	var best *models.Building
	bestLen := 0
	for i := range state.Buildings {
		name := strings.ToLower(state.Buildings[i].Name)
		if name == "" || !strings.Contains(lower, name) {
			continue
		}
		if len(name) > bestLen {
			best = &state.Buildings[i]
			bestLen = len(name)
		}
	}
	return best
}
