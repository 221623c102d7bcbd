package economy

import (
	"math"
	"testing"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
)

// FuzzEstimateUpgradeDelta fuzzes the text heuristics with arbitrary
// descriptions
func FuzzEstimateUpgradeDelta(f *testing.F) {
	// Seed corpus
	f.Add("Grandmas are 2x as efficient")
	f.Add("increases CPS by 50%")
	f.Add("+1 cookie per click")
	f.Add("Grandmas like cursors")
	f.Add("???")
	f.Add("")
	f.Add("999999999x as efficient 0% +0 per click")
	f.Add("%%%x")

	m := NewModel(Assumptions{})
	state := testState()

	f.Fuzz(func(t *testing.T, text string) {
		delta, rule := m.estimateUpgradeDelta(state, text)

		// Property: the estimate is always finite and strictly positive
		// (the unknown fallback guarantees this with a nonzero rate).
		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			t.Errorf("delta %v is not finite for %q (rule %s)", delta, text, rule)
		}
		if delta <= 0 {
			t.Errorf("delta %v is not strictly positive for %q (rule %s)", delta, text, rule)
		}
		if rule == "" {
			t.Errorf("no rule reported for %q", text)
		}

		// Property: payback never degrades to NaN or a negative number.
		payback := m.payback(100, delta)
		if math.IsNaN(payback) || payback < 0 {
			t.Errorf("payback %v invalid for %q", payback, text)
		}
	})
}

// FuzzBuildingCandidate fuzzes building inputs; candidates must never
// carry NaN or negative paybacks regardless of input shape
func FuzzBuildingCandidate(f *testing.F) {
	f.Add(0, 15.0, 0.1, 0.0)
	f.Add(5, 1000.0, 1.0, 6.0)
	f.Add(100, 1e18, 1e-9, 1e12)
	f.Add(-1, -1.0, -1.0, -1.0)

	m := NewModel(Assumptions{})

	f.Fuzz(func(t *testing.T, owned int, cost, unitRate, totalRate float64) {
		c, ok := m.BuildingCandidate(models.Building{
			ID: "fuzz", Name: "Fuzz", Owned: owned,
			AcquisitionCost: cost, UnitRate: unitRate, TotalRate: totalRate,
		})
		if !ok {
			return
		}
		if math.IsNaN(c.RateDelta) {
			t.Errorf("RateDelta is NaN for owned=%d cost=%v unit=%v total=%v", owned, cost, unitRate, totalRate)
		}
		if c.RateDelta < 0 {
			t.Errorf("RateDelta %v negative for accepted building", c.RateDelta)
		}
		if math.IsNaN(c.PaybackTime) || c.PaybackTime < 0 {
			t.Errorf("PaybackTime %v invalid for accepted building", c.PaybackTime)
		}
	})
}
