// Package economy converts normalized game state into purchase candidates
// with payback-time estimates. All functions are pure: no I/O, no clock,
// no mutation of the input state.
package economy

import (
	"math"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
)

// Model computes candidates from normalized state
type Model struct {
	assume Assumptions
}

// NewModel creates a model; zero-value Assumptions fields use defaults
func NewModel(assume Assumptions) *Model {
	return &Model{assume: assume.withDefaults()}
}

// Candidates derives one candidate per admissible purchase in the state.
// Individual items that cannot yield a valid candidate are dropped; the
// function itself is total and never panics.
func (m *Model) Candidates(state *models.NormalizedState) []models.Candidate {
	if state == nil {
		return nil
	}
	out := make([]models.Candidate, 0, len(state.Buildings)+len(state.Upgrades))
	for _, b := range state.Buildings {
		if c, ok := m.BuildingCandidate(b); ok {
			out = append(out, c)
		}
	}
	for _, u := range state.Upgrades {
		if c, ok := m.UpgradeCandidate(state, u); ok {
			out = append(out, c)
		}
	}
	return out
}

// BuildingCandidate estimates the return of buying one more unit of a
// building. The effective per-unit rate is reconstructed from the
// observed aggregate rate, so active multipliers are accounted for
// without enumerating which upgrades produced them.
func (m *Model) BuildingCandidate(b models.Building) (models.Candidate, bool) {
	if b.AcquisitionCost <= 0 || b.UnitRate < 0 {
		return models.Candidate{}, false
	}

	delta := b.UnitRate * buildingMultiplier(b)

	return models.Candidate{
		ID:          b.ID,
		Kind:        models.KindBuilding,
		Name:        b.Name,
		Cost:        b.AcquisitionCost,
		RateDelta:   delta,
		PaybackTime: m.payback(b.AcquisitionCost, delta),
		Owned:       b.Owned,
	}, true
}

// UpgradeCandidate estimates the return of an upgrade from its effect
// text. The estimate is heuristic and always strictly positive: upgrades
// with unrecognized text get a conservative global boost rather than
// being dropped.
func (m *Model) UpgradeCandidate(state *models.NormalizedState, u models.Upgrade) (models.Candidate, bool) {
	if u.AcquisitionCost <= 0 {
		return models.Candidate{}, false
	}
	if state == nil {
		state = &models.NormalizedState{}
	}

	delta, _ := m.estimateUpgradeDelta(state, u.Description)

	return models.Candidate{
		ID:          u.ID,
		Kind:        models.KindUpgrade,
		Name:        u.Name,
		Cost:        u.AcquisitionCost,
		RateDelta:   delta,
		PaybackTime: m.payback(u.AcquisitionCost, delta),
	}, true
}

// buildingMultiplier reconstructs the net effect of all active modifiers
// on a building type from observed totals. Forced to 1.0 for the first
// purchase and whenever the reconstruction would be degenerate.
func buildingMultiplier(b models.Building) float64 {
	if b.Owned <= 0 || b.TotalRate <= 0 || b.UnitRate <= 0 {
		return 1.0
	}
	mult := b.TotalRate / (b.UnitRate * float64(b.Owned))
	if math.IsNaN(mult) || math.IsInf(mult, 0) || mult <= 0 {
		return 1.0
	}
	return mult
}

// payback returns cost / delta guarded against NaN and negatives; deltas
// below the meaningful threshold yield the +Inf sentinel so downstream
// ranking can exclude them without treating them as errors.
func (m *Model) payback(cost, delta float64) float64 {
	if delta < m.assume.MinDelta {
		return math.Inf(1)
	}
	t := cost / delta
	if math.IsNaN(t) || math.IsInf(t, -1) || t < 0 {
		return math.Inf(1)
	}
	return t
}
