// Package validate guards external values before they enter the economic
// model. Every predicate returns a boolean and never panics; callers skip
// inadmissible items rather than aborting.
package validate

import (
	"math"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/provider"
)

// Snapshot reports whether a raw snapshot carries the required scalar
// fields. Collection emptiness is not checked here; an empty snapshot is
// a NoCandidates condition, not an invalid source.
func Snapshot(snap provider.Snapshot) bool {
	if snap == nil {
		return false
	}
	currency, ok := snap.Currency()
	if !ok || !finiteNonNegative(currency) {
		return false
	}
	rate, ok := snap.Rate()
	if !ok || !finiteNonNegative(rate) {
		return false
	}
	return true
}

// Building reports whether a building-like record is admissible: non-empty
// name, non-negative owned count, non-negative next cost and a resolvable
// non-negative unit rate.
func Building(src provider.BuildingSource) bool {
	if src == nil || src.Name() == "" {
		return false
	}
	if src.Owned() < 0 {
		return false
	}
	cost := src.NextCost()
	if cost == nil || !finiteNonNegative(cost.Value()) {
		return false
	}
	rate := src.UnitRate()
	if rate == nil || !finiteNonNegative(rate.Value()) {
		return false
	}
	return true
}

// Upgrade reports whether an upgrade-like record is admissible: non-empty
// name and a resolvable non-negative cost. Description text is optional.
func Upgrade(src provider.UpgradeSource) bool {
	if src == nil || src.Name() == "" {
		return false
	}
	cost := src.Cost()
	if cost == nil || !finiteNonNegative(cost.Value()) {
		return false
	}
	return true
}

// PaybackTime reports whether a payback time is usable: finite and
// strictly positive
func PaybackTime(t float64) bool {
	return finite(t) && t > 0
}

// RateDelta reports whether a rate delta is usable: finite and strictly
// positive
func RateDelta(d float64) bool {
	return finite(d) && d > 0
}

// Affordable reports whether a cost can be paid from the current bank
func Affordable(cost, currency float64) bool {
	return cost <= currency
}

// Candidate reports whether a candidate is structurally sound: id and
// name present, known kind, positive cost, non-NaN payback
func Candidate(c models.Candidate) bool {
	if c.ID == "" || c.Name == "" {
		return false
	}
	if c.Kind != models.KindBuilding && c.Kind != models.KindUpgrade {
		return false
	}
	if !finite(c.Cost) || c.Cost <= 0 {
		return false
	}
	if math.IsNaN(c.PaybackTime) || c.PaybackTime < 0 {
		return false
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteNonNegative(v float64) bool {
	return finite(v) && v >= 0
}
