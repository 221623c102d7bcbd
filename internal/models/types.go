package models

import "math"

// CandidateKind identifies the purchase type a candidate was derived from
type CandidateKind string

const (
	KindBuilding CandidateKind = "building"
	KindUpgrade  CandidateKind = "upgrade"
)

// AllCandidateKinds returns all candidate kinds in deterministic order
func AllCandidateKinds() []CandidateKind {
	return []CandidateKind{KindBuilding, KindUpgrade}
}

// Building is a normalized building record extracted from a snapshot.
// All rates are in cookies per second; costs are in cookies.
type Building struct {
	ID    string
	Name  string
	Owned int

	// AcquisitionCost is the price of the next unit.
	AcquisitionCost float64

	// UnitRate is the base rate of a single unit before any multipliers.
	UnitRate float64

	// TotalRate is the observed aggregate rate of all owned units,
	// inclusive of active multipliers. Not meaningful when Owned == 0.
	TotalRate float64
}

// Upgrade is a normalized purchasable upgrade extracted from a snapshot
type Upgrade struct {
	ID              string
	Name            string
	AcquisitionCost float64

	// Description is free-form game text; the only evidence available
	// for estimating the upgrade's effect.
	Description string
}

// NormalizedState is the uniform view of a snapshot consumed by the
// economic model. It is rebuilt from scratch on every analysis call.
type NormalizedState struct {
	Currency  float64 // current spendable cookies
	Rate      float64 // current passive cookies per second
	Buildings []Building
	Upgrades  []Upgrade
}

// Empty reports whether the state has no purchasable items at all
func (s *NormalizedState) Empty() bool {
	return len(s.Buildings) == 0 && len(s.Upgrades) == 0
}

// FindBuildingByName returns the building with an exact name match, or nil
func (s *NormalizedState) FindBuildingByName(name string) *Building {
	for i := range s.Buildings {
		if s.Buildings[i].Name == name {
			return &s.Buildings[i]
		}
	}
	return nil
}

// Candidate is a single purchasable option annotated with its estimated
// cost, rate gain and payback time. Candidates are ephemeral: derived
// fresh per analysis call, never persisted.
type Candidate struct {
	ID   string
	Kind CandidateKind
	Name string

	Cost      float64
	RateDelta float64

	// PaybackTime is Cost / RateDelta in seconds, or +Inf when the
	// rate delta is below the minimum meaningful threshold.
	PaybackTime float64

	// Owned is the current unit count; only set for KindBuilding.
	Owned int
}

// FinitePayback reports whether the candidate has a usable payback time
func (c Candidate) FinitePayback() bool {
	return !math.IsInf(c.PaybackTime, 0) && !math.IsNaN(c.PaybackTime)
}

// Recommendation is the ranked result of one analysis call
type Recommendation struct {
	// Top is the best-ranked candidate.
	Top Candidate

	// Alternatives are the next-ranked candidates, bounded by the
	// advisor's alternatives limit.
	Alternatives []Candidate

	// State is the normalized snapshot the ranking was computed from,
	// kept for affordability context in presentation.
	State *NormalizedState

	// Policy is the name of the ranking policy that produced the order.
	Policy string
}
