package economy

// Estimation constants. The upgrade heuristics are approximations over
// free-form game text, not derived from true game mechanics; these
// defaults are tunable, not correctness guarantees.
const (
	// AssumedClicksPerSecond converts per-click bonuses into a passive
	// rate equivalent for a steadily clicking player.
	AssumedClicksPerSecond = 5.0

	// SynergyFactor is the assumed boost when an upgrade references a
	// building without stating any numeric effect.
	SynergyFactor = 0.5

	// ClickWeightFactor is the assumed global boost for upgrades that
	// only mention clicking-related keywords.
	ClickWeightFactor = 0.1

	// ConservativeBoostFactor is the fallback estimate for upgrades
	// whose text matches nothing; keeps every upgrade rankable.
	ConservativeBoostFactor = 0.02

	// MinMeaningfulDelta is the smallest rate delta treated as a real
	// gain; anything below yields the non-finite payback sentinel.
	MinMeaningfulDelta = 1e-9
)

// Assumptions are the tunable estimation parameters. Zero values fall
// back to the package defaults.
type Assumptions struct {
	ClicksPerSecond   float64
	SynergyFactor     float64
	ClickWeight       float64
	ConservativeBoost float64
	MinDelta          float64
}

// DefaultAssumptions returns the documented default estimation parameters
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ClicksPerSecond:   AssumedClicksPerSecond,
		SynergyFactor:     SynergyFactor,
		ClickWeight:       ClickWeightFactor,
		ConservativeBoost: ConservativeBoostFactor,
		MinDelta:          MinMeaningfulDelta,
	}
}

func (a Assumptions) withDefaults() Assumptions {
	d := DefaultAssumptions()
	if a.ClicksPerSecond <= 0 {
		a.ClicksPerSecond = d.ClicksPerSecond
	}
	if a.SynergyFactor <= 0 {
		a.SynergyFactor = d.SynergyFactor
	}
	if a.ClickWeight <= 0 {
		a.ClickWeight = d.ClickWeight
	}
	if a.ConservativeBoost <= 0 {
		a.ConservativeBoost = d.ConservativeBoost
	}
	if a.MinDelta <= 0 {
		a.MinDelta = d.MinDelta
	}
	return a
}
