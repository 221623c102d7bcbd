// Package provider defines the read-only capability the advisor consumes
// to observe live game state. The live game exposes some values as stored
// numbers and others as zero-argument computed accessors; Scalar covers
// both so the normalizer can resolve everything to plain numbers once.
package provider

// Scalar is a numeric value that may be stored or computed on demand
type Scalar interface {
	Value() float64
}

// Stored is a Scalar backed by a plain number
type Stored float64

// Value returns the stored number
func (s Stored) Value() float64 {
	return float64(s)
}

// Computed is a Scalar backed by a zero-argument accessor, evaluated
// each time Value is called
type Computed func() float64

// Value evaluates the accessor
func (c Computed) Value() float64 {
	if c == nil {
		return 0
	}
	return c()
}

// BuildingSource is a building-like record exposed by the game
type BuildingSource interface {
	Name() string
	Owned() int

	// NextCost is the price of the next unit.
	NextCost() Scalar

	// UnitRate is the base per-unit rate before multipliers.
	UnitRate() Scalar

	// TotalRate is the observed aggregate rate of all owned units, or
	// nil when the game does not expose one.
	TotalRate() Scalar
}

// UpgradeSource is a purchasable-upgrade-like record exposed by the game.
// Only upgrades already available for purchase reach the advisor.
type UpgradeSource interface {
	Name() string
	Cost() Scalar

	// Description returns the effect text shown to the player; empty
	// when the game exposes none.
	Description() string
}

// Snapshot is the inbound state-provider capability. Implementations
// must be read-only views: the advisor never mutates game state.
type Snapshot interface {
	// Currency is the currently spendable cookie bank.
	Currency() (float64, bool)

	// Rate is the current passive cookies per second.
	Rate() (float64, bool)

	Buildings() []BuildingSource
	Upgrades() []UpgradeSource
}
