// Package providertest offers configurable fake snapshots for tests.
package providertest

import "github.com/tomyanzhiyuan/cookieclickervision/internal/provider"

// Snapshot is a configurable fake provider.Snapshot
type Snapshot struct {
	Bank         float64
	HasBank      bool
	CPS          float64
	HasCPS       bool
	BuildingList []provider.BuildingSource
	UpgradeList  []provider.UpgradeSource
}

// NewSnapshot returns a fake with both scalars present
func NewSnapshot(bank, cps float64) *Snapshot {
	return &Snapshot{Bank: bank, HasBank: true, CPS: cps, HasCPS: true}
}

func (s *Snapshot) Currency() (float64, bool)            { return s.Bank, s.HasBank }
func (s *Snapshot) Rate() (float64, bool)                { return s.CPS, s.HasCPS }
func (s *Snapshot) Buildings() []provider.BuildingSource { return s.BuildingList }
func (s *Snapshot) Upgrades() []provider.UpgradeSource   { return s.UpgradeList }

// AddBuilding appends a building source and returns the snapshot for
// chaining
func (s *Snapshot) AddBuilding(b *Building) *Snapshot {
	s.BuildingList = append(s.BuildingList, b)
	return s
}

// AddUpgrade appends an upgrade source and returns the snapshot for
// chaining
func (s *Snapshot) AddUpgrade(u *Upgrade) *Snapshot {
	s.UpgradeList = append(s.UpgradeList, u)
	return s
}

// Building is a configurable fake provider.BuildingSource
type Building struct {
	BuildingName string
	OwnedCount   int
	CostScalar   provider.Scalar
	RateScalar   provider.Scalar
	TotalScalar  provider.Scalar
}

func (b *Building) Name() string               { return b.BuildingName }
func (b *Building) Owned() int                 { return b.OwnedCount }
func (b *Building) NextCost() provider.Scalar  { return b.CostScalar }
func (b *Building) UnitRate() provider.Scalar  { return b.RateScalar }
func (b *Building) TotalRate() provider.Scalar { return b.TotalScalar }

// NewBuilding returns a valid stored-value building source
func NewBuilding(name string, owned int, cost, unitRate, totalRate float64) *Building {
	return &Building{
		BuildingName: name,
		OwnedCount:   owned,
		CostScalar:   provider.Stored(cost),
		RateScalar:   provider.Stored(unitRate),
		TotalScalar:  provider.Stored(totalRate),
	}
}

// Upgrade is a configurable fake provider.UpgradeSource
type Upgrade struct {
	UpgradeName string
	CostScalar  provider.Scalar
	Text        string
}

func (u *Upgrade) Name() string          { return u.UpgradeName }
func (u *Upgrade) Cost() provider.Scalar { return u.CostScalar }
func (u *Upgrade) Description() string   { return u.Text }

// NewUpgrade returns a valid stored-cost upgrade source
func NewUpgrade(name string, cost float64, desc string) *Upgrade {
	return &Upgrade{UpgradeName: name, CostScalar: provider.Stored(cost), Text: desc}
}
