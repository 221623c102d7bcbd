// Package loader reads game-state snapshot files and exposes them through
// the provider capability. Snapshots are JSON dumps of the live game;
// prices may be literal numbers or growth formulas evaluated on demand,
// which exercises both Scalar shapes the provider contract allows.
package loader

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/provider"
)

// CostFormulaJSON is a geometric price curve: base * growth^owned
type CostFormulaJSON struct {
	Base   float64 `json:"base"`
	Growth float64 `json:"growth"`
}

// BuildingJSON is the snapshot-file shape of one building
type BuildingJSON struct {
	Name        string           `json:"name"`
	Owned       int              `json:"owned"`
	NextCost    *float64         `json:"nextCost,omitempty"`
	CostFormula *CostFormulaJSON `json:"costFormula,omitempty"`
	BaseCps     float64          `json:"baseCps"`
	TotalCps    *float64         `json:"totalCps,omitempty"`
}

// UpgradeJSON is the snapshot-file shape of one upgrade
type UpgradeJSON struct {
	Name        string           `json:"name"`
	Cost        *float64         `json:"cost,omitempty"`
	CostFormula *CostFormulaJSON `json:"costFormula,omitempty"`
	Description string           `json:"description,omitempty"`
	Tooltip     string           `json:"tooltip,omitempty"`
	Available   *bool            `json:"available,omitempty"`
}

// SnapshotJSON is the on-disk snapshot format
type SnapshotJSON struct {
	Bank             *float64       `json:"bank,omitempty"`
	CookiesPerSecond *float64       `json:"cookiesPerSecond,omitempty"`
	Buildings        []BuildingJSON `json:"buildings"`
	Upgrades         []UpgradeJSON  `json:"upgrades"`
}

// LoadSnapshot reads and parses a snapshot file
func LoadSnapshot(path string) (provider.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot parses snapshot JSON into a provider.Snapshot
func ParseSnapshot(data []byte) (provider.Snapshot, error) {
	var raw SnapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &fileSnapshot{raw: raw}, nil
}

// fileSnapshot adapts the JSON shape to the provider capability
type fileSnapshot struct {
	raw SnapshotJSON
}

func (s *fileSnapshot) Currency() (float64, bool) {
	if s.raw.Bank == nil {
		return 0, false
	}
	return *s.raw.Bank, true
}

func (s *fileSnapshot) Rate() (float64, bool) {
	if s.raw.CookiesPerSecond == nil {
		return 0, false
	}
	return *s.raw.CookiesPerSecond, true
}

func (s *fileSnapshot) Buildings() []provider.BuildingSource {
	out := make([]provider.BuildingSource, len(s.raw.Buildings))
	for i := range s.raw.Buildings {
		out[i] = &fileBuilding{raw: s.raw.Buildings[i]}
	}
	return out
}

func (s *fileSnapshot) Upgrades() []provider.UpgradeSource {
	out := make([]provider.UpgradeSource, 0, len(s.raw.Upgrades))
	for i := range s.raw.Upgrades {
		// Snapshots may carry locked upgrades; only available ones
		// reach the advisor. Missing flag means available.
		if s.raw.Upgrades[i].Available != nil && !*s.raw.Upgrades[i].Available {
			continue
		}
		out = append(out, &fileUpgrade{raw: s.raw.Upgrades[i]})
	}
	return out
}

type fileBuilding struct {
	raw BuildingJSON
}

func (b *fileBuilding) Name() string { return b.raw.Name }
func (b *fileBuilding) Owned() int   { return b.raw.Owned }

func (b *fileBuilding) NextCost() provider.Scalar {
	return costScalar(b.raw.NextCost, b.raw.CostFormula, b.raw.Owned)
}

func (b *fileBuilding) UnitRate() provider.Scalar {
	return provider.Stored(b.raw.BaseCps)
}

func (b *fileBuilding) TotalRate() provider.Scalar {
	if b.raw.TotalCps == nil {
		return nil
	}
	return provider.Stored(*b.raw.TotalCps)
}

type fileUpgrade struct {
	raw UpgradeJSON
}

func (u *fileUpgrade) Name() string { return u.raw.Name }

func (u *fileUpgrade) Cost() provider.Scalar {
	return costScalar(u.raw.Cost, u.raw.CostFormula, 0)
}

// Description prefers the detailed tooltip text over the short label
func (u *fileUpgrade) Description() string {
	if u.raw.Tooltip != "" {
		return u.raw.Tooltip
	}
	return u.raw.Description
}

// costScalar resolves a price field: a literal wins, a formula becomes a
// computed accessor, neither means the record fails validation later
func costScalar(literal *float64, formula *CostFormulaJSON, owned int) provider.Scalar {
	if literal != nil {
		return provider.Stored(*literal)
	}
	if formula != nil {
		f := *formula
		n := owned
		return provider.Computed(func() float64 {
			return f.Base * math.Pow(f.Growth, float64(n))
		})
	}
	return nil
}
