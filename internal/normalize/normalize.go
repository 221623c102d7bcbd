// Package normalize converts a raw game snapshot into the uniform state
// consumed by the economic model. Extraction is defensive: items failing
// validation are logged and skipped, never fatal; only a snapshot missing
// its required scalars aborts the whole extraction.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/provider"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/validate"
)

// ErrInvalidSource indicates the snapshot lacks a required scalar field
// (currency or rate) and no partial result can be produced
var ErrInvalidSource = errors.New("snapshot missing required currency or rate field")

// Normalizer extracts NormalizedState from raw snapshots
type Normalizer struct {
	log *zap.Logger
}

// New creates a Normalizer; a nil logger disables skip warnings
func New(log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{log: log}
}

// Normalize reads the snapshot once and produces a fresh NormalizedState.
// The source is never mutated; Scalar accessors are resolved to plain
// numbers here so the rest of the pipeline only sees values.
func (n *Normalizer) Normalize(snap provider.Snapshot) (*models.NormalizedState, error) {
	if !validate.Snapshot(snap) {
		return nil, ErrInvalidSource
	}

	currency, _ := snap.Currency()
	rate, _ := snap.Rate()

	state := &models.NormalizedState{
		Currency: currency,
		Rate:     rate,
	}

	seen := make(map[string]int)
	for i, src := range snap.Buildings() {
		if !validate.Building(src) {
			n.log.Warn("skipping inadmissible building",
				zap.Int("index", i),
				zap.String("name", safeName(src)))
			continue
		}
		b := models.Building{
			ID:              buildingID(src.Name(), seen),
			Name:            src.Name(),
			Owned:           src.Owned(),
			AcquisitionCost: src.NextCost().Value(),
			UnitRate:        src.UnitRate().Value(),
		}
		if total := src.TotalRate(); total != nil {
			b.TotalRate = total.Value()
		}
		state.Buildings = append(state.Buildings, b)
	}

	for i, src := range snap.Upgrades() {
		if !validate.Upgrade(src) {
			n.log.Warn("skipping inadmissible upgrade",
				zap.Int("index", i),
				zap.String("name", safeName(src)))
			continue
		}
		state.Upgrades = append(state.Upgrades, models.Upgrade{
			ID:              fmt.Sprintf("upgrade-%d", i),
			Name:            src.Name(),
			AcquisitionCost: src.Cost().Value(),
			Description:     src.Description(),
		})
	}

	return state, nil
}

// buildingID derives a stable key from the building name, suffixing
// duplicates so ids stay unique within one snapshot
func buildingID(name string, seen map[string]int) string {
	id := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	seen[id]++
	if count := seen[id]; count > 1 {
		return fmt.Sprintf("%s-%d", id, count)
	}
	return id
}

type named interface{ Name() string }

func safeName(src named) string {
	if src == nil {
		return ""
	}
	return src.Name()
}
