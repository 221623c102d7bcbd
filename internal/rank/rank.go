// Package rank turns unordered purchase candidates into a recommendation
// order. Policies are pluggable: anything implementing Policy qualifies,
// and Rank must be total over any candidate slice (including empty) and
// must not mutate its input.
package rank

import (
	"sort"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/validate"
)

// DefaultPaybackCeiling is the maximum payback time (seconds) the greedy
// policy considers reasonable; one hour at the rate's time unit.
const DefaultPaybackCeiling = 3600.0

// Policy names addressable from the CLI and config.
const (
	GreedyName  = "greedy"
	RelaxedName = "relaxed"
)

// Policy orders candidates by desirability
type Policy interface {
	Name() string
	Rank(candidates []models.Candidate) []models.Candidate
}

// greedy is the payback-sorted policy; a non-positive ceiling disables
// the time-ceiling filter, which is exactly the relaxed variant.
type greedy struct {
	name    string
	ceiling float64
}

// NewGreedy returns the default policy: drop non-finite and over-ceiling
// payback times, then sort ascending by payback time with ties broken by
// the larger rate delta
func NewGreedy(ceiling float64) Policy {
	if ceiling <= 0 {
		ceiling = DefaultPaybackCeiling
	}
	return &greedy{name: GreedyName, ceiling: ceiling}
}

// NewRelaxed returns the greedy policy without the ceiling filter; it
// surfaces every finite-payback option regardless of horizon
func NewRelaxed() Policy {
	return &greedy{name: RelaxedName}
}

// ByName resolves a policy name to an instance; unknown names fall back
// to the default greedy policy
func ByName(name string) Policy {
	switch name {
	case RelaxedName:
		return NewRelaxed()
	default:
		return NewGreedy(0)
	}
}

func (g *greedy) Name() string {
	return g.name
}

func (g *greedy) Rank(candidates []models.Candidate) []models.Candidate {
	kept := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.FinitePayback() {
			continue
		}
		if g.ceiling > 0 && c.PaybackTime > g.ceiling {
			continue
		}
		// Structural check; unreachable given the model's guarantees
		// but kept so a policy never emits a malformed candidate.
		if !validate.Candidate(c) {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].PaybackTime != kept[j].PaybackTime {
			return kept[i].PaybackTime < kept[j].PaybackTime
		}
		if kept[i].RateDelta != kept[j].RateDelta {
			return kept[i].RateDelta > kept[j].RateDelta
		}
		return kept[i].ID < kept[j].ID
	})

	return kept
}
