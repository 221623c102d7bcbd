// Package advisor orchestrates the analysis pipeline: normalize the
// snapshot, derive candidates, rank them under the active policy and
// return a recommendation or a typed failure.
package advisor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/economy"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/normalize"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/provider"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/rank"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/validate"
)

// FailureKind classifies why an analysis call produced no recommendation
type FailureKind string

const (
	// InvalidSource: the snapshot is missing a required field; no
	// partial result is possible.
	InvalidSource FailureKind = "invalid-source"

	// NoCandidates: the snapshot normalized cleanly but yielded no
	// rankable purchase under the active policy.
	NoCandidates FailureKind = "no-candidates"

	// PolicyFailure: the active policy misbehaved and the greedy
	// fallback also failed; programming-error class.
	PolicyFailure FailureKind = "policy-failure"
)

// Failure is a typed analysis failure; callers branch on Kind
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
	return string(f.Kind)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// FailureOf extracts the typed failure from an analysis error, if any
func FailureOf(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// DefaultAlternatives is how many runner-up candidates a recommendation
// carries alongside the top pick.
const DefaultAlternatives = 5

// Options configures an Advisor; zero values use defaults
type Options struct {
	Assumptions  economy.Assumptions
	Policy       rank.Policy
	Alternatives int
	Logger       *zap.Logger
}

// Advisor holds the only cross-call state in the system: the active
// ranking policy and a last-result cache kept purely for display.
// Invocation is single-threaded by design.
type Advisor struct {
	log          *zap.Logger
	normalizer   *normalize.Normalizer
	model        *economy.Model
	policy       rank.Policy
	alternatives int
	lastResult   *models.Recommendation
}

// New creates an Advisor from options
func New(opts Options) *Advisor {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	policy := opts.Policy
	if policy == nil {
		policy = rank.NewGreedy(0)
	}
	alternatives := opts.Alternatives
	if alternatives <= 0 {
		alternatives = DefaultAlternatives
	}
	return &Advisor{
		log:          log,
		normalizer:   normalize.New(log),
		model:        economy.NewModel(opts.Assumptions),
		policy:       policy,
		alternatives: alternatives,
	}
}

// SetPolicy swaps the active ranking policy; nil restores the default
func (a *Advisor) SetPolicy(p rank.Policy) {
	if p == nil {
		p = rank.NewGreedy(0)
	}
	a.policy = p
}

// PolicyName returns the name of the active ranking policy
func (a *Advisor) PolicyName() string {
	return a.policy.Name()
}

// LastResult returns the most recent recommendation, for display only;
// it never feeds back into computation
func (a *Advisor) LastResult() *models.Recommendation {
	return a.lastResult
}

// Analyze runs the full pipeline over one snapshot. Failures are typed:
// InvalidSource when the snapshot is unusable, NoCandidates when nothing
// rankable exists, PolicyFailure when both the active policy and the
// greedy fallback misbehave.
func (a *Advisor) Analyze(snap provider.Snapshot) (*models.Recommendation, error) {
	state, err := a.normalizer.Normalize(snap)
	if err != nil {
		return nil, &Failure{Kind: InvalidSource, Err: err}
	}

	candidates := a.model.Candidates(state)
	if len(candidates) == 0 {
		return nil, &Failure{Kind: NoCandidates, Err: errors.New("snapshot has no admissible purchases")}
	}

	ranked, err := a.rankSafely(candidates)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, &Failure{
			Kind: NoCandidates,
			Err:  fmt.Errorf("policy %q filtered out all %d candidates", a.policy.Name(), len(candidates)),
		}
	}

	rec := &models.Recommendation{
		Top:    ranked[0],
		State:  state,
		Policy: a.policy.Name(),
	}
	if rest := ranked[1:]; len(rest) > 0 {
		if len(rest) > a.alternatives {
			rest = rest[:a.alternatives]
		}
		rec.Alternatives = append(rec.Alternatives, rest...)
	}

	a.lastResult = rec
	return rec, nil
}

// ListCandidates returns the unranked candidate set for one snapshot,
// for inspection and debugging
func (a *Advisor) ListCandidates(snap provider.Snapshot) ([]models.Candidate, error) {
	state, err := a.normalizer.Normalize(snap)
	if err != nil {
		return nil, &Failure{Kind: InvalidSource, Err: err}
	}
	return a.model.Candidates(state), nil
}

// rankSafely runs the active policy over a copy of the candidates. A
// panicking or malformed policy is logged and retried once with the
// greedy policy; this fallback is part of the policy contract.
func (a *Advisor) rankSafely(candidates []models.Candidate) ([]models.Candidate, error) {
	ranked, err := runPolicy(a.policy, candidates)
	if err == nil {
		return ranked, nil
	}

	a.log.Warn("ranking policy failed, falling back to greedy",
		zap.String("policy", a.policy.Name()),
		zap.Error(err))

	fallback := rank.NewGreedy(0)
	ranked, fbErr := runPolicy(fallback, candidates)
	if fbErr != nil {
		return nil, &Failure{
			Kind: PolicyFailure,
			Err:  fmt.Errorf("policy %q failed (%v) and greedy fallback failed: %w", a.policy.Name(), err, fbErr),
		}
	}
	return ranked, nil
}

// runPolicy executes one policy over a defensive copy of the input and
// verifies the output is well-formed
func runPolicy(p rank.Policy, candidates []models.Candidate) (ranked []models.Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			ranked = nil
			err = fmt.Errorf("policy panicked: %v", r)
		}
	}()

	input := make([]models.Candidate, len(candidates))
	copy(input, candidates)

	ranked = p.Rank(input)
	if len(ranked) > len(candidates) {
		return nil, fmt.Errorf("policy returned %d candidates from %d inputs", len(ranked), len(candidates))
	}
	for _, c := range ranked {
		if !validate.Candidate(c) || !c.FinitePayback() {
			return nil, fmt.Errorf("policy returned malformed candidate %q", c.ID)
		}
	}
	return ranked, nil
}
