package advisor

import (
	"reflect"
	"testing"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/provider/providertest"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/rank"
)

func richSnapshot() *providertest.Snapshot {
	return providertest.NewSnapshot(5000, 100).
		AddBuilding(providertest.NewBuilding("Cursor", 10, 130, 0.1, 1)).
		AddBuilding(providertest.NewBuilding("Grandma", 5, 600, 1, 10)).
		AddBuilding(providertest.NewBuilding("Farm", 2, 1100, 8, 16)).
		AddUpgrade(providertest.NewUpgrade("Forwards from grandma", 1000, "Grandmas are 2x as efficient")).
		AddUpgrade(providertest.NewUpgrade("Kitten helpers", 2000, "increases CPS by 50%")).
		AddUpgrade(providertest.NewUpgrade("Mystery box", 500, "???"))
}

func TestAnalyzeRecommends(t *testing.T) {
	adv := New(Options{})

	rec, err := adv.Analyze(richSnapshot())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if rec.Top.ID == "" {
		t.Fatal("empty top candidate")
	}
	// Kitten helpers: 50% of the global 100/s is a 50/s gain for 2000
	// cookies, a 40s payback — the best in this snapshot.
	if rec.Top.Name != "Kitten helpers" {
		t.Errorf("top = %s, want Kitten helpers", rec.Top.Name)
	}
	if rec.Policy != rank.GreedyName {
		t.Errorf("policy = %s, want %s", rec.Policy, rank.GreedyName)
	}
	if rec.State == nil || rec.State.Currency != 5000 {
		t.Error("recommendation lost its state context")
	}
	for i := 1; i < len(rec.Alternatives); i++ {
		if rec.Alternatives[i-1].PaybackTime > rec.Alternatives[i].PaybackTime {
			t.Error("alternatives are not payback-ordered")
		}
	}
}

// TestAnalyzeIdempotent: same snapshot in, identical recommendation out
func TestAnalyzeIdempotent(t *testing.T) {
	adv := New(Options{})

	first, err := adv.Analyze(richSnapshot())
	if err != nil {
		t.Fatalf("first Analyze failed: %v", err)
	}
	second, err := adv.Analyze(richSnapshot())
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of an unchanged snapshot disagreed")
	}
}

func TestAnalyzeFailureTaxonomy(t *testing.T) {
	adv := New(Options{})

	t.Run("invalid source", func(t *testing.T) {
		_, err := adv.Analyze(&providertest.Snapshot{CPS: 1, HasCPS: true})
		f, ok := FailureOf(err)
		if !ok || f.Kind != InvalidSource {
			t.Errorf("err = %v, want InvalidSource failure", err)
		}
	})

	t.Run("empty snapshot", func(t *testing.T) {
		_, err := adv.Analyze(providertest.NewSnapshot(100, 10))
		f, ok := FailureOf(err)
		if !ok || f.Kind != NoCandidates {
			t.Errorf("err = %v, want NoCandidates failure", err)
		}
	})

	t.Run("everything filtered", func(t *testing.T) {
		// One building whose payback is far beyond the ceiling.
		snap := providertest.NewSnapshot(0, 0).
			AddBuilding(providertest.NewBuilding("Idleverse", 0, 1e12, 0.001, 0))
		_, err := adv.Analyze(snap)
		f, ok := FailureOf(err)
		if !ok || f.Kind != NoCandidates {
			t.Errorf("err = %v, want NoCandidates failure", err)
		}
	})
}

// TestRelaxedRescuesCeilingOverflow pins the documented pairing: a
// snapshot the greedy policy returns nothing for still ranks under
// relaxed
func TestRelaxedRescuesCeilingOverflow(t *testing.T) {
	snap := func() *providertest.Snapshot {
		return providertest.NewSnapshot(0, 0).
			AddBuilding(providertest.NewBuilding("Idleverse", 0, 1e12, 0.001, 0))
	}

	adv := New(Options{})
	if _, err := adv.Analyze(snap()); err == nil {
		t.Fatal("expected greedy to filter everything")
	}

	adv.SetPolicy(rank.NewRelaxed())
	rec, err := adv.Analyze(snap())
	if err != nil {
		t.Fatalf("relaxed Analyze failed: %v", err)
	}
	if rec.Top.Name != "Idleverse" {
		t.Errorf("top = %s, want Idleverse", rec.Top.Name)
	}
	if rec.Policy != rank.RelaxedName {
		t.Errorf("policy = %s, want %s", rec.Policy, rank.RelaxedName)
	}
}

// panicPolicy always panics; simulates a broken future policy
type panicPolicy struct{}

func (panicPolicy) Name() string { return "lookahead-experimental" }
func (panicPolicy) Rank(candidates []models.Candidate) []models.Candidate {
	panic("not ready")
}

// growPolicy returns more candidates than it was given
type growPolicy struct{}

func (growPolicy) Name() string { return "grower" }
func (growPolicy) Rank(candidates []models.Candidate) []models.Candidate {
	return append(candidates, candidates...)
}

// malformedPolicy fabricates a structurally invalid candidate
type malformedPolicy struct{}

func (malformedPolicy) Name() string { return "malformed" }
func (malformedPolicy) Rank(candidates []models.Candidate) []models.Candidate {
	return []models.Candidate{{ID: "", Kind: "???", Cost: -1}}
}

func TestPolicyFailureFallsBackToGreedy(t *testing.T) {
	for _, p := range []rank.Policy{panicPolicy{}, growPolicy{}, malformedPolicy{}} {
		t.Run(p.Name(), func(t *testing.T) {
			adv := New(Options{Policy: p})
			rec, err := adv.Analyze(richSnapshot())
			if err != nil {
				t.Fatalf("fallback did not rescue %s: %v", p.Name(), err)
			}
			if rec.Top.Name != "Kitten helpers" {
				t.Errorf("fallback top = %s, want greedy's pick", rec.Top.Name)
			}
		})
	}
}

func TestAlternativesBounded(t *testing.T) {
	snap := providertest.NewSnapshot(0, 100)
	for _, name := range []string{"Cursor", "Grandma", "Farm", "Mine", "Factory", "Bank", "Temple", "Tower"} {
		snap.AddBuilding(providertest.NewBuilding(name, 1, 100, 1, 1))
	}

	adv := New(Options{Alternatives: 3})
	rec, err := adv.Analyze(snap)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(rec.Alternatives) != 3 {
		t.Errorf("got %d alternatives, want 3", len(rec.Alternatives))
	}
}

func TestSetPolicyAndName(t *testing.T) {
	adv := New(Options{})
	if adv.PolicyName() != rank.GreedyName {
		t.Errorf("default policy = %s", adv.PolicyName())
	}
	adv.SetPolicy(rank.NewRelaxed())
	if adv.PolicyName() != rank.RelaxedName {
		t.Errorf("policy after set = %s", adv.PolicyName())
	}
	adv.SetPolicy(nil)
	if adv.PolicyName() != rank.GreedyName {
		t.Errorf("nil policy should restore greedy, got %s", adv.PolicyName())
	}
}

func TestListCandidatesUnranked(t *testing.T) {
	adv := New(Options{})
	candidates, err := adv.ListCandidates(richSnapshot())
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	// 3 buildings + 3 upgrades, nothing filtered.
	if len(candidates) != 6 {
		t.Errorf("got %d candidates, want 6", len(candidates))
	}
	// Extraction order preserved: buildings first.
	if candidates[0].Kind != models.KindBuilding || candidates[0].Name != "Cursor" {
		t.Errorf("first candidate = %v", candidates[0])
	}
}

func TestLastResultIsDisplayCacheOnly(t *testing.T) {
	adv := New(Options{})
	if adv.LastResult() != nil {
		t.Error("fresh advisor has a last result")
	}
	rec, err := adv.Analyze(richSnapshot())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if adv.LastResult() != rec {
		t.Error("last result not cached")
	}
	// A failing call must not clobber the cache with partial data.
	if _, err := adv.Analyze(nil); err == nil {
		t.Fatal("expected failure on nil snapshot")
	}
	if adv.LastResult() != rec {
		t.Error("failed analysis altered the cached result")
	}
}
