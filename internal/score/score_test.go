package score

import (
	"math"
	"strings"
	"testing"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

func baseline() scenario.Snapshot {
	return scenario.Snapshot{
		Year:    2026,
		Economy: scenario.Economy{Gini: 0.42, CivicTrust: 0.45, AIInfluence: 0.10},
		Climate: scenario.Climate{AnnualEmissions: 52.0, ResilienceScore: 0.35},
	}
}

func aggressive2041() scenario.Snapshot {
	return scenario.Snapshot{
		Year:    2041,
		Economy: scenario.Economy{Gini: 0.32, CivicTrust: 0.70, AIInfluence: 0.55},
		Climate: scenario.Climate{AnnualEmissions: 20.0, ResilienceScore: 0.65},
	}
}

func componentValue(t *testing.T, b *Breakdown, key string) float64 {
	t.Helper()
	c, ok := b.Component(key)
	if !ok {
		t.Fatalf("missing component %s", key)
	}
	return c.Value
}

func TestScoreNilInputs(t *testing.T) {
	s := NewScorer(DefaultConfig())
	b := baseline()
	if s.Score(nil, &b) != nil {
		t.Fatal("expected nil with missing current")
	}
	if s.Score(&b, nil) != nil {
		t.Fatal("expected nil with missing baseline")
	}
}

func TestScoreEndToEndAggressive(t *testing.T) {
	s := NewScorer(DefaultConfig())
	base, cur := baseline(), aggressive2041()

	b := s.Score(&cur, &base)
	if b == nil {
		t.Fatal("expected breakdown")
	}

	decarb := componentValue(t, b, KeyDecarbonization)
	if math.Abs(decarb-(1-20.0/52.0)) > 1e-9 {
		t.Fatalf("decarbonization: expected %.4f, got %.4f", 1-20.0/52.0, decarb)
	}
	if gov := componentValue(t, b, KeyAIGovernance); gov != 1 {
		t.Fatalf("governance: expected 1.0 with trust above AI influence, got %.4f", gov)
	}
	if b.Total != 73 {
		t.Fatalf("expected total 73, got %d", b.Total)
	}
	if b.Rating != Promising {
		t.Fatalf("expected Promising, got %s", b.Rating)
	}
	if len(b.Components) != 5 {
		t.Fatalf("expected 5 components, got %d", len(b.Components))
	}
}

func TestDecarbonizationClampsAtZero(t *testing.T) {
	s := NewScorer(DefaultConfig())
	base := baseline()
	cur := baseline()
	cur.Climate.AnnualEmissions = base.Climate.AnnualEmissions * 2

	b := s.Score(&cur, &base)
	if v := componentValue(t, b, KeyDecarbonization); v != 0 {
		t.Fatalf("expected 0, got %v", v)
	}
}

func TestDecarbonizationGuardsNonPositiveBaseline(t *testing.T) {
	s := NewScorer(DefaultConfig())
	base := baseline()
	base.Climate.AnnualEmissions = 0
	cur := baseline()
	cur.Climate.AnnualEmissions = 0.5

	b := s.Score(&cur, &base)
	if v := componentValue(t, b, KeyDecarbonization); math.Abs(v-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 with denominator floored at 1, got %v", v)
	}
}

func TestGovernanceGapPenalty(t *testing.T) {
	s := NewScorer(DefaultConfig())
	base := baseline()
	cur := baseline()
	cur.Economy.CivicTrust = 0.40
	cur.Economy.AIInfluence = 0.70

	// readiness = 0.40/0.65, gap = 0.70-0.40-0.1 = 0.2, penalty = 0.5
	want := Clamp01(0.40/0.65 - 0.2*2.5)
	b := s.Score(&cur, &base)
	if v := componentValue(t, b, KeyAIGovernance); math.Abs(v-want) > 1e-9 {
		t.Fatalf("expected %.4f, got %.4f", want, v)
	}
}

func TestGovernanceConstantsConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Governance.GapPenalty = 0
	s := NewScorer(cfg)
	base := baseline()
	cur := baseline()
	cur.Economy.CivicTrust = 0.40
	cur.Economy.AIInfluence = 0.90

	b := s.Score(&cur, &base)
	if v := componentValue(t, b, KeyAIGovernance); math.Abs(v-0.40/0.65) > 1e-9 {
		t.Fatalf("expected readiness only, got %.4f", v)
	}
}

func TestRatingBoundaries(t *testing.T) {
	cases := []struct {
		total int
		want  Rating
	}{
		{100, Thriving},
		{80, Thriving},
		{79, Promising},
		{65, Promising},
		{64, MixedSignals},
		{50, MixedSignals},
		{49, UnderStress},
		{35, UnderStress},
		{34, Critical},
		{0, Critical},
	}
	for _, c := range cases {
		if got := RatingFor(c.total); got != c.want {
			t.Errorf("RatingFor(%d) = %s, want %s", c.total, got, c.want)
		}
	}
}

func TestExplanationsInterpolateLiteralValues(t *testing.T) {
	s := NewScorer(DefaultConfig())
	base, cur := baseline(), aggressive2041()
	b := s.Score(&cur, &base)

	want := map[string]string{
		KeyEquality:        "0.320",
		KeyTrust:           "0.700",
		KeyResilience:      "0.650",
		KeyDecarbonization: "20.0",
		KeyAIGovernance:    "0.550",
	}
	for key, literal := range want {
		c, _ := b.Component(key)
		if !strings.Contains(c.Explanation, literal) {
			t.Errorf("%s explanation %q missing %q", key, c.Explanation, literal)
		}
	}
	if c, _ := b.Component(KeyEquality); !strings.Contains(c.Explanation, "improving") {
		t.Errorf("falling gini should read as improving: %q", c.Explanation)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.2) != 0 || Clamp01(1.7) != 1 || Clamp01(0.3) != 0.3 {
		t.Fatal("clamp bounds wrong")
	}
	if Clamp01(math.NaN()) != 0 {
		t.Fatal("NaN should clamp to 0")
	}
}
