package score

import (
	"fmt"
	"math"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

// #region scorer
// Scorer reduces a snapshot and the baseline to a 0–100 composite score.
type Scorer struct {
	config Config
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(config Config) *Scorer {
	return &Scorer{config: config}
}

// Config returns the active configuration.
func (s *Scorer) Config() Config {
	return s.config
}

// Score evaluates current against baseline. Returns nil if either is missing;
// callers hide the score in that case.
func (s *Scorer) Score(current, baseline *scenario.Snapshot) *Breakdown {
	if current == nil || baseline == nil {
		return nil
	}

	gov := s.config.Governance
	econ := current.Economy
	clim := current.Climate

	equality := Clamp01(1 - econ.Gini)
	trust := Clamp01(econ.CivicTrust)
	resilience := Clamp01(clim.ResilienceScore)
	decarb := Clamp01(1 - clim.AnnualEmissions/math.Max(1, baseline.Climate.AnnualEmissions))
	governance := s.governance(econ)

	components := []Component{
		{
			Key:         KeyEquality,
			Label:       "Equality",
			Value:       equality,
			Explanation: explainEquality(*current, *baseline),
		},
		{
			Key:         KeyTrust,
			Label:       "Civic trust",
			Value:       trust,
			Explanation: explainTrust(*current, *baseline),
		},
		{
			Key:         KeyResilience,
			Label:       "Climate resilience",
			Value:       resilience,
			Explanation: explainResilience(*current, *baseline),
		},
		{
			Key:         KeyDecarbonization,
			Label:       "Decarbonization",
			Value:       decarb,
			Explanation: explainDecarbonization(*current, *baseline, decarb),
		},
		{
			Key:         KeyAIGovernance,
			Label:       "AI governance",
			Value:       governance,
			Explanation: explainGovernance(econ, gov),
		},
	}

	var sum float64
	for _, c := range components {
		sum += c.Value
	}
	total := int(math.Round(sum / float64(len(components)) * 100))

	return &Breakdown{
		Total:      total,
		Rating:     RatingFor(total),
		Components: components,
	}
}

// governance is readiness minus a weighted penalty for AI penetration that
// outpaces civic trust by more than the configured margin.
func (s *Scorer) governance(econ scenario.Economy) float64 {
	gov := s.config.Governance
	threshold := gov.TrustThreshold
	if threshold <= 0 {
		threshold = DefaultConfig().Governance.TrustThreshold
	}
	readiness := Clamp01(econ.CivicTrust / threshold)
	gap := math.Max(0, econ.AIInfluence-econ.CivicTrust-gov.GapMargin)
	return Clamp01(readiness - gap*gov.GapPenalty)
}

// #endregion scorer

// #region explanations
func explainEquality(cur, base scenario.Snapshot) string {
	g := cur.Economy.Gini
	var tier string
	switch {
	case g <= 0.30:
		tier = "prosperity is broadly shared"
	case g <= 0.40:
		tier = "inequality is moderate"
	default:
		tier = "wealth is highly concentrated"
	}
	return fmt.Sprintf("Gini of %.3f: %s (%s).", g, tier, movement(scenario.Gini, cur, base))
}

func explainTrust(cur, base scenario.Snapshot) string {
	v := cur.Economy.CivicTrust
	var tier string
	switch {
	case v >= 0.65:
		tier = "institutions are broadly trusted"
	case v >= 0.45:
		tier = "trust is fragile"
	default:
		tier = "a trust deficit is undermining cooperation"
	}
	return fmt.Sprintf("Civic trust at %.3f: %s (%s).", v, tier, movement(scenario.Trust, cur, base))
}

func explainResilience(cur, base scenario.Snapshot) string {
	v := cur.Climate.ResilienceScore
	var tier string
	switch {
	case v >= 0.65:
		tier = "communities are well adapted"
	case v >= 0.40:
		tier = "adaptation is partial"
	default:
		tier = "communities remain highly exposed"
	}
	return fmt.Sprintf("Resilience at %.3f: %s (%s).", v, tier, movement(scenario.Resilience, cur, base))
}

func explainDecarbonization(cur, base scenario.Snapshot, value float64) string {
	var tier string
	switch {
	case value >= 0.5:
		tier = "deep decarbonization"
	case value >= 0.15:
		tier = "meaningful cuts"
	default:
		tier = "little or no progress"
	}
	return fmt.Sprintf("Emissions of %.1f Gt CO2e against %.1f at baseline: %s (%s).",
		cur.Climate.AnnualEmissions, base.Climate.AnnualEmissions, tier, movement(scenario.Emissions, cur, base))
}

func explainGovernance(econ scenario.Economy, gov GovernanceConfig) string {
	lead := econ.AIInfluence - econ.CivicTrust
	var tier string
	switch {
	case lead <= gov.GapMargin:
		tier = "oversight is keeping pace with automation"
	case lead <= gov.GapMargin+0.15:
		tier = "governance is lagging behind automation"
	default:
		tier = "automation is outrunning institutions"
	}
	return fmt.Sprintf("AI influence %.3f against civic trust %.3f: %s.", econ.AIInfluence, econ.CivicTrust, tier)
}

// movement describes a metric's change from baseline using its good direction.
func movement(m scenario.Metric, cur, base scenario.Snapshot) string {
	delta := m.Value(cur) - m.Value(base)
	switch {
	case delta == 0:
		return "unchanged from baseline"
	case m.Improved(delta):
		return fmt.Sprintf("%+.3f vs. baseline, improving", delta)
	default:
		return fmt.Sprintf("%+.3f vs. baseline, worsening", delta)
	}
}

// #endregion explanations

// #region helpers
// Clamp01 limits x to [0, 1]. NaN clamps to 0.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// #endregion helpers
