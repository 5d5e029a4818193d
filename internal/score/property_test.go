package score_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
)

func snapshot(gini, trust, ai, emissions, resilience float64) scenario.Snapshot {
	return scenario.Snapshot{
		Year:    2030,
		Economy: scenario.Economy{Gini: gini, CivicTrust: trust, AIInfluence: ai},
		Climate: scenario.Climate{AnnualEmissions: emissions, ResilienceScore: resilience},
	}
}

var base = snapshot(0.42, 0.45, 0.10, 52.0, 0.35)

// TestComponentsStayInUnitInterval checks every component is clamped to [0,1].
func TestComponentsStayInUnitInterval(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	scorer := score.NewScorer(score.DefaultConfig())

	properties.Property("components in [0,1]", prop.ForAll(
		func(gini, trust, ai, emissions, resilience float64) bool {
			cur := snapshot(gini, trust, ai, emissions, resilience)
			b := scorer.Score(&cur, &base)
			for _, c := range b.Components {
				if c.Value < 0 || c.Value > 1 {
					return false
				}
			}
			return b.Total >= 0 && b.Total <= 100
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 200),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

// TestDecarbonizationZeroWhenEmissionsDouble checks the clamp on the decarbonization component.
func TestDecarbonizationZeroWhenEmissionsDouble(t *testing.T) {
	properties := gopter.NewProperties(nil)
	scorer := score.NewScorer(score.DefaultConfig())

	properties.Property("emissions >= 2x baseline yields 0", prop.ForAll(
		func(factor float64) bool {
			cur := snapshot(0.4, 0.5, 0.2, base.Climate.AnnualEmissions*factor, 0.5)
			c, _ := scorer.Score(&cur, &base).Component(score.KeyDecarbonization)
			return c.Value == 0
		},
		gen.Float64Range(2, 50),
	))

	properties.TestingRun(t)
}

// TestScoreMonotonicity checks lower gini and higher trust never lower the total.
func TestScoreMonotonicity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	scorer := score.NewScorer(score.DefaultConfig())

	properties.Property("decreasing gini never decreases total", prop.ForAll(
		func(gini, step, trust, ai float64) bool {
			hi := snapshot(gini, trust, ai, 30, 0.5)
			lo := snapshot(gini*step, trust, ai, 30, 0.5)
			return scorer.Score(&lo, &base).Total >= scorer.Score(&hi, &base).Total
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.Property("increasing trust never decreases total", prop.ForAll(
		func(trust, bump, ai float64) bool {
			raised := trust + bump
			if raised > 1 {
				raised = 1
			}
			lo := snapshot(0.4, trust, ai, 30, 0.5)
			hi := snapshot(0.4, raised, ai, 30, 0.5)
			return scorer.Score(&hi, &base).Total >= scorer.Score(&lo, &base).Total
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 0.5),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}
