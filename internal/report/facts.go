package report

import (
	"math"

	"github.com/reillydonovan/aicivsim-sub000/internal/divergence"
	"github.com/reillydonovan/aicivsim-sub000/internal/era"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
)

// #region facts
// Facts is every number a report quotes, computed once per report so that
// all sections agree.
type Facts struct {
	ScenarioID   string
	Name         string
	Description  string
	Year         int
	BaselineYear int
	Elapsed      int
	Era          era.Era
	EraTitle     string

	Score     int
	Rating    score.Rating
	Breakdown *score.Breakdown

	// Current values.
	Gini       float64
	Trust      float64
	AI         float64
	Emissions  float64
	Resilience float64

	// Baseline values.
	BaseGini       float64
	BaseTrust      float64
	BaseAI         float64
	BaseEmissions  float64
	BaseResilience float64

	// current − baseline.
	DGini       float64
	DTrust      float64
	DAI         float64
	DEmissions  float64
	DResilience float64

	// EmissionsPct is the signed percent change in emissions vs. baseline.
	EmissionsPct float64
	// Gap is ai_influence − civic_trust, the governance gap quoted in text.
	Gap float64

	Dividend float64
	Charter  bool
	Capex    float64

	HasOpposing  bool
	OpposingName string
	Opposing     scenario.Snapshot
	Divergence   []divergence.Delta
}

// #endregion facts

// #region compute
func computeFacts(in Input, scorer *score.Scorer) Facts {
	cur, base := *in.Snapshot, *in.Baseline
	elapsed := scenario.Elapsed(cur, base)
	e := era.Classify(elapsed)
	b := scorer.Score(in.Snapshot, in.Baseline)

	f := Facts{
		ScenarioID:   in.Scenario.ID,
		Name:         in.Scenario.Name,
		Description:  in.Scenario.Description,
		Year:         cur.Year,
		BaselineYear: base.Year,
		Elapsed:      elapsed,
		Era:          e,
		EraTitle:     e.Title(),

		Score:     b.Total,
		Rating:    b.Rating,
		Breakdown: b,

		Gini:       cur.Economy.Gini,
		Trust:      cur.Economy.CivicTrust,
		AI:         cur.Economy.AIInfluence,
		Emissions:  cur.Climate.AnnualEmissions,
		Resilience: cur.Climate.ResilienceScore,

		BaseGini:       base.Economy.Gini,
		BaseTrust:      base.Economy.CivicTrust,
		BaseAI:         base.Economy.AIInfluence,
		BaseEmissions:  base.Climate.AnnualEmissions,
		BaseResilience: base.Climate.ResilienceScore,

		Dividend: in.Scenario.Branch.CivicDividendRate,
		Charter:  in.Scenario.Branch.AICharterEnabled,
		Capex:    in.Scenario.Branch.ClimateCapexShare,
	}

	f.DGini = f.Gini - f.BaseGini
	f.DTrust = f.Trust - f.BaseTrust
	f.DAI = f.AI - f.BaseAI
	f.DEmissions = f.Emissions - f.BaseEmissions
	f.DResilience = f.Resilience - f.BaseResilience
	f.EmissionsPct = f.DEmissions / math.Max(1, f.BaseEmissions) * 100
	f.Gap = f.AI - f.Trust

	if in.Opposing != nil {
		f.HasOpposing = true
		f.Opposing = *in.Opposing
		f.OpposingName = in.OpposingName
		if f.OpposingName == "" {
			f.OpposingName = "the comparison path"
		}
		f.Divergence = divergence.Compare(in.Snapshot, in.Opposing)
	}
	return f
}

// #endregion compute
