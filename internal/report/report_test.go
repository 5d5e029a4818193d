package report

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reillydonovan/aicivsim-sub000/internal/era"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
)

func fixture() (*scenario.Scenario, *scenario.Snapshot, *scenario.Snapshot, *scenario.Snapshot) {
	base := &scenario.Snapshot{
		Year:    2026,
		Economy: scenario.Economy{Gini: 0.42, CivicTrust: 0.45, AIInfluence: 0.10},
		Climate: scenario.Climate{AnnualEmissions: 52.0, ResilienceScore: 0.35},
	}
	snap := &scenario.Snapshot{
		Year:    2041,
		Economy: scenario.Economy{Gini: 0.32, CivicTrust: 0.70, AIInfluence: 0.55},
		Climate: scenario.Climate{AnnualEmissions: 20.0, ResilienceScore: 0.65},
	}
	opposing := &scenario.Snapshot{
		Year:    2041,
		Economy: scenario.Economy{Gini: 0.46, CivicTrust: 0.38, AIInfluence: 0.60},
		Climate: scenario.Climate{AnnualEmissions: 49.5, ResilienceScore: 0.30},
	}
	sc := &scenario.Scenario{
		ID:          scenario.Aggressive,
		Name:        "Aggressive Transition",
		Description: "Front-loaded climate and civic investment.",
		Branch:      scenario.Branch{CivicDividendRate: 0.12, AICharterEnabled: true, ClimateCapexShare: 0.08},
	}
	return sc, snap, base, opposing
}

func newAssembler() *Assembler {
	return NewAssembler(score.NewScorer(score.DefaultConfig()))
}

func TestGenerateEndToEnd(t *testing.T) {
	sc, snap, base, _ := fixture()
	rep, ok := newAssembler().Generate(sc, snap, base, nil)
	require.True(t, ok)

	assert.Equal(t, 15, rep.Facts.Elapsed)
	assert.Equal(t, era.Diverge, rep.Facts.Era)
	assert.Equal(t, 73, rep.Facts.Score)

	summary, ok := rep.Section(SectionSummary)
	require.True(t, ok)
	assert.Contains(t, summary.Body, "2041")
	assert.Contains(t, summary.Body, "20.0")

	_, ok = rep.Section(SectionComparison)
	assert.False(t, ok, "comparison requires an opposing snapshot")

	keys := make([]string, 0, len(rep.Sections))
	for _, s := range rep.Sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{
		SectionSummary, SectionBaseline, SectionActions, SectionEconomy,
		SectionEnergy, SectionPolitics, SectionAI, SectionNextSteps,
	}, keys)
}

func TestGenerateWithOpposing(t *testing.T) {
	sc, snap, base, opp := fixture()
	rep, ok := newAssembler().GenerateInput(Input{
		Scenario: sc, Snapshot: snap, Baseline: base, Opposing: opp, OpposingName: "Status Quo",
	})
	require.True(t, ok)

	require.True(t, len(rep.Sections) > 1)
	cmp := rep.Sections[1]
	assert.Equal(t, SectionComparison, cmp.Key)
	assert.Contains(t, cmp.Body, "Status Quo")
	assert.Contains(t, cmp.Body, "- Gini: -0.140 (better)")
	assert.Contains(t, cmp.Body, "- Annual emissions: -29.5 Gt CO2e (better)")
	assert.Contains(t, cmp.Body, "- Civic trust: +0.320 (better)")
}

func TestGenerateDeterministic(t *testing.T) {
	sc, snap, base, opp := fixture()
	a := newAssembler()
	first, _ := a.Generate(sc, snap, base, opp)
	second, _ := a.Generate(sc, snap, base, opp)
	assert.Equal(t, first.String(), second.String())
}

func TestGenerateMissingData(t *testing.T) {
	sc, snap, base, _ := fixture()
	a := newAssembler()
	_, ok := a.Generate(sc, nil, base, nil)
	assert.False(t, ok)
	_, ok = a.Generate(sc, snap, nil, nil)
	assert.False(t, ok)
	_, ok = a.Generate(nil, snap, base, nil)
	assert.False(t, ok)
}

func TestUnknownScenarioFallsBack(t *testing.T) {
	sc, snap, base, opp := fixture()
	sc.ID = "civic_experiment"
	rep, ok := newAssembler().Generate(sc, snap, base, opp)
	require.True(t, ok)
	assert.Len(t, rep.Sections, len(sections))

	summary, _ := rep.Section(SectionSummary)
	assert.Contains(t, summary.Body, "status quo", "expected default scenario phrasing")
}

func TestPartialTableFallsBackPerEra(t *testing.T) {
	// moderate has no bespoke economy copy, so it borrows the default's.
	sc, snap, base, _ := fixture()
	sc.ID = scenario.Moderate
	rep, _ := newAssembler().Generate(sc, snap, base, nil)

	sc.ID = DefaultScenario
	def, _ := newAssembler().Generate(sc, snap, base, nil)

	got, _ := rep.Section(SectionEconomy)
	want, _ := def.Section(SectionEconomy)
	assert.Equal(t, want.Body, got.Body)

	gotSummary, _ := rep.Section(SectionSummary)
	wantSummary, _ := def.Section(SectionSummary)
	assert.NotEqual(t, wantSummary.Body, gotSummary.Body)
}

func TestRenderFailureKeepsSection(t *testing.T) {
	var politics *sectionDef
	for _, s := range sections {
		if s.key == SectionPolitics {
			politics = s
		}
	}
	require.NotNil(t, politics)
	k := key{"unrenderable", era.Diverge}
	politics.compiled[k] = template.Must(template.New("unrenderable").Parse("{{.NoSuchFact}}"))
	t.Cleanup(func() { delete(politics.compiled, k) })

	sc, snap, base, _ := fixture()
	sc.ID = "unrenderable"
	rep, ok := newAssembler().Generate(sc, snap, base, nil)
	require.True(t, ok)
	require.Len(t, rep.Sections, len(sections)-1)

	var keys []string
	for _, s := range rep.Sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{
		SectionSummary, SectionBaseline, SectionActions, SectionEconomy,
		SectionEnergy, SectionPolitics, SectionAI, SectionNextSteps,
	}, keys)

	got, ok := rep.Section(SectionPolitics)
	require.True(t, ok)
	assert.Equal(t, "Political Climate", got.Title)
	assert.Equal(t, SectionUnavailable, got.Body)
	assert.Contains(t, rep.String(), SectionUnavailable)
}

func TestEverySectionHasDefaultForEveryEra(t *testing.T) {
	for _, s := range sections {
		for _, e := range era.All() {
			_, ok := s.compiled[key{DefaultScenario, e}]
			assert.True(t, ok, "section %s missing default copy for %s", s.key, e)
		}
	}
}

func TestEveryTemplateRendersEveryKnownPair(t *testing.T) {
	sc, _, base, opp := fixture()
	a := newAssembler()
	years := map[era.Era]int{era.Dawn: 2028, era.Diverge: 2036, era.Mature: 2050, era.Legacy: 2070}
	ids := []string{scenario.StatusQuo, scenario.Moderate, scenario.Aggressive, scenario.WorstCase}

	for _, id := range ids {
		for e, year := range years {
			sc.ID = id
			snap := *opp
			snap.Year = year
			rep, ok := a.Generate(sc, &snap, base, opp)
			require.True(t, ok)
			require.Len(t, rep.Sections, len(sections), "%s/%s", id, e)
			assert.Equal(t, e, rep.Facts.Era)

			summary, _ := rep.Section(SectionSummary)
			assert.Contains(t, summary.Body, "49.5", "%s/%s summary should quote emissions", id, e)
			for _, s := range rep.Sections {
				assert.NotContains(t, s.Body, "<no value>", "%s/%s/%s", id, e, s.Key)
			}
		}
	}
}

func TestSectionsAgreeOnDeltas(t *testing.T) {
	sc, snap, base, _ := fixture()
	sc.ID = scenario.StatusQuo
	rep, _ := newAssembler().Generate(sc, snap, base, nil)

	baseline, _ := rep.Section(SectionBaseline)
	assert.Contains(t, baseline.Body, "Gini -0.100")
	assert.Contains(t, baseline.Body, "civic trust +0.250")
	assert.Contains(t, baseline.Body, "emissions -32.0 Gt CO2e")

	ai, _ := rep.Section(SectionAI)
	assert.Contains(t, ai.Body, "-0.150", "governance gap is ai_influence - civic_trust")
}

func TestStringRendersMarkdown(t *testing.T) {
	sc, snap, base, _ := fixture()
	rep, _ := newAssembler().Generate(sc, snap, base, nil)
	out := rep.String()

	assert.True(t, strings.HasPrefix(out, "# Aggressive Transition — 2041\n"))
	assert.Contains(t, out, "Diverge era · year 15 since 2026 · composite score 73/100 (Promising)")
	assert.Contains(t, out, "\n## Summary\n\n")
	assert.Less(t, strings.Index(out, "## Summary"), strings.Index(out, "## Next Steps"))
}

func TestOpposingFor(t *testing.T) {
	assert.Equal(t, scenario.WorstCase, OpposingFor(scenario.StatusQuo))
	assert.Equal(t, scenario.StatusQuo, OpposingFor(scenario.WorstCase))
	assert.Empty(t, OpposingFor(scenario.Aggressive))
	assert.Empty(t, OpposingFor("unknown"))
}
