package report

import (
	"fmt"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/reillydonovan/aicivsim-sub000/internal/divergence"
	"github.com/reillydonovan/aicivsim-sub000/internal/era"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
)

// #region section-defs
// Section keys in report order.
const (
	SectionSummary    = "summary"
	SectionComparison = "comparison"
	SectionBaseline   = "baseline"
	SectionActions    = "actions"
	SectionEconomy    = "economy"
	SectionEnergy     = "energy"
	SectionPolitics   = "politics"
	SectionAI         = "ai"
	SectionNextSteps  = "next_steps"
)

// SectionUnavailable stands in for a section body that failed to render.
const SectionUnavailable = "_This section could not be generated._"

type sectionDef struct {
	key      string
	title    string
	opposing bool // rendered only when an opposing snapshot is supplied
	source   table
	compiled map[key]*template.Template
}

var sections = []*sectionDef{
	{key: SectionSummary, title: "Summary", source: summaryTable},
	{key: SectionComparison, title: "Status-Quo / Worst-Case Comparison", opposing: true, source: comparisonTable},
	{key: SectionBaseline, title: "Baseline Comparison", source: baselineTable},
	{key: SectionActions, title: "Actions", source: actionsTable},
	{key: SectionEconomy, title: "Employment & Economy", source: economyTable},
	{key: SectionEnergy, title: "Energy & Infrastructure", source: energyTable},
	{key: SectionPolitics, title: "Political Climate", source: politicsTable},
	{key: SectionAI, title: "AI Influence", source: aiTable},
	{key: SectionNextSteps, title: "Next Steps", source: nextTable},
}

func init() {
	for _, s := range sections {
		s.compiled = make(map[key]*template.Template, len(s.source))
		for k, src := range s.source {
			name := fmt.Sprintf("%s/%s/%s", s.key, k.scenario, k.era)
			s.compiled[k] = template.Must(template.New(name).Funcs(funcs).Option("missingkey=error").Parse(src))
		}
	}
}

// lookup returns the template for (scenarioID, e), falling back to the
// default scenario's phrasing for that era. fellBack reports the fallback.
func (s *sectionDef) lookup(scenarioID string, e era.Era) (t *template.Template, fellBack bool) {
	if t, ok := s.compiled[key{scenarioID, e}]; ok {
		return t, false
	}
	return s.compiled[key{DefaultScenario, e}], true
}

// #endregion section-defs

// #region types
// Input bundles everything a report is generated from.
type Input struct {
	Scenario *scenario.Scenario
	Snapshot *scenario.Snapshot
	Baseline *scenario.Snapshot
	Opposing *scenario.Snapshot // optional
	// OpposingName labels the opposing snapshot in text. Optional.
	OpposingName string
}

// Section is one rendered report section.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Report is a generated multi-section document.
type Report struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Sections []Section `json:"sections"`
	Facts    Facts     `json:"-"`
}

// OpposingFor names the scenario a report is compared against when the
// caller does not choose one. Status quo and worst case are each other's foil;
// other paths have none.
func OpposingFor(scenarioID string) string {
	switch scenarioID {
	case scenario.StatusQuo:
		return scenario.WorstCase
	case scenario.WorstCase:
		return scenario.StatusQuo
	}
	return ""
}

// #endregion types

// #region assembler
// Assembler selects and fills section templates.
type Assembler struct {
	scorer *score.Scorer
	log    *zap.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger attaches a logger; template fallbacks are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.log = l
		}
	}
}

// NewAssembler creates an assembler that scores with scorer.
func NewAssembler(scorer *score.Scorer, opts ...Option) *Assembler {
	if scorer == nil {
		scorer = score.NewScorer(score.DefaultConfig())
	}
	a := &Assembler{scorer: scorer, log: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate builds the report for sc at snap. ok is false when the scenario,
// snapshot or baseline is missing.
func (a *Assembler) Generate(sc *scenario.Scenario, snap, baseline, opposing *scenario.Snapshot) (Report, bool) {
	return a.GenerateInput(Input{Scenario: sc, Snapshot: snap, Baseline: baseline, Opposing: opposing})
}

// GenerateInput is Generate with the full input, including an opposing label.
func (a *Assembler) GenerateInput(in Input) (Report, bool) {
	if in.Scenario == nil || in.Snapshot == nil || in.Baseline == nil {
		return Report{}, false
	}

	f := computeFacts(in, a.scorer)
	rep := Report{
		Title:    fmt.Sprintf("%s — %d", f.Name, f.Year),
		Subtitle: fmt.Sprintf("%s era · year %d since %d · composite score %d/100 (%s)", f.EraTitle, f.Elapsed, f.BaselineYear, f.Score, f.Rating),
		Facts:    f,
	}

	for _, s := range sections {
		if s.opposing && !f.HasOpposing {
			continue
		}
		body, err := a.render(s, f)
		if err != nil {
			// Templates are checked at init; a render failure means a Facts
			// field was renamed without updating the table.
			a.log.Error("render report section", zap.String("section", s.key), zap.Error(err))
			body = SectionUnavailable
		}
		if s.key == SectionComparison {
			body = body + "\n\n" + divergenceLines(f.Divergence)
		}
		rep.Sections = append(rep.Sections, Section{Key: s.key, Title: s.title, Body: body})
	}
	return rep, true
}

func (a *Assembler) render(s *sectionDef, f Facts) (string, error) {
	t, fellBack := s.lookup(f.ScenarioID, f.Era)
	if fellBack {
		a.log.Debug("report template fallback",
			zap.String("section", s.key),
			zap.String("scenario", f.ScenarioID),
			zap.String("era", string(f.Era)),
		)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, f); err != nil {
		return "", fmt.Errorf("execute %s: %w", t.Name(), err)
	}
	return sb.String(), nil
}

// #endregion assembler

// #region render
func divergenceLines(deltas []divergence.Delta) string {
	lines := make([]string, 0, len(deltas))
	for _, d := range deltas {
		judgement := "worse"
		switch {
		case d.Good:
			judgement = "better"
		case d.Delta == 0:
			judgement = "even"
		}
		value := fmt.Sprintf("%+.3f", d.Delta)
		if d.Metric == scenario.Emissions {
			value = fmt.Sprintf("%+.1f Gt CO2e", d.Delta)
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", d.Label, value, judgement))
	}
	return strings.Join(lines, "\n")
}

// Section returns the section with key.
func (r Report) Section(key string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// String renders the report as Markdown.
func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(r.Title)
	sb.WriteString("\n\n_")
	sb.WriteString(r.Subtitle)
	sb.WriteString("_\n")
	for _, s := range r.Sections {
		sb.WriteString("\n## ")
		sb.WriteString(s.Title)
		sb.WriteString("\n\n")
		sb.WriteString(s.Body)
		sb.WriteString("\n")
	}
	return sb.String()
}

// #endregion render
