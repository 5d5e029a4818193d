package labnote

import (
	"fmt"
	"strings"

	"github.com/reillydonovan/aicivsim-sub000/internal/report"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

// CaptureInput describes the view a user is looking at when they save.
type CaptureInput struct {
	Scenario   *scenario.Scenario
	YearIndex  int
	Baseline   *scenario.Snapshot
	Opposing   *scenario.Scenario // optional comparison scenario
	Title      string
	Annotation string
}

// DefaultTitle is the title used when the user leaves it blank.
func DefaultTitle(name string, year int) string {
	return fmt.Sprintf("%s — Year %d", name, year)
}

// Capture evaluates the snapshot at in.YearIndex and builds an unsaved note.
// ok is false when the scenario, snapshot or baseline is missing.
func Capture(in CaptureInput, assembler *report.Assembler) (Note, bool) {
	snap := in.Scenario.At(in.YearIndex)
	if snap == nil || in.Baseline == nil {
		return Note{}, false
	}

	rin := report.Input{Scenario: in.Scenario, Snapshot: snap, Baseline: in.Baseline}
	if in.Opposing != nil {
		rin.Opposing = in.Opposing.AtYear(snap.Year)
		rin.OpposingName = in.Opposing.Name
	}
	rep, ok := assembler.GenerateInput(rin)
	if !ok {
		return Note{}, false
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = DefaultTitle(in.Scenario.Name, snap.Year)
	}

	return Note{
		Title:          title,
		Annotation:     strings.TrimSpace(in.Annotation),
		ScenarioID:     in.Scenario.ID,
		ScenarioName:   in.Scenario.Name,
		YearIndex:      in.YearIndex,
		Year:           snap.Year,
		Metrics:        MetricsOf(*snap),
		CompositeScore: rep.Facts.Score,
		Rating:         rep.Facts.Rating,
		Report:         rep.String(),
	}, true
}
