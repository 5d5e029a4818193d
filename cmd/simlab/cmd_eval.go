package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reillydonovan/aicivsim-sub000/internal/divergence"
	"github.com/reillydonovan/aicivsim-sub000/internal/era"
	"github.com/reillydonovan/aicivsim-sub000/internal/playback"
	"github.com/reillydonovan/aicivsim-sub000/internal/report"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
)

// #region scenarios
type scenarioRow struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	FirstYear  int          `json:"first_year"`
	LastYear   int          `json:"last_year"`
	Snapshots  int          `json:"snapshots"`
	FinalScore int          `json:"final_score"`
	Rating     score.Rating `json:"rating"`
}

func newScenariosCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenarios in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := a.data.Baseline()
			rows := make([]scenarioRow, 0, len(a.data.Scenarios))
			for i := range a.data.Scenarios {
				sc := &a.data.Scenarios[i]
				row := scenarioRow{ID: sc.ID, Name: sc.Name, Snapshots: sc.Len()}
				if last := sc.At(sc.Len() - 1); last != nil {
					row.FirstYear, row.LastYear = sc.Trajectory[0].Year, last.Year
					if b := a.scorer.Score(last, base); b != nil {
						row.FinalScore, row.Rating = b.Total, b.Rating
					}
				}
				rows = append(rows, row)
			}

			if a.jsonOut {
				return printJSON(a.out, rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(a.out, "no scenarios loaded")
				return nil
			}
			fmt.Fprintf(a.out, "%-12s  %-24s  %-9s  %5s  %s\n", "ID", "Name", "Years", "Final", "Rating")
			fmt.Fprintf(a.out, "%-12s+-%-24s+-%-9s+-%5s+-%s\n", "------------", "------------------------", "---------", "-----", "------------")
			for _, r := range rows {
				fmt.Fprintf(a.out, "%-12s  %-24s  %4d-%4d  %5d  %s\n",
					r.ID, truncate(r.Name, 24), r.FirstYear, r.LastYear, r.FinalScore, r.Rating)
			}
			return nil
		},
	}
}

// #endregion scenarios

// #region score
type scoreOutput struct {
	ScenarioID string           `json:"scenario_id"`
	Year       int              `json:"year"`
	Elapsed    int              `json:"elapsed"`
	Era        era.Era          `json:"era"`
	Score      *score.Breakdown `json:"score"`
}

func newScoreCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "score <scenario>",
		Short: "Show the composite score breakdown for one year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, snap, base, err := a.resolve(args[0], year)
			if err != nil {
				return err
			}
			b := a.scorer.Score(snap, base)
			out := scoreOutput{
				ScenarioID: sc.ID,
				Year:       snap.Year,
				Elapsed:    scenario.Elapsed(*snap, *base),
				Era:        era.Of(*snap, *base),
				Score:      b,
			}
			if a.jsonOut {
				return printJSON(a.out, out)
			}

			fmt.Fprintf(a.out, "%s — %d (%s era, year %d since %d)\n",
				sc.Name, snap.Year, out.Era.Title(), out.Elapsed, base.Year)
			fmt.Fprintf(a.out, "Composite score: %d/100 (%s)\n\n", b.Total, b.Rating)
			fmt.Fprintf(a.out, "%-20s  %6s  %s\n", "Component", "Value", "Explanation")
			fmt.Fprintf(a.out, "%-20s+-%6s+-%s\n", "--------------------", "------", "--------------------")
			for _, c := range b.Components {
				fmt.Fprintf(a.out, "%-20s  %6.3f  %s\n", c.Label, c.Value, c.Explanation)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: last year of the trajectory)")
	return cmd
}

// resolve looks up the scenario, its snapshot for year and the baseline.
func (a *app) resolve(id string, year int) (*scenario.Scenario, *scenario.Snapshot, *scenario.Snapshot, error) {
	sc, err := a.scenarioByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	idx, err := yearIndex(sc, year)
	if err != nil {
		return nil, nil, nil, err
	}
	snap, base := sc.At(idx), a.data.Baseline()
	if snap == nil || base == nil {
		return nil, nil, nil, fmt.Errorf("scenario %s has no data", sc.ID)
	}
	return sc, snap, base, nil
}

// #endregion score

// #region report
func newReportCmd(a *app) *cobra.Command {
	var (
		year    int
		against string
		render  bool
	)
	cmd := &cobra.Command{
		Use:   "report <scenario>",
		Short: "Generate the narrative report for one year",
		Long: `Generate the narrative report for one year of a scenario.

Status quo and worst case are compared against each other by default; use
--compare to pick another scenario or --compare none to omit the comparison.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, snap, base, err := a.resolve(args[0], year)
			if err != nil {
				return err
			}
			in := report.Input{Scenario: sc, Snapshot: snap, Baseline: base}
			other, err := a.opposing(sc, against)
			if err != nil {
				return err
			}
			if other != nil {
				in.Opposing = other.AtYear(snap.Year)
				in.OpposingName = other.Name
			}

			rep, ok := a.assembler.GenerateInput(in)
			if !ok {
				return fmt.Errorf("no report for %s in %d", sc.ID, snap.Year)
			}
			if a.jsonOut {
				return printJSON(a.out, rep)
			}
			return printMarkdown(a.out, rep.String(), render)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: last year of the trajectory)")
	cmd.Flags().StringVar(&against, "compare", "", "scenario to compare against, or none")
	cmd.Flags().BoolVar(&render, "render", false, "render Markdown for the terminal")
	return cmd
}

// #endregion report

// #region compare
type compareOutput struct {
	Year   int                `json:"year"`
	A      string             `json:"a"`
	B      string             `json:"b"`
	ScoreA int                `json:"score_a"`
	ScoreB int                `json:"score_b"`
	Deltas []divergence.Delta `json:"deltas"`
	Better int                `json:"better"`
	Worse  int                `json:"worse"`
}

func newCompareCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "compare <scenario-a> <scenario-b>",
		Short: "Show how scenario a diverges from scenario b in one year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sa, snapA, base, err := a.resolve(args[0], year)
			if err != nil {
				return err
			}
			sb, err := a.scenarioByID(args[1])
			if err != nil {
				return err
			}
			snapB := sb.AtYear(snapA.Year)
			if snapB == nil {
				return fmt.Errorf("scenario %s has no snapshot for %d", sb.ID, snapA.Year)
			}

			deltas := divergence.Compare(snapA, snapB)
			good, bad := divergence.Tally(deltas)
			out := compareOutput{
				Year:   snapA.Year,
				A:      sa.ID,
				B:      sb.ID,
				ScoreA: a.scorer.Score(snapA, base).Total,
				ScoreB: a.scorer.Score(snapB, base).Total,
				Deltas: deltas,
				Better: good,
				Worse:  bad,
			}
			if a.jsonOut {
				return printJSON(a.out, out)
			}

			fmt.Fprintf(a.out, "%s vs %s in %d (score %d vs %d)\n\n", sa.Name, sb.Name, out.Year, out.ScoreA, out.ScoreB)
			fmt.Fprintf(a.out, "%-18s  %9s  %9s  %9s  %s\n", "Metric", sa.ID, sb.ID, "Delta", "Judged")
			fmt.Fprintf(a.out, "%-18s+-%9s+-%9s+-%9s+-%s\n", "------------------", "---------", "---------", "---------", "------")
			for _, d := range deltas {
				fmt.Fprintf(a.out, "%-18s  %9.3f  %9.3f  %+9.3f  %s\n",
					d.Label, d.Metric.Value(*snapA), d.Metric.Value(*snapB), d.Delta, judged(d))
			}
			fmt.Fprintf(a.out, "\n%d better, %d worse\n", good, bad)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: last year of scenario a)")
	return cmd
}

func judged(d divergence.Delta) string {
	switch {
	case d.Good:
		return "better"
	case d.Delta == 0:
		return "even"
	default:
		return "worse"
	}
}

// #endregion compare

// #region playback
func newPlaybackCmd(a *app) *cobra.Command {
	var against string
	cmd := &cobra.Command{
		Use:   "playback <scenario>",
		Short: "Score every year of a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scenarioByID(args[0])
			if err != nil {
				return err
			}
			base := a.data.Baseline()

			if against != "" {
				other, err := a.scenarioByID(against)
				if err != nil {
					return err
				}
				rows := playback.RunOverlay(sc, other, base, a.scorer)
				if a.jsonOut {
					return printJSON(a.out, rows)
				}
				printOverlay(a, sc, other, rows)
				return nil
			}

			tl := playback.Run(sc, base, a.scorer)
			if a.jsonOut {
				return printJSON(a.out, tl)
			}
			printTimeline(a, tl)
			return nil
		},
	}
	cmd.Flags().StringVar(&against, "against", "", "overlay another scenario year by year")
	return cmd
}

func printTimeline(a *app, tl playback.Timeline) {
	if len(tl.Frames) == 0 {
		fmt.Fprintln(a.out, "no frames")
		return
	}
	fmt.Fprintf(a.out, "%s\n\n", tl.Name)
	fmt.Fprintf(a.out, "%-6s  %7s  %-8s  %5s  %s\n", "Year", "Elapsed", "Era", "Score", "Rating")
	fmt.Fprintf(a.out, "%-6s+-%7s+-%-8s+-%5s+-%s\n", "------", "-------", "--------", "-----", "------------")
	for _, f := range tl.Frames {
		fmt.Fprintf(a.out, "%-6d  %7d  %-8s  %5d  %s\n", f.Year, f.Elapsed, f.Era.Title(), f.Score.Total, f.Score.Rating)
	}

	s := tl.Summary
	fmt.Fprintf(a.out, "\nScore %d → %d (%s)\n", s.FirstScore, s.FinalScore, s.FinalRating)
	fmt.Fprintf(a.out, "Best:  %d in %d\n", s.BestScore, s.BestYear)
	fmt.Fprintf(a.out, "Worst: %d in %d\n", s.WorstScore, s.WorstYear)
	for _, t := range s.Transitions {
		fmt.Fprintf(a.out, "%d: %s → %s\n", t.Year, t.From.Title(), t.To.Title())
	}
}

func printOverlay(a *app, sc, other *scenario.Scenario, rows []playback.OverlayFrame) {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "no shared years")
		return
	}
	fmt.Fprintf(a.out, "%s vs %s\n\n", sc.Name, other.Name)
	fmt.Fprintf(a.out, "%-6s  %5s  %5s  %5s  %s\n", "Year", "A", "B", "Gap", "Better/Worse")
	fmt.Fprintf(a.out, "%-6s+-%5s+-%5s+-%5s+-%s\n", "------", "-----", "-----", "-----", "------------")
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-6d  %5d  %5d  %+5d  %d/%d\n", r.Year, r.Primary.Total, r.Other.Total, r.ScoreGap, r.Better, r.Worse)
	}
}

// #endregion playback
