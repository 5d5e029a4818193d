package playback

import (
	"github.com/reillydonovan/aicivsim-sub000/internal/divergence"
	"github.com/reillydonovan/aicivsim-sub000/internal/era"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
)

// #region types
// Frame is one evaluated year of a scenario trajectory.
type Frame struct {
	Index   int              `json:"index"`
	Year    int              `json:"year"`
	Elapsed int              `json:"elapsed"`
	Era     era.Era          `json:"era"`
	Score   *score.Breakdown `json:"score"`
}

// Transition marks the first year of a new era.
type Transition struct {
	Year int     `json:"year"`
	From era.Era `json:"from"`
	To   era.Era `json:"to"`
}

// Summary provides aggregate stats over a played-back trajectory.
type Summary struct {
	Frames      int          `json:"frames"`
	FirstScore  int          `json:"first_score"`
	FinalScore  int          `json:"final_score"`
	FinalRating score.Rating `json:"final_rating"`
	BestYear    int          `json:"best_year"`
	BestScore   int          `json:"best_score"`
	WorstYear   int          `json:"worst_year"`
	WorstScore  int          `json:"worst_score"`
	Transitions []Transition `json:"transitions"`
}

// Timeline is a scenario evaluated year by year against the baseline.
type Timeline struct {
	ScenarioID string  `json:"scenario_id"`
	Name       string  `json:"name"`
	Frames     []Frame `json:"frames"`
	Summary    Summary `json:"summary"`
}

// OverlayFrame pairs one year of a primary scenario with the same year of a
// comparison scenario.
type OverlayFrame struct {
	Year     int                `json:"year"`
	Index    int                `json:"index"`
	Primary  *score.Breakdown   `json:"primary"`
	Other    *score.Breakdown   `json:"other"`
	ScoreGap int                `json:"score_gap"` // primary total minus other total
	Deltas   []divergence.Delta `json:"deltas"`
	Better   int                `json:"better"`
	Worse    int                `json:"worse"`
}

// #endregion types

// #region playback
// Run scores every snapshot of sc against baseline, in trajectory order.
// Returns an empty timeline when the scenario or baseline is missing.
func Run(sc *scenario.Scenario, baseline *scenario.Snapshot, scorer *score.Scorer) Timeline {
	if sc == nil || baseline == nil {
		return Timeline{}
	}
	if scorer == nil {
		scorer = score.NewScorer(score.DefaultConfig())
	}

	frames := make([]Frame, 0, len(sc.Trajectory))
	for i := range sc.Trajectory {
		snap := &sc.Trajectory[i]
		frames = append(frames, Frame{
			Index:   i,
			Year:    snap.Year,
			Elapsed: scenario.Elapsed(*snap, *baseline),
			Era:     era.Of(*snap, *baseline),
			Score:   scorer.Score(snap, baseline),
		})
	}

	return Timeline{
		ScenarioID: sc.ID,
		Name:       sc.Name,
		Frames:     frames,
		Summary:    Summarize(frames),
	}
}

// RunOverlay scores primary and other for every year present in both.
func RunOverlay(primary, other *scenario.Scenario, baseline *scenario.Snapshot, scorer *score.Scorer) []OverlayFrame {
	if primary == nil || other == nil || baseline == nil {
		return nil
	}
	if scorer == nil {
		scorer = score.NewScorer(score.DefaultConfig())
	}

	rows := divergence.Overlay(primary, other)
	out := make([]OverlayFrame, 0, len(rows))
	for _, row := range rows {
		a := primary.At(row.Index)
		b := other.AtYear(row.Year)
		pa, pb := scorer.Score(a, baseline), scorer.Score(b, baseline)
		good, bad := divergence.Tally(row.Deltas)
		out = append(out, OverlayFrame{
			Year:     row.Year,
			Index:    row.Index,
			Primary:  pa,
			Other:    pb,
			ScoreGap: pa.Total - pb.Total,
			Deltas:   row.Deltas,
			Better:   good,
			Worse:    bad,
		})
	}
	return out
}

// Summarize computes aggregate stats from frames. Ties for best and worst
// go to the earliest year.
func Summarize(frames []Frame) Summary {
	s := Summary{Frames: len(frames), Transitions: []Transition{}}
	if len(frames) == 0 {
		return s
	}

	first, last := frames[0], frames[len(frames)-1]
	s.FirstScore = first.Score.Total
	s.FinalScore = last.Score.Total
	s.FinalRating = last.Score.Rating
	s.BestYear, s.BestScore = first.Year, first.Score.Total
	s.WorstYear, s.WorstScore = first.Year, first.Score.Total

	for i, f := range frames {
		if f.Score.Total > s.BestScore {
			s.BestYear, s.BestScore = f.Year, f.Score.Total
		}
		if f.Score.Total < s.WorstScore {
			s.WorstYear, s.WorstScore = f.Year, f.Score.Total
		}
		if i > 0 && f.Era != frames[i-1].Era {
			s.Transitions = append(s.Transitions, Transition{Year: f.Year, From: frames[i-1].Era, To: f.Era})
		}
	}
	return s
}

// #endregion playback
