package labnote

import (
	"time"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
)

// #region note
// Metrics copies the five snapshot values at the time a note was saved.
type Metrics struct {
	Gini            float64 `json:"gini"`
	CivicTrust      float64 `json:"civic_trust"`
	AIInfluence     float64 `json:"ai_influence"`
	AnnualEmissions float64 `json:"annual_emissions"`
	ResilienceScore float64 `json:"resilience_score"`
}

// MetricsOf copies the metric values out of a snapshot.
func MetricsOf(s scenario.Snapshot) Metrics {
	return Metrics{
		Gini:            s.Economy.Gini,
		CivicTrust:      s.Economy.CivicTrust,
		AIInfluence:     s.Economy.AIInfluence,
		AnnualEmissions: s.Climate.AnnualEmissions,
		ResilienceScore: s.Climate.ResilienceScore,
	}
}

// Note is a saved, annotated snapshot evaluation. Notes are never edited
// after they are saved.
type Note struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Annotation     string       `json:"annotation"`
	Timestamp      time.Time    `json:"timestamp"`
	ScenarioID     string       `json:"scenario_id"`
	ScenarioName   string       `json:"scenario_name"`
	YearIndex      int          `json:"year_index"`
	Year           int          `json:"year"`
	Metrics        Metrics      `json:"metrics"`
	CompositeScore int          `json:"composite_score"`
	Rating         score.Rating `json:"rating"`
	Report         string       `json:"report"`
}

// RestorePoint tells the caller where to re-point playback.
type RestorePoint struct {
	ScenarioID string `json:"scenario_id"`
	YearIndex  int    `json:"year_index"`
}

// Document is an exported note plus a suggested filename.
type Document struct {
	Filename string
	Body     string
}

// #endregion note
