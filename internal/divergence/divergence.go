package divergence

import (
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

// #region types
// Delta is the signed difference a − b for one metric, judged by that
// metric's good direction.
type Delta struct {
	Metric scenario.Metric `json:"metric"`
	Label  string          `json:"label"`
	Delta  float64         `json:"delta"`
	Good   bool            `json:"judged_good"`
}

// YearDivergence pairs a calendar year with the deltas for that year.
type YearDivergence struct {
	Year   int     `json:"year"`
	Index  int     `json:"index"`
	Deltas []Delta `json:"deltas"`
}

// #endregion types

// #region compare
// Compare returns a − b for gini, trust, emissions and resilience.
// Returns nil when either snapshot is absent; a comparison scenario may be
// shorter than the primary one.
func Compare(a, b *scenario.Snapshot) []Delta {
	if a == nil || b == nil {
		return nil
	}
	metrics := scenario.JudgedMetrics()
	out := make([]Delta, 0, len(metrics))
	for _, m := range metrics {
		d := m.Value(*a) - m.Value(*b)
		out = append(out, Delta{
			Metric: m,
			Label:  m.Label(),
			Delta:  d,
			Good:   m.Improved(d),
		})
	}
	return out
}

// CompareAt compares two scenarios at the same trajectory index.
func CompareAt(a, b *scenario.Scenario, index int) []Delta {
	return Compare(a.At(index), b.At(index))
}

// Overlay compares a against b for every year present in both, in a's order.
func Overlay(a, b *scenario.Scenario) []YearDivergence {
	if a == nil || b == nil {
		return nil
	}
	var out []YearDivergence
	for i := range a.Trajectory {
		snap := &a.Trajectory[i]
		other := b.AtYear(snap.Year)
		if other == nil {
			continue
		}
		out = append(out, YearDivergence{
			Year:   snap.Year,
			Index:  i,
			Deltas: Compare(snap, other),
		})
	}
	return out
}

// #endregion compare

// #region summary
// Tally counts deltas judged good and bad.
func Tally(deltas []Delta) (good, bad int) {
	for _, d := range deltas {
		if d.Good {
			good++
		} else if d.Delta != 0 {
			bad++
		}
	}
	return good, bad
}

// Find returns the delta for metric m.
func Find(deltas []Delta, m scenario.Metric) (Delta, bool) {
	for _, d := range deltas {
		if d.Metric == m {
			return d, true
		}
	}
	return Delta{}, false
}

// #endregion summary
