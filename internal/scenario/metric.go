package scenario

// #region direction
// Direction says which way a metric moves when things get better.
type Direction int

const (
	Neutral Direction = iota
	HigherIsBetter
	LowerIsBetter
)

func (d Direction) String() string {
	switch d {
	case HigherIsBetter:
		return "higher_is_better"
	case LowerIsBetter:
		return "lower_is_better"
	default:
		return "neutral"
	}
}

// #endregion direction

// #region metric
// Metric names one of the five snapshot values.
type Metric string

const (
	Gini        Metric = "gini"
	Trust       Metric = "civic_trust"
	Emissions   Metric = "annual_emissions"
	Resilience  Metric = "resilience_score"
	AIInfluence Metric = "ai_influence"
)

type metricInfo struct {
	label     string
	direction Direction
	value     func(Snapshot) float64
}

// metricTable is the single source of truth for metric orientation. The scorer
// and the divergence analyzer both read it.
var metricTable = map[Metric]metricInfo{
	Gini:        {"Gini", LowerIsBetter, func(s Snapshot) float64 { return s.Economy.Gini }},
	Trust:       {"Civic trust", HigherIsBetter, func(s Snapshot) float64 { return s.Economy.CivicTrust }},
	Emissions:   {"Annual emissions", LowerIsBetter, func(s Snapshot) float64 { return s.Climate.AnnualEmissions }},
	Resilience:  {"Resilience", HigherIsBetter, func(s Snapshot) float64 { return s.Climate.ResilienceScore }},
	AIInfluence: {"AI influence", Neutral, func(s Snapshot) float64 { return s.Economy.AIInfluence }},
}

// Metrics lists every metric in display order.
func Metrics() []Metric {
	return []Metric{Gini, Trust, AIInfluence, Emissions, Resilience}
}

// JudgedMetrics lists the metrics that carry a good direction.
func JudgedMetrics() []Metric {
	return []Metric{Gini, Trust, Emissions, Resilience}
}

// Label returns the human-readable metric name.
func (m Metric) Label() string {
	if info, ok := metricTable[m]; ok {
		return info.label
	}
	return string(m)
}

// Direction returns the metric's good direction.
func (m Metric) Direction() Direction {
	return metricTable[m].direction
}

// Value extracts the metric from a snapshot.
func (m Metric) Value(s Snapshot) float64 {
	if info, ok := metricTable[m]; ok {
		return info.value(s)
	}
	return 0
}

// Improved reports whether a signed change in this metric is a change for the better.
// Zero is never an improvement. Neutral metrics never improve.
func (m Metric) Improved(delta float64) bool {
	switch m.Direction() {
	case HigherIsBetter:
		return delta > 0
	case LowerIsBetter:
		return delta < 0
	default:
		return false
	}
}

// #endregion metric
