package scenario

// #region snapshot
// Economy holds the economic block of a yearly snapshot.
type Economy struct {
	Gini        float64 `json:"gini"`         // 0–1, lower is more equal
	CivicTrust  float64 `json:"civic_trust"`  // 0–1
	AIInfluence float64 `json:"ai_influence"` // 0–1, degree of automation
}

// Climate holds the climate block of a yearly snapshot.
type Climate struct {
	AnnualEmissions float64 `json:"annual_emissions"` // Gt CO2e, unbounded
	ResilienceScore float64 `json:"resilience_score"` // 0–1
}

// Snapshot is one simulated year of one scenario.
type Snapshot struct {
	Year    int     `json:"year"`
	Economy Economy `json:"economy"`
	Climate Climate `json:"climate"`
}

// #endregion snapshot

// #region scenario
// Branch carries the policy levers that distinguish one scenario from another.
// They are interpolated into report text only and never feed the score.
type Branch struct {
	CivicDividendRate float64 `json:"civic_dividend_rate"`
	AICharterEnabled  bool    `json:"ai_charter_enabled"`
	ClimateCapexShare float64 `json:"climate_capex_share"`
}

// Scenario is a named, pre-computed policy path.
type Scenario struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color,omitempty"`
	Description string     `json:"description"`
	Branch      Branch     `json:"branch"`
	Trajectory  []Snapshot `json:"trajectory"`
}

// Dataset is the fully materialized input document.
type Dataset struct {
	Scenarios []Scenario `json:"scenarios"`
}

// #endregion scenario

// Well-known scenario identifiers shipped with the dataset.
const (
	StatusQuo  = "status_quo"
	Moderate   = "moderate"
	Aggressive = "aggressive"
	WorstCase  = "worst_case"
)
