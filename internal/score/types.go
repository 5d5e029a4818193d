package score

// #region score-config
// GovernanceConfig parameterizes the AI-governance component. The values are
// heuristics, not calibrated constants.
type GovernanceConfig struct {
	TrustThreshold float64 `yaml:"trust_threshold" json:"trust_threshold" env:"TRUST_THRESHOLD"` // trust considered adequate
	GapMargin      float64 `yaml:"gap_margin" json:"gap_margin" env:"GAP_MARGIN"`                // AI lead over trust tolerated before it counts as a gap
	GapPenalty     float64 `yaml:"gap_penalty" json:"gap_penalty" env:"GAP_PENALTY"`             // weight of the gap against readiness
}

// Config holds scorer parameters.
type Config struct {
	Governance GovernanceConfig `yaml:"governance" json:"governance" envPrefix:"GOVERNANCE_"`
}

// DefaultConfig returns the stock governance constants.
func DefaultConfig() Config {
	return Config{
		Governance: GovernanceConfig{
			TrustThreshold: 0.65,
			GapMargin:      0.1,
			GapPenalty:     2.5,
		},
	}
}

// #endregion score-config

// #region rating
// Rating is the qualitative label attached to a total score.
type Rating string

const (
	Thriving     Rating = "Thriving"
	Promising    Rating = "Promising"
	MixedSignals Rating = "Mixed signals"
	UnderStress  Rating = "Under stress"
	Critical     Rating = "Critical"
)

// ratingBands are inclusive lower bounds, highest first.
var ratingBands = []struct {
	min    int
	rating Rating
}{
	{80, Thriving},
	{65, Promising},
	{50, MixedSignals},
	{35, UnderStress},
}

// RatingFor maps a 0–100 total to its label.
func RatingFor(total int) Rating {
	for _, b := range ratingBands {
		if total >= b.min {
			return b.rating
		}
	}
	return Critical
}

// #endregion rating

// #region breakdown
// Component keys, in breakdown order.
const (
	KeyEquality        = "equality"
	KeyTrust           = "trust"
	KeyResilience      = "resilience"
	KeyDecarbonization = "decarbonization"
	KeyAIGovernance    = "ai_governance"
)

// Component is one normalized sub-score, oriented so 1.0 is best.
type Component struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Explanation string  `json:"explanation"`
}

// Breakdown is the output of Score.
type Breakdown struct {
	Total      int         `json:"total"`
	Rating     Rating      `json:"rating"`
	Components []Component `json:"components"`
}

// Component returns the component with key, or a zero value and false.
func (b *Breakdown) Component(key string) (Component, bool) {
	if b == nil {
		return Component{}, false
	}
	for _, c := range b.Components {
		if c.Key == key {
			return c, true
		}
	}
	return Component{}, false
}

// #endregion breakdown
