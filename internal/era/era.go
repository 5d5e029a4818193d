package era

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

// #region era-type
// Era is a coarse phase of elapsed simulated time. Report tone shifts with it.
type Era string

const (
	Dawn    Era = "dawn"
	Diverge Era = "diverge"
	Mature  Era = "mature"
	Legacy  Era = "legacy"
)

// bounds holds the inclusive upper bound of each era; Legacy is open-ended.
var bounds = []struct {
	era  Era
	last int
}{
	{Dawn, 5},
	{Diverge, 15},
	{Mature, 30},
}

// #endregion era-type

// #region classify
// Classify buckets elapsed years since baseline. Total over all ints: negative
// input (not expected) lands in Dawn.
func Classify(elapsed int) Era {
	for _, b := range bounds {
		if elapsed <= b.last {
			return b.era
		}
	}
	return Legacy
}

// Of classifies the years between baseline and current.
func Of(current, baseline scenario.Snapshot) Era {
	return Classify(scenario.Elapsed(current, baseline))
}

// #endregion classify

// #region helpers
// All lists eras in chronological order.
func All() []Era {
	return []Era{Dawn, Diverge, Mature, Legacy}
}

// Range returns the inclusive elapsed-year span of e. last is -1 for Legacy.
func Range(e Era) (first, last int) {
	first = 0
	for _, b := range bounds {
		if b.era == e {
			return first, b.last
		}
		first = b.last + 1
	}
	return first, -1
}

// Title returns the display name, e.g. "Diverge".
func (e Era) Title() string {
	return cases.Title(language.English).String(string(e))
}

// Valid reports whether e is one of the four eras.
func (e Era) Valid() bool {
	switch e {
	case Dawn, Diverge, Mature, Legacy:
		return true
	}
	return false
}

// #endregion helpers
