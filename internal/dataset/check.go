package dataset

import (
	"errors"
	"fmt"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

// Check verifies the cross-scenario invariants the scorer and reports rely
// on: ids are unique, each trajectory is non-empty with exactly one snapshot
// per consecutive year, and every trajectory starts in the same year. It returns every
// violation joined into one error, or nil.
func Check(ds *scenario.Dataset) error {
	if ds == nil {
		return nil
	}

	var errs []error
	seen := make(map[string]bool, len(ds.Scenarios))
	start, haveStart := 0, false

	for _, sc := range ds.Scenarios {
		if seen[sc.ID] {
			errs = append(errs, fmt.Errorf("scenario %s: duplicate id", sc.ID))
		}
		seen[sc.ID] = true

		if len(sc.Trajectory) == 0 {
			errs = append(errs, fmt.Errorf("scenario %s: empty trajectory", sc.ID))
			continue
		}

		first := sc.Trajectory[0].Year
		if !haveStart {
			start, haveStart = first, true
		} else if first != start {
			errs = append(errs, fmt.Errorf("scenario %s: starts in %d, want %d", sc.ID, first, start))
		}

		for i := 1; i < len(sc.Trajectory); i++ {
			prev, cur := sc.Trajectory[i-1].Year, sc.Trajectory[i].Year
			switch {
			case cur <= prev:
				errs = append(errs, fmt.Errorf("scenario %s: year %d at index %d does not follow %d", sc.ID, cur, i, prev))
			case cur != prev+1:
				errs = append(errs, fmt.Errorf("scenario %s: no snapshot between %d and %d", sc.ID, prev, cur))
			}
		}
	}
	return errors.Join(errs...)
}
