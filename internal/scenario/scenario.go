package scenario

// #region lookup
// At returns the snapshot at index, or nil when the index is out of range.
func (s *Scenario) At(index int) *Snapshot {
	if s == nil || index < 0 || index >= len(s.Trajectory) {
		return nil
	}
	return &s.Trajectory[index]
}

// IndexOfYear returns the trajectory position of year, or -1.
func (s *Scenario) IndexOfYear(year int) int {
	if s == nil {
		return -1
	}
	for i := range s.Trajectory {
		if s.Trajectory[i].Year == year {
			return i
		}
	}
	return -1
}

// AtYear returns the snapshot for a calendar year, or nil.
func (s *Scenario) AtYear(year int) *Snapshot {
	return s.At(s.IndexOfYear(year))
}

// Len returns the number of simulated years.
func (s *Scenario) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Trajectory)
}

// Find returns the scenario with the given id, or nil.
func (d *Dataset) Find(id string) *Scenario {
	if d == nil {
		return nil
	}
	for i := range d.Scenarios {
		if d.Scenarios[i].ID == id {
			return &d.Scenarios[i]
		}
	}
	return nil
}

// Baseline returns the first scenario's first snapshot. Every composite score
// and every "vs. baseline" delta is measured against it.
func (d *Dataset) Baseline() *Snapshot {
	if d == nil || len(d.Scenarios) == 0 {
		return nil
	}
	return d.Scenarios[0].At(0)
}

// IDs lists scenario ids in dataset order.
func (d *Dataset) IDs() []string {
	if d == nil {
		return nil
	}
	ids := make([]string, 0, len(d.Scenarios))
	for _, s := range d.Scenarios {
		ids = append(ids, s.ID)
	}
	return ids
}

// #endregion lookup

// Elapsed returns the number of simulated years between baseline and current.
func Elapsed(current, baseline Snapshot) int {
	return current.Year - baseline.Year
}
