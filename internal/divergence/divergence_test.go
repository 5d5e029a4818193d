package divergence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

func snap(year int, gini, trust, emissions, resilience float64) scenario.Snapshot {
	return scenario.Snapshot{
		Year:    year,
		Economy: scenario.Economy{Gini: gini, CivicTrust: trust, AIInfluence: 0.3},
		Climate: scenario.Climate{AnnualEmissions: emissions, ResilienceScore: resilience},
	}
}

func TestCompareJudgesByDirection(t *testing.T) {
	a := snap(2040, 0.30, 0.40, 20, 0.6)
	b := snap(2040, 0.40, 0.55, 45, 0.4)

	deltas := Compare(&a, &b)
	require.Len(t, deltas, 4)

	gini, ok := Find(deltas, scenario.Gini)
	require.True(t, ok)
	assert.InDelta(t, -0.10, gini.Delta, 1e-9)
	assert.True(t, gini.Good, "lower gini is better")

	trust, ok := Find(deltas, scenario.Trust)
	require.True(t, ok)
	assert.InDelta(t, -0.15, trust.Delta, 1e-9)
	assert.False(t, trust.Good, "lower trust is worse")

	emissions, _ := Find(deltas, scenario.Emissions)
	assert.True(t, emissions.Good)

	resilience, _ := Find(deltas, scenario.Resilience)
	assert.True(t, resilience.Good)

	_, ok = Find(deltas, scenario.AIInfluence)
	assert.False(t, ok, "ai influence carries no good direction")
}

func TestCompareMissingSnapshot(t *testing.T) {
	a := snap(2040, 0.3, 0.4, 20, 0.6)
	assert.Nil(t, Compare(&a, nil))
	assert.Nil(t, Compare(nil, &a))
}

func TestCompareAtShorterTrajectory(t *testing.T) {
	long := &scenario.Scenario{ID: "a", Trajectory: []scenario.Snapshot{
		snap(2026, 0.4, 0.5, 50, 0.3), snap(2027, 0.39, 0.51, 48, 0.31),
	}}
	short := &scenario.Scenario{ID: "b", Trajectory: []scenario.Snapshot{
		snap(2026, 0.4, 0.5, 50, 0.3),
	}}

	assert.NotNil(t, CompareAt(long, short, 0))
	assert.Nil(t, CompareAt(long, short, 1))
}

func TestOverlayMatchesByYear(t *testing.T) {
	a := &scenario.Scenario{Trajectory: []scenario.Snapshot{
		snap(2026, 0.4, 0.5, 50, 0.3),
		snap(2027, 0.38, 0.52, 47, 0.33),
		snap(2028, 0.36, 0.54, 44, 0.36),
	}}
	b := &scenario.Scenario{Trajectory: []scenario.Snapshot{
		snap(2026, 0.4, 0.5, 50, 0.3),
		snap(2027, 0.41, 0.49, 51, 0.29),
	}}

	rows := Overlay(a, b)
	require.Len(t, rows, 2)
	assert.Equal(t, 2027, rows[1].Year)
	assert.Equal(t, 1, rows[1].Index)

	good, bad := Tally(rows[1].Deltas)
	assert.Equal(t, 4, good)
	assert.Equal(t, 0, bad)

	good, bad = Tally(rows[0].Deltas)
	assert.Zero(t, good)
	assert.Zero(t, bad, "identical years are neither good nor bad")
}

func TestZeroDeltaNotGood(t *testing.T) {
	a := snap(2030, 0.35, 0.5, 30, 0.5)
	for _, d := range Compare(&a, &a) {
		assert.False(t, d.Good, d.Label)
		assert.Zero(t, math.Abs(d.Delta))
	}
}
