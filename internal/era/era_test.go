package era

import (
	"testing"

	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		elapsed int
		want    Era
	}{
		{0, Dawn},
		{5, Dawn},
		{6, Diverge},
		{15, Diverge},
		{16, Mature},
		{30, Mature},
		{31, Legacy},
		{50, Legacy},
		{-3, Dawn},
	}
	for _, c := range cases {
		if got := Classify(c.elapsed); got != c.want {
			t.Errorf("Classify(%d) = %s, want %s", c.elapsed, got, c.want)
		}
	}
}

func TestOfUsesYearDifference(t *testing.T) {
	base := scenario.Snapshot{Year: 2026}
	cur := scenario.Snapshot{Year: 2041}
	if got := Of(cur, base); got != Diverge {
		t.Fatalf("expected diverge, got %s", got)
	}
}

func TestRange(t *testing.T) {
	cases := []struct {
		e           Era
		first, last int
	}{
		{Dawn, 0, 5},
		{Diverge, 6, 15},
		{Mature, 16, 30},
		{Legacy, 31, -1},
	}
	for _, c := range cases {
		first, last := Range(c.e)
		if first != c.first || last != c.last {
			t.Errorf("Range(%s) = (%d,%d), want (%d,%d)", c.e, first, last, c.first, c.last)
		}
	}
}

func TestTitleAndValid(t *testing.T) {
	if Mature.Title() != "Mature" {
		t.Fatalf("unexpected title %q", Mature.Title())
	}
	for _, e := range All() {
		if !e.Valid() {
			t.Fatalf("%s should be valid", e)
		}
	}
	if Era("epilogue").Valid() {
		t.Fatal("unknown era should be invalid")
	}
}
