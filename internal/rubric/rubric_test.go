package rubric

import "testing"

func TestForLevel_Formula(t *testing.T) {
	cases := []struct {
		level     int
		wantWords int
		wantChars int
		wantConn  bool
		wantBe    bool
	}{
		{1, 4, 32, false, false},
		{2, 5, 44, false, true},
		{5, 8, 80, false, true},
		{6, 9, 92, true, true},
		{10, 13, 140, true, true},
		{15, 13, 140, true, true}, // clamped to 10
		{0, 4, 32, false, false},  // clamped to 1
	}
	for _, c := range cases {
		r := ForLevel(c.level)
		if r.MinWords != c.wantWords {
			t.Errorf("level %d: MinWords = %d, want %d", c.level, r.MinWords, c.wantWords)
		}
		if r.MinChars != c.wantChars {
			t.Errorf("level %d: MinChars = %d, want %d", c.level, r.MinChars, c.wantChars)
		}
		if r.RequireConnector != c.wantConn {
			t.Errorf("level %d: RequireConnector = %v", c.level, r.RequireConnector)
		}
		if r.RequireBe != c.wantBe {
			t.Errorf("level %d: RequireBe = %v", c.level, r.RequireBe)
		}
	}
}

func TestForLevel_Monotonic(t *testing.T) {
	prev := ForLevel(MinLevel)
	for level := MinLevel + 1; level <= MaxLevel; level++ {
		r := ForLevel(level)
		if r.MinWords < prev.MinWords || r.MinChars < prev.MinChars {
			t.Errorf("rubric not monotonic at level %d", level)
		}
		if prev.RequireConnector && !r.RequireConnector {
			t.Errorf("RequireConnector dropped at level %d", level)
		}
		if prev.RequireBe && !r.RequireBe {
			t.Errorf("RequireBe dropped at level %d", level)
		}
		prev = r
	}
}
