package vec

import "testing"

func TestDirectionStringRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		dir  Direction
		want string
	}{
		{"no direction", NoDir, "NO_DIR"},
		{"up", Up, "UP"},
		{"down", Down, "DOWN"},
		{"left", Left, "LEFT"},
		{"right", Right, "RIGHT"},
		{"diagonal left-up", DLUp, "DLUP"},
		{"diagonal right-up", DRUp, "DRUP"},
		{"diagonal left-down", DLDown, "DLDOWN"},
		{"diagonal right-down", DRDown, "DRDOWN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.dir.String(); got != c.want {
				t.Errorf("String() = %q; want %q", got, c.want)
			}
			if got := ParseDirection(c.want); got != c.dir {
				t.Errorf("ParseDirection(%q) = %v; want %v", c.want, got, c.dir)
			}
		})
	}
}

func TestParseDirectionUnknown(t *testing.T) {
	if got := ParseDirection("SIDEWAYS"); got != NoDir {
		t.Errorf("ParseDirection(unknown) = %v; want NoDir", got)
	}
}

func TestVector2DAddSubRound(t *testing.T) {
	a := New(1.005, 2.004)
	b := New(0.003, 0.001)

	sum := a.Add(b)
	if sum.Row != 1.01 || sum.Column != 2.01 {
		t.Errorf("Add = (%v, %v); want (1.01, 2.01)", sum.Row, sum.Column)
	}

	diff := a.Sub(b)
	if diff.Row != 1.0 || diff.Column != 2.0 {
		t.Errorf("Sub = (%v, %v); want (1.0, 2.0)", diff.Row, diff.Column)
	}
}

func TestVector2DScale(t *testing.T) {
	v := New(1, 2).Scale(3)
	if v.Row != 3 || v.Column != 6 {
		t.Errorf("Scale = (%v, %v); want (3, 6)", v.Row, v.Column)
	}
}

func TestVector2DLengthAndUnit(t *testing.T) {
	v := New(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v; want 5", got)
	}
	u := v.Unit()
	if u.Row != 0.6 || u.Column != 0.8 {
		t.Errorf("Unit() = (%v, %v); want (0.6, 0.8)", u.Row, u.Column)
	}
}

func TestVector2DUnitZeroVector(t *testing.T) {
	v := New(0, 0)
	u := v.Unit()
	if u.Row != 0 || u.Column != 0 {
		t.Errorf("Unit() of zero vector = (%v, %v); want (0, 0)", u.Row, u.Column)
	}
}

func TestVector2DRoundedInts(t *testing.T) {
	r, c := New(1.6, -1.6).RoundedInts()
	if r != 2 || c != -2 {
		t.Errorf("RoundedInts() = (%d, %d); want (2, -2)", r, c)
	}
}

func TestFromDirection(t *testing.T) {
	cases := []struct {
		name       string
		dir        Direction
		step       int
		wantRow    float64
		wantColumn float64
	}{
		{"up by 2", Up, 2, -2, 0},
		{"right by 3", Right, 3, 0, 3},
		{"diagonal left-down by 1", DLDown, 1, 1, -1},
		{"no direction", NoDir, 5, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := FromDirection(c.dir, c.step)
			if v.Row != c.wantRow || v.Column != c.wantColumn {
				t.Errorf("FromDirection(%v, %d) = (%v, %v); want (%v, %v)",
					c.dir, c.step, v.Row, v.Column, c.wantRow, c.wantColumn)
			}
		})
	}
}

func TestMathIntersect(t *testing.T) {
	m := Math{}
	cases := []struct {
		name                           string
		r1, c1, w1, h1, r2, c2, w2, h2 int
		want                           bool
	}{
		{"identical rects", 0, 0, 5, 5, 0, 0, 5, 5, true},
		{"touching corners", 0, 0, 2, 2, 1, 1, 2, 2, true},
		{"disjoint", 0, 0, 2, 2, 10, 10, 2, 2, false},
		{"contained", 0, 0, 10, 10, 2, 2, 3, 3, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := m.Intersect(c.r1, c.c1, c.w1, c.h1, c.r2, c.c2, c.w2, c.h2)
			if got != c.want {
				t.Errorf("Intersect() = %v; want %v", got, c.want)
			}
		})
	}
}

func TestMathDistance(t *testing.T) {
	m := Math{}
	if got := m.Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance() = %v; want 5", got)
	}
}
