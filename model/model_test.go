package model

import "testing"

func TestRectUnion(t *testing.T) {
	a := NewRect(10, 20, 100, 40)
	b := NewRect(5, 35, 90, 60)

	got := a.Union(b)
	want := NewRect(5, 20, 100, 60)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fully inside", NewRect(10, 10, 90, 90), true},
		{"equal", NewRect(0, 0, 100, 100), true},
		{"poking out right", NewRect(50, 50, 110, 90), false},
		{"fully outside", NewRect(200, 200, 300, 300), false},
	}

	for _, tt := range tests {
		if got := outer.ContainsRect(tt.inner); got != tt.want {
			t.Errorf("%s: ContainsRect() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 10, 20, 20).Expand(5)
	want := NewRect(5, 5, 25, 25)
	if r != want {
		t.Errorf("Expand(5) = %+v, want %+v", r, want)
	}

	outer := NewRect(10, 10, 20, 20).Expand(5)
	inner := NewRect(8, 8, 22, 22)
	if !outer.ContainsRect(inner) {
		t.Error("expanded rect should contain slightly larger rect")
	}
}

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if r.CenterX() != 60 {
		t.Errorf("CenterX() = %v, want 60", r.CenterX())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty rect")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("IsEmpty() = false for zero rect")
	}
}

func TestStyleFlags(t *testing.T) {
	tests := []struct {
		flags  StyleFlags
		bold   bool
		italic bool
	}{
		{0, false, false},
		{StyleBold, true, false},
		{StyleItalic, false, true},
		{StyleBold | StyleItalic, true, true},
	}

	for _, tt := range tests {
		if got := tt.flags.IsBold(); got != tt.bold {
			t.Errorf("StyleFlags(%d).IsBold() = %v, want %v", tt.flags, got, tt.bold)
		}
		if got := tt.flags.IsItalic(); got != tt.italic {
			t.Errorf("StyleFlags(%d).IsItalic() = %v, want %v", tt.flags, got, tt.italic)
		}
	}
}

func TestHeadingLevelString(t *testing.T) {
	tests := []struct {
		level    HeadingLevel
		expected string
	}{
		{LevelUnknown, "unknown"},
		{Level1, "H1"},
		{Level2, "H2"},
		{Level3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("HeadingLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestHeadingLevelValid(t *testing.T) {
	if LevelUnknown.Valid() {
		t.Error("LevelUnknown should not be valid")
	}
	if HeadingLevel(4).Valid() {
		t.Error("level beyond H3 should not be valid")
	}
	for _, l := range []HeadingLevel{Level1, Level2, Level3} {
		if !l.Valid() {
			t.Errorf("%s should be valid", l)
		}
	}
}

func TestTextBlockBands(t *testing.T) {
	block := TextBlock{
		Rect:       NewRect(50, 700, 300, 720),
		PageHeight: 800,
	}
	if block.InTopBand(0.15) {
		t.Error("block near bottom reported in top band")
	}
	if !block.InBottomBand(0.15) {
		t.Error("block at y=700 of 800 should be in bottom 15%")
	}

	header := TextBlock{
		Rect:       NewRect(50, 20, 300, 40),
		PageHeight: 800,
	}
	if !header.InTopBand(0.15) {
		t.Error("block at y=20 of 800 should be in top 15%")
	}
	if header.InBottomBand(0.15) {
		t.Error("block near top reported in bottom band")
	}
}
