package layout

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func makeHeading(text string, page int, level model.HeadingLevel, y0, y1 float64) model.Heading {
	return model.Heading{
		Level:    level,
		Text:     text,
		Page:     page,
		Rect:     model.NewRect(72, y0, 400, y1),
		FontSize: 14,
	}
}

func TestMergeJoinsWrappedHeading(t *testing.T) {
	headings := []model.Heading{
		makeHeading("Understanding the Architecture of", 2, model.Level1, 100, 115),
		makeHeading("Distributed Storage Systems", 2, model.Level1, 120, 135),
		makeHeading("3. Deployment", 3, model.Level1, 100, 115),
	}

	merged := NewMerger().Merge(headings)
	if len(merged) != 2 {
		t.Fatalf("got %d headings, want 2", len(merged))
	}
	want := "Understanding the Architecture of Distributed Storage Systems"
	if merged[0].Text != want {
		t.Errorf("merged text = %q, want %q", merged[0].Text, want)
	}
	if merged[0].Rect.Y1 != 135 {
		t.Errorf("merged rect Y1 = %v, want union bottom 135", merged[0].Rect.Y1)
	}
	if merged[1].Text != "3. Deployment" {
		t.Errorf("merged[1] = %q, want untouched heading", merged[1].Text)
	}
}

func TestMergeRefusals(t *testing.T) {
	base := makeHeading("Understanding the Architecture of", 2, model.Level1, 100, 115)

	tests := []struct {
		name   string
		second model.Heading
	}{
		{"different page", makeHeading("Distributed Storage Systems", 3, model.Level1, 120, 135)},
		{"different level", makeHeading("Distributed Storage Systems", 2, model.Level2, 120, 135)},
		{"gap too large", makeHeading("Distributed Storage Systems", 2, model.Level1, 160, 175)},
	}

	m := NewMerger()
	for _, tt := range tests {
		merged := m.Merge([]model.Heading{base, tt.second})
		if len(merged) != 2 {
			t.Errorf("%s: got %d headings, want 2 unmerged", tt.name, len(merged))
		}
	}
}

func TestMergeRefusesSentenceEnd(t *testing.T) {
	headings := []model.Heading{
		makeHeading("This line ends the thought.", 2, model.Level1, 100, 115),
		makeHeading("Distributed Storage Systems", 2, model.Level1, 120, 135),
	}

	merged := NewMerger().Merge(headings)
	if len(merged) != 2 {
		t.Errorf("got %d headings, want 2 unmerged", len(merged))
	}
}

func TestMergeRefusesLongCombination(t *testing.T) {
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'a'
	}
	headings := []model.Heading{
		makeHeading("A"+string(long), 2, model.Level1, 100, 115),
		makeHeading("B"+string(long), 2, model.Level1, 120, 135),
	}

	merged := NewMerger().Merge(headings)
	if len(merged) != 2 {
		t.Errorf("got %d headings, want 2 unmerged", len(merged))
	}
}

func TestValidateDropsNoise(t *testing.T) {
	state := buildState(nil)
	headings := []model.Heading{
		makeHeading("Testing Procedures", 2, model.Level1, 100, 115),
		makeHeading("ab", 2, model.Level2, 200, 215),
		makeHeading("1.2 3.4", 2, model.Level2, 300, 315),
		makeHeading("Software Quality Handbook", 2, model.Level1, 400, 415),
	}

	valid := NewMerger().Validate(headings, "Software Quality Handbook", state)
	if len(valid) != 1 {
		t.Fatalf("got %d headings, want 1", len(valid))
	}
	if valid[0].Text != "Testing Procedures" {
		t.Errorf("kept %q, want %q", valid[0].Text, "Testing Procedures")
	}
}

func TestValidateRecleansText(t *testing.T) {
	headings := []model.Heading{
		makeHeading("Overview  of   Systems.", 2, model.Level1, 100, 115),
	}

	valid := NewMerger().Validate(headings, "", buildState(nil))
	if len(valid) != 1 {
		t.Fatalf("got %d headings, want 1", len(valid))
	}
	if valid[0].Text != "Overview of Systems" {
		t.Errorf("text = %q, want re-cleaned form", valid[0].Text)
	}
}

func TestCleanHeadingText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Spaced   Out  ", "Spaced Out"},
		{"• Bullet Heading", "Bullet Heading"},
		{"- Dashed Item", "Dashed Item"},
		{"Overview of Systems.", "Overview of Systems"},
		{"Introduction.", "Introduction."},
		{"Ends with Etc.", "Ends with Etc."},
		{"1. Introduction", "1. Introduction"},
	}

	for _, tt := range tests {
		if got := CleanHeadingText(tt.in); got != tt.want {
			t.Errorf("CleanHeadingText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
