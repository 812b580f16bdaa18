package fonts

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func makeBlock(size float64, family string) model.TextBlock {
	return model.TextBlock{
		Text:     "content block",
		FontSize: size,
		FontName: family,
	}
}

func TestAnalyzeFindsBodyBaseline(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock(11, "Helvetica"),
		makeBlock(11, "Helvetica"),
		makeBlock(11, "Helvetica"),
		makeBlock(16, "Helvetica-Bold"),
		makeBlock(14, "Helvetica-Bold"),
	}

	stats := Analyze(blocks)
	if stats.BodyFontSize != 11 {
		t.Errorf("BodyFontSize = %v, want 11", stats.BodyFontSize)
	}
	if stats.BodyFontFamily != "Helvetica" {
		t.Errorf("BodyFontFamily = %q, want Helvetica", stats.BodyFontFamily)
	}
}

func TestAnalyzeHierarchyDescendsToBody(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock(11, "Helvetica"),
		makeBlock(11, "Helvetica"),
		makeBlock(14, "Helvetica"),
		makeBlock(18, "Helvetica"),
		makeBlock(14, "Helvetica"),
	}

	stats := Analyze(blocks)
	want := []float64{18, 14, 11}
	if len(stats.SizeHierarchy) != len(want) {
		t.Fatalf("SizeHierarchy = %v, want %v", stats.SizeHierarchy, want)
	}
	for i, size := range want {
		if stats.SizeHierarchy[i] != size {
			t.Errorf("SizeHierarchy[%d] = %v, want %v", i, stats.SizeHierarchy[i], size)
		}
	}
}

func TestAnalyzeEmptyFallsBack(t *testing.T) {
	stats := Analyze(nil)
	if stats.BodyFontSize != FallbackBodyFontSize {
		t.Errorf("BodyFontSize = %v, want %v", stats.BodyFontSize, FallbackBodyFontSize)
	}
	if stats.BodyFontFamily != FallbackBodyFontFamily {
		t.Errorf("BodyFontFamily = %q, want %q", stats.BodyFontFamily, FallbackBodyFontFamily)
	}
	if len(stats.SizeHierarchy) != 0 {
		t.Errorf("SizeHierarchy = %v, want empty", stats.SizeHierarchy)
	}
}

func TestHasVisualDistinction(t *testing.T) {
	stats := Stats{BodyFontSize: 11, BodyFontFamily: "Helvetica"}

	tests := []struct {
		name  string
		block model.TextBlock
		want  bool
	}{
		{"body text", model.TextBlock{FontSize: 11, FontName: "Helvetica"}, false},
		{"bold", model.TextBlock{FontSize: 11, FontName: "Helvetica", Flags: model.StyleBold}, true},
		{"italic", model.TextBlock{FontSize: 11, FontName: "Helvetica", Flags: model.StyleItalic}, true},
		{"larger", model.TextBlock{FontSize: 12, FontName: "Helvetica"}, true},
		{"smaller", model.TextBlock{FontSize: 9, FontName: "Helvetica"}, false},
		{"different family", model.TextBlock{FontSize: 11, FontName: "Courier"}, true},
	}

	for _, tt := range tests {
		if got := stats.HasVisualDistinction(tt.block); got != tt.want {
			t.Errorf("%s: HasVisualDistinction() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSizeLevelTiers(t *testing.T) {
	stats := Stats{BodyFontSize: 11}

	tests := []struct {
		size float64
		want int
	}{
		{18, 1},
		{13.5, 1},
		{13, 2}, // within the two-unit jitter margin
		{11.5, 2},
		{11, 3},
		{9, 3},
	}

	for _, tt := range tests {
		if got := stats.SizeLevel(tt.size); got != tt.want {
			t.Errorf("SizeLevel(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestSizeLevelMonotonic(t *testing.T) {
	stats := Stats{BodyFontSize: 11}

	sizes := []float64{11.1, 11.5, 12, 12.9, 13.1, 14, 20, 36}
	for i := 1; i < len(sizes); i++ {
		smaller, larger := sizes[i-1], sizes[i]
		if stats.SizeLevel(larger) > stats.SizeLevel(smaller) {
			t.Errorf("SizeLevel(%v) = %d exceeds SizeLevel(%v) = %d",
				larger, stats.SizeLevel(larger), smaller, stats.SizeLevel(smaller))
		}
	}
}
