// Package fonts derives the document's typographic baseline: the body
// font, the descending size hierarchy above it, and the queries the
// heading classifier uses to judge whether a block stands out.
package fonts

import (
	"sort"

	"github.com/tsawler/contour/model"
)

// Fallback values used when no content blocks survive filtering.
const (
	FallbackBodyFontSize   = 12.0
	FallbackBodyFontFamily = "Arial"
)

// Stats is the per-document font baseline, computed once after content
// filtering and immutable thereafter.
type Stats struct {
	// BodyFontSize is the most frequent font size among accepted
	// content blocks.
	BodyFontSize float64

	// BodyFontFamily is the most frequent font family.
	BodyFontFamily string

	// SizeHierarchy lists the distinct sizes greater than BodyFontSize
	// in descending order, followed by BodyFontSize itself.
	SizeHierarchy []float64
}

// DefaultStats returns the fallback statistics for a document with no
// accepted content.
func DefaultStats() Stats {
	return Stats{
		BodyFontSize:   FallbackBodyFontSize,
		BodyFontFamily: FallbackBodyFontFamily,
	}
}

// Analyze computes font statistics from the blocks the content filter
// accepted. An empty input yields DefaultStats.
func Analyze(blocks []model.TextBlock) Stats {
	if len(blocks) == 0 {
		return DefaultStats()
	}

	sizeCounts := make(map[float64]int)
	familyCounts := make(map[string]int)
	for _, block := range blocks {
		sizeCounts[block.FontSize]++
		familyCounts[block.FontName]++
	}

	bodySize := mostFrequentSize(sizeCounts)
	bodyFamily := mostFrequentFamily(familyCounts)

	var heading []float64
	for size := range sizeCounts {
		if size > bodySize {
			heading = append(heading, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(heading)))

	return Stats{
		BodyFontSize:   bodySize,
		BodyFontFamily: bodyFamily,
		SizeHierarchy:  append(heading, bodySize),
	}
}

// mostFrequentSize breaks count ties toward the smaller size so a
// deterministic baseline comes out of equal-frequency documents.
func mostFrequentSize(counts map[float64]int) float64 {
	best := 0.0
	bestCount := -1
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	return best
}

// mostFrequentFamily breaks count ties lexicographically.
func mostFrequentFamily(counts map[string]int) string {
	best := ""
	bestCount := -1
	for family, count := range counts {
		if count > bestCount || (count == bestCount && family < best) {
			best = family
			bestCount = count
		}
	}
	return best
}

// HasVisualDistinction reports whether the block differs from body
// text: bold, italic, strictly larger, or a different font family.
func (s Stats) HasVisualDistinction(block model.TextBlock) bool {
	return block.IsBold() ||
		block.IsItalic() ||
		block.FontSize > s.BodyFontSize ||
		block.FontName != s.BodyFontFamily
}

// SizeLevel maps a font size to a heading tier: 1 when clearly above
// the body baseline, 2 when merely above it, 3 otherwise. The two-unit
// margin tolerates minor size jitter around the baseline; this is not
// an index into SizeHierarchy.
func (s Stats) SizeLevel(size float64) int {
	switch {
	case size > s.BodyFontSize+2:
		return 1
	case size > s.BodyFontSize:
		return 2
	default:
		return 3
	}
}
