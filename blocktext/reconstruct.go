// Package blocktext reconstructs normalized text blocks from the raw
// span and line groups produced by the page-text extraction service.
//
// Each raw block group becomes at most one [model.TextBlock]: span text
// is concatenated left to right with spaces inserted across visible
// gaps, lines are joined with single spaces (so headings that wrap
// across lines come back as one logical string), and one representative
// span lends the block its font size, family and style flags.
package blocktext

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/contour/model"
)

// Config holds configuration for block reconstruction.
type Config struct {
	// SpanGap is the horizontal distance, in layout units, between the
	// end of one span and the start of the next beyond which a space is
	// inserted if none is present.
	// Default: 3.0
	SpanGap float64

	// BoldBonus and SizeWeight tune representative-span selection: each
	// candidate span scores its text length, plus BoldBonus if bold,
	// plus SizeWeight times its font size.
	// Defaults: 100 and 2.0
	BoldBonus  float64
	SizeWeight float64
}

// DefaultConfig returns the default reconstruction configuration.
func DefaultConfig() Config {
	return Config{
		SpanGap:    3.0,
		BoldBonus:  100,
		SizeWeight: 2.0,
	}
}

// Reconstructor turns raw extractor output into text blocks.
type Reconstructor struct {
	config Config
}

// NewReconstructor creates a reconstructor with default configuration.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{config: DefaultConfig()}
}

// NewReconstructorWithConfig creates a reconstructor with custom configuration.
func NewReconstructorWithConfig(config Config) *Reconstructor {
	return &Reconstructor{config: config}
}

// Reconstruct converts every raw block on every page into a TextBlock.
// Blocks with no extractable text are dropped.
func (r *Reconstructor) Reconstruct(pages []model.PageBlocks) []model.TextBlock {
	var blocks []model.TextBlock
	for _, page := range pages {
		for _, group := range page.Blocks {
			if block, ok := r.reconstructBlock(group, page.Page); ok {
				blocks = append(blocks, block)
			}
		}
	}
	return blocks
}

// reconstructBlock assembles one block group into a TextBlock. The
// second return value is false when the group yields no text.
func (r *Reconstructor) reconstructBlock(group model.BlockGroup, page model.PageInfo) (model.TextBlock, bool) {
	var lines []string
	for _, line := range group.Lines {
		if text := r.reconstructLine(line); text != "" {
			lines = append(lines, text)
		}
	}

	text := normalizeText(strings.Join(lines, " "))
	if text == "" {
		return model.TextBlock{}, false
	}

	rep, ok := representativeSpan(group, r.config)
	if !ok {
		return model.TextBlock{}, false
	}

	return model.TextBlock{
		Text:       text,
		Page:       page.Number,
		Rect:       groupBounds(group),
		PageWidth:  page.Width,
		PageHeight: page.Height,
		FontSize:   roundFontSize(rep.FontSize),
		FontName:   rep.FontName,
		Flags:      rep.Flags,
	}, true
}

// reconstructLine concatenates a line's spans in left-to-right order,
// inserting a space wherever the gap between consecutive spans exceeds
// SpanGap and no space is already present.
func (r *Reconstructor) reconstructLine(line model.Line) string {
	spans := make([]model.Span, len(line.Spans))
	copy(spans, line.Spans)
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Rect.X0 < spans[j].Rect.X0
	})

	var sb strings.Builder
	prevEnd := math.Inf(-1)
	for i, span := range spans {
		if i > 0 && span.Rect.X0-prevEnd > r.config.SpanGap {
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(span.Text)
		prevEnd = span.Rect.X1
	}
	return strings.TrimSpace(sb.String())
}

// representativeSpan picks the span that characterizes the block's
// typography: among non-empty spans, the one maximizing text length plus
// a bold bonus plus a font-size weight. If every span is empty the first
// span is returned.
func representativeSpan(group model.BlockGroup, config Config) (model.Span, bool) {
	var all []model.Span
	for _, line := range group.Lines {
		all = append(all, line.Spans...)
	}
	if len(all) == 0 {
		return model.Span{}, false
	}

	best := model.Span{}
	bestScore := math.Inf(-1)
	found := false
	for _, span := range all {
		if strings.TrimSpace(span.Text) == "" {
			continue
		}
		score := float64(len(strings.TrimSpace(span.Text)))
		if span.Flags.IsBold() {
			score += config.BoldBonus
		}
		score += config.SizeWeight * span.FontSize
		if score > bestScore {
			bestScore = score
			best = span
			found = true
		}
	}
	if !found {
		return all[0], true
	}
	return best, true
}

// groupBounds computes the union of every span rectangle in the group.
func groupBounds(group model.BlockGroup) model.Rect {
	var bounds model.Rect
	first := true
	for _, line := range group.Lines {
		for _, span := range line.Spans {
			if first {
				bounds = span.Rect
				first = false
				continue
			}
			bounds = bounds.Union(span.Rect)
		}
	}
	return bounds
}

// normalizeText applies NFKC normalization and collapses runs of
// whitespace to single spaces.
func normalizeText(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// roundFontSize rounds a size to one decimal so floating noise from the
// extractor does not create spurious hierarchy levels.
func roundFontSize(size float64) float64 {
	return math.Round(size*10) / 10
}
