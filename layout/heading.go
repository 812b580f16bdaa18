package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/contour/filter"
	"github.com/tsawler/contour/fonts"
	"github.com/tsawler/contour/model"
)

// HeadingConfig holds configuration for heading detection and leveling.
type HeadingConfig struct {
	// MinLen and MaxLen bound heading candidate text.
	// Defaults: 3 and 200
	MinLen int
	MaxLen int

	// TitleOverlapRatio is the fraction of a text's length above which
	// a substring match against the detected title disqualifies it.
	// The check is unanchored and approximate; see package notes.
	// Default: 0.3
	TitleOverlapRatio float64

	// FooterCarveOutLen is the length above which known footer
	// boilerplate may still be considered, provided it sits in the
	// footer band and carries no boilerplate keyword.
	// Default: 30
	FooterCarveOutLen int

	// BandFraction is the footer band used by the carve-out.
	// Default: 0.15
	BandFraction float64

	// LeftAlignRatio accepts blocks starting left of this fraction of
	// the page width.
	// Default: 0.7
	LeftAlignRatio float64

	// CenterWindowRatio accepts blocks starting within this fraction of
	// the page width from the page center.
	// Default: 0.25
	CenterWindowRatio float64

	// MaxShapeWords is the word limit for the "starts uppercase"
	// heading shape.
	// Default: 10
	MaxShapeWords int
}

// DefaultHeadingConfig returns the default heading-detection configuration.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MinLen:            3,
		MaxLen:            200,
		TitleOverlapRatio: 0.3,
		FooterCarveOutLen: 30,
		BandFraction:      0.15,
		LeftAlignRatio:    0.7,
		CenterWindowRatio: 0.25,
		MaxShapeWords:     10,
	}
}

var (
	numberedPrefix   = regexp.MustCompile(`^\d+\.`)
	subsectionPrefix = regexp.MustCompile(`^\d+\.\d+`)
)

// sectionKeywords are section names that mark a block as heading-shaped
// even without numbering.
var sectionKeywords = []string{
	"introduction", "overview", "content", "references",
	"acknowledgements", "history", "outcomes",
}

// canonicalH1Titles are section titles always leveled H1 regardless of
// font size.
var canonicalH1Titles = map[string]bool{
	"Revision History":  true,
	"Table of Contents": true,
	"Acknowledgements":  true,
}

// HeadingClassifier classifies content blocks into leveled headings.
type HeadingClassifier struct {
	config HeadingConfig
}

// NewHeadingClassifier creates a classifier with default configuration.
func NewHeadingClassifier() *HeadingClassifier {
	return &HeadingClassifier{config: DefaultHeadingConfig()}
}

// NewHeadingClassifierWithConfig creates a classifier with custom configuration.
func NewHeadingClassifierWithConfig(config HeadingConfig) *HeadingClassifier {
	return &HeadingClassifier{config: config}
}

// Classify returns the headings found among the blocks, in input order.
// Geometry and font size are carried on each heading for later merging.
func (c *HeadingClassifier) Classify(blocks []model.TextBlock, title string, state *filter.State, stats fonts.Stats) []model.Heading {
	var headings []model.Heading
	for _, block := range blocks {
		if !c.isHeadingCandidate(block, title, state, stats) {
			continue
		}
		headings = append(headings, model.Heading{
			Level:    c.determineLevel(block, stats),
			Text:     CleanHeadingText(block.Text),
			Page:     block.Page,
			Rect:     block.Rect,
			FontSize: block.FontSize,
		})
	}
	return headings
}

// isHeadingCandidate applies every acceptance gate: title overlap,
// length, table content, boilerplate (with the footer carve-out),
// alignment, and visual distinction combined with a heading shape.
func (c *HeadingClassifier) isHeadingCandidate(block model.TextBlock, title string, state *filter.State, stats fonts.Stats) bool {
	text := strings.TrimSpace(block.Text)

	if OverlapsTitle(text, title, c.config.TitleOverlapRatio) {
		return false
	}
	if len(text) < c.config.MinLen || len(text) > c.config.MaxLen {
		return false
	}
	if state.IsTablePattern(text) || state.IsLikelyTableContent(text) {
		return false
	}
	if state.InTableRegion(block) {
		return false
	}

	if state.IsHeaderFooter(text) {
		// Carve-out for substantial footer-area content in unusual
		// layouts: long, positioned in the footer band, and free of
		// boilerplate keywords.
		carveOut := len(text) > c.config.FooterCarveOutLen &&
			block.InBottomBand(c.config.BandFraction) &&
			!filter.ContainsBoilerplateKeyword(text)
		if !carveOut {
			return false
		}
	}

	if !c.isLeftOrCenterAligned(block) {
		return false
	}

	if !stats.HasVisualDistinction(block) {
		return false
	}
	return c.hasHeadingShape(text)
}

// isLeftOrCenterAligned reports whether the block starts in the left
// portion of the page or near the horizontal center.
func (c *HeadingClassifier) isLeftOrCenterAligned(block model.TextBlock) bool {
	if block.PageWidth <= 0 {
		return true
	}
	x := block.Rect.X0
	center := block.PageWidth / 2
	if x < block.PageWidth*c.config.LeftAlignRatio {
		return true
	}
	offset := x - center
	if offset < 0 {
		offset = -offset
	}
	return offset < block.PageWidth*c.config.CenterWindowRatio
}

// hasHeadingShape reports whether the text looks like a heading:
// numbered, a known section name, colon-terminated, or a short
// capitalized phrase.
func (c *HeadingClassifier) hasHeadingShape(text string) bool {
	if numberedPrefix.MatchString(text) || subsectionPrefix.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, keyword := range sectionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	if strings.HasSuffix(text, ":") {
		return true
	}
	r := []rune(text)
	return len(r) > 0 && isUpper(r[0]) && len(strings.Fields(text)) <= c.config.MaxShapeWords
}

// determineLevel assigns H1-H3. Content cues override the font tier:
// subsection numbering means H2, top-level numbering H1, canonical
// section titles H1; everything else takes its level from the font-size
// tier.
func (c *HeadingClassifier) determineLevel(block model.TextBlock, stats fonts.Stats) model.HeadingLevel {
	text := strings.TrimSpace(block.Text)

	if subsectionPrefix.MatchString(text) {
		return model.Level2
	}
	if numberedPrefix.MatchString(text) {
		return model.Level1
	}
	if canonicalH1Titles[text] {
		return model.Level1
	}

	switch stats.SizeLevel(block.FontSize) {
	case 1:
		return model.Level1
	case 2:
		return model.Level2
	default:
		return model.Level3
	}
}

// OverlapsTitle reports whether the text duplicates the detected title:
// exact equality, or a substring relationship in either direction where
// the contained text is at least ratio of the container's length. The
// rule is a heuristic and can suppress headings that share a long
// phrase with the title.
func OverlapsTitle(text, title string, ratio float64) bool {
	text = strings.TrimSpace(text)
	title = strings.TrimSpace(title)
	if text == "" || title == "" {
		return false
	}
	if text == title {
		return true
	}
	if strings.Contains(title, text) && float64(len(text)) >= ratio*float64(len(title)) {
		return true
	}
	if strings.Contains(text, title) && float64(len(title)) >= ratio*float64(len(text)) {
		return true
	}
	return false
}
