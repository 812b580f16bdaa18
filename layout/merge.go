package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/contour/filter"
	"github.com/tsawler/contour/model"
)

// MergeConfig holds configuration for heading merging and final
// validation.
type MergeConfig struct {
	// MaxGap is the largest vertical gap, in layout units, between the
	// bottom of one heading and the top of the next for them to merge.
	// Default: 30.0
	MaxGap float64

	// MaxCombinedLen bounds the merged text.
	// Default: 150
	MaxCombinedLen int

	// MinLen and MaxLen bound cleaned heading text in the final pass.
	// Defaults: 3 and 200
	MinLen int
	MaxLen int

	// TitleOverlapRatio duplicates the classifier's overlap rule for
	// the final pass.
	// Default: 0.3
	TitleOverlapRatio float64
}

// DefaultMergeConfig returns the default merge configuration.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		MaxGap:            30.0,
		MaxCombinedLen:    150,
		MinLen:            3,
		MaxLen:            200,
		TitleOverlapRatio: 0.3,
	}
}

// Merger joins split multi-line headings and runs the final sanity pass.
type Merger struct {
	config MergeConfig
}

// NewMerger creates a merger with default configuration.
func NewMerger() *Merger {
	return &Merger{config: DefaultMergeConfig()}
}

// NewMergerWithConfig creates a merger with custom configuration.
func NewMergerWithConfig(config MergeConfig) *Merger {
	return &Merger{config: config}
}

// Merge joins adjacent heading pairs that are really one wrapped
// heading: same page and level, vertically close, the first not
// sentence-terminated, and a reasonable combined length. The merged
// heading keeps the first fragment's level and page.
func (m *Merger) Merge(headings []model.Heading) []model.Heading {
	if len(headings) == 0 {
		return nil
	}

	var merged []model.Heading
	for i := 0; i < len(headings); i++ {
		current := headings[i]
		if i+1 < len(headings) && m.shouldMerge(current, headings[i+1]) {
			next := headings[i+1]
			current.Text = strings.TrimSpace(current.Text + " " + next.Text)
			current.Rect = current.Rect.Union(next.Rect)
			i++
		}
		merged = append(merged, current)
	}
	return merged
}

// shouldMerge applies the pairwise merge criteria.
func (m *Merger) shouldMerge(first, second model.Heading) bool {
	if first.Page != second.Page || first.Level != second.Level {
		return false
	}
	if second.Rect.Y0-first.Rect.Y1 > m.config.MaxGap {
		return false
	}
	if strings.HasSuffix(strings.TrimRight(first.Text, " "), ".") {
		return false
	}
	return len(first.Text)+len(second.Text) <= m.config.MaxCombinedLen
}

// Validate is the final safety pass, independent of the stage logic:
// it re-cleans each heading and drops any that is too short or long,
// table-shaped, or a duplicate of the title.
func (m *Merger) Validate(headings []model.Heading, title string, state *filter.State) []model.Heading {
	var valid []model.Heading
	for _, heading := range headings {
		text := CleanHeadingText(heading.Text)
		if len(text) < m.config.MinLen || len(text) > m.config.MaxLen {
			continue
		}
		if state.IsLikelyTableContent(text) {
			continue
		}
		if OverlapsTitle(text, title, m.config.TitleOverlapRatio) {
			continue
		}
		heading.Text = text
		valid = append(valid, heading)
	}
	return valid
}

// leadingBullets strips bullet glyphs and surrounding space from the
// front of a heading.
var leadingBullets = regexp.MustCompile(`^[•\-*+►▪▫◦‣⁃\s]+`)

// CleanHeadingText collapses whitespace, strips leading bullet glyphs,
// and removes a single trailing period unless the text is one word or
// the final word is short enough to be an abbreviation.
func CleanHeadingText(text string) string {
	cleaned := strings.Join(strings.Fields(text), " ")
	cleaned = leadingBullets.ReplaceAllString(cleaned, "")

	if strings.HasSuffix(cleaned, ".") {
		words := strings.Fields(cleaned)
		if len(words) > 1 && len(strings.TrimSuffix(words[len(words)-1], ".")) > 3 {
			cleaned = strings.TrimSuffix(cleaned, ".")
		}
	}
	return strings.TrimSpace(cleaned)
}
