package filter

import (
	"strings"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/tables"
)

// Config holds configuration for filter construction.
type Config struct {
	// MinContentLen is the minimum text length for a block to count as
	// real content at all.
	// Default: 5
	MinContentLen int

	// BandFraction is the fraction of page height treated as the header
	// band at the top and the footer band at the bottom.
	// Default: 0.15
	BandFraction float64

	// MinRecurrence is the floor on how many times banded text must
	// recur before it can be boilerplate; the effective threshold is
	// max(MinRecurrence, pageCount/3).
	// Default: 2
	MinRecurrence int

	// ShortFooterLen is the length below which recurring footer text is
	// suppressed without further evidence.
	// Default: 50
	ShortFooterLen int

	// DominantFooterRatio is the fraction of pages on which long footer
	// text must recur to be suppressed anyway.
	// Default: 0.8
	DominantFooterRatio float64

	// RegionTolerance is the margin, in layout units, by which a block
	// may poke outside an accepted table region and still count as
	// inside it.
	// Default: 5.0
	RegionTolerance float64

	// Tables configures validation of candidate table regions.
	Tables tables.Config
}

// DefaultConfig returns the default filter configuration.
func DefaultConfig() Config {
	return Config{
		MinContentLen:       5,
		BandFraction:        0.15,
		MinRecurrence:       2,
		ShortFooterLen:      50,
		DominantFooterRatio: 0.8,
		RegionTolerance:     5.0,
		Tables:              tables.DefaultConfig(),
	}
}

// State is the per-document filter result: text values tagged by noise
// category, TOC page membership, and accepted table regions. It is
// built once by a [Builder] and read-only afterward.
type State struct {
	categories map[string]Category
	tocPages   map[int]bool
	regions    map[int][]tables.Region
	config     Config
}

func newState(config Config) *State {
	return &State{
		categories: make(map[string]Category),
		tocPages:   make(map[int]bool),
		regions:    make(map[int][]tables.Region),
		config:     config,
	}
}

// setCategory records a tag for a text value. The first tag wins, so
// ordering of the build steps decides precedence.
func (s *State) setCategory(text string, category Category) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if _, exists := s.categories[text]; !exists {
		s.categories[text] = category
	}
}

// Category returns the noise tag recorded for the text, if any.
func (s *State) Category(text string) (Category, bool) {
	c, ok := s.categories[strings.TrimSpace(text)]
	return c, ok
}

// IsTablePattern reports whether the exact text was flagged as table
// content during construction.
func (s *State) IsTablePattern(text string) bool {
	c, ok := s.Category(text)
	return ok && c == CategoryTable
}

// IsHeaderFooter reports whether the exact text was flagged as
// recurring header/footer boilerplate.
func (s *State) IsHeaderFooter(text string) bool {
	c, ok := s.Category(text)
	return ok && c == CategoryHeaderFooter
}

// IsTOCEntryText reports whether the exact text was recorded as a
// table-of-contents entry.
func (s *State) IsTOCEntryText(text string) bool {
	c, ok := s.Category(text)
	return ok && c == CategoryTOCEntry
}

// IsTOCPage reports whether the page is believed to hold a table of
// contents.
func (s *State) IsTOCPage(page int) bool {
	return s.tocPages[page]
}

// IsLikelyTableContent reports whether the text is table content: either
// flagged during construction or matching the extended shape heuristics.
func (s *State) IsLikelyTableContent(text string) bool {
	text = strings.TrimSpace(text)
	if s.IsTablePattern(text) {
		return true
	}
	return MatchesLikelyTableShape(text)
}

// InTableRegion reports whether the block's rectangle lies inside an
// accepted table region on its page, allowing the configured tolerance.
func (s *State) InTableRegion(block model.TextBlock) bool {
	for _, region := range s.regions[block.Page] {
		if region.Rect.Expand(s.config.RegionTolerance).ContainsRect(block.Rect) {
			return true
		}
	}
	return false
}

// AcceptedRegions returns the accepted table regions for a page. The
// returned slice must not be modified.
func (s *State) AcceptedRegions(page int) []tables.Region {
	return s.regions[page]
}

// IsValidContentBlock reports whether the block is real content rather
// than noise. TOC heading phrases are always content (they become
// headings); TOC entries, flagged text values, page numbers, table-shaped
// text, and anything inside an accepted table region are not.
func (s *State) IsValidContentBlock(block model.TextBlock) bool {
	text := strings.TrimSpace(block.Text)

	if len(text) < s.config.MinContentLen ||
		s.IsTablePattern(text) ||
		s.IsHeaderFooter(text) ||
		s.IsTOCEntryText(text) ||
		IsPageNumber(text) ||
		s.IsLikelyTableContent(text) {
		return false
	}

	if s.InTableRegion(block) {
		return false
	}

	if IsTOCHeading(text) {
		return true
	}
	if IsTOCEntry(text) {
		return false
	}

	return true
}

// Builder constructs a State from one document's blocks.
type Builder struct {
	config Config
	blocks []model.TextBlock
	state  *State
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// Build runs every detection step in the required order and returns the
// immutable state. candidates are the raw regions from the external
// table-geometry detector; pass nil when no detector is available, in
// which case only pattern and position heuristics apply.
func (b *Builder) Build(blocks []model.TextBlock, candidates []tables.Region) *State {
	b.blocks = blocks
	b.state = newState(b.config)

	b.acceptTableRegions(candidates)

	// TOC detection first: TOC page membership changes how the other
	// rules interpret the same text.
	b.identifyTableOfContents()
	b.identifyTablePatterns()
	b.identifyHeadersFooters()

	return b.state
}

// acceptTableRegions validates detector candidates and indexes the
// accepted regions by page.
func (b *Builder) acceptTableRegions(candidates []tables.Region) {
	if len(candidates) == 0 {
		return
	}
	validator := tables.NewValidatorWithConfig(b.config.Tables)
	for _, region := range validator.Accept(candidates) {
		b.state.regions[region.Page] = append(b.state.regions[region.Page], region)
	}
}

// identifyTablePatterns flags every text value matching a
// table-indicator rule, independent of page.
func (b *Builder) identifyTablePatterns() {
	for _, block := range b.blocks {
		text := strings.TrimSpace(block.Text)
		if _, ok := MatchTableIndicator(text); ok {
			b.state.setCategory(text, CategoryTable)
		}
	}
}
