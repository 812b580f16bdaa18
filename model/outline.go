package model

// HeadingLevel represents the hierarchical level of an inferred heading.
// The enumeration is closed: the outline never nests deeper than H3.
type HeadingLevel int

const (
	LevelUnknown HeadingLevel = iota
	Level1                    // H1 - chapter or major section
	Level2                    // H2 - section
	Level3                    // H3 - subsection
)

// String returns the canonical output form of the level ("H1".."H3").
func (l HeadingLevel) String() string {
	switch l {
	case Level1:
		return "H1"
	case Level2:
		return "H2"
	case Level3:
		return "H3"
	default:
		return "unknown"
	}
}

// Valid reports whether the level is one of the three output levels.
func (l HeadingLevel) Valid() bool {
	return l >= Level1 && l <= Level3
}

// Heading is one classified outline entry. Rect and FontSize are carried
// from the source block so adjacent fragments can be merged; only Level,
// Text and Page are part of the output contract.
type Heading struct {
	Level    HeadingLevel
	Text     string
	Page     int // 1-based
	Rect     Rect
	FontSize float64
}

// Outline is the inferred structure of one document: a title plus the
// leveled headings in document order. An empty outline with a placeholder
// title is a valid, non-error result.
type Outline struct {
	Title    string
	Headings []Heading
}
