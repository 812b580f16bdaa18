package model

// StyleFlags carries the style bits reported by the page-text extractor
// for a text span.
type StyleFlags int

// Style bits follow the extractor's convention.
const (
	StyleItalic StyleFlags = 1 << 1
	StyleBold   StyleFlags = 1 << 4
)

// IsBold reports whether the bold bit is set.
func (f StyleFlags) IsBold() bool {
	return f&StyleBold != 0
}

// IsItalic reports whether the italic bit is set.
func (f StyleFlags) IsItalic() bool {
	return f&StyleItalic != 0
}

// Span is one run of text with uniform font metadata, as delivered by the
// page-text extraction service.
type Span struct {
	Text     string
	Rect     Rect
	FontSize float64
	FontName string
	Flags    StyleFlags
}

// Line is a visual line of spans, left to right.
type Line struct {
	Spans []Span
}

// BlockGroup is one raw extractor block: a group of lines that the
// extractor considers visually contiguous. Reconstruction turns each
// group into a single TextBlock.
type BlockGroup struct {
	Lines []Line
}

// PageInfo identifies a page and its dimensions.
type PageInfo struct {
	Number int // 1-based
	Width  float64
	Height float64
}

// PageBlocks is the per-page input contract: the page plus its raw
// extractor blocks in reading order.
type PageBlocks struct {
	Page   PageInfo
	Blocks []BlockGroup
}

// TextBlock is one reconstructed, visually coherent run of text on one
// page. Text is whitespace-collapsed and never empty; Rect is the union
// of all constituent span rectangles. Font metadata comes from the
// block's representative span, so a block is not assumed font-uniform.
type TextBlock struct {
	Text       string
	Page       int // 1-based
	Rect       Rect
	PageWidth  float64
	PageHeight float64
	FontSize   float64
	FontName   string
	Flags      StyleFlags
}

// IsBold reports whether the representative span was bold.
func (b TextBlock) IsBold() bool {
	return b.Flags.IsBold()
}

// IsItalic reports whether the representative span was italic.
func (b TextBlock) IsItalic() bool {
	return b.Flags.IsItalic()
}

// InTopBand reports whether the block starts within the top fraction of
// its page (e.g. 0.15 for the top 15%).
func (b TextBlock) InTopBand(fraction float64) bool {
	return b.Rect.Y0 < b.PageHeight*fraction
}

// InBottomBand reports whether the block starts within the bottom
// fraction of its page.
func (b TextBlock) InBottomBand(fraction float64) bool {
	return b.Rect.Y0 > b.PageHeight*(1-fraction)
}
