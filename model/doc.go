// Package model defines the shared data types used throughout contour.
//
// The types fall into three groups:
//
//   - Geometry: [Rect], an axis-aligned rectangle in page coordinates with
//     Y increasing downward (the coordinate system used by the page-text
//     extraction service).
//
//   - Input contract: [Span], [Line], [BlockGroup], [PageInfo] and
//     [PageBlocks] describe the raw per-page output of the external
//     page-text extractor, and [TextBlock] is the reconstructed,
//     normalized block the analysis stages operate on.
//
//   - Output contract: [HeadingLevel], [Heading] and [Outline] describe
//     the inferred document structure.
//
// All values are plain data; nothing in this package holds state across
// documents.
package model
