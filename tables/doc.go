// Package tables defines the boundary to the external table-geometry
// detection service and validates its candidate regions.
//
// Detection itself (grid-line or whitespace analysis of the rendered
// page) happens outside this module; a [Detector] implementation hands
// back candidate [Region] values per page. The [Validator] then accepts
// a candidate only when it is structurally table-like:
//
//  1. At least MinRows rows and MinCols columns
//  2. At least MinFillRatio of its cells non-empty
//  3. A header-like first row, or column-wise structure (mostly
//     numeric or mostly date-like values in some column)
//
// Accepted regions are consumed by the content filter: any text block
// whose rectangle lies inside one is excluded from heading
// consideration regardless of its text.
package tables
