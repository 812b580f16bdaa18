// Package filter classifies text values as noise so the same boilerplate
// is suppressed wherever it recurs.
//
// A [Builder] scans a document's blocks once and produces an immutable
// [State]: a mapping from exact normalized text values to a [Category]
// tag (table content, recurring header/footer, table-of-contents entry),
// the set of pages believed to hold a table of contents, and the
// accepted visual table regions. Filtering is by text value, not block
// identity - identical text on different pages is filtered uniformly
// once flagged.
//
// Build order matters: table-of-contents detection runs before table
// patterns and header/footer detection, because TOC page membership
// changes how the other rules interpret the same text.
//
// Downstream stages query the state read-only, chiefly through
// [State.IsValidContentBlock].
package filter
