package filter

import (
	"regexp"
	"strings"
)

// tocHeadingPatterns match the heading of a table-of-contents listing.
// The heading itself stays headable content; only the entries under it
// are filtered.
var tocHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^table\s+of\s+contents?$`),
	regexp.MustCompile(`^contents?$`),
	regexp.MustCompile(`^index$`),
	regexp.MustCompile(`^\s*toc\s*$`),
}

// IsTOCHeading reports whether the text is a table-of-contents heading
// phrase.
func IsTOCHeading(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, pattern := range tocHeadingPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// tocEntryPatterns match table-of-contents entry lines: dotted leaders,
// trailing page numbers, numbered sections with page references, bare
// page numbers, and roman-numeral front-matter entries.
var tocEntryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`.+\.{3,}.+\d+\s*$`),
	regexp.MustCompile(`^.+\s+\d+\s*$`),
	regexp.MustCompile(`^\d+(\.\d+)*\s+.+\s+\d+\s*$`),
	regexp.MustCompile(`^[^.]+[.\s]{2,}\d+\s*$`),
	regexp.MustCompile(`^\d{1,3}\s*$`),
	regexp.MustCompile(`(?i).*(see\s+)?page\s+\d+`),
	regexp.MustCompile(`^\d+\.\d+\s+\d+\.\d+\s+\d+`),
	regexp.MustCompile(`^.+[.\-_\s]{2,}\d+\s*$`),
	regexp.MustCompile(`(?i)^[ivxlcdm]+[.\s]+.+\s+\d+\s*$`),
}

// shortIntegerRef spots an embedded 1-3 digit number, the usual shape of
// a page reference.
var shortIntegerRef = regexp.MustCompile(`\b\d{1,3}\b`)

// IsTOCEntry reports whether the text reads like a table-of-contents
// entry. Beyond the fixed patterns, any line mixing real words with a
// short integer qualifies, since on a TOC page that is almost always a
// title/page-number pair.
func IsTOCEntry(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < 3 {
		return false
	}

	for _, pattern := range tocEntryPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	if shortIntegerRef.MatchString(text) {
		words := strings.Fields(text)
		hasText := false
		hasNumber := false
		for _, word := range words {
			if len(word) > 2 && isAlpha(word) {
				hasText = true
			}
			if isDigits(word) {
				hasNumber = true
			}
		}
		if hasText && hasNumber {
			return true
		}
	}

	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// identifyTableOfContents finds TOC heading phrases, marks their pages
// (plus one adjacent page in each direction) as TOC pages, and records
// every entry-shaped text on those pages. Must run before the other
// build steps consult the state.
func (b *Builder) identifyTableOfContents() {
	for _, block := range b.blocks {
		if IsTOCHeading(block.Text) {
			b.state.tocPages[block.Page] = true
			b.state.tocPages[block.Page+1] = true
			if block.Page > 1 {
				b.state.tocPages[block.Page-1] = true
			}
		}
	}

	for _, block := range b.blocks {
		if !b.state.tocPages[block.Page] {
			continue
		}
		text := strings.TrimSpace(block.Text)
		if IsTOCHeading(text) {
			continue
		}
		if IsTOCEntry(text) {
			b.state.setCategory(text, CategoryTOCEntry)
		}
	}
}
