package filter

import (
	"regexp"
	"strings"
)

// Category tags a text value with the kind of noise it was recognized as.
type Category int

const (
	CategoryNone Category = iota
	CategoryTable
	CategoryHeaderFooter
	CategoryTOCEntry
)

func (c Category) String() string {
	switch c {
	case CategoryTable:
		return "table"
	case CategoryHeaderFooter:
		return "header-footer"
	case CategoryTOCEntry:
		return "toc-entry"
	default:
		return "none"
	}
}

// Rule is one named pattern in an ordered rule table. Naming each rule
// lets tests exercise patterns in isolation and lets callers see which
// rule fired.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Category Category
}

// tableIndicatorRules flag exact text values as table content wherever
// they appear. The list is ordered; the first match wins.
var tableIndicatorRules = []Rule{
	{"version-history-row", regexp.MustCompile(`(?i)^\d+\.\d+\s+\d+\s+(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)\s+\d{4}`), CategoryTable},
	{"numeric-pair", regexp.MustCompile(`^[\d.]+\s+[\d.]+$`), CategoryTable},
	{"date-row", regexp.MustCompile(`(?i)^\d{1,2}\s+(JUNE|JULY|NOVEMBER|DECEMBER)\s+\d{4}`), CategoryTable},
	{"integer-run", regexp.MustCompile(`^\d+(\s+\d+)+$`), CategoryTable},
	{"copyright-year", regexp.MustCompile(`^©.*\d{4}$`), CategoryTable},
	{"page-of-pages", regexp.MustCompile(`(?i)^Page\s+\d+\s+of\s+\d+`), CategoryTable},
	{"version-year", regexp.MustCompile(`(?i)^Version\s+\d{4}`), CategoryTable},
	{"long-date", regexp.MustCompile(`(?i)May\s+\d{1,2},\s+\d{4}`), CategoryTable},
	{"version-date-remarks-header", regexp.MustCompile(`(?i)^Version\s+Date\s+Remarks$`), CategoryTable},
	{"syllabus-days-header", regexp.MustCompile(`(?i)^Syllabus\s+Days$`), CategoryTable},
}

// MatchTableIndicator returns the first table-indicator rule matching
// the text, if any.
func MatchTableIndicator(text string) (Rule, bool) {
	for _, rule := range tableIndicatorRules {
		if rule.Pattern.MatchString(text) {
			return rule, true
		}
	}
	return Rule{}, false
}

// likelyTableRules are the extended, set-independent table-content
// heuristics: dotted numeric pairs, short token runs, copyright and page
// lines, and very short standalone tokens.
var likelyTableRules = []Rule{
	{"dotted-numeric-pair", regexp.MustCompile(`^\d+(\.\d+)*\s+\d+(\.\d+)*$`), CategoryTable},
	{"version-with-year", regexp.MustCompile(`^\d+\.\d+.*\d{4}`), CategoryTable},
	{"short-token-run", regexp.MustCompile(`^(\w{1,3}\s+){3,}`), CategoryTable},
	{"copyright-board", regexp.MustCompile(`(?i)^©.*International.*Board`), CategoryTable},
	{"page-line", regexp.MustCompile(`(?i)^Page\s+\d+`), CategoryTable},
	{"may-date", regexp.MustCompile(`(?i)^May\s+\d+,\s+\d{4}`), CategoryTable},
	{"short-token", regexp.MustCompile(`^\w{1,5}$`), CategoryTable},
}

// MatchesLikelyTableShape reports whether the text matches an extended
// table-content heuristic, independent of any per-document state.
func MatchesLikelyTableShape(text string) bool {
	text = strings.TrimSpace(text)
	for _, rule := range likelyTableRules {
		if rule.Pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// pageNumberPatterns match standalone page numbers: bare integers,
// "Page N" lines, "N of M" lines, and short roman numerals.
var pageNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,3}$`),
	regexp.MustCompile(`(?i)^Page\s+\d+`),
	regexp.MustCompile(`(?i)^\d+\s+of\s+\d+$`),
	regexp.MustCompile(`(?i)^[ivxlcdm]{1,6}$`),
}

// IsPageNumber reports whether the text is a page-number pattern.
func IsPageNumber(text string) bool {
	text = strings.TrimSpace(text)
	for _, pattern := range pageNumberPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// boilerplateKeywords mark short recurring footer text as boilerplate.
var boilerplateKeywords = []string{
	"copyright", "©", "page", "confidential", "proprietary", "all rights reserved",
}

// ContainsBoilerplateKeyword reports whether the lowercased text
// contains any recognized boilerplate keyword.
func ContainsBoilerplateKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range boilerplateKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
