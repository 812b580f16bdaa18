package filter

import "testing"

func TestMatchTableIndicator(t *testing.T) {
	tests := []struct {
		text string
		rule string
	}{
		{"0.1 15 JUN 2014", "version-history-row"},
		{"2.1 2.2", "numeric-pair"},
		{"21 JUNE 2013", "date-row"},
		{"12 45 78", "integer-run"},
		{"© Example Press 2024", "copyright-year"},
		{"Page 3 of 12", "page-of-pages"},
		{"Version 2014", "version-year"},
		{"May 31, 2014", "long-date"},
		{"Version Date Remarks", "version-date-remarks-header"},
		{"Syllabus Days", "syllabus-days-header"},
	}

	for _, tt := range tests {
		rule, ok := MatchTableIndicator(tt.text)
		if !ok {
			t.Errorf("MatchTableIndicator(%q) = no match, want rule %q", tt.text, tt.rule)
			continue
		}
		if rule.Name != tt.rule {
			t.Errorf("MatchTableIndicator(%q) fired %q, want %q", tt.text, rule.Name, tt.rule)
		}
		if rule.Category != CategoryTable {
			t.Errorf("rule %q category = %v, want %v", rule.Name, rule.Category, CategoryTable)
		}
	}
}

func TestMatchTableIndicatorRejectsHeadings(t *testing.T) {
	for _, text := range []string{
		"1. Introduction",
		"Revision History",
		"Learning Objectives for the Course",
	} {
		if rule, ok := MatchTableIndicator(text); ok {
			t.Errorf("MatchTableIndicator(%q) fired %q, want no match", text, rule.Name)
		}
	}
}

func TestMatchesLikelyTableShape(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"2.1 17", true},            // dotted numeric pair
		{"1.2 approved 2014", true}, // version with year
		{"ab cd ef gh", true},       // short token run
		{"Page 7", true},
		{"May 5, 2021", true},
		{"Intro", true}, // very short standalone token
		{"Introduction to Distributed Systems", false},
		{"Acknowledgements", false},
	}

	for _, tt := range tests {
		if got := MatchesLikelyTableShape(tt.text); got != tt.want {
			t.Errorf("MatchesLikelyTableShape(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsPageNumber(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"7", true},
		{"123", true},
		{"Page 12", true},
		{"3 of 10", true},
		{"iv", true},
		{"XII", true},
		{"1234", false},
		{"Chapter 7", false},
	}

	for _, tt := range tests {
		if got := IsPageNumber(tt.text); got != tt.want {
			t.Errorf("IsPageNumber(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestContainsBoilerplateKeyword(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Copyright 2024 Example Corp", true},
		{"CONFIDENTIAL - Internal Use", true},
		{"All rights reserved", true},
		{"Page 4", true},
		{"Learning Outcomes", false},
	}

	for _, tt := range tests {
		if got := ContainsBoilerplateKeyword(tt.text); got != tt.want {
			t.Errorf("ContainsBoilerplateKeyword(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryNone, "none"},
		{CategoryTable, "table"},
		{CategoryHeaderFooter, "header-footer"},
		{CategoryTOCEntry, "toc-entry"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
