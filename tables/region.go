package tables

import (
	"regexp"
	"strings"

	"github.com/tsawler/contour/model"
)

// Region is one candidate table on a page: its rectangle plus the
// extracted row/column cell matrix. Cells may be nil when the detector
// could locate the region but not read its contents.
type Region struct {
	Page  int // 1-based
	Rect  model.Rect
	Cells [][]string
}

// RowCount returns the number of rows in the cell matrix.
func (r Region) RowCount() int {
	return len(r.Cells)
}

// ColCount returns the number of columns in the first row.
func (r Region) ColCount() int {
	if len(r.Cells) == 0 {
		return 0
	}
	return len(r.Cells[0])
}

// Detector is the interface to the external table-geometry detection
// service. Implementations return candidate regions for one page; an
// error degrades gracefully (visual table filtering is skipped for that
// page) and never fails the document.
type Detector interface {
	// Detect returns candidate table regions for the given 1-based page.
	Detect(page int) ([]Region, error)

	// Name returns the detector name.
	Name() string
}

// Config holds validation thresholds for candidate regions.
type Config struct {
	// MinRows and MinCols are the minimum dimensions for a valid table.
	// Defaults: 2 and 2
	MinRows int
	MinCols int

	// MinFillRatio is the minimum fraction of non-empty cells.
	// Default: 0.3
	MinFillRatio float64

	// NumericColumnRatio is the fraction of numeric values required for
	// a column to count as structured data.
	// Default: 0.7
	NumericColumnRatio float64

	// DateColumnRatio is the fraction of date-like values required for
	// a column to count as structured data.
	// Default: 0.5
	DateColumnRatio float64
}

// DefaultConfig returns the default validation configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:            2,
		MinCols:            2,
		MinFillRatio:       0.3,
		NumericColumnRatio: 0.7,
		DateColumnRatio:    0.5,
	}
}

var (
	// headerVocabulary matches common column-heading labels.
	headerVocabulary = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(name|title|description|type|date|version|status|amount|quantity|id|no\.?)`),
		regexp.MustCompile(`(?i)(s\.?no\.?|sr\.?no\.?|item|category|remarks|comments)`),
		regexp.MustCompile(`(?i)(page|chapter|section|subsection)`),
	}

	numericValue = regexp.MustCompile(`^\d+(\.\d+)?$`)
	dateValue    = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2}`)
)

// Validator decides whether a candidate region is structurally a table.
type Validator struct {
	config Config
}

// NewValidator creates a validator with default configuration.
func NewValidator() *Validator {
	return &Validator{config: DefaultConfig()}
}

// NewValidatorWithConfig creates a validator with custom configuration.
func NewValidatorWithConfig(config Config) *Validator {
	return &Validator{config: config}
}

// Accept filters candidates down to the regions that validate as tables.
func (v *Validator) Accept(candidates []Region) []Region {
	var accepted []Region
	for _, c := range candidates {
		if v.IsTable(c) {
			accepted = append(accepted, c)
		}
	}
	return accepted
}

// IsTable reports whether the region meets the structural requirements:
// minimum dimensions, minimum cell fill, and either header-like first-row
// labels or column-wise structure.
func (v *Validator) IsTable(region Region) bool {
	rows := region.RowCount()
	cols := region.ColCount()
	if rows < v.config.MinRows || cols < v.config.MinCols {
		return false
	}

	nonEmpty, total := 0, 0
	for _, row := range region.Cells {
		for _, cell := range row {
			total++
			if strings.TrimSpace(cell) != "" {
				nonEmpty++
			}
		}
	}
	if total == 0 || float64(nonEmpty)/float64(total) < v.config.MinFillRatio {
		return false
	}

	return v.hasHeaderRow(region) || v.hasStructuredData(region)
}

// hasHeaderRow reports whether the first row reads like column headings:
// more than half its non-trivial cells match the header vocabulary.
func (v *Validator) hasHeaderRow(region Region) bool {
	if region.RowCount() < 2 || len(region.Cells[0]) == 0 {
		return false
	}

	first := region.Cells[0]
	headerLike := 0
	for _, cell := range first {
		text := strings.ToLower(strings.TrimSpace(cell))
		if text == "" {
			continue
		}
		for _, pattern := range headerVocabulary {
			if pattern.MatchString(text) {
				headerLike++
				break
			}
		}
	}
	return float64(headerLike) >= float64(len(first))/2
}

// hasStructuredData reports whether some column is dominated by numeric
// or date-like values, skipping the presumed header row.
func (v *Validator) hasStructuredData(region Region) bool {
	if region.RowCount() < 2 {
		return false
	}
	cols := region.ColCount()
	if cols == 0 {
		return false
	}

	for col := 0; col < cols; col++ {
		var values []string
		for _, row := range region.Cells[1:] {
			if col < len(row) {
				if val := strings.TrimSpace(row[col]); val != "" {
					values = append(values, val)
				}
			}
		}
		if len(values) == 0 {
			continue
		}

		numeric, dates := 0, 0
		for _, val := range values {
			if numericValue.MatchString(val) {
				numeric++
			}
			if dateValue.MatchString(val) {
				dates++
			}
		}
		if float64(numeric) >= float64(len(values))*v.config.NumericColumnRatio {
			return true
		}
		if float64(dates) >= float64(len(values))*v.config.DateColumnRatio {
			return true
		}
	}
	return false
}
