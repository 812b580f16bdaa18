// Package contour infers a hierarchical outline - a document title plus
// H1-H3 headings - from the raw text layout of a page-based document.
// The input is the block contract produced by an external page-text
// extraction service: text fragments annotated with position, font
// size, font family and style flags. No binary document parsing happens
// here.
//
// Basic usage:
//
//	result, warnings := contour.New().Outline(pages)
//	fmt.Println(result.Title)
//	for _, h := range result.Outline {
//	    fmt.Printf("%s %s (page %d)\n", h.Level, h.Text, h.Page)
//	}
//
// With a table-geometry detector and custom thresholds:
//
//	result, _ := contour.New().
//	    WithConfig(cfg).
//	    WithTableDetector(detector).
//	    Outline(pages)
//
// Processing one document is single-threaded, deterministic, and free
// of shared state; independent documents may be analyzed concurrently
// by separate Analyzer values (or the same one, since Analyzer is
// read-only after construction).
package contour

import (
	"fmt"
	"sort"
	"time"

	"github.com/tsawler/contour/blocktext"
	"github.com/tsawler/contour/filter"
	"github.com/tsawler/contour/fonts"
	"github.com/tsawler/contour/layout"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/tables"
)

// Fallback titles for the two failure classes: input with no
// extractable content, and an unexpected internal fault. Both are
// valid, non-error results.
const (
	EmptyDocumentTitle = "Empty Document"
	ErrorDocumentTitle = "Error Processing Document"
)

// Warning describes a non-fatal condition encountered during analysis,
// such as an unavailable table-geometry detector. Warnings never fail
// the document.
type Warning struct {
	Stage   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// Stats summarizes one processing run.
type Stats struct {
	Pages    int
	Blocks   int
	Headings int
	Elapsed  time.Duration
}

// Result is the output contract: a title, the outline in document
// order, and run statistics. An empty outline with a placeholder title
// is a valid result.
type Result struct {
	Title   string
	Outline []model.Heading
	Stats   Stats
}

// Analyzer runs the outline-inference pipeline. It is read-only after
// construction and safe for concurrent use across documents.
type Analyzer struct {
	config   Config
	detector tables.Detector
}

// New creates an Analyzer with default configuration.
func New() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// WithConfig replaces the analyzer's configuration.
func (a *Analyzer) WithConfig(config Config) *Analyzer {
	a.config = config
	return a
}

// WithTableDetector attaches an external table-geometry detector. When
// absent, visual table filtering is skipped and only pattern and
// position heuristics apply.
func (a *Analyzer) WithTableDetector(detector tables.Detector) *Analyzer {
	a.detector = detector
	return a
}

// Outline reconstructs blocks from raw extractor output and infers the
// document outline. It never returns an error: empty input produces the
// empty-document result, and any internal fault is recovered and
// converted to the error-document result.
func (a *Analyzer) Outline(pages []model.PageBlocks) (Result, []Warning) {
	reconstructor := blocktext.NewReconstructorWithConfig(a.config.Reconstruct)
	return a.OutlineBlocks(reconstructor.Reconstruct(pages))
}

// OutlineBlocks runs the pipeline over already-reconstructed blocks.
func (a *Analyzer) OutlineBlocks(blocks []model.TextBlock) (result Result, warnings []Warning) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = Result{Title: ErrorDocumentTitle}
			warnings = append(warnings, Warning{
				Stage:   "pipeline",
				Message: fmt.Sprintf("recovered: %v", r),
			})
		}
		result.Stats.Elapsed = time.Since(start)
	}()

	if len(blocks) == 0 {
		return Result{Title: EmptyDocumentTitle}, nil
	}

	pageSet := make(map[int]bool)
	for _, block := range blocks {
		pageSet[block.Page] = true
	}

	candidates, regionWarnings := a.detectTableRegions(pageSet)
	warnings = append(warnings, regionWarnings...)

	state := filter.NewBuilderWithConfig(a.config.Filter).Build(blocks, candidates)

	var accepted []model.TextBlock
	for _, block := range blocks {
		if state.IsValidContentBlock(block) {
			accepted = append(accepted, block)
		}
	}
	stats := fonts.Analyze(accepted)

	title := layout.NewTitleDetectorWithConfig(a.config.Title).Detect(blocks, state)

	headings := layout.NewHeadingClassifierWithConfig(a.config.Heading).
		Classify(blocks, title, state, stats)

	merger := layout.NewMergerWithConfig(a.config.Merge)
	headings = merger.Merge(headings)
	headings = merger.Validate(headings, title, state)

	outline := validOutline(headings)
	result = Result{
		Title:   title,
		Outline: outline,
		Stats: Stats{
			Pages:    len(pageSet),
			Blocks:   len(blocks),
			Headings: len(outline),
		},
	}
	return result, warnings
}

// detectTableRegions queries the external detector for every page,
// degrading to a warning on failure.
func (a *Analyzer) detectTableRegions(pageSet map[int]bool) ([]tables.Region, []Warning) {
	if a.detector == nil {
		return nil, nil
	}

	pages := make([]int, 0, len(pageSet))
	for page := range pageSet {
		pages = append(pages, page)
	}
	sort.Ints(pages)

	var candidates []tables.Region
	var warnings []Warning
	for _, page := range pages {
		regions, err := a.detector.Detect(page)
		if err != nil {
			warnings = append(warnings, Warning{
				Stage:   "tables",
				Message: fmt.Sprintf("%s: page %d: %v", a.detector.Name(), page, err),
			})
			continue
		}
		candidates = append(candidates, regions...)
	}
	return candidates, warnings
}

// validOutline is the final safety net over the output contract: every
// entry must carry one of the three closed levels. Malformed entries
// are dropped silently.
func validOutline(headings []model.Heading) []model.Heading {
	var outline []model.Heading
	for _, heading := range headings {
		if heading.Level.Valid() {
			outline = append(outline, heading)
		}
	}
	return outline
}
