package contour

import (
	"github.com/tsawler/contour/blocktext"
	"github.com/tsawler/contour/filter"
	"github.com/tsawler/contour/layout"
)

// Config collects every tuned threshold in the pipeline in one place.
// The values are empirically tuned approximations; adjusting them never
// requires touching control flow.
type Config struct {
	// Reconstruct configures fragment reassembly.
	Reconstruct blocktext.Config

	// Filter configures noise detection, including table-region
	// validation.
	Filter filter.Config

	// Title configures title detection and scoring.
	Title layout.TitleConfig

	// Heading configures heading acceptance and leveling.
	Heading layout.HeadingConfig

	// Merge configures multi-line heading merging and final validation.
	Merge layout.MergeConfig
}

// DefaultConfig returns the default configuration for every stage.
func DefaultConfig() Config {
	return Config{
		Reconstruct: blocktext.DefaultConfig(),
		Filter:      filter.DefaultConfig(),
		Title:       layout.DefaultTitleConfig(),
		Heading:     layout.DefaultHeadingConfig(),
		Merge:       layout.DefaultMergeConfig(),
	}
}
