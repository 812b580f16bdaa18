package filter

import "strings"

// identifyHeadersFooters partitions blocks into top and bottom page
// bands, counts exact text recurrence across pages within each band,
// and flags recurring values as boilerplate.
//
// Top-band text is boilerplate once it recurs often enough and is not
// itself a page number. Bottom-band text is held to a stricter test:
// recurring text is suppressed only when it is short, a page number, or
// keyword boilerplate - unless it recurs on most pages, which catches
// long repeating footers without suppressing large one-off footer-area
// content that may legitimately be a heading.
func (b *Builder) identifyHeadersFooters() {
	topCounts := make(map[string]int)
	bottomCounts := make(map[string]int)
	pages := make(map[int]bool)

	for _, block := range b.blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}
		pages[block.Page] = true
		switch {
		case block.InTopBand(b.config.BandFraction):
			topCounts[text]++
		case block.InBottomBand(b.config.BandFraction):
			bottomCounts[text]++
		}
	}

	minOccurrences := len(pages) / 3
	if minOccurrences < b.config.MinRecurrence {
		minOccurrences = b.config.MinRecurrence
	}

	for text, count := range topCounts {
		if count >= minOccurrences && !IsPageNumber(text) {
			b.state.setCategory(text, CategoryHeaderFooter)
		}
	}

	mostPages := float64(len(pages)) * b.config.DominantFooterRatio
	for text, count := range bottomCounts {
		if count < minOccurrences {
			continue
		}
		if len(text) < b.config.ShortFooterLen ||
			IsPageNumber(text) ||
			ContainsBoilerplateKeyword(text) {
			b.state.setCategory(text, CategoryHeaderFooter)
		} else if float64(count) >= mostPages {
			b.state.setCategory(text, CategoryHeaderFooter)
		}
	}
}
