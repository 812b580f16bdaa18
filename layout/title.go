package layout

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/contour/filter"
	"github.com/tsawler/contour/model"
)

// PlaceholderTitle is returned when no block qualifies as a title.
const PlaceholderTitle = "Untitled Document"

// TitleConfig holds configuration for title detection. The weights are
// empirically tuned approximations, not principled values; they are
// exposed here so callers can adjust them without touching control flow.
type TitleConfig struct {
	// MaxPage is the last page scanned for title candidates.
	// Default: 2
	MaxPage int

	// SizeWindow selects candidate blocks within this many size units
	// of the maximum font size on the scanned pages.
	// Default: 2.0
	SizeWindow float64

	// GroupSizeDelta is the maximum font-size difference between
	// adjacent blocks grouped into one candidate.
	// Default: 3.0
	GroupSizeDelta float64

	// GroupGapFactor scales the average font size into the maximum
	// vertical gap between grouped blocks.
	// Default: 1.5
	GroupGapFactor float64

	// ShortTextLen is the length at or below which two texts may group
	// on textual evidence alone when geometry is unavailable.
	// Default: 50
	ShortTextLen int

	// MinLen and MaxLen bound the merged candidate text.
	// Defaults: 5 and 300
	MinLen int
	MaxLen int

	// FallbackMaxLen bounds the fallback page-1 scan.
	// Default: 100
	FallbackMaxLen int

	// Scoring weights.
	BaseScore           float64 // Default: 100
	BelowMaxPenalty     float64 // per size unit below the page maximum. Default: 10
	MemberBonus         float64 // per grouped block. Default: 20
	PositionWeight      float64 // scaled by height above the page bottom. Default: 50
	Page1Bonus          float64 // Default: 30
	Page2Bonus          float64 // Default: 10
	GoodLengthBonus     float64 // word count in [2,20]. Default: 20
	SingleWordPenalty   float64 // Default: 20
	VerbosePenalty      float64 // more than 30 words. Default: 30
	TitleCaseBonus      float64 // title case but not all caps. Default: 15
	ProperCaseBonus     float64 // proper title case. Default: 25
	AllCapsBonus        float64 // Default: 10
	SectionShapePenalty float64 // numbered-section shape or trailing colon. Default: 40
	VocabularyBonus     float64 // contains a common title word. Default: 15
}

// DefaultTitleConfig returns the default title-detection configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxPage:             2,
		SizeWindow:          2.0,
		GroupSizeDelta:      3.0,
		GroupGapFactor:      1.5,
		ShortTextLen:        50,
		MinLen:              5,
		MaxLen:              300,
		FallbackMaxLen:      100,
		BaseScore:           100,
		BelowMaxPenalty:     10,
		MemberBonus:         20,
		PositionWeight:      50,
		Page1Bonus:          30,
		Page2Bonus:          10,
		GoodLengthBonus:     20,
		SingleWordPenalty:   20,
		VerbosePenalty:      30,
		TitleCaseBonus:      15,
		ProperCaseBonus:     25,
		AllCapsBonus:        10,
		SectionShapePenalty: 40,
		VocabularyBonus:     15,
	}
}

// titleBoilerplateKeywords disqualify a merged candidate outright.
var titleBoilerplateKeywords = []string{
	"page", "copyright", "confidential", "proprietary", "draft",
}

// titleVocabulary are words that commonly appear in document titles.
var titleVocabulary = []string{
	"foundation", "level", "extension", "overview", "guide",
	"manual", "report", "study", "analysis", "framework",
}

// sectionShape matches numbered section headings ("1. ...", "2)") which
// are penalized as title candidates.
var sectionShape = regexp.MustCompile(`^\d+[.)]\s`)

// titleCandidate is a transient scoring unit: one group of adjacent
// large-font blocks merged into a potential title. It never outlives
// title selection.
type titleCandidate struct {
	text        string
	score       float64
	avgFontSize float64
	page        int
	members     int
}

// TitleDetector detects the document title from early-page blocks.
type TitleDetector struct {
	config TitleConfig
	caser  cases.Caser
}

// NewTitleDetector creates a detector with default configuration.
func NewTitleDetector() *TitleDetector {
	return NewTitleDetectorWithConfig(DefaultTitleConfig())
}

// NewTitleDetectorWithConfig creates a detector with custom configuration.
func NewTitleDetectorWithConfig(config TitleConfig) *TitleDetector {
	return &TitleDetector{
		config: config,
		caser:  cases.Title(language.English),
	}
}

// Detect returns the document title. It groups and scores large-font
// blocks on the first pages; when no candidate survives it falls back
// to a page-1 scan, and finally to the fixed placeholder.
func (d *TitleDetector) Detect(blocks []model.TextBlock, state *filter.State) string {
	early := d.earlyBlocks(blocks)
	candidates := d.buildCandidates(early, state)

	if best, ok := selectBest(candidates); ok {
		return cleanTitleText(best.text)
	}

	if title, ok := d.fallbackScan(blocks, state); ok {
		return cleanTitleText(title)
	}

	return PlaceholderTitle
}

// earlyBlocks returns the candidate pool: blocks on the scanned pages
// whose font size is within SizeWindow of the pool maximum, ordered by
// page then vertical position.
func (d *TitleDetector) earlyBlocks(blocks []model.TextBlock) []model.TextBlock {
	var early []model.TextBlock
	maxSize := 0.0
	for _, block := range blocks {
		if block.Page <= d.config.MaxPage {
			early = append(early, block)
			if block.FontSize > maxSize {
				maxSize = block.FontSize
			}
		}
	}

	var pool []model.TextBlock
	for _, block := range early {
		if block.FontSize >= maxSize-d.config.SizeWindow {
			pool = append(pool, block)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Page != pool[j].Page {
			return pool[i].Page < pool[j].Page
		}
		return pool[i].Rect.Y0 < pool[j].Rect.Y0
	})
	return pool
}

// buildCandidates groups adjacent pool blocks, merges each group's text
// top to bottom, rejects degenerate merges, and scores the survivors.
func (d *TitleDetector) buildCandidates(pool []model.TextBlock, state *filter.State) []titleCandidate {
	if len(pool) == 0 {
		return nil
	}

	maxSize := 0.0
	for _, block := range pool {
		if block.FontSize > maxSize {
			maxSize = block.FontSize
		}
	}

	var candidates []titleCandidate
	group := []model.TextBlock{pool[0]}
	for _, block := range pool[1:] {
		if d.adjacent(group[len(group)-1], block) {
			group = append(group, block)
			continue
		}
		if cand, ok := d.mergeGroup(group, maxSize, state); ok {
			candidates = append(candidates, cand)
		}
		group = []model.TextBlock{block}
	}
	if cand, ok := d.mergeGroup(group, maxSize, state); ok {
		candidates = append(candidates, cand)
	}
	return candidates
}

// adjacent reports whether two consecutive pool blocks belong to the
// same title group: same page, similar size, and either vertical
// proximity or (when geometry is degenerate) two short non-sentence
// texts.
func (d *TitleDetector) adjacent(a, b model.TextBlock) bool {
	if a.Page != b.Page {
		return false
	}
	if diff := a.FontSize - b.FontSize; diff > d.config.GroupSizeDelta || -diff > d.config.GroupSizeDelta {
		return false
	}

	avgSize := (a.FontSize + b.FontSize) / 2
	gap := b.Rect.Y0 - a.Rect.Y1
	if gap >= 0 && gap <= d.config.GroupGapFactor*avgSize {
		return true
	}

	return len(a.Text) <= d.config.ShortTextLen &&
		len(b.Text) <= d.config.ShortTextLen &&
		!strings.HasSuffix(a.Text, ".") &&
		!strings.HasPrefix(b.Text, ".")
}

// mergeGroup concatenates a group into one candidate, dropping members
// that are themselves table-pattern text, and rejects or scores the
// merged result.
func (d *TitleDetector) mergeGroup(group []model.TextBlock, maxSize float64, state *filter.State) (titleCandidate, bool) {
	var parts []string
	var kept []model.TextBlock
	for _, block := range group {
		if state.IsTablePattern(block.Text) {
			continue
		}
		parts = append(parts, block.Text)
		kept = append(kept, block)
	}
	if len(kept) == 0 {
		return titleCandidate{}, false
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	if len(text) < d.config.MinLen || len(text) > d.config.MaxLen {
		return titleCandidate{}, false
	}
	if state.IsTablePattern(text) || state.IsHeaderFooter(text) {
		return titleCandidate{}, false
	}
	lower := strings.ToLower(text)
	for _, keyword := range titleBoilerplateKeywords {
		if strings.Contains(lower, keyword) {
			return titleCandidate{}, false
		}
	}

	sum := 0.0
	for _, block := range kept {
		sum += block.FontSize
	}
	cand := titleCandidate{
		text:        text,
		avgFontSize: sum / float64(len(kept)),
		page:        kept[0].Page,
		members:     len(kept),
	}
	cand.score = d.scoreCandidate(cand, kept[0], maxSize)
	return cand, true
}

// scoreCandidate applies the weighted heuristics: size relative to the
// page maximum, fragment count, vertical position, page, word count,
// casing, section shape, and title vocabulary.
func (d *TitleDetector) scoreCandidate(cand titleCandidate, first model.TextBlock, maxSize float64) float64 {
	cfg := d.config
	score := cfg.BaseScore

	// At or below zero: being under the page maximum costs points.
	score += cfg.BelowMaxPenalty * (cand.avgFontSize - maxSize)

	score += cfg.MemberBonus * float64(cand.members)

	if first.PageHeight > 0 {
		score += cfg.PositionWeight * (1 - first.Rect.Y0/first.PageHeight)
	}

	switch cand.page {
	case 1:
		score += cfg.Page1Bonus
	case 2:
		score += cfg.Page2Bonus
	}

	words := len(strings.Fields(cand.text))
	switch {
	case words >= 2 && words <= 20:
		score += cfg.GoodLengthBonus
	case words <= 1:
		score -= cfg.SingleWordPenalty
	case words > 30:
		score -= cfg.VerbosePenalty
	}

	allCaps := isAllCaps(cand.text)
	if allCaps {
		score += cfg.AllCapsBonus
	} else if isTitleCase(cand.text) {
		score += cfg.TitleCaseBonus
		if d.isProperTitleCase(cand.text) {
			score += cfg.ProperCaseBonus
		}
	}

	if sectionShape.MatchString(cand.text) || strings.HasSuffix(cand.text, ":") {
		score -= cfg.SectionShapePenalty
	}

	lower := strings.ToLower(cand.text)
	for _, word := range titleVocabulary {
		if strings.Contains(lower, word) {
			score += cfg.VocabularyBonus
			break
		}
	}

	return score
}

// selectBest picks the highest-scoring candidate, breaking ties by
// larger average font size, then by earlier page.
func selectBest(candidates []titleCandidate) (titleCandidate, bool) {
	if len(candidates) == 0 {
		return titleCandidate{}, false
	}
	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.score > best.score ||
			(cand.score == best.score && cand.avgFontSize > best.avgFontSize) ||
			(cand.score == best.score && cand.avgFontSize == best.avgFontSize && cand.page < best.page) {
			best = cand
		}
	}
	return best, true
}

// fallbackScan walks page-1 blocks by descending font size, then by
// position, and returns the first plausible non-noise text.
func (d *TitleDetector) fallbackScan(blocks []model.TextBlock, state *filter.State) (string, bool) {
	var page1 []model.TextBlock
	for _, block := range blocks {
		if block.Page == 1 {
			page1 = append(page1, block)
		}
	}
	sort.SliceStable(page1, func(i, j int) bool {
		if page1[i].FontSize != page1[j].FontSize {
			return page1[i].FontSize > page1[j].FontSize
		}
		return page1[i].Rect.Y0 < page1[j].Rect.Y0
	})

	for _, block := range page1 {
		text := strings.TrimSpace(block.Text)
		if len(text) < d.config.MinLen || len(text) > d.config.FallbackMaxLen {
			continue
		}
		if state.IsLikelyTableContent(text) || state.IsHeaderFooter(text) {
			continue
		}
		return text, true
	}
	return "", false
}

// isProperTitleCase reports whether the text matches English title
// casing exactly.
func (d *TitleDetector) isProperTitleCase(text string) bool {
	return d.caser.String(strings.ToLower(text)) == text
}

// isTitleCase reports whether every word of three or more letters
// starts with an uppercase letter.
func isTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	checked := 0
	for _, word := range words {
		r := []rune(word)
		if len(r) < 3 || !isLetter(r[0]) {
			continue
		}
		checked++
		if !isUpper(r[0]) {
			return false
		}
	}
	return checked > 0
}

// isAllCaps reports whether the text has letters and none lowercase.
func isAllCaps(text string) bool {
	hasUpper := false
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
		}
	}
	return hasUpper
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// cleanTitleText collapses whitespace; unlike heading cleaning it keeps
// trailing punctuation.
func cleanTitleText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
