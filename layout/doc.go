// Package layout classifies reconstructed text blocks into a document
// title and leveled headings, then merges and validates the result.
//
// Classification runs in three stages, mirroring the pipeline:
//
//  1. [TitleDetector] groups and scores large-font blocks near the top
//     of the first two pages and picks the best merged candidate.
//  2. [HeadingClassifier] accepts blocks that combine visual
//     distinction with a heading-like shape, excludes anything
//     overlapping the detected title, and assigns H1-H3 levels with
//     content cues overriding font tiers.
//  3. [Merger] joins adjacent fragments of the same multi-line heading
//     and applies a final structural and length sanity pass.
//
// All stages are pure functions of their inputs plus the read-only
// filter state and font statistics; every tuned threshold lives in a
// config struct with documented defaults.
package layout
