// Package events defines the payloads published while loading, diffing and
// merging schemas.
package events

import "time"

// LoadStart is emitted before a schema is read from disk.
type LoadStart struct {
	Paths  []string
	Format string
}

// LoadFinish is emitted after a schema load attempt.
type LoadFinish struct {
	Paths    []string
	Format   string
	Types    int
	Err      error
	Duration time.Duration
}

// DiffStart is emitted before two schemas are compared.
type DiffStart struct {
	LabelForThis  string
	LabelForOther string
}

// DiffFinish is emitted after a comparison.
type DiffFinish struct {
	Diffs    int
	Breaking int
	Err      error
	Duration time.Duration
}

// MergeStart is emitted before two schemas are merged.
type MergeStart struct{}

// MergeFinish is emitted after a merge attempt.
type MergeFinish struct {
	Types    int
	Err      error
	Duration time.Duration
}
