// Package model defines shared data structures.
package model

import "time"

// Defaults for generation settings when neither flags nor the config
// file provide a value.
const (
	DefaultStartYear = 1990
	DefaultEndYear   = 2024
	DefaultMaxWords  = 10000
	DefaultMaxNumber = 999
)

// MutationConfig toggles the per-word mutation passes.
type MutationConfig struct {
	LeetSpeak bool
	Uppercase bool
	Numbers   bool
	Special   bool
}

// GenerationConfig defines one wordlist generation run. It is
// assembled once (flags, config file, or the interactive menu) and
// never mutated afterwards.
type GenerationConfig struct {
	SeedWords    []string
	UsernameFile string
	UseDates     bool
	StartYear    int
	EndYear      int
	UseCommon    bool
	UseKeyboard  bool
	Mutations    MutationConfig
	OutputFile   string
	// MaxWords bounds the saved list; 0 means unbounded.
	MaxWords int
}

// GenerationStats is a snapshot computed from the candidate set.
//
// TotalWords and UniqueWords count distinct candidates (always equal,
// the set dedups on insert). The per-phase counters record gross
// insertion attempts, not post-dedup contributions.
type GenerationStats struct {
	TotalWords  int
	UniqueWords int
	MinLength   int
	MaxLength   int
	AvgLength   float64

	BaseWords    int
	DatePatterns int
	Numbers      int
	Usernames    int
	Mutations    int
}

// RunRecord summarizes a completed generation run for the history store.
type RunRecord struct {
	RunID      int64
	StartedAt  time.Time
	EndedAt    time.Time
	SeedCount  int
	TotalWords int
	MinLength  int
	MaxLength  int
	AvgLength  float64
	BaseWords  int
	DatePats   int
	Mutations  int
	OutputFile string
	MaxWords   int
	DurationMs int64
}
