// Package types provides type definitions for structured data used throughout the radarsci system.
package types

import (
	"fmt"
	"strings"
)

// SortMode determines the ordering applied to scored articles.
type SortMode string

const (
	// SortScore orders by relevance score, freshest first on ties.
	SortScore SortMode = "score"
	// SortRecency orders by age, highest score first on ties.
	SortRecency SortMode = "recency"
	// SortJournal groups by journal name, best scored first within each.
	SortJournal SortMode = "journal"
)

// OutputFormat selects the report renderer.
type OutputFormat string

const (
	// FormatCLI renders the report to the terminal.
	FormatCLI OutputFormat = "cli"
	// FormatWeb renders the report to a standalone HTML file.
	FormatWeb OutputFormat = "web"
)

// CoverageFilter restricts which coverage tiers the selection draws from.
type CoverageFilter string

const (
	// CoverageAll selects across every tier.
	CoverageAll CoverageFilter = "all"
	// CoverageFull selects only articles that matched every keyword.
	CoverageFull CoverageFilter = "full"
)

// ParseSortMode converts a user-supplied value into a SortMode.
func ParseSortMode(value string) (SortMode, error) {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case SortScore, SortRecency, SortJournal:
		return mode, nil
	}
	return "", fmt.Errorf("invalid sort mode %q (choose from score, recency, journal)", value)
}

// ParseOutputFormat converts a user-supplied value into an OutputFormat.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatCLI, FormatWeb:
		return format, nil
	}
	return "", fmt.Errorf("invalid output format %q (choose from cli, web)", value)
}

// ParseCoverageFilter converts a user-supplied value into a CoverageFilter.
func ParseCoverageFilter(value string) (CoverageFilter, error) {
	switch filter := CoverageFilter(strings.ToLower(strings.TrimSpace(value))); filter {
	case CoverageAll, CoverageFull:
		return filter, nil
	}
	return "", fmt.Errorf("invalid coverage filter %q (choose from all, full)", value)
}
