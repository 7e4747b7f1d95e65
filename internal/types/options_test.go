// Package types provides type definitions for structured data used throughout the radarsci system.
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortMode_AcceptsKnownModes(t *testing.T) {
	for value, want := range map[string]SortMode{
		"score":    SortScore,
		"Recency":  SortRecency,
		" journal": SortJournal,
	} {
		mode, err := ParseSortMode(value)
		require.NoError(t, err)
		assert.Equal(t, want, mode)
	}
}

func TestParseSortMode_RejectsUnknownMode(t *testing.T) {
	_, err := ParseSortMode("alphabetical")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alphabetical")
	assert.Contains(t, err.Error(), "score, recency, journal")
}

func TestParseOutputFormat_AcceptsKnownFormats(t *testing.T) {
	format, err := ParseOutputFormat("WEB")
	require.NoError(t, err)
	assert.Equal(t, FormatWeb, format)

	format, err = ParseOutputFormat("cli")
	require.NoError(t, err)
	assert.Equal(t, FormatCLI, format)
}

func TestParseOutputFormat_RejectsUnknownFormat(t *testing.T) {
	_, err := ParseOutputFormat("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestParseCoverageFilter_AcceptsKnownFilters(t *testing.T) {
	filter, err := ParseCoverageFilter("full")
	require.NoError(t, err)
	assert.Equal(t, CoverageFull, filter)

	filter, err = ParseCoverageFilter("All")
	require.NoError(t, err)
	assert.Equal(t, CoverageAll, filter)
}

func TestParseCoverageFilter_RejectsUnknownFilter(t *testing.T) {
	_, err := ParseCoverageFilter("partial")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all, full")
}

func TestCoverageTier_Title(t *testing.T) {
	assert.Equal(t, "Full coverage", TierFull.Title())
	assert.Equal(t, "Near full coverage", TierNear.Title())
	assert.Equal(t, "Partial coverage", TierPartial.Title())
	assert.Equal(t, "Single keyword coverage", TierSingle.Title())
}

func TestTierOrder_StrongestFirst(t *testing.T) {
	assert.Equal(t, []CoverageTier{TierFull, TierNear, TierPartial, TierSingle}, TierOrder)
}
