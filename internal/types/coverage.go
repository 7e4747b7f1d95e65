// Package types provides type definitions for structured data used throughout the radarsci system.
package types

// CoverageTier classifies how much of the configured keyword set an article matched.
type CoverageTier string

const (
	// TierFull means every configured keyword matched.
	TierFull CoverageTier = "full"
	// TierNear means all but one keyword matched (keyword sets of three or more).
	TierNear CoverageTier = "near"
	// TierPartial means at least two keywords matched.
	TierPartial CoverageTier = "partial"
	// TierSingle means at most one keyword matched.
	TierSingle CoverageTier = "single"
)

// TierOrder lists the coverage tiers from strongest to weakest.
var TierOrder = []CoverageTier{TierFull, TierNear, TierPartial, TierSingle}

// Title returns the human-readable heading used for the tier in reports.
func (t CoverageTier) Title() string {
	switch t {
	case TierFull:
		return "Full coverage"
	case TierNear:
		return "Near full coverage"
	case TierPartial:
		return "Partial coverage"
	case TierSingle:
		return "Single keyword coverage"
	default:
		return string(t)
	}
}
