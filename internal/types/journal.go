// Package types provides type definitions for structured data used throughout the radarsci system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// QueryField identifies the Europe PMC search field a source scopes its queries by.
type QueryField string

const (
	// FieldJournal scopes a query to a journal title.
	FieldJournal QueryField = "JOURNAL"
	// FieldPublisher scopes a query to a publisher name, used by preprint servers.
	FieldPublisher QueryField = "PUBLISHER"
)

// Source represents a single journal or preprint server to search.
type Source struct {
	Key       string     `json:"key"`        // Canonical registry key, e.g. "nature-microbiology"
	Name      string     `json:"name"`       // Display name, e.g. "Nature Microbiology"
	QueryName string     `json:"query_name"` // Value placed in the scoping clause of the search expression
	Field     QueryField `json:"field"`      // Search field the scoping clause uses
}

// IsPreprint reports whether the source is a preprint server rather than a journal.
func (s Source) IsPreprint() bool {
	return s.Field == FieldPublisher
}
