// Package query builds Europe PMC search expressions.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/juanvillada/radarsci/internal/types"
)

var (
	// ErrInvalidQuery is returned when no usable keyword terms remain after trimming
	ErrInvalidQuery = fmt.Errorf("at least one keyword is required")
)

// Build assembles the search expression for one source. Keywords are trimmed,
// phrases containing whitespace are quoted, and multiple terms are joined with
// OR. The source contributes a scoping clause on its query field, and a
// positive daysBack adds an inclusive FIRST_PDATE window ending at the
// reference date. Segments are joined by single spaces.
func Build(source types.Source, keywords []string, daysBack int, reference time.Time) (string, error) {
	terms := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		term := strings.TrimSpace(keyword)
		if term == "" {
			continue
		}
		if strings.Contains(term, " ") {
			term = `"` + term + `"`
		}
		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return "", ErrInvalidQuery
	}

	keywordQuery := terms[0]
	if len(terms) > 1 {
		keywordQuery = "(" + strings.Join(terms, " OR ") + ")"
	}

	segments := []string{
		keywordQuery,
		fmt.Sprintf(`%s:"%s"`, source.Field, source.QueryName),
	}

	if daysBack > 0 {
		end := reference.UTC()
		start := end.AddDate(0, 0, -daysBack)
		segments = append(segments, fmt.Sprintf(
			"FIRST_PDATE:[%s TO %s]",
			start.Format("2006-01-02"),
			end.Format("2006-01-02"),
		))
	}

	return strings.Join(segments, " "), nil
}
