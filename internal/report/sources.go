package report

import (
	"fmt"
	"io"

	"github.com/juanvillada/radarsci/internal/types"
)

// SourcesTable renders the configured journals and preprint servers
// as a console table.
func SourcesTable(w io.Writer, sources []types.Source) error {
	table := newTable(w, []string{"Key", "Name", "Query field", "Query name"})
	rows := make([][]string, 0, len(sources))
	for _, source := range sources {
		rows = append(rows, []string{
			source.Key,
			source.Name,
			string(source.Field),
			source.QueryName,
		})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build journal table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render journal table: %w", err)
	}
	return nil
}
