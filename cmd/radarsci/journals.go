package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juanvillada/radarsci/internal/journals"
	"github.com/juanvillada/radarsci/internal/report"
)

var journalsCommand = &cobra.Command{
	Use:   "journals",
	Short: "List the built-in journals and preprint servers",
	RunE:  runJournalsCmd,
}

var journalsPreprints bool

func init() {
	journalsCommand.Flags().BoolVar(&journalsPreprints, "preprints", false, "Include preprint servers (arXiv, bioRxiv)")

	rootCmd.AddCommand(journalsCommand)
}

func runJournalsCmd(_ *cobra.Command, _ []string) error {
	sources := journals.Defaults()
	if journalsPreprints {
		sources = append(sources, journals.Preprints()...)
	}

	fmt.Printf("Built-in sources (%d):\n", len(sources))
	return report.SourcesTable(os.Stdout, sources)
}
