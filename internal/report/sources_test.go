package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanvillada/radarsci/internal/types"
)

func TestSourcesTable_RendersRegistryRows(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	sources := []types.Source{
		{Key: "nature-microbiology", Name: "Nature Microbiology", QueryName: "Nature Microbiology", Field: types.FieldJournal},
		{Key: "arxiv", Name: "arXiv", QueryName: "arXiv", Field: types.FieldPublisher},
	}

	err := SourcesTable(&buf, sources)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Key")
	assert.Contains(t, out, "Query field")
	assert.Contains(t, out, "nature-microbiology")
	assert.Contains(t, out, "Nature Microbiology")
	assert.Contains(t, out, "JOURNAL")
	assert.Contains(t, out, "PUBLISHER")
}

func TestSourcesTable_EmptyRegistryStillRendersHeader(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	err := SourcesTable(&buf, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Query name")
}
