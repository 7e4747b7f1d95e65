package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanvillada/radarsci/internal/types"
)

func TestDefaultFilename_SlugsKeywordsAndTimestamp(t *testing.T) {
	now := time.Date(2024, time.May, 20, 15, 30, 0, 0, time.UTC)

	name := DefaultFilename([]string{"gut microbiome", "crispr"}, now)

	assert.Equal(t, "radarsci-report__gut-microbiome__crispr__20240520-153000.html", name)
}

func TestResolveOutputPath_EmptyUsesDefaultFilename(t *testing.T) {
	now := time.Date(2024, time.May, 20, 15, 30, 0, 0, time.UTC)

	path := ResolveOutputPath("", []string{"crispr"}, now)

	assert.Equal(t, "radarsci-report__crispr__20240520-153000.html", path)
}

func TestResolveOutputPath_DirectoryReceivesDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, time.May, 20, 15, 30, 0, 0, time.UTC)

	path := ResolveOutputPath(dir, []string{"crispr"}, now)

	assert.Equal(t, filepath.Join(dir, "radarsci-report__crispr__20240520-153000.html"), path)
}

func TestResolveOutputPath_AppendsHTMLExtension(t *testing.T) {
	path := ResolveOutputPath("weekly-radar", []string{"crispr"}, time.Now())

	assert.Equal(t, "weekly-radar.html", path)
}

func TestResolveOutputPath_KeepsExplicitExtension(t *testing.T) {
	path := ResolveOutputPath("reports/radar.htm", []string{"crispr"}, time.Now())

	assert.Equal(t, "reports/radar.htm", path)
}

func TestWriteHTML_WritesReportWithCards(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.html")

	article := reportArticle("Nature", "Metagenomics of the gut", 16.86, 1, daysAgo(10))
	article.PublishedAt = publishedAt(2024, time.May, 10)
	article.Authors = []string{"Alice A", "Bob B"}
	article.Summary = "Shotgun sequencing of stool samples."
	data := consoleData([]*types.Article{article})

	err := WriteHTML(path, data)

	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, "<title>RadarSci Report</title>")
	assert.Contains(t, out, "✦ Generated: 2024-05-20 15:30 UTC")
	assert.Contains(t, out, "✦ Journals searched (5)")
	assert.Contains(t, out, `<span class="journal-pill hit">Nature</span>`)
	assert.Contains(t, out, `<span class="journal-pill">Science</span>`)
	assert.Contains(t, out, "Journal summary — full coverage (all 1 keyword matched)")
	assert.Contains(t, out, `<h2 class="coverage-heading">Full coverage (all 1 keyword matched)</h2>`)
	assert.Contains(t, out, `href="https://doi.org/10.1000/example"`)
	assert.Contains(t, out, "Metagenomics of the gut")
	assert.Contains(t, out, "Days ago: 10")
	assert.Contains(t, out, "2024-05-10")
	assert.Contains(t, out, ">16.86</span>")
	assert.Contains(t, out, "Alice A, Bob B")
	assert.Contains(t, out, "Shotgun sequencing of stool samples.")
	assert.Contains(t, out, "Crafted with RadarSci — a radar for scientific literature.")
}

func TestWriteHTML_NoArticlesShowsNotice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.html")

	err := WriteHTML(path, consoleData(nil))

	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, "<p>No papers matched the filters.</p>")
	assert.NotContains(t, out, "coverage-heading")
}

func TestWriteHTML_MissingAbstractAndAuthorsUseFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallbacks.html")

	article := reportArticle("Nature", "Untitled find", 2.0, 1, nil)
	data := consoleData([]*types.Article{article})

	err := WriteHTML(path, data)

	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, "Days ago: unknown")
	assert.Contains(t, out, "Unknown authors")
	assert.Contains(t, out, "No abstract available.")
}

func TestWriteHTML_EscapesMarkupInTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escape.html")

	article := reportArticle("Nature", `Gut & brain <axis>`, 5.0, 1, daysAgo(3))
	data := consoleData([]*types.Article{article})

	err := WriteHTML(path, data)

	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, "Gut &amp; brain &lt;axis&gt;")
	assert.NotContains(t, out, "<axis>")
}
