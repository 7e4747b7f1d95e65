package europepmc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArticle_FullRecord(t *testing.T) {
	item := SearchResult{
		ID:                   "38112233",
		Source:               "MED",
		Title:                "Deep learning for <i>in situ</i> metagenome binning",
		AbstractText:         "<p>We present a binning method for <b>complex</b> communities.</p>",
		AuthorString:         "Garcia M; Chen L; Okafor A.",
		FirstPublicationDate: "2024-04-18",
		DOI:                  "10.1000/demo.2024.001",
		PMCID:                "PMC9988776",
		Score:                14.2,
	}

	article := normalizeArticle(item, "Nature Microbiology")

	assert.Equal(t, "Deep learning for in situ metagenome binning", article.Title)
	assert.Equal(t, "We present a binning method for complex communities.", article.Summary)
	assert.Equal(t, "https://doi.org/10.1000/demo.2024.001", article.URL)
	assert.Equal(t, "Nature Microbiology", article.Journal)
	assert.Equal(t, []string{"Garcia M", "Chen L", "Okafor A."}, article.Authors)
	require.NotNil(t, article.PublishedAt)
	assert.Equal(t, time.Date(2024, time.April, 18, 0, 0, 0, 0, time.UTC), *article.PublishedAt)
	require.NotNil(t, article.SourceRelevance)
	assert.Equal(t, 14.2, *article.SourceRelevance)
}

func TestNormalizeArticle_MissingTitleFallsBack(t *testing.T) {
	article := normalizeArticle(SearchResult{AbstractText: "Some abstract."}, "Cell")

	assert.Equal(t, "Untitled", article.Title)
	assert.Equal(t, "Cell", article.Journal)
}

func TestNormalizeArticle_ZeroScoreMeansNoHint(t *testing.T) {
	article := normalizeArticle(SearchResult{Title: "A paper"}, "Cell")

	assert.Nil(t, article.SourceRelevance)
}

func TestArticleURL_FallbackChain(t *testing.T) {
	withDOI := SearchResult{DOI: "10.1/x", PMCID: "PMC1", ID: "5", Source: "MED"}
	assert.Equal(t, "https://doi.org/10.1/x", articleURL(withDOI))

	withPMCID := SearchResult{PMCID: "PMC1", ID: "5", Source: "MED"}
	assert.Equal(t, "https://www.ncbi.nlm.nih.gov/pmc/articles/PMC1", articleURL(withPMCID))

	withID := SearchResult{ID: "5", Source: "PPR"}
	assert.Equal(t, "https://www.ebi.ac.uk/europepmc/article/PPR/5", articleURL(withID))

	withIDNoSource := SearchResult{ID: "5"}
	assert.Equal(t, "https://www.ebi.ac.uk/europepmc/article/MED/5", articleURL(withIDNoSource))

	assert.Equal(t, "", articleURL(SearchResult{}))
}

func TestParsePublicationDate_PartialDates(t *testing.T) {
	full := parsePublicationDate("2024-04-18")
	require.NotNil(t, full)
	assert.Equal(t, time.Date(2024, time.April, 18, 0, 0, 0, 0, time.UTC), *full)

	yearMonth := parsePublicationDate("2024-03")
	require.NotNil(t, yearMonth)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *yearMonth)

	yearOnly := parsePublicationDate("2024")
	require.NotNil(t, yearOnly)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *yearOnly)
}

func TestParsePublicationDate_Unparseable(t *testing.T) {
	assert.Nil(t, parsePublicationDate(""))
	assert.Nil(t, parsePublicationDate("18/04/2024"))
	assert.Nil(t, parsePublicationDate("April 2024"))
}

func TestParseAuthors_TrimsAndDropsEmpty(t *testing.T) {
	authors := parseAuthors(" Garcia M ;; Chen L ; ")

	assert.Equal(t, []string{"Garcia M", "Chen L"}, authors)
}

func TestParseAuthors_EmptyString(t *testing.T) {
	assert.Nil(t, parseAuthors(""))
	assert.Nil(t, parseAuthors(" ; ; "))
}

func TestStripMarkup_CollapsesWhitespace(t *testing.T) {
	got := stripMarkup("  CRISPR<sub>2</sub>   screening\n in <i>E. coli</i> ")

	assert.Equal(t, "CRISPR2 screening in E. coli", got)
}

func TestStripMarkup_PlainTextPassesThrough(t *testing.T) {
	assert.Equal(t, "Plain title", stripMarkup("Plain title"))
	assert.Equal(t, "", stripMarkup(""))
}
