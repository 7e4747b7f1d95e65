package europepmc

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/juanvillada/radarsci/internal/types"
)

// publicationDateLayouts are tried in order; partial dates snap to the first
// day of the missing component.
var publicationDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// normalizeArticle converts a raw search hit into an Article attributed to the
// given journal display name.
func normalizeArticle(item SearchResult, journal string) *types.Article {
	title := stripMarkup(item.Title)
	if title == "" {
		title = "Untitled"
	}

	article := &types.Article{
		Title:       title,
		Summary:     stripMarkup(item.AbstractText),
		URL:         articleURL(item),
		Journal:     journal,
		Authors:     parseAuthors(item.AuthorString),
		PublishedAt: parsePublicationDate(item.FirstPublicationDate),
		DOI:         item.DOI,
	}

	if item.Score != 0 {
		score := item.Score
		article.SourceRelevance = &score
	}

	return article
}

// stripMarkup flattens embedded HTML (italics, sub/superscripts in titles and
// abstracts) to plain text with collapsed whitespace.
func stripMarkup(value string) string {
	if value == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return strings.TrimSpace(value)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// parseAuthors splits the semicolon-separated author string into trimmed names.
func parseAuthors(authorString string) []string {
	if authorString == "" {
		return nil
	}
	parts := strings.Split(authorString, ";")
	authors := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			authors = append(authors, name)
		}
	}
	if len(authors) == 0 {
		return nil
	}
	return authors
}

// parsePublicationDate parses full, year-month, or year-only dates as UTC.
func parsePublicationDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range publicationDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			parsed = parsed.UTC()
			return &parsed
		}
	}
	return nil
}

// articleURL picks the most direct link available: DOI, then PubMed Central,
// then the Europe PMC article page.
func articleURL(item SearchResult) string {
	switch {
	case item.DOI != "":
		return "https://doi.org/" + item.DOI
	case item.PMCID != "":
		return "https://www.ncbi.nlm.nih.gov/pmc/articles/" + item.PMCID
	case item.ID != "":
		source := item.Source
		if source == "" {
			source = "MED"
		}
		return "https://www.ebi.ac.uk/europepmc/article/" + source + "/" + item.ID
	}
	return ""
}
