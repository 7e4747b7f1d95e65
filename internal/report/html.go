package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/juanvillada/radarsci/internal/coverage"
	"github.com/juanvillada/radarsci/internal/types"
)

// summaryTitles names the per-tier journal summary sections of the HTML page.
var summaryTitles = map[types.CoverageTier]string{
	types.TierFull:    "Journal summary — full coverage",
	types.TierNear:    "Journal summary — near coverage",
	types.TierPartial: "Journal summary — partial coverage",
	types.TierSingle:  "Journal summary — single keyword",
}

type htmlPage struct {
	MetaEntries  []string
	JournalLabel string
	Pills        []journalPill
	Summaries    []summarySection
	Groups       []coverageGroup
}

type journalPill struct {
	Name string
	Hit  bool
}

type summarySection struct {
	Title string
	Plot  string
}

type coverageGroup struct {
	Heading string
	Cards   []articleCard
}

type articleCard struct {
	Title   string
	URL     string
	Journal string
	Date    string
	Age     string
	Score   string
	Authors string
	Summary string
}

// DefaultFilename derives the report filename from the keywords and a
// timestamp, e.g. radarsci-report__gut-microbiome__20240520-153000.html.
func DefaultFilename(keywords []string, now time.Time) string {
	slugs := make([]string, len(keywords))
	for i, keyword := range keywords {
		slugs[i] = strings.ReplaceAll(keyword, " ", "-")
	}
	return fmt.Sprintf("radarsci-report__%s__%s.html",
		strings.Join(slugs, "__"), now.Format("20060102-150405"))
}

// ResolveOutputPath turns an output flag value into a concrete file path.
// An empty value falls back to the default filename, an existing directory
// receives the default filename inside it, and a path without an extension
// gets .html appended.
func ResolveOutputPath(output string, keywords []string, now time.Time) string {
	if strings.TrimSpace(output) == "" {
		return DefaultFilename(keywords, now)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, DefaultFilename(keywords, now))
	}
	if filepath.Ext(output) == "" {
		return output + ".html"
	}
	return output
}

// WriteHTML renders the report page and writes it to path, creating parent
// directories as needed.
func WriteHTML(path string, data *Data) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, buildPage(data)); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	return nil
}

func buildPage(data *Data) htmlPage {
	quoted := make([]string, len(data.Keywords))
	for i, keyword := range data.Keywords {
		quoted[i] = fmt.Sprintf("%q", keyword)
	}
	generated := data.Generated.UTC().Format("2006-01-02 15:04") + " UTC"

	page := htmlPage{
		MetaEntries: []string{
			fmt.Sprintf("✦ Keywords: %s", strings.Join(quoted, ", ")),
			fmt.Sprintf("✦ Days window: %s", optionValue(data.Options, "days", "n/a")),
			fmt.Sprintf("✦ Limit: %s", optionValue(data.Options, "limit", "n/a")),
			fmt.Sprintf("✦ Sort: %s", optionValue(data.Options, "sort", "score")),
			fmt.Sprintf("✦ Coverage: %s", titleFirst(optionValue(data.Options, "coverage", "all"))),
			fmt.Sprintf("✦ Generated: %s", generated),
		},
		JournalLabel: fmt.Sprintf("✦ Journals searched (%s)",
			optionValue(data.Options, "journal_count", fmt.Sprintf("%d", len(data.JournalNames)))),
	}

	hits := journalHitSet(data.Articles)
	for _, name := range data.JournalNames {
		_, hit := hits[name]
		page.Pills = append(page.Pills, journalPill{Name: name, Hit: hit})
	}

	totalKeywords := len(data.Keywords)
	for _, bucket := range coverage.Group(data.Articles, totalKeywords) {
		descriptor := matchDescriptor(bucket.Articles, totalKeywords)

		if rows := asciiPlot(summarizeByJournal(bucket.Articles)); len(rows) > 0 {
			page.Summaries = append(page.Summaries, summarySection{
				Title: fmt.Sprintf("%s (%s)", summaryTitles[bucket.Tier], descriptor),
				Plot:  strings.Join(rows, "\n"),
			})
		}

		group := coverageGroup{
			Heading: fmt.Sprintf("%s (%s)", bucket.Tier.Title(), descriptor),
		}
		for _, article := range bucket.Articles {
			summary := article.Summary
			if summary == "" {
				summary = "No abstract available."
			}
			group.Cards = append(group.Cards, articleCard{
				Title:   article.Title,
				URL:     article.URL,
				Journal: article.Journal,
				Date:    article.FormattedDate(),
				Age:     "Days ago: " + ageLabel(article, "unknown"),
				Score:   fmt.Sprintf("%.2f", article.RelevanceScore),
				Authors: authorLine(article.Authors, 6, "Unknown authors"),
				Summary: summary,
			})
		}
		page.Groups = append(page.Groups, group)
	}
	return page
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <title>RadarSci Report</title>
    <style>
        :root {
            --bg: #040404;
            --text: #7fffb3;
            --accent: #00ff90;
            --muted: #3ddc84;
            --journal: #b8ffd6;
            --border: rgba(0, 255, 144, 0.35);
        }
        * {
            box-sizing: border-box;
        }
        body {
            margin: 0 auto;
            padding: 2.5rem 1.5rem;
            max-width: 880px;
            background: var(--bg);
            color: var(--text);
            font-family: "IBM Plex Mono", "SFMono-Regular", Menlo, Consolas, "Liberation Mono", monospace;
            letter-spacing: 0.03em;
        }
        .meta-list {
            list-style: none;
            padding: 0;
            margin: 0 0 1rem 0;
            column-count: 2;
            column-gap: 1.4rem;
        }
        @media (max-width: 720px) {
            .meta-list {
                column-count: 1;
            }
        }
        .meta-list li {
            margin: 0.25rem 0;
            color: var(--muted);
            break-inside: avoid;
        }
        .journal-block {
            column-span: all;
            margin-top: 0.75rem;
        }
        .journal-block-label {
            display: block;
            margin-bottom: 0.4rem;
            color: var(--muted);
        }
        .journal-pill-wrap {
            display: flex;
            flex-wrap: wrap;
            gap: 0.25rem;
            align-items: center;
        }
        .journal-sep {
            display: inline-flex;
            align-items: center;
            padding: 0 0.2rem;
            color: var(--muted);
            opacity: 0.55;
            font-size: 0.95rem;
        }
        .journal-pill {
            display: inline-flex;
            align-items: center;
            justify-content: center;
            padding: 0;
            border-radius: 0;
            border: none;
            color: var(--muted);
            background: transparent;
            letter-spacing: 0.05em;
        }
        .journal-pill.hit {
            padding: 0.2rem 0.65rem;
            border-radius: 0.45rem;
            border: 1px solid var(--accent);
            color: var(--accent);
            background: rgba(0, 255, 144, 0.12);
            box-shadow: 0 0 0 1px rgba(0, 255, 144, 0.08);
        }
        .meta-list li.journal-item {
            color: var(--text);
        }
        .summary {
            margin-bottom: 1.8rem;
        }
        .summary h2 {
            margin: 0 0 0.6rem 0;
            font-size: 1.1rem;
            color: var(--accent);
        }
        .summary-plot {
            margin: 0;
            padding: 1rem;
            border: 1px solid var(--border);
            border-radius: 0.6rem;
            background: rgba(0, 255, 144, 0.04);
            color: var(--text);
            white-space: pre;
            font-size: 0.9rem;
            line-height: 1.5;
        }
        header.page-header {
            margin-bottom: 2rem;
        }
        header.page-header h1 {
            margin: 0 0 0.75rem 0;
            font-size: 2rem;
            color: var(--accent);
        }
        .coverage-groups {
            margin-top: 1.5rem;
        }
        .coverage-heading {
            margin: 1.6rem 0 0.6rem 0;
            font-size: 1.3rem;
            color: var(--accent);
        }
        .card {
            padding: 1.2rem;
            border: 1px solid var(--border);
            border-radius: 0.75rem;
            margin-bottom: 1.1rem;
            background: transparent;
        }
        .card:last-child {
            margin-bottom: 0;
        }
        .card h2 {
            margin: 0 0 0.6rem 0;
            font-size: 1.25rem;
            color: var(--accent);
        }
        .card a {
            color: var(--accent);
            text-decoration: none;
        }
        .card a:hover {
            text-decoration: underline;
        }
        .meta {
            display: flex;
            flex-wrap: wrap;
            gap: 0.75rem;
            font-size: 0.85rem;
            color: var(--muted);
        }
        .meta span {
            display: inline-flex;
            align-items: center;
            gap: 0.25rem;
        }
        .journal {
            color: var(--journal);
            text-transform: uppercase;
            letter-spacing: 0.08em;
        }
        .separator {
            color: var(--muted);
            opacity: 0.6;
        }
        .score {
            display: inline-flex;
            align-items: center;
            gap: 0.45rem;
            padding: 0.35rem 0.6rem;
            border: 1px solid var(--accent);
            border-radius: 0.4rem;
            background: rgba(0, 255, 144, 0.08);
        }
        .score .badge {
            font-size: 0.7rem;
            text-transform: uppercase;
            letter-spacing: 0.12em;
        }
        .score .value {
            font-weight: 600;
            color: var(--accent);
        }
        .age {
            color: var(--journal);
        }
        .authors {
            font-size: 0.9rem;
            margin: 0.9rem 0 0.6rem 0;
            color: var(--text);
        }
        .summary {
            font-size: 0.95rem;
            line-height: 1.6;
            color: var(--muted);
        }
        .missing {
            margin-top: 0.75rem;
            font-size: 0.9rem;
            color: var(--muted);
        }
        footer {
            margin-top: 2rem;
            font-size: 0.85rem;
            color: var(--muted);
        }
    </style>
</head>
<body>
    <header class="page-header">
        <h1>RadarSci</h1>
        <ul class="meta-list">
            {{range .MetaEntries}}<li>{{.}}</li>
            {{end}}<li class="journal-block"><span class="journal-block-label">{{.JournalLabel}}</span><div class="journal-pill-wrap">{{range $i, $pill := .Pills}}{{if $i}}<span class="journal-sep">|</span>{{end}}<span class="journal-pill{{if $pill.Hit}} hit{{end}}">{{$pill.Name}}</span>{{end}}</div></li>
        </ul>
    </header>
    <main>
        {{range .Summaries}}<section class="summary"><h2>{{.Title}}</h2><pre class="summary-plot">{{.Plot}}</pre></section>
        {{end}}{{if .Groups}}<section class="coverage-groups">
        {{- range .Groups}}
        <h2 class="coverage-heading">{{.Heading}}</h2>
        {{- range .Cards}}
        <article class="card">
            <header>
                <h2><a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a></h2>
                <div class="meta">
                    <span class="journal">Journal: {{.Journal}}</span>
                    <span class="separator">|</span>
                    <span class="date">{{.Date}}</span>
                    <span class="separator">|</span>
                    <span class="age">{{.Age}}</span>
                    <span class="separator">|</span>
                    <span class="score"><span class="badge">RadarSci score</span><span class="value">{{.Score}}</span></span>
                </div>
            </header>
            <p class="authors">{{.Authors}}</p>
            <p class="summary">{{.Summary}}</p>
        </article>
        {{- end}}
        {{- end}}
        </section>{{else}}<p>No papers matched the filters.</p>{{end}}
    </main>
    <footer>
        Crafted with RadarSci — a radar for scientific literature.
    </footer>
</body>
</html>
`))
