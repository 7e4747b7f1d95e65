// Package journals holds the built-in source registry and resolves user-supplied journal labels.
package journals

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/juanvillada/radarsci/internal/types"
)

var (
	// ErrNoRemainingSources is returned when skip filters remove every resolved journal
	ErrNoRemainingSources = fmt.Errorf("no journals remaining after applying skip filters")
)

// defaultSources is the built-in journal table. Query names match the titles
// Europe PMC indexes these journals under.
var defaultSources = []types.Source{
	{Key: "cell", Name: "Cell", QueryName: "Cell", Field: types.FieldJournal},
	{Key: "cell-genomics", Name: "Cell Genomics", QueryName: "Cell Genomics", Field: types.FieldJournal},
	{Key: "cell-host-microbe", Name: "Cell Host & Microbe", QueryName: "Cell Host & Microbe", Field: types.FieldJournal},
	{Key: "cell-metabolism", Name: "Cell Metabolism", QueryName: "Cell Metabolism", Field: types.FieldJournal},
	{Key: "cell-reports", Name: "Cell Reports", QueryName: "Cell Reports", Field: types.FieldJournal},
	{Key: "cell-systems", Name: "Cell Systems", QueryName: "Cell Systems", Field: types.FieldJournal},
	{Key: "communications-biology", Name: "Communications Biology", QueryName: "Communications Biology", Field: types.FieldJournal},
	{Key: "current-biology", Name: "Current Biology", QueryName: "Current Biology", Field: types.FieldJournal},
	{Key: "isme-communications", Name: "ISME Communications", QueryName: "ISME Communications", Field: types.FieldJournal},
	{Key: "mbio", Name: "mBio", QueryName: "mBio", Field: types.FieldJournal},
	{Key: "molecular-biology-and-evolution", Name: "Molecular Biology and Evolution", QueryName: "Molecular Biology and Evolution", Field: types.FieldJournal},
	{Key: "msystems", Name: "mSystems", QueryName: "mSystems", Field: types.FieldJournal},
	{Key: "nature", Name: "Nature", QueryName: "Nature", Field: types.FieldJournal},
	{Key: "nature-biotechnology", Name: "Nature Biotechnology", QueryName: "Nature Biotechnology", Field: types.FieldJournal},
	{Key: "nature-communications", Name: "Nature Communications", QueryName: "Nature Communications", Field: types.FieldJournal},
	{Key: "nature-ecology-evolution", Name: "Nature Ecology & Evolution", QueryName: "Nature Ecology & Evolution", Field: types.FieldJournal},
	{Key: "nature-machine-intelligence", Name: "Nature Machine Intelligence", QueryName: "Nature Machine Intelligence", Field: types.FieldJournal},
	{Key: "nature-methods", Name: "Nature Methods", QueryName: "Nature Methods", Field: types.FieldJournal},
	{Key: "nature-microbiology", Name: "Nature Microbiology", QueryName: "Nature Microbiology", Field: types.FieldJournal},
	{Key: "nature-reviews-microbiology", Name: "Nature Reviews Microbiology", QueryName: "Nature Reviews Microbiology", Field: types.FieldJournal},
	{Key: "science", Name: "Science", QueryName: "Science", Field: types.FieldJournal},
	{Key: "science-advances", Name: "Science Advances", QueryName: "Science Advances", Field: types.FieldJournal},
	{Key: "the-isme-journal", Name: "The ISME Journal", QueryName: "The ISME Journal", Field: types.FieldJournal},
	{Key: "trends-in-biotechnology", Name: "Trends in Biotechnology", QueryName: "Trends in Biotechnology", Field: types.FieldJournal},
	{Key: "trends-in-ecology-evolution", Name: "Trends in Ecology & Evolution", QueryName: "Trends in Ecology & Evolution", Field: types.FieldJournal},
	{Key: "trends-in-microbiology", Name: "Trends in Microbiology", QueryName: "Trends in Microbiology", Field: types.FieldJournal},
}

// preprintSources are searched by publisher rather than journal title.
var preprintSources = []types.Source{
	{Key: "arxiv", Name: "arXiv", QueryName: "arXiv", Field: types.FieldPublisher},
	{Key: "biorxiv", Name: "bioRxiv", QueryName: "bioRxiv", Field: types.FieldPublisher},
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Defaults returns a copy of the built-in journal table.
func Defaults() []types.Source {
	return append([]types.Source(nil), defaultSources...)
}

// Preprints returns a copy of the built-in preprint server table.
func Preprints() []types.Source {
	return append([]types.Source(nil), preprintSources...)
}

// NormalizeKey converts an arbitrary journal label to a kebab-case key.
func NormalizeKey(label string) string {
	key := nonAlphanumeric.ReplaceAllString(strings.ToLower(label), "-")
	key = strings.Trim(key, "-")
	if key == "" {
		return "journal"
	}
	return key
}

// Resolve converts user-supplied journal labels into search sources.
// Nil or empty labels return the full built-in table; the token "all" expands
// to it explicitly. Known labels match by key, display name, or query name,
// case-insensitively. Unknown labels become ad hoc sources so users can query
// journals outside the registry. Duplicates collapse on query name, keeping
// first-occurrence order.
func Resolve(labels []string, includePreprints bool) []types.Source {
	base := Defaults()
	if includePreprints {
		base = append(base, Preprints()...)
	}

	tokens := tokenize(labels)
	if len(tokens) == 0 {
		return base
	}

	// Preprint aliases stay resolvable even without includePreprints, so an
	// explicit "arxiv" label works on its own.
	lookup := make(map[string]types.Source)
	for _, source := range append(Defaults(), Preprints()...) {
		lookup[strings.ToLower(source.Key)] = source
		lookup[strings.ToLower(source.Name)] = source
		lookup[strings.ToLower(source.QueryName)] = source
	}

	resolved := make([]types.Source, 0, len(tokens))
	seen := make(map[string]bool)
	add := func(source types.Source) {
		if seen[source.QueryName] {
			return
		}
		seen[source.QueryName] = true
		resolved = append(resolved, source)
	}

	for _, token := range tokens {
		if strings.EqualFold(token, "all") {
			for _, source := range base {
				add(source)
			}
			break
		}
	}

	for _, token := range tokens {
		if strings.EqualFold(token, "all") {
			continue
		}
		if source, ok := lookup[strings.ToLower(token)]; ok {
			add(source)
			continue
		}
		add(types.Source{
			Key:       NormalizeKey(token),
			Name:      token,
			QueryName: token,
			Field:     types.FieldJournal,
		})
	}

	return resolved
}

// ApplySkips removes sources matching any skip token by key, display name, or
// query name. Tokens naming a registry entry are canonicalized first, so
// skipping "cell" removes the journal Cell rather than every Cell title.
func ApplySkips(sources []types.Source, skips []string) []types.Source {
	tokens := tokenize(skips)
	if len(tokens) == 0 {
		return sources
	}

	canonical := make(map[string]string)
	for _, source := range append(Defaults(), Preprints()...) {
		name := strings.ToLower(source.Name)
		canonical[strings.ToLower(source.Key)] = name
		canonical[name] = name
		canonical[strings.ToLower(source.QueryName)] = name
	}

	skip := make(map[string]bool)
	for _, token := range tokens {
		lowered := strings.ToLower(token)
		if name, ok := canonical[lowered]; ok {
			skip[name] = true
			continue
		}
		skip[lowered] = true
	}

	kept := make([]types.Source, 0, len(sources))
	for _, source := range sources {
		if skip[strings.ToLower(source.Name)] || skip[strings.ToLower(source.Key)] || skip[strings.ToLower(source.QueryName)] {
			continue
		}
		kept = append(kept, source)
	}
	return kept
}

// tokenize splits each value on commas and semicolons and trims the pieces.
func tokenize(values []string) []string {
	tokens := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ';'
		}) {
			cleaned := strings.TrimSpace(part)
			if cleaned != "" {
				tokens = append(tokens, cleaned)
			}
		}
	}
	return tokens
}
