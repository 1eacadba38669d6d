// Package apropos provides keyword search over collection manifests,
// in the manner of Unix apropos.
package apropos

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kestrel-md/curio/internal/collection"
)

// Entry is one searchable collection.
type Entry struct {
	ID          string
	Name        string
	Description string
	Tags        []string
	Paths       []string
	Keywords    []string
}

// Match is a scored search hit.
type Match struct {
	Entry Entry
	Score int // higher is better
}

// common stopwords to filter out when extracting keywords
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"this": true, "that": true, "these": true, "those": true, "it": true,
	"its": true, "when": true, "use": true, "using": true, "used": true,
	"can": true, "any": true, "other": true, "collection": true,
}

var punctRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// BuildEntries converts loaded collections into searchable entries.
func BuildEntries(cols []*collection.Collection) []Entry {
	entries := make([]Entry, 0, len(cols))
	for _, c := range cols {
		paths := make([]string, 0, len(c.Items))
		for _, item := range c.Items {
			paths = append(paths, item.Path)
		}
		entries = append(entries, Entry{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Tags:        c.Tags,
			Paths:       paths,
			Keywords:    extractKeywords(c.Description),
		})
	}
	return entries
}

// Search scores entries against the query and returns matches sorted
// by descending score.
func Search(entries []Entry, query string) []Match {
	queryWords := strings.Fields(strings.ToLower(query))
	if len(queryWords) == 0 {
		return nil
	}

	var matches []Match
	for _, e := range entries {
		score := scoreMatch(e, queryWords)
		if score > 0 {
			matches = append(matches, Match{Entry: e, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

func scoreMatch(e Entry, queryWords []string) int {
	score := 0
	idLower := strings.ToLower(e.ID)
	nameLower := strings.ToLower(e.Name)
	descLower := strings.ToLower(e.Description)

	for _, qw := range queryWords {
		// Exact id or name match is highest value
		if idLower == qw || nameLower == qw {
			score += 100
		} else if strings.Contains(idLower, qw) || strings.Contains(nameLower, qw) {
			score += 50
		}

		// Description contains query word
		if strings.Contains(descLower, qw) {
			score += 10
		}

		// Tag match
		for _, tag := range e.Tags {
			if strings.EqualFold(tag, qw) {
				score += 30
			}
		}

		// Keyword match
		for _, kw := range e.Keywords {
			if kw == qw {
				score += 20
			} else if strings.Contains(kw, qw) {
				score += 5
			}
		}

		// Curated path mentions the word
		for _, p := range e.Paths {
			if strings.Contains(strings.ToLower(p), qw) {
				score += 5
			}
		}
	}

	return score
}

func extractKeywords(description string) []string {
	// Normalize: lowercase, remove punctuation
	normalized := punctRe.ReplaceAllString(strings.ToLower(description), " ")

	words := strings.Fields(normalized)

	// Dedupe and filter
	seen := make(map[string]bool)
	var keywords []string

	for _, word := range words {
		if len(word) < 3 {
			continue
		}
		if stopwords[word] {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}

	return keywords
}
