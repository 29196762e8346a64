// Package keyword derives descriptive tags from plain text using
// part-of-speech filtering and frequency ranking.
package keyword

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultTopN is the number of keywords returned when no explicit count
// is requested.
const DefaultTopN = 5

// Extractor ranks the nouns of a text by frequency.
type Extractor struct {
	tagger Tagger
	stops  map[string]struct{}
	topN   int
}

// New creates an Extractor with the given tagger and stopword list.
func New(tagger Tagger, stopwords []string, topN int) *Extractor {
	if topN <= 0 {
		topN = DefaultTopN
	}
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{tagger: tagger, stops: stops, topN: topN}
}

// NewDefault creates an Extractor with the prose tagger and the built-in
// English stopword list.
func NewDefault() *Extractor {
	return New(NewProseTagger(), DefaultStopwords(), DefaultTopN)
}

// Extract returns the extractor's default number of keywords.
func (e *Extractor) Extract(text string) []string {
	return e.ExtractN(text, e.topN)
}

// ExtractN returns up to topN distinct keywords ordered by descending
// frequency; equally frequent tokens keep the order of their first
// occurrence in the text. Empty or whitespace-only input returns nil
// without invoking the tagger; a tagger failure degrades to nil. This
// method never returns an error.
func (e *Extractor) ExtractN(text string, topN int) []string {
	if topN <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	tokens, err := e.tagger.Tag(strings.ToLower(text))
	if err != nil {
		return nil
	}

	counts := make(map[string]int)
	var order []string // surface forms in first-occurrence order

	for _, tok := range tokens {
		if !isNounTag(tok.Tag) || !hasLetter(tok.Text) {
			continue
		}
		if _, stop := e.stops[tok.Text]; stop {
			continue
		}
		if counts[tok.Text] == 0 {
			order = append(order, tok.Text)
		}
		counts[tok.Text]++
	}

	// Stable sort over first-occurrence order: ties keep earlier tokens first.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// isNounTag reports whether tag is a common or proper noun tag
// (NN, NNS, NNP, NNPS).
func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
