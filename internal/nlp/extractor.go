package nlp

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// ErrModelUnavailable is returned when the lemmatizer dictionary cannot be
// loaded. The chat endpoint surfaces it as a 503; it is never silently
// downgraded to an unfiltered or empty search.
var ErrModelUnavailable = errors.New("language model unavailable")

// synonyms maps surface lemmas to the canonical forms used in catalog tags.
var synonyms = map[string]string{
	"romantic":    "romance",
	"historical":  "history",
	"adventurous": "adventure",
	"relaxing":    "relaxation",
	"cultural":    "culture",
	"mountains":   "mountain",
}

// stopwords are travel-generic lemmas that carry no search signal.
var stopwords = map[string]struct{}{
	"trip":        {},
	"vacation":    {},
	"holiday":     {},
	"getaway":     {},
	"journey":     {},
	"tour":        {},
	"destination": {},
	"place":       {},
}

// Lemmatizer reduces an inflected word to its dictionary base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// Extractor turns a free-text travel request into a canonical set of search
// terms. The underlying dictionary is loaded lazily on first use and memoized
// for the process lifetime; once loaded it is read-only and safe for
// concurrent use.
type Extractor struct {
	once   sync.Once
	load   func() (Lemmatizer, error)
	lemmas Lemmatizer
	err    error
}

// NewExtractor creates an extractor backed by the English golem dictionary.
func NewExtractor() *Extractor {
	return &Extractor{load: loadEnglish}
}

// newExtractorWithLoader lets tests substitute the dictionary loader.
func newExtractorWithLoader(load func() (Lemmatizer, error)) *Extractor {
	return &Extractor{load: load}
}

func loadEnglish() (Lemmatizer, error) {
	return golem.New(en.New())
}

// Terms extracts the canonical search-term set from message: lowercase,
// lemmatize, drop stopwords, substitute synonyms, collapse duplicates. The
// result is sorted so the compiled query is deterministic for a given input.
//
// An empty or all-separator message yields an empty slice. If the dictionary
// failed to load, Terms returns an error wrapping ErrModelUnavailable on
// every call.
func (e *Extractor) Terms(message string) ([]string, error) {
	e.once.Do(func() {
		e.lemmas, e.err = e.load()
	})
	if e.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, e.err)
	}

	set := make(map[string]struct{})
	for _, token := range tokenize(strings.ToLower(message)) {
		lemma := e.lemmas.Lemma(token)
		if _, skip := stopwords[lemma]; skip {
			continue
		}
		if canonical, ok := synonyms[lemma]; ok {
			lemma = canonical
		}
		set[lemma] = struct{}{}
	}

	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms, nil
}

// tokenize splits text on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
