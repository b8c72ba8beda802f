package nlp

import (
	"errors"
	"strings"
	"testing"
)

// identityLemmatizer returns words unchanged except for a fixed table of
// known inflections, mimicking the dictionary without loading it.
type identityLemmatizer struct{}

var testLemmas = map[string]string{
	"mountains": "mountain",
	"relaxing":  "relax",
	"beaches":   "beach",
	"trips":     "trip",
}

func (identityLemmatizer) Lemma(word string) string {
	if base, ok := testLemmas[word]; ok {
		return base
	}
	return word
}

func newTestExtractor() *Extractor {
	return newExtractorWithLoader(func() (Lemmatizer, error) {
		return identityLemmatizer{}, nil
	})
}

func TestTerms_StopwordsExcluded(t *testing.T) {
	t.Parallel()
	e := newTestExtractor()

	terms, err := e.Terms("our romantic trip to Paris")
	if err != nil {
		t.Fatalf("Terms returned error: %v", err)
	}

	for _, term := range terms {
		if term == "trip" {
			t.Error("stopword 'trip' must never appear in the term set")
		}
	}
	if !contains(terms, "romance") {
		t.Errorf("expected 'romantic' canonicalized to 'romance', got %v", terms)
	}
}

func TestTerms_SynonymSubstitution(t *testing.T) {
	t.Parallel()
	e := newTestExtractor()

	cases := map[string]string{
		"historical":  "history",
		"adventurous": "adventure",
		"cultural":    "culture",
		"mountains":   "mountain",
	}
	for input, want := range cases {
		terms, err := e.Terms(input)
		if err != nil {
			t.Fatalf("Terms(%q) returned error: %v", input, err)
		}
		if len(terms) != 1 || terms[0] != want {
			t.Errorf("Terms(%q) = %v, want [%s]", input, terms, want)
		}
	}
}

func TestTerms_SynonymAppliesToLemma(t *testing.T) {
	t.Parallel()
	e := newTestExtractor()

	// "relaxing" lemmatizes to "relax", which has no synonym entry;
	// the lemma is kept as-is.
	terms, err := e.Terms("relaxing beaches")
	if err != nil {
		t.Fatalf("Terms returned error: %v", err)
	}
	if !contains(terms, "relax") || !contains(terms, "beach") {
		t.Errorf("expected lemmas [beach relax], got %v", terms)
	}
}

func TestTerms_Deterministic(t *testing.T) {
	t.Parallel()
	e := newTestExtractor()

	const message = "a cultural adventurous trip with mountains and beaches"
	first, err := e.Terms(message)
	if err != nil {
		t.Fatalf("Terms returned error: %v", err)
	}
	second, err := e.Terms(message)
	if err != nil {
		t.Fatalf("Terms returned error: %v", err)
	}

	if strings.Join(first, ",") != strings.Join(second, ",") {
		t.Errorf("identical input produced different term sets: %v vs %v", first, second)
	}
}

func TestTerms_DuplicatesCollapse(t *testing.T) {
	t.Parallel()
	e := newTestExtractor()

	terms, err := e.Terms("beach beach BEACHES")
	if err != nil {
		t.Fatalf("Terms returned error: %v", err)
	}
	if len(terms) != 1 || terms[0] != "beach" {
		t.Errorf("expected duplicates to collapse to [beach], got %v", terms)
	}
}

func TestTerms_EmptyMessage(t *testing.T) {
	t.Parallel()
	e := newTestExtractor()

	terms, err := e.Terms("")
	if err != nil {
		t.Fatalf("Terms returned error: %v", err)
	}
	if len(terms) != 0 {
		t.Errorf("expected no terms for empty message, got %v", terms)
	}
}

func TestTerms_PunctuationIgnored(t *testing.T) {
	t.Parallel()
	e := newTestExtractor()

	terms, err := e.Terms("beach, party! (nightlife)")
	if err != nil {
		t.Fatalf("Terms returned error: %v", err)
	}
	want := []string{"beach", "nightlife", "party"}
	if len(terms) != len(want) {
		t.Fatalf("expected %v, got %v", want, terms)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %s, want %s", i, terms[i], want[i])
		}
	}
}

func TestTerms_LoaderFailureFailsClosed(t *testing.T) {
	t.Parallel()
	loadErr := errors.New("dictionary missing")
	e := newExtractorWithLoader(func() (Lemmatizer, error) {
		return nil, loadErr
	})

	if _, err := e.Terms("beach"); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("expected ErrModelUnavailable, got %v", err)
	}

	// The failure is memoized: later calls keep failing rather than
	// retrying the load.
	if _, err := e.Terms("beach"); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("expected memoized ErrModelUnavailable, got %v", err)
	}
}

func TestTerms_LoadedOnce(t *testing.T) {
	t.Parallel()
	loads := 0
	e := newExtractorWithLoader(func() (Lemmatizer, error) {
		loads++
		return identityLemmatizer{}, nil
	})

	for i := 0; i < 5; i++ {
		if _, err := e.Terms("beach"); err != nil {
			t.Fatalf("Terms returned error: %v", err)
		}
	}
	if loads != 1 {
		t.Errorf("expected exactly one dictionary load, got %d", loads)
	}
}

func contains(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}
