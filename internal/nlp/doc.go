// Package nlp normalizes free-text travel requests into canonical search
// terms: lowercase, lemmatize (golem English dictionary), drop travel-generic
// stopwords, substitute synonyms toward the vocabulary used in catalog tags.
//
// Dictionary loading is deferred to first use and memoized process-wide;
// a load failure is sticky and reported on every call so the caller can fail
// closed instead of searching unfiltered.
package nlp
