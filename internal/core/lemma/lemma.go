// Package lemma provides a deterministic surface-word to lemma normalizer
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Width fold fullwidth to ASCII
// 5 Trim surrounding punctuation and whitespace
// 6 Language specific lemma folding when a rule set exists for the language
package lemma

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer folds a surface word into its lookup lemma
// safe for concurrent use, transformer chains are pooled
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the lemma for surface in the given language
// unknown languages fall through with only the generic pipeline applied
// it never fails, the worst case is returning the cleaned surface unchanged
func (n *Normalizer) Normalize(surface, language string) string {
	s := Clean(surface)
	if s == "" {
		return ""
	}
	if rules, ok := foldRules[langKey(language)]; ok {
		if folded := rules.fold(s); folded != "" {
			return folded
		}
	}
	return s
}

// Clean applies the language independent part of the pipeline
func Clean(surface string) string {
	if surface == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s := strings.ToValidUTF8(surface, "")

	// 2-4 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 5 strip surrounding punctuation and collapse interior whitespace
	ns = strings.TrimFunc(ns, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
	})
	return strings.Join(strings.Fields(ns), " ")
}

// langKey reduces a BCP-47 style code to its primary subtag, "fr-CA" -> "fr"
func langKey(language string) string {
	l := strings.ToLower(strings.TrimSpace(language))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	return l
}
