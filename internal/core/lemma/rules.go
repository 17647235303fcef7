package lemma

import "strings"

// ruleSet is a curated suffix fold table for one language
// these are lookup folds, not a lemmatizer, quality is a product non goal
// longest suffix wins so "aient" is tried before "ait"
type ruleSet struct {
	// minStem is the minimum rune count that must remain before a fold applies
	minStem int
	// suffixes maps an inflection suffix to the replacement that forms the lemma
	suffixes []suffixRule
}

type suffixRule struct {
	from string
	to   string
}

// fold returns the folded lemma or "" when no rule applies
func (rs ruleSet) fold(s string) string {
	for _, r := range rs.suffixes {
		if !strings.HasSuffix(s, r.from) {
			continue
		}
		stem := strings.TrimSuffix(s, r.from)
		if len([]rune(stem)) < rs.minStem {
			continue
		}
		return stem + r.to
	}
	return s
}

// foldRules keyed by primary language subtag
// romance sets fold common verb conjugations back to the infinitive,
// the english set strips plural and participle endings
var foldRules = map[string]ruleSet{
	"fr": {
		minStem: 2,
		suffixes: []suffixRule{
			{"aient", "er"}, {"erons", "er"}, {"erez", "er"},
			{"ions", "er"}, {"ait", "er"}, {"ais", "er"},
			{"ant", "er"}, {"ons", "er"}, {"ez", "er"},
			{"ées", "er"}, {"és", "er"}, {"ée", "er"},
			{"é", "er"}, {"es", "er"}, {"e", "er"},
		},
	},
	"es": {
		minStem: 2,
		suffixes: []suffixRule{
			{"aban", "ar"}, {"amos", "ar"}, {"aron", "ar"},
			{"ando", "ar"}, {"aba", "ar"}, {"ado", "ar"},
			{"an", "ar"}, {"as", "ar"}, {"a", "ar"},
			{"ieron", "ir"}, {"iendo", "er"}, {"ido", "er"},
			{"en", "er"}, {"es", "er"}, {"e", "er"},
		},
	},
	"it": {
		minStem: 2,
		suffixes: []suffixRule{
			{"avano", "are"}, {"iamo", "are"}, {"ando", "are"},
			{"ava", "are"}, {"ato", "are"}, {"ano", "are"},
			{"ai", "are"}, {"a", "are"}, {"o", "are"},
		},
	},
	"pt": {
		minStem: 2,
		suffixes: []suffixRule{
			{"aram", "ar"}, {"amos", "ar"}, {"ando", "ar"},
			{"ava", "ar"}, {"ado", "ar"},
			{"am", "ar"}, {"as", "ar"}, {"a", "ar"},
		},
	},
	"en": {
		minStem: 3,
		suffixes: []suffixRule{
			{"ies", "y"}, {"ing", ""}, {"ied", "y"},
			{"ed", ""}, {"es", ""}, {"s", ""},
		},
	},
}
