package grammar

import (
	"regexp"
	"strings"
)

var (
	reMeToo     = regexp.MustCompile(`(?i)(^|[.!?;]\s*)(me\s+(?:too|also))([.!?]|$)`)
	reMeNeither = regexp.MustCompile(`(?i)(^|[.!?;]\s*)(me\s+(?:neither|either))([.!?]|$)`)
	reNotToo    = regexp.MustCompile(`(?i)\b([a-z]+n't|cannot)\s+(too)([.!?,]|$)`)
)

// echoAux maps the auxiliary of an affirmative statement to the one an
// elliptical reply repeats.
var echoAux = map[string]string{
	"am": "am", "is": "am", "are": "am", "was": "was", "were": "was",
	"can": "can", "could": "could", "will": "will", "would": "would",
	"should": "should", "shall": "shall", "must": "must", "might": "might",
	"have": "have", "has": "have", "had": "had", "do": "do", "does": "do",
	"did": "did", "i'm": "am", "i've": "have", "i'll": "will",
}

// negAux maps negated auxiliaries to the positive form used after "neither".
var negAux = map[string]string{
	"don't": "do", "doesn't": "do", "didn't": "did", "can't": "can",
	"cannot": "can", "couldn't": "could", "won't": "will", "wouldn't": "would",
	"shouldn't": "should", "isn't": "am", "aren't": "am", "wasn't": "was",
	"weren't": "was", "haven't": "have", "hasn't": "have", "hadn't": "had",
	"mustn't": "must",
}

// previousAux picks the auxiliary an elliptical reply echoes from the
// sentence before it.
func previousAux(before string, table map[string]string) string {
	prev := strings.TrimRight(before, " .!?;")
	prev = currentClause(prev)
	words := wordsOf(prev)
	for _, w := range words {
		lw := strings.ToLower(w)
		if aux, ok := table[lw]; ok {
			return aux
		}
	}
	for _, w := range words {
		if _, forms, ok := LookupVerb(w); ok && forms&FormPast != 0 && forms&FormBase == 0 {
			return "did"
		}
	}
	return "do"
}

func ellipsisRules() []Rule {
	return []Rule{
		{
			Name:     "ellipsis-me-too",
			Category: CategoryEllipsis,
			Scope:    ScopeClause,
			Match:    reMeToo,
			Rewrite: func(m Match) string {
				aux := previousAux(m.Before+m.Group(1), echoAux)
				return m.Group(1) + "I " + aux + " too" + m.Group(3)
			},
		},
		{
			Name:     "ellipsis-me-neither",
			Category: CategoryEllipsis,
			Scope:    ScopeClause,
			Match:    reMeNeither,
			Rewrite: func(m Match) string {
				aux := previousAux(m.Before+m.Group(1), negAux)
				word := "Neither"
				if strings.HasSuffix(strings.TrimSpace(m.Group(1)), ";") {
					word = "neither"
				}
				return m.Group(1) + word + " " + aux + " I" + m.Group(3)
			},
		},
		{
			Name:     "ellipsis-negative-too",
			Category: CategoryEllipsis,
			Scope:    ScopePhrase,
			Match:    reNotToo,
			Target:   2,
			Rewrite: func(m Match) string {
				return m.Group(1) + " " + matchCase(m.Group(2), "either") + m.Group(3)
			},
		},
	}
}
