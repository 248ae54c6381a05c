package grammar

import (
	"regexp"
	"strings"
)

// phrasalFixes maps "verb|particle" to the particle the verb should take.
// An empty value drops the particle.
var phrasalFixes = map[string]string{
	"look|at for":    "for",
	"discuss|about":  "",
	"cope|up with":   "with",
	"return|back":    "",
	"revert|back":    "",
	"repeat|again":   "",
	"explain|about":  "",
	"comprise|of":    "",
	"emphasize|on":   "",
	"stress|on":      "",
	"mention|about":  "",
	"reach|to":       "",
	"order|for":      "",
	"request|for":    "",
	"attend|to the":  "the",
	"answer|to":      "",
	"enter|into the": "the",
}

var rePhrasal = regexp.MustCompile(`(?i)\b([a-z]+)\s+(at\s+for|up\s+with|to\s+the|into\s+the|about|back|again|of|on|to|for)\b`)

func phrasalRules() []Rule {
	return []Rule{{
		Name:     "phrasal-verb-particle",
		Category: CategoryPhrasal,
		Scope:    ScopePhrase,
		Match:    rePhrasal,
		Target:   1,
		Rewrite: func(m Match) string {
			v, _, ok := LookupVerb(m.Group(1))
			if !ok {
				return m.Text
			}
			particle := strings.ToLower(strings.Join(strings.Fields(m.Group(2)), " "))
			fix, ok := phrasalFixes[v.Base+"|"+particle]
			if !ok {
				return m.Text
			}
			// "an order for cement" is a noun phrase.
			if v.Noun && determiners[lastWord(m.Before)] {
				return m.Text
			}
			if fix == "" {
				return m.Group(1)
			}
			return m.Group(1) + " " + fix
		},
	}}
}
