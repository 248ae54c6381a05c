package grammar

import (
	"regexp"
	"strings"
)

const (
	modalWords  = `can|could|will|would|shall|should|may|might|must|cannot|can't|couldn't|won't|wouldn't|shouldn't|mustn't`
	modalAdverb = `also|still|not|never|definitely|probably|surely|just|only|easily|soon|now|then|certainly|likely`
)

var (
	reRegularized = regexp.MustCompile(`(?i)\b[a-z]+ed\b`)
	rePerfectPast = regexp.MustCompile(`(?i)\b(has|have|had|hasn't|haven't|hadn't)(\s+(?:not|never|already|just|also|recently)\s+|\s+)([a-z]+)\b`)
	reDoSupport   = regexp.MustCompile(`(?i)\b(do|does|did|don't|doesn't|didn't)(\s+(?:not|i|you|he|she|it|we|they))?\s+([a-z]+)\b`)
	reModalVerb   = regexp.MustCompile(`(?i)\b(` + modalWords + `)(\s+(?:` + modalAdverb + `))?\s+([a-z]+)\b`)
)

func irregularVerbRules() []Rule {
	return []Rule{
		{
			Name:     "irregular-regularized-past",
			Category: CategoryIrregular,
			Scope:    ScopeToken,
			Match:    reRegularized,
			Rewrite: func(m Match) string {
				if fix, ok := overRegulated[strings.ToLower(m.Text)]; ok {
					return matchCase(m.Text, fix)
				}
				return m.Text
			},
		},
		{
			Name:     "irregular-perfect-participle",
			Category: CategoryIrregular,
			Scope:    ScopePhrase,
			Match:    rePerfectPast,
			Target:   3,
			Rewrite: func(m Match) string {
				word := m.Group(3)
				v, forms, ok := LookupVerb(word)
				if !ok || forms&FormPast == 0 || forms&FormParticiple != 0 {
					return m.Text
				}
				return m.Group(1) + m.Group(2) + matchCase(word, v.Participle)
			},
		},
		{
			Name:     "irregular-do-support",
			Category: CategoryIrregular,
			Scope:    ScopePhrase,
			Match:    reDoSupport,
			Target:   3,
			Rewrite: func(m Match) string {
				word := m.Group(3)
				if strings.HasSuffix(m.Before, "-") {
					return m.Text
				}
				v, forms, ok := LookupVerb(word)
				if !ok || forms&FormBase != 0 || forms&(FormPast|FormThird|FormParticiple) == 0 {
					return m.Text
				}
				return m.Group(1) + m.Group(2) + " " + matchCase(word, v.Base)
			},
		},
	}
}

func modalRules() []Rule {
	return []Rule{{
		Name:     "modal-base-form",
		Category: CategoryModal,
		Scope:    ScopePhrase,
		Match:    reModalVerb,
		Target:   3,
		Rewrite: func(m Match) string {
			modal, word := m.Group(1), m.Group(3)
			// "In May completed" names the month.
			if modal == "May" && strings.TrimSpace(currentClause(m.Before)) != "" {
				return m.Text
			}
			v, forms, ok := LookupVerb(word)
			if !ok || forms&FormBase != 0 {
				return m.Text
			}
			return modal + m.Group(2) + " " + matchCase(word, v.Base)
		},
	}}
}
