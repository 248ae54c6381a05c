package grammar

import (
	"regexp"
	"strings"
)

var (
	reBeingBase   = regexp.MustCompile(`(?i)\b(being|been)\s+([a-z]+)\b`)
	reBeBaseBy    = regexp.MustCompile(`(?i)\b(is|are|was|were|be|am|get|gets|got|isn't|aren't|wasn't|weren't)\s+([a-z]+)(\s+by)\b`)
	rePerfectBase = regexp.MustCompile(`(?i)\b(has|have|had|hasn't|haven't|hadn't)(\s+(?:not|never|already|just|also|recently|now)\s+|\s+)([a-z]+)\b`)
	reByAhead     = regexp.MustCompile(`(?i)^\s+by\b`)
	reClauseEnd   = regexp.MustCompile(`^\s*(?:[.,;:!?]|$)`)
)

// participleFor returns the past participle when word is a bare base form
// whose participle differs from it.
func participleFor(word string) (*Verb, bool) {
	v, forms, ok := LookupVerb(word)
	if !ok || forms&FormBase == 0 || forms&FormParticiple != 0 {
		return nil, false
	}
	return v, true
}

func passiveRules() []Rule {
	return []Rule{
		{
			Name:     "passive-progressive-participle",
			Category: CategoryPassive,
			Scope:    ScopePhrase,
			Match:    reBeingBase,
			Target:   2,
			Rewrite: func(m Match) string {
				v, ok := participleFor(m.Group(2))
				if !ok {
					return m.Text
				}
				ambiguous := v.Adjective || (v.Noun && strings.EqualFold(m.Group(1), "been"))
				if ambiguous && !reByAhead.MatchString(m.After) {
					return m.Text
				}
				return m.Group(1) + " " + matchCase(m.Group(2), v.Participle)
			},
		},
		{
			Name:     "passive-agent-participle",
			Category: CategoryPassive,
			Scope:    ScopePhrase,
			Match:    reBeBaseBy,
			Target:   2,
			Rewrite: func(m Match) string {
				v, ok := participleFor(m.Group(2))
				if !ok {
					return m.Text
				}
				return m.Group(1) + " " + matchCase(m.Group(2), v.Participle) + m.Group(3)
			},
		},
		{
			Name:     "passive-perfect-participle",
			Category: CategoryPassive,
			Scope:    ScopePhrase,
			Match:    rePerfectBase,
			Target:   3,
			Rewrite: func(m Match) string {
				v, ok := participleFor(m.Group(3))
				if !ok {
					return m.Text
				}
				switch {
				case v.Noun && !reObjectAhead.MatchString(m.After):
					return m.Text
				case v.Adjective && !reObjectAhead.MatchString(m.After) && !reClauseEnd.MatchString(m.After):
					return m.Text
				}
				return m.Group(1) + m.Group(2) + matchCase(m.Group(3), v.Participle)
			},
		},
	}
}
