package grammar

import (
	"regexp"
	"strings"
)

const objectStart = `the|a|an|this|that|these|those|our|their|his|her|its|my|your|all|some|it|them`

var (
	reForBase       = regexp.MustCompile(`(?i)\b(for)\s+([a-z]+)\b`)
	reForPast       = regexp.MustCompile(`(?i)\b(for)\s+([a-z]+ed)\s+(` + objectStart + `)\b`)
	reMotionForIng  = regexp.MustCompile(`(?i)\b(went|came|go|goes|come|comes|going|coming|visited|visit|visits|arrived|arrive|met|meet|called|call|gathered|reached|stayed|stay)\b([^.,;!?]*?)\bfor\s+([a-z]+ing)\s+(` + objectStart + `)\b`)
	reInOrderIng    = regexp.MustCompile(`(?i)\b(in\s+order)\s+(?:for|to)\s+([a-z]+ing)\b`)
	reObjectAhead   = regexp.MustCompile(`(?i)^\s+(?:` + objectStart + `)\b`)
)

func purposeRules() []Rule {
	return []Rule{
		{
			Name:     "purpose-for-base",
			Category: CategoryPurpose,
			Scope:    ScopePhrase,
			Match:    reForBase,
			Target:   2,
			Rewrite: func(m Match) string {
				word := m.Group(2)
				v, forms, ok := LookupVerb(word)
				if !ok || forms&FormBase == 0 {
					return m.Text
				}
				// "sent for review" keeps the noun reading unless an object follows.
				if (v.Noun || v.Adjective || forms&FormPast != 0) && !reObjectAhead.MatchString(m.After) {
					return m.Text
				}
				return matchCase(m.Group(1), "to") + " " + strings.ToLower(word)
			},
		},
		{
			Name:     "purpose-for-past",
			Category: CategoryPurpose,
			Scope:    ScopePhrase,
			Match:    reForPast,
			Target:   2,
			Rewrite: func(m Match) string {
				v, forms, ok := LookupVerb(m.Group(2))
				if !ok || forms&(FormPast|FormParticiple) == 0 || forms&FormBase != 0 {
					return m.Text
				}
				return matchCase(m.Group(1), "to") + " " + v.Base + " " + m.Group(3)
			},
		},
		{
			Name:     "purpose-motion-gerund",
			Category: CategoryPurpose,
			Scope:    ScopeClause,
			Match:    reMotionForIng,
			Target:   3,
			Rewrite: func(m Match) string {
				v, ok := verbAs(m.Group(3), FormGerund)
				if !ok {
					return m.Text
				}
				return m.Group(1) + m.Group(2) + "to " + v.Base + " " + m.Group(4)
			},
		},
		{
			Name:     "purpose-in-order-to",
			Category: CategoryPurpose,
			Scope:    ScopePhrase,
			Match:    reInOrderIng,
			Target:   2,
			Rewrite: func(m Match) string {
				v, ok := verbAs(m.Group(2), FormGerund)
				if !ok {
					return m.Text
				}
				return m.Group(1) + " to " + v.Base
			},
		},
	}
}
