package grammar

import (
	"regexp"
	"sort"
	"strings"
)

// gerundGovernors take an -ing complement ("avoid using").
var gerundGovernors = []string{
	"enjoy", "avoid", "finish", "consider", "suggest", "recommend", "postpone",
	"practice", "deny", "quit",
}

// infinitiveGovernors take a to-infinitive complement ("decide to go").
var infinitiveGovernors = []string{
	"want", "decide", "wish", "plan", "hope", "agree", "refuse", "promise",
	"expect", "intend", "aim", "manage", "fail", "offer", "arrange", "attempt",
	"seem", "choose",
}

var (
	reGerundGoverned     = regexp.MustCompile(`(?i)\b(` + inflections(gerundGovernors) + `)\s+(to\s+)?([a-z]+)\b`)
	reInfinitiveGoverned = regexp.MustCompile(`(?i)\b(` + inflections(infinitiveGovernors) + `)\s+([a-z]+ing)\b`)
	reLookForward        = regexp.MustCompile(`(?i)\b(look|looks|looked|looking)\s+(forward\s+to)\s+([a-z]+)\b`)
)

// inflections builds a regexp alternation of every form of the given verbs.
func inflections(bases []string) string {
	seen := map[string]bool{}
	for _, b := range bases {
		v, ok := verbAs(b, FormBase)
		if !ok {
			seen[b] = true
			continue
		}
		for _, f := range []string{v.Base, v.Third, v.Past, v.Participle, v.Gerund} {
			seen[f] = true
		}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	// Longest first so "planned" wins over "plan".
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return strings.Join(out, "|")
}

func gerundRules() []Rule {
	return []Rule{
		{
			Name:     "gerund-after-verb",
			Category: CategoryGerund,
			Scope:    ScopePhrase,
			Match:    reGerundGoverned,
			Target:   3,
			Rewrite: func(m Match) string {
				if determiners[lastWord(m.Before)] {
					return m.Text
				}
				word := m.Group(3)
				v, forms, ok := LookupVerb(word)
				if !ok || forms&FormBase == 0 {
					return m.Text
				}
				if m.Group(2) == "" && (v.Noun || v.Adjective || forms&FormPast != 0) {
					return m.Text
				}
				return m.Group(1) + " " + matchCase(word, v.Gerund)
			},
		},
		{
			Name:     "gerund-look-forward-to",
			Category: CategoryGerund,
			Scope:    ScopePhrase,
			Match:    reLookForward,
			Target:   3,
			Rewrite: func(m Match) string {
				v, forms, ok := LookupVerb(m.Group(3))
				if !ok || forms&FormBase == 0 || v.Noun {
					return m.Text
				}
				return m.Group(1) + " " + m.Group(2) + " " + matchCase(m.Group(3), v.Gerund)
			},
		},
		{
			Name:     "infinitive-after-verb",
			Category: CategoryGerund,
			Scope:    ScopePhrase,
			Match:    reInfinitiveGoverned,
			Target:   2,
			Rewrite: func(m Match) string {
				prev := lastWord(m.Before)
				if determiners[prev] {
					return m.Text
				}
				// "site plan showing the layout": a noun, not a verb.
				if gov, forms, _ := LookupVerb(m.Group(1)); gov != nil && gov.Noun && forms&(FormPast|FormGerund) == 0 &&
					!subjectPronouns[prev] && !modals[prev] && prev != "to" {
					return m.Text
				}
				v, ok := verbAs(m.Group(2), FormGerund)
				if !ok {
					return m.Text
				}
				return m.Group(1) + " to " + v.Base
			},
		},
	}
}
