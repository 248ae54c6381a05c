package grammar

import (
	"regexp"
	"strings"
)

const listItem = `(?:to\s+)?[a-z]+`

var (
	reSeries   = regexp.MustCompile(`(?i)\b(` + listItem + `)((?:,\s+` + listItem + `)+)(,?\s+(?:and|or)\s+)(` + listItem + `)\b`)
	rePair     = regexp.MustCompile(`(?i)\b(` + listItem + `)(\s+(?:and|or)\s+)(` + listItem + `)\b`)
	reListTail = regexp.MustCompile(`(?i),\s+(` + listItem + `)`)
	reToPrefix = regexp.MustCompile(`(?i)^to\s+`)
)

type itemForm int

const (
	itemOther itemForm = iota
	itemGerund
	itemInfinitive
)

type listEntry struct {
	start, end int
	text       string
	form       itemForm
	verb       *Verb
}

func classifyItem(item string) (itemForm, *Verb) {
	if loc := reToPrefix.FindStringIndex(item); loc != nil {
		v, forms, ok := LookupVerb(item[loc[1]:])
		if !ok || forms&FormBase == 0 || v.Noun {
			return itemOther, nil
		}
		return itemInfinitive, v
	}
	if !strings.HasSuffix(strings.ToLower(item), "ing") {
		return itemOther, nil
	}
	v, ok := verbAs(item, FormGerund)
	if !ok {
		return itemOther, nil
	}
	return itemGerund, v
}

// renderItem rewrites one list item into form f, keeping its capitalization.
func renderItem(e listEntry, f itemForm) string {
	if e.form == f {
		return e.text
	}
	if f == itemGerund {
		return matchCase(e.text, e.verb.Gerund)
	}
	return matchCase(e.text, "to "+e.verb.Base)
}

// unifyList gives every item of a list the majority form; a tie goes to the
// first item.
func unifyList(s string, items []listEntry, protected ProtectedSet) string {
	counts := map[itemForm]int{}
	for _, it := range items {
		if it.form == itemOther || protected.Contains(reToPrefix.ReplaceAllString(it.text, "")) {
			return s
		}
		counts[it.form]++
	}
	if len(counts) < 2 {
		return s
	}
	target := items[0].form
	for f, n := range counts {
		if n > counts[target] {
			target = f
		}
	}

	var edits []edit
	for _, it := range items {
		if it.form != target {
			edits = append(edits, edit{start: it.start, end: it.end, text: renderItem(it, target)})
		}
	}
	return applyEdits(s, edits)
}

func entryAt(s string, start, end int) listEntry {
	text := s[start:end]
	f, v := classifyItem(text)
	return listEntry{start: start, end: end, text: text, form: f, verb: v}
}

func parallelRules() []Rule {
	return []Rule{
		{
			Name:     "parallel-series",
			Category: CategoryParallel,
			Scope:    ScopeClause,
			Match:    reSeries,
			Rewrite: func(m Match) string {
				s := m.Text
				items := []listEntry{entryAt(s, 0, len(m.Group(1)))}
				offset := len(m.Group(1))
				for _, loc := range reListTail.FindAllStringSubmatchIndex(m.Group(2), -1) {
					items = append(items, entryAt(s, offset+loc[2], offset+loc[3]))
				}
				last := len(s) - len(m.Group(4))
				items = append(items, entryAt(s, last, len(s)))
				return unifyList(s, items, m.Protected)
			},
		},
		{
			Name:     "parallel-pair",
			Category: CategoryParallel,
			Scope:    ScopePhrase,
			Match:    rePair,
			Rewrite: func(m Match) string {
				s := m.Text
				items := []listEntry{
					entryAt(s, 0, len(m.Group(1))),
					entryAt(s, len(s)-len(m.Group(3)), len(s)),
				}
				return unifyList(s, items, m.Protected)
			},
		},
	}
}
