package grammar

import (
	"regexp"
	"strings"
)

const weekdays = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

var (
	rePastMarker = regexp.MustCompile(`(?i)\b(?:yesterday|last\s+(?:week|month|year|night|evening|morning|time|` + weekdays +
		`)|(?:\d+|a|an|two|three|few)\s+(?:days?|weeks?|months?|years?|hours?)\s+ago|earlier\s+today|previously)\b`)
	reFutureMarker = regexp.MustCompile(`(?i)\b(?:tomorrow|next\s+(?:week|month|year|time|` + weekdays +
		`)|later\s+today|tonight|in\s+the\s+coming\s+(?:days|weeks|months))\b`)
)

// tenseBlockers mark sentences with more than one clause or reported
// content, where a time adverb does not fix the tense of the first verb.
var tenseBlockers = setOf(
	"said", "says", "told", "asked", "that", "because", "when", "if", "while",
	"since", "until", "before", "after", "although", "though", "which", "who",
	"whether", "unless", "planned", "decided", "promised", "agreed", "expected",
	"hoped", "wanted", "than", "and", "but", "so",
)

var pastContractions = map[string]string{
	"i'm": "I was", "it's": "it was", "we're": "we were", "they're": "they were",
	"you're": "you were", "he's": "he was", "she's": "she was",
	"that's": "that was", "there's": "there was",
}

func tenseRules() []Rule {
	return []Rule{{
		Name:     "tense-time-marker",
		Category: CategoryTense,
		Scope:    ScopeSentence,
		Match:    reSentence,
		Rewrite: func(m Match) string {
			lead, body, end := splitSentence(m.Text)
			past := rePastMarker.MatchString(body)
			future := reFutureMarker.MatchString(body)
			if past == future {
				return m.Text
			}
			for _, w := range wordsOf(body) {
				if tenseBlockers[strings.ToLower(w)] {
					return m.Text
				}
			}
			if past {
				return lead + toPast(body, m.Protected) + end
			}
			return lead + toFuture(body, m.Protected) + end
		},
	}}
}

// hasSubjectBefore reports whether the verb at toks[i] follows a pronoun or
// a "determiner + noun" subject.
func hasSubjectBefore(toks []token, i int) bool {
	if i == 0 {
		return false
	}
	prev := strings.ToLower(toks[i-1].text)
	if subjectPronouns[prev] {
		return true
	}
	return i >= 2 && determiners[strings.ToLower(toks[i-2].text)] && !determiners[prev]
}

func pluralSubject(toks []token, i int) bool {
	if i == 0 {
		return false
	}
	prev := strings.ToLower(toks[i-1].text)
	switch prev {
	case "we", "they", "you":
		return true
	case "i", "he", "she", "it":
		return false
	}
	return isPluralCountable(prev)
}

// toPast rewrites the first finite verb of a sentence into the simple past.
func toPast(body string, protected ProtectedSet) string {
	toks := tokensOf(body)
	for i, t := range toks {
		lw := strings.ToLower(t.text)
		if protected.Contains(lw) {
			return body
		}
		var next *token
		if i+1 < len(toks) {
			next = &toks[i+1]
		}
		replace := func(start, end int, text string) string {
			return applyEdits(body, []edit{{start: start, end: end, text: text}})
		}

		switch lw {
		case "is", "am":
			return replace(t.start, t.end, matchCase(t.text, "was"))
		case "are":
			return replace(t.start, t.end, matchCase(t.text, "were"))
		case "isn't":
			return replace(t.start, t.end, matchCase(t.text, "wasn't"))
		case "aren't":
			return replace(t.start, t.end, matchCase(t.text, "weren't"))
		case "do", "does":
			return replace(t.start, t.end, matchCase(t.text, "did"))
		case "don't", "doesn't":
			return replace(t.start, t.end, matchCase(t.text, "didn't"))
		case "can":
			return replace(t.start, t.end, matchCase(t.text, "could"))
		case "has", "have":
			if next != nil {
				if strings.EqualFold(next.text, "been") {
					be := "was"
					if lw == "have" && pluralSubject(toks, i) {
						be = "were"
					}
					return replace(t.start, next.end, matchCase(t.text, be))
				}
				if v, ok := verbAs(next.text, FormParticiple); ok && !protected.Contains(next.text) {
					return replace(t.start, next.end, matchCase(t.text, v.Past))
				}
			}
			return replace(t.start, t.end, matchCase(t.text, "had"))
		case "will", "shall":
			if next == nil {
				return body
			}
			if strings.EqualFold(next.text, "be") {
				be := "was"
				if pluralSubject(toks, i) {
					be = "were"
				}
				return replace(t.start, next.end, matchCase(t.text, be))
			}
			if v, ok := verbAs(next.text, FormBase); ok && !protected.Contains(next.text) {
				return replace(t.start, next.end, matchCase(t.text, v.Past))
			}
			return body
		case "won't":
			return replace(t.start, t.end, matchCase(t.text, "didn't"))
		}
		if c, ok := pastContractions[lw]; ok {
			if next != nil {
				if _, forms, ok := LookupVerb(next.text); ok && forms&FormParticiple != 0 && forms&FormGerund == 0 {
					return body
				}
			}
			if lw != "i'm" {
				c = matchCase(t.text, c)
			}
			return replace(t.start, t.end, c)
		}
		if finiteWords[lw] {
			return body
		}

		v, forms, ok := LookupVerb(lw)
		if !ok || (i > 0 && determiners[strings.ToLower(toks[i-1].text)]) {
			continue
		}
		if forms&FormPast != 0 {
			return body
		}
		if forms&(FormBase|FormThird) != 0 && hasSubjectBefore(toks, i) {
			return replace(t.start, t.end, matchCase(t.text, v.Past))
		}
	}
	return body
}

// toFuture rewrites a past-tense first verb into will + base.
func toFuture(body string, protected ProtectedSet) string {
	toks := tokensOf(body)
	for i, t := range toks {
		lw := strings.ToLower(t.text)
		if protected.Contains(lw) {
			return body
		}
		var next *token
		if i+1 < len(toks) {
			next = &toks[i+1]
		}
		replace := func(start, end int, text string) string {
			return applyEdits(body, []edit{{start: start, end: end, text: text}})
		}

		switch lw {
		case "was", "were":
			if next != nil && strings.EqualFold(next.text, "going") {
				return body
			}
			return replace(t.start, t.end, matchCase(t.text, "will be"))
		case "wasn't", "weren't":
			return replace(t.start, t.end, matchCase(t.text, "won't be"))
		case "did":
			if next != nil {
				if _, ok := verbAs(next.text, FormBase); ok {
					return replace(t.start, t.end, matchCase(t.text, "will"))
				}
			}
			return body
		case "didn't":
			return replace(t.start, t.end, matchCase(t.text, "won't"))
		}
		if finiteWords[lw] {
			return body
		}

		v, forms, ok := LookupVerb(lw)
		if !ok || !hasSubjectBefore(toks, i) {
			continue
		}
		if forms&FormPast != 0 && forms&FormBase == 0 {
			return replace(t.start, t.end, matchCase(t.text, "will "+v.Base))
		}
		return body
	}
	return body
}
