package grammar

import (
	"regexp"
	"strings"
)

const reportingVerb = `(said|says|told\s+(?:me|him|her|us|them|[A-Z][a-z]+))`

var (
	// He said, "I am tired".
	reQuoteAfter = regexp.MustCompile(`\b([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+` + reportingVerb +
		`\s*,?\s*["“]([^"”]+?)[.!?,]?["”]`)
	// "I am tired," he said.
	reQuoteBefore = regexp.MustCompile(`["“]([^"”]+?)[.!?,]?["”]\s*,?\s*([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+` +
		reportingVerb + `\b`)

	reNextPeriod = regexp.MustCompile(`(?i)\bnext\s+(week|month|year|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reLastPeriod = regexp.MustCompile(`(?i)\blast\s+(week|month|year|night|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

var speakerPronouns = setOf("he", "she", "they", "we", "i", "you")

var contractions = map[string]string{
	"i'm": "i am", "i've": "i have", "i'll": "i will", "i'd": "i would",
	"we're": "we are", "we've": "we have", "we'll": "we will",
	"it's": "it is", "that's": "that is",
}

// backshift moves present and future forms one step into the past.
var backshift = map[string]string{
	"am": "was", "is": "was", "are": "were", "was": "had been", "were": "had been",
	"will": "would", "can": "could", "shall": "should", "may": "might",
	"have": "had", "has": "had", "do": "did", "does": "did",
	"don't": "didn't", "doesn't": "didn't", "won't": "wouldn't",
	"can't": "couldn't", "isn't": "wasn't", "aren't": "weren't",
	"haven't": "hadn't", "hasn't": "hadn't",
}

// deictic shifts time and place words to the reporter's point of view.
var deictic = map[string]string{
	"tomorrow": "the next day", "yesterday": "the day before", "today": "that day",
	"tonight": "that night", "now": "then", "here": "there", "this": "that",
	"these": "those", "ago": "before",
}

// noShiftAfter are words after which a verb is already non-finite or has
// been backshifted through its auxiliary.
var noShiftAfter = setOf(
	"to", "will", "would", "can", "could", "shall", "should", "may", "might",
	"must", "did", "didn't", "do", "does", "don't", "doesn't", "had", "has",
	"have", "won't", "can't", "not",
)

// speakerPronoun picks the pronoun that replaces first person in reported
// speech. Non-pronoun speakers get "they"; agreement rules fix the verb.
func speakerPronoun(speaker string) string {
	w := lastWord(speaker)
	if speakerPronouns[w] {
		return w
	}
	return "they"
}

// reportQuote converts the words of a direct quote into reported form.
func reportQuote(quote, pron string, shift bool, protected ProtectedSet) string {
	quote = strings.TrimSpace(quote)
	quote = reWord.ReplaceAllStringFunc(quote, func(w string) string {
		if exp, ok := contractions[strings.ToLower(w)]; ok {
			return exp
		}
		return w
	})
	if shift {
		quote = reNextPeriod.ReplaceAllString(quote, "the following $1")
		quote = reLastPeriod.ReplaceAllString(quote, "the previous $1")
	}

	self := pron == "i"
	toks := tokensOf(quote)
	var edits []edit
	prev := ""
	for _, t := range toks {
		lw := strings.ToLower(t.text)
		repl := ""
		switch {
		case protected.Contains(lw):
		case lw == "i" && !self:
			repl = pron
		case lw == "me" && !self:
			repl = objectPronoun[pron]
		case lw == "my" && !self:
			repl = possessivePronoun[pron]
		case lw == "we" && pron != "we":
			repl = "they"
		case lw == "us" && pron != "we":
			repl = "them"
		case lw == "our" && pron != "we":
			repl = "their"
		case shift && backshift[lw] != "" && !noShiftAfter[prev]:
			repl = backshift[lw]
		case shift && deictic[lw] != "":
			repl = deictic[lw]
		case shift && subjectPronouns[prev] && !noShiftAfter[prev]:
			if v, forms, ok := LookupVerb(lw); ok && forms&(FormBase|FormThird) != 0 && forms&FormPast == 0 {
				repl = v.Past
			}
		}
		if repl != "" {
			edits = append(edits, edit{start: t.start, end: t.end, text: repl})
		}
		prev = lw
	}
	out := applyEdits(quote, edits)
	if pron == "i" {
		out = reWord.ReplaceAllStringFunc(out, func(w string) string {
			if w == "i" {
				return "I"
			}
			return w
		})
	}
	if w := firstWord(out); determiners[w] || subjectPronouns[w] || w == "there" {
		out = lowerFirst(out)
	} else if _, _, ok := LookupVerb(w); ok {
		out = lowerFirst(out)
	}
	return out
}

func reportedSpeechRules() []Rule {
	report := func(speaker, verb, quote string, protected ProtectedSet) string {
		shift := !strings.EqualFold(verb, "says")
		pron := speakerPronoun(speaker)
		return speaker + " " + verb + " that " + reportQuote(quote, pron, shift, protected)
	}
	return []Rule{
		{
			Name:     "reported-speech",
			Category: CategoryReported,
			Scope:    ScopeSentence,
			Match:    reQuoteAfter,
			Rewrite: func(m Match) string {
				return report(m.Group(1), m.Group(2), m.Group(3), m.Protected)
			},
		},
		{
			Name:     "reported-speech-inverted",
			Category: CategoryReported,
			Scope:    ScopeSentence,
			Match:    reQuoteBefore,
			Rewrite: func(m Match) string {
				return report(m.Group(2), m.Group(3), m.Group(1), m.Protected)
			},
		},
	}
}
