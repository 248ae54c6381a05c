package grammar

import (
	"regexp"
	"strings"
)

var (
	reSpaceBeforePunct = regexp.MustCompile(`\s+([,;:!?]|\.(?:\s|$))`)
	reNoSpaceAfter     = regexp.MustCompile(`([,;])([A-Za-z])`)
	reRepeatedComma    = regexp.MustCompile(`,(?:\s*,)+`)
	reIts              = regexp.MustCompile(`(?i)\b(its)\s+([a-z]+)\b`)
	reContractedOwn    = regexp.MustCompile(`(?i)\b(it's|you're|they're|there)\s+(own)\b`)
	reYour             = regexp.MustCompile(`(?i)\b(your)\s+([a-z]+)\b`)
	reTheir            = regexp.MustCompile(`(?i)\b(their)\s+([a-z']+)\b`)
	reLowerI           = regexp.MustCompile(`\bi\b`)
	reIntroPhrase      = regexp.MustCompile(`(?i)^(\s*)(in\s+addition|as\s+a\s+result|on\s+the\s+other\s+hand|in\s+the\s+(?:morning|afternoon|evening)|[a-z]+)\s+([a-z']+)`)
	reSeriesComma      = regexp.MustCompile(`(?i)\b([a-z]+),\s+([a-z]+)\s+(and|or)\s+`)
	reSentenceStart    = regexp.MustCompile(`(^|[.!?]["”']?\s+)([a-z])`)
	reTerminal         = regexp.MustCompile(`(?:[A-Za-z0-9)"”'%]|\[PH\d+\])$`)
)

// nounIng are -ing words that are nouns in site notes, never "it is + -ing".
var nounIng = setOf(
	"building", "meeting", "ceiling", "painting", "drawing", "wiring",
	"flooring", "roofing", "plumbing", "railing", "fencing", "setting",
	"beginning", "opening", "parking", "lighting", "housing", "evening",
	"morning", "funding", "training", "finishing", "plastering", "scaffolding",
	"shuttering", "reading", "booking", "planning", "marking", "welding",
	"spacing", "heating", "recording", "filling", "cladding", "coating",
)

var itsContracted = setOf(
	"a", "an", "the", "not", "been", "very", "too", "so", "really", "already",
	"still", "also", "time", "important", "necessary", "possible", "clear",
	"good", "done", "ready", "likely", "okay", "fine", "high", "difficult",
	"unclear", "urgent", "late", "now", "going",
)

var yourContracted = setOf(
	"welcome", "going", "doing", "coming", "being", "getting", "right", "not",
	"sure", "correct", "wrong", "supposed", "late", "a", "an", "the", "very",
)

var theirVerbs = map[string]string{
	"is": "there", "are": "there", "was": "there", "were": "there",
	"will": "there", "has": "there", "have": "there", "isn't": "there",
	"aren't": "there", "wasn't": "there", "weren't": "there",
	"going": "they're", "coming": "they're", "doing": "they're",
	"getting": "they're", "being": "they're", "not": "they're",
	"late": "they're", "ready": "they're", "sure": "they're",
}

var possessiveOf = map[string]string{"it's": "its", "you're": "your", "they're": "their", "there": "their"}

// transitionWords always take a comma when they open a sentence.
var transitionWords = setOf(
	"however", "therefore", "moreover", "furthermore", "additionally",
	"meanwhile", "finally", "firstly", "secondly", "thirdly", "unfortunately",
	"fortunately", "overall", "initially", "subsequently", "consequently",
	"nevertheless", "hence", "in addition", "as a result", "on the other hand",
)

// timeOpeners take a comma only before a subject ("Yesterday, we").
var timeOpeners = setOf(
	"yesterday", "today", "tomorrow", "later", "recently", "currently",
	"in the morning", "in the afternoon", "in the evening",
)

// listBreakers end the previous clause, so a comma after them is not a series.
var listBreakers = setOf("and", "or", "but", "so", "then", "which", "that", "who", "when", "where")

// spacingRules normalize spacing around punctuation before any other pass
// looks at clause boundaries.
func spacingRules() []Rule {
	return []Rule{
		{
			Name:     "punctuation-spacing",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reSpaceBeforePunct,
			Rewrite:  func(m Match) string { return m.Group(1) },
		},
		{
			Name:     "punctuation-space-after",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reNoSpaceAfter,
			Rewrite:  func(m Match) string { return m.Group(1) + " " + m.Group(2) },
		},
		{
			Name:     "punctuation-repeated-comma",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reRepeatedComma,
			Rewrite:  func(Match) string { return "," },
		},
	}
}

// apostropheRules fix its/it's, your/you're and their/there/they're.
func apostropheRules() []Rule {
	return []Rule{
		{
			Name:     "punctuation-its",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reIts,
			Target:   2,
			Rewrite: func(m Match) string {
				next := strings.ToLower(m.Group(2))
				if itsContracted[next] || (!nounIng[next] && isVerbGerund(next)) {
					return matchCase(m.Group(1), "it's") + " " + m.Group(2)
				}
				return m.Text
			},
		},
		{
			Name:     "punctuation-own",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reContractedOwn,
			Rewrite: func(m Match) string {
				return matchCase(m.Group(1), possessiveOf[strings.ToLower(m.Group(1))]) + " " + m.Group(2)
			},
		},
		{
			Name:     "punctuation-your",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reYour,
			Target:   2,
			Rewrite: func(m Match) string {
				if !yourContracted[strings.ToLower(m.Group(2))] {
					return m.Text
				}
				return matchCase(m.Group(1), "you're") + " " + m.Group(2)
			},
		},
		{
			Name:     "punctuation-their",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reTheir,
			Target:   2,
			Rewrite: func(m Match) string {
				fix, ok := theirVerbs[strings.ToLower(m.Group(2))]
				if !ok {
					return m.Text
				}
				return matchCase(m.Group(1), fix) + " " + m.Group(2)
			},
		},
	}
}

func punctuationRules() []Rule {
	return []Rule{
		{
			Name:     "punctuation-pronoun-i",
			Category: CategoryPunctuation,
			Scope:    ScopeToken,
			Match:    reLowerI,
			Rewrite:  func(Match) string { return "I" },
		},
		{
			Name:     "punctuation-introductory-comma",
			Category: CategoryPunctuation,
			Scope:    ScopeSentence,
			Match:    reSentence,
			Rewrite:  func(m Match) string { return introComma(m.Text) },
		},
		{
			Name:     "punctuation-serial-comma",
			Category: CategoryPunctuation,
			Scope:    ScopeClause,
			Match:    reSeriesComma,
			Rewrite:  serialComma,
		},
		{
			Name:     "punctuation-capitalization",
			Category: CategoryPunctuation,
			Scope:    ScopeSentence,
			Match:    reSentenceStart,
			Rewrite:  func(m Match) string { return m.Group(1) + strings.ToUpper(m.Group(2)) },
		},
		{
			Name:     "punctuation-terminal",
			Category: CategoryPunctuation,
			Scope:    ScopeSentence,
			Match:    reTerminal,
			Rewrite: func(m Match) string {
				if len(strings.Fields(m.Before)) < 2 {
					return m.Text
				}
				return m.Text + "."
			},
		},
	}
}

func isVerbGerund(word string) bool {
	_, forms, ok := LookupVerb(word)
	return ok && forms&FormGerund != 0
}

func introComma(sentence string) string {
	loc := reIntroPhrase.FindStringSubmatchIndex(sentence)
	if loc == nil {
		return sentence
	}
	opener := strings.ToLower(strings.Join(strings.Fields(sentence[loc[4]:loc[5]]), " "))
	next := strings.ToLower(sentence[loc[6]:loc[7]])
	switch {
	case transitionWords[opener]:
	case timeOpeners[opener] && (subjectPronouns[next] || determiners[next] || next == "there"):
	default:
		return sentence
	}
	return sentence[:loc[5]] + "," + sentence[loc[5]:]
}

func serialComma(m Match) string {
	first, second := strings.ToLower(m.Group(1)), strings.ToLower(m.Group(2))
	if listBreakers[first] || listBreakers[second] || subjectPronouns[second] {
		return m.Text
	}
	if _, forms, ok := LookupVerb(first); ok && forms&(FormPast|FormThird) != 0 && forms&FormGerund == 0 {
		return m.Text
	}
	clause := currentClause(m.Before)
	if w := firstWord(clause); introWords[w] || subordinators[w] || transitionWords[w] {
		return m.Text
	}
	if strings.TrimSpace(clause) == "" && (introWords[first] || transitionWords[first]) {
		return m.Text
	}
	return m.Group(1) + ", " + m.Group(2) + ", " + m.Group(3) + " "
}
