package grammar

import (
	"regexp"
	"strings"
)

var (
	rePluralWas      = regexp.MustCompile(`(?i)\b(we|they|you)\s+(was|wasn't)\b`)
	reSingularWere   = regexp.MustCompile(`(?i)\b(i|he|she|it)\s+(were|weren't)\b`)
	reThirdAux       = regexp.MustCompile(`(?i)\b(he|she|it)\s+(have|haven't|do|don't|are|aren't|am)\b`)
	reFirstBe        = regexp.MustCompile(`(?i)\b(i)\s+(is|are|isn't|aren't|has|hasn't|does|doesn't)\b`)
	rePluralAux      = regexp.MustCompile(`(?i)\b(we|they|you)\s+(is|am|isn't|has|hasn't|does|doesn't)\b`)
	reThirdBase      = regexp.MustCompile(`(?i)\b(he|she)\s+([a-z]+)\b`)
	reNonThirdVerb   = regexp.MustCompile(`(?i)\b(i|we|they|you)\s+([a-z]+)\b`)
	rePluralNounVerb = regexp.MustCompile(`(?i)\b(these|those|several|many|much|few|fewer|less|both|two|three|four|five|six|all\s+the|the\s+two)\s+([a-z]+)\s+(was|is|has|wasn't|isn't|hasn't)\b`)
	reThereIsPlural  = regexp.MustCompile(`(?i)\b(there)\s+(is|was)\s+((?:many|much|several|two|three|four|five|six|some|a\s+few|few|fewer|less|a\s+lot\s+of|lots\s+of)\s+([a-z]+))\b`)
)

// invertingWords precede a pronoun that is the subject of an inverted
// question or the object of a causative ("does he have", "let it go").
var invertingWords = setOf(
	"do", "does", "did", "don't", "doesn't", "didn't", "can", "could", "will",
	"would", "shall", "should", "may", "might", "must", "let", "lets", "make",
	"makes", "made", "help", "helps", "helped", "see", "saw", "watch",
	"watched", "hear", "heard", "have", "has", "had", "is", "are", "was",
	"were", "am", "to", "how", "why", "where", "what",
)

// subjunctiveWords license "were" after a singular subject.
var subjunctiveWords = setOf("if", "wish", "wished", "as", "though", "suppose", "unless")

var agreementFix = map[string]map[string]string{
	"plural": {
		"was": "were", "wasn't": "weren't", "is": "are", "am": "are",
		"isn't": "aren't", "has": "have", "hasn't": "haven't", "does": "do",
		"doesn't": "don't",
	},
	"first": {
		"is": "am", "are": "am", "isn't": "am not", "aren't": "am not",
		"has": "have", "hasn't": "haven't", "does": "do", "doesn't": "don't",
		"were": "was", "weren't": "wasn't",
	},
	"third": {
		"were": "was", "weren't": "wasn't", "have": "has", "haven't": "hasn't",
		"do": "does", "don't": "doesn't", "are": "is", "aren't": "isn't", "am": "is",
	},
}

func invertedSubject(before string) bool {
	return invertingWords[lastWord(currentClause(before))]
}

// auxRule swaps the auxiliary in group 2 using table.
func auxRule(name string, re *regexp.Regexp, table string) Rule {
	return Rule{
		Name:     name,
		Category: CategoryAgreement,
		Scope:    ScopePhrase,
		Match:    re,
		Target:   2,
		Rewrite: func(m Match) string {
			if invertedSubject(m.Before) {
				return m.Text
			}
			fix, ok := agreementFix[table][strings.ToLower(m.Group(2))]
			if !ok {
				return m.Text
			}
			return m.Group(1) + " " + matchCase(m.Group(2), fix)
		},
	}
}

func agreementRules() []Rule {
	return []Rule{
		auxRule("agreement-plural-was", rePluralWas, "plural"),
		{
			Name:     "agreement-singular-were",
			Category: CategoryAgreement,
			Scope:    ScopePhrase,
			Match:    reSingularWere,
			Target:   2,
			Rewrite: func(m Match) string {
				// "if I were", "as it were" are subjunctive.
				if invertedSubject(m.Before) || subjunctiveWords[lastWord(currentClause(m.Before))] {
					return m.Text
				}
				table := "third"
				if strings.EqualFold(m.Group(1), "i") {
					table = "first"
				}
				return m.Group(1) + " " + matchCase(m.Group(2), agreementFix[table][strings.ToLower(m.Group(2))])
			},
		},
		auxRule("agreement-third-person-aux", reThirdAux, "third"),
		auxRule("agreement-first-person-aux", reFirstBe, "first"),
		auxRule("agreement-plural-aux", rePluralAux, "plural"),
		{
			Name:     "agreement-third-person-verb",
			Category: CategoryAgreement,
			Scope:    ScopePhrase,
			Match:    reThirdBase,
			Target:   2,
			Rewrite: func(m Match) string {
				word := m.Group(2)
				v, forms, ok := LookupVerb(word)
				if !ok || forms&FormBase == 0 || forms&(FormThird|FormPast|FormParticiple) != 0 {
					return m.Text
				}
				if invertedSubject(m.Before) {
					return m.Text
				}
				return m.Group(1) + " " + matchCase(word, v.Third)
			},
		},
		{
			Name:     "agreement-non-third-person-verb",
			Category: CategoryAgreement,
			Scope:    ScopePhrase,
			Match:    reNonThirdVerb,
			Target:   2,
			Rewrite: func(m Match) string {
				word := m.Group(2)
				v, forms, ok := LookupVerb(word)
				if !ok || forms&FormThird == 0 || forms&FormBase != 0 {
					return m.Text
				}
				if invertedSubject(m.Before) {
					return m.Text
				}
				// "sent you reports": "you" is an object here.
				if strings.EqualFold(m.Group(1), "you") {
					if _, _, isVerb := LookupVerb(lastWord(m.Before)); isVerb || objectStarters[lastWord(m.Before)] {
						return m.Text
					}
				}
				return m.Group(1) + " " + matchCase(word, v.Base)
			},
		},
		{
			Name:     "agreement-plural-noun",
			Category: CategoryAgreement,
			Scope:    ScopePhrase,
			Match:    rePluralNounVerb,
			Target:   2,
			Rewrite: func(m Match) string {
				if !isPluralCountable(m.Group(2)) {
					return m.Text
				}
				fix := agreementFix["plural"][strings.ToLower(m.Group(3))]
				return m.Group(1) + " " + m.Group(2) + " " + matchCase(m.Group(3), fix)
			},
		},
		{
			Name:     "agreement-there-is-plural",
			Category: CategoryAgreement,
			Scope:    ScopePhrase,
			Match:    reThereIsPlural,
			Target:   4,
			Rewrite: func(m Match) string {
				if !isPluralCountable(m.Group(4)) {
					return m.Text
				}
				verb := "are"
				if strings.EqualFold(m.Group(2), "was") {
					verb = "were"
				}
				return m.Group(1) + " " + matchCase(m.Group(2), verb) + " " + m.Group(3)
			},
		},
	}
}
