package grammar

import (
	"regexp"
	"strings"
)

var reDetachedClause = regexp.MustCompile(`(?i)([^.!?\s])\.\s+(because|although|though|which|whereas)\b([^.!?]*)([.!?]|$)`)

// statePredicates can complete a verbless "noun + state" note ("Slab ready").
var statePredicates = setOf(
	"pending", "ready", "complete", "completed", "incomplete", "done", "delayed",
	"damaged", "cracked", "blocked", "installed", "painted", "repaired",
	"cleaned", "closed", "open", "approved", "rejected", "required", "needed",
	"missing", "available", "unavailable", "satisfactory", "unsatisfactory",
	"ongoing", "finished", "submitted", "received", "fine", "okay", "ok",
	"good", "poor", "safe", "unsafe", "clean", "dirty", "wet", "dry", "late",
	"absent", "postponed", "cancelled", "canceled", "underway",
)

// fragmentStops are words that make a short line something other than a
// "subject + state" note.
var fragmentStops = setOf(
	"not", "no", "very", "also", "still", "now", "today", "yesterday",
	"tomorrow", "already", "almost", "nearly", "just", "only", "and", "or",
	"but", "if", "when", "to", "of", "in", "on", "at", "for", "with", "by",
	"from", "as", "so", "than", "more", "most", "too", "there", "here",
	"please", "thanks", "thank",
)

// objectStarters may follow a verb that opens a subjectless sentence.
var objectStarters = setOf(
	"the", "a", "an", "this", "that", "these", "those", "our", "their", "his",
	"her", "its", "all", "some", "both", "each", "every", "several", "two",
	"three", "four", "five", "him", "them", "us", "it", "to", "with", "on",
	"at", "about", "for", "into", "through",
)

func fragmentRules() []Rule {
	return []Rule{
		{
			Name:     "fragment-detached-clause",
			Category: CategoryFragment,
			Scope:    ScopeSentence,
			Match:    reDetachedClause,
			Rewrite: func(m Match) string {
				conj := strings.ToLower(m.Group(2))
				clause := m.Group(3)
				// "Because it rained, we stopped." is a complete sentence.
				if conj != "which" && conj != "whereas" && strings.Contains(clause, ",") {
					return m.Text
				}
				sep := ", "
				if conj == "because" {
					sep = " "
				}
				return m.Group(1) + sep + conj + clause + m.Group(4)
			},
		},
		{
			Name:     "fragment-missing-subject",
			Category: CategoryFragment,
			Scope:    ScopeSentence,
			Match:    reSentence,
			Rewrite:  func(m Match) string { return addMissingSubject(m.Text, m.Protected) },
		},
		{
			Name:     "fragment-missing-copula",
			Category: CategoryFragment,
			Scope:    ScopeSentence,
			Match:    reSentence,
			Rewrite:  func(m Match) string { return addMissingCopula(m.Text, m.Protected) },
		},
	}
}

// addMissingSubject turns "Visited the site." into "We visited the site.".
func addMissingSubject(sentence string, protected ProtectedSet) string {
	lead, body, end := splitSentence(sentence)
	toks := tokensOf(body)
	if len(toks) < 2 || toks[0].start != 0 || protected.Contains(toks[0].text) {
		return sentence
	}
	_, forms, ok := LookupVerb(toks[0].text)
	if !ok || forms&FormPast == 0 || forms&FormBase != 0 {
		return sentence
	}
	if !objectStarters[strings.ToLower(toks[1].text)] {
		return sentence
	}
	return lead + "We " + lowerFirst(body) + end
}

// possessiveSubjects are possessives written for a pronoun subject in notes
// ("their complete"). Other possessives cannot head a subject on their own.
var possessiveSubjects = map[string]string{"its": "it's", "their": "they're", "your": "you're"}

// addMissingCopula turns "Slab ready." into "Slab is ready.".
func addMissingCopula(sentence string, protected ProtectedSet) string {
	lead, body, end := splitSentence(sentence)
	if strings.ContainsAny(body, ",;:\"“”()[]0123456789") {
		return sentence
	}
	words := strings.Fields(body)
	toks := tokensOf(body)
	if len(words) < 2 || len(words) > 4 || len(toks) != len(words) {
		return sentence
	}
	pred := strings.ToLower(toks[len(toks)-1].text)
	if !statePredicates[pred] && !protected.Contains(pred) {
		return sentence
	}
	subject := toks[:len(toks)-1]
	for i, t := range subject {
		lw := strings.ToLower(t.text)
		if fragmentStops[lw] || finiteWords[lw] || modals[lw] {
			return sentence
		}
		if i > 0 && subjectPronouns[lw] {
			return sentence
		}
	}
	if hasFiniteVerb(body[:subject[len(subject)-1].end]) {
		return sentence
	}

	head := strings.ToLower(subject[len(subject)-1].text)
	first := strings.ToLower(subject[0].text)
	if determiners[head] {
		fix, ok := possessiveSubjects[head]
		if !ok || len(subject) != 1 {
			return sentence
		}
		t := subject[0]
		return lead + body[:t.start] + matchCase(t.text, fix) + body[t.end:] + end
	}
	var copula string
	switch {
	case first == "i" && len(subject) == 1:
		copula = "am"
	case (first == "we" || first == "they" || first == "you") && len(subject) == 1:
		copula = "are"
	case subjectPronouns[first] && len(subject) == 1:
		copula = "is"
	case isPluralCountable(head):
		copula = "are"
	default:
		copula = "is"
	}

	at := subject[len(subject)-1].end
	return lead + body[:at] + " " + copula + body[at:] + end
}
