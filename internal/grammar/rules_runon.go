package grammar

import (
	"regexp"
	"strings"
)

// runOnWordLimit is the longest spliced sentence that is joined with ", and"
// rather than split in two.
const runOnWordLimit = 16

var reCommaSpace = regexp.MustCompile(`,\s+`)

// introWords open a clause that is not a main clause or is a sentence adverb.
var introWords = setOf(
	"however", "therefore", "moreover", "furthermore", "additionally",
	"meanwhile", "finally", "firstly", "secondly", "thirdly", "unfortunately",
	"fortunately", "overall", "currently", "initially", "subsequently",
	"consequently", "nevertheless", "hence", "also", "later", "yesterday",
	"today", "tomorrow", "recently", "and", "but", "so", "or", "yet", "then",
	"in", "on", "at", "during", "for", "by", "with", "after", "before",
	"having", "being", "according", "regarding", "besides", "instead",
)

// reportingVerbs take a clause as object, so a comma after them is not a splice.
var reportingVerbs = setOf(
	"said", "say", "says", "told", "tell", "asked", "think", "thought",
	"believe", "believed", "know", "knew", "feel", "felt", "noted", "note",
	"mentioned", "confirmed", "informed", "explained", "hope", "hoped",
	"suggested", "agreed", "added", "replied",
)

var spliceSubjects = setOf("i", "we", "they", "he", "she", "it", "you", "there")

func runOnRules() []Rule {
	return []Rule{{
		Name:     "run-on-comma-splice",
		Category: CategoryRunOn,
		Scope:    ScopeSentence,
		Match:    reSentence,
		Rewrite:  func(m Match) string { return fixCommaSplices(m.Text) },
	}}
}

func fixCommaSplices(sentence string) string {
	lead, body, end := splitSentence(sentence)
	split := len(strings.Fields(body)) > runOnWordLimit

	var edits []edit
	start := 0
	for _, loc := range reCommaSpace.FindAllStringIndex(body, -1) {
		clause, rest := body[start:loc[0]], body[loc[1]:]
		if !isSplice(clause, rest) {
			continue
		}
		if split {
			// ". " then the capitalized first letter of the next clause.
			edits = append(edits, edit{start: loc[0], end: loc[1] + 1, text: ". " + strings.ToUpper(rest[:1])})
		} else {
			edits = append(edits, edit{start: loc[0], end: loc[1], text: ", and "})
		}
		start = loc[1]
	}
	if len(edits) == 0 {
		return sentence
	}
	return lead + applyEdits(body, edits) + end
}

// isSplice reports whether two independent clauses are joined by a bare comma.
func isSplice(clause, rest string) bool {
	cw := wordsOf(clause)
	if len(cw) < 2 || introWords[strings.ToLower(cw[0])] || subordinators[strings.ToLower(cw[0])] {
		return false
	}
	if strings.ContainsAny(clause, "\"“”") || reportingVerbs[strings.ToLower(cw[len(cw)-1])] {
		return false
	}
	if !hasFiniteVerb(clause) {
		return false
	}

	rw := wordsOf(rest)
	if len(rw) < 2 || !strings.HasPrefix(rest, rw[0]) {
		return false
	}
	subject, verb := strings.ToLower(rw[0]), strings.ToLower(rw[1])
	if !spliceSubjects[subject] {
		return false
	}
	if finiteWords[verb] {
		return true
	}
	// Any verb form counts: agreement and tense fixes run later and must
	// not turn a non-splice into a splice.
	_, _, ok := LookupVerb(verb)
	return ok
}
