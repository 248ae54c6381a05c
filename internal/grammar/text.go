package grammar

import (
	"regexp"
	"strings"
)

var (
	reBullet = regexp.MustCompile(`^(?:[-*•‣▪]|\d{1,3}[.)]|[a-zA-Z][.)])\s+`)
	reSpaces = regexp.MustCompile(`[ \t\f\v]+`)
	reWord   = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?`)

	// reSentence matches one sentence together with its leading space and
	// terminal punctuation.
	reSentence = regexp.MustCompile(`[^.!?]+(?:[.!?]+["”']?|$)`)
)

// splitBullet separates a list marker ("- ", "1. ", "a) ") from the line body.
func splitBullet(line string) (string, string) {
	loc := reBullet.FindStringIndex(line)
	if loc == nil || loc[1] == len(line) {
		return "", line
	}
	return line[:loc[1]], line[loc[1]:]
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// splitSentence returns the leading whitespace, the body and the terminal
// punctuation of a sentence match.
func splitSentence(s string) (lead, body, end string) {
	body = strings.TrimLeft(s, " ")
	lead = s[:len(s)-len(body)]
	i := len(body)
	for i > 0 && strings.ContainsRune(`.!?"”' `, rune(body[i-1])) {
		i--
	}
	return lead, body[:i], body[i:]
}

func wordsOf(s string) []string {
	return reWord.FindAllString(s, -1)
}

type token struct {
	text       string
	start, end int
}

func tokensOf(s string) []token {
	locs := reWord.FindAllStringIndex(s, -1)
	out := make([]token, len(locs))
	for i, l := range locs {
		out[i] = token{text: s[l[0]:l[1]], start: l[0], end: l[1]}
	}
	return out
}

// edit replaces s[start:end] with text.
type edit struct {
	start, end int
	text       string
}

// applyEdits applies non-overlapping edits given in ascending order.
func applyEdits(s string, edits []edit) string {
	if len(edits) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, e := range edits {
		b.WriteString(s[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.WriteString(s[last:])
	return b.String()
}

func lastWord(s string) string {
	ws := wordsOf(s)
	if len(ws) == 0 {
		return ""
	}
	return strings.ToLower(ws[len(ws)-1])
}

func firstWord(s string) string {
	ws := wordsOf(s)
	if len(ws) == 0 {
		return ""
	}
	return strings.ToLower(ws[0])
}

// currentClause returns the part of s after the last sentence boundary.
func currentClause(s string) string {
	if i := strings.LastIndexAny(s, ".!?"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// hasFiniteVerb reports whether clause contains a word that can head a
// finite verb phrase.
func hasFiniteVerb(clause string) bool {
	ws := wordsOf(clause)
	for i, w := range ws {
		lw := strings.ToLower(w)
		if finiteWords[lw] {
			return true
		}
		_, forms, ok := LookupVerb(lw)
		if !ok {
			continue
		}
		prev := ""
		if i > 0 {
			prev = strings.ToLower(ws[i-1])
		}
		if determiners[prev] {
			continue
		}
		switch {
		case forms&FormPast != 0:
			return true
		case forms&FormThird != 0 && i > 0:
			return true
		case forms&FormBase != 0 && subjectPronouns[prev]:
			return true
		case forms&FormBase != 0 && i >= 2 && determiners[strings.ToLower(ws[i-2])]:
			return true
		}
	}
	return false
}
