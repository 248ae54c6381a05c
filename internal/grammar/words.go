package grammar

import "strings"

// ProtectedSet holds words whose surface form no rule may rewrite.
type ProtectedSet map[string]bool

// Contains reports whether word (any case) is protected.
func (p ProtectedSet) Contains(word string) bool {
	return p[strings.ToLower(strings.TrimSpace(word))]
}

// With returns a copy of p extended with words.
func (p ProtectedSet) With(words ...string) ProtectedSet {
	out := make(ProtectedSet, len(p)+len(words))
	for w := range p {
		out[w] = true
	}
	for _, w := range words {
		out[strings.ToLower(w)] = true
	}
	return out
}

// DefaultProtected are adjectives formed from participles. Rules treat them
// as a closed class and never turn them into verbs or -ing forms.
var DefaultProtected = ProtectedSet(setOf(
	"tired", "interested", "excited", "confused", "pleased", "satisfied",
	"worried", "bored", "surprised", "disappointed", "exhausted",
	"frustrated", "annoyed",
))

var subjectPronouns = setOf("i", "you", "he", "she", "it", "we", "they")

var objectPronoun = map[string]string{
	"i": "me", "you": "you", "he": "him", "she": "her", "it": "it", "we": "us", "they": "them",
}

var possessivePronoun = map[string]string{
	"i": "my", "you": "your", "he": "his", "she": "her", "it": "its", "we": "our", "they": "their",
}

var determiners = setOf(
	"the", "a", "an", "this", "that", "these", "those", "my", "your", "his",
	"her", "its", "our", "their", "some", "any", "all", "each", "every",
	"several", "both", "no", "another",
)

var modals = setOf("can", "could", "will", "would", "shall", "should", "may", "might", "must")

// finiteWords are auxiliaries, modals and contractions that make a clause finite.
var finiteWords = setOf(
	"am", "is", "are", "was", "were", "has", "have", "had", "do", "does",
	"did", "can", "could", "will", "would", "shall", "should", "may",
	"might", "must", "isn't", "aren't", "wasn't", "weren't", "hasn't",
	"haven't", "hadn't", "don't", "doesn't", "didn't", "can't", "cannot",
	"couldn't", "won't", "wouldn't", "shouldn't", "mustn't", "it's",
	"i'm", "we're", "they're", "you're", "he's", "she's", "that's",
	"there's", "i've", "we've", "they've", "i'll", "we'll", "they'll",
)

// subordinators open clauses that cannot stand alone.
var subordinators = setOf(
	"when", "if", "although", "though", "because", "after", "before",
	"since", "while", "as", "once", "until", "unless", "whereas", "whenever",
)

// uncountableNouns take much/less/a little.
var uncountableNouns = setOf(
	"advice", "cement", "concrete", "damage", "debris", "dust", "electricity",
	"equipment", "evidence", "feedback", "furniture", "gravel", "information",
	"knowledge", "labour", "labor", "luggage", "machinery", "money", "mud",
	"news", "oil", "paint", "paperwork", "power", "progress", "rain",
	"research", "rework", "sand", "scaffolding", "soil", "space", "steel",
	"stuff", "time", "timber", "traffic", "water", "waste", "work",
)

// nonNouns end in "s" but are never plural nouns.
var nonNouns = setOf(
	"was", "is", "has", "does", "this", "his", "its", "thus", "always", "us",
	"as", "yes", "plus", "less", "unless", "across", "perhaps", "sometimes",
	"nevertheless", "besides", "towards", "afterwards", "hers", "ours",
	"yours", "theirs", "whereas", "series", "species", "news", "bus", "gas",
	"status", "process", "access", "class", "glass", "mass", "basis", "analysis",
)

// isPluralCountable reports whether w looks like a plural countable noun.
func isPluralCountable(w string) bool {
	w = strings.ToLower(w)
	if len(w) < 4 || !strings.HasSuffix(w, "s") || nonNouns[w] || strings.HasSuffix(w, "ss") ||
		strings.HasSuffix(w, "us") || strings.HasSuffix(w, "is") {
		return false
	}
	if uncountableNouns[w] || uncountableNouns[singularOf(w)] {
		return false
	}
	return true
}

// singularOf strips a regular plural ending.
func singularOf(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case hasAnySuffix(w, "ches", "shes", "xes", "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

// adjective holds the synthetic comparison forms of a short adjective.
type adjective struct {
	Comparative string
	Superlative string
}

var adjectives = map[string]adjective{
	"good":   {"better", "best"},
	"bad":    {"worse", "worst"},
	"far":    {"farther", "farthest"},
	"big":    {"bigger", "biggest"},
	"cheap":  {"cheaper", "cheapest"},
	"clean":  {"cleaner", "cleanest"},
	"close":  {"closer", "closest"},
	"deep":   {"deeper", "deepest"},
	"early":  {"earlier", "earliest"},
	"easy":   {"easier", "easiest"},
	"fast":   {"faster", "fastest"},
	"hard":   {"harder", "hardest"},
	"heavy":  {"heavier", "heaviest"},
	"high":   {"higher", "highest"},
	"large":  {"larger", "largest"},
	"late":   {"later", "latest"},
	"long":   {"longer", "longest"},
	"low":    {"lower", "lowest"},
	"near":   {"nearer", "nearest"},
	"new":    {"newer", "newest"},
	"old":    {"older", "oldest"},
	"quick":  {"quicker", "quickest"},
	"safe":   {"safer", "safest"},
	"short":  {"shorter", "shortest"},
	"slow":   {"slower", "slowest"},
	"small":  {"smaller", "smallest"},
	"soft":   {"softer", "softest"},
	"strong": {"stronger", "strongest"},
	"tall":   {"taller", "tallest"},
	"thick":  {"thicker", "thickest"},
	"thin":   {"thinner", "thinnest"},
	"weak":   {"weaker", "weakest"},
	"wide":   {"wider", "widest"},
	"young":  {"younger", "youngest"},
}

var (
	comparatives = map[string]string{}
	superlatives = map[string]string{}
	// badComparisons maps regularized forms of irregular adjectives.
	badComparisons = map[string]string{
		"gooder": "better", "goodest": "best", "badder": "worse",
		"baddest": "worst", "worser": "worse", "bestest": "best",
	}
)

func init() {
	for base, a := range adjectives {
		comparatives[a.Comparative] = base
		superlatives[a.Superlative] = base
	}
}

// matchCase returns repl with the capitalization pattern of orig.
func matchCase(orig, repl string) string {
	if orig == "" || repl == "" {
		return repl
	}
	if len(orig) > 1 && orig == strings.ToUpper(orig) && orig != strings.ToLower(orig) {
		return strings.ToUpper(repl)
	}
	if c := orig[0]; c >= 'A' && c <= 'Z' {
		return capitalize(repl)
	}
	return repl
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

func lowerFirst(s string) string {
	if s == "" || s == "I" || strings.HasPrefix(s, "I ") || strings.HasPrefix(s, "I'") {
		return s
	}
	if len(s) > 1 && s[1] >= 'A' && s[1] <= 'Z' {
		return s
	}
	if c := s[0]; c >= 'A' && c <= 'Z' {
		return string(c-'A'+'a') + s[1:]
	}
	return s
}
