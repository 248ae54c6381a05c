package grammar

import (
	"regexp"
	"strings"
)

// reDoubleConjunction matches a subordinate clause that opens a sentence or
// follows a semicolon, closed by a comma and a coordinator.
var reDoubleConjunction = regexp.MustCompile(`(?i)(^\s*|[.!?]\s+|[;:]\s*)(even\s+though|although|though|because|since)\b([^.;:!?,]+),\s*(but|yet|so|therefore|hence)\s+`)

// pairedConjunctions maps a subordinator to the coordinators that duplicate it.
var pairedConjunctions = map[string]map[string]bool{
	"although":    setOf("but", "yet"),
	"though":      setOf("but", "yet"),
	"even though": setOf("but", "yet"),
	"because":     setOf("so", "therefore", "hence"),
	"since":       setOf("so", "therefore", "hence"),
}

func conjunctionRules() []Rule {
	return []Rule{{
		Name:     "conjunction-redundant-pair",
		Category: CategoryConjunction,
		Scope:    ScopeSentence,
		Match:    reDoubleConjunction,
		Target:   4,
		Rewrite: func(m Match) string {
			sub := strings.ToLower(strings.Join(strings.Fields(m.Group(2)), " "))
			clause := m.Group(3)
			if !pairedConjunctions[sub][strings.ToLower(m.Group(4))] || strings.TrimSpace(clause) == "" {
				return m.Text
			}
			// "because of rain, so" has no clause to duplicate.
			if strings.EqualFold(firstWord(clause), "of") {
				return m.Text
			}
			return m.Group(1) + m.Group(2) + strings.TrimRight(clause, " ") + ", "
		},
	}}
}
