package grammar

import (
	"regexp"
	"strings"
)

var (
	reMoreMost      = regexp.MustCompile(`(?i)\b(more|most)\s+([a-z]+)\b`)
	reBadComparison = regexp.MustCompile(`(?i)\b(?:gooder|goodest|badder|baddest|worser|bestest)\b`)
	reThanAhead     = regexp.MustCompile(`(?i)^\s+than\b`)

	reMuchMany     = regexp.MustCompile(`(?i)\b(much)\s+([a-z]+)\b`)
	reManyMass     = regexp.MustCompile(`(?i)\b(many)\s+([a-z]+)\b`)
	reLessCount    = regexp.MustCompile(`(?i)\b(less)\s+([a-z]+)\b`)
	reFewerMass    = regexp.MustCompile(`(?i)\b(fewer)\s+([a-z]+)\b`)
	reAFewMass     = regexp.MustCompile(`(?i)\b(a\s+few)\s+([a-z]+)\b`)
	reALittleCount = regexp.MustCompile(`(?i)\b(a\s+little)\s+([a-z]+)\b`)
	reAmountOf     = regexp.MustCompile(`(?i)\b(amount)(\s+of\s+)([a-z]+)\b`)
)

// degreeContext are words after which "more X" is a predicative comparison.
var degreeContext = setOf(
	"is", "are", "was", "were", "be", "been", "being", "am", "become",
	"became", "becomes", "seem", "seems", "seemed", "look", "looks", "looked",
	"get", "gets", "got", "much", "even", "far", "slightly", "bit", "lot",
)

var superlativeContext = setOf("the", "his", "her", "their", "our", "its", "my", "your")

// linkingVerbs take a predicative superlative: "is most tall" → "is the tallest".
var linkingVerbs = setOf(
	"is", "are", "was", "were", "be", "been", "being", "am", "become",
	"became", "becomes", "seem", "seems", "seemed", "look", "looks", "looked",
)

func comparativeRules() []Rule {
	return []Rule{
		{
			Name:     "comparative-regularized",
			Category: CategoryComparative,
			Scope:    ScopeToken,
			Match:    reBadComparison,
			Rewrite: func(m Match) string {
				return matchCase(m.Text, badComparisons[strings.ToLower(m.Text)])
			},
		},
		{
			Name:     "comparative-double-marking",
			Category: CategoryComparative,
			Scope:    ScopePhrase,
			Match:    reMoreMost,
			Target:   2,
			Rewrite: func(m Match) string {
				degree, word := strings.ToLower(m.Group(1)), strings.ToLower(m.Group(2))
				prev := lastWord(m.Before)
				// "more better", "most biggest"
				if _, ok := comparatives[word]; ok && degree == "more" {
					return matchCase(m.Group(1), word)
				}
				if _, ok := superlatives[word]; ok && degree == "most" {
					return predicative(prev, matchCase(m.Group(1), word))
				}

				adj, ok := adjectives[word]
				if !ok {
					return m.Text
				}
				switch {
				case degree == "more" && (word == "good" || word == "bad" || reThanAhead.MatchString(m.After) || degreeContext[prev]):
					return matchCase(m.Group(1), adj.Comparative)
				case degree == "most" && linkingVerbs[prev]:
					return "the " + adj.Superlative
				case degree == "most" && (word == "good" || word == "bad" || superlativeContext[prev]):
					return matchCase(m.Group(1), adj.Superlative)
				}
				return m.Text
			},
		},
	}
}

// predicative adds the article a superlative needs after a linking verb.
func predicative(prev, superlative string) string {
	if linkingVerbs[prev] {
		return "the " + strings.ToLower(superlative)
	}
	return superlative
}

func quantifierRules() []Rule {
	swap := func(name string, re *regexp.Regexp, want func(noun string) bool, repl string) Rule {
		return Rule{
			Name:     name,
			Category: CategoryQuantifier,
			Scope:    ScopePhrase,
			Match:    re,
			Target:   2,
			Rewrite: func(m Match) string {
				if !want(strings.ToLower(m.Group(2))) {
					return m.Text
				}
				return matchCase(m.Group(1), repl) + " " + m.Group(2)
			},
		}
	}
	mass := func(noun string) bool { return uncountableNouns[noun] }

	return []Rule{
		swap("quantifier-much-countable", reMuchMany, isPluralCountable, "many"),
		{
			Name:     "quantifier-many-uncountable",
			Category: CategoryQuantifier,
			Scope:    ScopePhrase,
			Match:    reManyMass,
			Target:   2,
			Rewrite: func(m Match) string {
				noun := strings.ToLower(m.Group(2))
				switch {
				case uncountableNouns[noun]:
					return matchCase(m.Group(1), "much") + " " + m.Group(2)
				case strings.HasSuffix(noun, "s") && uncountableNouns[singularOf(noun)]:
					return matchCase(m.Group(1), "much") + " " + m.Group(2)[:len(singularOf(noun))]
				}
				return m.Text
			},
		},
		swap("quantifier-less-countable", reLessCount, isPluralCountable, "fewer"),
		swap("quantifier-fewer-uncountable", reFewerMass, mass, "less"),
		swap("quantifier-a-few-uncountable", reAFewMass, mass, "a little"),
		swap("quantifier-a-little-countable", reALittleCount, isPluralCountable, "a few"),
		{
			Name:     "quantifier-number-of",
			Category: CategoryQuantifier,
			Scope:    ScopePhrase,
			Match:    reAmountOf,
			Target:   3,
			Rewrite: func(m Match) string {
				if !isPluralCountable(m.Group(3)) {
					return m.Text
				}
				return matchCase(m.Group(1), "number") + m.Group(2) + m.Group(3)
			},
		},
	}
}
