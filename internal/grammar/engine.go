// Package grammar rewrites informal English toward grammatical, professional
// register for minutes-of-meeting documents.
//
// The engine is a fixed, ordered sequence of small rewrite passes, much like
// a compiler pipeline. Each pass is a Rule: a matcher, a rewriter and the set
// of protected words it must leave alone. Rules are pure functions of their
// input and hold no state, so a Pipeline is safe to share between goroutines.
// A line is passed through the rules until a full pass changes nothing, so
// re-running a Pipeline on its own output changes nothing either.
package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/valpere/momtext/internal/placeholder"
)

// Scope describes the span a rule inspects.
type Scope string

const (
	ScopeToken    Scope = "token"
	ScopePhrase   Scope = "phrase"
	ScopeClause   Scope = "clause"
	ScopeSentence Scope = "sentence"
)

// Category groups rules by the kind of error they correct.
type Category string

const (
	CategoryAgreement   Category = "subject-verb-agreement"
	CategoryTense       Category = "tense"
	CategoryIrregular   Category = "irregular-verbs"
	CategoryModal       Category = "modal-base"
	CategoryPurpose     Category = "purpose-infinitive"
	CategoryConjunction Category = "redundant-conjunction"
	CategoryReported    Category = "reported-speech"
	CategoryPassive     Category = "passive-voice"
	CategoryGerund      Category = "gerund-infinitive"
	CategoryPhrasal     Category = "phrasal-verbs"
	CategoryComparative Category = "comparatives"
	CategoryQuantifier  Category = "quantifiers"
	CategoryFragment    Category = "fragments"
	CategoryRunOn       Category = "run-on"
	CategoryParallel    Category = "parallel-structure"
	CategoryPunctuation Category = "punctuation"
	CategoryEllipsis    Category = "ellipsis"
	CategorySpelling    Category = "spelling"
)

// Match is one occurrence of a rule's pattern.
type Match struct {
	// Text is the matched span; Groups[0] == Text and unmatched groups are "".
	Text   string
	Groups []string
	// Before and After hold the surrounding input and stand in for the
	// look-around assertions RE2 does not support.
	Before string
	After  string
	// Protected is the rule's protected-term set.
	Protected ProtectedSet
}

// Group returns submatch i or "" when i is out of range.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Rule is one rewrite pass.
type Rule struct {
	Name     string
	Category Category
	Scope    Scope

	Match   *regexp.Regexp
	Rewrite func(m Match) string

	// Target is the submatch holding the token the rule rewrites. A match
	// whose target is a protected term is left untouched.
	Target int
	// Protected defaults to DefaultProtected when nil.
	Protected ProtectedSet
}

func (r Rule) protected() ProtectedSet {
	if r.Protected == nil {
		return DefaultProtected
	}
	return r.Protected
}

// Apply runs the rule over text once.
func (r Rule) Apply(text string) (out string) {
	if r.Match == nil || r.Rewrite == nil || text == "" {
		return text
	}
	// A faulty rewriter must not take the request down with it.
	defer func() {
		if recover() != nil {
			out = text
		}
	}()

	locs := r.Match.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	protected := r.protected()
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		m := Match{
			Text:      text[loc[0]:loc[1]],
			Groups:    make([]string, len(loc)/2),
			Before:    text[:loc[0]],
			After:     text[loc[1]:],
			Protected: protected,
		}
		for i := range m.Groups {
			if loc[2*i] >= 0 {
				m.Groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}

		repl := m.Text
		if !protected.Contains(m.Group(r.Target)) {
			repl = r.Rewrite(m)
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// Step records a rule that changed the text.
type Step struct {
	Rule     string   `json:"rule" yaml:"rule"`
	Category Category `json:"category" yaml:"category"`
	Before   string   `json:"before" yaml:"before"`
	After    string   `json:"after" yaml:"after"`
}

// RuleInfo describes a rule for listings.
type RuleInfo struct {
	Order    int      `json:"order" yaml:"order"`
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	Scope    Scope    `json:"scope" yaml:"scope"`
}

// maxPasses bounds the passes over one line. Rules settle in one or two.
const maxPasses = 4

var reTrailingMarker = regexp.MustCompile(`\[PH(\d+)\]\.$`)

// Pipeline is an ordered list of rules.
type Pipeline struct {
	rules []Rule
}

// NewPipeline returns a pipeline running rules in the given order.
func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: append([]Rule(nil), rules...)}
}

var defaultPipeline = NewPipeline(DefaultRules()...)

// Default returns the shared pipeline built from DefaultRules.
func Default() *Pipeline { return defaultPipeline }

// Normalize runs the default pipeline.
func Normalize(text string) string { return defaultPipeline.Normalize(text) }

// Rules returns a copy of the pipeline's rules.
func (p *Pipeline) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// WithProtected returns a copy of p whose rules also leave terms alone.
func (p *Pipeline) WithProtected(terms ...string) *Pipeline {
	if len(terms) == 0 {
		return p
	}
	rules := p.Rules()
	for i := range rules {
		rules[i].Protected = rules[i].protected().With(terms...)
	}
	return &Pipeline{rules: rules}
}

// Catalogue lists the pipeline's rules in execution order.
func (p *Pipeline) Catalogue() []RuleInfo {
	out := make([]RuleInfo, len(p.rules))
	for i, r := range p.rules {
		out[i] = RuleInfo{Order: i + 1, Name: r.Name, Category: r.Category, Scope: r.Scope}
	}
	return out
}

// Normalize rewrites text. Blank input is returned unchanged.
func (p *Pipeline) Normalize(text string) string {
	out, _ := p.run(text, false)
	return out
}

// Trace is Normalize that also reports every rule that changed the text.
func (p *Pipeline) Trace(text string) (string, []Step) {
	return p.run(text, true)
}

func (p *Pipeline) run(text string, trace bool) (string, []Step) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	var steps []Step
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = p.normalizeLine(line, func(r Rule, before, after string) {
			if trace {
				steps = append(steps, Step{Rule: r.Name, Category: r.Category, Before: before, After: after})
			}
		})
	}
	return strings.Join(lines, "\n"), steps
}

func (p *Pipeline) normalizeLine(line string, record func(r Rule, before, after string)) string {
	body := strings.TrimSpace(line)
	if body == "" {
		return line
	}
	indent := line[:strings.Index(line, body[:1])]
	cr := ""
	if strings.HasSuffix(line, "\r") {
		cr = "\r"
	}

	bullet, body := splitBullet(body)
	body, markers := placeholder.Protect(body)
	body = collapseSpaces(body)

	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for _, r := range p.rules {
			next := r.Apply(body)
			if next != body {
				record(r, placeholder.Restore(body, markers), placeholder.Restore(next, markers))
				body = next
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return indent + bullet + placeholder.Restore(dropDoubledStop(body, markers), markers) + cr
}

// dropDoubledStop removes a period added after a shielded span that already
// ends a sentence, such as "etc.".
func dropDoubledStop(body string, markers []string) string {
	m := reTrailingMarker.FindStringSubmatch(body)
	if m == nil {
		return body
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n >= len(markers) || !strings.HasSuffix(markers[n], ".") {
		return body
	}
	return strings.TrimSuffix(body, ".")
}
