package grammar_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/valpere/momtext/internal/grammar"
)

type regressionCase struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

func loadRegression(tb testing.TB) []regressionCase {
	tb.Helper()
	data, err := os.ReadFile("testdata/regression.yaml")
	if err != nil {
		tb.Fatalf("failed to read regression corpus: %v", err)
	}
	var cases []regressionCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		tb.Fatalf("failed to parse regression corpus: %v", err)
	}
	if len(cases) == 0 {
		tb.Fatal("regression corpus is empty")
	}
	return cases
}

func TestNormalize_Regression(t *testing.T) {
	for _, tc := range loadRegression(t) {
		t.Run(tc.Name, func(t *testing.T) {
			if diff := cmp.Diff(tc.Want, grammar.Normalize(tc.Input)); diff != "" {
				t.Errorf("Normalize(%q) mismatch (-want +got):\n%s", tc.Input, diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, tc := range loadRegression(t) {
		t.Run(tc.Name, func(t *testing.T) {
			once := grammar.Normalize(tc.Input)
			twice := grammar.Normalize(once)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("second pass changed %q (-first +second):\n%s", once, diff)
			}
		})
	}
}

func TestNormalize_LeavesCorrectTextAlone(t *testing.T) {
	inputs := []string{
		"The committee approved the budget.",
		"We will meet again next week.",
		"The contractor has completed the first floor slab.",
		"If I were the manager, I would approve it.",
	}
	for _, in := range inputs {
		if got := grammar.Normalize(in); got != in {
			t.Errorf("expected %q unchanged, got %q", in, got)
		}
	}
}

func TestRuleCategories(t *testing.T) {
	tests := []struct {
		category grammar.Category
		input    string
		want     string
	}{
		{grammar.CategorySpelling, "untill wensday", "until Wednesday"},
		{grammar.CategoryIrregular, "we buyed cement", "we bought cement"},
		{grammar.CategoryIrregular, "he did not went", "he did not go"},
		{grammar.CategoryIrregular, "we didn't done the work", "we didn't do the work"},
		{grammar.CategoryIrregular, "did they finish", "did they finish"},
		{grammar.CategoryModal, "they must completed it", "they must complete it"},
		{grammar.CategoryAgreement, "he have a plan", "he has a plan"},
		{grammar.CategoryAgreement, "if I were you", "if I were you"},
		{grammar.CategoryComparative, "the most biggest crane", "the biggest crane"},
		{grammar.CategoryComparative, "he is most tall", "he is the tallest"},
		{grammar.CategoryComparative, "it was most biggest", "it was the biggest"},
		{grammar.CategoryFragment, "their complete", "they're complete"},
		{grammar.CategoryFragment, "its pending", "it's pending"},
		{grammar.CategoryFragment, "our ready", "our ready"},
		{grammar.CategoryConjunction, "Because it rained, so we stopped work", "Because it rained, we stopped work"},
		{grammar.CategoryConjunction, "Because of rain, so the pour was delayed", "Because of rain, so the pour was delayed"},
		{grammar.CategoryConjunction, "We asked since the budget was fixed, so we revised it", "We asked since the budget was fixed, so we revised it"},
		{grammar.CategoryConjunction, "Work stopped; although it rained, but we poured", "Work stopped; although it rained, we poured"},
		{grammar.CategoryQuantifier, "a amount of bricks", "a number of bricks"},
		{grammar.CategoryPhrasal, "we will return back", "we will return"},
		{grammar.CategoryPunctuation, "the slab ,the beam", "The slab, the beam."},
		{grammar.CategoryPunctuation, "however we agreed", "However, we agreed."},
		{grammar.CategoryEllipsis, "They are ready. Me too.", "They are ready. I am too."},
		{grammar.CategoryEllipsis, "I don't mind. Me neither.", "I don't mind. Neither do I."},
		{grammar.CategoryGerund, "we look forward to meet you", "we look forward to meeting you"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+tt.input, func(t *testing.T) {
			p := grammar.NewPipeline(rulesIn(tt.category)...)
			if got := p.Normalize(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func rulesIn(c grammar.Category) []grammar.Rule {
	var out []grammar.Rule
	for _, r := range grammar.DefaultRules() {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}
