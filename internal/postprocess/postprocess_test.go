package postprocess

import "testing"

type cleanCase struct {
	name string
	in   string
	want string
}

func runCases(t *testing.T, fn func(string) string, cases []cleanCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fn(tc.in); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRemoveThinkingBlocks(t *testing.T) {
	runCases(t, removeThinkingBlocks, []cleanCase{
		{"plain minutes", "The committee approved the budget.", "The committee approved the budget."},
		{"think before answer", "<think>The user wants formal minutes.</think>The slab is ready.", "The slab is ready."},
		{"reflection before answer", "<reflection>Check the tense.</reflection>Work resumed on Monday.", "Work resumed on Monday."},
		{"reasoning between sentences", "The crane arrived.<reasoning>keep it short</reasoning> The pour is postponed.", "The crane arrived. The pour is postponed."},
		{"upper-case tags", "<THINK>formalize</THINK>Done.", "Done."},
		{"cut off while thinking", "The slab is ready.<thinking>Should I also mention", "The slab is ready."},
		{"only thinking", "<thinking>Rewriting the notes", ""},
	})
}

func TestRemoveInstructionEchoes(t *testing.T) {
	runCases(t, removeInstructionEchoes, []cleanCase{
		{"no preamble", "The pour is postponed.", "The pour is postponed."},
		{"corrected text", "Here is the corrected text: The slab is ready.", "The slab is ready."},
		{"revised minutes", "Here's the revised minutes: Work resumed on Monday.", "Work resumed on Monday."},
		{"bare label", "Minutes: The pour is postponed.", "The pour is postponed."},
		{"rewritten label", "Rewritten text: The crane is available.", "The crane is available."},
		{"sure with exclamation", "Sure! Here is the polished version: The slab is ready.", "The slab is ready."},
		{"certainly", "Certainly. Here's the improved text: Done.", "Done."},
		{"minutes as subject", "The minutes were approved: all members agreed.", "The minutes were approved: all members agreed."},
		{"text as noun", "Text messages: sent to the contractor.", "Text messages: sent to the contractor."},
		{"preamble mid-text", "Site update. Here is the corrected text: done", "Site update. Here is the corrected text: done"},
	})
}

func TestRemoveQuoteWrapping(t *testing.T) {
	runCases(t, removeQuoteWrapping, []cleanCase{
		{"one rune", "a", "a"},
		{"unquoted", "The slab is ready.", "The slab is ready."},
		{"straight double", `"The slab is ready."`, "The slab is ready."},
		{"straight single", "'The slab is ready.'", "The slab is ready."},
		{"curly double", "“The crane is available.”", "The crane is available."},
		{"curly single", "‘The crane is available.’", "The crane is available."},
		{"guillemets", "«Work resumed.»", "Work resumed."},
		{"mismatched", `"The slab is ready.'`, `"The slab is ready.'`},
		{"inner quotation kept", `"He said that the slab was "ready"."`, `He said that the slab was "ready".`},
		{"padding trimmed", `"  Pour postponed.  "`, "Pour postponed."},
	})
}

func TestRemoveMarkdown(t *testing.T) {
	runCases(t, removeMarkdown, []cleanCase{
		{"dashed items untouched", "- Slab is ready.\n- Pour is postponed.", "- Slab is ready.\n- Pour is postponed."},
		{"bold word", "The **crane** is available.", "The crane is available."},
		{"underscore bold", "The __pour__ is postponed.", "The pour is postponed."},
		{"heading", "## Minutes\n\nThe slab is ready.", "Minutes\n\nThe slab is ready."},
		{"fenced answer", "```\nThe pour is postponed to Friday.\n```", "The pour is postponed to Friday."},
	})
}

func TestClean(t *testing.T) {
	runCases(t, Clean, []cleanCase{
		{"empty", "", ""},
		{"already clean", "The pour is postponed.", "The pour is postponed."},
		{
			"think, preamble and quotes",
			"<think>Formalize.</think>\nSure, here is the revised text:\n\"The contractor completed the slab on Monday.\"",
			"The contractor completed the slab on Monday.",
		},
		{"preamble and bold", "Here is the corrected text:\n**Slab** is ready.", "Slab is ready."},
		{"label and heading", "Minutes:\n## Site visit\n\nThe crane is available.", "Site visit\n\nThe crane is available."},
		{"numbered minutes untouched", "1. Slab is ready.\n2. Pour is postponed.", "1. Slab is ready.\n2. Pour is postponed."},
		{"cut off while thinking", "Work resumed.<thinking>Maybe add", "Work resumed."},
	})
}
