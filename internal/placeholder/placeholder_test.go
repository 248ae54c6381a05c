package placeholder_test

import (
	"strings"
	"testing"

	"github.com/valpere/momtext/internal/placeholder"
)

func TestProtect_NoShieldedSpans(t *testing.T) {
	text := "We inspected the site and met the contractor."
	got, markers := placeholder.Protect(text)
	if got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
	if len(markers) != 0 {
		t.Errorf("expected 0 markers, got %d", len(markers))
	}
}

func TestProtect_Spans(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"url", "Drawings are on https://example.com/plans/rev2.pdf.", []string{"https://example.com/plans/rev2.pdf"}},
		{"www url", "See www.example.org for details", []string{"www.example.org"}},
		{"email", "Send it to site.office@example.co.in today.", []string{"site.office@example.co.in"}},
		{"time", "Meeting starts at 10:30 am sharp.", []string{"10:30 am"}},
		{"decimal", "Slab is 2.5 metres thick.", []string{"2.5"}},
		{"date", "Deadline is 12.05.2025 for all trades.", []string{"12.05.2025"}},
		{"abbreviations", "Bring tools, e.g. drills, i.e. power tools etc. now.", []string{"e.g.", "i.e.", "etc."}},
		{"title", "Dr. Mehta approved it.", []string{"Dr."}},
		{"inline code", "Run `make build` first.", []string{"`make build`"}},
		{"html", "<b>Urgent</b> items", []string{"<b>", "</b>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, markers := placeholder.Protect(tt.text)
			if len(markers) != len(tt.want) {
				t.Fatalf("expected %d markers, got %d: %v", len(tt.want), len(markers), markers)
			}
			for _, w := range tt.want {
				if strings.Contains(got, w) {
					t.Errorf("expected %q to be replaced, still present in %q", w, got)
				}
			}
			for i, w := range tt.want {
				found := false
				for _, m := range markers {
					if m == w {
						found = true
					}
				}
				if !found {
					t.Errorf("marker %d: expected %q among %v", i, w, markers)
				}
			}
		})
	}
}

func TestProtect_URLKeepsSentencePeriod(t *testing.T) {
	got, _ := placeholder.Protect("Check www.example.com.")
	if !strings.HasSuffix(got, "].") {
		t.Errorf("expected the final period outside the marker, got %q", got)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	inputs := []string{
		"<p>Hello <b>world</b></p>",
		"Before\n```go\nfmt.Println(\"hi\")\n```\nAfter",
		"Call Mr. Shah at 9.30 am, e.g. via ops@example.com or https://example.com/x?id=3.",
	}
	for _, original := range inputs {
		protected, markers := placeholder.Protect(original)
		restored := placeholder.Restore(protected, markers)
		if restored != original {
			t.Errorf("round-trip failed:\n  original:  %q\n  restored:  %q", original, restored)
		}
	}
}

func TestRestore_OutOfRangeIndexIgnored(t *testing.T) {
	text := "[PH99] some text"
	restored := placeholder.Restore(text, []string{"<p>"})
	if !strings.Contains(restored, "[PH99]") {
		t.Errorf("expected [PH99] to remain, got %q", restored)
	}
}

func TestRestore_NoMarkers(t *testing.T) {
	text := "literal [PH0] stays"
	if got := placeholder.Restore(text, nil); got != text {
		t.Errorf("expected %q, got %q", text, got)
	}
}

func TestRestore_MissingMarkerIgnored(t *testing.T) {
	original := "Visit www.a.com and www.b.com"
	protected, markers := placeholder.Protect(original)

	withoutPH1 := strings.Replace(protected, "[PH1]", "", 1)
	restored := placeholder.Restore(withoutPH1, markers)
	if strings.Contains(restored, "www.b.com") {
		t.Errorf("dropped marker should not reappear, got %q", restored)
	}
	if !strings.Contains(restored, "www.a.com") {
		t.Errorf("expected surviving marker restored, got %q", restored)
	}
}

func TestValidate_AllPresent(t *testing.T) {
	text := "[PH0] some [PH1] text"
	markers := []string{"e.g.", "10:30"}
	missing := placeholder.Validate(text, markers)
	if len(missing) != 0 {
		t.Errorf("expected no missing, got %v", missing)
	}
}

func TestValidate_SomeMissing(t *testing.T) {
	text := "[PH0] some text"
	markers := []string{"e.g.", "10:30", "www.a.com"}
	missing := placeholder.Validate(text, markers)
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing (indices 1,2), got %v", missing)
	}
	if missing[0] != 1 || missing[1] != 2 {
		t.Errorf("expected missing [1 2], got %v", missing)
	}
}

func TestInstructionHint_NotEmpty(t *testing.T) {
	if placeholder.InstructionHint() == "" {
		t.Error("InstructionHint should not return empty string")
	}
}
