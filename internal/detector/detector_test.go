package detector

import (
	"testing"

	"github.com/valpere/momtext/internal"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want internal.Language
	}{
		{name: "empty text", text: "", want: internal.LanguageEnglish},
		{name: "english text", text: "The committee approved the budget.", want: internal.LanguageEnglish},
		{name: "gujarati text", text: "આજે બેઠક થઈ", want: internal.LanguageGujarati},
		{name: "mixed script", text: "Site visit: કામ બાકી છે", want: internal.LanguageGujarati},
		{name: "block start", text: "x\u0A80", want: internal.LanguageGujarati},
		{name: "block end", text: "\u0AFF", want: internal.LanguageGujarati},
		{name: "just below block", text: "\u0A7F", want: internal.LanguageEnglish},
		{name: "just above block", text: "\u0B00", want: internal.LanguageEnglish},
		{name: "devanagari", text: "बैठक आज हुई", want: internal.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetector_Detect(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantLang string
		wantOK   bool
	}{
		{
			name:     "empty text",
			text:     "",
			wantLang: "",
			wantOK:   false,
		},
		{
			name:     "english text",
			text:     "The site engineer confirmed that the slab was ready for inspection.",
			wantLang: "English",
			wantOK:   true,
		},
		{
			name:     "gujarati text",
			text:     "સાઇટ એન્જિનિયરે પુષ્ટિ કરી કે સ્લેબ નિરીક્ષણ માટે તૈયાર છે.",
			wantLang: "Gujarati",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := d.Detect(tt.text)
			if ok != tt.wantOK {
				t.Errorf("Detect(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if tt.wantOK && lang.String() != tt.wantLang {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, lang, tt.wantLang)
			}
		})
	}
}

func TestDetector_DetectISO(t *testing.T) {
	d := New()

	code, ok := d.DetectISO("The contractor will submit the revised drawings next week.")
	if !ok {
		t.Fatal("expected english text to be detected")
	}
	if code != "EN" {
		t.Errorf("expected EN, got %q", code)
	}

	if _, ok := d.DetectISO(""); ok {
		t.Error("expected empty text to be undetected")
	}
}
