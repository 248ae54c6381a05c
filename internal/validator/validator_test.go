package validator

import (
	"errors"
	"strings"
	"testing"
)

func TestIsValid_EmptyTargetLang(t *testing.T) {
	v := New()

	valid, err := v.IsValid("Some rewritten text", "")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for empty targetLang")
	}
}

func TestIsValid_EmptyText(t *testing.T) {
	v := New()

	for _, text := range []string{"", "   "} {
		valid, err := v.IsValid(text, "en")
		if err == nil {
			t.Errorf("expected error for %q", text)
		}
		if valid {
			t.Errorf("expected valid=false for %q", text)
		}
	}
}

func TestIsValid_ShortText(t *testing.T) {
	v := New()

	valid, err := v.IsValid("Slab ready", "en")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for short text (below threshold)")
	}
}

func TestIsValid_English(t *testing.T) {
	v := New()

	text := "The site engineer confirmed that the slab was ready for inspection."
	for _, lang := range []string{"en", "EN"} {
		valid, err := v.IsValid(text, lang)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if !valid {
			t.Errorf("expected valid=true for target %q", lang)
		}
	}
}

func TestIsValid_MismatchedLanguage(t *testing.T) {
	v := New()

	text := "The site engineer confirmed that the slab was ready for inspection."
	valid, err := v.IsValid(text, "gu")
	if err == nil {
		t.Error("expected error for mismatched language")
	}
	if valid {
		t.Error("expected valid=false when detecting English but expecting Gujarati")
	}
}

func TestIsEnglish_Gujarati(t *testing.T) {
	v := New()

	if err := v.IsEnglish("સાઇટ એન્જિનિયરે પુષ્ટિ કરી કે સ્લેબ નિરીક્ષણ માટે તૈયાર છે."); err == nil {
		t.Error("expected error for Gujarati text")
	}
}

func TestCompatible(t *testing.T) {
	v := New()
	original := "the site engineer confirm that slab were ready for inspection"

	tests := []struct {
		name      string
		candidate string
		wantErr   bool
	}{
		{name: "rewrite", candidate: "The site engineer confirmed that the slab was ready for inspection.", wantErr: false},
		{name: "empty", candidate: "  ", wantErr: true},
		{name: "gujarati", candidate: "સ્લેબ નિરીક્ષણ માટે તૈયાર છે", wantErr: true},
		{name: "too short", candidate: "Done.", wantErr: true},
		{name: "too long", candidate: strings.Repeat("The site engineer confirmed the slab was ready. ", 10), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Compatible(original, tt.candidate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compatible() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrIncompatible) {
				t.Errorf("expected ErrIncompatible, got %v", err)
			}
		})
	}
}
