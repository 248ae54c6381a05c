// Package validator checks translator and refiner output before it replaces
// the text it was derived from.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/valpere/momtext/internal"
	"github.com/valpere/momtext/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// maxGrowth bounds how much a rewrite may grow or shrink relative to its input.
const maxGrowth = 3

// ErrIncompatible is returned by Compatible when generated output cannot
// stand in for its input.
var ErrIncompatible = errors.New("output is not a rewrite of the input")

// Validator checks generated text against its input.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

// New creates a Validator backed by the lingua-go language detector.
func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid returns true when text appears to be written in targetLang.
//
// Short texts (fewer than minValidationLength runes) and texts whose language
// cannot be determined pass without error. When the detected language differs
// from targetLang the returned error names both codes.
func (v *Validator) IsValid(text, targetLang string) (bool, error) {
	if targetLang == "" {
		return true, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("text is empty")
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return true, nil
	}

	if !strings.EqualFold(detected, targetLang) {
		return false, fmt.Errorf("expected %s but detected %s", targetLang, detected)
	}

	return true, nil
}

// IsEnglish reports whether text reads as English.
func (v *Validator) IsEnglish(text string) error {
	if _, err := v.IsValid(text, string(internal.LanguageEnglish)); err != nil {
		return err
	}
	return nil
}

// Compatible checks that candidate is an English rewrite of original: not
// empty, free of Gujarati script, of comparable length and detected as English.
func (v *Validator) Compatible(original, candidate string) error {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return fmt.Errorf("%w: empty output", ErrIncompatible)
	}
	if detector.Detect(candidate) == internal.LanguageGujarati {
		return fmt.Errorf("%w: output contains Gujarati script", ErrIncompatible)
	}

	in := utf8.RuneCountInString(strings.TrimSpace(original))
	out := utf8.RuneCountInString(candidate)
	if in >= minValidationLength && (out*maxGrowth < in || out > in*maxGrowth) {
		return fmt.Errorf("%w: length changed from %d to %d characters", ErrIncompatible, in, out)
	}

	if err := v.IsEnglish(candidate); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompatible, err)
	}
	return nil
}
