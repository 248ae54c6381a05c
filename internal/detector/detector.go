// Package detector classifies the script of minutes-of-meeting text.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/momtext/internal"
)

const (
	gujaratiFirst = '\u0A80'
	gujaratiLast  = '\u0AFF'
)

// Detect returns LanguageGujarati when text holds any rune of the Gujarati
// block and LanguageEnglish otherwise. Mixed-script text counts as Gujarati.
func Detect(text string) internal.Language {
	for _, r := range text {
		if r >= gujaratiFirst && r <= gujaratiLast {
			return internal.LanguageGujarati
		}
	}
	return internal.LanguageEnglish
}

// Detector is a statistical language identifier. It is used to check
// translator and refiner output, never to route requests.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector limited to the languages minutes arrive in. Building
// it is expensive; reuse the instance.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Gujarati, lingua.Hindi).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}
