// Package placeholder shields spans that must survive translation and
// grammar rewriting verbatim (code, markup, URLs, e-mail addresses, numbers
// with separators, dotted abbreviations) by replacing them with numbered
// markers ([PH0], [PH1], …). Restore substitutes the markers back.
package placeholder

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// fenced code blocks: ```...``` (non-greedy, may span lines)
	reFencedCode = regexp.MustCompile("(?s)```.*?```")

	// inline code spans: `...`
	reInlineCode = regexp.MustCompile("`[^`]+`")

	// HTML/XML tags: opening, closing, and self-closing
	reHTMLTag = regexp.MustCompile(`<[^>]+>`)

	// URLs without trailing sentence punctuation
	reURL = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"]*[^\s<>".,;:!?)'\]]`)

	reEmail = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9-]+(?:\.[a-z0-9-]+)+\b`)

	// decimals, times and dotted dates: 2.5, 10:30, 12.05.2025
	reNumber = regexp.MustCompile(`\b\d+(?:[.:/]\d+)+(?:\s?(?:[ap]\.m\.|[ap]m\b))?`)

	// dotted abbreviations whose period does not end a sentence
	reAbbrev = regexp.MustCompile(`(?i)(?:\b(?:e\.g|i\.e|a\.m|p\.m|etc|approx|vs|viz|mr|mrs|ms|dr|sr|jr|dept|govt|ltd|pvt)\.|\b(?:[a-z]\.){2,})`)

	// placeholder reference in translated text
	rePlaceholder = regexp.MustCompile(`\[PH(\d+)\]`)
)

// Protect replaces shielded spans with numbered placeholders [PH0], [PH1], …
// in the order they are found. It returns the modified text and the slice of
// captured originals so Restore can put them back.
func Protect(text string) (string, []string) {
	var markers []string
	counter := 0

	replace := func(match string) string {
		id := fmt.Sprintf("[PH%d]", counter)
		markers = append(markers, match)
		counter++
		return id
	}

	// Order matters: fenced first (longest match), then inline code and
	// markup, then the spans that may occur inside ordinary prose.
	for _, re := range []*regexp.Regexp{reFencedCode, reInlineCode, reHTMLTag, reURL, reEmail, reNumber, reAbbrev} {
		text = re.ReplaceAllStringFunc(text, replace)
	}

	return text, markers
}

// Restore substitutes [PHn] markers in text back with the originals captured
// by Protect. Markers missing from the text are silently ignored;
// unrecognised indices leave the placeholder as-is.
func Restore(text string, markers []string) string {
	if len(markers) == 0 {
		return text
	}
	return rePlaceholder.ReplaceAllStringFunc(text, func(match string) string {
		sub := rePlaceholder.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		idx := 0
		fmt.Sscanf(sub[1], "%d", &idx)
		if idx < 0 || idx >= len(markers) {
			return match
		}
		return markers[idx]
	})
}

// InstructionHint returns a short sentence to append to an LLM prompt so the
// model knows to leave placeholders intact.
func InstructionHint() string {
	return "Preserve all [PHn] markers exactly as they appear. Do not translate, move, or remove them."
}

// Validate checks whether all markers that were created by Protect are still
// present in the text. It returns the list of missing indices.
func Validate(text string, markers []string) []int {
	var missing []int
	for i := range markers {
		if !strings.Contains(text, fmt.Sprintf("[PH%d]", i)) {
			missing = append(missing, i)
		}
	}
	return missing
}
