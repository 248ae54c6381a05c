// Package chunker splits long notes into pieces that fit the request limits
// of translation backends.
//
// Limits are counted in runes: Gujarati script takes three bytes per rune, so
// a byte limit would cut notes far shorter than the backends allow.
package chunker

import (
	"strings"
	"unicode"
)

// boundary ranks a split position. Higher is better.
type boundary int

const (
	none boundary = iota
	word
	sentence
	line
	paragraph
)

// Chunk splits text into trimmed pieces of at most maxChars runes. It prefers,
// in order, a blank line, a line break, the end of a sentence (. ! ? or the
// danda used in Gujarati), and a space; when none fits it cuts at maxChars.
//
// Text that fits, or maxChars ≤ 0, yields a single chunk.
func Chunk(text string, maxChars int) []string {
	runes := []rune(text)
	if maxChars <= 0 || len(runes) <= maxChars {
		return []string{text}
	}

	var chunks []string
	for len(runes) > maxChars {
		cut := splitAt(runes[:maxChars+1])
		if piece := strings.TrimSpace(string(runes[:cut])); piece != "" {
			chunks = append(chunks, piece)
		}
		runes = []rune(strings.TrimSpace(string(runes[cut:])))
	}
	if rest := strings.TrimSpace(string(runes)); rest != "" {
		chunks = append(chunks, rest)
	}
	return chunks
}

// splitAt returns the rune count to consume from window, whose last rune is
// one past the limit and is only inspected as the follower of a candidate.
func splitAt(window []rune) int {
	limit := len(window) - 1
	best, bestAt := none, limit

	for i := limit; i > 0; i-- {
		b := rank(window, i)
		if b > best {
			best, bestAt = b, i
			if b == paragraph {
				break
			}
		}
	}
	return bestAt
}

// rank scores cutting window before index i.
func rank(window []rune, i int) boundary {
	prev, next := window[i-1], window[i]
	switch {
	case prev == '\n' && i >= 2 && window[i-2] == '\n':
		return paragraph
	case prev == '\n' && i >= 3 && window[i-2] == '\r' && window[i-3] == '\n':
		return paragraph
	case prev == '\n':
		return line
	case isSentenceEnd(prev) && unicode.IsSpace(next):
		return sentence
	case unicode.IsSpace(next):
		return word
	}
	return none
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '।', '॥':
		return true
	}
	return false
}
