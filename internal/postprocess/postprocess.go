// Package postprocess removes common LLM artifacts from generated text.
//
// It is applied to the raw text returned by the refiners and the OpenRouter
// translator before the result is used downstream.
package postprocess

import (
	"regexp"
	"strings"

	"github.com/valpere/momtext/internal/markdown"
)

// Clean removes LLM artifacts from text in four phases and returns the
// trimmed result:
//  1. Thinking / reasoning block removal
//  2. Instruction echo removal (prompt leakage)
//  3. Quote wrapping removal
//  4. Markdown emphasis, headings and fences
func Clean(text string) string {
	text = removeThinkingBlocks(text)
	text = removeInstructionEchoes(text)
	text = removeQuoteWrapping(text)
	text = removeMarkdown(text)
	return strings.TrimSpace(text)
}

// --- Phase 1: thinking blocks ---

// thinkingBlockRe matches complete <thinking>…</thinking> style blocks.
// Each tag variant is listed explicitly because Go's RE2 engine does not
// support backreferences.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
)

// truncatedThinkingRe matches an opened thinking tag whose closing tag is
// missing (the model was cut off mid-thought).
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>|<reflection>).*$`,
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// --- Phase 2: instruction echoes ---

// echoPatterns match introductory phrases that LLMs sometimes prepend even
// when instructed not to. Each pattern is anchored to the start of the string
// and requires a colon to reduce false positives on legitimate content.
var echoPatterns = []*regexp.Regexp{
	// "Here is / Here's [the] [corrected|revised|...] [text|minutes|translation]:"
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:corrected |revised |rewritten |improved |refined |polished |translated )?(?:translation|text|minutes|version)\s*:`),
	// "[The] [corrected|revised] [text|minutes]:"
	regexp.MustCompile(`(?i)^(?:the )?(?:corrected |revised |rewritten |refined |polished )?(?:translation|translated text|text|minutes)\s*:`),
	// "Certainly / Sure / Of course[,] here is [the] text:"
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.!]? here(?:'s| is)(?: the)? (?:corrected |revised |rewritten |improved |refined |polished |translated )?(?:translation|text|minutes|version)\s*:`),
}

func removeInstructionEchoes(text string) string {
	for _, re := range echoPatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// --- Phase 3: quote wrapping ---

// removeQuoteWrapping strips a matching pair of outer quotes when the entire
// text is wrapped in them. Supported pairs:
//
//	"…"  '…'  «…»  "…"  '…'
func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	first, last := runes[0], runes[n-1]
	if (first == '"' && last == '"') ||
		(first == '\'' && last == '\'') ||
		(first == '«' && last == '»') ||
		(first == '“' && last == '”') ||
		(first == '‘' && last == '’') {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}

// --- Phase 4: markdown ---

// markdownRe spots markup a model added on its own. Plain minutes with
// numbered or dashed items must not be reparsed, so lists alone do not count.
var markdownRe = regexp.MustCompile("(?m)\\*\\*[^*\\n]+\\*\\*|__[^_\\n]+__|^#{1,6}\\s|^```")

func removeMarkdown(text string) string {
	if !markdownRe.MatchString(text) {
		return text
	}
	return markdown.ToPlainText([]byte(text))
}
