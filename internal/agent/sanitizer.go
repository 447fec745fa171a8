package agent

import (
	"regexp"
	"strings"
)

// The model occasionally leaks chain-of-thought despite the prompt
// footer. Sanitize strips the known leakage shapes. This is a lossy
// heuristic filter, not a grammar: it can over-strip lines that
// innocently start with a reasoning phrase, and novel phrasings slip
// through. Idempotent on already-clean text.

var (
	thinkBlockRe = regexp.MustCompile(`(?is)<think[^>]*>.*?</think[^>]*>`)
	thinkTagRe   = regexp.MustCompile(`(?i)</?think[^>]*>`)

	// Bold or heading sections titled Thinking/Reasoning, consumed up
	// to the next section, blank line, or end of text. The delimiter
	// is captured and restored since RE2 has no lookahead.
	thinkingSectionRe = regexp.MustCompile(
		`(?is)\*\*(?:thinking and reasoning|thinking|reasoning)\*\*.*?(\n\*\*|\n\n|$)`)
	thinkingHeadingRe = regexp.MustCompile(
		`(?is)#{2,3}\s*(?:thinking|reasoning).*?(\n#{2,3}|\n\n|$)`)

	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// reasoningPhrases flag unformatted prose lines as leaked reasoning.
// Hand-maintained and deliberately conservative: lines carrying any
// markdown marker are never dropped.
var reasoningPhrases = []string{
	"let me",
	"i need to",
	"i should",
	"i'll analyze",
	"i'll start",
	"i'll provide",
	"i'll focus",
	"let me think",
	"thinking about",
	"analyzing",
	"i notice",
	"double-check",
	"putting it all together",
	"taking into account",
	"wait,",
}

// markdownMarkers identify lines that are part of the structured
// reply and therefore exempt from phrase filtering.
var markdownMarkers = []string{"**", "•", "- ", "🚨", "📋", "🗓️", "🎯", "⚠️", "✅", "#"}

const maxReasoningLineLen = 150

// Sanitize strips leaked model reasoning from a rendered reply.
func Sanitize(raw string) string {
	cleaned := thinkBlockRe.ReplaceAllString(raw, "")
	cleaned = thinkTagRe.ReplaceAllString(cleaned, "")
	cleaned = thinkingSectionRe.ReplaceAllString(cleaned, "$1")
	cleaned = thinkingHeadingRe.ReplaceAllString(cleaned, "$1")

	lines := strings.Split(cleaned, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isReasoningLine(line) {
			continue
		}
		kept = append(kept, line)
	}

	cleaned = strings.Join(kept, "\n")
	cleaned = blankRunRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}

func isReasoningLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxReasoningLineLen {
		return false
	}
	for _, marker := range markdownMarkers {
		if strings.Contains(trimmed, marker) {
			return false
		}
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range reasoningPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
