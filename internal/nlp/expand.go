package nlp

import (
	"regexp"
	"strings"
)

const maxVariants = 3

var (
	whatIsRe = regexp.MustCompile(`what (?:is|does) (.+?)(?:\?|$)`)
	howToRe  = regexp.MustCompile(`how (?:to|do) (.+?)(?:\?|$)`)
)

// Expand generates query variations for better retrieval. The original
// question is always first; definition- and process-style rephrasings are
// appended for "what is/does X" and "how to/do X" questions, and the result
// is capped at maxVariants.
func Expand(question string) []string {
	variants := []string{question}
	lower := strings.ToLower(question)

	if strings.Contains(lower, "what is") || strings.Contains(lower, "what does") {
		if m := whatIsRe.FindStringSubmatch(lower); m != nil {
			term := strings.TrimSpace(m[1])
			variants = append(variants,
				term+" definition",
				term+" meaning",
				"explain "+term,
				"what is "+term,
			)
		}
	}

	if strings.Contains(lower, "how to") || strings.Contains(lower, "how do") {
		if m := howToRe.FindStringSubmatch(lower); m != nil {
			term := strings.TrimSpace(m[1])
			variants = append(variants,
				term+" method",
				term+" process",
				term+" steps",
				"how "+term+" works",
			)
		}
	}

	if len(variants) > maxVariants {
		variants = variants[:maxVariants]
	}
	return variants
}
