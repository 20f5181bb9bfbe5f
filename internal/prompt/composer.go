// Package prompt renders the instruction templates sent to the generator.
// Selection is keyed by the query analysis; the retrieval pipeline supplies
// the context block.
package prompt

import (
	"fmt"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

const baseInstructions = `You are a helpful assistant that answers questions based on the provided document context.

Context from documents:
%s

Question: %s

Instructions:
1. Answer the question using ONLY the information from the context above.
2. If the context doesn't contain enough information, say so clearly.
3. Be specific and cite which source (Source 1, Source 2, etc.) you're using.
4. If you're not sure, say "I'm not certain, but based on the documents..."
`

const explanatoryStructure = `5. Structure your answer in four parts:
   - Summary: one or two sentences answering the question directly
   - Detail: the full explanation, building up from the basics
   - Sources: which numbered sources each point came from
   - Implication: what this means in practice for the reader
`

const analyticalStructure = `5. FOR COMPLEX/INFERENCE QUESTIONS: this question requires analysis or connecting different sections:
   - Read through ALL provided sources carefully
   - Look for relationships between different pieces of information
   - Connect information from multiple sources if needed
   - Provide reasoning for your answer
   - If information spans multiple sections, synthesize them together
   - Explain the connection or relationship clearly
`

const calculativeStructure = `5. FOR CALCULATIONS: this question asks for a computed figure (percentage, ratio, margin, ...):
   - First, identify ALL relevant numbers from the context
   - Extract the numbers clearly (e.g., "Revenue: X, Profit: Y")
   - Perform the calculation step-by-step
   - Show your work: "Calculation: (Y / X) x 100 = Z%"
   - If numbers are in different sources, combine them for calculation
   - Always verify your calculation is correct
`

const factualStructure = `5. Give a direct, concise answer with the source number immediately after each stated fact.
`

const chainOfThought = `
Before answering, reason through the question step by step: identify what is
being asked, locate the relevant passages, and only then compose the answer.
Do not include the reasoning steps themselves in the final answer.
`

const richFormatting = `
Format the answer with short headers and bullet points so it is easy to follow.
`

const terseFormatting = `
Format the answer as brief bullet points.
`

// Compose selects and renders the instruction template for a question.
// The intent template is chosen by priority (explanatory -> analytical ->
// calculative -> factual -> default); the chain-of-thought and formatting
// blocks are appended regardless of which template won.
func Compose(question, context string, analysis domain.QueryAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, baseInstructions, context, question)

	switch analysis.Intent {
	case domain.IntentExplanatory:
		b.WriteString(explanatoryStructure)
	case domain.IntentAnalytical:
		b.WriteString(analyticalStructure)
	case domain.IntentCalculative:
		b.WriteString(calculativeStructure)
	case domain.IntentFactual:
		b.WriteString(factualStructure)
	default:
		// Unknown intent still gets the explanatory structure when the
		// asker signalled they need one (confusion, beginner phrasing).
		if analysis.NeedsExplanation {
			b.WriteString(explanatoryStructure)
		}
	}

	b.WriteString(chainOfThought)
	if analysis.NeedsExplanation {
		b.WriteString(richFormatting)
	} else {
		b.WriteString(terseFormatting)
	}

	b.WriteString("\nAnswer:")
	return b.String()
}

// ComposeFallback renders the general-knowledge prompt used when retrieval
// finds nothing but the asker clearly needs an explanation. The answer is
// explicitly caveated as not sourced from the uploaded documents.
func ComposeFallback(question string, keyTerms []string) string {
	return fmt.Sprintf(`The user asked a question but none of their uploaded documents contain relevant information.

Question: %s
Key concepts: %s

Answer the question from general knowledge. Start the answer with a clear
caveat that it is NOT based on the uploaded documents, then give a concise,
beginner-friendly explanation of the concepts involved.

Answer:`, question, strings.Join(keyTerms, ", "))
}
