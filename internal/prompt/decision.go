package prompt

import (
	"fmt"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

const riskAnalysisTemplate = `Analyze the following document context and identify all risks, liabilities, and potential issues.

Context:
%s

Query: %s

Provide a structured analysis with:
1. List of identified risks (with severity: High/Medium/Low)
2. Description of each risk
3. Affected parties or areas
4. Potential impact
5. Recommendations (if applicable)

Format your response clearly with numbered items.`

const revenueAnalysisTemplate = `Analyze the following document context for revenue trends, financial performance, and business metrics.

Context:
%s

Query: %s

Provide a structured analysis with:
1. Revenue trends (increasing/decreasing/stable)
2. Key factors affecting revenue
3. Specific numbers or percentages mentioned, with calculations shown step by step
4. Time periods covered
5. Recommendations or insights

Format your response clearly with numbered items.`

const clauseExtractionTemplate = `Extract all legal clauses, obligations, deadlines, and important terms from the following document context.

Context:
%s

Query: %s

Provide a structured extraction with:
1. Clause type (e.g., Payment Terms, Termination, Liability, etc.)
2. Description of the clause
3. Parties involved
4. Deadlines or dates (if any)
5. Key obligations or requirements

Format your response clearly with numbered items.`

const summaryTemplate = `Provide a comprehensive executive summary of the following document context.

Context:
%s

Query: %s

Create a summary that includes:
1. Main topics and themes
2. Key points and findings
3. Important numbers or statistics
4. Conclusions or recommendations
5. Action items (if any)

Format your response clearly with numbered sections.`

// ComposeDecision renders the fixed template for a decision mode. The mode
// set is closed; this switch is the single dispatch point and must stay
// exhaustive over domain.DecisionModes.
func ComposeDecision(mode domain.DecisionMode, query, context string) (string, error) {
	switch mode {
	case domain.ModeRiskAnalysis:
		return fmt.Sprintf(riskAnalysisTemplate, context, query), nil
	case domain.ModeRevenueAnalysis:
		return fmt.Sprintf(revenueAnalysisTemplate, context, query), nil
	case domain.ModeClauseExtraction:
		return fmt.Sprintf(clauseExtractionTemplate, context, query), nil
	case domain.ModeSummary:
		return fmt.Sprintf(summaryTemplate, context, query), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
}
