package domain

import "fmt"

// DecisionMode is a closed set of analytical templates. New modes must be
// added here and handled in the prompt package's exhaustive dispatch.
type DecisionMode string

const (
	ModeRiskAnalysis     DecisionMode = "risk_analysis"
	ModeRevenueAnalysis  DecisionMode = "revenue_analysis"
	ModeClauseExtraction DecisionMode = "clause_extraction"
	ModeSummary          DecisionMode = "summary"
)

// DecisionModes lists every valid mode, in documentation order.
func DecisionModes() []DecisionMode {
	return []DecisionMode{ModeRiskAnalysis, ModeRevenueAnalysis, ModeClauseExtraction, ModeSummary}
}

// ParseDecisionMode validates a wire value against the closed mode set.
// Rejecting here keeps unhandled strings from ever reaching retrieval.
func ParseDecisionMode(s string) (DecisionMode, error) {
	switch DecisionMode(s) {
	case ModeRiskAnalysis, ModeRevenueAnalysis, ModeClauseExtraction, ModeSummary:
		return DecisionMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// DecisionData is the structured companion to a decision-mode result.
type DecisionData struct {
	Sources        []string `json:"sources"`
	ChunksAnalyzed int      `json:"chunks_analyzed"`
}

// DecisionResult is the outcome of a decision-mode query.
type DecisionResult struct {
	Mode           DecisionMode   `json:"mode"`
	Result         string         `json:"result"`
	StructuredData *DecisionData  `json:"structured_data"`
	Metadata       map[string]any `json:"metadata"`
}
