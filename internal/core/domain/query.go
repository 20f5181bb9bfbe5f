package domain

// QuestionType classifies the surface form of a question.
type QuestionType string

const (
	QuestionWhat    QuestionType = "what"
	QuestionWhy     QuestionType = "why"
	QuestionHow     QuestionType = "how"
	QuestionWhen    QuestionType = "when"
	QuestionWhere   QuestionType = "where"
	QuestionWho     QuestionType = "who"
	QuestionWhich   QuestionType = "which"
	QuestionUnknown QuestionType = "unknown"
)

// IntentType classifies what the user wants from the answer.
type IntentType string

const (
	IntentFactual     IntentType = "factual"
	IntentExplanatory IntentType = "explanatory"
	IntentAnalytical  IntentType = "analytical"
	IntentCalculative IntentType = "calculative"
	IntentComparative IntentType = "comparative"
	IntentUnknown     IntentType = "unknown"
)

// UserLevel is the inferred sophistication of the asker.
type UserLevel string

const (
	LevelBeginner     UserLevel = "beginner"
	LevelIntermediate UserLevel = "intermediate"
	LevelExpert       UserLevel = "expert"
)

// QueryAnalysis is the ephemeral, per-request classification of a question.
// Never persisted; recomputed on every query.
type QueryAnalysis struct {
	QuestionType     QuestionType `json:"question_type"`
	Intent           IntentType   `json:"intent"`
	UserLevel        UserLevel    `json:"user_level"`
	IsConfused       bool         `json:"is_confused"`
	NeedsExplanation bool         `json:"needs_explanation"`
	KeyTerms         []string     `json:"key_terms"`
	OriginalQuestion string       `json:"original_question"`
}

// IsComplex reports whether the question warrants the wider retrieval
// window and the lower-temperature reasoning budget.
func (a QueryAnalysis) IsComplex() bool {
	switch a.Intent {
	case IntentAnalytical, IntentExplanatory, IntentCalculative:
		return true
	}
	switch a.QuestionType {
	case QuestionWhy, QuestionHow:
		return true
	}
	return a.NeedsExplanation
}

// Source is a citation entry returned alongside an answer.
// SourceID matches the [Source k] numbering inside the context block.
type Source struct {
	SourceID       int      `json:"source_id"`
	Filename       string   `json:"filename"`
	ChunkID        int      `json:"chunk_id"`
	TextPreview    string   `json:"text_preview"`
	RelevanceScore *float64 `json:"relevance_score"`
}

// AnswerMetadata describes how an answer was produced.
type AnswerMetadata struct {
	ChunksRetrieved int            `json:"chunks_retrieved"`
	Question        string         `json:"question,omitempty"`
	QueryAnalysis   *QueryAnalysis `json:"query_analysis,omitempty"`
}

// Answer is the result of a RAG query.
type Answer struct {
	Answer   string         `json:"answer"`
	Sources  []Source       `json:"sources"`
	Metadata AnswerMetadata `json:"metadata"`
}

// GenerateOptions bound a single LLM completion call.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}
