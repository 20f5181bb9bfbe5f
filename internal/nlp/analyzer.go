// Package nlp classifies question surface forms to steer retrieval and
// prompting. Everything here is a pure function of the question string:
// no side effects, no network calls.
package nlp

import (
	"regexp"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// questionPattern pairs a question type with its interrogative pattern.
// Order matters: the first match wins.
type questionPattern struct {
	qtype   domain.QuestionType
	pattern *regexp.Regexp
}

var questionPatterns = []questionPattern{
	{domain.QuestionWhat, regexp.MustCompile(`\b(what|what is|what are|what does|what do|what's)\b`)},
	{domain.QuestionWhy, regexp.MustCompile(`\b(why|why is|why are|why does|why do)\b`)},
	{domain.QuestionHow, regexp.MustCompile(`\b(how|how is|how are|how does|how do|how to|how can)\b`)},
	{domain.QuestionWhen, regexp.MustCompile(`\b(when|when is|when are|when does|when do)\b`)},
	{domain.QuestionWhere, regexp.MustCompile(`\b(where|where is|where are|where does|where do)\b`)},
	{domain.QuestionWho, regexp.MustCompile(`\b(who|who is|who are|who does|who do)\b`)},
	{domain.QuestionWhich, regexp.MustCompile(`\b(which|which is|which are|which does|which do)\b`)},
}

// intentKeywords pairs an intent with its trigger keywords. The keyword sets
// overlap ("compare" is both analytical and comparative), so the check order
// is significant and must stay explanatory -> analytical -> calculative ->
// comparative -> factual.
type intentKeywords struct {
	intent   domain.IntentType
	keywords []string
}

var intentPriority = []intentKeywords{
	{domain.IntentExplanatory, []string{
		"explain", "explanation", "understand", "meaning", "define", "definition",
		"what is", "what does", "tell me about", "help me understand",
	}},
	{domain.IntentAnalytical, []string{
		"analyze", "analysis", "compare", "comparison", "relationship", "correlation",
		"impact", "effect", "influence", "trend", "pattern",
	}},
	{domain.IntentCalculative, []string{
		"calculate", "compute", "ratio", "percentage", "margin", "profit", "revenue",
		"divide", "multiply", "sum", "total", "average",
	}},
	{domain.IntentComparative, []string{
		"compare", "comparison", "versus", "vs", "difference", "similar", "better",
		"worse", "more than", "less than",
	}},
	{domain.IntentFactual, []string{
		"what", "who", "when", "where", "which", "list", "name", "show",
	}},
}

var confusionIndicators = []string{
	"confused", "confusing", "don't understand", "don't know", "not clear", "unclear",
	"can't understand", "doesn't make sense", "help", "clarify", "simplify",
}

var beginnerIndicators = []string{
	"what is", "what does", "basics", "simple", "easy", "beginner", "introduction",
	"overview", "summary", "in simple terms", "layman",
}

var expertIndicators = []string{
	"implementation", "architecture", "optimization", "algorithm",
	"methodology", "framework", "paradigm",
}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the a an is are was were be been being " +
			"have has had do does did will would should " +
			"could may might must can this that these those " +
			"i you he she it we they what which who " +
			"when where why how and or but if then else") {
		stopWords[w] = struct{}{}
	}
}

const maxKeyTerms = 5

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Analyze classifies a question: surface form, intent, inferred user level,
// confusion signals and key terms.
func Analyze(question string) domain.QueryAnalysis {
	lower := strings.ToLower(strings.TrimSpace(question))

	qtype := detectQuestionType(lower)
	intent := detectIntent(lower)
	level := detectUserLevel(lower)
	confused := detectConfusion(lower)

	needsExplanation := intent == domain.IntentExplanatory ||
		intent == domain.IntentAnalytical ||
		qtype == domain.QuestionWhat ||
		qtype == domain.QuestionWhy ||
		qtype == domain.QuestionHow ||
		confused ||
		level == domain.LevelBeginner

	return domain.QueryAnalysis{
		QuestionType:     qtype,
		Intent:           intent,
		UserLevel:        level,
		IsConfused:       confused,
		NeedsExplanation: needsExplanation,
		KeyTerms:         extractKeyTerms(question),
		OriginalQuestion: question,
	}
}

func detectQuestionType(question string) domain.QuestionType {
	for _, qp := range questionPatterns {
		if qp.pattern.MatchString(question) {
			return qp.qtype
		}
	}
	return domain.QuestionUnknown
}

func detectIntent(question string) domain.IntentType {
	for _, ik := range intentPriority {
		for _, kw := range ik.keywords {
			if strings.Contains(question, kw) {
				return ik.intent
			}
		}
	}
	return domain.IntentUnknown
}

func detectUserLevel(question string) domain.UserLevel {
	for _, ind := range beginnerIndicators {
		if strings.Contains(question, ind) {
			return domain.LevelBeginner
		}
	}
	for _, ind := range expertIndicators {
		if strings.Contains(question, ind) {
			return domain.LevelExpert
		}
	}
	return domain.LevelIntermediate
}

func detectConfusion(question string) bool {
	for _, ind := range confusionIndicators {
		if strings.Contains(question, ind) {
			return true
		}
	}
	return false
}

// extractKeyTerms tokenizes, lowercases, strips stop words, keeps tokens
// longer than 2 characters, dedupes preserving first-seen order and caps
// the result at maxKeyTerms.
func extractKeyTerms(question string) []string {
	words := wordRe.FindAllString(strings.ToLower(question), -1)

	seen := make(map[string]struct{}, len(words))
	var terms []string
	for _, w := range words {
		if _, stop := stopWords[w]; stop || len(w) <= 2 {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
		if len(terms) == maxKeyTerms {
			break
		}
	}
	return terms
}
