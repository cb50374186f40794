package assess

import "encoding/json"

// Difficulty is the stated difficulty of an interview question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Pattern is a single design-pattern finding from the analyze service.
// Evidence is an opaque payload the client never interprets; it is carried
// through to the presentation layer as-is.
type Pattern struct {
	Name       string          `json:"name"`
	Present    bool            `json:"present"`
	Confidence float64         `json:"confidence"`
	Evidence   json.RawMessage `json:"evidence,omitempty"`
}

// AlgorithmPrediction identifies the dominant algorithm detected in the
// repository, with a provenance tag (rule-based vs. model-based).
type AlgorithmPrediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	DetectedBy string  `json:"detected_by"`
}

// QualityMetrics holds the raw code metrics behind a quality score.
type QualityMetrics struct {
	CyclomaticComplexity float64 `json:"cyclomatic_complexity"`
	LinesOfCode          int     `json:"lines_of_code"`
	CommentRatio         float64 `json:"comment_ratio"`
	AvgFunctionLength    float64 `json:"avg_function_length"`
	FunctionsCount       int     `json:"functions_count"`
}

// QualityScore is the analyze service's code-quality verdict.
// Score is on a 0-10 scale; Grade is one of A, B, C, D, F.
type QualityScore struct {
	Score   float64        `json:"score"`
	Grade   string         `json:"grade"`
	Metrics QualityMetrics `json:"metrics"`
}

// Question is a generated interview question. ID is stable for the life of
// the session and keys the user's answer. Pattern references a Pattern.Name
// from the same analysis.
type Question struct {
	ID               string     `json:"id"`
	Pattern          string     `json:"pattern"`
	Text             string     `json:"question"`
	Difficulty       Difficulty `json:"difficulty"`
	ExpectedKeywords []string   `json:"expected_keywords"`
	MaxMarks         float64    `json:"max_marks"`
}

// Analysis is the immutable snapshot returned by the analyze service.
// It is created whole from a single response and never mutated or merged.
type Analysis struct {
	RepositoryURL string              `json:"repo_url"`
	Status        string              `json:"status"`
	FilesAnalyzed int                 `json:"files_analyzed"`
	Patterns      []Pattern           `json:"patterns"`
	Algorithm     AlgorithmPrediction `json:"algorithm"`
	Quality       QualityScore        `json:"quality"`
	Questions     []Question          `json:"questions"`
}

// SubmittedAnswer pairs a question ID with the user's (possibly empty)
// trimmed answer text. Empty answers are sent so the evaluate service can
// score zero credit instead of silently skipping the question.
type SubmittedAnswer struct {
	QuestionID string `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

// EvaluateInput is the full request payload for the evaluate service.
// The evaluate service is stateless across calls, so the analysis context
// (repository URL, algorithm prediction, quality score) travels with every
// request.
type EvaluateInput struct {
	RepositoryURL       string            `json:"repo_url"`
	AlgorithmLabel      string            `json:"algorithm_label"`
	AlgorithmConfidence float64           `json:"algorithm_confidence"`
	QualityScore        float64           `json:"quality_score"`
	Questions           []Question        `json:"questions"`
	Answers             []SubmittedAnswer `json:"answers"`
}

// AnswerScore is the evaluation of a single submitted answer.
type AnswerScore struct {
	QuestionID    string  `json:"question_id"`
	QuestionText  string  `json:"question_text"`
	Similarity    float64 `json:"similarity"`
	MarksObtained float64 `json:"marks_obtained"`
	MaxMarks      float64 `json:"max_marks"`
	Feedback      string  `json:"feedback"`
}

// ComponentScores holds the three weighted components of the final score,
// each on a 0-10 scale.
type ComponentScores struct {
	CodeQuality          float64 `json:"code_quality"`
	AlgorithmCorrectness float64 `json:"algorithm_correctness"`
	AnswerEvaluation     float64 `json:"answer_evaluation"`
}

// Results is the immutable snapshot returned by the evaluate service.
// FinalScore is the service's weighted composite (quality 40%, algorithm 30%,
// answers 30%); the client displays it verbatim and never recomputes it.
type Results struct {
	AnswerScores    []AnswerScore   `json:"answer_scores"`
	ComponentScores ComponentScores `json:"component_scores"`
	FinalScore      float64         `json:"final_score"`
	Grade           string          `json:"grade"`
	Feedback        []string        `json:"feedback"`
	Strengths       []string        `json:"strengths"`
	Improvements    []string        `json:"improvements"`
}
