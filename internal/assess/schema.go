package assess

// confidence01 is the schema fragment for a confidence value in [0,1].
var confidence01 = map[string]any{
	"type":    "number",
	"minimum": 0,
	"maximum": 1,
}

// score010 is the schema fragment for a score on the 0-10 scale.
var score010 = map[string]any{
	"type":    "number",
	"minimum": 0,
	"maximum": 10,
}

var gradeEnum = map[string]any{
	"type": "string",
	"enum": []any{"A", "B", "C", "D", "F"},
}

// AnalyzeResponseSchema defines the contract for a successful /analyze body.
// Unknown extra fields are tolerated; missing or out-of-range required
// fields are not.
var AnalyzeResponseSchema = &Schema{
	Name: "analyze-response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"repo_url":       map[string]any{"type": "string"},
			"status":         map[string]any{"type": "string"},
			"files_analyzed": map[string]any{"type": "integer", "minimum": 0},
			"patterns": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":       map[string]any{"type": "string", "minLength": 1},
						"present":    map[string]any{"type": "boolean"},
						"confidence": confidence01,
					},
					"required": []any{"name", "present", "confidence"},
				},
			},
			"algorithm": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"label":       map[string]any{"type": "string"},
					"confidence":  confidence01,
					"detected_by": map[string]any{"type": "string"},
				},
				"required": []any{"label", "confidence", "detected_by"},
			},
			"quality": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"score": score010,
					"grade": gradeEnum,
					"metrics": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"cyclomatic_complexity": map[string]any{"type": "number", "minimum": 0},
							"lines_of_code":         map[string]any{"type": "integer", "minimum": 0},
							"comment_ratio":         confidence01,
							"avg_function_length":   map[string]any{"type": "number", "minimum": 0},
							"functions_count":       map[string]any{"type": "integer", "minimum": 0},
						},
						"required": []any{
							"cyclomatic_complexity", "lines_of_code", "comment_ratio",
							"avg_function_length", "functions_count",
						},
					},
				},
				"required": []any{"score", "grade", "metrics"},
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "string", "minLength": 1},
						"pattern":  map[string]any{"type": "string"},
						"question": map[string]any{"type": "string", "minLength": 1},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"expected_keywords": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"max_marks": map[string]any{"type": "number", "exclusiveMinimum": 0},
					},
					"required": []any{"id", "pattern", "question", "difficulty", "expected_keywords", "max_marks"},
				},
			},
		},
		"required": []any{"repo_url", "files_analyzed", "patterns", "algorithm", "quality", "questions"},
	},
}

// EvaluateResponseSchema defines the contract for a successful /evaluate body.
var EvaluateResponseSchema = &Schema{
	Name: "evaluate-response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer_scores": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_id":    map[string]any{"type": "string", "minLength": 1},
						"question_text":  map[string]any{"type": "string"},
						"similarity":     confidence01,
						"marks_obtained": map[string]any{"type": "number", "minimum": 0},
						"max_marks":      map[string]any{"type": "number", "exclusiveMinimum": 0},
						"feedback":       map[string]any{"type": "string"},
					},
					"required": []any{"question_id", "similarity", "marks_obtained", "max_marks", "feedback"},
				},
			},
			"component_scores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code_quality":          score010,
					"algorithm_correctness": score010,
					"answer_evaluation":     score010,
				},
				"required": []any{"code_quality", "algorithm_correctness", "answer_evaluation"},
			},
			"final_score": score010,
			"grade":       gradeEnum,
			"feedback":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"strengths":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"improvements": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"answer_scores", "component_scores", "final_score", "grade"},
	},
}
