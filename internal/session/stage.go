package session

// Stage is the session's position in the assessment lifecycle.
//
// The machine moves Idle → Analyzing → Analyzed → Evaluating → Evaluated.
// A failed analyze call drops back to Idle; a failed evaluate call drops
// back to Analyzed with the answer set intact. Reset reaches Idle from
// every stage.
type Stage int

const (
	StageIdle Stage = iota
	StageAnalyzing
	StageAnalyzed
	StageEvaluating
	StageEvaluated
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAnalyzing:
		return "analyzing"
	case StageAnalyzed:
		return "analyzed"
	case StageEvaluating:
		return "evaluating"
	case StageEvaluated:
		return "evaluated"
	default:
		return "unknown"
	}
}
