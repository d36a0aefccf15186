package model

// ResultKind tags the normalized shape of a run's output.
type ResultKind string

const (
	ResultText           ResultKind = "text"
	ResultClassification ResultKind = "classification"
	ResultTranscript     ResultKind = "transcript"
)

type Prediction struct {
	Label string
	Score float64
}

// RunResult is the normalized union every handler output is coerced into
// before it reaches the caller. Classification results carry the best
// prediction in Label/Score and up to the top five in Detail; text and
// transcript results carry Value.
type RunResult struct {
	Kind   ResultKind
	Value  string
	Label  string
	Score  float64
	Detail []Prediction
}

func textResult(value string) RunResult {
	return RunResult{Kind: ResultText, Value: value}
}

func transcriptResult(value string) RunResult {
	return RunResult{Kind: ResultTranscript, Value: value}
}

func classificationResult(best Prediction, detail []Prediction) RunResult {
	return RunResult{
		Kind:   ResultClassification,
		Label:  best.Label,
		Score:  best.Score,
		Detail: detail,
	}
}
