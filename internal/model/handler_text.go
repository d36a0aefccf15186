package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TextHandler runs text models: sentiment classification and named
// entity recognition.
type TextHandler struct {
	baseHandler
}

type scoredLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type namedEntity struct {
	EntityGroup string  `json:"entity_group"`
	Entity      string  `json:"entity"`
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
}

func (e namedEntity) group() string {
	if e.EntityGroup != "" {
		return e.EntityGroup
	}
	return e.Entity
}

func (h *TextHandler) Run(ctx context.Context, input Input) (RunResult, error) {
	text, ok := input.(TextInput)
	if !ok {
		return RunResult{}, fmt.Errorf("%w: text handler got %T", ErrInputMismatch, input)
	}
	if strings.TrimSpace(string(text)) == "" {
		return RunResult{}, newInferenceError(h.desc, nil, "empty input text")
	}

	pipeline, err := h.ensurePipeline()
	if err != nil {
		return RunResult{}, err
	}

	raw, err := pipeline.Invoke(ctx, PipelineRequest{
		JSON: map[string]any{"inputs": string(text)},
	})
	if err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "runtime call failed")
	}

	if h.desc.Task == TaskTokenClassification {
		return h.normalizeEntities(raw)
	}
	return h.normalizeClassification(raw)
}

func (h *TextHandler) normalizeClassification(raw json.RawMessage) (RunResult, error) {
	labels, err := decodeScoredLabels(raw)
	if err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "unexpected runtime response")
	}
	if len(labels) == 0 {
		return RunResult{}, newInferenceError(h.desc, nil, "runtime returned no predictions")
	}
	return classificationResult(bestPrediction(labels), topPredictions(labels, 5)), nil
}

func (h *TextHandler) normalizeEntities(raw json.RawMessage) (RunResult, error) {
	var entities []namedEntity
	if err := json.Unmarshal(raw, &entities); err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "unexpected runtime response")
	}
	if len(entities) == 0 {
		return textResult("No entities recognized."), nil
	}
	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		lines = append(lines, fmt.Sprintf("%s: %s (%.4f)", e.group(), e.Word, e.Score))
	}
	return textResult(strings.Join(lines, "\n")), nil
}

// decodeScoredLabels accepts both shapes text-classification endpoints
// return: a flat list of label/score pairs or a list nested per input.
func decodeScoredLabels(raw json.RawMessage) ([]scoredLabel, error) {
	var nested [][]scoredLabel
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}
	var flat []scoredLabel
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}

func bestPrediction(labels []scoredLabel) Prediction {
	best := labels[0]
	for _, l := range labels[1:] {
		if l.Score > best.Score {
			best = l
		}
	}
	return Prediction{Label: best.Label, Score: best.Score}
}

func topPredictions(labels []scoredLabel, limit int) []Prediction {
	sorted := make([]scoredLabel, len(labels))
	copy(sorted, labels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]Prediction, 0, len(sorted))
	for _, l := range sorted {
		out = append(out, Prediction{Label: l.Label, Score: l.Score})
	}
	return out
}
