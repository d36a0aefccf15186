package model

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muratoffalex/inferhub/internal/logger"
)

func newTextHandler(t *testing.T, task string, factory *fakeFactory) Handler {
	t.Helper()
	d := ModelDescriptor{Modality: ModalityText, Name: "test", Task: task, ModelID: "test/model"}
	h, err := newHandler(d, factory.make, logger.NewTestLogger())
	require.NoError(t, err)
	return h
}

func TestTextHandler_EmptyInput(t *testing.T) {
	factory := &fakeFactory{pipeline: &fakePipeline{}}
	h := newTextHandler(t, TaskSentimentAnalysis, factory)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := h.Run(context.Background(), TextInput(input))
		assert.True(t, IsInference(err), "input %q", input)
	}
	// rejected before the pipeline was ever bound
	assert.Zero(t, factory.calls)
}

func TestTextHandler_SentimentShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"nested per input", `[[{"label":"POSITIVE","score":0.98},{"label":"NEGATIVE","score":0.02}]]`},
		{"flat list", `[{"label":"POSITIVE","score":0.98},{"label":"NEGATIVE","score":0.02}]`},
		{"unsorted scores", `[[{"label":"NEGATIVE","score":0.02},{"label":"POSITIVE","score":0.98}]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := &fakeFactory{pipeline: &fakePipeline{raw: json.RawMessage(tt.raw)}}
			h := newTextHandler(t, TaskSentimentAnalysis, factory)

			result, err := h.Run(context.Background(), TextInput("great stuff"))
			require.NoError(t, err)
			assert.Equal(t, ResultClassification, result.Kind)
			assert.Equal(t, "POSITIVE", result.Label)
			assert.InDelta(t, 0.98, result.Score, 1e-9)
		})
	}
}

func TestTextHandler_SentimentRequestBody(t *testing.T) {
	pipeline := &fakePipeline{raw: json.RawMessage(`[[{"label":"POSITIVE","score":0.9}]]`)}
	h := newTextHandler(t, TaskSentimentAnalysis, &fakeFactory{pipeline: pipeline})

	_, err := h.Run(context.Background(), TextInput("hello"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"inputs": "hello"}, pipeline.lastReq.JSON)
	assert.Nil(t, pipeline.lastReq.Raw)
}

func TestTextHandler_EntityRecognition(t *testing.T) {
	t.Run("entities found", func(t *testing.T) {
		raw := `[{"entity_group":"PER","word":"Wolfgang","score":0.9985},{"entity_group":"LOC","word":"Berlin","score":0.9970}]`
		h := newTextHandler(t, TaskTokenClassification, &fakeFactory{pipeline: &fakePipeline{raw: json.RawMessage(raw)}})

		result, err := h.Run(context.Background(), TextInput("My name is Wolfgang and I live in Berlin"))
		require.NoError(t, err)
		assert.Equal(t, ResultText, result.Kind)
		assert.Contains(t, result.Value, "PER: Wolfgang")
		assert.Contains(t, result.Value, "LOC: Berlin")
	})

	t.Run("ungrouped entity field", func(t *testing.T) {
		raw := `[{"entity":"B-PER","word":"Wolfgang","score":0.9985}]`
		h := newTextHandler(t, TaskTokenClassification, &fakeFactory{pipeline: &fakePipeline{raw: json.RawMessage(raw)}})

		result, err := h.Run(context.Background(), TextInput("My name is Wolfgang"))
		require.NoError(t, err)
		assert.Contains(t, result.Value, "B-PER: Wolfgang")
	})

	t.Run("no entities", func(t *testing.T) {
		h := newTextHandler(t, TaskTokenClassification, &fakeFactory{pipeline: &fakePipeline{raw: json.RawMessage(`[]`)}})

		result, err := h.Run(context.Background(), TextInput("nothing here"))
		require.NoError(t, err)
		assert.Equal(t, ResultText, result.Kind)
		assert.NotEmpty(t, result.Value)
	})
}

func TestTextHandler_MalformedResponse(t *testing.T) {
	h := newTextHandler(t, TaskSentimentAnalysis, &fakeFactory{pipeline: &fakePipeline{raw: json.RawMessage(`{"oops":true}`)}})

	_, err := h.Run(context.Background(), TextInput("hello"))
	assert.True(t, IsInference(err))
}

func TestTextHandler_WrongInputType(t *testing.T) {
	h := newTextHandler(t, TaskSentimentAnalysis, &fakeFactory{pipeline: &fakePipeline{}})

	_, err := h.Run(context.Background(), ImageInput{Data: []byte{1}})
	assert.ErrorIs(t, err, ErrInputMismatch)
}
