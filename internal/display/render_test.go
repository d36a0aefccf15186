package display

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muratoffalex/inferhub/internal/model"
)

func newRenderer(t *testing.T, lang string) *Renderer {
	t.Helper()
	localizer, err := NewLocalizer(lang)
	require.NoError(t, err)
	return NewRenderer(localizer)
}

func TestRenderer_ClassificationResult(t *testing.T) {
	r := newRenderer(t, "en")

	out := r.Result(model.RunResult{
		Kind:  model.ResultClassification,
		Label: "POSITIVE",
		Score: 0.9987,
		Detail: []model.Prediction{
			{Label: "POSITIVE", Score: 0.9987},
			{Label: "NEGATIVE", Score: 0.0013},
		},
	})

	assert.Contains(t, out, "POSITIVE")
	assert.Contains(t, out, "0.9987")
	assert.Contains(t, out, "NEGATIVE")
}

func TestRenderer_TranscriptResult(t *testing.T) {
	r := newRenderer(t, "en")

	out := r.Result(model.RunResult{Kind: model.ResultTranscript, Value: "hello there"})
	assert.Contains(t, out, "hello there")
}

func TestRenderer_TextResult(t *testing.T) {
	r := newRenderer(t, "en")

	out := r.Result(model.RunResult{Kind: model.ResultText, Value: "PER: Wolfgang (0.9985)"})
	assert.Equal(t, "PER: Wolfgang (0.9985)", out)
}

func TestRenderer_Errors(t *testing.T) {
	r := newRenderer(t, "en")

	t.Run("no selection", func(t *testing.T) {
		out := r.Error(model.ErrNoSelection)
		assert.Contains(t, out, "Select a model")
	})

	t.Run("input mismatch", func(t *testing.T) {
		out := r.Error(fmt.Errorf("%w: got audio", model.ErrInputMismatch))
		assert.Contains(t, out, "does not match")
	})

	t.Run("inference failure", func(t *testing.T) {
		infErr := &model.InferenceError{
			Model:    "test/model",
			Modality: model.ModalityText,
			Message:  "empty input text",
		}
		out := r.Error(infErr)
		assert.Contains(t, out, "empty input text")
	})

	t.Run("unrecognized error falls through", func(t *testing.T) {
		err := errors.New("something else")
		assert.Equal(t, "something else", r.Error(err))
	})
}

func TestRenderer_Localized(t *testing.T) {
	r := newRenderer(t, "ru")

	out := r.Result(model.RunResult{Kind: model.ResultTranscript, Value: "привет"})
	assert.Contains(t, out, "привет")
	assert.Contains(t, out, "Расшифровка")
}

func TestLocalizer_UnknownLanguage(t *testing.T) {
	_, err := NewLocalizer("not-a-language-tag")
	assert.Error(t, err)
}
