package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muratoffalex/inferhub/internal/model"
)

// Renderer formats normalized run results and error values for a
// terminal. Failures arrive as data, never as panics, so rendering is the
// only thing left to do with them.
type Renderer struct {
	localizer *Localizer
}

func NewRenderer(localizer *Localizer) *Renderer {
	return &Renderer{localizer: localizer}
}

func (r *Renderer) Result(res model.RunResult) string {
	switch res.Kind {
	case model.ResultClassification:
		var b strings.Builder
		b.WriteString(r.localizer.Localize("result_classification", map[string]any{
			"Label": res.Label,
			"Score": fmt.Sprintf("%.4f", res.Score),
		}))
		if len(res.Detail) > 1 {
			b.WriteString("\n")
			b.WriteString(r.localizer.Localize("result_top_predictions", nil))
			for _, p := range res.Detail {
				b.WriteString(fmt.Sprintf("\n  %s: %.4f", p.Label, p.Score))
			}
		}
		return b.String()
	case model.ResultTranscript:
		return r.localizer.Localize("result_transcript", map[string]any{"Text": res.Value})
	default:
		return res.Value
	}
}

func (r *Renderer) Error(err error) string {
	var infErr *model.InferenceError
	switch {
	case errors.Is(err, model.ErrNoSelection):
		return r.localizer.Localize("error_no_selection", nil)
	case errors.Is(err, model.ErrInputMismatch):
		return r.localizer.Localize("error_input_mismatch", nil)
	case errors.As(err, &infErr):
		reason := infErr.Message
		if reason == "" {
			reason = infErr.Error()
		}
		return r.localizer.Localize("error_inference", map[string]any{"Reason": reason})
	}
	return err.Error()
}

// UnknownModel renders the selection error for a specific pair.
func (r *Renderer) UnknownModel(modality model.Modality, name string) string {
	return r.localizer.Localize("error_unknown_model", map[string]any{
		"Name":     name,
		"Modality": modality.String(),
	})
}
