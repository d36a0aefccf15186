package model

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/muratoffalex/inferhub/internal/media"
)

// AudioHandler runs speech-recognition models. Input arrives as bytes or
// a file path; formats the runtime does not accept directly are reencoded
// to wav first.
type AudioHandler struct {
	baseHandler
}

func (h *AudioHandler) Run(ctx context.Context, input Input) (RunResult, error) {
	clip, ok := input.(AudioInput)
	if !ok {
		return RunResult{}, fmt.Errorf("%w: audio handler got %T", ErrInputMismatch, input)
	}

	data := clip.Data
	if len(data) == 0 && clip.Path != "" {
		var err error
		data, err = os.ReadFile(clip.Path)
		if err != nil {
			return RunResult{}, newInferenceError(h.desc, err, "cannot read audio file")
		}
	}
	if len(data) == 0 {
		return RunResult{}, newInferenceError(h.desc, nil, "empty audio")
	}

	contentType, recognized := media.SniffAudio(data)
	if recognized && contentType == "audio/wav" {
		if _, err := media.ProbeWAV(data); err != nil {
			return RunResult{}, newInferenceError(h.desc, err, "cannot decode audio")
		}
	}
	if !recognized {
		converted, err := media.ConvertToWAV(data)
		if err != nil {
			return RunResult{}, newInferenceError(h.desc, err, "unsupported audio format")
		}
		data = converted
		contentType = "audio/wav"
	}

	pipeline, err := h.ensurePipeline()
	if err != nil {
		return RunResult{}, err
	}

	raw, err := pipeline.Invoke(ctx, PipelineRequest{
		Raw:         data,
		ContentType: contentType,
	})
	if err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "runtime call failed")
	}

	var resp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "unexpected runtime response")
	}
	return transcriptResult(strings.TrimSpace(resp.Text)), nil
}
