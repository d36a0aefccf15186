package model

import (
	"context"
	"fmt"

	"github.com/muratoffalex/inferhub/internal/media"
)

// ImageHandler runs image-classification models against an in-memory
// encoded image.
type ImageHandler struct {
	baseHandler
}

func (h *ImageHandler) Run(ctx context.Context, input Input) (RunResult, error) {
	img, ok := input.(ImageInput)
	if !ok {
		return RunResult{}, fmt.Errorf("%w: image handler got %T", ErrInputMismatch, input)
	}
	if len(img.Data) == 0 {
		return RunResult{}, newInferenceError(h.desc, nil, "empty image")
	}

	info, err := media.SniffImage(img.Data)
	if err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "cannot decode image")
	}

	pipeline, err := h.ensurePipeline()
	if err != nil {
		return RunResult{}, err
	}

	raw, err := pipeline.Invoke(ctx, PipelineRequest{
		Raw:         img.Data,
		ContentType: info.ContentType(),
	})
	if err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "runtime call failed")
	}

	labels, err := decodeScoredLabels(raw)
	if err != nil {
		return RunResult{}, newInferenceError(h.desc, err, "unexpected runtime response")
	}
	if len(labels) == 0 {
		return RunResult{}, newInferenceError(h.desc, nil, "runtime returned no predictions")
	}
	return classificationResult(bestPrediction(labels), topPredictions(labels, 5)), nil
}
