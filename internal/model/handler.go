package model

import (
	"context"
	"fmt"

	"github.com/muratoffalex/inferhub/internal/logger"
)

// Handler wraps exactly one pretrained model and knows how to feed it raw
// input of its modality and normalize the output. Implementations bind
// their pipeline lazily on the first Run and reuse it afterwards.
type Handler interface {
	Descriptor() ModelDescriptor
	Run(ctx context.Context, input Input) (RunResult, error)
}

func newHandler(d ModelDescriptor, factory PipelineFactory, log logger.Logger) (Handler, error) {
	base := baseHandler{
		desc:    d,
		factory: factory,
		logger:  log.WithFields(logger.Fields{"modality": d.Modality, "model": d.ModelID}),
	}
	switch d.Modality {
	case ModalityText:
		return &TextHandler{baseHandler: base}, nil
	case ModalityImage:
		return &ImageHandler{baseHandler: base}, nil
	case ModalityAudio:
		return &AudioHandler{baseHandler: base}, nil
	}
	return nil, fmt.Errorf("no handler for modality: %s", d.Modality)
}

type baseHandler struct {
	desc     ModelDescriptor
	factory  PipelineFactory
	pipeline Pipeline
	logger   logger.Logger
}

func (h *baseHandler) Descriptor() ModelDescriptor {
	return h.desc
}

// ensurePipeline defers the expensive runtime bind until input actually
// arrives. Repeat runs reuse the already-bound pipeline.
func (h *baseHandler) ensurePipeline() (Pipeline, error) {
	if h.pipeline != nil {
		return h.pipeline, nil
	}
	h.logger.Debug("Binding runtime pipeline")
	p, err := h.factory(h.desc)
	if err != nil {
		return nil, newInferenceError(h.desc, err, "failed to bind runtime pipeline")
	}
	h.pipeline = p
	return p, nil
}
