package model

import (
	"context"
	"encoding/json"
)

// PipelineRequest is the raw payload sent to the underlying runtime.
// Exactly one of JSON or Raw is set: text tasks post a JSON body, image
// and audio tasks post the encoded bytes directly.
type PipelineRequest struct {
	JSON        any
	Raw         []byte
	ContentType string
}

// Pipeline is the boundary with the underlying pretrained-model runtime.
// It is an opaque black box: one call, modality-appropriate raw input in,
// runtime-shaped JSON out. Handlers normalize the response.
type Pipeline interface {
	Invoke(ctx context.Context, req PipelineRequest) (json.RawMessage, error)
}

// PipelineFactory builds the pipeline for a descriptor. Handlers call it
// lazily on the first run, not at construction, so selecting a model stays
// cheap until input is actually submitted.
type PipelineFactory func(ModelDescriptor) (Pipeline, error)
