package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/muratoffalex/inferhub/internal/logger"
)

// Manager is the facade the caller talks to. It holds at most one handler
// at a time, keyed by the current selection; changing the selection drops
// the old handler together with any pipeline it had bound.
//
// The manager is synchronous and single-caller by contract: Run blocks
// until the runtime answers and must not be invoked concurrently against
// the same instance.
type Manager struct {
	registry *Registry
	factory  PipelineFactory
	logger   logger.Logger

	selected ModelDescriptor
	handler  Handler
}

func NewManager(registry *Registry, factory PipelineFactory, log logger.Logger) *Manager {
	return &Manager{
		registry: registry,
		factory:  factory,
		logger:   log,
	}
}

// ListModels exposes the registry listing for drop-down population.
func (m *Manager) ListModels(modality Modality) []string {
	return m.registry.ListModels(modality)
}

// Descriptors exposes the full catalog entries for a modality.
func (m *Manager) Descriptors(modality Modality) []ModelDescriptor {
	return m.registry.Descriptors(modality)
}

// Select resolves the pair and swaps the cached handler when the
// selection actually changed. Re-selecting the current pair keeps the
// handler (and its bound pipeline) untouched. On resolution failure the
// prior selection stays as it was.
func (m *Manager) Select(modality Modality, name string) error {
	d, err := m.registry.Resolve(modality, name)
	if err != nil {
		return err
	}
	if m.handler != nil && m.selected == d {
		return nil
	}

	handler, err := newHandler(d, m.factory, m.logger)
	if err != nil {
		return err
	}
	m.logger.WithFields(logger.Fields{
		"modality": d.Modality,
		"model":    d.ModelID,
	}).Info("Model selected")
	m.selected = d
	m.handler = handler
	return nil
}

// Selection returns the currently selected descriptor, if any.
func (m *Manager) Selection() (ModelDescriptor, bool) {
	return m.selected, m.handler != nil
}

// Run feeds the raw input to the cached handler. Every failure comes back
// as an error value: selection bugs as sentinel errors, everything that
// went wrong below the handler as *InferenceError. Nothing escapes as a
// panic and a failed run leaves the selection intact.
func (m *Manager) Run(ctx context.Context, input Input) (RunResult, error) {
	if m.handler == nil {
		return RunResult{}, ErrNoSelection
	}
	if input == nil {
		return RunResult{}, fmt.Errorf("%w: nil input", ErrInputMismatch)
	}
	if got := input.InputModality(); got != m.selected.Modality {
		return RunResult{}, fmt.Errorf("%w: selected %s, got %s", ErrInputMismatch, m.selected.Modality, got)
	}

	log := m.logger.WithFields(logger.Fields{
		"run_id": uuid.NewString(),
		"model":  m.selected.ModelID,
	})
	log.Debug("Running inference")

	result, err := m.handler.Run(ctx, input)
	if err != nil {
		if !IsInference(err) && !errors.Is(err, ErrInputMismatch) {
			err = newInferenceError(m.selected, err, "unexpected handler failure")
		}
		log.WithError(err).Warn("Inference failed")
		return RunResult{}, err
	}
	log.WithField("kind", result.Kind).Debug("Inference finished")
	return result, nil
}
