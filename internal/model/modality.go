// Package model implements the dispatch core: a static registry of
// pretrained models grouped by input modality, one handler variant per
// modality and a manager facade that runs the current selection and
// normalizes whatever the underlying runtime returns.
package model

import "fmt"

// Modality is the category of input data a model accepts.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
)

// Modalities lists the supported modalities in display order.
var Modalities = []Modality{ModalityText, ModalityImage, ModalityAudio}

func (m Modality) Valid() bool {
	switch m {
	case ModalityText, ModalityImage, ModalityAudio:
		return true
	}
	return false
}

func (m Modality) String() string {
	return string(m)
}

func ParseModality(s string) (Modality, error) {
	m := Modality(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown modality: %q", s)
	}
	return m, nil
}
