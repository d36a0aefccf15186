package model

// Input is a raw payload submitted by the caller. The concrete type tells
// the manager which modality the payload belongs to; deeper validation is
// the matching handler's job.
type Input interface {
	InputModality() Modality
}

type TextInput string

func (TextInput) InputModality() Modality { return ModalityText }

func (t TextInput) String() string { return string(t) }

// ImageInput carries an in-memory encoded image (png, jpeg, gif, webp,
// bmp or tiff).
type ImageInput struct {
	Data []byte
}

func (ImageInput) InputModality() Modality { return ModalityImage }

// AudioInput carries either an in-memory audio clip or a path to one.
// When both are set, Data wins.
type AudioInput struct {
	Data []byte
	Path string
}

func (AudioInput) InputModality() Modality { return ModalityAudio }
