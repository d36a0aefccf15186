package model

import "fmt"

// Registry is the static catalog of selectable models. It is built once
// at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	ordered    []ModelDescriptor
	byModality map[Modality][]ModelDescriptor
	byName     map[Modality]map[string]ModelDescriptor
}

func NewRegistry(descriptors ...ModelDescriptor) *Registry {
	r := &Registry{
		ordered:    make([]ModelDescriptor, 0, len(descriptors)),
		byModality: make(map[Modality][]ModelDescriptor),
		byName:     make(map[Modality]map[string]ModelDescriptor),
	}
	for _, d := range descriptors {
		if _, exists := r.byName[d.Modality]; !exists {
			r.byName[d.Modality] = make(map[string]ModelDescriptor)
		}
		if _, exists := r.byName[d.Modality][d.Name]; exists {
			continue
		}
		r.ordered = append(r.ordered, d)
		r.byModality[d.Modality] = append(r.byModality[d.Modality], d)
		r.byName[d.Modality][d.Name] = d
	}
	return r
}

// ListModels returns the display names catalogued for a modality, in
// catalog order. The order is stable across calls so a drop-down built
// from it never reshuffles.
func (r *Registry) ListModels(modality Modality) []string {
	descriptors := r.byModality[modality]
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	return names
}

// Descriptors returns the full descriptors for a modality, catalog order.
func (r *Registry) Descriptors(modality Modality) []ModelDescriptor {
	descriptors := r.byModality[modality]
	out := make([]ModelDescriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Resolve maps a (modality, display name) pair to its descriptor.
func (r *Registry) Resolve(modality Modality, name string) (ModelDescriptor, error) {
	if d, ok := r.byName[modality][name]; ok {
		return d, nil
	}
	return ModelDescriptor{}, fmt.Errorf("%w: %s/%s", ErrUnknownModel, modality, name)
}

// DefaultRegistry builds the catalog shipped with the application.
func DefaultRegistry() *Registry {
	return NewRegistry(
		ModelDescriptor{
			Modality: ModalityText,
			Name:     "DistilBERT Sentiment (SST-2)",
			Task:     TaskSentimentAnalysis,
			ModelID:  "distilbert-base-uncased-finetuned-sst-2-english",
			Description: "A lightweight DistilBERT fine-tuned on SST-2 for binary sentiment " +
				"classification. Input: short English text. Output: label (POSITIVE/NEGATIVE) with score.",
		},
		ModelDescriptor{
			Modality: ModalityText,
			Name:     "BERT Base NER",
			Task:     TaskTokenClassification,
			ModelID:  "dslim/bert-base-NER",
			Description: "BERT base fine-tuned for named entity recognition. Input: English text. " +
				"Output: recognized entities (person, organisation, location, misc) with scores.",
		},
		ModelDescriptor{
			Modality: ModalityImage,
			Name:     "ViT Base Image Classifier",
			Task:     TaskImageClassification,
			ModelID:  "google/vit-base-patch16-224",
			Description: "Vision Transformer (ViT) base model fine-tuned for generic image " +
				"classification. Input: an image. Output: top class predictions with scores.",
		},
		ModelDescriptor{
			Modality: ModalityAudio,
			Name:     "Whisper Tiny (EN) ASR",
			Task:     TaskSpeechRecognition,
			ModelID:  "openai/whisper-tiny.en",
			Description: "OpenAI Whisper tiny English model for speech-to-text. " +
				"Input: audio clip (wav/mp3/flac/ogg). Output: transcribed text.",
		},
		ModelDescriptor{
			Modality: ModalityAudio,
			Name:     "Whisper Base ASR",
			Task:     TaskSpeechRecognition,
			ModelID:  "openai/whisper-base",
			Description: "OpenAI Whisper base multilingual model for speech-to-text. " +
				"Input: audio clip (wav/mp3/flac/ogg). Output: transcribed text.",
		},
	)
}
