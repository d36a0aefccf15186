package model

// Task names follow the hosted runtime's pipeline vocabulary.
const (
	TaskSentimentAnalysis   = "sentiment-analysis"
	TaskTokenClassification = "token-classification"
	TaskImageClassification = "image-classification"
	TaskSpeechRecognition   = "automatic-speech-recognition"
)

// ModelDescriptor identifies one selectable pretrained model. Descriptors
// are defined once at startup and never mutated.
type ModelDescriptor struct {
	Modality    Modality
	Name        string // display name shown in the caller's drop-down
	Task        string
	ModelID     string // identifier understood by the underlying runtime
	Description string
}

func (d ModelDescriptor) Zero() bool {
	return d.ModelID == ""
}
