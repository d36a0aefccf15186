package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muratoffalex/inferhub/internal/config"
	"github.com/muratoffalex/inferhub/internal/model"
)

type RunOptions struct {
	*GlobalOptions

	Modality string
	Model    string
	Text     string
	File     string
}

// NewRunCommand creates the run command: one selection, one input, one
// normalized result on stdout.
func NewRunCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &RunOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one model on one input",
		Long: `Run a single inference.

Examples:
  # Sentiment on a sentence with the default text model
  inferhub run -m text --text "I love this"

  # Classify an image with an explicit model
  inferhub run -m image --model "ViT Base Image Classifier" --file cat.jpg

  # Transcribe a clip
  inferhub run -m audio --file meeting.wav`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Modality, "modality", "m", "", "input modality: text, image or audio (required)")
	cmd.Flags().StringVar(&opts.Model, "model", "", "model display name (defaults to the configured one per modality)")
	cmd.Flags().StringVar(&opts.Text, "text", "", "text input, for the text modality")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "input file path, for image and audio modalities")
	_ = cmd.MarkFlagRequired("modality")

	return cmd
}

func runOnce(cmd *cobra.Command, opts *RunOptions) error {
	c, err := opts.container()
	if err != nil {
		return err
	}

	modality, err := model.ParseModality(opts.Modality)
	if err != nil {
		return err
	}

	name := opts.Model
	if name == "" {
		name = defaultModelName(c.Cfg.Defaults(), modality)
	}

	if err := c.Manager.Select(modality, name); err != nil {
		return fmt.Errorf("%s", c.Renderer.UnknownModel(modality, name))
	}

	input, err := buildInput(modality, opts.Text, opts.File)
	if err != nil {
		return err
	}

	result, err := c.Manager.Run(cmd.Context(), input)
	if err != nil {
		// failures arrive as data; render them instead of crashing
		return fmt.Errorf("%s", c.Renderer.Error(err))
	}
	fmt.Println(c.Renderer.Result(result))
	return nil
}

func defaultModelName(defaults config.DefaultsConfig, modality model.Modality) string {
	switch modality {
	case model.ModalityText:
		return defaults.Text
	case model.ModalityImage:
		return defaults.Image
	case model.ModalityAudio:
		return defaults.Audio
	}
	return ""
}

func buildInput(modality model.Modality, text, file string) (model.Input, error) {
	switch modality {
	case model.ModalityText:
		if text == "" {
			return nil, fmt.Errorf("--text is required for the text modality")
		}
		return model.TextInput(text), nil
	case model.ModalityImage:
		if file == "" {
			return nil, fmt.Errorf("--file is required for the image modality")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
		return model.ImageInput{Data: data}, nil
	case model.ModalityAudio:
		if file == "" {
			return nil, fmt.Errorf("--file is required for the audio modality")
		}
		return model.AudioInput{Path: file}, nil
	}
	return nil, fmt.Errorf("unknown modality: %s", modality)
}
