package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/muratoffalex/inferhub/internal/app/di"
	"github.com/muratoffalex/inferhub/internal/model"
)

// NewConsoleCommand creates the console command: the original drop-down
// flow (modality → model → input → result) as a readline loop.
func NewConsoleCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive modality/model/input loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := globalOpts.container()
			if err != nil {
				return err
			}
			return runConsole(cmd, c)
		},
	}
}

func runConsole(cmd *cobra.Command, c *di.Container) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	choices := make([]string, 0, len(model.Modalities))
	for _, m := range model.Modalities {
		choices = append(choices, m.String())
	}

	for {
		fmt.Println(c.Localizer.Localize("console_pick_modality", map[string]any{
			"Choices": strings.Join(choices, "/"),
		}))
		line, err := rl.Readline()
		if err != nil || strings.TrimSpace(line) == "" {
			break
		}
		modality, perr := model.ParseModality(strings.ToLower(strings.TrimSpace(line)))
		if perr != nil {
			fmt.Println(perr)
			continue
		}

		names := c.Manager.ListModels(modality)
		fmt.Println(c.Localizer.Localize("console_pick_model", nil))
		for i, name := range names {
			fmt.Printf("  %d) %s\n", i+1, name)
		}
		line, err = rl.Readline()
		if err != nil {
			break
		}
		name := pickName(names, strings.TrimSpace(line))

		if serr := c.Manager.Select(modality, name); serr != nil {
			if errors.Is(serr, model.ErrUnknownModel) {
				fmt.Println(c.Renderer.UnknownModel(modality, name))
				continue
			}
			return serr
		}

		input, ierr := promptInput(rl, c, modality)
		if ierr != nil {
			if errors.Is(ierr, io.EOF) {
				break
			}
			fmt.Println(ierr)
			continue
		}

		result, rerr := c.Manager.Run(cmd.Context(), input)
		if rerr != nil {
			fmt.Println(c.Renderer.Error(rerr))
			continue
		}
		fmt.Println(c.Renderer.Result(result))
	}

	fmt.Println(c.Localizer.Localize("console_goodbye", nil))
	return nil
}

// pickName accepts either a 1-based index into the listing or a literal
// model name.
func pickName(names []string, line string) string {
	if idx, err := strconv.Atoi(line); err == nil && idx >= 1 && idx <= len(names) {
		return names[idx-1]
	}
	return line
}

func promptInput(rl *readline.Instance, c *di.Container, modality model.Modality) (model.Input, error) {
	if modality == model.ModalityText {
		fmt.Println(c.Localizer.Localize("console_enter_text", nil))
		line, err := rl.Readline()
		if err != nil {
			return nil, io.EOF
		}
		return model.TextInput(line), nil
	}

	fmt.Println(c.Localizer.Localize("console_enter_file", nil))
	line, err := rl.Readline()
	if err != nil {
		return nil, io.EOF
	}
	path := strings.TrimSpace(line)
	if modality == model.ModalityAudio {
		return model.AudioInput{Path: path}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return model.ImageInput{Data: data}, nil
}
