// Package app assembles the inferhub CLI: list catalogued models, run a
// single inference, or walk the modality → model → input flow in an
// interactive console.
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muratoffalex/inferhub/internal/app/di"
	"github.com/muratoffalex/inferhub/internal/config"
)

// GlobalOptions holds flags shared across commands.
type GlobalOptions struct {
	ConfigPath string
}

// container builds the application graph once flags are parsed.
func (o *GlobalOptions) container() (*di.Container, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	return di.NewContainer(cfg)
}

func NewInferhubCommand(version, buildTime string) *cobra.Command {
	globalOpts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   "inferhub",
		Short: "Run pretrained text, image and audio models from the terminal",
		Long: `inferhub dispatches raw input to pretrained models by modality.

Pick a modality (text, image, audio), pick one of the catalogued models
for it, submit input and read the normalized result. The heavy lifting
happens on a hosted inference endpoint; selection and dispatch happen
here.`,
		SilenceUsage: true,
	}

	if version != "" {
		cmd.Version = fmt.Sprintf("%s (built at %s)", version, buildTime)
	}

	cmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "path to a toml config file")

	cmd.AddCommand(NewModelsCommand(globalOpts))
	cmd.AddCommand(NewRunCommand(globalOpts))
	cmd.AddCommand(NewConsoleCommand(globalOpts))

	return cmd
}
