package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/muratoffalex/inferhub/internal/model"
)

type ModelsOptions struct {
	*GlobalOptions

	Modality string
	Verbose  bool
}

// NewModelsCommand creates the models command, which prints the catalog
// the drop-downs are populated from.
func NewModelsCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &ModelsOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List catalogued models per modality",
		Long: `List the models available for selection, grouped by input modality.

With --verbose each entry is enriched with public hub metadata (pipeline
tag, downloads, likes). The catalog itself is fixed at startup; the hub
lookup is informational only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Modality, "modality", "m", "", "only list models for one modality (text, image, audio)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "include hub metadata and descriptions")

	return cmd
}

func runModels(cmd *cobra.Command, opts *ModelsOptions) error {
	c, err := opts.container()
	if err != nil {
		return err
	}

	modalities := model.Modalities
	if opts.Modality != "" {
		m, err := model.ParseModality(opts.Modality)
		if err != nil {
			return err
		}
		modalities = []model.Modality{m}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODALITY\tNAME\tMODEL\tTASK")
	for _, m := range modalities {
		for _, d := range c.Registry.Descriptors(m) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Modality, d.Name, d.ModelID, d.Task)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !opts.Verbose {
		return nil
	}

	for _, m := range modalities {
		for _, d := range c.Registry.Descriptors(m) {
			fmt.Printf("\n%s\n  %s\n", d.Name, d.Description)
			card, err := c.Hub.ModelCard(cmd.Context(), d.ModelID)
			if err != nil {
				c.Logger.WithError(err).WithField("model", d.ModelID).Warn("Hub lookup failed")
				continue
			}
			fmt.Printf("  hub: %s | downloads: %d | likes: %d\n", card.PipelineTag, card.Downloads, card.Likes)
		}
	}
	return nil
}
