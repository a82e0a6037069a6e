package cli

import (
	"github.com/spf13/cobra"

	reportio "github.com/matzehuels/shiftreport/pkg/io"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// sampleCommand creates the sample command, which writes a demo model.
func (c *CLI) sampleCommand() *cobra.Command {
	var output string
	var yaml bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample report model",
		Long: `Write a fully populated demo report model to start from.

Without --output the model is printed to stdout as JSON (or YAML with --yaml).
With --output the format follows the file extension (.json, .yaml, .yml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := report.Sample()
			if output == "" {
				if yaml {
					return reportio.WriteYAML(m, cmd.OutOrStdout())
				}
				return reportio.WriteJSON(m, cmd.OutOrStdout())
			}
			if err := reportio.ExportFile(m, output); err != nil {
				return err
			}
			printSuccess("Wrote sample report")
			printFile(output)
			printNextStep("Render it", "shiftreport render "+output+" -f png,pdf")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json, .yaml, .yml)")
	cmd.Flags().BoolVar(&yaml, "yaml", false, "print YAML instead of JSON to stdout")

	return cmd
}
