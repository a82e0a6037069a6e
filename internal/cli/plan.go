package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	reportio "github.com/matzehuels/shiftreport/pkg/io"
	"github.com/matzehuels/shiftreport/pkg/pipeline"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/sink"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	style         string
	computeFooter bool
	json          bool
}

// planCommand creates the plan command, which prints section geometry
// without drawing anything.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Print the layout plan of a report model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", "", "TOML file overriding the default style")
	cmd.Flags().BoolVar(&opts.computeFooter, "compute-footer", false, "include computed average/min/max rows")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the plan as JSON")

	return cmd
}

func runPlan(w io.Writer, input string, opts planOpts) error {
	m, err := reportio.ImportFile(input)
	if err != nil {
		return err
	}
	style, err := loadStyle(opts.style)
	if err != nil {
		return err
	}
	plan, err := pipeline.Plan(m, pipeline.Options{Style: &style, ComputeFooter: opts.computeFooter})
	if err != nil {
		return err
	}

	if opts.json {
		data, err := sink.RenderJSON(plan, sink.WithJSONTitle(m.Title), sink.WithJSONStyle(opts.style))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Println(StyleTitle.Render(m.Title))
	printKeyValue("size", fmt.Sprintf("%.0f x %.0f", plan.Width, plan.Height))
	for _, s := range plan.Sections {
		printKeyValue(string(s.Kind), fmt.Sprintf("top %.0f  height %.0f", s.Top, s.Height))
	}
	if plan.Grid != nil {
		printDetail("grid: %d columns, %d categories, %d footer rows",
			len(plan.Grid.Columns)-1, len(plan.Grid.Categories), plan.Grid.FooterRows)
	} else {
		printWarning("No parameters: the hourly grid is omitted")
	}
	for _, k := range []layout.Kind{layout.KindOperators, layout.KindSilo, layout.KindDowntime} {
		if _, ok := plan.Section(k); !ok {
			printDetail("%s: empty, not drawn", k)
		}
	}
	return nil
}
