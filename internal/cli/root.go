package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the swagger-enrich CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
// Running the bare command performs the enrich pass against the default
// document, which keeps the zero-argument invocation used by doc builds.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swagger-enrich",
		Short: "Inject curated request examples into a Swagger 2.0 document",
		Long: "swagger-enrich patches a Swagger/OpenAPI 2.0 JSON document in place, " +
			"attaching Basic and Advanced x-examples payloads to known model definitions.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveEnrichConfig(cmd)
			if err != nil {
				return err
			}
			return enrichRunner(cmd.Context(), cfg)
		},
	}

	// Convert Cobra flag errors (like unknown flags) into friendly usage errors
	// that also show the command's help text.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})

	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (YAML or JSON)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging output")

	flags := cmd.Flags()
	flags.String("file", "", "Path to the swagger JSON document (defaults to docs/swagger.json)")
	flags.Bool("dry-run", false, "Report what would be patched without writing the file")
	flags.Bool("fill-missing", false, "Synthesize Basic examples for uncurated object definitions")

	k := newCheckCmd()
	k.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})
	cmd.AddCommand(k)

	i := newInitCmd()
	i.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})
	cmd.AddCommand(i)

	return cmd
}
