package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stuartshay/swagger-enrich/internal/swagger"
)

// CheckConfig captures the options for the check command.
type CheckConfig struct {
	File    string
	Verbose bool
}

var checkRunner = runCheck

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the swagger document parses and validates as Swagger 2.0",
		Long: "Verify that the document parses as Swagger 2.0 and survives conversion " +
			"to OpenAPI v3 with validation enabled.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			cfg := &CheckConfig{File: strings.TrimSpace(file), Verbose: verbose}
			if cfg.File == "" {
				cfg.File = defaultSwaggerFile
			}
			return checkRunner(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("file", defaultSwaggerFile, "Path to the swagger JSON document")

	return cmd
}

func runCheck(ctx context.Context, cfg *CheckConfig) error {
	raw, err := os.ReadFile(cfg.File)
	if err != nil {
		return fmt.Errorf("check: read %s: %w", cfg.File, err)
	}

	report, err := swagger.Verify(ctx, raw, cfg.File)
	if err != nil {
		// Map structured document errors into friendly messages.
		var de *swagger.DocError
		if errors.As(err, &de) {
			msg := fmt.Sprintf("check: %s", de.Message)
			if de.Location != "" {
				msg = fmt.Sprintf("%s\nLocation: %s", msg, de.Location)
			}
			return newUsageError(msg)
		}
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: Swagger %s, %d definitions, %d paths\n",
		cfg.File, report.Version, report.Definitions, report.Paths)
	if cfg.Verbose && report.Title != "" {
		fmt.Fprintf(os.Stdout, "Title: %s\n", report.Title)
	}
	return nil
}
