package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/pipeline"
	"github.com/jgreyling/polsched/internal/validate"
	"github.com/spf13/cobra"
)

var (
	schemaPath      string
	validateSummary bool
	validateQuiet   bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <json-file>",
	Short: "Validate an extracted record JSON",
	Long: `Validate checks a previously extracted record:
- JSON schema validation (built-in schema, or --schema for a custom one)
- Structural checks: required identifiers, section completeness, VIN shape

Errors fail validation and set a non-zero exit code; warnings are
advisory and printed to stderr.

Example:
  polsched validate record.json
  polsched validate record.json --schema custom-schema.json --summary`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&schemaPath, "schema", "", "JSON schema file (default: built-in schema)")
	validateCmd.Flags().BoolVar(&validateSummary, "summary", false, "print an extraction summary")
	validateCmd.Flags().BoolVar(&validateQuiet, "quiet", false, "suppress output except errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read record: %w", err)
	}

	var schemaJSON []byte
	if schemaPath != "" {
		schemaJSON, err = os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
	}

	if err := validate.ValidateAgainstSchema(schemaJSON, data); err != nil {
		if !validateQuiet {
			fmt.Println("✗ Validation failed")
		}
		return err
	}

	var record model.PolicyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	result := validate.NewValidator().Validate(&record)

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	if !validateQuiet {
		if result.Valid {
			fmt.Println("✓ Validation passed")
		} else {
			fmt.Println("✗ Validation failed")
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
	}

	if validateSummary {
		renderer := pipeline.NewRenderer(false)
		renderer.WriteSummary(os.Stdout, &pipeline.Result{
			Record:     &record,
			SourcePath: args[0],
			Validation: result,
		})
	}

	if !result.Valid {
		return fmt.Errorf("record is invalid (%d errors)", len(result.Errors))
	}
	return nil
}
