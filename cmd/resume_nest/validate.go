package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-nest/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate resume data JSON files against the resume schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		err := schemas.ValidateResumeFile(path)
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", path)
			continue
		}

		failed++
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s\n%s", path, ve.Error())
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s: %v\n", path, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
