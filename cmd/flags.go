package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/praxis-cli/praxis/internal/config"
)

// OutputFlags provides consistent output flag definitions across commands.
type OutputFlags struct {
	Format  string
	Verbose bool
}

// AddOutputFlags adds the shared output flags to a command.
func AddOutputFlags(cmd *cobra.Command) *OutputFlags {
	flags := &OutputFlags{}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format (table|json|yaml)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Include each unit's captured output")

	return flags
}

// Resolve fills unset flags from configuration values.
func (f *OutputFlags) Resolve(cfg *config.Config, flagSet *pflag.FlagSet) {
	if !flagSet.Changed("format") && f.Format == "" {
		f.Format = cfg.Output.Format
	}
	if !flagSet.Changed("verbose") {
		f.Verbose = f.Verbose || cfg.Output.Verbose
	}
}

// Validate checks the flag values, suggesting a close match for typos.
func (f *OutputFlags) Validate() error {
	return ValidateFormatWithSuggestion(f.Format, config.SupportedFormats)
}

// ValidateFormatWithSuggestion rejects unsupported formats and, when the
// given value is a prefix or near-miss of a supported one, names it.
func ValidateFormatWithSuggestion(format string, supported []string) error {
	if format == "" {
		return nil
	}

	lower := strings.ToLower(format)
	for _, s := range supported {
		if lower == s {
			return nil
		}
	}

	if suggestion := closestFormat(lower, supported); suggestion != "" {
		return fmt.Errorf("unsupported format %q (did you mean %q?)", format, suggestion)
	}

	return fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(supported, ", "))
}

// closestFormat finds a supported format sharing a prefix with the input.
func closestFormat(format string, supported []string) string {
	for _, s := range supported {
		if strings.HasPrefix(s, format) || strings.HasPrefix(format, s) {
			return s
		}
	}
	return ""
}
