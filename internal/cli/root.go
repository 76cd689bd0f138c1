// Package cli wires the stresscheck command tree: an interactive
// questionnaire session and a batch scorer over CSV files.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lockhart9/stresscheck/internal/config"
)

type rootOptions struct {
	configPath string
	lang       string
	noColor    bool

	cfg *config.Config
}

// NewRootCommand builds the stresscheck root command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "stresscheck",
		Short: "Score the 57-item Brief Job Stress Questionnaire",
		Long: "stresscheck administers and scores the 57-item Brief Job Stress\n" +
			"Questionnaire (職業性ストレス簡易調査票) following the MHLW stress-check\n" +
			"program manual: sum-up and conversion-table scoring with the official\n" +
			"high-stress selection criteria.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if opts.lang != "" {
				cfg.Locale = opts.lang
			}
			if opts.noColor {
				cfg.NoColor = true
			}
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stresscheck/config.yaml)")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "UI language: ja or en")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newBulkCmd(opts))
	return root
}

func validMethod(method string) error {
	switch method {
	case "sumup", "conversion", "both":
		return nil
	}
	return fmt.Errorf("invalid method %q: want sumup, conversion or both", method)
}
