package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/taskr/internal/core"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage taskr configuration",
	Long: `Commands for managing the taskr configuration file.

Available Commands:
  show      Show the effective configuration
  reset     Reset the configuration file to defaults
  set       Set one configuration key`,
	Annotations: map[string]string{skipStoreAnnotation: ""},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show the effective configuration",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStoreAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		return core.ShowConfig(cmd.OutOrStdout(), current.configPath, current.cfg)
	},
}

var configResetCmd = &cobra.Command{
	Use:         "reset",
	Short:       "Reset the configuration file to defaults",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStoreAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := core.ResetConfig(current.configPath)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")

		return core.ShowConfig(cmd.OutOrStdout(), current.configPath, cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration key",
	Long: fmt.Sprintf(`Set one key in the configuration file.

Keys: %s`, strings.Join(core.ConfigKeys, ", ")),
	Example:     `  taskr config set store.backend sqlite`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{skipStoreAnnotation: ""},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return core.ConfigKeys, cobra.ShellCompDirectiveNoFileComp
		}

		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Start from the file, not the flag-adjusted config, so that flags
		// given on this invocation are not written back.
		cfg, err := core.LoadConfig(current.configPath)
		if err != nil {
			return err
		}

		if err := core.SetConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := core.SaveConfig(current.configPath, cfg); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configSetCmd)
}
