package cmd

import (
	"fmt"

	"histwrap/internal/config"
	"histwrap/internal/shell"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default shell: %s\n", cfg.General.DefaultShell)
	fmt.Printf("    Top commands:  %d\n", cfg.General.TopCommands)
	fmt.Println()

	fmt.Println("  [Paths]")
	for _, k := range []shell.Kind{shell.Bash, shell.Zsh, shell.Fish} {
		path := cfg.HistoryOverride(k.String())
		if path == "" {
			path = shell.DefaultPath(k)
		}
		fmt.Printf("    %-5s %s\n", k.String()+":", path)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `histwrap setup` to reconfigure.")
	return nil
}
