package cmd

import (
	"fmt"

	"histwrap/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default shell").
				Description("Which history file to analyze when --shell is omitted.").
				Options(huh.NewOptions("bash", "zsh", "fish")...).
				Value(&cfg.General.DefaultShell),

			huh.NewSelect[int]().
				Title("Top commands shown").
				Options(
					huh.NewOption("5", 5),
					huh.NewOption("10", 10),
					huh.NewOption("20", 20),
				).
				Value(&cfg.General.TopCommands),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions("flexoki-dark", "catppuccin-mocha")...).
				Value(&cfg.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `histwrap setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
