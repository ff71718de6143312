// ABOUTME: Cobra command for interactive daterange configuration.
// ABOUTME: Launches a bubbletea TUI wizard to choose shortcuts and the date layout.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/config"
	"github.com/harper/daterange/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure range shortcuts and date format",
	Long:  "Interactive wizard to configure the four predefined ranges and the display date layout.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := tui.NewSetupModel(cfg.PredefinedRanges, cfg.DateFormat)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup canceled.")
		return nil
	}

	ranges, dateFormat := final.Result()
	cfg.PredefinedRanges = ranges
	cfg.DateFormat = dateFormat

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Config saved to %s\n", config.GetConfigPath())
	return nil
}
