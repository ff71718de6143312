// ABOUTME: Interactive pick command for daterange CLI
// ABOUTME: Runs the bubbletea picker with mouse support and prints the confirmed range

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/logging"
	"github.com/harper/daterange/internal/tui"
)

var (
	pickJSON     bool
	pickMarkdown bool
	pickKeepOpen bool
	pickLogFile  string
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a range interactively",
	Long: `Open the two-month picker in the terminal.

Click or use the arrow keys to choose a start and end day, then press OK.
Weekend days cannot be picked by hand but shortcuts may include them.
The confirmed range is printed when the picker exits.`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolVar(&pickJSON, "json", false, "print the range as JSON")
	pickCmd.Flags().BoolVar(&pickMarkdown, "markdown", false, "print a rendered markdown summary")
	pickCmd.Flags().BoolVar(&pickKeepOpen, "keep-open", false, "keep running after a range is confirmed (quit with q)")
	pickCmd.Flags().StringVar(&pickLogFile, "log-file", "", "write logs to this file (the screen is in use)")
}

func runPick(cmd *cobra.Command, args []string) error {
	mode, err := outputModeFromFlags(pickJSON, pickMarkdown)
	if err != nil {
		return err
	}

	fileLogger, closer, err := logging.NewFile(pickLogFile, resolvedLogLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := pickerOptions()
	opts.Logger = fileLogger

	model, err := tui.NewPickerModel(tui.PickerOptions{
		Picker:       opts,
		QuitOnSelect: !pickKeepOpen,
		StartOpen:    true,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	res, ok := final.(tui.PickerModel).Result()
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "No range selected.")
		return nil
	}
	return writeResult(cmd.OutOrStdout(), res, opts.Layout, mode)
}
