// ABOUTME: Preset command for daterange CLI
// ABOUTME: Lists the configured shortcuts or applies one by index or raw offset

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/picker"
	"github.com/harper/daterange/internal/report"
)

var (
	presetOffset   int
	presetToday    string
	presetJSON     bool
	presetMarkdown bool
)

var presetCmd = &cobra.Command{
	Use:   "preset [index]",
	Short: "List or apply predefined ranges",
	Long: `Without arguments, list the four configured shortcuts and the dates
they select today. With an index (1-4), apply that shortcut. With
--offset, apply an arbitrary day offset relative to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := outputModeFromFlags(presetJSON, presetMarkdown)
		if err != nil {
			return err
		}
		now, err := clockFor(presetToday)
		if err != nil {
			return err
		}
		opts := pickerOptions()
		opts.Now = now

		out := cmd.OutOrStdout()
		if len(args) == 0 && !cmd.Flags().Changed("offset") {
			return listPresets(out, opts, mode == modeJSON)
		}

		offset := presetOffset
		if len(args) == 1 {
			offset, err = presetByIndex(opts.PredefinedRanges, args[0])
			if err != nil {
				return err
			}
		}

		res, err := applyPreset(opts, offset)
		if err != nil {
			return err
		}
		return writeResult(out, res, opts.Layout, mode)
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.Flags().IntVar(&presetOffset, "offset", 0, "day offset relative to today (e.g. -7 or 30)")
	presetCmd.Flags().StringVar(&presetToday, "today", "", "reference day instead of the current date (today, yesterday, tomorrow, week, month, or YYYY-MM-DD)")
	presetCmd.Flags().BoolVar(&presetJSON, "json", false, "print as JSON")
	presetCmd.Flags().BoolVar(&presetMarkdown, "markdown", false, "print a rendered markdown summary")
}

func presetByIndex(ranges []int, arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 || idx > len(ranges) {
		return 0, fmt.Errorf("invalid preset index %q (expected 1-%d)", arg, len(ranges))
	}
	return ranges[idx-1], nil
}

type presetListing struct {
	Index  int    `json:"index"`
	Offset int    `json:"offset"`
	Label  string `json:"label"`
	Start  string `json:"start"`
	End    string `json:"end"`

	start, end dateutil.Date
}

func listPresets(w io.Writer, opts picker.Options, asJSON bool) error {
	p, err := picker.New(opts)
	if err != nil {
		return err
	}

	today := p.Today()
	listings := make([]presetListing, 0, 4)
	for i, preset := range p.Presets() {
		start, end := picker.PresetRange(today, preset.Offset)
		listings = append(listings, presetListing{
			Index:  i + 1,
			Offset: preset.Offset,
			Label:  preset.Label,
			Start:  start.String(),
			End:    end.String(),
			start:  start,
			end:    end,
		})
	}

	if asJSON {
		return writeJSON(w, listings)
	}

	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	for _, l := range listings {
		fmt.Fprintf(w, "%s  %s %s - %s\n", faint(strconv.Itoa(l.Index)), bold(fmt.Sprintf("%-14s", l.Label)), l.start.Format(p.Layout()), l.end.Format(p.Layout()))
	}
	return nil
}

// applyPreset runs a shortcut through a picker and returns what the host
// callback received.
func applyPreset(opts picker.Options, offset int) (report.Result, error) {
	var res report.Result
	opts.OnSelect = func(rng [2]dateutil.Date, weekends []dateutil.Date) {
		res = report.New(rng, weekends)
	}

	p, err := picker.New(opts)
	if err != nil {
		return report.Result{}, err
	}
	p.ApplyPreset(offset)
	return res, nil
}
