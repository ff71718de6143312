// ABOUTME: Shared output helpers for range results
// ABOUTME: Prints colored text, indented JSON, or glamour-rendered markdown

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/harper/daterange/internal/report"
)

type outputMode int

const (
	modeText outputMode = iota
	modeJSON
	modeMarkdown
)

var errConflictingOutput = errors.New("--json and --markdown cannot be combined")

func outputModeFromFlags(asJSON, asMarkdown bool) (outputMode, error) {
	switch {
	case asJSON && asMarkdown:
		return modeText, errConflictingOutput
	case asJSON:
		return modeJSON, nil
	case asMarkdown:
		return modeMarkdown, nil
	}
	return modeText, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// writeMarkdown renders md for the terminal, falling back to the plain text.
func writeMarkdown(w io.Writer, md string) error {
	rendered, err := glamour.Render(md, "dark")
	if err != nil {
		_, err = fmt.Fprintf(w, "%s\n", md)
		return err
	}
	_, err = fmt.Fprint(w, rendered)
	return err
}

func writeResult(w io.Writer, res report.Result, layout string, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, res)
	case modeMarkdown:
		return writeMarkdown(w, res.Markdown(layout))
	}

	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	start, end := res.Range()
	fmt.Fprintf(w, "%s %s - %s\n", faint("Range:"), bold(start.Format(layout)), bold(end.Format(layout)))
	fmt.Fprintf(w, "%s %d (%d weekdays)\n", faint("Days:"), res.Days, res.Weekdays)

	weekends := res.WeekendDates()
	if len(weekends) == 0 {
		fmt.Fprintf(w, "%s none\n", faint("Weekends:"))
		return nil
	}
	names := make([]string, 0, len(weekends))
	for _, d := range weekends {
		names = append(names, cyan(d.Format(layout)))
	}
	fmt.Fprintf(w, "%s %s\n", faint("Weekends:"), strings.Join(names, ", "))
	return nil
}
