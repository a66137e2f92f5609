package console

import (
	"fmt"
	"io"
	"strings"

	"simconsole/internal/activity"
	"simconsole/internal/orchestrator"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// Print renders a headless run: the result dialog followed by the log, oldest first.
func Print(w io.Writer, result orchestrator.Result, entries []activity.Entry) {
	PrintResult(w, result)
	PrintLog(w, entries)
}

// PrintResult renders the result dialog as a compact block.
func PrintResult(w io.Writer, r orchestrator.Result) {
	color := colorRed
	if r.Success {
		color = colorGreen
	}

	fmt.Fprintf(w, "%s■ %s%s\n", color, r.Title, colorReset)
	for _, line := range strings.Split(r.Message, "\n") {
		fmt.Fprintf(w, "  %s\n", strings.TrimSpace(line))
	}
	if r.Payload != "" {
		fmt.Fprintf(w, "%s─ Response%s\n", colorCyan, colorReset)
		for _, line := range strings.Split(r.Payload, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

// PrintLog writes entries in the order they happened. entries is newest first.
func PrintLog(w io.Writer, entries []activity.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "%s─ Activity%s\n", colorCyan, colorReset)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(w, "  [%s] %s%s%s\n", e.Stamp(), colorFor(e.Category), e.Text, colorReset)
	}
}

func colorFor(c activity.Category) string {
	switch c {
	case activity.CategorySuccess:
		return colorGreen
	case activity.CategoryError:
		return colorRed
	case activity.CategorySystem:
		return colorYellow
	default:
		return colorBlue
	}
}
