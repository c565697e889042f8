package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - exact roots
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for polynomial headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for intervals.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleExact for roots found exactly.
	StyleExact = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// =============================================================================
// Reports
// =============================================================================

// printReport prints the heading, one line per interval and a stats line.
func printReport(w io.Writer, r *report) {
	title := StyleTitle.Render(r.poly)
	if r.name != "" {
		title = StyleTitle.Render(r.name) + " " + StyleDim.Render(r.poly)
	}
	fmt.Fprintln(w, title)

	if len(r.intervals) == 0 {
		printWarning(w, "no real roots in range")
	}

	for _, iv := range r.intervals {
		if iv.exact {
			fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleExact.Render(iv.text)+" "+StyleDim.Render("exact"))
			continue
		}

		fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(iv.text))
	}

	printStats(w, r)
}

// printStats prints worklist statistics on a single line.
func printStats(w io.Writer, r *report) {
	if r.stats == nil {
		return
	}

	s := r.stats
	parts := []string{
		fmt.Sprintf("%d operations", s.Operations),
		fmt.Sprintf("%d splits", s.Splits),
	}

	if s.Shifts > 0 {
		parts = append(parts, fmt.Sprintf("%d shifts", s.Shifts))
	}

	if s.Rescales > 0 {
		parts = append(parts, fmt.Sprintf("%d rescales", s.Rescales))
	}

	parts = append(parts, fmt.Sprintf("depth %d", s.MaxDepth))

	fmt.Fprintln(w, "  "+styleIconInfo.Render(iconInfo)+" "+StyleDim.Render(strings.Join(parts, " · ")))
}
