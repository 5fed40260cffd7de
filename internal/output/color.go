package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme provides color functions for different output elements
type ColorScheme struct {
	// ClusterName colors cluster names
	ClusterName func(format string, a ...interface{}) string

	// Success colors confirmation messages
	Success func(format string, a ...interface{}) string

	// Error colors error messages
	Error func(format string, a ...interface{}) string

	// Warning colors warning messages
	Warning func(format string, a ...interface{}) string

	// Header colors table headers
	Header func(format string, a ...interface{}) string

	// Disabled indicates if colors are disabled
	Disabled bool
}

// NewColorScheme creates a new color scheme
// Colors are automatically disabled for non-TTY outputs or when noColor is true
func NewColorScheme(w io.Writer, noColor bool) *ColorScheme {
	useColor := !noColor && isTTY(w)

	if !useColor {
		plain := color.New()
		plain.DisableColor()
		return &ColorScheme{
			ClusterName: plain.Sprintf,
			Success:     plain.Sprintf,
			Error:       plain.Sprintf,
			Warning:     plain.Sprintf,
			Header:      plain.Sprintf,
			Disabled:    true,
		}
	}

	return &ColorScheme{
		ClusterName: enabled(color.FgCyan, color.Bold).Sprintf,
		Success:     enabled(color.FgGreen).Sprintf,
		Error:       enabled(color.FgRed, color.Bold).Sprintf,
		Warning:     enabled(color.FgYellow).Sprintf,
		Header:      enabled(color.FgWhite, color.Bold).Sprintf,
		Disabled:    false,
	}
}

// enabled forces color on; the TTY check has already been made for w
func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// isTTY checks if the writer is a TTY
func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// StatusColor returns an appropriate color function based on error status
func (cs *ColorScheme) StatusColor(hasError bool) func(format string, a ...interface{}) string {
	if hasError {
		return cs.Error
	}
	return cs.Success
}
