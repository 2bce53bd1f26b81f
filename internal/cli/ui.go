package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for terminal output.
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#22c55e", Dark: "#4ade80"}
	colorError   = lipgloss.AdaptiveColor{Light: "#ef4444", Dark: "#f87171"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#f59e0b", Dark: "#fbbf24"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
)

// Styles for terminal output.
var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleIconError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorInfo)

	styleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// Icons used in output.
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconDetail  = "›"
	iconFile    = "→"
)

// printSuccess prints a success message with a checkmark.
func printSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", styleIconSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

// printError prints an error message to stderr.
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleIconError.Render(iconError), fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	fmt.Printf("%s %s\n", styleIconWarning.Render(iconWarning), fmt.Sprintf(format, args...))
}

// printInfo prints an informational message.
func printInfo(format string, args ...any) {
	fmt.Printf("%s %s\n", styleIconInfo.Render(iconDetail), fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary detail line.
func printDetail(format string, args ...any) {
	fmt.Printf("  %s\n", StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file path result line.
func printFile(path string) {
	fmt.Printf("%s %s\n", StyleDim.Render(iconFile), styleBold.Render(path))
}

// printKeyValue prints an aligned key/value pair.
func printKeyValue(key, value string) {
	fmt.Printf("  %s %s\n", StyleDim.Render(key+":"), value)
}
