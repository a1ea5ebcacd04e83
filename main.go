package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"magicchat/config"
	"magicchat/provider"
	"magicchat/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), fmt.Sprintf(format, args...))
	os.Exit(1)
}

// showStartupError renders err in the standalone error modal and exits.
func showStartupError(title string, err error) {
	p := tea.NewProgram(
		ui.NewErrorModal(title, err.Error()),
		tea.WithAltScreen(),
	)

	if _, runErr := p.Run(); runErr != nil {
		fail("%v (while showing: %v)", runErr, err)
	}
	os.Exit(1)
}

func main() {
	// Check for TTY
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fail("magicchat requires an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		showStartupError("Configuration Error", err)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())

	if valid, warning := cfg.Keybindings.Validate(); !valid {
		showStartupError("Keybindings Error", fmt.Errorf("%s", warning))
	} else if warning != "" && config.DebugLog != nil {
		config.DebugLog.Warn(warning)
	}

	exchanger, err := provider.InitializeProvider(cfg)
	if err != nil {
		showStartupError("Endpoint Error", err)
	}

	p := tea.NewProgram(
		ui.NewAppView(cfg, exchanger, Version, License),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fail("Error running magicchat: %v", err)
	}
}
