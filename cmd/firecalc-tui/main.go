package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firecalc/firecalc/internal/config"
	"github.com/firecalc/firecalc/internal/tui"
)

func main() {
	// Saved parameters live in the home directory unless overridden.
	storePath := config.DefaultStorePath()
	if len(os.Args) > 1 {
		storePath = os.Args[1]
	}

	model := tui.NewModel(config.NewFileParamStore(storePath))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
