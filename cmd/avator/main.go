// Command avator is the interactive front end: a terminal form for
// converting an image to ASCII art with live parameter adjustment and
// a text preview.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CMouse123456/DigitalAvator/ui"
)

func main() {
	p := tea.NewProgram(ui.New(ui.DefaultStyles()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}
