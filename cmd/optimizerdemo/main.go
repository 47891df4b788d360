// Command optimizerdemo is a thin interactive shell over the
// optimizer and executor: it seeds the demo catalog, lets the user
// pick from a fixed list of hand-built queries, and shows the winning
// plan next to the full candidate report the optimizer considered.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"queryopt/pkg/logging"
)

func main() {
	logging.InitDefault()
	defer logging.Close()

	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "optimizerdemo: %v\n", err)
		os.Exit(1)
	}
}
