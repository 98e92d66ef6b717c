// main is the entry point for the scout CLI.
package main

import (
	"os"

	"github.com/axees/scout/cmd"
	"github.com/axees/scout/internal/catalog"
	"github.com/axees/scout/internal/contract"
)

func main() {
	err := cmd.Execute()

	// Close before exiting so os.Exit does not skip the cleanup.
	catalog.CloseCatalog()

	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
