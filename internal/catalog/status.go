package catalog

import (
	"fmt"

	"github.com/axees/scout/schema"
)

// PrintCatalogStatus prints catalog status information.
func PrintCatalogStatus(status schema.CatalogStatus) {
	fmt.Printf("Catalog Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Creators: %d\n", status.TotalCreators)
	if status.TotalCreators > 0 {
		fmt.Printf("Last Import: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Import: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}
