package extractcmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/sce-tools/cardex/internal/cards"
)

func printNoSource() {
	color.Yellow("Source url not found")
	fmt.Println("The save's script does not configure SOURCE_REPO, so there is no content repository to extract from.")
}

// printDiscovery reports the discovery totals and the distinct hierarchy
// paths, which double as the values usable with --filters.
func printDiscovery(all, selected []cards.Card, filters []string) {
	fmt.Printf("%s %d\n", color.CyanString("Cards:"), len(all))
	if len(filters) > 0 {
		fmt.Printf("%s %d\n", color.CyanString("Filtered cards:"), len(selected))
	}

	fmt.Println(color.CyanString("Paths:"))
	for _, path := range distinctPaths(all) {
		fmt.Printf("  - %s\n", path)
	}
}

func distinctPaths(all []cards.Card) []string {
	seen := make(map[string]bool)
	paths := make([]string, 0)
	for _, card := range all {
		path := card.PathString()
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}
