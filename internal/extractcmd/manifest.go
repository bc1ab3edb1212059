package extractcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sce-tools/cardex/internal/cards"
)

// ManifestName is the manifest file written next to the extracted images.
const ManifestName = "cards.json"

type manifestEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// writeManifest saves the selected cards as a pretty-printed JSON array of
// {id, name} records.
func writeManifest(outputDir string, selected []cards.Card) error {
	entries := make([]manifestEntry, 0, len(selected))
	for _, card := range selected {
		entries = append(entries, manifestEntry{ID: card.ID, Name: card.Name})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, ManifestName), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
