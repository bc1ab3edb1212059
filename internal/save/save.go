package save

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save is the top-level structure of a tabletop save file. Only the fields
// needed for card discovery are decoded; everything else in the save is
// ignored.
type Save struct {
	ObjectStates []Object `json:"ObjectStates"`
	LuaScript    string   `json:"LuaScript"`
}

// Object is a single node in the save's object graph. Containers carry their
// children in ContainedObjects; card objects carry their sprite-sheet
// reference in CustomDeck and their structured metadata in GMNotes.
type Object struct {
	Name             string               `json:"Name"`
	Nickname         string               `json:"Nickname"`
	GMNotes          string               `json:"GMNotes"`
	CardID           int                  `json:"CardID"`
	CustomDeck       map[string]DeckImage `json:"CustomDeck"`
	ContainedObjects []Object             `json:"ContainedObjects"`
}

// DeckImage describes one sprite sheet shared by the cards of a deck. NumWidth
// and NumHeight are the grid dimensions; BackURL is only meaningful when
// UniqueBack is set.
type DeckImage struct {
	FaceURL    string `json:"FaceURL"`
	BackURL    string `json:"BackURL"`
	UniqueBack bool   `json:"UniqueBack"`
	NumWidth   int    `json:"NumWidth"`
	NumHeight  int    `json:"NumHeight"`
}

// Fragment is the shape of a remote object-graph fragment fetched from the
// content repository.
type Fragment struct {
	ContainedObjects []Object `json:"ContainedObjects"`
}

// Load reads and parses a save file from disk.
func Load(path string) (*Save, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var s Save
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse save file: %w", err)
	}

	return &s, nil
}
