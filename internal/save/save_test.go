package save

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	data := `{
		"LuaScript": "SOURCE_REPO = 'https://example.com/repo'",
		"ObjectStates": [
			{
				"Name": "Bag",
				"Nickname": "Player Red",
				"GMNotes": "",
				"ContainedObjects": [
					{
						"Name": "Card",
						"Nickname": "Scout",
						"GMNotes": "{\"id\": \"scout\"}",
						"CardID": 1203,
						"CustomDeck": {
							"12": {
								"FaceURL": "https://example.com/sheet.png",
								"BackURL": "https://example.com/back.png",
								"UniqueBack": true,
								"NumWidth": 4,
								"NumHeight": 2
							}
						}
					}
				]
			}
		]
	}`

	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write test save: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(s.ObjectStates) != 1 {
		t.Fatalf("Expected 1 object state, got %d", len(s.ObjectStates))
	}

	bag := s.ObjectStates[0]
	if bag.Nickname != "Player Red" {
		t.Errorf("Expected nickname 'Player Red', got %q", bag.Nickname)
	}
	if len(bag.ContainedObjects) != 1 {
		t.Fatalf("Expected 1 contained object, got %d", len(bag.ContainedObjects))
	}

	card := bag.ContainedObjects[0]
	if card.CardID != 1203 {
		t.Errorf("Expected card ID 1203, got %d", card.CardID)
	}

	deck, ok := card.CustomDeck["12"]
	if !ok {
		t.Fatalf("Expected custom deck entry with key 12")
	}
	if deck.NumWidth != 4 || deck.NumHeight != 2 {
		t.Errorf("Expected 4x2 grid, got %dx%d", deck.NumWidth, deck.NumHeight)
	}
	if !deck.UniqueBack {
		t.Errorf("Expected UniqueBack to be true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Expected error for invalid JSON")
	}
}
