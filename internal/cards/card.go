package cards

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sce-tools/cardex/internal/save"
)

// Face identifies one printable side of a card.
type Face int

const (
	FaceFront Face = iota
	FaceBack
)

// Faces lists both faces in extraction order.
var Faces = []Face{FaceFront, FaceBack}

func (f Face) String() string {
	if f == FaceBack {
		return "back"
	}
	return "front"
}

// Card describes one discovered card: where it sits in the object graph, which
// sprite sheet holds its artwork, and which grid cell is its own.
type Card struct {
	ID         string
	Name       string
	Path       []string
	Images     map[Face]string
	GridWidth  int
	GridHeight int
	Index      int
}

// PathString renders the card's hierarchy path for output layout and filter
// matching.
func (c Card) PathString() string {
	return strings.Join(c.Path, "/")
}

// cardMetadata is the structured payload embedded in a card object's GMNotes.
type cardMetadata struct {
	ID string `json:"id"`
}

// FromObject builds a Card from a card-typed save object under the given
// hierarchy path. An error means this object is unusable and should be
// skipped; it never invalidates the surrounding traversal.
func FromObject(obj save.Object, path []string) (*Card, error) {
	var meta cardMetadata
	if err := json.Unmarshal([]byte(obj.GMNotes), &meta); err != nil {
		return nil, fmt.Errorf("malformed card metadata: %w", err)
	}
	if meta.ID == "" {
		return nil, fmt.Errorf("card metadata has no id")
	}

	deckKey, deck, err := deckEntry(obj)
	if err != nil {
		return nil, err
	}
	if deck.NumWidth < 1 || deck.NumHeight < 1 {
		return nil, fmt.Errorf("invalid grid %dx%d", deck.NumWidth, deck.NumHeight)
	}

	index, err := cardIndex(deckKey, strconv.Itoa(obj.CardID))
	if err != nil {
		return nil, err
	}
	if index >= deck.NumWidth*deck.NumHeight {
		return nil, fmt.Errorf("index %d outside %dx%d grid", index, deck.NumWidth, deck.NumHeight)
	}

	images := map[Face]string{FaceFront: deck.FaceURL}
	if deck.UniqueBack {
		images[FaceBack] = deck.BackURL
	}

	return &Card{
		ID:         meta.ID,
		Name:       obj.Nickname,
		Path:       path,
		Images:     images,
		GridWidth:  deck.NumWidth,
		GridHeight: deck.NumHeight,
		Index:      index,
	}, nil
}

// deckEntry picks the object's sprite-sheet record: the deck whose key
// prefixes the card's raw numeric identifier. Keys are checked in sorted
// order so the choice is deterministic.
func deckEntry(obj save.Object) (string, save.DeckImage, error) {
	if len(obj.CustomDeck) == 0 {
		return "", save.DeckImage{}, fmt.Errorf("card has no custom deck")
	}

	rawID := strconv.Itoa(obj.CardID)
	keys := make([]string, 0, len(obj.CustomDeck))
	for key := range obj.CustomDeck {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.HasPrefix(rawID, key) {
			return key, obj.CustomDeck[key], nil
		}
	}
	return "", save.DeckImage{}, fmt.Errorf("no deck key matches card id %s", rawID)
}

// cardIndex derives the zero-based grid index by stripping the deck key from
// the card's raw identifier.
func cardIndex(deckKey, cardID string) (int, error) {
	if !strings.HasPrefix(cardID, deckKey) {
		return 0, fmt.Errorf("card id %s does not start with deck key %s", cardID, deckKey)
	}

	index, err := strconv.Atoi(cardID[len(deckKey):])
	if err != nil {
		return 0, fmt.Errorf("card id %s has no index after deck key %s", cardID, deckKey)
	}
	if index < 0 {
		return 0, fmt.Errorf("negative card index %d", index)
	}
	return index, nil
}
