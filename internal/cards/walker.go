package cards

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/sce-tools/cardex/internal/save"
)

// fragmentSuffix marks a GMNotes value as a reference to a remote object-graph
// fragment rather than inline card metadata.
const fragmentSuffix = ".json"

// FragmentResolver fetches a remote object-graph fragment by URL.
type FragmentResolver interface {
	Resolve(ctx context.Context, url string) (*save.Fragment, error)
}

// Walker discovers card objects anywhere in the save's object graph,
// resolving remote fragments through the configured resolver as it descends.
type Walker struct {
	// Base is the content repository URL fragment references are resolved
	// against.
	Base     string
	Resolver FragmentResolver
}

// Walk traverses objects depth-first in document order and calls fn for every
// card it can describe. Objects whose card data is unusable are skipped and
// logged at debug level; a resolver failure or an error from fn aborts the
// walk.
//
// Crossing a remote-fragment boundary appends the reference's name (suffix
// stripped) to the hierarchy path; inline children share their parent's path.
func (w *Walker) Walk(ctx context.Context, objects []save.Object, path []string, fn func(Card) error) error {
	for _, obj := range objects {
		if ref, ok := strings.CutSuffix(obj.GMNotes, fragmentSuffix); ok {
			frag, err := w.Resolver.Resolve(ctx, w.Base+"/"+obj.GMNotes)
			if err != nil {
				return fmt.Errorf("failed to resolve fragment %s: %w", obj.GMNotes, err)
			}

			sub := append(slices.Clone(path), ref)
			if err := w.Walk(ctx, frag.ContainedObjects, sub, fn); err != nil {
				return err
			}
		} else if isCardType(obj.Name) && obj.GMNotes != "" {
			card, err := FromObject(obj, path)
			if err != nil {
				slog.Debug("Skipping card object", "nickname", obj.Nickname, "path", strings.Join(path, "/"), "reason", err)
			} else if err := fn(*card); err != nil {
				return err
			}
		}

		// Inline children are visited regardless of what the node itself
		// turned out to be.
		if len(obj.ContainedObjects) > 0 {
			if err := w.Walk(ctx, obj.ContainedObjects, path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func isCardType(name string) bool {
	return name == "Card" || name == "CardCustom"
}
