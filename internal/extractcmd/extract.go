package extractcmd

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sce-tools/cardex/internal/cards"
	"github.com/sce-tools/cardex/internal/remote"
	"github.com/sce-tools/cardex/internal/save"
	"github.com/sce-tools/cardex/internal/sheets"
)

// rootSegment is the hierarchy path every card starts under; remote-fragment
// boundaries append to it.
const rootSegment = "players"

type extractOptions struct {
	DataPath   string
	OutputDir  string
	Filters    []string
	Overwrite  bool
	ReportPath string
}

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	var opts extractOptions
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extract <data.json>",
		Short: "Extract per-card images from a tabletop save file",
		Long: `Extract discovers every card object in a save file's object graph,
downloads the sprite sheets they reference, and writes one cropped image per
card face plus a cards.json manifest.

Containers whose notes point at a .json fragment are resolved against the
content repository configured in the save's script (SOURCE_REPO).`,
		Example: `  # Extract everything into ./cards/
  cardex extract save.json

  # Only cards under the red player, into a custom directory
  cardex extract save.json --output ./out --filters 'players/red/**'

  # Keep images from a previous run
  cardex extract save.json --overwrite=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			opts.DataPath = args[0]

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeExtract(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output", "./cards/", "Output directory for card images")
	cmd.Flags().StringSliceVar(&opts.Filters, "filters", nil, "Glob patterns selecting hierarchy paths (repeatable, OR semantics)")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", true, "Overwrite existing card images")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write a YAML run report to this path")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executeExtract(ctx context.Context, opts extractOptions) error {
	s, err := save.Load(opts.DataPath)
	if err != nil {
		return err
	}

	sourceURL, ok := save.ExtractSourceURL(s.LuaScript)
	if !ok {
		printNoSource()
		return nil
	}
	slog.Info("Using content repository", "url", sourceURL)

	client := remote.NewClient()
	all, err := discoverCards(ctx, client, sourceURL, s)
	if err != nil {
		return err
	}

	selected := filterCards(all, opts.Filters)
	printDiscovery(all, selected, opts.Filters)

	cache := sheets.NewCache(client.FetchBytes)
	defer func() {
		if err := cache.Close(); err != nil {
			slog.Warn("Failed to remove cached sheets", "error", err)
		}
	}()

	written := 0
	skipped := 0
	for _, card := range selected {
		for _, face := range cards.Faces {
			url, ok := card.Images[face]
			if !ok {
				continue
			}

			wrote, err := extractFace(ctx, cache, card, face, url, opts)
			if err != nil {
				return err
			}
			if wrote {
				written++
			} else {
				skipped++
			}
		}
	}

	slog.Info("Extraction finished", "images", written, "skipped", skipped)

	if err := writeManifest(opts.OutputDir, selected); err != nil {
		return err
	}

	if opts.ReportPath != "" {
		report := buildReport(opts, all, selected, written, skipped)
		if err := writeReport(opts.ReportPath, report); err != nil {
			return err
		}
	}

	return nil
}

// discoverCards walks the full object graph, inline and remote, and collects
// every card in document order.
func discoverCards(ctx context.Context, client *remote.Client, sourceURL string, s *save.Save) ([]cards.Card, error) {
	walker := &cards.Walker{
		Base:     sourceURL,
		Resolver: remote.NewFragmentClient(client),
	}

	var found []cards.Card
	err := walker.Walk(ctx, s.ObjectStates, []string{rootSegment}, func(c cards.Card) error {
		found = append(found, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk object graph: %w", err)
	}
	return found, nil
}

func filterCards(all []cards.Card, filters []string) []cards.Card {
	if len(filters) == 0 {
		return all
	}

	selected := make([]cards.Card, 0, len(all))
	for _, card := range all {
		if cards.MatchesFilter(card.PathString(), filters) {
			selected = append(selected, card)
		}
	}
	return selected
}

// extractFace writes one face of one card. It reports false when the face was
// skipped: the output already exists and overwriting is off, or the sheet's
// encoding is not one we can write back out.
func extractFace(ctx context.Context, cache *sheets.Cache, card cards.Card, face cards.Face, url string, opts extractOptions) (bool, error) {
	dir := filepath.Join(opts.OutputDir, filepath.FromSlash(card.PathString()))
	stem := filepath.Join(dir, fmt.Sprintf("%s_%s", card.ID, face))

	if !opts.Overwrite && outputExists(stem) {
		slog.Debug("Output exists, skipping", "card", card.ID, "face", face)
		return false, nil
	}

	r, err := cache.Open(ctx, url, card.GridWidth, card.GridHeight)
	if err != nil {
		return false, err
	}
	img, format, err := image.Decode(r)
	r.Close()
	if err != nil {
		slog.Warn("Cannot decode sheet, skipping face", "card", card.ID, "face", face, "url", url, "error", err)
		return false, nil
	}

	ext, err := sheets.Ext(format)
	if errors.Is(err, sheets.ErrUnsupportedFormat) {
		slog.Warn("Unsupported sheet encoding, skipping face", "card", card.ID, "face", face, "format", format)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	cropped, err := sheets.Crop(img, card.GridWidth, card.GridHeight, card.Index)
	if err != nil {
		return false, fmt.Errorf("failed to crop %s %s: %w", card.ID, face, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(stem + ext)
	if err != nil {
		return false, fmt.Errorf("failed to create card image: %w", err)
	}
	if err := sheets.Encode(f, cropped, format); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to encode %s %s: %w", card.ID, face, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to write card image: %w", err)
	}

	slog.Debug("Wrote card image", "path", stem+ext)
	return true, nil
}

// outputExists reports whether a previous run already produced this face
// under either supported extension.
func outputExists(stem string) bool {
	for _, ext := range []string{".jpg", ".png"} {
		if _, err := os.Stat(stem + ext); err == nil {
			return true
		}
	}
	return false
}
