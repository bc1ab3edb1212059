package extractcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sce-tools/cardex/internal/remote"
	"github.com/sce-tools/cardex/internal/save"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var filters []string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list <data.json>",
		Short: "List the cards in a save file without downloading images",
		Long: `List walks the save's object graph, resolving remote fragments as needed,
and prints every discovered card with its hierarchy path. No sprite sheets are
downloaded, so this is a cheap way to preview what extract would produce and
which --filters values are available.`,
		Example: `  cardex list save.json
  cardex list save.json --filters 'players/red/**'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeList(ctx, args[0], filters)
		},
	}

	cmd.Flags().StringSliceVar(&filters, "filters", nil, "Glob patterns selecting hierarchy paths (repeatable, OR semantics)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executeList(ctx context.Context, dataPath string, filters []string) error {
	s, err := save.Load(dataPath)
	if err != nil {
		return err
	}

	sourceURL, ok := save.ExtractSourceURL(s.LuaScript)
	if !ok {
		printNoSource()
		return nil
	}

	all, err := discoverCards(ctx, remote.NewClient(), sourceURL, s)
	if err != nil {
		return err
	}

	selected := filterCards(all, filters)
	for _, card := range selected {
		fmt.Printf("%s  %s  (%s)\n", color.HiWhiteString(card.ID), card.Name, card.PathString())
	}
	printDiscovery(all, selected, filters)

	return nil
}
