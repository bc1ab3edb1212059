package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sce-tools/cardex/internal/extractcmd"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cardex",
		Short: "Card image extractor for tabletop save files",
		Long: `Cardex extracts individual card images from a tabletop save file.

It discovers card objects anywhere in the save's object graph, resolving
remote fragments from the content repository configured in the save's script,
then crops each card's faces out of its shared sprite sheet and writes a
manifest of what it produced.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(extractcmd.NewExtractCmd())
	cmd.AddCommand(extractcmd.NewListCmd())

	return cmd
}
