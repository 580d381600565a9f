package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tripscout/trip-scout/internal/geo"
	"github.com/tripscout/trip-scout/internal/store"
)

var continentCmd = &cobra.Command{
	Use:   "continent <name>",
	Short: "Show stored recommendations for one continent",
	Long: `Show stored recommendations for one continent.

The name is matched case-insensitively and understands synonyms:
"america" searches both Americas, "oceania" searches Australia.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.ByContinent(geo.ResolveContinent(input))
		if err != nil {
			return fmt.Errorf("reading recommendations: %w", err)
		}

		fmt.Println(store.FormatByContinent(input, recs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(continentCmd)
}
