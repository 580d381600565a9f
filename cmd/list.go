package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tripscout/trip-scout/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every stored recommendation grouped by continent",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.All()
		if err != nil {
			return fmt.Errorf("reading recommendations: %w", err)
		}

		fmt.Println(store.FormatAll(recs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
