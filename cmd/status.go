package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tripscout/trip-scout/internal/model"
	"github.com/tripscout/trip-scout/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how many recommendations are stored per continent",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Printf("Stored recommendations: %d\n", s.Count())

		counts := s.CountByContinent()
		if len(counts) > 0 {
			fmt.Printf("\nPer-Continent Breakdown\n")
			fmt.Printf("-----------------------\n")

			var labels []string
			for c := range counts {
				labels = append(labels, string(c))
			}
			sort.Strings(labels)

			for _, l := range labels {
				fmt.Printf("  %-14s %4d\n", l, counts[model.Continent(l)])
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
