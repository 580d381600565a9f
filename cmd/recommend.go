package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tripscout/trip-scout/internal/advisor"
	"github.com/tripscout/trip-scout/internal/geo"
	"github.com/tripscout/trip-scout/internal/places"
	"github.com/tripscout/trip-scout/internal/store"
)

var recommendModel string

var recommendCmd = &cobra.Command{
	Use:   "recommend [query...]",
	Short: "Ask Gemini for a destination and store nearby tourist spots",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		query := strings.Join(args, " ")
		if query == "" {
			fmt.Println("Please enter details about your dream travel destination!")
			fmt.Println("Feel free to include: budget, where you are travelling from, max distance, interests.")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading query: %w", err)
			}
			query = strings.TrimSpace(line)
		}
		if query == "" {
			return fmt.Errorf("no query given")
		}

		if !cmd.Flags().Changed("model") {
			recommendModel = cfg.Advisor.Model
		}

		client, err := advisor.NewClient(ctx, recommendModel)
		if err != nil {
			return err
		}

		fmt.Println("Asking for a suggestion...")
		text, err := client.Suggest(ctx, query)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n\n", text)

		destination, coord, err := advisor.ParseSuggestion(text)
		if err != nil {
			return fmt.Errorf("parsing suggestion: %w", err)
		}

		continent := geo.Classify(coord.Lat, coord.Lon)
		logVerbose("parsed %q at %v,%v (%s)", destination, coord.Lat, coord.Lon, continent)

		pc, err := places.NewClient(cfg.Places.RateLimit)
		if err != nil {
			return err
		}

		spots, err := pc.Nearby(ctx, coord, cfg.Places.Radius, cfg.Places.Categories, cfg.Places.Limit)
		if err != nil {
			return fmt.Errorf("looking up places: %w", err)
		}
		if len(spots) == 0 {
			fmt.Printf("No spots found near %s.\n", destination)
			return nil
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.SavePlaces(destination, spots, continent, cfg.Places.Limit); err != nil {
			return fmt.Errorf("saving recommendations: %w", err)
		}

		fmt.Printf("Saved %d spots near %s (%s):\n", len(spots), destination, continent)
		for _, p := range spots {
			fmt.Printf("  - %s (%s)\n", p.Name, p.Address)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendModel, "model", "gemini-2.5-flash", "Gemini model to use")
	rootCmd.AddCommand(recommendCmd)
}
