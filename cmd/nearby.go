package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tripscout/trip-scout/internal/geo"
	"github.com/tripscout/trip-scout/internal/model"
	"github.com/tripscout/trip-scout/internal/places"
	"github.com/tripscout/trip-scout/internal/store"
)

var (
	nearbyLat float64
	nearbyLon float64
)

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Store tourist spots near an explicit coordinate",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		coord := model.Coordinate{Lat: nearbyLat, Lon: nearbyLon}

		pc, err := places.NewClient(cfg.Places.RateLimit)
		if err != nil {
			return err
		}

		// Best effort: falls back to the raw coordinate string when the
		// geocoder has nothing.
		destination := pc.ReverseGeocode(ctx, coord)
		continent := geo.Classify(coord.Lat, coord.Lon)
		logVerbose("lookup near %q at %v,%v (%s)", destination, coord.Lat, coord.Lon, continent)

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
	nearbyCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "Latitude of the search center")
	nearbyCmd.Flags().Float64Var(&nearbyLon, "lon", 0, "Longitude of the search center")
	nearbyCmd.MarkFlagRequired("lat")
	nearbyCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(nearbyCmd)
}
