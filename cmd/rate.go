package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/Sofiane224434/cinetech/pkg/manager"

	"github.com/spf13/cobra"
)

// rateCmd represents the rate command
var rateCmd = &cobra.Command{
	Use:   "rate [id] [stars]",
	Short: "rate an item from 1 to 5 stars",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("invalid rating %q", args[1])
		}

		catalog, store := mustCatalog()
		defer store.Close()

		stored, err := catalog.SetRating(context.TODO(), manager.SetRatingRequest{
			ID:     mustID(args[0]),
			Rating: rating,
		})
		if err != nil {
			log.Fatalf("failed to set rating: %v", err)
		}

		fmt.Printf("rated %s stars\n", strconv.Itoa(stored))
	},
}

var unrateCmd = &cobra.Command{
	Use:   "unrate [id]",
	Short: "clear the rating for an item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		if err := catalog.RemoveRating(context.TODO(), mustID(args[0])); err != nil {
			log.Fatalf("failed to remove rating: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(unrateCmd)
}
