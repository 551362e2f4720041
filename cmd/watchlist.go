package cmd

import (
	"context"
	"log"

	"github.com/Sofiane224434/cinetech/pkg/manager"
	"github.com/Sofiane224434/cinetech/pkg/storage"

	"github.com/spf13/cobra"
)

var (
	watchTitle  string
	watchType   string
	watchPoster string
)

// watchlistCmd represents the watchlist command
var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "manage the watchlist",
	Long:  `manage the watchlist`,
}

var listWatchlistCmd = &cobra.Command{
	Use:   "list",
	Short: "list the watchlist",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		items, err := catalog.ListWatchlist(context.TODO())
		if err != nil {
			log.Fatalf("failed to list watchlist: %v", err)
		}

		printItems(items)
	},
}

var addWatchlistCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "save an item to watch later",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		_, err := catalog.AddToWatchlist(context.TODO(), manager.AddItemRequest{
			ID:         mustID(args[0]),
			Type:       storage.MediaType(watchType),
			Title:      watchTitle,
			PosterPath: watchPoster,
		})
		if err != nil {
			log.Fatalf("failed to add to watchlist: %v", err)
		}
	},
}

var removeWatchlistCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "drop an item from the watchlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		_, err := catalog.RemoveFromWatchlist(context.TODO(), mustID(args[0]))
		if err != nil {
			log.Fatalf("failed to remove from watchlist: %v", err)
		}
	},
}

var statusWatchlistCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "move a watchlist entry to to_watch, watching or watched",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		_, err := catalog.UpdateWatchStatus(context.TODO(), manager.UpdateStatusRequest{
			ID:     mustID(args[0]),
			Status: storage.WatchStatus(args[1]),
		})
		if err != nil {
			log.Fatalf("failed to update status: %v", err)
		}
	},
}

func init() {
	addWatchlistCmd.Flags().StringVar(&watchTitle, "title", "", "item title")
	addWatchlistCmd.Flags().StringVar(&watchType, "type", "movie", "one of movie, series")
	addWatchlistCmd.Flags().StringVar(&watchPoster, "poster", "", "poster path")

	watchlistCmd.AddCommand(listWatchlistCmd)
	watchlistCmd.AddCommand(addWatchlistCmd)
	watchlistCmd.AddCommand(removeWatchlistCmd)
	watchlistCmd.AddCommand(statusWatchlistCmd)
	rootCmd.AddCommand(watchlistCmd)
}
