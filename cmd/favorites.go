package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Sofiane224434/cinetech/pkg/manager"
	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/dustin/go-humanize"

	"github.com/spf13/cobra"
)

var (
	addTitle  string
	addType   string
	addPoster string
)

// favoritesCmd represents the favorites command
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "manage saved favorites",
	Long:  `manage saved favorites`,
}

var listFavoritesCmd = &cobra.Command{
	Use:   "list",
	Short: "list saved favorites",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		items, err := catalog.ListFavorites(context.TODO())
		if err != nil {
			log.Fatalf("failed to list favorites: %v", err)
		}

		printItems(items)
	},
}

var addFavoriteCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "save an item as a favorite",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		_, err := catalog.AddFavorite(context.TODO(), manager.AddItemRequest{
			ID:         mustID(args[0]),
			Type:       storage.MediaType(addType),
			Title:      addTitle,
			PosterPath: addPoster,
		})
		if err != nil {
			log.Fatalf("failed to add favorite: %v", err)
		}
	},
}

var removeFavoriteCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "drop an item from the favorites",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		_, err := catalog.RemoveFavorite(context.TODO(), mustID(args[0]))
		if err != nil {
			log.Fatalf("failed to remove favorite: %v", err)
		}
	},
}

func printItems(items []storage.StoredItem) {
	if len(items) == 0 {
		fmt.Println("nothing saved")
		return
	}

	for _, item := range items {
		added := humanize.Time(time.UnixMilli(item.AddedAt))
		if item.Status != "" {
			fmt.Printf("%d\t%s (%s) %s, added %s\n", item.ID, item.Title, item.Type, item.Status.Label(), added)
			continue
		}
		fmt.Printf("%d\t%s (%s), added %s\n", item.ID, item.Title, item.Type, added)
	}
}

func init() {
	addFavoriteCmd.Flags().StringVar(&addTitle, "title", "", "item title")
	addFavoriteCmd.Flags().StringVar(&addType, "type", "movie", "one of movie, series")
	addFavoriteCmd.Flags().StringVar(&addPoster, "poster", "", "poster path")

	favoritesCmd.AddCommand(listFavoritesCmd)
	favoritesCmd.AddCommand(addFavoriteCmd)
	favoritesCmd.AddCommand(removeFavoriteCmd)
	rootCmd.AddCommand(favoritesCmd)
}
