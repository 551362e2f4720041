package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/Sofiane224434/cinetech/pkg/search"

	"github.com/spf13/cobra"
)

var searchFilter string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "search the catalog",
	Long:  `search the catalog and print suggestions`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		_, collections, store, err := newCatalog(cfg)
		if err != nil {
			log.Fatalf("failed to open storage: %v", err)
		}
		defer store.Close()

		engine := newEngine(cfg, newTMDBClient(cfg), collections.History)
		defer engine.Close()

		suggestions, err := engine.Suggest(context.TODO(), args[0], search.Filter(searchFilter))
		if err != nil {
			log.Fatalf("failed to query suggestions: %v", err)
		}

		if len(suggestions) == 0 {
			fmt.Println("no results")
			return
		}

		for _, s := range suggestions {
			fmt.Printf("%s (%s) %s\n", s.Title, s.MediaType, s.Route())
		}
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchFilter, "filter", string(search.FilterAll), "one of all, movie, tv, anime")
	rootCmd.AddCommand(searchCmd)
}
