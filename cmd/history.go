package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "print the recent search terms",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		terms, err := catalog.SearchHistory(context.TODO())
		if err != nil {
			log.Fatalf("failed to list search history: %v", err)
		}

		if len(terms) == 0 {
			fmt.Println("no recent searches")
			return
		}

		for _, term := range terms {
			fmt.Println(term)
		}
	},
}

var clearHistoryCmd = &cobra.Command{
	Use:   "clear",
	Short: "empty the recent search terms",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		if err := catalog.ClearSearchHistory(context.TODO()); err != nil {
			log.Fatalf("failed to clear search history: %v", err)
		}
	},
}

func init() {
	historyCmd.AddCommand(clearHistoryCmd)
	rootCmd.AddCommand(historyCmd)
}
