package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var trendingPage int

// trendingCmd represents the trending command
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "print trending titles from the catalog",
	Long:  `print trending titles from the catalog`,
}

var trendingMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "trending movies this week",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		page, err := catalog.TrendingMovies(context.TODO(), trendingPage)
		if err != nil {
			log.Fatalf("failed to fetch trending movies: %v", err)
		}

		for _, movie := range page.Results {
			fmt.Printf("%d\t%s (%s)\n", movie.ID, movie.Title, movie.ReleaseDate)
		}
	},
}

var trendingSeriesCmd = &cobra.Command{
	Use:   "series",
	Short: "trending series this week",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		page, err := catalog.TrendingSeries(context.TODO(), trendingPage)
		if err != nil {
			log.Fatalf("failed to fetch trending series: %v", err)
		}

		for _, series := range page.Results {
			fmt.Printf("%d\t%s (%s)\n", series.ID, series.Name, series.FirstAirDate)
		}
	},
}

var trendingAnimeCmd = &cobra.Command{
	Use:   "anime",
	Short: "popular japanese animated series",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		page, err := catalog.DiscoverAnime(context.TODO(), trendingPage)
		if err != nil {
			log.Fatalf("failed to fetch anime: %v", err)
		}

		for _, series := range page.Results {
			fmt.Printf("%d\t%s (%s)\n", series.ID, series.Name, series.FirstAirDate)
		}
	},
}

func init() {
	trendingCmd.PersistentFlags().IntVar(&trendingPage, "page", 1, "result page")

	trendingCmd.AddCommand(trendingMoviesCmd)
	trendingCmd.AddCommand(trendingSeriesCmd)
	trendingCmd.AddCommand(trendingAnimeCmd)
	rootCmd.AddCommand(trendingCmd)
}
