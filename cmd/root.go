package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cinetech",
	Short: "cinetech cli",
	Long:  `cinetech cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("CINETECH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.language", "fr-FR")
	viper.SetDefault("tmdb.backoff", 500*time.Millisecond)
	viper.SetDefault("tmdb.maxRetries", 3)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.filePath", "cinetech.db")

	viper.SetDefault("search.debounce", 300*time.Millisecond)
	viper.SetDefault("search.minQueryLength", 2)
	viper.SetDefault("search.maxSuggestions", 5)
	viper.SetDefault("search.historyLimit", 5)
}
