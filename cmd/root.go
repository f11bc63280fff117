package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "mockpile",
	Short: "Generate and load relational mock data for engineering procurement schemas",
	Long: `
mockpile synthesizes an internally-consistent mock dataset (users,
clients, suppliers, addresses, contacts, projects, items, documents and
their relations), writes it to a JSON snapshot, and loads that snapshot
into PostgreSQL, MySQL or SQLite in foreign-key dependency order.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("mockpile version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mockpile.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("mockpile.config")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
