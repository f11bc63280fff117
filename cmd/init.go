package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nileworks/mockpile/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a mockpile project",
	Long:  `Create mockpile.config.json with default counts plus the schema and output directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}

		color.Green("✅ Created %s", config.ConfigFileName)
		color.Cyan("📁 Created db/schema and db directories")
		color.White("Next: put your schema under db/schema, then run 'mockpile generate'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
