package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mystal/flappy-bevy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the
difficulty preset is applied. Redirect it to a file to start your own:

  flappy config dump --difficulty normal > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which config file is used",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if path := config.Locate(flagConfig); path != "" {
			fmt.Println(path)
			return
		}
		fmt.Println("(embedded defaults)")
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, _, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
