package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arbonet",
		Short: "arbonet is a tool to train tree-augmented naive bayes classifiers",
		Long:  `A tool to learn attribute dependency trees from your data, test the resulting classifiers, and use them to label new instances`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), trainCmd(config), classifyCmd(config), testCmd(config), datasetCmd(config), treeCmd(config))
	return rootCmd
}
