package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in arbonet's version
	VersionMajor = 0
	// VersionMinor is the minor number in arbonet's version
	VersionMinor = 1
	// VersionPatch is the patch number in arbonet's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of arbonet",
		Long:  `All software has versions. This is arbonet's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("arbonet v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
