package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the paper-tracker version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("paper-tracker", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
