package cmd

import (
	"fmt"

	"github.com/DSinghania13/girdervis/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of girdervis",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("girdervis v%s\n", version.Version)
		fmt.Println("Bridge Girder Internal-Force Diagram Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
