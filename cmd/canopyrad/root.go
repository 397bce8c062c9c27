package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"canopyrad/internal/log"
)

const version = "0.3.0"

// debug switches the logger to development mode.
var debug bool

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "canopyrad",
	Short: "Sunlit and shaded canopy radiation.",
	Long: `Partition incoming shortwave radiation into its diffuse and direct parts
and calculate the PAR absorbed by the sunlit and shaded leaves of a canopy,
following de Pury & Farquhar (1997).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(debug)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)

	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every timestep in development format")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of canopyrad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "canopyrad v%s\n", version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
