package main

import (
	"github.com/spf13/cobra"

	"canopyrad/forcing"
	"canopyrad/internal/config"
	"canopyrad/internal/driver"
	"canopyrad/internal/log"
)

var (
	configFile  string
	forcingFile string

	// outFile is the output CSV; "-" writes to standard output.
	outFile string
)

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&configFile, "config", "./canopyrad.yaml", "configuration file location")
	runCmd.Flags().StringVar(&forcingFile, "forcing", "", "forcing CSV file")
	runCmd.Flags().StringVar(&outFile, "out", "-", "output CSV file")
	_ = runCmd.MarkFlagRequired("forcing")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the model over a forcing file",
	Long: "Run the model over every timestep of a forcing file and write the " +
		"geometry, diffuse fraction and absorbed PAR of each timestep as CSV.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		rows, err := forcing.ReadFile(forcingFile)
		if err != nil {
			return err
		}
		log.Infof("read %d forcing rows from %s", len(rows), forcingFile)

		rec, err := driver.Run(cmd.Context(), cfg, rows)
		if err != nil {
			log.Errorf("run failed: %v", err)
			return err
		}

		if outFile == "-" {
			err = rec.Write(cmd.OutOrStdout())
		} else {
			err = rec.WriteFile(outFile)
		}
		if err != nil {
			return err
		}

		sum := rec.Summarize()
		log.Infow("summary",
			"steps", sum.Steps,
			"daylight_steps", sum.DaylightSteps,
			"max_elevation", sum.MaxElevation,
			"mean_diffuse_frac", sum.MeanDiffuseFrac,
			"mean_apar_sunlit", sum.MeanAPARSunlit,
			"mean_apar_shaded", sum.MeanAPARShaded,
			"mean_lai_sunlit", sum.MeanSunlitLAI,
		)
		if sum.DaylightSteps == 0 {
			log.Warnw("the sun never rose over the forcing period", "steps", sum.Steps)
		}
		return nil
	},
}
