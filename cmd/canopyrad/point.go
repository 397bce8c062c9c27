package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"canopyrad/forcing"
	"canopyrad/radiation"
	"canopyrad/recorder"
)

var point struct {
	lat, lon float64
	doy      int
	step     int
	interval string
	sw       float64
	par      string
	parFrac  float64
	lai      float64
	lad      float64
	geometry string
}

func init() {
	RootCmd.AddCommand(pointCmd)

	f := pointCmd.Flags()
	f.Float64Var(&point.lat, "lat", 0.0, "latitude, degrees north")
	f.Float64Var(&point.lon, "lon", 0.0, "longitude, degrees east")
	f.IntVar(&point.doy, "doy", 1, "day of year")
	f.IntVar(&point.step, "step", 0, "timestep index within the day")
	f.StringVar(&point.interval, "interval", string(forcing.IntervalM30), "timestep length: 1h, 30m or 15m")
	f.Float64Var(&point.sw, "sw", 0.0, "incident shortwave radiation, W/m2")
	f.StringVar(&point.par, "par", "", "incident PAR (default: --par-fraction of --sw)")
	f.Float64Var(&point.parFrac, "par-fraction", 0.5, "fraction of shortwave radiation that is PAR")
	f.Float64Var(&point.lai, "lai", 0.0, "leaf area index, m2/m2")
	f.Float64Var(&point.lad, "lad", 1.0, "leaf angle distribution")
	f.StringVar(&point.geometry, "geometry", string(radiation.DePury), "solar geometry model: depury or spencer")
}

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Compute a single timestep",
	Long:  "Compute a single timestep at one site and print it as a CSV row.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		itv, err := forcing.ParseInterval(point.interval)
		if err != nil {
			return err
		}

		row := &forcing.Row{DOY: point.doy, Step: point.step, SWRad: point.sw, PAR: point.par, LAI: point.lai}
		if !(point.parFrac > 0.0 && point.parFrac <= 1.0) {
			return fmt.Errorf("--par-fraction must be in (0, 1], got %v", point.parFrac)
		}
		recs, err := forcing.Records([]*forcing.Row{row}, itv, point.parFrac)
		if err != nil {
			return err
		}

		m := radiation.NewModel(radiation.Site{Latitude: point.lat, Longitude: point.lon}, point.lad)
		m.Geometry = radiation.GeometryModel(point.geometry)
		if err := m.Validate(); err != nil {
			return err
		}

		rec := recs[0]
		s, err := m.Step(radiation.StepInput{DOY: rec.DOY, Hour: rec.Hour, SWRad: rec.SWRad, PAR: rec.PAR, LAI: rec.LAI})
		if err != nil {
			return err
		}

		r := recorder.NewRecorder(1, itv)
		r.Record(0, rec, s)
		return r.Write(cmd.OutOrStdout())
	},
}
