// Package recorder collects the per-timestep results of a run and writes
// them out.
package recorder

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"canopyrad/forcing"
	"canopyrad/radiation"
)

// Result is one line of the output file.
type Result struct {
	DOY         int     `csv:"doy"`
	Step        int     `csv:"step"`
	Hour        float64 `csv:"hod"`
	CosZenith   float64 `csv:"cos_zenith"`
	Elevation   float64 `csv:"elevation"`
	DiffuseFrac float64 `csv:"diffuse_frac"`
	DirectFrac  float64 `csv:"direct_frac"`
	APARSunlit  float64 `csv:"apar_sunlit"`
	APARShaded  float64 `csv:"apar_shaded"`
	LAISunlit   float64 `csv:"lai_sunlit"`
	LAIShaded   float64 `csv:"lai_shaded"`
	APARCanopy  float64 `csv:"apar_canopy"`
}

// Recorder holds the results of a run in timestep order.
//
// Record may be called concurrently for distinct indices.
type Recorder struct {
	itv     forcing.Interval
	results []Result
}

// NewRecorder returns a Recorder for nStep timesteps at interval itv.
func NewRecorder(nStep int, itv forcing.Interval) *Recorder {
	return &Recorder{
		itv:     itv,
		results: make([]Result, nStep),
	}
}

// Len returns the number of timesteps.
func (r *Recorder) Len() int {
	return len(r.results)
}

// Interval returns the timestep of the recorded results.
func (r *Recorder) Interval() forcing.Interval {
	return r.itv
}

// Record stores the state computed for timestep n.
func (r *Recorder) Record(n int, rec forcing.Record, s radiation.State) {
	r.results[n] = Result{
		DOY:         rec.DOY,
		Step:        rec.Step,
		Hour:        rec.Hour,
		CosZenith:   s.Geometry.CosZenith,
		Elevation:   s.Geometry.Elevation,
		DiffuseFrac: s.Partition.DiffuseFrac,
		DirectFrac:  s.Partition.DirectFrac,
		APARSunlit:  s.Absorbed.APAR[radiation.Sunlit],
		APARShaded:  s.Absorbed.APAR[radiation.Shaded],
		LAISunlit:   s.Absorbed.LAI[radiation.Sunlit],
		LAIShaded:   s.Absorbed.LAI[radiation.Shaded],
		APARCanopy:  s.Absorbed.Canopy,
	}
}

// Results returns the recorded results.
func (r *Recorder) Results() []Result {
	return r.results
}

// Write writes the results as CSV with a header line.
func (r *Recorder) Write(w io.Writer) error {
	return gocsv.Marshal(r.results, w)
}

// WriteFile writes the results as CSV to path.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Summary condenses a run. Means are over the daylight timesteps.
type Summary struct {
	Steps           int
	DaylightSteps   int
	MaxElevation    float64 // degrees
	MeanDiffuseFrac float64
	MeanAPARSunlit  float64
	MeanAPARShaded  float64
	MeanSunlitLAI   float64
}

// Summarize returns the summary of the recorded results.
func (r *Recorder) Summarize() Summary {
	sum := Summary{Steps: len(r.results)}
	if len(r.results) == 0 {
		return sum
	}

	elevation := make([]float64, len(r.results))
	var diffuse, sunlit, shaded, laiSunlit []float64
	for i, res := range r.results {
		elevation[i] = res.Elevation
		if res.CosZenith <= radiation.MinCosZenith {
			continue
		}
		diffuse = append(diffuse, res.DiffuseFrac)
		sunlit = append(sunlit, res.APARSunlit)
		shaded = append(shaded, res.APARShaded)
		laiSunlit = append(laiSunlit, res.LAISunlit)
	}

	sum.MaxElevation = floats.Max(elevation)
	sum.DaylightSteps = len(diffuse)
	if sum.DaylightSteps == 0 {
		return sum
	}

	sum.MeanDiffuseFrac = stat.Mean(diffuse, nil)
	sum.MeanAPARSunlit = stat.Mean(sunlit, nil)
	sum.MeanAPARShaded = stat.Mean(shaded, nil)
	sum.MeanSunlitLAI = stat.Mean(laiSunlit, nil)

	return sum
}
