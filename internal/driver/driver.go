// Package driver runs the radiation model over a forcing series.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"canopyrad/forcing"
	"canopyrad/internal/config"
	"canopyrad/internal/log"
	"canopyrad/radiation"
	"canopyrad/recorder"
)

// Run validates the forcing rows, resamples them to the model interval and
// computes every timestep. Timesteps are independent and are spread over
// cfg.Workers goroutines; results keep the order of the forcing.
func Run(ctx context.Context, cfg *config.Config, rows []*forcing.Row) (*recorder.Recorder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model, err := cfg.Model()
	if err != nil {
		return nil, err
	}

	recs, err := forcing.Records(rows, cfg.ForcingInterval, cfg.PARFraction)
	if err != nil {
		return nil, err
	}

	recs, err = forcing.Resample(recs, cfg.ForcingInterval, cfg.Interval)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Infow("starting run",
		"site", model.Site,
		"interval", cfg.Interval,
		"steps", len(recs),
		"workers", workers,
		"geometry_model", model.Geometry,
		"basis", model.Basis,
	)
	start := time.Now()

	rec := recorder.NewRecorder(len(recs), cfg.Interval)
	if err := Steps(ctx, model, recs, rec, workers); err != nil {
		return nil, err
	}

	log.Infow("run finished", "steps", rec.Len(), "elapsed", time.Since(start))
	return rec, nil
}

// Steps computes recs with model and stores the states in rec, using at
// most workers goroutines. The first error cancels the remaining steps.
func Steps(ctx context.Context, model *radiation.Model, recs []forcing.Record, rec *recorder.Recorder, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for n := range recs {
		n := n
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := recs[n]
			s, err := model.Step(radiation.StepInput{
				DOY:   r.DOY,
				Hour:  r.Hour,
				SWRad: r.SWRad,
				PAR:   r.PAR,
				LAI:   r.LAI,
			})
			if err != nil {
				return fmt.Errorf("doy %d step %d: %w", r.DOY, r.Step, err)
			}
			log.Debugw("step", "doy", r.DOY, "step", r.Step, "cos_zenith", s.Geometry.CosZenith)
			rec.Record(n, r, s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// the loop may stop before any goroutine sees a cancelled parent
	return ctx.Err()
}
