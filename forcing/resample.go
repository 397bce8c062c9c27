package forcing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Resample interpolates records at interval from onto the finer interval to.
//
// Args:
//
//	recs: records at interval from, in time order
//	from: interval of recs
//	to: interval of the result; must not be coarser than from
//
// Returns:
//
//	len(recs) * (steps of to per step of from) records
//
// Notes:
//
//	Each source record starts its sub-steps with its own value and blends
//	linearly toward the next record, e.g. for 1h to 30m the weights of the
//	current record are 1.0 and 0.5. A record whose successor is not the next
//	timestep, such as the last record or one before a gap, is held constant.
func Resample(recs []Record, from, to Interval) ([]Record, error) {
	if to.StepsPerHour() < from.StepsPerHour() {
		return nil, fmt.Errorf("%w: cannot resample %s data to %s", ErrInvalidInterval, from, to)
	}

	ratio := to.StepsPerHour() / from.StepsPerHour()
	if ratio == 1 || len(recs) == 0 {
		out := make([]Record, len(recs))
		copy(out, recs)
		return out, nil
	}

	// weight of the current record for each sub-step
	alpha := make([]float64, ratio)
	for j := range alpha {
		alpha[j] = 1.0 - float64(j)/float64(ratio)
	}

	cur := values(recs)
	next := shift(cur, recs, from)

	// blended[j] holds sub-step j of every source record
	blended := make([]*mat.Dense, ratio)
	for j, a := range alpha {
		blended[j] = blend(cur, next, a)
	}

	out := make([]Record, 0, len(recs)*ratio)
	for i, rec := range recs {
		for j := 0; j < ratio; j++ {
			step := rec.Step*ratio + j
			out = append(out, Record{
				DOY:   rec.DOY,
				Step:  step,
				Hour:  to.HourOfDay(step),
				SWRad: blended[j].At(i, colSWRad),
				PAR:   blended[j].At(i, colPAR),
				LAI:   blended[j].At(i, colLAI),
			})
		}
	}

	return out, nil
}

// columns of the matrix built by values
const (
	colSWRad = iota
	colPAR
	colLAI
	nCol
)

// values returns the interpolated variables of recs, one row per record.
func values(recs []Record) *mat.Dense {
	m := mat.NewDense(len(recs), nCol, nil)
	for i, r := range recs {
		m.SetRow(i, []float64{colSWRad: r.SWRad, colPAR: r.PAR, colLAI: r.LAI})
	}
	return m
}

// shift returns the successor of each row. A row whose record is not
// directly followed by the next timestep at interval itv is its own successor.
func shift(m *mat.Dense, recs []Record, itv Interval) *mat.Dense {
	next := mat.DenseCopyOf(m)
	for i := 0; i < len(recs)-1; i++ {
		if follows(recs[i], recs[i+1], itv) {
			next.SetRow(i, m.RawRowView(i+1))
		}
	}
	return next
}

// follows reports whether b is the timestep right after a. The day after the
// last day of the year is day 1.
func follows(a, b Record, itv Interval) bool {
	if a.Step+1 < itv.StepsPerDay() {
		return b.DOY == a.DOY && b.Step == a.Step+1
	}
	if b.Step != 0 {
		return false
	}
	return b.DOY == a.DOY+1 || (a.DOY >= 365 && b.DOY == 1)
}

// blend returns a*cur + (1-a)*next.
func blend(cur, next *mat.Dense, a float64) *mat.Dense {
	var dst mat.Dense
	dst.Sub(cur, next)
	dst.Scale(a, &dst)
	dst.Add(&dst, next)
	return &dst
}
