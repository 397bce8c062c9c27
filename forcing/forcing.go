// Package forcing reads the meteorological and canopy forcing that drives the
// radiation model, one record per timestep.
package forcing

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrUnknownSite     = errors.New("unknown site")
	ErrInvalidRecord   = errors.New("invalid forcing record")
	ErrNoRecords       = errors.New("forcing file has no records")
)

// Row is one line of a forcing CSV file.
//
// PAR is kept as text so that a blank cell can be told apart from zero; a
// blank PAR is derived from the shortwave radiation.
type Row struct {
	DOY   int     `csv:"doy"`    // day of year, 1 = 1 January
	Step  int     `csv:"step"`   // timestep index within the day
	SWRad float64 `csv:"sw_rad"` // incident shortwave radiation, W/m2
	PAR   string  `csv:"par"`    // incident PAR, optional
	LAI   float64 `csv:"lai"`    // leaf area index, m2/m2
}

// Record is a validated forcing timestep.
type Record struct {
	DOY   int
	Step  int
	Hour  float64 // hour of day
	SWRad float64
	PAR   float64
	LAI   float64
}

// ReadFile loads forcing rows from a CSV file.
func ReadFile(path string) ([]*Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Read decodes forcing rows from CSV with a header line.
func Read(r io.Reader) ([]*Row, error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}
	return rows, nil
}

// Records validates rows recorded at interval itv and converts them to
// records. A blank PAR is taken as parFraction of the shortwave radiation.
//
// Args:
//
//	rows: rows read from a forcing file
//	itv: timestep of the rows
//	parFraction: fraction of shortwave radiation that is PAR
//
// Returns:
//
//	one record per row, in file order
func Records(rows []*Row, itv Interval, parFraction float64) ([]Record, error) {
	recs := make([]Record, len(rows))
	for i, row := range rows {
		rec, err := row.record(itv, parFraction)
		if err != nil {
			// line 1 is the header
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		recs[i] = rec
	}
	return recs, nil
}

func (row *Row) record(itv Interval, parFraction float64) (Record, error) {
	if row.DOY < 1 || row.DOY > 366 {
		return Record{}, fmt.Errorf("%w: doy %d outside 1..366", ErrInvalidRecord, row.DOY)
	}
	if row.Step < 0 || row.Step >= itv.StepsPerDay() {
		return Record{}, fmt.Errorf("%w: step %d outside 0..%d for %s data",
			ErrInvalidRecord, row.Step, itv.StepsPerDay()-1, itv)
	}
	if math.IsNaN(row.SWRad) || math.IsInf(row.SWRad, 0) {
		return Record{}, fmt.Errorf("%w: sw_rad %v", ErrInvalidRecord, row.SWRad)
	}
	if !(row.LAI >= 0.0) || math.IsInf(row.LAI, 0) {
		return Record{}, fmt.Errorf("%w: lai %v", ErrInvalidRecord, row.LAI)
	}

	par := row.SWRad * parFraction
	if s := strings.TrimSpace(row.PAR); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: par: %v", ErrInvalidRecord, err)
		}
		par = v
	}

	return Record{
		DOY:   row.DOY,
		Step:  row.Step,
		Hour:  itv.HourOfDay(row.Step),
		SWRad: row.SWRad,
		PAR:   par,
		LAI:   row.LAI,
	}, nil
}
