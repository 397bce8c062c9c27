package radiation

import "errors"

// Model chains solar geometry, the diffuse/direct split and the two-leaf
// absorbed radiation model for one site and canopy.
//
// A Model holds no per-timestep state and is safe for concurrent use.
type Model struct {
	Site     Site
	LAD      float64
	Geometry GeometryModel
	Diffuse  DiffuseMethod
	Basis    Basis
}

// NewModel returns a Model using the default formulas: de Pury & Farquhar
// geometry, Spitters partitioning and a ground area basis.
func NewModel(site Site, lad float64) *Model {
	return &Model{
		Site:     site,
		LAD:      lad,
		Geometry: DePury,
		Diffuse:  MethodSpitters,
		Basis:    GroundBasis,
	}
}

// Validate checks the strategy selections of m.
func (m *Model) Validate() error {
	return errors.Join(
		m.Geometry.Validate(),
		m.Diffuse.Validate(),
		m.Basis.Validate(),
	)
}

// StepInput are the driving variables of one timestep.
type StepInput struct {
	DOY   int     // day of year, 1 = 1 January
	Hour  float64 // hour of day, 0.0..23.x
	SWRad float64 // incident shortwave radiation, W/m2
	PAR   float64 // incident PAR
	LAI   float64 // leaf area index, m2/m2
}

// State is the result of one timestep. Each stage fills its own part and
// later stages read earlier parts only through their arguments.
type State struct {
	Geometry  Geometry
	Partition Partition
	Absorbed  Absorbed
}

// Step runs the three stages for one timestep. When the sun is not above the
// horizon the absorbed radiation is zero and all leaf area is shaded.
func (m *Model) Step(in StepInput) (State, error) {
	geom, err := SolarGeometryWith(m.Geometry, in.DOY, in.Hour, m.Site)
	if err != nil {
		return State{}, err
	}

	part, err := DiffuseFraction(m.Diffuse, in.DOY, geom.CosZenith, in.SWRad)
	if err != nil {
		return State{}, err
	}

	abs, err := AbsorbRadiation(geom.CosZenith, part, Canopy{LAI: in.LAI, LAD: m.LAD}, in.PAR)
	switch {
	case errors.Is(err, ErrSunBelowHorizon):
		abs = Night(in.LAI)
	case err != nil:
		return State{}, err
	}

	if m.Basis == LeafBasis {
		abs = abs.PerLeafArea()
	}

	return State{Geometry: geom, Partition: part, Absorbed: abs}, nil
}
