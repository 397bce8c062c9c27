package radiation

import (
	"fmt"
	"math"
)

// Leaf indexes the two canopy fractions of the two-leaf model.
type Leaf int

const (
	Sunlit Leaf = iota
	Shaded
)

func (l Leaf) String() string {
	switch l {
	case Sunlit:
		return "sunlit"
	case Shaded:
		return "shaded"
	default:
		return fmt.Sprintf("Leaf(%d)", int(l))
	}
}

// Canopy is the canopy state consumed by the absorbed radiation model.
type Canopy struct {
	LAI float64 // leaf area index, m2/m2
	LAD float64 // leaf angle distribution parameter; accepted but not used
}

// Basis selects the area that absorbed radiation is expressed per.
type Basis string

const (
	GroundBasis Basis = "ground"
	LeafBasis   Basis = "leaf"
)

// Validate reports whether b names a known basis.
func (b Basis) Validate() error {
	switch b {
	case GroundBasis, LeafBasis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBasis, string(b))
	}
}

// Absorbed holds the PAR absorbed by the sunlit and shaded fractions of the
// canopy and the leaf area of each fraction.
type Absorbed struct {
	APAR   [2]float64 // indexed by Leaf, ground area basis unless converted
	LAI    [2]float64 // indexed by Leaf
	Canopy float64    // Ic, irradiance absorbed by the whole canopy
}

// Night returns the result for a timestep with no sun: nothing is absorbed
// and all of the leaf area is shaded.
func Night(lai float64) Absorbed {
	return Absorbed{LAI: [2]float64{Sunlit: 0.0, Shaded: lai}}
}

// PerLeafArea returns a copy of a with each APAR divided by the leaf area of
// its fraction. A fraction with no leaf area absorbs zero.
func (a Absorbed) PerLeafArea() Absorbed {
	out := a
	for _, l := range []Leaf{Sunlit, Shaded} {
		if a.LAI[l] > 0.0 {
			out.APAR[l] = a.APAR[l] / a.LAI[l]
		} else {
			out.APAR[l] = 0.0
		}
	}
	return out
}

// AbsorbRadiation calculates the irradiance absorbed by the sunlit and shaded
// fractions of the canopy, on a ground area basis.
//
// Args:
//
//	cosZenith: cosine of the solar zenith angle
//	part: diffuse/direct split of the incoming radiation
//	c: canopy leaf area index and leaf angle distribution
//	par: incident PAR
//
// Returns:
//
//	ErrSunBelowHorizon when cosZenith <= MinCosZenith, the extinction
//	coefficients being undefined there.
//
// Notes:
//
//	De Pury & Farquhar (1997) PCE 20, 537-557, eqns 13, 18, 20b-d.
//	The shaded fraction is the residual of the canopy total.
func AbsorbRadiation(cosZenith float64, part Partition, c Canopy, par float64) (Absorbed, error) {
	if cosZenith <= MinCosZenith {
		return Absorbed{}, ErrSunBelowHorizon
	}

	lai := c.LAI

	// beam radiation extinction coefficient of the canopy
	kb := kbNumerator / cosZenith

	// beam and scattered PAR extinction coefficient
	kDashB := kDashBNumerator / cosZenith

	ib := par * part.DirectFrac
	id := par * part.DiffuseFrac

	// direct-beam irradiance absorbed by sunlit leaves, eqn 20b
	beam := ib * (1.0 - omegaPAR) * attenuated(kb, lai)

	// diffuse irradiance absorbed by sunlit leaves, eqn 20c
	diffuseSunlit := id * (1.0 - rhoCD) * attenuated(kDashD+kb, lai) *
		(kDashD / (kDashD + kb))

	// scattered-beam irradiance absorbed by sunlit leaves, eqn 20d
	scattered := ib * ((1.0-rhoCB)*attenuated(kDashB+kb, lai)*kDashB/(kDashB+kb) -
		(1.0-omegaPAR)*attenuated(2.0*kb, lai)/2.0)

	// irradiance absorbed by the canopy, eqn 13
	ic := (1.0-rhoCB)*ib*attenuated(kDashB, lai) +
		(1.0-rhoCD)*id*attenuated(kDashD, lai)

	var a Absorbed
	a.Canopy = ic
	a.APAR[Sunlit] = beam + scattered + diffuseSunlit
	a.APAR[Shaded] = ic - a.APAR[Sunlit]

	// sunlit leaf area, eqn 18
	a.LAI[Sunlit] = attenuated(kb, lai) / kb
	a.LAI[Shaded] = lai - a.LAI[Sunlit]

	return a, nil
}

// attenuated returns the fraction of radiation intercepted by a canopy of
// leaf area index lai with extinction coefficient k.
func attenuated(k, lai float64) float64 {
	return 1.0 - math.Exp(-k*lai)
}
