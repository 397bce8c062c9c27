package radiation

import (
	"fmt"
	"math"
)

// DiffuseMethod selects the algorithm that splits measured irradiance into
// its diffuse and direct components.
type DiffuseMethod string

// MethodSpitters is the only method implemented.
const MethodSpitters DiffuseMethod = "spitters"

// Validate reports whether m names a known method.
func (m DiffuseMethod) Validate() error {
	if m == MethodSpitters {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDiffuseMethod, string(m))
}

// Partition is the diffuse/direct split of incoming radiation.
type Partition struct {
	DiffuseFrac      float64 // [0, 1]
	DirectFrac       float64 // 1 - DiffuseFrac
	ExtraTerrestrial float64 // So, W/m2
	Clearness        float64 // atmospheric transmissivity tau, [0, 1]
}

// DiffuseFraction dispatches to the selected method.
func DiffuseFraction(method DiffuseMethod, doy int, cosZenith, swRad float64) (Partition, error) {
	if err := method.Validate(); err != nil {
		return Partition{}, err
	}
	return Spitters(doy, cosZenith, swRad), nil
}

// Spitters estimates the diffuse component from the measured irradiance.
//
// Args:
//
//	doy: day of year
//	cosZenith: cosine of the solar zenith angle
//	swRad: total incident shortwave radiation, W/m2
//
// Notes:
//
//	Spitters, Toussaint & Goudriaan (1986) AFM 38, 217-229, eqn 20a-d.
//	The branches are evaluated in order; K moves with the sun angle.
func Spitters(doy int, cosZenith, swRad float64) Partition {
	so := ExtraTerrestrial(doy, cosZenith)
	tau := Clearness(swRad, so)

	diffuse := 1.0
	if cosZenith > lowSunCosZenith {
		r := 0.847 - 1.61*cosZenith + 1.04*cosZenith*cosZenith
		k := (1.47 - r) / 1.66
		switch {
		case tau <= 0.22:
			diffuse = 1.0
		case tau <= 0.35:
			diffuse = 1.0 - 6.4*(tau-0.22)*(tau-0.22)
		case tau <= k:
			diffuse = 1.47 - 1.66*tau
		default:
			diffuse = r
		}
	}
	diffuse = math.Max(0.0, math.Min(1.0, diffuse))

	return Partition{
		DiffuseFrac:      diffuse,
		DirectFrac:       1.0 - diffuse,
		ExtraTerrestrial: so,
		Clearness:        tau,
	}
}

// ExtraTerrestrial returns the solar radiation incident outside the
// atmosphere on a horizontal plane, W/m2 (Spitters et al. 1986, eqn 1).
// It is zero when the sun is not above the horizon.
func ExtraTerrestrial(doy int, cosZenith float64) float64 {
	if cosZenith <= 0.0 {
		return 0.0
	}
	return solarConstant * (1.0 + 0.033*math.Cos(float64(doy)/365.0*2.0*math.Pi)) * cosZenith
}

// Clearness estimates atmospheric transmissivity as the ratio of the PAR part
// of global radiation to the extra-terrestrial radiation, clamped to [0, 1].
func Clearness(swRad, so float64) float64 {
	if so <= 0.0 {
		return 0.0
	}
	tau := swRad * fpar / so
	return math.Max(0.0, math.Min(1.0, tau))
}
