package radiation

import (
	"fmt"
	"math"
)

// Site is the location of the canopy.
type Site struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
}

// GeometryModel selects the declination and equation-of-time formulas used
// by SolarGeometryWith.
type GeometryModel string

const (
	// DePury uses the de Pury & Farquhar (1997) approximations, A14 and A17.
	DePury GeometryModel = "depury"
	// Spencer uses the Spencer (1971) Fourier-series representation.
	Spencer GeometryModel = "spencer"
)

// Validate reports whether m names a known model.
func (m GeometryModel) Validate() error {
	switch m {
	case DePury, Spencer:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGeometryModel, string(m))
	}
}

// Geometry is the position of the sun for one timestep.
type Geometry struct {
	CosZenith      float64 // cosine of the solar zenith angle, clamped to [0, 1]
	Elevation      float64 // solar elevation, degrees
	Declination    float64 // solar declination, rad
	EquationOfTime float64 // minutes
	SolarNoon      float64 // hours
	HourAngle      float64 // rad
}

// SolarGeometry computes the solar position for a half-hourly timestep.
//
// Args:
//
//	doy: day of year, 1 = 1 January
//	halfHourIndex: index of the half hour within the day, 0..47
//	site: latitude and longitude of the canopy
//
// Returns:
//
//	zenith cosine and elevation along with the intermediate quantities
//
// Notes:
//
//	De Pury & Farquhar (1997) PCE 20, 537-557, A13-A18. The zenith angle and
//	the elevation are complementary so cos(zenith) == sin(elevation).
func SolarGeometry(doy int, halfHourIndex float64, site Site) Geometry {
	gamma := dayAngle(doy)
	return solarGeometry(
		declinationDePury(doy),
		equationOfTimeDePury(gamma),
		halfHourIndex/2.0,
		site,
	)
}

// SolarGeometryWith computes the solar position at hour of day hod
// (0.0..23.5 for half-hourly data) using the given model.
func SolarGeometryWith(model GeometryModel, doy int, hod float64, site Site) (Geometry, error) {
	gamma := dayAngle(doy)

	var dec, et float64
	switch model {
	case DePury:
		dec = declinationDePury(doy)
		et = equationOfTimeDePury(gamma)
	case Spencer:
		dec = declinationSpencer(gamma)
		et = equationOfTimeSpencer(gamma)
	default:
		return Geometry{}, model.Validate()
	}

	return solarGeometry(dec, et, hod, site), nil
}

func solarGeometry(dec, et, hod float64, site Site) Geometry {
	t0 := solarNoon(et, site.Longitude)
	h := hourAngle(hod, t0)
	rlat := site.Latitude * deg2rad

	// A13
	sinBeta := math.Sin(rlat)*math.Sin(dec) + math.Cos(rlat)*math.Cos(dec)*math.Cos(h)

	cosZenith := sinBeta
	if cosZenith > 1.0 {
		cosZenith = 1.0
	} else if cosZenith < 0.0 {
		cosZenith = 0.0
	}

	return Geometry{
		CosZenith:      cosZenith,
		Elevation:      90.0 - math.Acos(cosZenith)*rad2deg,
		Declination:    dec,
		EquationOfTime: et,
		SolarNoon:      t0,
		HourAngle:      h,
	}
}

// dayAngle returns the day angle, rad (A18). A 365 day year is assumed.
func dayAngle(doy int) float64 {
	return 2.0 * math.Pi * (float64(doy) - 1.0) / 365.0
}

// declinationDePury returns the solar declination, rad (A14).
func declinationDePury(doy int) float64 {
	return -23.4 * deg2rad * math.Cos(2.0*math.Pi*float64(doy+10)/365.0)
}

// equationOfTimeDePury returns the equation of time, minutes (A17).
//
// The final term uses gamma and not 2*gamma. Results downstream depend on
// it, so it is kept as published.
func equationOfTimeDePury(gamma float64) float64 {
	return 0.017 + 0.4281*math.Cos(gamma) - 7.351*math.Sin(gamma) -
		3.349*math.Cos(2.0*gamma) - 9.731*math.Sin(gamma)
}

// declinationSpencer returns the solar declination, rad.
func declinationSpencer(gamma float64) float64 {
	return 0.006918 - 0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2.0*gamma) + 0.000907*math.Sin(2.0*gamma) -
		0.002697*math.Cos(3.0*gamma) + 0.00148*math.Sin(3.0*gamma)
}

// equationOfTimeSpencer returns the equation of time, minutes.
func equationOfTimeSpencer(gamma float64) float64 {
	et := 0.000075 + 0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2.0*gamma) - 0.04089*math.Sin(2.0*gamma)

	// radians to minutes
	return et * 229.18
}

// solarNoon returns solar noon in hours (A16). Standard meridians are
// multiples of 15 degrees east or west of Greenwich.
func solarNoon(et, longitude float64) float64 {
	ls := math.Round(longitude/15.0) * 15.0
	return 12.0 + (4.0*(ls-longitude)-et)/60.0
}

// hourAngle returns the hour angle in radians (A15).
func hourAngle(t, t0 float64) float64 {
	return math.Pi * (t - t0) / 12.0
}
