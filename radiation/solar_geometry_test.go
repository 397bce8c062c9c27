package radiation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarGeometry_SummerSolsticeNoon(t *testing.T) {
	g := SolarGeometry(172, 24, Site{Latitude: 45.0, Longitude: 0.0})

	assert.InDelta(t, 0.40839191720880413, g.Declination, 1e-12)
	assert.InDelta(t, -6.852225000071481, g.EquationOfTime, 1e-9)
	assert.InDelta(t, 12.114203750001192, g.SolarNoon, 1e-9)
	assert.InDelta(t, -0.029898471834679086, g.HourAngle, 1e-12)
	assert.InDelta(t, 0.9294808821148919, g.CosZenith, 1e-12)
	assert.InDelta(t, 68.35403808340158, g.Elevation, 1e-9)

	// close to the maximum elevation for the latitude, 90 - 45 + 23.4
	assert.InDelta(t, 68.4, g.Elevation, 0.5)

	for _, doy := range []int{1, 80, 266, 355} {
		other := SolarGeometry(doy, 24, Site{Latitude: 45.0, Longitude: 0.0})
		assert.Less(t, other.CosZenith, g.CosZenith, "doy %d", doy)
	}
}

func TestSolarGeometry_OtherDays(t *testing.T) {
	tests := []struct {
		name      string
		doy       int
		idx       float64
		site      Site
		cosZenith float64
		elevation float64
	}{
		{"equinox", 80, 24, Site{45.0, 0.0}, 0.6996320909388464, 44.397494053389785},
		{"winter solstice", 355, 24, Site{45.0, 0.0}, 0.3681227443526784, 21.599888564882832},
		{"southern summer", 1, 24, Site{-33.9, 151.2}, 0.9818722445883359, 79.07383125932147},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := SolarGeometry(tt.doy, tt.idx, tt.site)
			assert.InDelta(t, tt.cosZenith, g.CosZenith, 1e-12)
			assert.InDelta(t, tt.elevation, g.Elevation, 1e-9)
		})
	}
}

func TestSolarGeometry_Night(t *testing.T) {
	g := SolarGeometry(172, 0, Site{Latitude: 45.0, Longitude: 0.0})

	assert.Equal(t, 0.0, g.CosZenith)
	assert.InDelta(t, 0.0, g.Elevation, 1e-12)
}

func TestSolarGeometry_CosZenithRange(t *testing.T) {
	for doy := 1; doy <= 366; doy += 5 {
		for idx := 0; idx < 48; idx++ {
			for _, lat := range []float64{-90, -66.5, -23.4, 0, 23.4, 45, 66.5, 90} {
				g := SolarGeometry(doy, float64(idx), Site{Latitude: lat, Longitude: 12.0})
				require.GreaterOrEqual(t, g.CosZenith, 0.0)
				require.LessOrEqual(t, g.CosZenith, 1.0)
				require.False(t, math.IsNaN(g.Elevation))
			}
		}
	}
}

func TestSolarGeometryWith_DePuryMatchesHalfHourForm(t *testing.T) {
	site := Site{Latitude: 51.5, Longitude: -0.1}
	for idx := 0; idx < 48; idx++ {
		want := SolarGeometry(200, float64(idx), site)
		got, err := SolarGeometryWith(DePury, 200, float64(idx)/2.0, site)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSolarGeometryWith_Spencer(t *testing.T) {
	g, err := SolarGeometryWith(Spencer, 172, 12.0, Site{Latitude: 45.0, Longitude: 0.0})
	require.NoError(t, err)

	assert.InDelta(t, 0.40931542032971796, g.Declination, 1e-12)
	assert.InDelta(t, -1.3246129603053172, g.EquationOfTime, 1e-9)
	assert.InDelta(t, 0.9300996626833721, g.CosZenith, 1e-12)
	assert.InDelta(t, 68.45035589998571, g.Elevation, 1e-9)
}

func TestSolarGeometryWith_UnknownModel(t *testing.T) {
	_, err := SolarGeometryWith(GeometryModel("meeus"), 172, 12.0, Site{})
	assert.ErrorIs(t, err, ErrUnknownGeometryModel)
}

func TestDeclination_Periodic(t *testing.T) {
	for doy := 1; doy <= 365; doy++ {
		assert.InDelta(t, declinationDePury(doy), declinationDePury(doy+365), 1e-12)
		assert.InDelta(t, math.Cos(dayAngle(doy)), math.Cos(dayAngle(doy+365)), 1e-12)
		assert.InDelta(t, math.Sin(dayAngle(doy)), math.Sin(dayAngle(doy+365)), 1e-12)
	}
}

func TestDeclination_Bounds(t *testing.T) {
	for doy := 1; doy <= 365; doy++ {
		d := declinationDePury(doy) * rad2deg
		assert.LessOrEqual(t, math.Abs(d), 23.4+1e-9)
	}
}

func TestSolarNoon_StandardMeridian(t *testing.T) {
	tests := []struct {
		longitude float64
		want      float64
	}{
		{0.0, 12.0},
		{15.0, 12.0},
		{10.0, 12.0 + 4.0*5.0/60.0},   // meridian 15
		{7.5, 12.0 + 4.0*7.5/60.0},    // half rounds away from zero
		{-7.5, 12.0 - 4.0*7.5/60.0},   // meridian -15
		{-122.3, 12.0 + 4.0*2.3/60.0}, // meridian -120
		{151.2, 12.0 - 4.0*1.2/60.0},  // meridian 150
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, solarNoon(0.0, tt.longitude), 1e-12, "longitude %v", tt.longitude)
	}

	// a positive equation of time moves noon earlier
	assert.InDelta(t, 11.9, solarNoon(6.0, 0.0), 1e-12)
}

func TestHourAngle(t *testing.T) {
	assert.Equal(t, 0.0, hourAngle(12.0, 12.0))
	assert.InDelta(t, math.Pi/2.0, hourAngle(18.0, 12.0), 1e-15)
	assert.InDelta(t, -math.Pi, hourAngle(0.0, 12.0), 1e-15)
}

func TestGeometryModel_Validate(t *testing.T) {
	assert.NoError(t, DePury.Validate())
	assert.NoError(t, Spencer.Validate())
	assert.ErrorIs(t, GeometryModel("").Validate(), ErrUnknownGeometryModel)
}
