package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopyrad/forcing"
	"canopyrad/radiation"
)

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte("site: {latitude: 45.0, longitude: 0.0}\n"))
	require.NoError(t, err)

	want := Default()
	want.Site = SiteConfig{Latitude: 45.0, Longitude: 0.0}
	assert.Equal(t, &want, c)
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, forcing.IntervalM30, c.Interval)
	assert.Equal(t, radiation.Site{}, mustSite(t, c))
}

func TestParse_Full(t *testing.T) {
	doc := `
site:
  name: eucface
canopy:
  lad: 0.8
interval: 15m
forcing_interval: 1h
geometry_model: spencer
diffuse_method: spitters
basis: leaf
par_fraction: 0.45
workers: 4
`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "eucface", c.Site.Name)
	assert.Equal(t, 0.8, c.Canopy.LAD)
	assert.Equal(t, forcing.IntervalM15, c.Interval)
	assert.Equal(t, forcing.IntervalH1, c.ForcingInterval)
	assert.Equal(t, radiation.Spencer, c.GeometryModel)
	assert.Equal(t, radiation.LeafBasis, c.Basis)
	assert.Equal(t, 0.45, c.PARFraction)
	assert.Equal(t, 4, c.Workers)

	m, err := c.Model()
	require.NoError(t, err)
	assert.Equal(t, radiation.Site{Latitude: -33.62, Longitude: 150.74}, m.Site)
	assert.Equal(t, 0.8, m.LAD)
	assert.Equal(t, radiation.Spencer, m.Geometry)
	assert.Equal(t, radiation.MethodSpitters, m.Diffuse)
	assert.Equal(t, radiation.LeafBasis, m.Basis)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"latitude", "site: {latitude: 95}", ErrInvalidConfig},
		{"longitude", "site: {longitude: -181}", ErrInvalidConfig},
		{"site name", "site: {name: nowhere}", forcing.ErrUnknownSite},
		{"lad", "canopy: {lad: 0}", ErrInvalidConfig},
		{"interval", "interval: 10m", forcing.ErrInvalidInterval},
		{"forcing interval", "forcing_interval: 2h", forcing.ErrInvalidInterval},
		{"geometry", "geometry_model: meeus", radiation.ErrUnknownGeometryModel},
		{"diffuse", "diffuse_method: erbs", radiation.ErrUnknownDiffuseMethod},
		{"basis", "basis: canopy", radiation.ErrUnknownBasis},
		{"par fraction", "par_fraction: 1.5", ErrInvalidConfig},
		{"workers", "workers: -2", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestParse_ReportsAllProblems(t *testing.T) {
	_, err := Parse([]byte("interval: 10m\nbasis: canopy\n"))
	assert.ErrorIs(t, err, forcing.ErrInvalidInterval)
	assert.ErrorIs(t, err, radiation.ErrUnknownBasis)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("latitude: 45\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: {name: duke}\nworkers: 2\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func mustSite(t *testing.T, c *Config) radiation.Site {
	t.Helper()
	s, err := c.SiteCoords()
	require.NoError(t, err)
	return s
}
