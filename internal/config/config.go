// Package config loads the YAML run configuration of the command line driver.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"canopyrad/forcing"
	"canopyrad/radiation"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// SiteConfig locates the canopy, either by preset name or by coordinates.
type SiteConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// CanopyConfig holds the canopy parameters that do not vary by timestep.
type CanopyConfig struct {
	LAD float64 `yaml:"lad"`
}

// Config is a run configuration.
type Config struct {
	Site            SiteConfig              `yaml:"site"`
	Canopy          CanopyConfig            `yaml:"canopy"`
	Interval        forcing.Interval        `yaml:"interval"`
	ForcingInterval forcing.Interval        `yaml:"forcing_interval"`
	GeometryModel   radiation.GeometryModel `yaml:"geometry_model"`
	DiffuseMethod   radiation.DiffuseMethod `yaml:"diffuse_method"`
	Basis           radiation.Basis         `yaml:"basis"`
	PARFraction     float64                 `yaml:"par_fraction"`
	Workers         int                     `yaml:"workers"`
}

// Default returns the configuration used for settings a file leaves out.
func Default() Config {
	return Config{
		Canopy:          CanopyConfig{LAD: 1.0},
		Interval:        forcing.IntervalM30,
		ForcingInterval: forcing.IntervalM30,
		GeometryModel:   radiation.DePury,
		DiffuseMethod:   radiation.MethodSpitters,
		Basis:           radiation.GroundBasis,
		PARFraction:     0.5,
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(b []byte) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every setting and reports all problems found.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.SiteCoords(); err != nil {
		errs = append(errs, err)
	}
	if !(c.Canopy.LAD > 0.0) {
		errs = append(errs, fmt.Errorf("%w: canopy.lad must be positive, got %v", ErrInvalidConfig, c.Canopy.LAD))
	}
	if _, err := forcing.ParseInterval(string(c.Interval)); err != nil {
		errs = append(errs, fmt.Errorf("interval: %w", err))
	}
	if _, err := forcing.ParseInterval(string(c.ForcingInterval)); err != nil {
		errs = append(errs, fmt.Errorf("forcing_interval: %w", err))
	}
	if err := c.GeometryModel.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.DiffuseMethod.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Basis.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !(c.PARFraction > 0.0 && c.PARFraction <= 1.0) {
		errs = append(errs, fmt.Errorf("%w: par_fraction must be in (0, 1], got %v", ErrInvalidConfig, c.PARFraction))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers))
	}

	return errors.Join(errs...)
}

// SiteCoords resolves the site to coordinates. A preset name takes
// precedence over explicit coordinates.
func (c *Config) SiteCoords() (radiation.Site, error) {
	if c.Site.Name != "" {
		return forcing.LookupSite(c.Site.Name)
	}
	if c.Site.Latitude < -90.0 || c.Site.Latitude > 90.0 {
		return radiation.Site{}, fmt.Errorf("%w: site.latitude %v outside -90..90", ErrInvalidConfig, c.Site.Latitude)
	}
	if c.Site.Longitude < -180.0 || c.Site.Longitude > 180.0 {
		return radiation.Site{}, fmt.Errorf("%w: site.longitude %v outside -180..180", ErrInvalidConfig, c.Site.Longitude)
	}
	return radiation.Site{Latitude: c.Site.Latitude, Longitude: c.Site.Longitude}, nil
}

// Model returns the radiation model described by c.
func (c *Config) Model() (*radiation.Model, error) {
	site, err := c.SiteCoords()
	if err != nil {
		return nil, err
	}

	m := radiation.NewModel(site, c.Canopy.LAD)
	m.Geometry = c.GeometryModel
	m.Diffuse = c.DiffuseMethod
	m.Basis = c.Basis
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
