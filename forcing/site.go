package forcing

import (
	"fmt"
	"sort"
	"strings"

	"canopyrad/radiation"
)

// sites are named experimental sites whose coordinates can be referred to by
// name in a run configuration.
var sites = map[string]radiation.Site{
	"duke":        {Latitude: 35.97, Longitude: -79.09},  // Duke FACE, North Carolina
	"oakridge":    {Latitude: 35.90, Longitude: -84.33},  // Oak Ridge FACE, Tennessee
	"rhinelander": {Latitude: 45.67, Longitude: -89.63},  // Aspen FACE, Wisconsin
	"eucface":     {Latitude: -33.62, Longitude: 150.74}, // EucFACE, New South Wales
	"hyytiala":    {Latitude: 61.85, Longitude: 24.29},   // Hyytiala, Finland
	"tumbarumba":  {Latitude: -35.66, Longitude: 148.15}, // Tumbarumba, New South Wales
}

// LookupSite returns the coordinates of a named site.
func LookupSite(name string) (radiation.Site, error) {
	s, ok := sites[name]
	if !ok {
		return radiation.Site{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSite, name, strings.Join(SiteNames(), ", "))
	}
	return s, nil
}

// SiteNames returns the names accepted by LookupSite, sorted.
func SiteNames() []string {
	names := make([]string, 0, len(sites))
	for name := range sites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
