package forcing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSite(t *testing.T) {
	s, err := LookupSite("duke")
	require.NoError(t, err)
	assert.Equal(t, 35.97, s.Latitude)
	assert.Equal(t, -79.09, s.Longitude)

	_, err = LookupSite("atlantis")
	assert.ErrorIs(t, err, ErrUnknownSite)
	assert.ErrorContains(t, err, "duke, eucface, hyytiala, oakridge, rhinelander, tumbarumba")
}

func TestSiteNames(t *testing.T) {
	names := SiteNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "eucface")
	for _, name := range names {
		s, err := LookupSite(name)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Latitude, 90.0)
		assert.GreaterOrEqual(t, s.Latitude, -90.0)
	}
}
