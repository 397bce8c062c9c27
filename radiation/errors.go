package radiation

import "errors"

var (
	// ErrSunBelowHorizon is returned by AbsorbRadiation when the zenith
	// cosine is at or below MinCosZenith.
	ErrSunBelowHorizon = errors.New("sun at or below the horizon")

	ErrUnknownGeometryModel = errors.New("unknown solar geometry model")
	ErrUnknownDiffuseMethod = errors.New("unknown diffuse fraction method")
	ErrUnknownBasis         = errors.New("unknown absorbed radiation basis")
)
