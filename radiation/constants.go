package radiation

import "math"

// Solar constant, W/m2 (Spitters et al. 1986, eqn 1)
const solarConstant = 1370.0

// Fraction of global radiation that is PAR, used as the clearness proxy.
const fpar = 0.5

// At or below this zenith cosine (zenith angles beyond ~80 degrees) the
// Spitters split treats all radiation as diffuse.
const lowSunCosZenith = 0.17

// Canopy reflection coefficient for diffuse PAR, -
const rhoCD = 0.036

// Canopy reflection coefficient for direct PAR, -
const rhoCB = 0.029

// Leaf scattering coefficient of PAR, -
const omegaPAR = 0.15

// Diffuse and scattered PAR extinction coefficient, -
const kDashD = 0.718

// Numerators of the beam (kb) and beam-and-scattered (k'b) extinction
// coefficients; both are divided by the zenith cosine.
const (
	kbNumerator     = 0.5
	kDashBNumerator = 0.46
)

// MinCosZenith is the smallest zenith cosine for which the absorbed
// radiation model is evaluated. At or below it the extinction coefficients
// are treated as undefined and the sun as set.
const MinCosZenith = 1e-6

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)
