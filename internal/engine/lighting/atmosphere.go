package lighting

import "github.com/Faultbox/planet-atmosphere/pkg/math"

// Rayleigh scaling reference: BaseRayleigh is the coefficient for a planet
// of ReferenceRadius units; smaller planets scatter more per unit length.
var BaseRayleigh = math.Vec3{X: 0.0025, Y: 0.0058, Z: 0.014}

const ReferenceRadius float32 = 686.0

// ScaledRayleigh returns BaseRayleigh scaled by (ReferenceRadius/radius)².
func ScaledRayleigh(planetRadius float32) math.Vec3 {
	k := ReferenceRadius / planetRadius
	return BaseRayleigh.Scale(k * k)
}

// Atmosphere bundles the scattering inputs for the atmosphere shader.
// These are coefficients only; the scattering integral runs on the GPU.
type Atmosphere struct {
	PlanetRadius     float32
	AtmosphereRadius float32

	ViewSamples  int32
	LightSamples int32
	SunIntensity float32

	RayleighScattering math.Vec3 // rCoeff
	MieScattering      float32   // mCoeff
	RayleighHeight     float32   // rHeight, scale height
	MieHeight          float32   // mHeight, scale height
	MieAnisotropy      float32   // g, Henyey-Greenstein asymmetry
	ToneMapping        float32

	// Radius-scaled Rayleigh coefficient (see ScaledRayleigh). The shader
	// consumes its spectral shape only.
	RayleighCoefficient math.Vec3
}

// AtmosphereScale is the atmosphere shell radius relative to the planet.
const AtmosphereScale float32 = 1.1

// DefaultAtmosphere returns the tuned parameter set for a planet of the given radius.
func DefaultAtmosphere(planetRadius float32) Atmosphere {
	return Atmosphere{
		PlanetRadius:     planetRadius,
		AtmosphereRadius: planetRadius * AtmosphereScale,

		ViewSamples:  16,
		LightSamples: 8,
		SunIntensity: 20,

		RayleighScattering: math.Vec3{X: 5.8e-3, Y: 13.5e-3, Z: 33.1e-3},
		MieScattering:      21e-3,
		RayleighHeight:     7.994,
		MieHeight:          1.2,
		MieAnisotropy:      0.888,
		ToneMapping:        0,

		RayleighCoefficient: ScaledRayleigh(planetRadius),
	}
}
