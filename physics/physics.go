package physics

const (
	Faraday     = 96485.0 // Faraday constant (C/mol)
	Temperature = 298.0   // Cell temperature (K)
	GasConstant = 8.314   // Molar gas constant (J/(mol*K))
	ProtonFlux  = 1e15    // Beam proton flux (protons/m^2/s)

	SecondsPerHour = 3600.0 // Ah to C
)

// Fluence returns the accumulated proton fluence after t seconds of exposure.
func Fluence(t float64) float64 {
	return ProtonFlux * t
}
