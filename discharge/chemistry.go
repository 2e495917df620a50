package discharge

import "strings"

func LithiumIon() Chemistry {
	return Chemistry{
		Name:          "Lithium-ion",
		CapacityA:     4.0,
		CapacityB:     3.5,
		ResistanceA:   0.05,
		ResistanceB:   0.1,
		ConductivityA: 2.5e-4,
		ConductivityB: 1.5e-4,
		DiffusivityA:  1.6e-10,
		DiffusivityB:  1.2e-10,
		InterfaceA:    4000,
		InterfaceB:    3500,
		PorosityA:     0.3,
		PorosityB:     0.2,
		Denominator:   ChargeDenominator,
	}
}

func SilverZinc() Chemistry {
	return Chemistry{
		Name:          "Silver-zinc",
		CapacityA:     2.5,
		CapacityB:     2.0,
		ResistanceA:   0.08,
		ResistanceB:   0.12,
		ConductivityA: 2.0e-4,
		ConductivityB: 1.0e-4,
		DiffusivityA:  2.0e-10,
		DiffusivityB:  1.5e-10,
		InterfaceA:    3500,
		InterfaceB:    3000,
		PorosityA:     0.25,
		PorosityB:     0.15,
		Denominator:   ChargeDenominator,
	}
}

// NickelHydrogen divides the diffusion term by n*F rather than q.
func NickelHydrogen() Chemistry {
	return Chemistry{
		Name:          "Nickel-hydrogen",
		CapacityA:     3.5,
		CapacityB:     3.0,
		ResistanceA:   0.06,
		ResistanceB:   0.08,
		ConductivityA: 1.5e-4,
		ConductivityB: 1.0e-4,
		DiffusivityA:  1.8e-10,
		DiffusivityB:  1.3e-10,
		InterfaceA:    3000,
		InterfaceB:    2500,
		PorosityA:     0.2,
		PorosityB:     0.1,
		Denominator:   FaradayDenominator,
	}
}

func Presets() []Chemistry {
	return []Chemistry{LithiumIon(), SilverZinc(), NickelHydrogen()}
}

// Lookup finds a chemistry by name, case-insensitively.
func Lookup(chemistries []Chemistry, name string) (Chemistry, bool) {
	for _, c := range chemistries {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Chemistry{}, false
}
