// Package discharge models the discharge voltage of a two-species cell as a
// function of the charge drawn from it.
//
// For a discharge fraction n = q/Qref the two branch currents are
//
//	ia = sqrt(Ca*n)/Ra, ib = sqrt(Cb*(1-n))/Rb
//
// and the cell voltage is V = -ia*Ra - ib*Rb - dV/dt, where dV/dt is the
// diffusion term built from the species concentrations ca = ia/(2*Ka*epsA)
// and cb = ib/(2*Kb*epsB).
package discharge

import (
	"errors"
	"fmt"
	"math"

	"github.com/AnkushinDaniil/raddeg/entity"
	"github.com/AnkushinDaniil/raddeg/physics"
	"github.com/AnkushinDaniil/raddeg/sample"
)

const (
	DefaultSamples = 1000

	// DefaultEvalTime is the last point of a 1000-sample sweep over one hour.
	DefaultEvalTime = 3600.0
)

// Denominator selects what the diffusion term is divided by.
type Denominator string

const (
	// ChargeDenominator divides by the discharged charge q.
	ChargeDenominator Denominator = "charge"
	// FaradayDenominator divides by n*F.
	FaradayDenominator Denominator = "faraday"
)

var (
	ErrEmptyName          = errors.New("chemistry name is empty")
	ErrNonPositiveParam   = errors.New("parameter must be positive")
	ErrUnknownDenominator = errors.New("unknown denominator")
	ErrNonPositiveSamples = errors.New("samples must be positive")
)

// Chemistry holds the two-species parameter set of one battery type.
type Chemistry struct {
	Name string `yaml:"name" json:"name"`

	CapacityA float64 `yaml:"capacity_a" json:"capacityA"` // Ah
	CapacityB float64 `yaml:"capacity_b" json:"capacityB"` // Ah

	ResistanceA float64 `yaml:"resistance_a" json:"resistanceA"` // ohm
	ResistanceB float64 `yaml:"resistance_b" json:"resistanceB"` // ohm

	ConductivityA float64 `yaml:"conductivity_a" json:"conductivityA"` // S/m
	ConductivityB float64 `yaml:"conductivity_b" json:"conductivityB"` // S/m

	DiffusivityA float64 `yaml:"diffusivity_a" json:"diffusivityA"` // m^2/s
	DiffusivityB float64 `yaml:"diffusivity_b" json:"diffusivityB"` // m^2/s

	InterfaceA float64 `yaml:"interface_a" json:"interfaceA"` // S/m^2
	InterfaceB float64 `yaml:"interface_b" json:"interfaceB"` // S/m^2

	PorosityA float64 `yaml:"porosity_a" json:"porosityA"`
	PorosityB float64 `yaml:"porosity_b" json:"porosityB"`

	Denominator Denominator `yaml:"denominator" json:"denominator"`
}

func (c Chemistry) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	positive := []struct {
		name  string
		value float64
	}{
		{"capacity_a", c.CapacityA},
		{"capacity_b", c.CapacityB},
		{"resistance_a", c.ResistanceA},
		{"resistance_b", c.ResistanceB},
		{"conductivity_a", c.ConductivityA},
		{"conductivity_b", c.ConductivityB},
		{"porosity_a", c.PorosityA},
		{"porosity_b", c.PorosityB},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%s: %w: %s = %v", c.Name, ErrNonPositiveParam, p.name, p.value)
		}
	}
	switch c.Denominator {
	case ChargeDenominator, FaradayDenominator:
	default:
		return fmt.Errorf("%s: %w: %q", c.Name, ErrUnknownDenominator, c.Denominator)
	}
	return nil
}

// ReferenceCharge is the nominal charge of species A in coulombs.
func (c Chemistry) ReferenceCharge() float64 {
	return c.CapacityA * physics.SecondsPerHour
}

// Terms are the intermediate and final values of one voltage evaluation.
type Terms struct {
	Fraction       float64 // n
	CurrentA       float64
	CurrentB       float64
	ConcentrationA float64
	ConcentrationB float64
	Diffusion      float64 // dV/dt
	Voltage        float64
}

// Voltage evaluates the model at discharged charge q (C). The evaluation
// time t does not enter the formula.
//
// q = 0 yields +Inf, q > ReferenceCharge yields NaN.
func (c Chemistry) Voltage(q, t float64) Terms {
	var r Terms
	r.Fraction = q / c.ReferenceCharge()
	r.CurrentA = math.Sqrt(c.CapacityA*r.Fraction) / c.ResistanceA
	r.CurrentB = math.Sqrt(c.CapacityB*(1-r.Fraction)) / c.ResistanceB
	r.ConcentrationA = r.CurrentA / (2 * c.ConductivityA * c.PorosityA)
	r.ConcentrationB = r.CurrentB / (2 * c.ConductivityB * c.PorosityB)

	den := q
	if c.Denominator == FaradayDenominator {
		den = r.Fraction * physics.Faraday
	}
	r.Diffusion = -physics.GasConstant * physics.Temperature / den *
		(r.ConcentrationA*c.InterfaceA*c.DiffusivityA*c.PorosityA +
			r.ConcentrationB*c.InterfaceB*c.DiffusivityB*c.PorosityB)

	r.Voltage = -r.CurrentA*c.ResistanceA - r.CurrentB*c.ResistanceB - r.Diffusion
	return r
}

// Curve sweeps q over [0, ReferenceCharge] and returns voltage against
// discharged capacity in Ah.
func (c Chemistry) Curve(samples int, t float64) (*entity.Line, error) {
	if samples < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveSamples, samples)
	}
	q := sample.Linspace(0, c.ReferenceCharge(), samples)
	ah := make([]float64, len(q))
	v := make([]float64, len(q))
	for i := range q {
		ah[i] = q[i] / physics.SecondsPerHour
		v[i] = c.Voltage(q[i], t).Voltage
	}
	return entity.NewLine(c.Name, ah, v)
}
