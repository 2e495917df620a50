// Package decay models irreversible capacity loss of a cell under a
// constant radiation dose rate.
package decay

import (
	"errors"
	"fmt"
	"math"

	"github.com/AnkushinDaniil/raddeg/entity"
	"github.com/AnkushinDaniil/raddeg/sample"
)

const (
	DefaultDoseRate        = 1.4e-5  // Gy/s
	DefaultIrradiationTime = 36000.0 // s, 10 hours
	DefaultCapacity        = 2.5     // Ah
	DefaultSamples         = 100

	CurveName = "Capacity"
)

var (
	ErrNegativeDoseRate           = errors.New("dose rate must not be negative")
	ErrNonPositiveIrradiationTime = errors.New("irradiation time must be positive")
	ErrNonPositiveCapacity        = errors.New("capacity must be positive")
	ErrNonPositiveSamples         = errors.New("samples must be positive")
)

type Params struct {
	DoseRate        float64 `yaml:"dose_rate" json:"doseRate"`
	IrradiationTime float64 `yaml:"irradiation_time" json:"irradiationTime"`
	Capacity        float64 `yaml:"capacity" json:"capacity"`
	Samples         int     `yaml:"samples" json:"samples"`
}

func DefaultParams() Params {
	return Params{
		DoseRate:        DefaultDoseRate,
		IrradiationTime: DefaultIrradiationTime,
		Capacity:        DefaultCapacity,
		Samples:         DefaultSamples,
	}
}

func (p Params) Validate() error {
	switch {
	case p.DoseRate < 0 || math.IsNaN(p.DoseRate):
		return fmt.Errorf("%w: %v", ErrNegativeDoseRate, p.DoseRate)
	case !(p.IrradiationTime > 0):
		return fmt.Errorf("%w: %v", ErrNonPositiveIrradiationTime, p.IrradiationTime)
	case !(p.Capacity > 0):
		return fmt.Errorf("%w: %v", ErrNonPositiveCapacity, p.Capacity)
	case p.Samples < 1:
		return fmt.Errorf("%w: %d", ErrNonPositiveSamples, p.Samples)
	}
	return nil
}

type Model struct {
	params      Params
	totalDose   float64
	degradation float64
}

func New(params Params) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	totalDose := params.DoseRate * params.IrradiationTime
	return &Model{
		params:      params,
		totalDose:   totalDose,
		degradation: 1 - math.Exp(-totalDose/params.Capacity),
	}, nil
}

func (m *Model) Params() Params {
	return m.params
}

// TotalDose is the dose absorbed over the whole irradiation, Gy.
func (m *Model) TotalDose() float64 {
	return m.totalDose
}

// Degradation is the fraction of capacity lost to the accumulated dose.
func (m *Model) Degradation() float64 {
	return m.degradation
}

// CapacityAt returns the remaining capacity after t seconds of irradiation.
func (m *Model) CapacityAt(t float64) float64 {
	return m.params.Capacity * math.Exp(-t*m.degradation/m.params.IrradiationTime)
}

// Curve samples CapacityAt over [0, IrradiationTime].
func (m *Model) Curve() (*entity.Line, error) {
	t := sample.Linspace(0, m.params.IrradiationTime, m.params.Samples)
	c := make([]float64, len(t))
	for i := range t {
		c[i] = m.CapacityAt(t[i])
	}
	return entity.NewLine(CurveName, t, c)
}
