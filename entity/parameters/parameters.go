package parameters

import (
	"errors"
	"fmt"

	"github.com/AnkushinDaniil/raddeg/decay"
	"github.com/AnkushinDaniil/raddeg/discharge"
	"github.com/AnkushinDaniil/raddeg/entity/format"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
)

const (
	DefaultEnergy  = 1000 // MeV
	DefaultCurrent = 0.8  // mA
)

var (
	ErrNoChemistries      = errors.New("no chemistries")
	ErrUnknownChemistry   = errors.New("unknown chemistry")
	ErrDuplicateChemistry = errors.New("duplicate chemistry")
)

// Beam describes the proton beam the cells are exposed to.
type Beam struct {
	Energy  float64 `yaml:"energy_mev" json:"energyMeV"`
	Current float64 `yaml:"current_ma" json:"currentMA"`
}

type Discharge struct {
	Samples     int                   `yaml:"samples" json:"samples"`
	EvalTime    float64               `yaml:"eval_time" json:"evalTime"`
	Chemistries []discharge.Chemistry `yaml:"chemistries" json:"chemistries"`
}

type Parameters struct {
	Mode   mode.Mode     `yaml:"-" json:"mode"`
	Format format.Format `yaml:"-" json:"format"`

	Beam      Beam         `yaml:"beam" json:"beam"`
	Decay     decay.Params `yaml:"decay" json:"decay"`
	Discharge Discharge    `yaml:"discharge" json:"discharge"`
}

func Default() *Parameters {
	return &Parameters{
		Mode:   mode.Capacity,
		Format: format.HTML,
		Beam: Beam{
			Energy:  DefaultEnergy,
			Current: DefaultCurrent,
		},
		Decay: decay.DefaultParams(),
		Discharge: Discharge{
			Samples:     discharge.DefaultSamples,
			EvalTime:    discharge.DefaultEvalTime,
			Chemistries: discharge.Presets(),
		},
	}
}

func (p *Parameters) Validate() error {
	if err := p.Decay.Validate(); err != nil {
		return fmt.Errorf("decay: %w", err)
	}
	if p.Discharge.Samples < 1 {
		return fmt.Errorf("discharge: %w: %d", discharge.ErrNonPositiveSamples, p.Discharge.Samples)
	}
	if len(p.Discharge.Chemistries) == 0 {
		return fmt.Errorf("discharge: %w", ErrNoChemistries)
	}
	seen := make(map[string]struct{}, len(p.Discharge.Chemistries))
	for _, c := range p.Discharge.Chemistries {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("discharge: %w", err)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("discharge: %w: %s", ErrDuplicateChemistry, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Select keeps only the named chemistries, in the given order. An empty
// list keeps all of them.
func (p *Parameters) Select(names []string) error {
	if len(names) == 0 {
		return nil
	}
	selected := make([]discharge.Chemistry, 0, len(names))
	for _, name := range names {
		c, ok := discharge.Lookup(p.Discharge.Chemistries, name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownChemistry, name)
		}
		selected = append(selected, c)
	}
	p.Discharge.Chemistries = selected
	return nil
}

// Clone returns a deep copy.
func (p *Parameters) Clone() *Parameters {
	c := *p
	c.Discharge.Chemistries = append([]discharge.Chemistry(nil), p.Discharge.Chemistries...)
	return &c
}
