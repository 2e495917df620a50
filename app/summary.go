package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/AnkushinDaniil/raddeg/decay"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
	"github.com/AnkushinDaniil/raddeg/physics"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.Bold, color.FgGreen)
	red   = color.New(color.Bold, color.FgRed)
)

// Summary prints the scalar results of the selected model.
func Summary(w io.Writer, p *parameters.Parameters) error {
	bold.Fprintf(w, "%s\n", p.Mode.Title())
	fmt.Fprintf(w, "  Beam:            %g MeV, %g mA\n", p.Beam.Energy, p.Beam.Current)

	switch p.Mode {
	case mode.Capacity:
		return capacitySummary(w, p)
	case mode.Voltage:
		return voltageSummary(w, p)
	default:
		return fmt.Errorf("unsupported mode: %s", p.Mode)
	}
}

func capacitySummary(w io.Writer, p *parameters.Parameters) error {
	m, err := decay.New(p.Decay)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Dose rate:       %s\n", green.Sprintf("%g Gy/s", p.Decay.DoseRate))
	fmt.Fprintf(w, "  Total dose:      %s\n", green.Sprintf("%.4g Gy", m.TotalDose()))
	fmt.Fprintf(w, "  Degradation:     %s\n", red.Sprintf("%.2f %%", m.Degradation()*100))
	fmt.Fprintf(w, "  Capacity:        %s -> %s\n",
		green.Sprintf("%.4f Ah", m.CapacityAt(0)),
		red.Sprintf("%.4f Ah", m.CapacityAt(p.Decay.IrradiationTime)))
	return nil
}

func voltageSummary(w io.Writer, p *parameters.Parameters) error {
	t := p.Discharge.EvalTime
	fmt.Fprintf(w, "  Fluence:         %s at t = %g s\n",
		green.Sprintf("%.4g protons/m^2", physics.Fluence(t)), t)
	for _, c := range p.Discharge.Chemistries {
		if err := c.Validate(); err != nil {
			return err
		}
		q := c.ReferenceCharge()
		half := c.Voltage(q/2, t)
		full := c.Voltage(q, t)
		fmt.Fprintf(w, "  %-16s Qref %s  V(n=0.5) %s  V(n=1) %s  [%s]\n",
			c.Name+":",
			green.Sprintf("%g C", q),
			green.Sprintf("%.4f V", half.Voltage),
			green.Sprintf("%.4f V", full.Voltage),
			c.Denominator)
	}
	return nil
}
