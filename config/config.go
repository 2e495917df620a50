// Package config reads model parameters from a YAML file.
//
// Fields absent from the file keep their defaults. A chemistries list, when
// present, replaces the built-in presets entirely; a chemistry without a
// denominator divides by the discharged charge.
package config

import (
	"bytes"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/raddeg/discharge"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
)

// Load reads and validates the parameter file at path.
func Load(path string) (*parameters.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "config: read file")
	}
	p, err := Parse(data)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "config: %s", path)
	}
	return p, nil
}

// Parse decodes YAML on top of the default parameters.
func Parse(data []byte) (*parameters.Parameters, error) {
	p := parameters.Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && err != io.EOF {
		return nil, pkgerrors.Wrap(err, "parse yaml")
	}

	for i := range p.Discharge.Chemistries {
		if p.Discharge.Chemistries[i].Denominator == "" {
			p.Discharge.Chemistries[i].Denominator = discharge.ChargeDenominator
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadOrDefault returns the defaults when path is empty.
func LoadOrDefault(path string) (*parameters.Parameters, error) {
	if path == "" {
		return parameters.Default(), nil
	}
	return Load(path)
}

// Dump writes p as YAML.
func Dump(w io.Writer, p *parameters.Parameters) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return pkgerrors.Wrap(err, "config: encode yaml")
	}
	return pkgerrors.Wrap(enc.Close(), "config: encode yaml")
}
