package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Csv
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Csv:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

func (f Format) Extension() string {
	return "." + f.String()
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Set and Type let Format be used as a pflag.Value.
func (f *Format) Set(text string) error {
	v, err := UnmarshalText(text)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string {
	return "format"
}
