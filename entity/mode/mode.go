package mode

import "fmt"

type Mode uint8

const (
	Capacity Mode = iota
	Voltage
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "c", "capacity":
		return Capacity, nil
	case "v", "voltage":
		return Voltage, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Capacity:
		return "capacity"
	case Voltage:
		return "voltage"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Title is the chart page title for the mode.
func (m Mode) Title() string {
	switch m {
	case Capacity:
		return "Battery Capacity over Time"
	case Voltage:
		return "Discharge Voltage after Irradiation"
	default:
		return m.String()
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
