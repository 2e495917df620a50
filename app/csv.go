package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/AnkushinDaniil/raddeg/entity"
)

// writeCSV writes one series,x,y row per sample. Non-finite values are kept
// and printed as +Inf, -Inf or NaN.
func writeCSV(w io.Writer, lines []*entity.Line) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "x", "y"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, l := range lines {
		for i := range l.Len() {
			x, y := l.At(i)
			record := []string{
				l.Name(),
				strconv.FormatFloat(x, 'g', -1, 64),
				strconv.FormatFloat(y, 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write %s: %w", l.Name(), err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
