package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	ErrEmptyName      = errors.New("name is empty")
	ErrLengthMismatch = errors.New("x and y lengths differ")
)

// Line is a named curve sampled at x.
type Line struct {
	name string
	x    []float64
	y    []float64
}

func NewLine(name string, x, y []float64) (*Line, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	return &Line{name: name, x: x, y: y}, nil
}

func (l *Line) Name() string {
	return l.name
}

func (l *Line) X() []float64 {
	return l.x
}

func (l *Line) Y() []float64 {
	return l.y
}

func (l *Line) Len() int {
	return len(l.y)
}

// At returns the i-th sample.
func (l *Line) At(i int) (x, y float64) {
	return l.x[i], l.y[i]
}

// NonFinite counts samples whose value is NaN or infinite.
func (l *Line) NonFinite() int {
	n := 0
	for _, v := range l.y {
		if !isFinite(v) {
			n++
		}
	}
	return n
}

// Data returns [x, y] pairs for a value-typed x axis. Non-finite samples
// are left out, echarts cannot draw them.
func (l *Line) Data() []opts.LineData {
	data := make([]opts.LineData, 0, len(l.y))
	for i, v := range l.y {
		if !isFinite(v) {
			continue
		}
		data = append(data, opts.LineData{Value: []float64{l.x[i], v}})
	}
	return data
}

// Point is a JSON friendly sample; Y is nil for non-finite values.
type Point struct {
	X float64  `json:"x"`
	Y *float64 `json:"y"`
}

func (l *Line) Points() []Point {
	points := make([]Point, len(l.y))
	for i, v := range l.y {
		points[i].X = l.x[i]
		if isFinite(v) {
			y := v
			points[i].Y = &y
		}
	}
	return points
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
