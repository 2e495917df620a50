package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AnkushinDaniil/raddeg/decay"
	"github.com/AnkushinDaniil/raddeg/entity"
	"github.com/AnkushinDaniil/raddeg/entity/format"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
)

type App struct {
	Output string
	Params *parameters.Parameters
}

func New(output string, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"mode":   a.Params.Mode,
		"format": a.Params.Format,
		"output": a.Output,
	}).Debug("App started")

	if err := a.Params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	lines, err := Lines(ctx, a.Params)
	if err != nil {
		return fmt.Errorf("failed to compute lines: %w", err)
	}

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := Render(f, a.Params, lines); err != nil {
		return fmt.Errorf("failed to render %s: %w", a.Params.Format, err)
	}
	log.WithFields(log.Fields{
		"time": time.Since(renderTime),
		"path": a.Output,
	}).Info("Chart rendered and saved")

	return nil
}

// Lines evaluates the model selected by p.Mode.
func Lines(ctx context.Context, p *parameters.Parameters) ([]*entity.Line, error) {
	startTime := time.Now()
	var (
		lines []*entity.Line
		err   error
	)
	switch p.Mode {
	case mode.Capacity:
		lines, err = capacityLines(p)
	case mode.Voltage:
		lines, err = voltageLines(ctx, p)
	default:
		return nil, fmt.Errorf("unsupported mode: %s", p.Mode)
	}
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		entry := log.WithFields(log.Fields{
			"name":    line.Name(),
			"samples": line.Len(),
		})
		if n := line.NonFinite(); n > 0 {
			entry.WithField("skipped", n).Warn("Line has non-finite samples")
		}
		entry.Debug("Line created")
	}
	log.WithFields(log.Fields{
		"time":  time.Since(startTime),
		"lines": len(lines),
	}).Debug("Model evaluated")
	return lines, nil
}

func capacityLines(p *parameters.Parameters) ([]*entity.Line, error) {
	m, err := decay.New(p.Decay)
	if err != nil {
		return nil, fmt.Errorf("failed to create decay model: %w", err)
	}
	line, err := m.Curve()
	if err != nil {
		return nil, fmt.Errorf("failed to create line: %w", err)
	}
	return []*entity.Line{line}, nil
}

// voltageLines evaluates every chemistry concurrently; lines keep the
// chemistry order.
func voltageLines(ctx context.Context, p *parameters.Parameters) ([]*entity.Line, error) {
	lines := make([]*entity.Line, len(p.Discharge.Chemistries))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range p.Discharge.Chemistries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := c.Curve(p.Discharge.Samples, p.Discharge.EvalTime)
			if err != nil {
				return fmt.Errorf("failed to create line for %s: %w", c.Name, err)
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Render writes lines in p.Format.
func Render(w io.Writer, p *parameters.Parameters, lines []*entity.Line) error {
	switch p.Format {
	case format.HTML:
		return renderHTML(w, p, lines)
	case format.Csv:
		return writeCSV(w, lines)
	default:
		return fmt.Errorf("unsupported format: %s", p.Format)
	}
}

// DefaultOutput is the file name used when no output is given.
func DefaultOutput(p *parameters.Parameters) string {
	switch p.Mode {
	case mode.Voltage:
		return "Voltage" + p.Format.Extension()
	default:
		return "Capacity" + p.Format.Extension()
	}
}
