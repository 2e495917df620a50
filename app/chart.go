package app

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/raddeg/entity"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
)

func renderHTML(w io.Writer, p *parameters.Parameters, lines []*entity.Line) error {
	switch p.Mode {
	case mode.Capacity:
		return capacityChart(p, lines).Render(w)
	case mode.Voltage:
		return voltagePage(p, lines).Render(w)
	default:
		return fmt.Errorf("unsupported mode: %s", p.Mode)
	}
}

func capacityChart(p *parameters.Parameters, lines []*entity.Line) *charts.Line {
	subtitle := fmt.Sprintf("%g MeV, %g mA, %g Gy/s for %g s",
		p.Beam.Energy, p.Beam.Current, p.Decay.DoseRate, p.Decay.IrradiationTime)
	line := newChart(mode.Capacity.Title(), subtitle, "Time (s)", "Capacity (Ah)")
	for _, l := range lines {
		line.AddSeries(l.Name(), l.Data())
	}
	return line
}

// voltagePage lays out one chart per chemistry side by side.
func voltagePage(p *parameters.Parameters, lines []*entity.Line) *components.Page {
	page := components.NewPage()
	page.PageTitle = mode.Voltage.Title()
	page.SetLayout(components.PageFlexLayout)

	subtitle := fmt.Sprintf("t = %g s", p.Discharge.EvalTime)
	for _, l := range lines {
		line := newChart(l.Name(), subtitle, "Discharge Capacity (Ah)", "Voltage (V)")
		line.AddSeries(l.Name(), l.Data())
		page.AddCharts(line)
	}
	return page
}

func newChart(title, subtitle, xName, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:        opts.Bool(true),
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "cross", Snap: opts.Bool(true)},
		}),
		charts.WithToolboxOpts(toolbox(title)),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value", SplitLine: splitLine()}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value", Scale: opts.Bool(true), SplitLine: splitLine()}),
	)
	line.SetGlobalOptions(zoom()...)
	return line
}

// zoom adds a slider and mouse-wheel zoom over the x axis.
func zoom() []charts.GlobalOpts {
	var zooms []charts.GlobalOpts
	for _, kind := range []string{"slider", "inside"} {
		zooms = append(zooms, charts.WithDataZoomOpts(opts.DataZoom{
			Type:       kind,
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}))
	}
	return zooms
}

// toolbox saves the chart under its title and exposes the raw data.
func toolbox(title string) opts.Toolbox {
	return opts.Toolbox{
		Show: opts.Bool(true),
		Top:  "0%",
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  opts.Bool(true),
				Type:  "png",
				Name:  title,
				Title: "Save as PNG",
			},
			DataZoom: &opts.ToolBoxFeatureDataZoom{
				Show:       opts.Bool(true),
				YAxisIndex: "none",
				Title:      map[string]string{"zoom": "Zoom", "back": "Undo zoom"},
			},
			DataView: &opts.ToolBoxFeatureDataView{
				Show:  opts.Bool(true),
				Title: "Data",
				Lang:  []string{"data", "close", "refresh"},
			},
			Restore: &opts.ToolBoxFeatureRestore{Show: opts.Bool(true), Title: "Reset"},
		},
	}
}

func splitLine() *opts.SplitLine {
	return &opts.SplitLine{Show: opts.Bool(true)}
}
