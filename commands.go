package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnkushinDaniil/raddeg/app"
	"github.com/AnkushinDaniil/raddeg/config"
	"github.com/AnkushinDaniil/raddeg/entity/format"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
	"github.com/AnkushinDaniil/raddeg/server"
)

// outputFlags are shared by the model commands.
type outputFlags struct {
	output string
	format format.Format
	quiet  bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	o.format = format.HTML
	flags := cmd.Flags()
	flags.StringVarP(&o.output, "output", "o", "", "output file (default Capacity.html / Voltage.html, extension follows --format)")
	flags.VarP(&o.format, "format", "f", "output format (html, csv)")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "do not print the summary")
}

func (o *outputFlags) run(cmd *cobra.Command, p *parameters.Parameters) error {
	p.Format = o.format
	output := o.output
	if output == "" {
		output = app.DefaultOutput(p)
	}
	if err := app.New(output, p).Run(cmd.Context()); err != nil {
		return err
	}
	if o.quiet {
		return nil
	}
	return app.Summary(cmd.OutOrStdout(), p)
}

func NewCapacityCommand() *cobra.Command {
	var (
		out             outputFlags
		samples         int
		doseRate        float64
		irradiationTime float64
		capacity        float64
	)

	cmd := &cobra.Command{
		Use:     "capacity",
		Aliases: []string{"c"},
		Short:   "Render battery capacity over the irradiation time",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			p.Mode = mode.Capacity

			flags := cmd.Flags()
			if flags.Changed("samples") {
				p.Decay.Samples = samples
			}
			if flags.Changed("dose-rate") {
				p.Decay.DoseRate = doseRate
			}
			if flags.Changed("irradiation-time") {
				p.Decay.IrradiationTime = irradiationTime
			}
			if flags.Changed("capacity") {
				p.Decay.Capacity = capacity
			}
			return out.run(cmd, p)
		},
	}

	out.register(cmd)
	defaults := parameters.Default().Decay
	flags := cmd.Flags()
	flags.IntVar(&samples, "samples", defaults.Samples, "number of time samples")
	flags.Float64Var(&doseRate, "dose-rate", defaults.DoseRate, "dose rate (Gy/s)")
	flags.Float64Var(&irradiationTime, "irradiation-time", defaults.IrradiationTime, "irradiation time (s)")
	flags.Float64Var(&capacity, "capacity", defaults.Capacity, "initial capacity (Ah)")

	return cmd
}

func NewVoltageCommand() *cobra.Command {
	var (
		out         outputFlags
		samples     int
		evalTime    float64
		chemistries []string
	)

	cmd := &cobra.Command{
		Use:     "voltage",
		Aliases: []string{"v"},
		Short:   "Render discharge voltage against discharged capacity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			p.Mode = mode.Voltage

			flags := cmd.Flags()
			if flags.Changed("samples") {
				p.Discharge.Samples = samples
			}
			if flags.Changed("eval-time") {
				p.Discharge.EvalTime = evalTime
			}
			if err := p.Select(chemistries); err != nil {
				return err
			}
			return out.run(cmd, p)
		},
	}

	out.register(cmd)
	defaults := parameters.Default().Discharge
	flags := cmd.Flags()
	flags.IntVar(&samples, "samples", defaults.Samples, "number of charge samples per chemistry")
	flags.Float64Var(&evalTime, "eval-time", defaults.EvalTime, "evaluation time (s)")
	flags.StringSliceVar(&chemistries, "chemistry", nil, "chemistries to render, by name (default all)")

	return cmd
}

func NewServeCommand() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the charts and curves over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch && configPath == "" {
				return fmt.Errorf("--watch requires --config")
			}
			p, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			srv := server.New(p)
			ctx := cmd.Context()
			if watch {
				go func() {
					if err := config.Watch(ctx, configPath, srv.SetParameters); err != nil {
						log.WithError(err).Error("Failed to watch parameters")
					}
				}()
			}
			return srv.Run(ctx, addr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", ":8080", "listen address")
	flags.BoolVarP(&watch, "watch", "w", false, "reload the parameter file when it changes")

	return cmd
}

func NewParamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective parameters as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			return config.Dump(cmd.OutOrStdout(), p)
		},
	}
}
