package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/raddeg/app"
	"github.com/AnkushinDaniil/raddeg/discharge"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
	"github.com/AnkushinDaniil/raddeg/sample"
)

var (
	Duration    = 3600.0 // seconds
	TimeSamples = 1000   // over Duration
	Samples     = 1000   // per chemistry
	Output      = "Voltage.html"
)

func main() {
	// the model is evaluated at the end of the time sweep
	t := sample.Linspace(0, Duration, TimeSamples)

	p := parameters.Default()
	p.Mode = mode.Voltage
	p.Discharge.Samples = Samples
	p.Discharge.EvalTime = t[len(t)-1]
	p.Discharge.Chemistries = []discharge.Chemistry{
		discharge.LithiumIon(),
		discharge.SilverZinc(),
		discharge.NickelHydrogen(),
	}

	if err := app.New(Output, p).Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	if err := app.Summary(os.Stdout, p); err != nil {
		log.Fatal(err)
	}
}
