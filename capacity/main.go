package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/raddeg/app"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
)

var (
	DoseRate        = 1.4e-5  // Gy/s
	IrradiationTime = 36000.0 // seconds, 10 hours
	Capacity        = 2.5     // Ah
	Samples         = 100
	Output          = "Capacity.html"
)

func main() {
	p := parameters.Default()
	p.Mode = mode.Capacity
	p.Decay.DoseRate = DoseRate
	p.Decay.IrradiationTime = IrradiationTime
	p.Decay.Capacity = Capacity
	p.Decay.Samples = Samples

	if err := app.New(Output, p).Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	if err := app.Summary(os.Stdout, p); err != nil {
		log.Fatal(err)
	}
}
