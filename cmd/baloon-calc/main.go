package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	kitlog "github.com/go-kit/kit/log"

	baloon "github.com/Mikanister/baloon-calc"
)

// This tool only reads the scenario file and runs the requested calculation.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "trace optimizer iterations")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	sc, err := baloon.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("%s: %s", scenario, err)
	}

	report := baloon.NewReport(sc.Name, sc.Calc)
	switch sc.Mode {
	case "volume":
		r, err := sc.Calc.AtAltitude(sc.Altitude, sc.GasVolume)
		if err != nil {
			log.Fatalf("calculation failed: %s", err)
		}
		report.Results = []baloon.Result{r}
	case "payload":
		r, err := sc.Calc.VolumeForPayload(sc.Altitude, sc.TargetPayload)
		if err != nil {
			log.Fatalf("inverse calculation failed: %s", err)
		}
		report.Results = []baloon.Result{r}
	case "profile":
		results, err := sc.Calc.OverProfile(sc.Profile, sc.GasVolume)
		if err != nil {
			log.Fatalf("profile calculation failed: %s", err)
		}
		report.Results = results
		summary := baloon.Summarize(results)
		report.Summary = &summary
	case "optimal":
		opts := baloon.OptimizeOptions{
			Tolerance:      sc.Tolerance,
			MaxEvaluations: sc.MaxEvaluations,
		}
		if verbose {
			klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
			opts.Logger = kitlog.With(klog, "scenario", sc.Name)
		}
		opt, err := sc.Calc.OptimalHeight(sc.GasVolume, sc.MinAlt, sc.MaxAlt, opts)
		if err != nil {
			log.Fatalf("optimization failed: %s", err)
		}
		report.Optimum = &opt
		report.Results = []baloon.Result{opt.Best}
	}

	if sc.CSVPath != "" {
		f, err := os.Create(sc.CSVPath)
		if err != nil {
			log.Fatalf("cannot create %s: %s", sc.CSVPath, err)
		}
		defer f.Close()
		if err := baloon.WriteResultsCSV(f, report.Results); err != nil {
			log.Fatalf("CSV export failed: %s", err)
		}
	}
	if sc.JSONPath != "" {
		f, err := os.Create(sc.JSONPath)
		if err != nil {
			log.Fatalf("cannot create %s: %s", sc.JSONPath, err)
		}
		defer f.Close()
		if err := report.Write(f); err != nil {
			log.Fatalf("JSON export failed: %s", err)
		}
	}

	for _, r := range report.Results {
		fmt.Printf("h=%7.1f m  lift=%8.3f kg  envelope=%7.3f kg  payload=%8.3f kg\n",
			r.Altitude, r.Lift, r.EnvelopeMass, r.Payload)
	}
	if report.Optimum != nil {
		fmt.Printf("optimum: %.1f m (%s after %d evaluations)\n",
			report.Optimum.Altitude, report.Optimum.StatusText, report.Optimum.Evaluations)
	}
}
