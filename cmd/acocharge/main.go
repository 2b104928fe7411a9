// SPDX-License-Identifier: MIT

// Command acocharge runs a car-to-charger colony from a scenario file and
// prints the best assignment it found.
//
//	acocharge -scenario testdata/two_clusters.yaml -generations 50 -v
//	acocharge -scenario city.yaml -json > best.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/acocharge/aco"
	"github.com/katalvlaran/acocharge/scenario"
)

type config struct {
	scenarioPath string
	generations  int
	seed         int64
	asJSON       bool
	verbose      bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("acocharge: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("acocharge", flag.ContinueOnError)
	fs.StringVar(&cfg.scenarioPath, "scenario", "", "path to a YAML scenario file (required)")
	fs.IntVar(&cfg.generations, "generations", 0, "generations to run; 0 keeps the scenario's value")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed; 0 keeps the scenario's value")
	fs.BoolVar(&cfg.asJSON, "json", false, "print the result as JSON")
	fs.BoolVar(&cfg.verbose, "v", false, "log the best distance after every generation")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.scenarioPath == "" {
		return config{}, errors.New("-scenario is required")
	}
	if cfg.generations < 0 {
		return config{}, fmt.Errorf("-generations=%d, want >= 0", cfg.generations)
	}

	return cfg, nil
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	sc, err := scenario.Load(cfg.scenarioPath)
	if err != nil {
		return err
	}
	if cfg.generations > 0 {
		sc.Generations = cfg.generations
	}
	if cfg.seed != 0 {
		sc.Seed = cfg.seed
	}

	var col *aco.Colony
	hook := func(gen int, _ []aco.Ant) {
		if b, ok := col.Best(); ok {
			log.Printf("generation %d: best %.3f", gen, b.Distance)
		}
	}
	var extra []aco.Option
	if cfg.verbose {
		extra = append(extra, aco.WithGenerationHook(hook))
	}

	col, err = sc.Build(extra...)
	if err != nil {
		return err
	}
	if err = col.RunGenerations(ctx, sc.Generations); err != nil {
		return err
	}

	return report(out, newResult(col.Snapshot()), cfg.asJSON)
}

// result is the printed form of a finished run.
type result struct {
	Generations int          `json:"generations"`
	Ticks       int          `json:"ticks"`
	Distance    *float64     `json:"distance"`
	Assignments []assignment `json:"assignments"`
}

type assignment struct {
	Car     int       `json:"car"`
	Charger int       `json:"charger"`
	From    aco.Point `json:"from"`
	To      aco.Point `json:"to"`
}

func newResult(s aco.Snapshot) result {
	r := result{Generations: s.Generation, Ticks: s.Ticks}
	if s.Best == nil {
		return r
	}
	d := s.Best.Distance
	r.Distance = &d
	for _, a := range s.Assignments() {
		r.Assignments = append(r.Assignments, assignment{
			Car:     a.Car,
			Charger: a.Charger,
			From:    s.Cars[a.Car],
			To:      s.Chargers[a.Charger],
		})
	}

	return r
}

func report(w io.Writer, r result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if r.Distance == nil {
		_, err := fmt.Fprintf(w, "no complete generation after %d ticks\n", r.Ticks)
		return err
	}
	if _, err := fmt.Fprintf(w, "best distance %.3f after %d generations (%d ticks)\n",
		*r.Distance, r.Generations, r.Ticks); err != nil {
		return err
	}
	for _, a := range r.Assignments {
		if _, err := fmt.Fprintf(w, "  car %d (%g,%g) -> charger %d (%g,%g)\n",
			a.Car, a.From.X, a.From.Y, a.Charger, a.To.X, a.To.Y); err != nil {
			return err
		}
	}

	return nil
}
