// Command life-trace runs the Game of Life headlessly, optionally printing
// each generation to the console, and reports per-tick timing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"life-ca/internal/app"
	"life-ca/internal/core"
	"life-ca/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate")
	show := flag.Bool("print", false, "render each generation to stdout")
	flag.Parse()

	seeder, err := cfg.Seeder()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	uni := life.NewSeeded(cfg.Width, cfg.Height, seeder)
	pacer := core.NewFixedStep(cfg.TPS)
	var timer core.TickTimer

	fmt.Printf("Running %d generations on a %dx%d board (pattern=%s)\n",
		*steps, uni.Width(), uni.Height(), cfg.Pattern)

	for done := 0; done < *steps; {
		if *show && !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		start := time.Now()
		uni.Tick()
		timer.Observe(time.Since(start))
		done++

		if *show {
			fmt.Printf("generation %d, population %d\n%s", done, uni.Population(), uni)
		}
	}

	fmt.Printf("Final population: %d of %d cells\n", uni.Population(), uni.Width()*uni.Height())
	fmt.Printf("Tick timing over %d generations: min=%s avg=%s max=%s\n",
		timer.Count(), timer.Min(), timer.Avg(), timer.Max())
}
