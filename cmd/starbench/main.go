// starbench advances a particle field headlessly and prints recycling and
// promotion statistics. It is the quickest way to sanity-check tuning changes
// without a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"starfield/internal/app"
	"starfield/internal/config"
	"starfield/internal/sim"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 10000, "number of ticks to simulate")
	boost := flag.Bool("bench-boost", false, "hold boost for the whole run")
	spiral := flag.Bool("bench-spiral", false, "enable the spiral transform")
	realtime := flag.Bool("realtime", false, "pace ticks at the configured TPS instead of flat out")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *ticks <= 0 {
		log.Fatalf("ticks %d: must be positive", *ticks)
	}

	field := sim.New(cfg.Sim, cfg.Seed)
	controls := sim.Controls{Boost: *boost, Spiral: *spiral}
	dt := 1.0 / float64(cfg.TPS)

	start := time.Now()
	if *realtime {
		pacer := app.NewFixedStep(cfg.TPS)
		for done := 0; done < *ticks; {
			if pacer.ShouldStep() {
				field.Advance(dt, controls)
				done++
			} else {
				time.Sleep(time.Millisecond)
			}
		}
	} else {
		for i := 0; i < *ticks; i++ {
			field.Advance(dt, controls)
		}
	}
	elapsed := time.Since(start)

	shooting := 0
	for i := range field.Particles() {
		if field.Particles()[i].Kind == sim.KindShooting {
			shooting++
		}
	}

	fmt.Printf("ticks: %d  stars: %d  elapsed: %s  (%.0f ticks/s)\n",
		*ticks, cfg.Sim.Count, elapsed.Round(time.Millisecond),
		float64(*ticks)/elapsed.Seconds())
	fmt.Printf("respawns: %d  promotions: %d  shooting now: %d  sim time: %.1fs\n",
		field.Respawns(), field.Promotions(), shooting, field.Elapsed())
}
