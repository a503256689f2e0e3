//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"starfield/internal/app"
	"starfield/internal/audio"
	"starfield/internal/config"
	"starfield/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	var configPath string

	// Pre-parse only to find -config so file values sit under flag overrides.
	pre := flag.NewFlagSet("starfield", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&configPath, "config", "", "")
	cfg.Bind(pre)
	_ = pre.Parse(os.Args[1:])

	if configPath != "" {
		if err := cfg.LoadFile(configPath); err != nil {
			log.Fatal(err)
		}
	}

	flag.StringVar(&configPath, "config", configPath, "path to a YAML config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	field := sim.New(cfg.Sim, cfg.Seed)

	level := &audio.Level{}
	var src *audio.Source
	path := cfg.Audio.Path
	if path == "ask" {
		chosen, err := audio.ChooseFile()
		if err != nil {
			log.Printf("audio file dialog: %v", err)
		}
		path = chosen
	}
	if path != "" {
		s, err := audio.Open(path, level)
		if err != nil {
			log.Printf("audio reactivity disabled: %v", err)
		} else {
			src = s
			defer src.Close()
		}
	}

	game := app.New(field, cfg, level, src != nil)

	ebiten.SetWindowTitle("starfield")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Sim.Width, cfg.Sim.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
