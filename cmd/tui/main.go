package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/snowtux/configs"
	"github.com/younwookim/snowtux/internal/application/hud"
	"github.com/younwookim/snowtux/internal/application/loop"
	"github.com/younwookim/snowtux/internal/application/system"
	"github.com/younwookim/snowtux/internal/infrastructure/config"
	"github.com/younwookim/snowtux/internal/infrastructure/terminal"
)

func main() {
	levelFlag := flag.String("level", "", "Start at this level id instead of the first one")
	logFlag := flag.String("log", "", "Append log output to this file instead of discarding it")
	flag.Parse()

	// The screen owns stdout; logs go to a file or nowhere
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	loader := config.NewFSLoader(configs.FS, ".")
	physics, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(physics.Levels) == 0 {
		log.Fatalf("No levels listed in physics config")
	}

	sim := system.NewSimulation(system.TuningFromConfig(physics), nil)
	session := system.NewSession(sim, system.ConfigSource{Loader: loader}, physics.Levels)
	start := physics.Levels[0]
	if *levelFlag != "" {
		start = *levelFlag
	}
	if err := session.Load(start); err != nil {
		log.Fatalf("Failed to load level %s: %v", start, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	if *logFlag == "" {
		log.SetOutput(io.Discard)
	}

	keys := terminal.NewKeyTable(nil, terminal.DefaultHold)
	go terminal.Pump(screen, keys)

	renderer := terminal.NewRenderer(screen)
	var banner hud.Banner
	banner.Push(session.Events())

	tick := time.Second / time.Duration(max(physics.Display.Framerate, 1))
	lp := loop.New(loop.SystemClock{}, tick, physics.World.MaxCatchUp)
	meter := loop.NewMeter(loop.SystemClock{})

	var stepErr error
	step := func() {
		if stepErr != nil {
			return
		}
		stepErr = session.Tick(keys.Input())
		banner.Push(session.Events())
		banner.Tick()
	}
	render := func() {
		renderer.Draw(session.Simulation(), hud.StatusLine(session.Status()), banner.Text())
	}

	ticker := time.NewTicker(tick / 2)
	defer ticker.Stop()
	for range ticker.C {
		if keys.Quit() {
			return
		}
		res := lp.Frame(step, render)
		if stepErr != nil {
			screen.Fini()
			log.Fatalf("Simulation failed: %v", stepErr)
		}
		if s, ok := meter.Observe(res); ok && s.Dropped > 0 {
			log.Printf("Behind: %d frames, %d ticks, %d dropped", s.Frames, s.Ticks, s.Dropped)
		}
	}
}
