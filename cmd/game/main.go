package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/snowtux/configs"
	"github.com/younwookim/snowtux/internal/application/game"
	"github.com/younwookim/snowtux/internal/application/loop"
	"github.com/younwookim/snowtux/internal/application/scene/playing"
	"github.com/younwookim/snowtux/internal/application/system"
	"github.com/younwookim/snowtux/internal/infrastructure/config"
	"github.com/younwookim/snowtux/internal/infrastructure/levelwatch"
)

func main() {
	levelFlag := flag.String("level", "", "Start at this level id instead of the first one")
	watchFlag := flag.String("watch", "", "Read levels from this config dir and reload them on change (e.g. -watch configs)")
	debugFlag := flag.Bool("debug", false, "Check spatial index invariants after every tick")
	flag.Parse()

	// Embedded configs unless a directory is being watched
	loader := config.NewFSLoader(configs.FS, ".")
	if *watchFlag != "" {
		loader = config.NewLoader(*watchFlag)
	}
	physics, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(physics.Levels) == 0 {
		log.Fatalf("No levels listed in physics config")
	}

	tuning := system.TuningFromConfig(physics)
	tuning.Debug = tuning.Debug || *debugFlag

	sim := system.NewSimulation(tuning, nil)
	session := system.NewSession(sim, system.ConfigSource{Loader: loader}, physics.Levels)

	start := physics.Levels[0]
	if *levelFlag != "" {
		start = *levelFlag
	}
	if err := session.Load(start); err != nil {
		log.Fatalf("Failed to load level %s: %v", start, err)
	}

	display := physics.Display
	scene := playing.New(session, &playing.Keyboard{}, display.ScreenWidth, display.ScreenHeight)

	if *watchFlag != "" {
		w, err := levelwatch.New(levelwatch.DefaultDebounce, loader.BasePath()+"/levels")
		if err != nil {
			log.Fatalf("Failed to watch levels: %v", err)
		}
		defer w.Close()
		go func() {
			for err := range w.Errors {
				log.Printf("Level watcher: %v", err)
			}
		}()
		scene.WatchReloads(w.Events)
		log.Printf("Watching %s/levels for changes", loader.BasePath())
	}

	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	tick := time.Second / time.Duration(max(display.Framerate, 1))
	g.SetLoop(loop.New(loop.SystemClock{}, tick, physics.World.MaxCatchUp), loop.NewMeter(loop.SystemClock{}))

	// The fixed-step loop decides how many ticks each frame runs
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("SnowTux")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
