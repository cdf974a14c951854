package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/game/config"
	"darkdelve/pkg/game/devtools"
	"darkdelve/pkg/game/gameplay"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/renderer/tui"
)

func main() {
	configFile := flag.String("config", "darkdelve.yaml", "Path to config YAML file")
	seed := flag.Int64("seed", 0, "Level generation seed (default: config value, else random)")
	dump := flag.Bool("dump", false, "Print the first generated level and exit (for developer testing)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fail(err)
	}
	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}

	if err := logger.Initialize(cfg.Logging); err != nil {
		fail(err)
	}
	defer logger.Close()

	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Language, "default")

	gen := generator.NewBSP(cfg.GeneratorParams())
	g := gameplay.NewGame(gen, cfg.Generation.Seed)

	if *dump {
		if err := devtools.WriteMap(os.Stdout, g.World, false); err != nil {
			logger.Error("map dump failed", "error", err)
			fail(err)
		}
		return
	}

	if err := tui.CheckSize(cfg.Board.Width, cfg.Board.Height); err != nil {
		logger.Error("terminal too small", "error", err)
		fail(err)
	}

	r := tui.New()
	gameplay.Run(g, r)
	r.Close()
}

// fail reports a fatal startup error and exits
func fail(err error) {
	fmt.Fprintf(os.Stderr, "darkdelve: %v\n", err)
	logger.Close()
	os.Exit(1)
}
