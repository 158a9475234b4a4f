package main

import (
	"flag"
	"log"
	"strings"

	"atrybute/audio"
	"atrybute/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	config := game.DefaultConfig()

	flag.StringVar(&config.Profile, "profile", config.Profile,
		"engine profile: "+strings.Join(game.ProfileNames(), ", ")+" or a path to a YAML file")
	flag.Int64Var(&config.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.BoolVar(&config.Mute, "mute", false, "disable sound effects")
	flag.IntVar(&config.ScreenWidth, "width", config.ScreenWidth, "initial window width")
	flag.IntVar(&config.ScreenHeight, "height", config.ScreenHeight, "initial window height")
	flag.StringVar(&config.ProfileDir, "pprof-dir", "", "capture CPU profiles here when FPS drops")
	flag.BoolVar(&config.Debug, "debug", false, "start with the debug overlay (toggle with F1)")
	flag.Parse()

	g, err := game.NewGame(config, nil)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Close()

	if !config.Mute {
		sm := audio.NewSoundManager(audio.LoadConfig())
		if err := sm.Initialize(); err != nil {
			log.Printf("[Audio] Running without sound: %v", err)
		} else if sm.Initialized() {
			g.SetSounds(sm)
			defer sm.Cleanup()
		}
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("ATRYBUTE")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
