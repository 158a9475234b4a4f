package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"atrybute/game"
)

// recordingModal counts opens so a headless run can report them
type recordingModal struct {
	opens  map[string]int
	closes int
}

func (m *recordingModal) Open(content string) { m.opens[content]++ }
func (m *recordingModal) Close()              { m.closes++ }

// script returns the key events to inject before a frame
type script func(frame int) []game.Event

// sweepLeg is one held direction in the sweep pattern
type sweepLeg struct {
	key    game.Key
	frames int
}

var sweepLegs = []sweepLeg{
	{game.KeyD, 150},
	{game.KeyS, 60},
	{game.KeyA, 150},
	{game.KeyS, 60},
}

// sweepScript zig-zags across the surface, releasing each key before
// pressing the next one
func sweepScript() script {
	period := 0
	for _, l := range sweepLegs {
		period += l.frames
	}
	return func(frame int) []game.Event {
		pos := frame % period
		for i, l := range sweepLegs {
			if pos == 0 {
				prev := sweepLegs[(i+len(sweepLegs)-1)%len(sweepLegs)]
				events := []game.Event{game.KeyEvent{Key: l.key, Down: true}}
				if frame > 0 {
					events = append([]game.Event{game.KeyEvent{Key: prev.key, Down: false}}, events...)
				}
				return events
			}
			pos -= l.frames
			if pos < 0 {
				return nil
			}
		}
		return nil
	}
}

// diagonalScript holds down and right, with Escape every 90 frames
func diagonalScript() script {
	return func(frame int) []game.Event {
		if frame == 0 {
			return []game.Event{
				game.KeyEvent{Key: game.KeyD, Down: true},
				game.KeyEvent{Key: game.KeyS, Down: true},
			}
		}
		if frame%90 == 0 {
			return []game.Event{
				game.KeyEvent{Key: game.KeyEscape, Down: true},
				game.KeyEvent{Key: game.KeyEscape, Down: false},
			}
		}
		return nil
	}
}

func idleScript() script {
	return func(int) []game.Event { return nil }
}

func main() {
	profileName := flag.String("profile", game.DefaultProfileName,
		"engine profile: "+strings.Join(game.ProfileNames(), ", ")+" or a path to a YAML file")
	seed := flag.Int64("seed", 1, "random seed")
	frames := flag.Int("frames", 3600, "frames to simulate")
	width := flag.Float64("width", 1024, "surface width")
	height := flag.Float64("height", 768, "surface height")
	scriptName := flag.String("script", "sweep", "input script: sweep, diagonal or idle")
	flag.Parse()

	var run script
	switch *scriptName {
	case "sweep":
		run = sweepScript()
	case "diagonal":
		run = diagonalScript()
	case "idle":
		run = idleScript()
	default:
		fmt.Fprintf(os.Stderr, "unknown script %q\n", *scriptName)
		flag.Usage()
		os.Exit(2)
	}

	profile, err := game.LoadProfile(*profileName)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

	modal := &recordingModal{opens: make(map[string]int)}
	state := game.NewState(profile, *width, *height, game.NewRand(*seed), modal)
	input := game.NewInputAdapter(game.Capabilities{}, profile.Input)
	input.SetSurface(*width, *height)

	log.Printf("[Simulate] profile=%s seed=%d frames=%d script=%s surface=%.0fx%.0f",
		profile.Name, *seed, *frames, *scriptName, *width, *height)

	start := time.Now()
	maxSplashes := 0
	for f := 0; f < *frames; f++ {
		in := input.Consume(run(f), state.Player.Speed)
		state.Step(in)
		maxSplashes = max(maxSplashes, state.Splashes.Len())

		if (f+1)%600 == 0 {
			log.Printf("[Simulate] frame %d: player=(%.1f, %.1f) hits=%d splashes=%d trail=%d",
				state.Frame, state.Player.X, state.Player.Y, state.Hits, state.Splashes.Len(), state.Trail.Len())
		}
	}
	elapsed := time.Since(start)

	log.Printf("[Simulate] done in %v (%.1f µs/frame)", elapsed, float64(elapsed.Microseconds())/float64(max(*frames, 1)))
	log.Printf("[Simulate] hits=%d modal closes=%d peak splashes=%d trail=%d/%d",
		state.Hits, modal.closes, maxSplashes, state.Trail.Len(), state.Trail.MaxLength())
	for label, n := range modal.opens {
		log.Printf("[Simulate]   %s: %d", label, n)
	}
	for i, e := range state.Enemies {
		log.Printf("[Simulate] enemy %d (%s): (%.1f, %.1f)", i, e.Behavior, e.X, e.Y)
	}
}
