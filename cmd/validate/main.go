package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &WorldValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	for _, w := range validator.warnings {
		fmt.Println(w)
	}
	fmt.Println("World file is valid!")
}

// WorldValidator checks a world file strictly, then reports layout
// problems that load fine but make for a broken game.
type WorldValidator struct {
	warnings []string
}

func (v *WorldValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	if !strings.HasSuffix(filepath.Base(filename), ".json") {
		return fmt.Errorf("world file must have .json extension: %s", filepath.Base(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var f world.File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	w, err := world.New(&f)
	if err != nil {
		return err
	}

	v.warnings = nil
	v.checkReachable(w)
	v.checkReturnExits(w)
	return nil
}

// checkReachable walks exits from home and flags locations it never reaches.
func (v *WorldValidator) checkReachable(w *world.World) {
	seen := map[int]bool{w.HomeLocationID(): true}
	queue := []int{w.HomeLocationID()}
	for len(queue) > 0 {
		loc, ok := w.Location(queue[0])
		queue = queue[1:]
		if !ok {
			continue
		}
		for _, dir := range world.Directions {
			if next, ok := loc.Exit(dir); ok && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, loc := range w.Locations() {
		if !seen[loc.ID] {
			v.addWarning(fmt.Sprintf("location %d (%s) is not reachable from home", loc.ID, loc.Name))
		}
	}
}

var opposite = map[world.Direction]world.Direction{
	world.North: world.South,
	world.South: world.North,
	world.East:  world.West,
	world.West:  world.East,
}

func (v *WorldValidator) checkReturnExits(w *world.World) {
	for _, loc := range w.Locations() {
		for _, dir := range world.Directions {
			next, ok := loc.Exit(dir)
			if !ok {
				continue
			}
			dest, _ := w.Location(next)
			if back, ok := dest.Exit(opposite[dir]); !ok || back != loc.ID {
				v.addWarning(fmt.Sprintf("exit %s from location %d has no %s exit back", dir, loc.ID, opposite[dir]))
			}
		}
	}
}

func (v *WorldValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, "  warning: "+msg)
}
