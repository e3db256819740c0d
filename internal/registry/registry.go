// Package registry maps game IDs to factories. The tetris package
// registers itself from init, so the CLI and the SSH server only need an
// ID to build a fresh game per session.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what the terminal platform drives once per tick.
// Implementations hold pure simulation state; input mapping, timing and
// terminal output belong to the platform.
type Game interface {
	// ID is the stable key used on the command line and in the scores table.
	ID() string

	// Title is shown in headers and menus.
	Title() string

	// Reset starts a new game. Also called on restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances timers.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, progress and pause/game over flags.
	State() core.GameState
}

// Factory builds a new, unstarted game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id has been registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Title returns the display title registered for id, or id itself when
// nothing is registered.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}

// IDs returns every registered id in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
