// Package registry provides a global registry of scenes.
// Scenes register themselves in init() functions, allowing the commands
// to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/coretilus/internal/config"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
)

// Flag is a boolean switch understood by a scene.
type Flag struct {
	Short string // One letter, may be empty
	Long  string // Key in Params.Flags
	Usage string
}

// Params is everything a scene needs to build its world.
type Params struct {
	Flags    map[string]bool // Set flags by long name
	Args     []string        // Positional arguments
	Terminal core.Size       // Terminal size at build time
	Seed     int64
	Config   config.ScenesConfig
}

// DefaultParams returns params with the default scene tuning and no flags.
func DefaultParams(terminal core.Size) Params {
	return Params{
		Flags:    map[string]bool{},
		Terminal: terminal,
		Config:   config.DefaultConfig().Scenes,
	}
}

// Has reports whether a flag was set.
func (p Params) Has(long string) bool {
	return p.Flags[long]
}

// Arg returns the first positional argument for which accept returns true.
func (p Params) Arg(accept func(string) bool) (string, bool) {
	for _, a := range p.Args {
		if accept(a) {
			return a, true
		}
	}
	return "", false
}

// Rand returns a generator seeded from Seed.
func (p Params) Rand() *rand.Rand {
	return rand.New(rand.NewSource(p.Seed))
}

// Build is a scene ready to run.
type Build struct {
	World      *engine.World
	Collisions []*engine.Collision

	// Retry, when set, is asked after a completed run whether the scene
	// should be built and run again.
	Retry func() bool
}

// Scene describes one runnable scene.
type Scene struct {
	ID      string // Command name, e.g. "sl"
	Title   string
	Usage   string // Positional argument synopsis, e.g. "[domain]"
	Summary string
	Flags   []Flag
	Build   func(p Params) (*Build, error)
}

// Info contains metadata about a registered scene.
type Info struct {
	ID      string
	Title   string
	Usage   string
	Summary string
	Flags   []Flag
}

var (
	scenes = make(map[string]Scene)
	mu     sync.RWMutex
)

// Register adds a scene to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(s Scene) {
	mu.Lock()
	defer mu.Unlock()

	if s.ID == "" || s.Build == nil {
		panic("registry: scene needs an ID and a Build function")
	}
	if _, exists := scenes[s.ID]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", s.ID))
	}
	scenes[s.ID] = s
}

// List returns information about all registered scenes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(scenes))
	for _, s := range scenes {
		result = append(result, Info{
			ID:      s.ID,
			Title:   s.Title,
			Usage:   s.Usage,
			Summary: s.Summary,
			Flags:   s.Flags,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a scene by its ID.
// Returns an error if the scene ID is not registered.
func Get(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := scenes[id]
	if !ok {
		return Scene{}, fmt.Errorf("registry: unknown scene %q", id)
	}
	return s, nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenes[id]
	return ok
}

// ParseArgs splits raw arguments into the flags a scene knows and its
// positional arguments. Short flags may be combined ("-aF"); unknown flags
// are ignored.
func ParseArgs(args []string, flags []Flag) (map[string]bool, []string) {
	set := make(map[string]bool)
	var positional []string

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			for _, f := range flags {
				if f.Long == name {
					set[f.Long] = true
				}
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			for _, ch := range arg[1:] {
				for _, f := range flags {
					if f.Short == string(ch) {
						set[f.Long] = true
					}
				}
			}
		default:
			positional = append(positional, arg)
		}
	}
	return set, positional
}
