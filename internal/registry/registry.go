// Package registry provides a global registry for glyph styles.
// Styles register themselves in init() functions, allowing the CLI and
// config layer to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// StyleInfo contains metadata about a registered style.
type StyleInfo struct {
	Name   string
	Title  string
	Glyphs core.GlyphSet
}

var (
	styles = make(map[string]StyleInfo)
	mu     sync.RWMutex
)

// Register adds a glyph style to the registry.
// Typically called from an init() function.
// Panics if a style with the same name is already registered.
func Register(name, title string, glyphs core.GlyphSet) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := styles[name]; exists {
		panic(fmt.Sprintf("registry: style %q already registered", name))
	}

	styles[name] = StyleInfo{Name: name, Title: title, Glyphs: glyphs}
}

// List returns information about all registered styles, sorted by name.
func List() []StyleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StyleInfo, 0, len(styles))
	for _, s := range styles {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the glyph set registered under name.
// Returns an error if the style is not registered.
func Lookup(name string) (core.GlyphSet, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := styles[name]
	if !ok {
		return core.GlyphSet{}, fmt.Errorf("registry: unknown style %q", name)
	}

	return s.Glyphs, nil
}

// Exists checks if a style with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := styles[name]
	return ok
}
