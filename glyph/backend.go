package glyph

import (
	"maps"
	"slices"
	"sync"

	"golang.org/x/image/font"
)

// Backend parses font data for a [Source].
// This abstraction allows swapping the font library used for rasterization.
type Backend interface {
	// Parse parses TTF or OTF data.
	Parse(data []byte) (Font, error)
}

// Font is a font parsed by a [Backend].
type Font interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// HasGlyph reports whether the font maps r to a real glyph.
	HasGlyph(r rune) bool

	// NewFace returns an unhinted face at pixelSize pixels per em.
	NewFace(pixelSize int) (font.Face, error)
}

// Backend names.
const (
	BackendXImage   = "ximage"
	BackendFreeType = "freetype"
)

var (
	backendsMu sync.RWMutex
	backends   = map[string]Backend{
		BackendXImage:   ximageBackend{},
		BackendFreeType: freetypeBackend{},
	}
)

// RegisterBackend registers a font backend under name, replacing any
// backend previously registered under the same name.
func RegisterBackend(name string, b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = b
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

func lookupBackend(name string) (Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[name]
	return b, ok
}
