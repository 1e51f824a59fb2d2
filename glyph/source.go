package glyph

import (
	"fmt"
	"os"
)

// Source represents a loaded font file.
// One Source can create rasterizers at several pixel sizes.
//
// Source must not be copied after creation.
type Source struct {
	// addr is used for copy protection.
	// It must point to the Source itself.
	addr *Source

	font   Font
	cmap   *cmapIndex
	name   string
	config sourceConfig
}

// NewSource creates a Source from font data (TTF or OTF).
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	backend, ok := lookupBackend(config.backend)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.backend)
	}
	parsed, err := backend.Parse(data)
	if err != nil {
		return nil, err
	}

	s := &Source{
		font:   parsed,
		config: config,
	}
	s.addr = s

	if config.coverage {
		// A font the backend accepts but go-text rejects still works;
		// Missing falls back to the backend's own lookup.
		if idx, err := newCmapIndex(data); err == nil {
			s.cmap = idx
		}
	}

	s.name = parsed.Name()
	if s.name == "" {
		s.name = "Unknown Font"
	}
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to read font file: %w", err)
	}
	return NewSource(data, opts...)
}

// Name returns the font family name.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Backend returns the name of the backend that parsed the font.
func (s *Source) Backend() string {
	s.copyCheck()
	return s.config.backend
}

// Rasterizer returns a rasterizer producing glyphs at pixelSize pixels
// per em, antialiased and unhinted.
func (s *Source) Rasterizer(pixelSize int) (Rasterizer, error) {
	s.copyCheck()
	if pixelSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPixelSize, pixelSize)
	}
	face, err := s.font.NewFace(pixelSize)
	if err != nil {
		return nil, err
	}
	return &faceRasterizer{font: s.font, face: face}, nil
}

// Has reports whether the font has a glyph for r.
func (s *Source) Has(r rune) bool {
	s.copyCheck()
	if s.cmap != nil {
		return s.cmap.has(r)
	}
	return s.font.HasGlyph(r)
}

// Missing returns the runes of chars the font has no glyph for, each once,
// in order of first appearance. It returns nil when all are covered.
func (s *Source) Missing(chars []rune) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range chars {
		if seen[r] {
			continue
		}
		seen[r] = true
		if !s.Has(r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// copyCheck panics if Source was copied by value.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("glyph: Source must not be copied by value")
	}
}
