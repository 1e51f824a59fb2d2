package nwfont

import (
	"fmt"
	"image"

	"github.com/gogpu/nwfont/glyph"
	"github.com/gogpu/nwfont/grid"
)

// GlyphSource provides rasterizers for a font. *glyph.Source implements it.
type GlyphSource interface {
	Rasterizer(pixelSize int) (glyph.Rasterizer, error)
}

// coverageReporter is implemented by sources that can tell which runes
// they have no glyph for.
type coverageReporter interface {
	Missing(chars []rune) []rune
}

// Builder fills the cells of an atlas template with rasterized characters.
//
// The template geometry is inferred once by NewBuilder. Every Run draws
// into its own copy of the template, so a Builder can be reused and a
// failed run leaves nothing behind. Rasterized glyphs are cached across
// runs. A Builder is not safe for concurrent use.
type Builder struct {
	template *Pixmap
	metrics  grid.Metrics
	source   GlyphSource
	raster   *glyph.CachedRasterizer
	opts     []Option
	config   options
}

// NewBuilder infers the grid of template and prepares a rasterizer from src
// at the grid's pixel size. A malformed template fails here with a
// *grid.FormatError before anything is drawn.
func NewBuilder(template image.Image, src GlyphSource, opts ...Option) (*Builder, error) {
	tpl := FromImage(template)
	m, err := grid.Infer(tpl)
	if err != nil {
		return nil, err
	}

	r, err := src.Rasterizer(m.PixelSize())
	if err != nil {
		return nil, fmt.Errorf("nwfont: rasterizer at %dpx: %w", m.PixelSize(), err)
	}

	Logger().Info("template geometry",
		"columns", m.Columns, "rows", m.Rows,
		"cell", fmt.Sprintf("%dx%d", m.CellWidth, m.CellHeight),
		"block", fmt.Sprintf("%dx%d", m.BlockWidth, m.BlockHeight),
		"baseline", m.BaseLine, "pixelSize", m.PixelSize())

	return &Builder{
		template: tpl,
		metrics:  m,
		source:   src,
		raster:   glyph.NewCachedRasterizer(r, 0),
		opts:     opts,
		config:   newOptions(opts),
	}, nil
}

// Build is a shortcut for NewBuilder followed by Run.
func Build(template image.Image, src GlyphSource, chars []rune, start int, opts ...Option) (*Pixmap, error) {
	b, err := NewBuilder(template, src, opts...)
	if err != nil {
		return nil, err
	}
	return b.Run(chars, start)
}

// Metrics returns the inferred grid geometry.
func (b *Builder) Metrics() grid.Metrics {
	return b.metrics
}

// Template returns a copy of the template the builder draws on.
func (b *Builder) Template() *Pixmap {
	return b.template.Clone()
}

// Run draws chars into consecutive cells starting at glyph index start and
// returns the finished atlas. The first error aborts the run and no atlas
// is returned.
func (b *Builder) Run(chars []rune, start int) (*Pixmap, error) {
	if b.config.preflight {
		if cr, ok := b.source.(coverageReporter); ok {
			if missing := cr.Missing(chars); len(missing) > 0 {
				return nil, &glyph.UnsupportedRuneError{Runes: missing}
			}
		}
	}

	atlas := b.template.Clone()
	placer := NewPlacer(b.metrics, atlas, b.opts...)
	log := Logger()

	for i, r := range chars {
		index := start + i
		c, err := grid.CursorAt(index, b.metrics)
		if err != nil {
			return nil, &RuneError{Rune: r, Index: index, Err: err}
		}
		pl, err := b.draw(placer, r, c)
		if err != nil {
			return nil, &RuneError{Rune: r, Index: index, Err: err}
		}
		log.Debug("placed glyph", placementAttrs(r, index, pl)...)
	}

	stats := b.raster.Stats()
	log.Info("atlas built", "glyphs", len(chars), "first", start, "last", start+len(chars)-1,
		"cacheHits", stats.Hits, "cacheMisses", stats.Misses)
	return atlas, nil
}

// CacheStats reports how often rasterized glyphs were reused across runs.
func (b *Builder) CacheStats() glyph.CacheStats {
	return b.raster.Stats()
}

// DrawAt draws a single rune into cell c of dst, which must have the
// template's geometry. Unlike Run it mutates the caller's buffer in place.
func (b *Builder) DrawAt(dst PixelBuffer, r rune, c grid.Cursor) (Placement, error) {
	return b.draw(NewPlacer(b.metrics, dst, b.opts...), r, c)
}

func (b *Builder) draw(p *Placer, r rune, c grid.Cursor) (Placement, error) {
	g, err := b.raster.Rasterize(r)
	if err != nil {
		return Placement{}, err
	}
	return p.Draw(c, g)
}
