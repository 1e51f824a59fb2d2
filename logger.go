package nwfont

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers never
// build the attributes of a disabled record.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes nwfont's log records to l. Without a call, or after
// SetLogger(nil), nothing is logged.
//
// Records written:
//   - [slog.LevelDebug]: "placed glyph", one per character of a run
//   - [slog.LevelInfo]: "template geometry" from NewBuilder and
//     "atlas built" at the end of a successful run
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set with SetLogger. It is safe to call from
// any goroutine.
func Logger() *slog.Logger {
	return logger.Load()
}

// placementAttrs describes a drawn glyph for the "placed glyph" record.
func placementAttrs(r rune, index int, pl Placement) []any {
	return []any{
		"rune", string(r),
		"index", index,
		"cell", pl.Cursor.String(),
		"dx", pl.DX,
		"dy", pl.DY,
		"advance", pl.Advance,
		"clamped", pl.Clamped,
	}
}
