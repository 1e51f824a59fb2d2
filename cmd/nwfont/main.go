// Command nwfont draws the characters of a charset file into the cells of a
// font atlas template.
//
// Usage:
//
//	nwfont -i template.png -f font.ttf -c charset.txt -o atlas.png -s 0
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/nwfont"
	"github.com/gogpu/nwfont/charset"
	"github.com/gogpu/nwfont/glyph"
	"github.com/gogpu/nwfont/grid"
	imgio "github.com/gogpu/nwfont/internal/image"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type config struct {
	image   string
	font    string
	charset string
	output  string
	start   int
	backend string
	verbose bool
	info    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "nwfont: %v\n", err)
		return exitUsage
	}

	nwfont.SetLogger(newLogger(stderr, cfg.verbose))

	if err := execute(cfg, stdout); err != nil {
		fmt.Fprintf(stderr, "nwfont: %v\n", err)
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("nwfont", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.image, "i", "", "input template image `path`")
	fs.StringVar(&cfg.image, "image", "", "input template image `path`")
	fs.StringVar(&cfg.font, "f", "", "TrueType or OpenType font `path`")
	fs.StringVar(&cfg.font, "font", "", "TrueType or OpenType font `path`")
	fs.StringVar(&cfg.charset, "c", "", "charset text file `path`")
	fs.StringVar(&cfg.charset, "charset", "", "charset text file `path`")
	fs.StringVar(&cfg.output, "o", "", "output image `path`")
	fs.StringVar(&cfg.output, "output", "", "output image `path`")
	fs.IntVar(&cfg.start, "s", 0, "glyph index of the first character")
	fs.IntVar(&cfg.start, "start", 0, "glyph index of the first character")
	fs.StringVar(&cfg.backend, "b", glyph.BackendXImage, "font backend (ximage or freetype)")
	fs.StringVar(&cfg.backend, "backend", glyph.BackendXImage, "font backend (ximage or freetype)")
	fs.BoolVar(&cfg.verbose, "v", false, "log every placed glyph")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log every placed glyph")
	fs.BoolVar(&cfg.info, "info", false, "print the template metrics and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "nwfont %s: fill a font atlas template with glyphs.\n\n", nwfont.Version)
		fmt.Fprintf(fs.Output(), "Usage: nwfont -i IMAGE -f FONT -c CHARSET -o OUTPUT -s START\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	required := [][2]string{{"i", "image"}, {"f", "font"}, {"c", "charset"}, {"o", "output"}, {"s", "start"}}
	if cfg.info {
		required = required[:1]
	}
	for _, names := range required {
		if !set[names[0]] && !set[names[1]] {
			return nil, fmt.Errorf("missing required flag -%s/--%s", names[0], names[1])
		}
	}
	return &cfg, nil
}

// newLogger writes text records to terminals and JSON records elsewhere.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func execute(cfg *config, stdout io.Writer) error {
	tpl, err := imgio.Load(cfg.image)
	if err != nil {
		return err
	}

	if cfg.info {
		m, err := grid.Infer(tpl)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, m)
		return nil
	}

	src, err := glyph.NewSourceFromFile(cfg.font, glyph.WithBackend(cfg.backend))
	if err != nil {
		return err
	}
	chars, enc, err := charset.ReadFile(cfg.charset)
	if err != nil {
		return err
	}
	nwfont.Logger().Debug("charset loaded", "path", cfg.charset, "encoding", enc.String(), "chars", len(chars))

	atlas, err := nwfont.Build(tpl, src, chars, cfg.start)
	if err != nil {
		return err
	}
	if err := atlas.Save(cfg.output); err != nil {
		return err
	}
	nwfont.Logger().Info("atlas saved", "path", cfg.output, "font", src.Name())
	return nil
}
