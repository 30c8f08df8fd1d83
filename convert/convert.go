// Package convert chains the reading, layout and rendering of plotter
// files: raw text, commands, events, bounds, segments and finally
// the artifact written by a driver.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/benoitkugler/hpgl/config"
	"github.com/benoitkugler/hpgl/hpgl"
	"github.com/benoitkugler/hpgl/hpgldraw"
	"github.com/benoitkugler/hpgl/hpglpdf"
	"github.com/benoitkugler/hpgl/hpglraster"
	"github.com/benoitkugler/hpgl/hpglsvg"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrDuplicateOutput is reported by ConvertAll for an input whose
	// output file would overwrite the one of a previous input.
	ErrDuplicateOutput = errors.New("output path already used by another input")
)

var drivers = map[string]hpgldraw.Driver{
	"png": hpglraster.Renderer{},
	"pdf": hpglpdf.Renderer{},
	"svg": hpglsvg.Renderer{},
}

// Formats returns the supported output formats.
func Formats() []string { return []string{"pdf", "png", "svg"} }

// DriverFor returns the backend producing `format` files.
func DriverFor(format string) (hpgldraw.Driver, error) {
	d, ok := drivers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return d, nil
}

// IsNoOutput returns true for the errors meaning that the input
// has nothing to draw. Such runs produce no file, but are not failures.
func IsNoOutput(err error) bool {
	return errors.Is(err, hpgl.ErrNoCommands) || errors.Is(err, hpgldraw.ErrDegenerateBounds)
}

// OutputPath replaces the extension of `input` by `ext`.
// Only the base name is considered, so dots in directories are kept.
func OutputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// Converter renders plotter files with one driver.
// Its fields are read only during conversions, so that a Converter
// may be used concurrently.
type Converter struct {
	Config  config.RenderConfig
	Driver  hpgldraw.Driver
	Read    hpgl.ReadOptions
	Logger  *log.Logger // progress and warnings; nil means standard output
	Workers int         // for ConvertAll; <= 0 means one worker per file
}

// New returns a converter using the given settings.
func New(s config.Settings, logger *log.Logger) (*Converter, error) {
	if err := s.Render.Validate(); err != nil {
		return nil, err
	}
	driver, err := DriverFor(s.Format)
	if err != nil {
		return nil, err
	}
	mode, err := hpgl.ParseErrorMode(s.Errors)
	if err != nil {
		return nil, err
	}
	return &Converter{
		Config: s.Render,
		Driver: driver,
		Read:   hpgl.ReadOptions{ErrMode: mode, Charset: s.Charset, Logger: logger},
		Logger: logger,
	}, nil
}

func (c *Converter) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(os.Stdout, "", 0)
}

// Layout reads and lays out the command stream.
func (c *Converter) Layout(r io.Reader) (hpgldraw.Drawing, error) {
	opts := c.Read
	if opts.Logger == nil {
		opts.Logger = c.logger()
	}
	prog, err := hpgl.Read(r, opts)
	if err != nil {
		return hpgldraw.Drawing{}, err
	}
	return hpgldraw.Layout(prog.Events, c.Config.SourceResolution, c.Config.TargetResolution)
}

// Convert reads the command stream from `r` and writes the artifact to `w`.
func (c *Converter) Convert(r io.Reader, w io.Writer) error {
	d, err := c.Layout(r)
	if err != nil {
		return err
	}
	return c.Driver.Render(w, d, c.Config.Style())
}

// ConvertFile converts `input` to a file next to it, named after
// the driver extension, and returns the output path.
// When the input has nothing to draw, no file is created and
// an error satisfying IsNoOutput is returned.
func (c *Converter) ConvertFile(input string) (string, error) {
	fin, err := os.Open(input)
	if err != nil {
		return "", err
	}
	defer fin.Close()

	// lay out before creating the output, so that empty inputs leave no file
	d, err := c.Layout(fin)
	if err != nil {
		return "", fmt.Errorf("%s: %w", input, err)
	}

	output := OutputPath(input, c.Driver.Extension())
	fout, err := os.Create(output)
	if err != nil {
		return "", err
	}
	err = c.Driver.Render(fout, d, c.Config.Style())
	if errClose := fout.Close(); err == nil {
		err = errClose
	}
	if err != nil {
		os.Remove(output) // do not leave a truncated artifact
		return "", fmt.Errorf("writing %s: %w", output, err)
	}
	c.logger().Printf("saved %s", output)
	return output, nil
}

// Result is the outcome of one file of a batch.
type Result struct {
	Input, Output string
	Err           error
}

// ConvertAll converts every input independently, in parallel.
// Per file errors are reported in the results (in input order);
// the returned error is only set when `ctx` is cancelled.
// When several inputs map to the same output file, only the first
// one is converted, the others fail with ErrDuplicateOutput.
func (c *Converter) ConvertAll(ctx context.Context, inputs []string) ([]Result, error) {
	results := make([]Result, len(inputs))
	claimed := make(map[string]string, len(inputs)) // output -> input
	g, ctx := errgroup.WithContext(ctx)
	if c.Workers > 0 {
		g.SetLimit(c.Workers)
	}
	for i, input := range inputs {
		output := filepath.Clean(OutputPath(input, c.Driver.Extension()))
		if first, ok := claimed[output]; ok {
			results[i] = Result{Input: input, Err: fmt.Errorf("%s: %w (%s)", input, ErrDuplicateOutput, first)}
			continue
		}
		claimed[output] = input

		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := c.ConvertFile(input)
			results[i] = Result{Input: input, Output: out, Err: err}
			return nil
		})
	}
	err := g.Wait()
	return results, err
}
