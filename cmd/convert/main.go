// Command convert renders plotter (HP-GL) files as PDF, PNG or SVG.
//
// Usage:
//
//	convert [options] <input-path> [input-path...]
//
// Each input is written next to itself, with its extension replaced
// by the one of the output format.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/benoitkugler/hpgl/config"
	"github.com/benoitkugler/hpgl/convert"
)

const (
	exitFailure  = 1
	exitNoOutput = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		configFile  = fs.String("config", "", "YAML configuration file")
		format      = fs.String("format", "", "output format: "+strings.Join(convert.Formats(), ", ")+" (default "+config.DefaultFormat+")")
		sourceDPI   = fs.Float64("source-dpi", 0, "resolution of the input, in units per inch (default 1016)")
		targetDPI   = fs.Float64("dpi", 0, "resolution of the output, in units per inch (default 300)")
		strokeColor = fs.String("stroke-color", "", "line color, as a SVG color name or #rrggbb[aa] (default black)")
		strokeWidth = fs.Float64("stroke-width", 0, "line width, in output units (default 3)")
		charset     = fs.String("charset", "", "encoding of the input files (default: read as is)")
		errMode     = fs.String("errors", "", "handling of malformed commands: ignore, warn or strict (default warn)")
		strictExit  = fs.Bool("strict-exit", false, "exit with status 2 when an input has nothing to draw")
		workers     = fs.Int("j", 0, "number of files converted in parallel (default: all)")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: convert [options] <input-path> [input-path...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return exitFailure
	}

	settings := config.Default()
	if *configFile != "" {
		var err error
		settings, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitFailure
		}
	}
	flags := config.File{
		Format:           *format,
		SourceResolution: *sourceDPI,
		TargetResolution: *targetDPI,
		StrokeColor:      *strokeColor,
		StrokeWidth:      *strokeWidth,
		Charset:          *charset,
		Errors:           *errMode,
	}
	settings, err := flags.Apply(settings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	logger := log.New(os.Stdout, "", 0)
	conv, err := convert.New(settings, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	conv.Workers = *workers

	results, err := conv.ConvertAll(context.Background(), fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	code := 0
	for _, res := range results {
		switch {
		case res.Err == nil:
		case convert.IsNoOutput(res.Err):
			// reported, but not a failure unless asked
			logger.Println(res.Err)
			if *strictExit && code == 0 {
				code = exitNoOutput
			}
		default:
			fmt.Fprintln(os.Stderr, res.Err)
			code = exitFailure
		}
	}
	return code
}
