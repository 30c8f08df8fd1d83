package hpgl

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"golang.org/x/net/html/charset"
)

// ReadOptions tunes how a command stream is read.
type ReadOptions struct {
	// ErrMode decides what happens to dropped commands.
	ErrMode ErrorMode
	// Charset is an optional encoding label (like "latin1" or "cp437"),
	// as understood by golang.org/x/net/html/charset.
	// Empty means the stream is read as is.
	Charset string
	// Logger receives the warnings in WarnErrorMode.
	// If nil, warnings are printed on standard output.
	Logger *log.Logger
}

func (opts ReadOptions) logger() *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return log.New(os.Stdout, "", 0)
}

// Read reads the command stream from the given io.Reader, and interprets it.
// An empty program (no PU or PD command) is reported with ErrNoCommands,
// alongside the (possibly partial) program.
func Read(stream io.Reader, opts ReadOptions) (Program, error) {
	if opts.Charset != "" {
		decoded, err := charset.NewReaderLabel(opts.Charset, stream)
		if err != nil {
			return Program{}, fmt.Errorf("decoding input: %w", err)
		}
		stream = decoded
	}
	data, err := ioutil.ReadAll(stream)
	if err != nil {
		return Program{}, fmt.Errorf("reading commands: %w", err)
	}

	prog := Interpret(Lex(string(data)))
	switch opts.ErrMode {
	case StrictErrorMode:
		if len(prog.Warnings) != 0 {
			return prog, prog.Warnings[0]
		}
	case WarnErrorMode:
		logger := opts.logger()
		for _, w := range prog.Warnings {
			logger.Println("warning:", w)
		}
	}

	if !prog.Drawable() {
		return prog, ErrNoCommands
	}
	return prog, nil
}

// ReadFile reads and interprets the named command file.
func ReadFile(name string, opts ReadOptions) (Program, error) {
	fin, err := os.Open(name)
	if err != nil {
		return Program{}, err
	}
	defer fin.Close()
	return Read(fin, opts)
}
