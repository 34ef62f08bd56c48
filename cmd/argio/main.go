// Package main is a command line tool that resolves its arguments into
// input sources and concatenates their contents, like cat with argio
// resolution in front.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apstndb/argio"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"spheric.cloud/xiter"
)

type globalOptions struct {
	Argio argioOptions `group:"argio"`
}

type argioOptions struct {
	FileMarker  string `long:"file-marker" env:"ARGIO_FILE_MARKER" default:"@" description:"Marker prefix that selects file resolution"`
	StdinMarker string `long:"stdin-marker" env:"ARGIO_STDIN_MARKER" default:"-" description:"Marker that selects standard input"`
	TextMarker  string `long:"text-marker" env:"ARGIO_TEXT_MARKER" description:"Require this prefix for literal text instead of accepting anything"`
	NoFile      bool   `long:"no-file" description:"Disable file resolution"`
	NoStdin     bool   `long:"no-stdin" description:"Disable stdin resolution"`
	NoText      bool   `long:"no-text" description:"Disable literal text resolution"`
	Describe    bool   `long:"describe" description:"Print where each ARG resolves as JSON, without reading anything"`
	ShowParsers bool   `long:"show-parsers" description:"Print the effective parsers in dispatch order and exit"`
	LogLevel    string `long:"log-level" choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR" default:"WARN" description:"Minimum level for logs on stderr"`
}

func main() {
	var gopts globalOptions

	flagParser := flags.NewParser(&gopts, flags.Default)
	flagParser.Usage = "[OPTIONS] [ARG...]"
	flagParser.LongDescription = heredoc.Doc(`
		Resolve each ARG into an input source and concatenate the contents to stdout.

		By default "-" reads standard input, "@PATH" reads the file at PATH, and any
		other ARG is written out as literal text. With no ARG, the stdin marker is
		assumed.`)

	args, err := flagParser.Parse()
	if flags.WroteHelp(err) {
		return
	} else if err != nil {
		exitf("Invalid options\n")
	}

	opts := gopts.Argio

	if err := setupLogger(opts.LogLevel); err != nil {
		exitf("Invalid log level: %v\n", err)
	}

	if modeCount := xiter.Count(xiter.Of(opts.Describe, opts.ShowParsers), lo.IsNotEmpty); modeCount > 1 {
		exitf("Invalid combination: --describe and --show-parsers are exclusive\n")
	}

	config, rows, err := buildConfig(opts)
	if err != nil {
		exitf("Invalid parser configuration: %v\n", err)
	}

	c := newCli(config, opts.Describe, opts.StdinMarker, afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr)

	if opts.ShowParsers {
		os.Exit(GetExitCode(c.ShowParsers(rows)))
	}

	os.Exit(GetExitCode(c.Run(args)))
}

func exitf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}

// setupLogger reinitializes the default logger with the requested level.
func setupLogger(level string) error {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	h := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lv,
	}))
	slog.SetDefault(h)
	return nil
}

// buildConfig assembles the resolution registry from the flag values. The
// returned rows describe the enabled parsers for --show-parsers.
func buildConfig(opts argioOptions) (argio.Config, []parserRow, error) {
	b := argio.NewBuilder()
	var rows []parserRow

	if !opts.NoFile {
		p := argio.NewFileParser().WithMarker(opts.FileMarker)
		b.WithFile(p)
		rows = append(rows, parserRow{kind: "file", marker: p.Marker(), weight: p.Weight()})
	}
	if !opts.NoStdin {
		p := argio.NewStdinParser().WithMarker(opts.StdinMarker)
		b.WithStdin(p)
		rows = append(rows, parserRow{kind: "stdin", marker: p.Marker(), weight: p.Weight()})
	}
	if !opts.NoText {
		p := argio.NewTextParser().WithMarker(opts.TextMarker)
		b.WithText(p)
		rows = append(rows, parserRow{kind: "text", marker: p.Marker(), weight: p.Weight()})
	}

	config, err := b.Build()
	if err != nil {
		return argio.Config{}, nil, err
	}
	return config, rows, nil
}
