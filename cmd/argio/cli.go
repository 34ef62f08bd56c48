package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/apstndb/argio"
	"github.com/apstndb/lox"
	"github.com/go-json-experiment/json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

type cli struct {
	Config     argio.Config
	Describe   bool
	DefaultArg string
	FS         afero.Fs
	InStream   io.Reader
	OutStream  io.Writer
	ErrStream  io.Writer
}

func newCli(config argio.Config, describe bool, defaultArg string, fs afero.Fs, inStream io.Reader, outStream, errStream io.Writer) *cli {
	return &cli{
		Config:     config,
		Describe:   describe,
		DefaultArg: defaultArg,
		FS:         fs,
		InStream:   inStream,
		OutStream:  outStream,
		ErrStream:  errStream,
	}
}

// Run resolves every argument and streams the resolved contents to
// OutStream, stopping at the first argument that fails to resolve or read.
func (c *cli) Run(args []string) error {
	args = lo.Ternary(len(args) == 0, []string{c.DefaultArg}, args)

	for _, arg := range args {
		input, err := c.Config.ParseArg(arg)
		if err != nil {
			fmt.Fprintf(c.ErrStream, "argio: cannot resolve %q: %v\n", arg, err)
			return NewExitCodeError(exitCodeError)
		}
		slog.Debug("argument resolved", "arg", arg, "source", input.String())

		if c.Describe {
			if err := c.describeArg(input); err != nil {
				return err
			}
			continue
		}

		if err := c.copySource(input); err != nil {
			fmt.Fprintf(c.ErrStream, "argio: %v\n", err)
			return NewExitCodeError(exitCodeError)
		}
	}

	return nil
}

// sourceDescriptor is the JSON shape printed by --describe.
type sourceDescriptor struct {
	Kind string `json:"kind"`
	Path string `json:"path,omitzero"`
	Text string `json:"text,omitzero"`
}

func (c *cli) describeArg(input argio.Input) error {
	var desc sourceDescriptor
	switch s := input.Source().(type) {
	case argio.StdinSource:
		desc = sourceDescriptor{Kind: "stdin"}
	case argio.FileSource:
		desc = sourceDescriptor{Kind: "file", Path: s.Path}
	case argio.TextSource:
		desc = sourceDescriptor{Kind: "text", Text: s.Content}
	default:
		return fmt.Errorf("unknown source type: %T", s)
	}

	b, err := json.Marshal(desc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutStream, string(b))
	return err
}

func (c *cli) copySource(input argio.Input) error {
	// Stdin reads go through InStream so the whole pipeline can be tested
	// with injected streams.
	if _, ok := input.Source().(argio.StdinSource); ok {
		fmt.Fprint(c.ErrStream, lox.IfOrEmpty(c.interactiveStdin(), "reading from terminal; press Ctrl+D to finish\n"))
		_, err := io.Copy(c.OutStream, c.InStream)
		return err
	}

	r, err := input.AccessFS(c.FS)
	if err != nil {
		return err
	}
	defer r.Close()

	_, err = io.Copy(c.OutStream, r)
	return err
}

func (c *cli) interactiveStdin() bool {
	f, ok := c.InStream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type parserRow struct {
	kind   string
	marker string
	weight uint8
}

// ShowParsers renders the enabled parsers as an ASCII table in dispatch
// order.
func (c *cli) ShowParsers(rows []parserRow) error {
	slices.SortStableFunc(rows, func(lhs, rhs parserRow) int {
		return cmp.Compare(lhs.weight, rhs.weight)
	})

	table := tablewriter.NewTable(c.OutStream,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
	)
	table.Header([]string{"Kind", "Marker", "Weight"})

	for _, row := range rows {
		if err := table.Append([]string{row.kind, strconv.Quote(row.marker), strconv.Itoa(int(row.weight))}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
