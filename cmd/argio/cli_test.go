package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apstndb/argio"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestOptions(t *testing.T, args []string) (argioOptions, []string) {
	t.Helper()

	var gopts globalOptions
	rest, err := flags.ParseArgs(&gopts, args)
	require.NoError(t, err)
	return gopts.Argio, rest
}

func newTestCli(config argio.Config, describe bool, stdin string) (*cli, afero.Fs, *bytes.Buffer, *bytes.Buffer) {
	fs := afero.NewMemMapFs()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	c := newCli(config, describe, "-", fs, strings.NewReader(stdin), out, errOut)
	return c, fs, out, errOut
}

func TestRunText(t *testing.T) {
	c, _, out, errOut := newTestCli(argio.DefaultConfig(), false, "")

	require.NoError(t, c.Run([]string{"hello", " ", "world"}))
	assert.Equal(t, "hello world", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunFile(t *testing.T) {
	c, fs, out, _ := newTestCli(argio.DefaultConfig(), false, "")
	require.NoError(t, afero.WriteFile(fs, "query.sql", []byte("SELECT 1;\n"), 0o644))

	require.NoError(t, c.Run([]string{"@query.sql"}))
	assert.Equal(t, "SELECT 1;\n", out.String())
}

func TestRunStdin(t *testing.T) {
	c, _, out, errOut := newTestCli(argio.DefaultConfig(), false, "piped input")

	require.NoError(t, c.Run([]string{"-"}))
	assert.Equal(t, "piped input", out.String())
	assert.Empty(t, errOut.String(), "no terminal hint expected for a non-terminal stream")
}

func TestRunDefaultsToStdin(t *testing.T) {
	c, _, out, _ := newTestCli(argio.DefaultConfig(), false, "piped input")

	require.NoError(t, c.Run(nil))
	assert.Equal(t, "piped input", out.String())
}

func TestRunMixedArguments(t *testing.T) {
	c, fs, out, _ := newTestCli(argio.DefaultConfig(), false, "B")
	require.NoError(t, afero.WriteFile(fs, "c.txt", []byte("C"), 0o644))

	require.NoError(t, c.Run([]string{"A", "-", "@c.txt"}))
	assert.Equal(t, "ABC", out.String())
}

func TestRunDescribe(t *testing.T) {
	// Describing resolves only; "@missing.sql" must not fail because the
	// file is never opened.
	c, _, out, _ := newTestCli(argio.DefaultConfig(), true, "")

	require.NoError(t, c.Run([]string{"-", "@missing.sql", "hi"}))
	assert.Equal(t, strings.Join([]string{
		`{"kind":"stdin"}`,
		`{"kind":"file","path":"missing.sql"}`,
		`{"kind":"text","text":"hi"}`,
	}, "\n")+"\n", out.String())
}

func TestRunResolveFailure(t *testing.T) {
	opts, _ := parseTestOptions(t, []string{"--no-text"})
	config, _, err := buildConfig(opts)
	require.NoError(t, err)

	c, _, _, errOut := newTestCli(config, false, "")
	err = c.Run([]string{"plain text"})
	require.Error(t, err)
	assert.Equal(t, exitCodeError, GetExitCode(err))
	assert.Contains(t, errOut.String(), `cannot resolve "plain text"`)
	assert.Contains(t, errOut.String(), "multiple parsers failed")
}

func TestRunReadFailure(t *testing.T) {
	c, _, _, errOut := newTestCli(argio.DefaultConfig(), false, "")

	err := c.Run([]string{"@missing.txt"})
	require.Error(t, err)
	assert.Equal(t, exitCodeError, GetExitCode(err))
	assert.Contains(t, errOut.String(), "unable to open missing.txt")
}

func TestShowParsers(t *testing.T) {
	opts, _ := parseTestOptions(t, nil)
	config, rows, err := buildConfig(opts)
	require.NoError(t, err)

	c, _, out, _ := newTestCli(config, false, "")
	require.NoError(t, c.ShowParsers(rows))

	rendered := out.String()
	for _, want := range []string{`"@"`, `"-"`, "130", "140", "255"} {
		assert.Contains(t, rendered, want)
	}

	// Ascending weight order: file, stdin, text.
	assert.Less(t, strings.Index(rendered, "file"), strings.Index(rendered, "stdin"))
	assert.Less(t, strings.Index(rendered, "stdin"), strings.Index(rendered, "text"))
}

func TestBuildConfig(t *testing.T) {
	t.Run("defaults enable all three kinds", func(t *testing.T) {
		opts, rest := parseTestOptions(t, []string{"some", "args"})
		assert.Equal(t, []string{"some", "args"}, rest)

		config, rows, err := buildConfig(opts)
		require.NoError(t, err)
		assert.Len(t, rows, 3)

		input, err := config.ParseArg("@query.sql")
		require.NoError(t, err)
		assert.Equal(t, argio.FileSource{Path: "query.sql"}, input.Source())
	})

	t.Run("custom markers", func(t *testing.T) {
		opts, _ := parseTestOptions(t, []string{"--file-marker", "file=", "--stdin-marker", "+"})
		config, _, err := buildConfig(opts)
		require.NoError(t, err)

		input, err := config.ParseArg("file=query.sql")
		require.NoError(t, err)
		assert.Equal(t, argio.FileSource{Path: "query.sql"}, input.Source())

		input, err = config.ParseArg("+")
		require.NoError(t, err)
		assert.Equal(t, argio.StdinSource{}, input.Source())

		input, err = config.ParseArg("@query.sql")
		require.NoError(t, err)
		assert.Equal(t, argio.TextSource{Content: "@query.sql"}, input.Source())
	})

	t.Run("disabling every kind fails", func(t *testing.T) {
		opts, _ := parseTestOptions(t, []string{"--no-file", "--no-stdin", "--no-text"})
		_, _, err := buildConfig(opts)
		assert.ErrorIs(t, err, argio.ErrNoParsers)
	})
}
