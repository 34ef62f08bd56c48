package argio

import (
	"errors"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ErrNoParsers is returned by Builder.Build when no parser kind was
// enabled.
var ErrNoParsers = errors.New("config must contain at least one parser")

// claimer is the dispatch-facing surface of a parser unit.
type claimer interface {
	Weight() uint8
	claim(input string) (Source, bool)
	errorKind() Kind
}

// Config is an immutable registry of parser units, at most one per kind.
// Build one with NewBuilder or take DefaultConfig. Config values are cheap
// to copy and safe to share between goroutines.
type Config struct {
	file  *FileParser
	stdin *StdinParser
	text  *TextParser
}

// DefaultConfig returns a Config with all three parser kinds at their
// defaults: files at "@", stdin at "-", and text as the catch-all.
func DefaultConfig() Config {
	return NewBuilder().File().Stdin().Text().MustBuild()
}

// Builder assembles a Config. Methods chain; each kind can be enabled with
// its defaults or with a customized parser, and enabling a kind twice keeps
// the last parser.
type Builder struct {
	file  *FileParser
	stdin *StdinParser
	text  *TextParser
}

// NewBuilder returns a Builder with no parser kinds enabled.
func NewBuilder() *Builder {
	return &Builder{}
}

// File enables file resolution with NewFileParser defaults.
func (b *Builder) File() *Builder {
	return b.WithFile(NewFileParser())
}

// WithFile enables file resolution using p.
func (b *Builder) WithFile(p FileParser) *Builder {
	b.file = &p
	return b
}

// Stdin enables stdin resolution with NewStdinParser defaults.
func (b *Builder) Stdin() *Builder {
	return b.WithStdin(NewStdinParser())
}

// WithStdin enables stdin resolution using p.
func (b *Builder) WithStdin(p StdinParser) *Builder {
	b.stdin = &p
	return b
}

// Text enables text resolution with NewTextParser defaults.
func (b *Builder) Text() *Builder {
	return b.WithText(NewTextParser())
}

// WithText enables text resolution using p.
func (b *Builder) WithText(p TextParser) *Builder {
	b.text = &p
	return b
}

// IsValid reports whether at least one parser kind is enabled.
func (b *Builder) IsValid() bool {
	return b.file != nil || b.stdin != nil || b.text != nil
}

// Build returns the assembled Config, or ErrNoParsers if no parser kind was
// enabled.
func (b *Builder) Build() (Config, error) {
	if !b.IsValid() {
		return Config{}, ErrNoParsers
	}
	return Config{file: b.file, stdin: b.stdin, text: b.text}, nil
}

// MustBuild is Build but panics on error.
func (b *Builder) MustBuild() Config {
	return lo.Must(b.Build())
}

// parsers returns the enabled units in fixed kind order. That order is the
// tie-breaker when weights collide: file, then stdin, then text.
func (c Config) parsers() []claimer {
	units := make([]claimer, 0, 3)
	if c.file != nil {
		units = append(units, *c.file)
	}
	if c.stdin != nil {
		units = append(units, *c.stdin)
	}
	if c.text != nil {
		units = append(units, *c.text)
	}
	return units
}

// resolve runs the dispatch competition: units ordered by ascending weight
// each get a chance to claim the input, and the first claim wins. When all
// of them reject, the returned *ParseError carries every rejecting kind.
func (c Config) resolve(input string) (Source, error) {
	units := c.parsers()
	slices.SortStableFunc(units, toSortFunc(claimer.Weight))

	var errSet *ParseError
	for _, u := range units {
		if src, ok := u.claim(input); ok {
			return src, nil
		}
		slog.Debug("fallback to next parser", "kind", u.errorKind())
		if errSet == nil {
			errSet = NewParseError(u.errorKind())
		} else {
			errSet.Insert(u.errorKind())
		}
	}

	if errSet == nil {
		panic("argio: Config must contain at least one parser, this is a bug")
	}
	return nil, errSet
}

// Parse resolves input against the configured parsers.
func (c Config) Parse(input string) (Input, error) {
	src, err := c.resolve(input)
	if err != nil {
		return Input{}, err
	}
	return Input{source: src}, nil
}

// ParseArg resolves a command line argument. Unlike Parse it gates the
// argument on UTF-8 validity first, failing with KindRequiresUTF8, since
// arguments handed over by the OS are not guaranteed to be valid UTF-8.
func (c Config) ParseArg(arg string) (Input, error) {
	if !utf8.ValidString(arg) {
		return Input{}, NewParseError(KindRequiresUTF8)
	}
	return c.Parse(arg)
}

// ParseBytes resolves a raw byte argument with the same UTF-8 gate as
// ParseArg.
func (c Config) ParseBytes(b []byte) (Input, error) {
	if !utf8.Valid(b) {
		return Input{}, NewParseError(KindRequiresUTF8)
	}
	return c.Parse(string(b))
}
