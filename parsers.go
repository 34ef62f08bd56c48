package argio

import "strings"

// Default markers and weights for each parser kind. Lower weight means an
// earlier chance to claim the input during dispatch.
const (
	DefaultFileMarker  = "@"
	DefaultStdinMarker = "-"
	DefaultTextMarker  = ""

	DefaultFileWeight  uint8 = 130
	DefaultStdinWeight uint8 = 140
	DefaultTextWeight  uint8 = 255
)

// MatchFunc decides whether a parser claims input, given the parser's
// configured marker. On a claim it returns the remainder of input after the
// marker; the remainder becomes the payload for kinds that carry one.
type MatchFunc func(input, marker string) (rest string, ok bool)

// MatchPrefix claims input starting with marker and returns everything
// after it. An empty marker claims any input whole. This is the default
// matching for FileParser and TextParser.
func MatchPrefix(input, marker string) (string, bool) {
	return strings.CutPrefix(input, marker)
}

// MatchExact claims only input that is the marker itself, leaving no
// remainder. This is the default matching for StdinParser.
func MatchExact(input, marker string) (string, bool) {
	if input != marker {
		return "", false
	}
	return "", true
}

// FileParser claims arguments that name a file to read. With the defaults,
// "@some/path" resolves to the file at "some/path". A bare "@" claims with
// an empty path; whether that path is usable is decided at access time, not
// here.
type FileParser struct {
	marker string
	match  MatchFunc
	weight uint8
}

// NewFileParser returns a FileParser with marker "@", prefix matching, and
// weight DefaultFileWeight.
func NewFileParser() FileParser {
	return FileParser{marker: DefaultFileMarker, match: MatchPrefix, weight: DefaultFileWeight}
}

// WithMarker returns a copy of p with the marker replaced.
func (p FileParser) WithMarker(marker string) FileParser {
	p.marker = marker
	return p
}

// WithMatchFunc returns a copy of p with the matching logic replaced.
func (p FileParser) WithMatchFunc(match MatchFunc) FileParser {
	p.match = match
	return p
}

// WithWeight returns a copy of p with the dispatch weight replaced.
func (p FileParser) WithWeight(weight uint8) FileParser {
	p.weight = weight
	return p
}

// Marker returns the configured marker.
func (p FileParser) Marker() string { return p.marker }

// Weight returns the dispatch weight.
func (p FileParser) Weight() uint8 { return p.weight }

func (p FileParser) claim(input string) (Source, bool) {
	rest, ok := p.match(input, p.marker)
	if !ok {
		return nil, false
	}
	return FileSource{Path: rest}, true
}

func (FileParser) errorKind() Kind { return KindFile }

// StdinParser claims arguments that stand for standard input. The default
// matching is exact: "-" claims, "-x" does not. A custom MatchFunc may
// claim on looser terms; any remainder it returns is discarded because the
// payload is stdin itself.
type StdinParser struct {
	marker string
	match  MatchFunc
	weight uint8
}

// NewStdinParser returns a StdinParser with marker "-", exact matching, and
// weight DefaultStdinWeight.
func NewStdinParser() StdinParser {
	return StdinParser{marker: DefaultStdinMarker, match: MatchExact, weight: DefaultStdinWeight}
}

// WithMarker returns a copy of p with the marker replaced.
func (p StdinParser) WithMarker(marker string) StdinParser {
	p.marker = marker
	return p
}

// WithMatchFunc returns a copy of p with the matching logic replaced.
func (p StdinParser) WithMatchFunc(match MatchFunc) StdinParser {
	p.match = match
	return p
}

// WithWeight returns a copy of p with the dispatch weight replaced.
func (p StdinParser) WithWeight(weight uint8) StdinParser {
	p.weight = weight
	return p
}

// Marker returns the configured marker.
func (p StdinParser) Marker() string { return p.marker }

// Weight returns the dispatch weight.
func (p StdinParser) Weight() uint8 { return p.weight }

func (p StdinParser) claim(input string) (Source, bool) {
	if _, ok := p.match(input, p.marker); !ok {
		return nil, false
	}
	return StdinSource{}, true
}

func (StdinParser) errorKind() Kind { return KindStdin }

// TextParser claims arguments as literal text. The default marker is empty,
// which makes it claim anything and pass the whole input through; a
// non-empty marker restricts it to prefixed arguments, like FileParser.
type TextParser struct {
	marker string
	match  MatchFunc
	weight uint8
}

// NewTextParser returns a TextParser with an empty marker, prefix matching,
// and weight DefaultTextWeight, the catch-all of DefaultConfig.
func NewTextParser() TextParser {
	return TextParser{marker: DefaultTextMarker, match: MatchPrefix, weight: DefaultTextWeight}
}

// WithMarker returns a copy of p with the marker replaced.
func (p TextParser) WithMarker(marker string) TextParser {
	p.marker = marker
	return p
}

// WithMatchFunc returns a copy of p with the matching logic replaced.
func (p TextParser) WithMatchFunc(match MatchFunc) TextParser {
	p.match = match
	return p
}

// WithWeight returns a copy of p with the dispatch weight replaced.
func (p TextParser) WithWeight(weight uint8) TextParser {
	p.weight = weight
	return p
}

// Marker returns the configured marker.
func (p TextParser) Marker() string { return p.marker }

// Weight returns the dispatch weight.
func (p TextParser) Weight() uint8 { return p.weight }

func (p TextParser) claim(input string) (Source, bool) {
	rest, ok := p.match(input, p.marker)
	if !ok {
		return nil, false
	}
	return TextSource{Content: rest}, true
}

func (TextParser) errorKind() Kind { return KindText }
