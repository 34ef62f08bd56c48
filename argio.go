// Package argio resolves command line arguments into input sources.
//
// A single string argument conventionally selects one of three sources:
// "-" means standard input, "@path" means the contents of a file, and
// anything else is the literal text itself. This package turns that
// convention into a configurable resolution step. Marker strings, matching
// logic, and dispatch priorities can be customized per source kind, and
// kinds can be left out entirely.
//
// Resolution is pure string inspection. It never touches the filesystem or
// standard input; it only decides where the payload lives and returns an
// Input describing it. I/O starts when the caller asks for it through
// Input.Access or Input.ReadAll, so resolving "@/no/such/file" succeeds and
// only accessing it fails.
//
// The package level Parse functions use DefaultConfig. Custom registries
// are assembled with NewBuilder:
//
//	cfg := argio.NewBuilder().
//		WithFile(argio.NewFileParser().WithMarker("file://")).
//		Text().
//		MustBuild()
package argio

// Input is a resolved argument. It records which source the argument
// selected and carries everything needed to read the payload later. Inputs
// are produced by the Parse functions; the zero value has no source and
// cannot be accessed.
type Input struct {
	source Source
}

// Source returns the resolved source.
func (i Input) Source() Source {
	return i.source
}

func (i Input) String() string {
	if i.source == nil {
		return "invalid"
	}
	return i.source.String()
}

// Parse resolves input with DefaultConfig.
func Parse(input string) (Input, error) {
	return DefaultConfig().Parse(input)
}

// ParseArg resolves a command line argument with DefaultConfig, rejecting
// invalid UTF-8.
func ParseArg(arg string) (Input, error) {
	return DefaultConfig().ParseArg(arg)
}

// ParseBytes resolves a raw byte argument with DefaultConfig, rejecting
// invalid UTF-8.
func ParseBytes(b []byte) (Input, error) {
	return DefaultConfig().ParseBytes(b)
}
