package argio

import (
	"fmt"
	"strings"

	"spheric.cloud/xiter"
)

// Kind is a bit set of resolution failure categories. The low bits identify
// parser kinds; general conditions live in a separate range so the two
// never collide.
type Kind uint32

const (
	// Parser kind failures.
	KindText  Kind = 0x1
	KindStdin Kind = 0x2
	KindFile  Kind = 0x4

	// General failures.
	KindRequiresUTF8 Kind = 0x1_0000
)

// allKinds lists every defined kind in rendering order.
var allKinds = []Kind{KindText, KindStdin, KindFile, KindRequiresUTF8}

func (k Kind) name() string {
	switch k {
	case KindText:
		return "text"
	case KindStdin:
		return "stdin"
	case KindFile:
		return "file"
	case KindRequiresUTF8:
		return "requires_utf8"
	default:
		return fmt.Sprintf("kind(0x%x)", uint32(k))
	}
}

// String renders the set as lowercase kind names, "|"-joined when more than
// one bit is set.
func (k Kind) String() string {
	if k == 0 {
		return "none"
	}

	var names []string
	rest := k
	for _, kind := range allKinds {
		if rest&kind == 0 {
			continue
		}
		names = append(names, kind.name())
		rest &^= kind
	}
	if rest != 0 {
		names = append(names, rest.name())
	}
	return strings.Join(names, "|")
}

// ParseError is the resolution failure for one argument: the set of parser
// kinds that rejected it, or the general condition that stopped dispatch
// before any parser ran.
type ParseError struct {
	kinds Kind
}

// NewParseError returns a ParseError containing kinds.
func NewParseError(kinds Kind) *ParseError {
	return &ParseError{kinds: kinds}
}

// Insert adds kinds to the set.
func (e *ParseError) Insert(kinds Kind) {
	e.kinds |= kinds
}

// Merge unions the kinds of other into e. A nil other is a no-op.
func (e *ParseError) Merge(other *ParseError) {
	if other == nil {
		return
	}
	e.kinds |= other.kinds
}

// Contains reports whether every bit of kinds is in the set.
func (e *ParseError) Contains(kinds Kind) bool {
	return e.kinds&kinds == kinds
}

// Kinds returns the raw kind set.
func (e *ParseError) Kinds() Kind {
	return e.kinds
}

// Count returns how many defined kinds are in the set.
func (e *ParseError) Count() int {
	return xiter.Count(xiter.Of(allKinds...), e.Contains)
}

func (e *ParseError) Error() string {
	if e.Count() > 1 {
		return fmt.Sprintf("multiple parsers failed [%s]", e.kinds)
	}
	return fmt.Sprintf("parser failed [%s]", e.kinds)
}

// AccessError reports a failure to open a resolved source. It only arises
// for file sources; Path is the path the file parser extracted.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("file access failed: unable to open %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AccessError) Unwrap() error {
	return e.Err
}
