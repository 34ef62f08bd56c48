package argio

import "fmt"

// Source identifies where a resolved input's payload lives. It is a closed
// set: StdinSource, FileSource, and TextSource are the only implementations.
type Source interface {
	fmt.Stringer
	isSource()
}

// StdinSource selects the process's standard input.
type StdinSource struct{}

// FileSource selects the contents of the file at Path. Path is whatever
// remained after the file marker; resolution does not check that it points
// at anything readable.
type FileSource struct {
	Path string
}

// TextSource carries the payload inline.
type TextSource struct {
	Content string
}

func (StdinSource) isSource() {}
func (FileSource) isSource()  {}
func (TextSource) isSource()  {}

func (StdinSource) String() string { return "stdin" }

func (s FileSource) String() string { return fmt.Sprintf("file(%s)", s.Path) }

func (s TextSource) String() string { return fmt.Sprintf("text(%d bytes)", len(s.Content)) }
