package argio

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Reader streams the payload of a resolved input. Close releases the file
// handle for file sources and is a no-op for the others; stdin is shared
// with the rest of the process and is never closed here.
type Reader struct {
	rc io.ReadCloser
}

var _ io.ReadCloser = (*Reader)(nil)

func (r *Reader) Read(p []byte) (int, error) {
	return r.rc.Read(p)
}

func (r *Reader) Close() error {
	return r.rc.Close()
}

// Access opens the input's source for reading on the OS filesystem. This is
// the first point in the pipeline that performs I/O: a file source that
// resolved cleanly can still fail here, with an *AccessError carrying the
// path.
func (i Input) Access() (*Reader, error) {
	return i.AccessFS(afero.NewOsFs())
}

// AccessFS is Access against the given filesystem. Only file sources touch
// fs; stdin and text sources ignore it.
func (i Input) AccessFS(fs afero.Fs) (*Reader, error) {
	switch s := i.source.(type) {
	case StdinSource:
		return &Reader{rc: io.NopCloser(os.Stdin)}, nil
	case FileSource:
		f, err := fs.Open(s.Path)
		if err != nil {
			return nil, &AccessError{Path: s.Path, Err: err}
		}
		return &Reader{rc: f}, nil
	case TextSource:
		return &Reader{rc: io.NopCloser(strings.NewReader(s.Content))}, nil
	default:
		panic("argio: Input has no source")
	}
}

// ReadAll accesses the source and reads it to the end.
func (i Input) ReadAll() ([]byte, error) {
	return i.ReadAllFS(afero.NewOsFs())
}

// ReadAllFS is ReadAll against the given filesystem.
func (i Input) ReadAllFS(fs afero.Fs) ([]byte, error) {
	r, err := i.AccessFS(fs)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
