package generator

import (
	"bytes"
	"os"

	"github.com/thorn-jmh/errorst"
)

// FileOut is a scoped output target: content is buffered while a class is
// rendered, and Done compares it against any prior file at the path, writing
// only on difference. Unchanged generated files are never touched.
type FileOut struct {
	path string
	buf  bytes.Buffer
}

func NewFileOut(path string) *FileOut {
	return &FileOut{path: path}
}

func (f *FileOut) Path() string { return f.path }

// Write implements io.Writer over the buffered content.
func (f *FileOut) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// Done releases the target: it reports whether the buffered content differs
// from the existing file, and performs the write only then.
func (f *FileOut) Done() (bool, error) {
	existing, err := os.ReadFile(f.path)
	if err == nil && bytes.Equal(existing, f.buf.Bytes()) {
		return false, nil
	}

	if err := os.WriteFile(f.path, f.buf.Bytes(), 0o644); err != nil {
		return false, errorst.NewError("failed to write output file %s: %w", f.path, err)
	}
	return true, nil
}
