package upload

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// Identity is how an item is addressed before the backend knows about it.
type Identity struct {
	Name string
	Size int64
}

func (id Identity) String() string {
	return fmt.Sprintf("%s (%d bytes)", id.Name, id.Size)
}

// File is a payload selected for upload plus its metadata.
type File struct {
	Name     string
	Size     int64
	MimeType string
	open     func() (io.ReadCloser, error)
}

func NewFile(name string, size int64, mimeType string, open func() (io.ReadCloser, error)) File {
	return File{Name: name, Size: size, MimeType: mimeType, open: open}
}

// BytesFile wraps an in-memory payload. An empty mimeType is detected
// from the content.
func BytesFile(name, mimeType string, data []byte) File {
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	return NewFile(name, int64(len(data)), mimeType, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	})
}

// OpenFile describes a file on disk. The content is read only when the
// upload starts.
func OpenFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return File{}, fmt.Errorf("detect type of %s: %w", path, err)
	}
	return NewFile(filepath.Base(path), info.Size(), mt.String(), func() (io.ReadCloser, error) {
		return os.Open(path)
	}), nil
}

func (f File) Identity() Identity {
	return Identity{Name: f.Name, Size: f.Size}
}

// Open returns the file content. Callers must close it.
func (f File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, fmt.Errorf("%s: no content", f.Name)
	}
	return f.open()
}
