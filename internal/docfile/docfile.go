// Package docfile is the file boundary of a session: the document is read
// once when the session starts and written back in place when it ends.
package docfile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultName is used when no path is given.
const DefaultName = "calcpad.txt"

var ErrClosed = errors.New("document file already closed")

// File is an open document. The handle stays open for the whole session so
// the save rewrites the same file.
type File struct {
	path string
	f    *os.File
	text string
}

// Open opens path for reading and writing, creating it if needed, and reads
// its full contents.
func Open(path string) (*File, error) {
	if path == "" {
		path = DefaultName
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &File{path: path, f: f, text: string(data)}, nil
}

func (d *File) Path() string { return d.path }

// Text returns the contents read by Open.
func (d *File) Text() string { return d.text }

// Save truncates the file and writes text from the start.
func (d *File) Save(text string) error {
	if d.f == nil {
		return ErrClosed
	}
	if err := d.f.Truncate(0); err != nil {
		return fmt.Errorf("truncating %s: %w", d.path, err)
	}
	if _, err := d.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking %s: %w", d.path, err)
	}
	if _, err := io.WriteString(d.f, text); err != nil {
		return fmt.Errorf("writing %s: %w", d.path, err)
	}
	if err := d.f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", d.path, err)
	}
	d.text = text
	return nil
}

func (d *File) Close() error {
	if d.f == nil {
		return ErrClosed
	}
	err := d.f.Close()
	d.f = nil
	return err
}
