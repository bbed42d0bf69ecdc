package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/speclint/internal/errors"
)

// MaxFileSize is the largest input document speclint reads (16MB).
const MaxFileSize = 16 << 20

// ErrFileTooLarge indicates that an input exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadAllWithLimit reads r to the end, failing with ErrFileTooLarge once
// more than MaxFileSize bytes arrive.
func ReadAllWithLimit(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// ReadFileWithLimit reads the file at path with the same limit as
// ReadAllWithLimit, rejecting oversized regular files before reading them.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return ReadAllWithLimit(f)
}
