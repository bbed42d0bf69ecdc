// Package fileutil provides size-limited reads of input documents and atomic
// writes of report files.
package fileutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/thoreinstein/speclint/internal/errors"
)

// WriteFileAtomic streams the output of write into path. The content goes
// to a temporary file in the same directory which is synced and renamed over
// path only when write succeeds, so readers see either the old file or the
// complete new one. The parent directory must exist.
func WriteFileAtomic(path string, perm os.FileMode, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".speclint-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	renamed := false
	defer func() {
		if !renamed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// AtomicWriteFile writes data to path with WriteFileAtomic.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return WriteFileAtomic(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return errors.Wrap(err, "writing temp file")
	})
}
