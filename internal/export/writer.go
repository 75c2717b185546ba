// Package export generates AsciiDoc reference documentation from a
// client metadata snapshot, one documentation tree per locale.
package export

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	billy "github.com/go-git/go-billy/v5"
)

// DocWriter accumulates one generated documentation file. Content goes
// to a sibling temp file first; Finalize replaces the target only when
// the content differs, so unchanged files keep their modification time.
type DocWriter struct {
	fs      billy.Filesystem
	target  string
	tmpPath string
	file    billy.File
	werr    error // first write error, sticky
}

// NewDocWriter opens a temp file next to the target path. The target's
// directory must already exist in the documentation tree; billy
// filesystems create missing parents on Create, which would hide a
// misconfigured output root, so the directory is checked first.
func NewDocWriter(fsys billy.Filesystem, dir, name string) (*DocWriter, error) {
	if _, err := fsys.Stat(dir); err != nil {
		return nil, fmt.Errorf("output directory %s: %w", dir, err)
	}
	target := fsys.Join(dir, name)
	tmpPath := target + ".tmp"
	file, err := fsys.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", tmpPath, err)
	}
	return &DocWriter{fs: fsys, target: target, tmpPath: tmpPath, file: file}, nil
}

// WriteString appends s to the file. Write errors are remembered and
// surfaced by Finalize.
func (w *DocWriter) WriteString(s string) {
	if w.werr != nil {
		return
	}
	if _, err := io.WriteString(w.file, s); err != nil {
		w.werr = fmt.Errorf("failed to write %s: %w", w.tmpPath, err)
	}
}

// Writef appends a formatted string to the file.
func (w *DocWriter) Writef(format string, args ...interface{}) {
	w.WriteString(fmt.Sprintf(format, args...))
}

// WriteHeader writes the banner marking the file as generated.
func (w *DocWriter) WriteHeader() {
	w.WriteString("//\n")
	w.WriteString("// This file is auto-generated by weedoc.\n")
	w.WriteString("// DO NOT EDIT BY HAND!\n")
	w.WriteString("//\n")
}

// Finalize closes the temp file and installs it as the target when the
// content changed. It reports whether the target was updated and counts
// the file under the given category.
func (w *DocWriter) Finalize(category string, counters *RunCounters) (bool, error) {
	closeErr := w.file.Close()
	if w.werr != nil {
		_ = w.fs.Remove(w.tmpPath)
		return false, w.werr
	}
	if closeErr != nil {
		_ = w.fs.Remove(w.tmpPath)
		return false, fmt.Errorf("failed to close %s: %w", w.tmpPath, closeErr)
	}

	oldSum, err := w.digest(w.target)
	if err != nil {
		_ = w.fs.Remove(w.tmpPath)
		return false, err
	}
	newSum, err := w.digest(w.tmpPath)
	if err != nil {
		_ = w.fs.Remove(w.tmpPath)
		return false, err
	}

	updated := oldSum != newSum
	if updated {
		if _, err := w.fs.Stat(w.target); err == nil {
			if err := w.fs.Remove(w.target); err != nil {
				_ = w.fs.Remove(w.tmpPath)
				return false, fmt.Errorf("failed to remove %s: %w", w.target, err)
			}
		}
		if err := w.fs.Rename(w.tmpPath, w.target); err != nil {
			return false, fmt.Errorf("failed to rename %s: %w", w.tmpPath, err)
		}
	} else {
		_ = w.fs.Remove(w.tmpPath)
	}

	if counters != nil {
		counters.CountFile(category, updated)
	}
	return updated, nil
}

// digest returns the sha256 of a file, or "" when the file is missing.
func (w *DocWriter) digest(path string) (string, error) {
	f, err := w.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
