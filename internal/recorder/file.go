package recorder

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FileRecorder appends report blocks to a plain text file.
// The file is opened and closed around every append; no locking is done.
type FileRecorder struct {
	Path string
	log  *zap.Logger
}

// NewFileRecorder creates a recorder writing to path.
func NewFileRecorder(path string, log *zap.Logger) *FileRecorder {
	return &FileRecorder{Path: path, log: log}
}

// Append writes text at the end of the file, creating it when missing.
func (r *FileRecorder) Append(text string) error {
	if dir := filepath.Dir(r.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: r.Path, Err: errors.Wrap(err, "create directory")}
		}
	}

	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &WriteError{Path: r.Path, Err: errors.Wrap(err, "open")}
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return &WriteError{Path: r.Path, Err: errors.Wrap(err, "write")}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: r.Path, Err: errors.Wrap(err, "close")}
	}

	r.log.Debug("report appended", zap.String("path", r.Path), zap.Int("bytes", len(text)))
	return nil
}

func (r *FileRecorder) Close() error { return nil }
