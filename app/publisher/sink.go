package publisher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// OutputRecord is one finished document ready for the sink.
type OutputRecord struct {
	Dir     string
	Name    string
	Content string
}

// Path returns the full file path the record is written to.
func (r OutputRecord) Path() string {
	return filepath.Join(r.Dir, r.Name+".md")
}

// Sink stores finished documents.
type Sink interface {
	Write(record OutputRecord) error
}

// FileSink writes documents into a directory on disk, creating it as
// needed. An existing file at the target path is overwritten.
type FileSink struct{}

func NewFileSink() *FileSink {
	return &FileSink{}
}

func (s *FileSink) Write(record OutputRecord) error {
	if err := os.MkdirAll(record.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", record.Dir, err)
	}

	path := record.Path()
	if err := os.WriteFile(path, []byte(record.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	slog.Info("Wrote file", "path", path, "identifier", record.Name)
	return nil
}

// DryRunSink logs what would be written without touching the
// filesystem.
type DryRunSink struct{}

func NewDryRunSink() *DryRunSink {
	return &DryRunSink{}
}

func (s *DryRunSink) Write(record OutputRecord) error {
	slog.Info("Would write file", "path", record.Path(), "identifier", record.Name, "bytes", len(record.Content))
	return nil
}
