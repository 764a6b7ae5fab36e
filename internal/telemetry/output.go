package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ConfigWriter is implemented by configurations that can snapshot
// themselves next to the telemetry.
type ConfigWriter interface {
	WriteYAML(path string) error
}

// Recorder appends pass statistics to passes.csv in an output directory.
type Recorder struct {
	dir           string
	passFile      *os.File
	headerWritten bool
}

// NewRecorder creates the output directory and opens passes.csv.
// Returns nil if dir is empty (output disabled); a nil Recorder accepts
// every call as a no-op.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "passes.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating passes.csv: %w", err)
	}
	return &Recorder{dir: dir, passFile: f}, nil
}

// WriteConfig saves the run configuration as config.yaml.
func (r *Recorder) WriteConfig(cfg ConfigWriter) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, "config.yaml"))
}

// WritePass appends one record to passes.csv.
func (r *Recorder) WritePass(stats PassStats) error {
	if r == nil {
		return nil
	}
	records := []PassStats{stats}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.passFile); err != nil {
			return fmt.Errorf("writing pass stats: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.passFile); err != nil {
		return fmt.Errorf("writing pass stats: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close closes passes.csv.
func (r *Recorder) Close() error {
	if r == nil || r.passFile == nil {
		return nil
	}
	return r.passFile.Close()
}
