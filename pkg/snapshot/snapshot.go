// Package snapshot decodes page captures produced by a DOM-side
// collaborator (browser extension, headless capture script) into the
// probe and signal values the core consumes.
package snapshot

import (
	"fmt"
	"net/url"
	"os"

	"github.com/goccy/go-json"

	"fafscan/pkg/detector"
	"fafscan/pkg/scoring"
)

// Snapshot is one captured page: location, detected globals, and the
// DOM observations used as scoring evidence.
type Snapshot struct {
	URL         string            `json:"url"`
	Hostname    string            `json:"hostname"`
	Pathname    string            `json:"pathname"`
	GlobalFlags []string          `json:"global_flags"`
	Signals     scoring.SignalSet `json:"signals"`
}

// Load reads and parses a snapshot file.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a snapshot document.
func Parse(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	if err := s.validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// validate enforces the capture-side preconditions the core assumes:
// a usable location and a non-negative code-block count. Hostname and
// pathname are derived from the URL when the capturer omitted them.
func (s *Snapshot) validate() error {
	if s.URL == "" && s.Hostname == "" {
		return fmt.Errorf("snapshot has neither url nor hostname")
	}

	if s.URL != "" {
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("invalid snapshot url %q: %w", s.URL, err)
		}
		if s.Hostname == "" {
			s.Hostname = u.Hostname()
		}
		if s.Pathname == "" {
			s.Pathname = u.Path
		}
	}

	if s.Signals.CodeBlockCount < 0 {
		return fmt.Errorf("negative code_block_count %d", s.Signals.CodeBlockCount)
	}

	return nil
}

// Probe converts the snapshot to the detector's input.
func (s Snapshot) Probe() detector.PageProbe {
	return detector.PageProbe{
		Hostname:    s.Hostname,
		Pathname:    s.Pathname,
		GlobalFlags: s.GlobalFlags,
	}
}
