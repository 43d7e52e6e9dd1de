// Package config loads the capture tool's configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// CaptureConfig is the JSON schema for stanwire-capture. Fields are
// pointers so a file can override any subset of the defaults; flags
// override the file in turn.
type CaptureConfig struct {
	// SocketPath is the Unix domain socket to listen on.
	SocketPath *string `json:"socket_path,omitempty"`
	// DBPath is the SQLite database the run is captured into.
	DBPath *string `json:"db_path,omitempty"`
	// Quiet suppresses per-connection diagnostics.
	Quiet *bool `json:"quiet,omitempty"`
}

// Capture holds the resolved configuration.
type Capture struct {
	SocketPath string
	DBPath     string
	Quiet      bool
}

// DefaultCapture returns the built-in defaults.
func DefaultCapture() Capture {
	return Capture{
		SocketPath: "/tmp/stanwire.sock",
		DBPath:     "stanwire_capture.db",
		Quiet:      false,
	}
}

// LoadCapture reads a JSON config file and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func LoadCapture(path string) (Capture, error) {
	resolved := DefaultCapture()
	if path == "" {
		return resolved, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return resolved, fmt.Errorf("read capture config: %w", err)
	}
	var file CaptureConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return resolved, fmt.Errorf("parse capture config %s: %w", path, err)
	}

	if file.SocketPath != nil {
		resolved.SocketPath = *file.SocketPath
	}
	if file.DBPath != nil {
		resolved.DBPath = *file.DBPath
	}
	if file.Quiet != nil {
		resolved.Quiet = *file.Quiet
	}
	return resolved, nil
}
