package filetypes

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// TypeInfo is the display metadata for one file type.
type TypeInfo struct {
	Icon  string `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label"`
}

// Registry maps backend file types (pdf, docx, ...) to display metadata.
// Process-wide: loaded once from the embedded YAML, refreshed only via an
// explicit Reload.
type Registry struct {
	types    map[string]TypeInfo
	fallback TypeInfo
	mu       sync.RWMutex
}

// NewRegistry creates a registry and loads the embedded YAML file.
func NewRegistry() (*Registry, error) {
	r := &Registry{}
	if err := r.Reload(); err != nil {
		return nil, fmt.Errorf("failed to load file type registry: %w", err)
	}
	return r, nil
}

// Reload re-reads the embedded YAML, replacing the registry contents.
func (r *Registry) Reload() error {
	data, err := configFiles.ReadFile("config/filetypes.yaml")
	if err != nil {
		return fmt.Errorf("failed to read filetypes.yaml: %w", err)
	}

	var file struct {
		Fallback  TypeInfo            `yaml:"fallback"`
		FileTypes map[string]TypeInfo `yaml:"file_types"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal filetypes.yaml: %w", err)
	}

	r.mu.Lock()
	r.types = file.FileTypes
	r.fallback = file.Fallback
	r.mu.Unlock()

	return nil
}

// Lookup returns the display metadata for a file type, falling back to the
// generic entry for unknown types. Matching is case-insensitive.
func (r *Registry) Lookup(fileType string) TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info, ok := r.types[strings.ToLower(fileType)]; ok {
		return info
	}
	return r.fallback
}

// Known returns whether the registry has an explicit entry for the type.
func (r *Registry) Known(fileType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[strings.ToLower(fileType)]
	return ok
}
