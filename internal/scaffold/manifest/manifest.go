// Package manifest reads and writes the module.yaml each generated module
// carries. The manifest is the single holder of generation metadata, in
// particular the creation timestamp, which is deliberately kept out of all
// other generated files so output stays byte-for-byte reproducible.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest file inside a generated module directory.
const FileName = "module.yaml"

// ModuleManifest describes one generated module.
type ModuleManifest struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Domain      string `yaml:"domain"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Email       string `yaml:"email,omitempty"`

	MCPServer  bool `yaml:"mcp_server"`
	WithDocker bool `yaml:"with_docker"`

	GeneratedBy string    `yaml:"generated_by"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// Validator checks a manifest before it is persisted or after it is loaded.
type Validator[T any] interface {
	Validate(m T) error
}

// Manager loads and saves a YAML manifest under a fixed project root.
type Manager[T any] struct {
	root      string
	fileName  string
	validator Validator[T]
}

// NewManager creates a manifest manager rooted at projectRoot.
func NewManager[T any](projectRoot, fileName string, validator Validator[T]) *Manager[T] {
	return &Manager[T]{root: projectRoot, fileName: fileName, validator: validator}
}

func (m *Manager[T]) path() string {
	return filepath.Join(m.root, m.fileName)
}

// Exists reports whether the manifest file is present.
func (m *Manager[T]) Exists() bool {
	_, err := os.Stat(m.path())
	return err == nil
}

// Load reads and validates the manifest.
func (m *Manager[T]) Load() (T, error) {
	var manifest T
	data, err := os.ReadFile(m.path())
	if err != nil {
		return manifest, fmt.Errorf("failed to read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validator.Validate(manifest); err != nil {
		return manifest, fmt.Errorf("invalid manifest: %w", err)
	}
	return manifest, nil
}

// Save validates and writes the manifest.
func (m *Manager[T]) Save(manifest T) error {
	if err := m.validator.Validate(manifest); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(m.path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ModuleValidator validates generated-module manifests.
type ModuleValidator struct{}

// Validate checks the required manifest fields.
func (ModuleValidator) Validate(m *ModuleManifest) error {
	if m == nil {
		return fmt.Errorf("manifest is required")
	}
	if m.Name == "" {
		return fmt.Errorf("module name is required")
	}
	if m.Type == "" {
		return fmt.Errorf("module type is required")
	}
	if m.Domain == "" {
		return fmt.Errorf("domain is required")
	}
	return nil
}

// NewModuleManager returns a manager for a generated module's module.yaml.
func NewModuleManager(moduleRoot string) *Manager[*ModuleManifest] {
	return NewManager[*ModuleManifest](moduleRoot, FileName, ModuleValidator{})
}

// Marshal renders a manifest to YAML without touching the filesystem. The
// generator uses this to stage module.yaml alongside rendered templates so
// the whole file set is written as one unit.
func Marshal(m *ModuleManifest) ([]byte, error) {
	if err := (ModuleValidator{}).Validate(m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}
