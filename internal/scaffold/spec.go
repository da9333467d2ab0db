package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/modkit-dev/modkit/pkg/validators"
)

// ModuleType selects which template set a module is generated from.
type ModuleType string

const (
	ModuleTypeCore        ModuleType = "CORE"
	ModuleTypeIntegration ModuleType = "INTEGRATION"
	ModuleTypeSupporting  ModuleType = "SUPPORTING"
	ModuleTypeTechnical   ModuleType = "TECHNICAL"
)

// ModuleTypes lists the closed set of recognized types in display order.
func ModuleTypes() []ModuleType {
	return []ModuleType{ModuleTypeCore, ModuleTypeIntegration, ModuleTypeSupporting, ModuleTypeTechnical}
}

// ParseModuleType matches a type string case-insensitively against the
// recognized set and returns the canonical uppercase form.
func ParseModuleType(s string) (ModuleType, error) {
	normalized := ModuleType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range ModuleTypes() {
		if normalized == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of CORE, INTEGRATION, SUPPORTING, TECHNICAL)", ErrInvalidType, s)
}

// Description returns the one-line role of a module type, used in generated
// docs and stub docstrings.
func (t ModuleType) Description() string {
	switch t {
	case ModuleTypeCore:
		return "core business logic that models the domain itself"
	case ModuleTypeIntegration:
		return "adapter for an external system or third-party API"
	case ModuleTypeSupporting:
		return "supporting services that assist the core domain"
	case ModuleTypeTechnical:
		return "technical infrastructure shared across modules"
	default:
		return ""
	}
}

// Options carries the flag-driven knobs of a single generation request.
type Options struct {
	OutputDir  string
	WithDocker bool
	MCPServer  bool
	Force      bool
}

// SpecInput is the raw, unvalidated input to ParseSpec, usually sourced
// from CLI flags or a batch file entry.
type SpecInput struct {
	Name        string
	Type        string
	Domain      string
	Description string
	Version     string
	Author      string
	Email       string
	Options     Options
}

// ModuleSpec is a validated, immutable module generation request. It carries
// the three casing variants the templates need: kebab-case for files and
// directories, snake_case for identifiers, PascalCase for type names.
type ModuleSpec struct {
	Name       string
	SnakeName  string
	PascalName string

	Type        ModuleType
	Domain      string
	Description string
	Version     string
	Author      string
	Email       string

	Options Options
}

// ParseSpec validates a SpecInput and derives the casing variants. It is
// pure: no filesystem access beyond path resolution, no side effects.
func ParseSpec(in SpecInput) (*ModuleSpec, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := validators.ValidateModuleName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	typ, err := ParseModuleType(in.Type)
	if err != nil {
		return nil, err
	}

	domain := strings.TrimSpace(in.Domain)
	if err := validators.ValidateDomain(domain); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}

	version := strings.TrimSpace(in.Version)
	if version == "" {
		version = "0.1.0"
	}
	if err := validators.ValidateVersion(version); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVersion, err)
	}

	opts := in.Options
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	opts.OutputDir = outputDir

	modulePath := filepath.Join(outputDir, name)
	if filepath.Dir(modulePath) != outputDir {
		return nil, fmt.Errorf("%w: module path %q escapes output directory %q", ErrInvalidPath, modulePath, outputDir)
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = fmt.Sprintf("%s module for the %s domain", strings.ToLower(string(typ)), domain)
	}

	return &ModuleSpec{
		Name:        name,
		SnakeName:   strcase.SnakeCase(name),
		PascalName:  strcase.UpperCamelCase(name),
		Type:        typ,
		Domain:      domain,
		Description: description,
		Version:     strings.TrimPrefix(version, "v"),
		Author:      strings.TrimSpace(in.Author),
		Email:       strings.TrimSpace(in.Email),
		Options:     opts,
	}, nil
}

// ModulePath is the directory the module materializes into.
func (s *ModuleSpec) ModulePath() string {
	return filepath.Join(s.Options.OutputDir, s.Name)
}
