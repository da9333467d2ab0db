package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/mod/semver"
)

// MaxModuleNameLength bounds generated directory and identifier names.
const MaxModuleNameLength = 64

// moduleNameRegex matches kebab-case names: lowercase ASCII letters and
// digits, hyphen-separated, starting with a letter. This shape converts
// losslessly between kebab-case, snake_case and PascalCase.
var moduleNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateModuleName checks that a module name is safe to use as a
// directory name and as the seed for identifier casing variants.
func ValidateModuleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("module name is required")
	}

	for _, r := range name {
		if r > unicode.MaxASCII {
			return fmt.Errorf("module name must be ASCII: found %q", r)
		}
	}

	if len(name) > MaxModuleNameLength {
		return fmt.Errorf("module name exceeds %d characters", MaxModuleNameLength)
	}

	if !moduleNameRegex.MatchString(name) {
		return fmt.Errorf("module name must be kebab-case (lowercase letters, digits, hyphens): %q", name)
	}

	return nil
}

// ValidateDomain checks the free-form domain label used in generated
// comments and docs. It must be present and printable.
func ValidateDomain(domain string) error {
	if strings.TrimSpace(domain) == "" {
		return fmt.Errorf("domain is required")
	}

	for _, r := range domain {
		if unicode.IsControl(r) {
			return fmt.Errorf("domain must not contain control characters")
		}
	}

	return nil
}

// ValidateVersion checks a semantic version string like "0.1.0".
// The "v" prefix is optional on input.
func ValidateVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return fmt.Errorf("version is required")
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	// Canonical rejects shorthand forms like "1.0" that IsValid accepts.
	if !semver.IsValid(v) || semver.Canonical(v) != v {
		return fmt.Errorf("version must be semantic (MAJOR.MINOR.PATCH): %q", version)
	}
	return nil
}
