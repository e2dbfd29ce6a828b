// Package config holds binder-wide configuration: which basic-type
// composition extensions are enabled and how particular diagnostics
// are escalated. Grounded on funvibe-funxy/internal/config's
// package-level tables consulted by the analyzer; a BinderOptions
// struct plays the same role here, loadable from YAML the same way
// the teacher's own fixtures and embedding entry points deserialize
// configuration (pkg/cli/entry.go, internal/evaluator/builtins_yaml.go).
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/clayne/psychec/internal/diagnostics"
)

// BinderOptions controls optional binder behavior. Its zero value
// reproduces the baseline behavior described in spec.md.
type BinderOptions struct {
	// LongLong enables the long-long promotion extension to the
	// basic-type composition table (spec.md §4.2's "permitted
	// extension"): a second `long` atop Long/Long_S/Long_U promotes to
	// the matching LongLong variant instead of being rejected.
	LongLong bool `yaml:"longLong"`

	// ComplexFloating enables composing `_Complex` after a `float` or
	// `long double` base (`float _Complex`, `long double _Complex`).
	// Bare `_Complex` and `double _Complex` are accepted whether or not
	// it is set (SPEC_FULL.md §5).
	ComplexFloating bool `yaml:"complexFloating"`

	// SeverityOverrides replaces the default severity (spec.md §4.6's
	// table) for a named diagnostic ID, keyed by the diagnostics.ID
	// string. Unlisted IDs keep their default severity.
	SeverityOverrides map[diagnostics.ID]diagnostics.Severity `yaml:"severityOverrides"`
}

// Default returns the standard options: every supplemented extension
// enabled, no severity overrides. The zero-value BinderOptions{}
// differs from it: it disables the extensions, matching spec.md's
// unmodified table.
func Default() BinderOptions {
	return BinderOptions{
		LongLong:        true,
		ComplexFloating: true,
	}
}

// SeverityOf reports the effective severity for id, applying any
// override in o before falling back to the diagnostic's registered
// default.
func (o BinderOptions) SeverityOf(id diagnostics.ID) diagnostics.Severity {
	if o.SeverityOverrides != nil {
		if sev, ok := o.SeverityOverrides[id]; ok {
			return sev
		}
	}
	return diagnostics.DefaultSeverity(id)
}

// Load decodes BinderOptions from YAML, as the teacher's own
// builtins_yaml.go decodes fixture data — used to describe a
// non-default configuration declaratively instead of constructing the
// struct by hand.
func Load(data []byte) (BinderOptions, error) {
	var o BinderOptions
	if err := yaml.Unmarshal(data, &o); err != nil {
		return BinderOptions{}, err
	}
	return o, nil
}
