// Package diagnostics implements the binder's structured diagnostics:
// a stable ID, severity, category, message and source token, reported
// rather than thrown (spec.md §4.6, §7).
//
// Grounded on mcgru-funxy/internal/diagnostics/diagnostics.go's
// DiagnosticError shape and New*/Wrap* constructor idiom; the code
// space itself is replaced with the spec's stable IDs, which are an
// external contract that must be preserved byte-for-byte rather than
// funxy's own "A003"-style codes.
package diagnostics

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/clayne/psychec/internal/token"
)

// Severity classifies how serious a diagnosable condition is.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// MarshalYAML renders a Severity as its string form ("error"/"warning")
// so config fixtures read naturally instead of as a bare int.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML accepts either the string form or a bare int.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	// The int form is tried first: yaml.v3 decodes any scalar, an int
	// included, into a string without error.
	var n int
	if err := value.Decode(&n); err == nil {
		*s = Severity(n)
		return nil
	}
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	if str == "warning" {
		*s = Warning
	} else {
		*s = Error
	}
	return nil
}

// Category groups diagnostics by the phase that raised them. The
// binder only ever raises Binding category diagnostics; the field
// exists because spec.md §3's Diagnostics component names category as
// part of the shared shape, anticipating future non-binding sources.
type Category int

const (
	Binding Category = iota
)

func (c Category) String() string { return "binding" }

// ID is one of the stable diagnostic identifiers named in spec.md §4.6.
// These strings are an external contract: downstream tooling matches
// on them directly, so they must never be renamed or renumbered.
type ID string

const (
	UselessDeclaration                     ID = "Binder-000"
	TypeSpecifierMissingDefaultsToInt       ID = "Binder-100-6.7.2-2-A"
	InvalidType                            ID = "Binder-100-6.7.2-2-B"
	FunctionReturningFunction               ID = "Binder-200-6.7.6.3-1-A"
	FunctionReturningArray                  ID = "Binder-200-6.7.6.3-1-B"
	InvalidUseOfRestrict                    ID = "Binder-300-6.7.3-2"
	TwoOrMoreDataTypesInDeclarationSpecifiers ID = "Binder-xxx"
)

var messageTemplates = map[ID]string{
	UselessDeclaration:                       "declaration does not declare anything",
	TypeSpecifierMissingDefaultsToInt:         "type specifier missing, defaults to `int'",
	InvalidType:                               "invalid type",
	FunctionReturningFunction:                 "`%s' declared as function returning a function",
	FunctionReturningArray:                    "`%s' declared as function returning an array",
	InvalidUseOfRestrict:                      "invalid use of `restrict'",
	TwoOrMoreDataTypesInDeclarationSpecifiers: "two or more data types in declaration specifiers",
}

var severities = map[ID]Severity{
	UselessDeclaration:                       Error,
	TypeSpecifierMissingDefaultsToInt:         Warning,
	InvalidType:                               Error,
	FunctionReturningFunction:                 Error,
	FunctionReturningArray:                    Error,
	InvalidUseOfRestrict:                      Error,
	TwoOrMoreDataTypesInDeclarationSpecifiers: Error,
}

// Diagnostic is one reported binding-phase error or warning.
type Diagnostic struct {
	StableID ID
	Severity Severity
	Category Category
	Message  string
	Token    token.Token
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s [%s] (%s)", d.Token.Position, d.Severity, d.StableID, d.Message)
}

// DefaultSeverity reports the severity id is registered with, absent
// any config.BinderOptions override.
func DefaultSeverity(id ID) Severity {
	return severities[id]
}

// New builds a Diagnostic for id at tok, formatting args into the
// registered message template.
func New(id ID, tok token.Token, args ...interface{}) *Diagnostic {
	template, ok := messageTemplates[id]
	if !ok {
		template = string(id)
	}
	msg := template
	if len(args) > 0 {
		msg = fmt.Sprintf(template, args...)
	}
	return &Diagnostic{
		StableID: id,
		Severity: severities[id],
		Category: Binding,
		Message:  msg,
		Token:    tok,
	}
}

// Sink receives diagnostics as they are raised. The syntax tree (the
// binder's SyntaxTree.NewDiagnostic contract, spec.md §6) implements
// this.
type Sink interface {
	Report(d *Diagnostic)
}

// Reporter names one method per diagnostic condition the binder can
// raise, grounded on
// original_source/C/binder/DiagnosticsReporter_Binder.cpp's nested
// DiagnosticsReporter type. Call sites read as named events instead of
// ad hoc New(id, ...) calls scattered through the binder.
type Reporter struct {
	Sink Sink

	// SeverityOf, when set, overrides a diagnostic's default severity
	// (e.g. from a config.BinderOptions.SeverityOverrides table). A nil
	// SeverityOf keeps every diagnostic's registered default — this
	// package cannot import config directly (config already imports
	// diagnostics for the ID/Severity types), so the override is
	// threaded through as a plain func value rather than a type.
	SeverityOf func(ID) Severity
}

func (r Reporter) report(id ID, tok token.Token, args ...interface{}) {
	d := New(id, tok, args...)
	if r.SeverityOf != nil {
		d.Severity = r.SeverityOf(id)
	}
	r.Sink.Report(d)
}

func (r Reporter) UselessDeclarationAt(tok token.Token) {
	r.report(UselessDeclaration, tok)
}

func (r Reporter) TypeSpecifierMissingDefaultsToIntAt(tok token.Token) {
	r.report(TypeSpecifierMissingDefaultsToInt, tok)
}

func (r Reporter) InvalidTypeAt(tok token.Token) {
	r.report(InvalidType, tok)
}

func (r Reporter) FunctionReturningFunctionAt(tok token.Token, name string) {
	r.report(FunctionReturningFunction, tok, name)
}

func (r Reporter) FunctionReturningArrayAt(tok token.Token, name string) {
	r.report(FunctionReturningArray, tok, name)
}

func (r Reporter) InvalidUseOfRestrictAt(tok token.Token) {
	r.report(InvalidUseOfRestrict, tok)
}

func (r Reporter) TwoOrMoreDataTypesAt(tok token.Token) {
	r.report(TwoOrMoreDataTypesInDeclarationSpecifiers, tok)
}
