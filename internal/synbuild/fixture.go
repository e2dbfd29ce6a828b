package synbuild

import (
	"fmt"

	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"github.com/clayne/psychec/internal/diagnostics"
)

// Fixture is one golden scenario decoded from a txtar archive: a
// `source.c` section documenting the snippet the test's synbuild tree
// reproduces by hand (this module has no parser to run over it — see
// spec.md §1), and a `want.yaml` section listing the diagnostics a
// correct bind is expected to raise, in order.
//
// Grounded on golang.org/x/tools/txtar's "few named sections, decoded
// by the consumer" shape; the YAML decode of the expectation section
// follows the teacher's own fixture-decoding idiom
// (internal/evaluator/builtins_yaml.go).
type Fixture struct {
	Name   string
	Source string
	Want   Expectation
}

// Expectation is the decoded shape of a fixture's `want.yaml` section.
type Expectation struct {
	Diagnostics []string `yaml:"diagnostics"`
}

// ParseFixture decodes one txtar archive into a Fixture. The archive
// must contain a `want.yaml` file, or ParseFixture returns an error; a
// `source.c` file is optional and leaves Source empty when absent. Any
// other file is ignored, so a fixture can carry extra commentary
// sections without breaking the decoder.
func ParseFixture(data []byte) (*Fixture, error) {
	arc := txtar.Parse(data)
	f := &Fixture{Name: string(arc.Comment)}
	var sawWant bool
	for _, file := range arc.Files {
		switch file.Name {
		case "source.c":
			f.Source = string(file.Data)
		case "want.yaml":
			if err := yaml.Unmarshal(file.Data, &f.Want); err != nil {
				return nil, fmt.Errorf("synbuild: decoding want.yaml: %w", err)
			}
			sawWant = true
		}
	}
	if !sawWant {
		return nil, fmt.Errorf("synbuild: archive has no want.yaml section")
	}
	return f, nil
}

// DiagnosticIDs extracts the stable IDs from a slice of diagnostics, in
// report order, for comparison against a Fixture's Want.Diagnostics.
func DiagnosticIDs(diags []*diagnostics.Diagnostic) []string {
	ids := make([]string, len(diags))
	for i, d := range diags {
		ids[i] = string(d.StableID)
	}
	return ids
}
