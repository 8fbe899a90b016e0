// Package load reads scan documents produced by the scanner. Documents are
// JSON or YAML; the schema version is gated before anything reaches the
// resolver pipeline.
package load

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"sigs.k8s.io/yaml"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/resolver"
)

// DefaultSchemaVersion is assumed when a document carries no schemaVersion.
const DefaultSchemaVersion = "1.0.0"

// supportedSchema gates which scanner output generations this build accepts.
var supportedSchema = mustConstraint(">=1.0.0 <2.0.0")

func mustConstraint(raw string) *semver.Constraints {
	c, err := semver.NewConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads and parses the scan document at path.
func Load(path string) (resolver.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return resolver.Input{}, fmt.Errorf("load: read %s: %w", path, err)
	}
	in, err := Parse(data)
	if err != nil {
		return resolver.Input{}, fmt.Errorf("load: parse %s: %w", path, err)
	}
	return in, nil
}

// Parse decodes a scan document (YAML or JSON) into resolver input.
func Parse(data []byte) (resolver.Input, error) {
	var doc v1alpha1.ScanDocument
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return resolver.Input{}, fmt.Errorf("decode scan document: %w", err)
	}

	raw := doc.SchemaVersion
	if raw == "" {
		raw = DefaultSchemaVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return resolver.Input{}, fmt.Errorf("invalid schemaVersion %q: %w", raw, err)
	}
	if !supportedSchema.Check(v) {
		return resolver.Input{}, fmt.Errorf("unsupported schemaVersion %q (supported: %s)", raw, supportedSchema)
	}

	return resolver.Input{
		Components: doc.Components,
		Modules:    doc.Modules,
	}, nil
}
