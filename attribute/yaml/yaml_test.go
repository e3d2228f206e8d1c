package yaml_test

import (
	"testing"

	"github.com/pmarti/arbonet/attribute/yaml"
)

func TestReadAttributes(t *testing.T) {
	md := []byte(`
attributes:
  - color
  - shape
  - size
class: species
`)
	attributes, class, err := yaml.ReadAttributes(md)
	if err != nil {
		t.Fatalf("reading attributes: %v", err)
	}
	if class != "species" {
		t.Errorf("class = %s, want species", class)
	}
	want := []string{"color", "shape", "size"}
	if len(attributes) != len(want) {
		t.Fatalf("parsed %d attributes, want %d", len(attributes), len(want))
	}
	for i, a := range attributes {
		if a.Name() != want[i] {
			t.Errorf("attribute %d = %s, want %s", i, a.Name(), want[i])
		}
	}
}

func TestReadAttributesDefaultClass(t *testing.T) {
	md := []byte(`
attributes:
  - color
`)
	_, class, err := yaml.ReadAttributes(md)
	if err != nil {
		t.Fatalf("reading attributes: %v", err)
	}
	if class != "class" {
		t.Errorf("class = %s, want the default name class", class)
	}
}

func TestReadAttributesInvalidMetadata(t *testing.T) {
	tests := []struct {
		name string
		md   string
	}{
		{"not YAML", ":\n:::"},
		{"no attributes", "class: species"},
		{"empty attribute name", "attributes:\n  - color\n  - \"\"\n"},
		{"duplicate attribute", "attributes:\n  - color\n  - color\n"},
		{"attribute named as class", "attributes:\n  - color\nclass: color\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, _, err := yaml.ReadAttributes([]byte(test.md)); err == nil {
				t.Errorf("ReadAttributes(%q) returned no error", test.md)
			}
		})
	}
}
