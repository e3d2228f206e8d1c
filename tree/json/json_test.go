package json_test

import (
	"testing"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/tree"
	"github.com/pmarti/arbonet/tree/json"
)

func TestEncodeDecode(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	d := attribute.New("d")
	dt := tree.NewDirected(a)
	for _, branch := range []struct{ parent, child *attribute.Attribute }{
		{a, c},
		{c, b},
		{c, d},
	} {
		if err := dt.AddBranch(branch.parent, branch.child); err != nil {
			t.Fatalf("adding branch %s-%s: %v", branch.parent.Name(), branch.child.Name(), err)
		}
	}
	data, err := json.Encode(dt)
	if err != nil {
		t.Fatalf("encoding tree: %v", err)
	}
	decoded, err := json.Decode(data)
	if err != nil {
		t.Fatalf("decoding tree: %v", err)
	}
	if got := decoded.Root().Name(); got != "a" {
		t.Errorf("decoded root = %s, want a", got)
	}
	if got := len(decoded.Attributes()); got != len(dt.Attributes()) {
		t.Fatalf("decoded tree has %d attributes, want %d", got, len(dt.Attributes()))
	}
	for _, attr := range decoded.Attributes() {
		wantParent := dt.Parent(attribute.New(attr.Name()))
		gotParent := decoded.Parent(attr)
		switch {
		case wantParent == nil && gotParent != nil:
			t.Errorf("decoded Parent(%s) = %s, want nil", attr.Name(), gotParent.Name())
		case wantParent != nil && gotParent == nil:
			t.Errorf("decoded Parent(%s) = nil, want %s", attr.Name(), wantParent.Name())
		case wantParent != nil && gotParent != nil && wantParent.Name() != gotParent.Name():
			t.Errorf("decoded Parent(%s) = %s, want %s", attr.Name(), gotParent.Name(), wantParent.Name())
		}
	}
}

func TestEncodedDocument(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	dt := tree.NewDirected(a)
	if err := dt.AddBranch(a, b); err != nil {
		t.Fatalf("adding branch a-b: %v", err)
	}
	data, err := json.Encode(dt)
	if err != nil {
		t.Fatalf("encoding tree: %v", err)
	}
	want := `{"root":"a","branches":[{"parent":"a","child":"b"}]}`
	if string(data) != want {
		t.Errorf("Encode() = %s, want %s", data, want)
	}
}

func TestDecodeInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", "not a JSON document"},
		{"no root", `{"branches":[]}`},
		{"branch from unknown parent", `{"root":"a","branches":[{"parent":"x","child":"b"}]}`},
		{"duplicate child", `{"root":"a","branches":[{"parent":"a","child":"b"},{"parent":"a","child":"b"}]}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := json.Decode([]byte(test.data)); err == nil {
				t.Errorf("Decode(%s) returned no error", test.data)
			}
		})
	}
}
