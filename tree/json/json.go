/*
Package json provides methods to encode directed dependency trees as JSON
documents and decode them back, so a learned structure can be stored and
reused without learning it again.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/tree"
)

type jsonBranch struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
}

type jsonTree struct {
	Root     string       `json:"root"`
	Branches []jsonBranch `json:"branches"`
}

/*
Encode takes a tree.Directed and returns a slice of bytes with the tree
encoded as a JSON document, or an error if the encoding could not be
performed.
*/
func Encode(t *tree.Directed) ([]byte, error) {
	jt := &jsonTree{Root: t.Root().Name()}
	for _, a := range t.Attributes() {
		parent := t.Parent(a)
		if parent == nil {
			continue
		}
		jt.Branches = append(jt.Branches, jsonBranch{Parent: parent.Name(), Child: a.Name()})
	}
	data, err := json.Marshal(jt)
	if err != nil {
		return nil, fmt.Errorf("encoding tree: %v", err)
	}
	return data, nil
}

/*
Decode takes a slice of bytes with a JSON document produced by Encode and
returns the tree.Directed decoded from it, or an error if the document
cannot be parsed or its branches do not describe a tree.
*/
func Decode(data []byte) (*tree.Directed, error) {
	jt := &jsonTree{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	if jt.Root == "" {
		return nil, fmt.Errorf("decoding tree: document has no root")
	}
	attributes := map[string]*attribute.Attribute{jt.Root: attribute.New(jt.Root)}
	t := tree.NewDirected(attributes[jt.Root])
	for _, b := range jt.Branches {
		parent, ok := attributes[b.Parent]
		if !ok {
			parent = attribute.New(b.Parent)
			attributes[b.Parent] = parent
		}
		child, ok := attributes[b.Child]
		if !ok {
			child = attribute.New(b.Child)
			attributes[b.Child] = child
		}
		if err = t.AddBranch(parent, child); err != nil {
			return nil, fmt.Errorf("decoding tree: branch %s-%s: %v", b.Parent, b.Child, err)
		}
	}
	return t, nil
}
