/*
Package yaml provides methods to parse attribute specifications, also known
as metadata, from YAML documents.

Metadata documents describe the attributes of datasets stored on backends
that have no header row to derive them from, such as SQL or MongoDB
databases.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pmarti/arbonet/attribute"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadAttributes takes a slice of bytes with an attribute specification in YML
and returns a slice of attributes parsed from it, the name of the class
column, or an error.

The YML is expected to be an object with an attributes property holding the
ordered list of attribute names, and a class property with the name of the
class column. The class property may be omitted, in which case the class
column is assumed to be named "class".
*/
func ReadAttributes(md []byte) ([]*attribute.Attribute, string, error) {
	metadata := struct {
		Attributes []string
		Class      string
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, "", fmt.Errorf("parsing yml attributes: %v", err)
	}
	if len(metadata.Attributes) == 0 {
		return nil, "", fmt.Errorf("metadata file has no attribute information")
	}
	if metadata.Class == "" {
		metadata.Class = "class"
	}
	attributes := make([]*attribute.Attribute, 0, len(metadata.Attributes))
	seen := make(map[string]bool)
	for _, name := range metadata.Attributes {
		if name == "" {
			return nil, "", fmt.Errorf("metadata file declares an attribute with an empty name")
		}
		if seen[name] {
			return nil, "", fmt.Errorf("metadata file declares attribute %s more than once", name)
		}
		if name == metadata.Class {
			return nil, "", fmt.Errorf("metadata file declares %s both as attribute and as class", name)
		}
		seen[name] = true
		attributes = append(attributes, attribute.New(name))
	}
	return attributes, metadata.Class, nil
}

/*
ReadAttributesFromFile takes a filepath string, reads its contents and uses
ReadAttributes to parse it and return a slice of parsed attributes and the
class column name, or an error. If the file indicated by the filepath cannot
be opened for reading an error will be returned.
*/
func ReadAttributesFromFile(filepath string) ([]*attribute.Attribute, string, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, "", fmt.Errorf("reading attributes yml file %s: %v", filepath, err)
	}
	attributes, class, err := ReadAttributes(md)
	if err != nil {
		err = fmt.Errorf("parsing attributes yml file %s: %v", filepath, err)
	}
	return attributes, class, err
}
