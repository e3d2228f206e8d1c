package dataset

import (
	"fmt"

	"github.com/pmarti/arbonet/attribute"
)

/*
Instance represents a single observation: an assignment of an integer
category code to every attribute of a dataset, plus an integer class label.
Instances are immutable once built.
*/
type Instance interface {
	// ValueFor takes an attribute and returns the value the instance has
	// for it, or an error if the instance has no value for the attribute.
	ValueFor(*attribute.Attribute) (int, error)
	// Class returns the class label of the instance.
	Class() int
}

type instance struct {
	values map[string]int
	class  int
}

/*
NewInstance takes a map of attribute names to integer values and an integer
class label and returns an Instance built with them. The value map is copied
so later changes to it do not alter the instance.
*/
func NewInstance(values map[string]int, class int) Instance {
	vs := make(map[string]int, len(values))
	for name, v := range values {
		vs[name] = v
	}
	return &instance{vs, class}
}

func (i *instance) ValueFor(a *attribute.Attribute) (int, error) {
	v, ok := i.values[a.Name()]
	if !ok {
		return 0, fmt.Errorf("instance has no value for attribute %s", a.Name())
	}
	return v, nil
}

func (i *instance) Class() int {
	return i.class
}
