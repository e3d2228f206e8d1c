/*
Package inputsample provides an implementation of dataset.Instance whose
attribute values are read from an io.Reader, so a single instance can be
classified interactively.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
)

/*
ValueRequester represents a way to ask for attribute values and to reject
values that cannot be parsed as non-negative category codes.
*/
type ValueRequester interface {
	RequestValueFor(*attribute.Attribute) error
	RejectValueFor(*attribute.Attribute, string) error
}

/*
readInstance represents an instance whose attribute values are retrieved
from a reader. An attribute value is requested through a ValueRequester
before reading it; once obtained it is kept, so every attribute is asked
about at most once.
*/
type readInstance struct {
	obtainedValues map[string]int
	scanner        *bufio.Scanner
	valueRequester ValueRequester
}

/*
New takes an io.Reader and a ValueRequester and returns a dataset.Instance
that reads its attribute values from the reader on demand.

The parsing expects each value on its own line. Lines will be read from the
reader until one holding a valid non-negative integer is found; other lines
are rejected with the ValueRequester's RejectValueFor method.

The returned instance carries no class label: its Class method always
returns -1.
*/
func New(r io.Reader, valueRequester ValueRequester) dataset.Instance {
	scanner := bufio.NewScanner(r)
	return &readInstance{make(map[string]int), scanner, valueRequester}
}

func (ri *readInstance) ValueFor(a *attribute.Attribute) (int, error) {
	value, ok := ri.obtainedValues[a.Name()]
	if ok {
		return value, nil
	}
	err := ri.valueRequester.RequestValueFor(a)
	if err != nil {
		return 0, err
	}
	for ri.scanner.Scan() {
		line := ri.scanner.Text()
		value, err = strconv.Atoi(line)
		if err == nil && value >= 0 {
			ri.obtainedValues[a.Name()] = value
			return value, nil
		}
		err = ri.valueRequester.RejectValueFor(a, line)
		if err != nil {
			return 0, err
		}
	}
	err = ri.scanner.Err()
	if err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("EOF when requesting value for attribute %s", a.Name())
}

func (ri *readInstance) Class() int {
	return -1
}
