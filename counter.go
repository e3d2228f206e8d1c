package arbonet

import (
	"context"
	"fmt"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
)

/*
Counts is the counting interface over a training set that smoothed
estimation and weight strategies are built on. All counting queries are
plain scans over the training instances and return non-negative integers;
on an empty training set every count is zero.

CountClass returns the number of instances with the given class label.

CountAttributeClass returns the number of instances where attribute i takes
value k and the class takes value c. A nil attribute is the ignored-argument
sentinel: the query degrades to CountClass.

CountPairClass returns the number of instances where attribute i takes value
k, attribute iPrime takes value j and the class takes value c. If either
attribute is nil the query degrades to the corresponding single-attribute
count, and to CountClass when both are. The degradation rule is what lets a
single estimation formula serve both root attributes, which have no parent,
and every other attribute.

MaxAttributeValue and MaxClassValue return the maximum value observed on the
training set for an attribute and for the class label, or -1 on an empty
training set.
*/
type Counts interface {
	CountClass(c int) int
	CountAttributeClass(i *attribute.Attribute, k, c int) int
	CountPairClass(i, iPrime *attribute.Attribute, j, k, c int) int
	CountTotal() int
	MaxAttributeValue(*attribute.Attribute) int
	MaxClassValue() int
}

type counter struct {
	attributes []*attribute.Attribute
	index      map[string]int
	values     [][]int
	classes    []int
	maxValues  []int
	maxClass   int
}

/*
newCounter materializes the instances of the given dataset into a counter.
It returns an error if the instances cannot be read or some instance lacks a
value for one of the dataset's attributes.
*/
func newCounter(ctx context.Context, d dataset.Dataset) (*counter, error) {
	attributes := d.Attributes()
	instances, err := d.Instances(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading training instances: %v", err)
	}
	c := &counter{
		attributes: attributes,
		index:      make(map[string]int),
		values:     make([][]int, 0, len(instances)),
		classes:    make([]int, 0, len(instances)),
		maxValues:  make([]int, len(attributes)),
		maxClass:   -1,
	}
	for i, a := range attributes {
		c.index[a.Name()] = i
		c.maxValues[i] = -1
	}
	for n, inst := range instances {
		row := make([]int, len(attributes))
		for i, a := range attributes {
			v, err := inst.ValueFor(a)
			if err != nil {
				return nil, fmt.Errorf("reading training instance %d: %v", n, err)
			}
			row[i] = v
			if v > c.maxValues[i] {
				c.maxValues[i] = v
			}
		}
		c.values = append(c.values, row)
		c.classes = append(c.classes, inst.Class())
		if inst.Class() > c.maxClass {
			c.maxClass = inst.Class()
		}
	}
	return c, nil
}

func (cs *counter) CountClass(c int) int {
	count := 0
	for _, cl := range cs.classes {
		if cl == c {
			count++
		}
	}
	return count
}

func (cs *counter) CountAttributeClass(i *attribute.Attribute, k, c int) int {
	if i == nil {
		return cs.CountClass(c)
	}
	col := cs.index[i.Name()]
	count := 0
	for n, row := range cs.values {
		if row[col] == k && cs.classes[n] == c {
			count++
		}
	}
	return count
}

func (cs *counter) CountPairClass(i, iPrime *attribute.Attribute, j, k, c int) int {
	if i == nil && iPrime == nil {
		return cs.CountClass(c)
	}
	if i == nil {
		return cs.CountAttributeClass(iPrime, j, c)
	}
	if iPrime == nil {
		return cs.CountAttributeClass(i, k, c)
	}
	col := cs.index[i.Name()]
	colPrime := cs.index[iPrime.Name()]
	count := 0
	for n, row := range cs.values {
		if row[col] == k && row[colPrime] == j && cs.classes[n] == c {
			count++
		}
	}
	return count
}

func (cs *counter) CountTotal() int {
	return len(cs.classes)
}

func (cs *counter) MaxAttributeValue(a *attribute.Attribute) int {
	return cs.maxValues[cs.index[a.Name()]]
}

func (cs *counter) MaxClassValue() int {
	return cs.maxClass
}
