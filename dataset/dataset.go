package dataset

import (
	"context"
	"fmt"

	"github.com/pmarti/arbonet/attribute"
)

/*
Dataset represents an ordered collection of instances together with the
ordered list of attributes shared by all of them.

Its Attributes method returns the attributes every instance in the dataset
has a value for, in declaration order.

Its Instances method returns the instances it contains, in insertion order.

Its MaxAttributeValue method returns the maximum value observed on the
dataset for a given attribute, or -1 when the dataset is empty.

Its MaxClassValue method returns the maximum class label observed on the
dataset, or -1 when the dataset is empty.

All methods that may go over a storage backend take a context that may allow
cancelling the operation if the implementation supports it.
*/
type Dataset interface {
	Attributes() []*attribute.Attribute
	Instances(context.Context) ([]Instance, error)
	Count(context.Context) (int, error)
	MaxAttributeValue(context.Context, *attribute.Attribute) (int, error)
	MaxClassValue(context.Context) (int, error)
}

type memoryDataset struct {
	attributes []*attribute.Attribute
	instances  []Instance
	maxValues  map[string]int
	maxClass   *int
}

/*
New takes a slice of attributes and a slice of instances and returns a
Dataset built with them, or an error if some instance lacks a value for one
of the given attributes: every instance in a dataset must have a value for
every attribute the dataset declares.
*/
func New(attributes []*attribute.Attribute, instances []Instance) (Dataset, error) {
	for n, i := range instances {
		for _, a := range attributes {
			if _, err := i.ValueFor(a); err != nil {
				return nil, fmt.Errorf("building dataset: instance %d: %v", n, err)
			}
		}
	}
	return &memoryDataset{attributes: attributes, instances: instances, maxValues: make(map[string]int)}, nil
}

func (md *memoryDataset) Attributes() []*attribute.Attribute {
	return md.attributes
}

func (md *memoryDataset) Instances(ctx context.Context) ([]Instance, error) {
	return md.instances, nil
}

func (md *memoryDataset) Count(ctx context.Context) (int, error) {
	return len(md.instances), nil
}

func (md *memoryDataset) MaxAttributeValue(ctx context.Context, a *attribute.Attribute) (int, error) {
	if max, ok := md.maxValues[a.Name()]; ok {
		return max, nil
	}
	max := -1
	for _, i := range md.instances {
		v, err := i.ValueFor(a)
		if err != nil {
			return 0, err
		}
		if v > max {
			max = v
		}
	}
	md.maxValues[a.Name()] = max
	return max, nil
}

func (md *memoryDataset) MaxClassValue(ctx context.Context) (int, error) {
	if md.maxClass != nil {
		return *md.maxClass, nil
	}
	max := -1
	for _, i := range md.instances {
		if i.Class() > max {
			max = i.Class()
		}
	}
	md.maxClass = &max
	return max, nil
}
