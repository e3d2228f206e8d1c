package dataset_test

import (
	"context"
	"testing"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
)

func TestNew(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	attributes := []*attribute.Attribute{a, b}
	instances := []dataset.Instance{
		dataset.NewInstance(map[string]int{"a": 0, "b": 3}, 0),
		dataset.NewInstance(map[string]int{"a": 2, "b": 1}, 5),
	}
	d, err := dataset.New(attributes, instances)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}
	count, err := d.Count(context.Background())
	if err != nil {
		t.Fatalf("counting instances: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
	max, err := d.MaxAttributeValue(context.Background(), b)
	if err != nil {
		t.Fatalf("reading max value: %v", err)
	}
	if max != 3 {
		t.Errorf("MaxAttributeValue(b) = %d, want 3", max)
	}
	maxClass, err := d.MaxClassValue(context.Background())
	if err != nil {
		t.Fatalf("reading max class: %v", err)
	}
	if maxClass != 5 {
		t.Errorf("MaxClassValue() = %d, want 5", maxClass)
	}
}

func TestNewRejectsIncompleteInstances(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	instances := []dataset.Instance{
		dataset.NewInstance(map[string]int{"a": 0}, 0),
	}
	if _, err := dataset.New([]*attribute.Attribute{a, b}, instances); err == nil {
		t.Error("New accepted an instance without a value for every attribute")
	}
}

func TestEmptyDatasetMaxValues(t *testing.T) {
	a := attribute.New("a")
	d, err := dataset.New([]*attribute.Attribute{a}, nil)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}
	max, err := d.MaxAttributeValue(context.Background(), a)
	if err != nil {
		t.Fatalf("reading max value: %v", err)
	}
	if max != -1 {
		t.Errorf("MaxAttributeValue(a) on an empty dataset = %d, want -1", max)
	}
	maxClass, err := d.MaxClassValue(context.Background())
	if err != nil {
		t.Fatalf("reading max class: %v", err)
	}
	if maxClass != -1 {
		t.Errorf("MaxClassValue() on an empty dataset = %d, want -1", maxClass)
	}
}

func TestInstanceValueFor(t *testing.T) {
	values := map[string]int{"a": 7}
	i := dataset.NewInstance(values, 1)
	a := attribute.New("a")
	v, err := i.ValueFor(a)
	if err != nil {
		t.Fatalf("reading value: %v", err)
	}
	if v != 7 {
		t.Errorf("ValueFor(a) = %d, want 7", v)
	}
	if _, err = i.ValueFor(attribute.New("missing")); err == nil {
		t.Error("ValueFor returned no error for an attribute the instance has no value for")
	}
	// The instance copies the value map on construction.
	values["a"] = 9
	if v, _ = i.ValueFor(a); v != 7 {
		t.Errorf("ValueFor(a) after mutating the source map = %d, want 7", v)
	}
	if got := i.Class(); got != 1 {
		t.Errorf("Class() = %d, want 1", got)
	}
}
