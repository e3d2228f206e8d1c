package main

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
	"github.com/pmarti/arbonet/dataset/csv"
)

func numberedInstances(t *testing.T, n int) []dataset.Instance {
	t.Helper()
	instances := make([]dataset.Instance, n)
	for i := range instances {
		instances[i] = dataset.NewInstance(map[string]int{"a": i}, i%2)
	}
	return instances
}

func TestSplitInstancesPartitionsPreservingOrder(t *testing.T) {
	a := attribute.New("a")
	instances := numberedInstances(t, 20)
	kept, split := splitInstances(instances, 20, rand.New(rand.NewSource(1)))
	if len(kept)+len(split) != len(instances) {
		t.Fatalf("split produced %d+%d instances, want %d in total", len(kept), len(split), len(instances))
	}
	for _, slice := range [][]dataset.Instance{kept, split} {
		last := -1
		for _, i := range slice {
			v, err := i.ValueFor(a)
			if err != nil {
				t.Fatalf("reading value: %v", err)
			}
			if v <= last {
				t.Fatalf("split broke the relative order of the instances: %d after %d", v, last)
			}
			last = v
		}
	}
}

func TestSplitInstancesFullProbability(t *testing.T) {
	instances := numberedInstances(t, 10)
	kept, split := splitInstances(instances, 100, rand.New(rand.NewSource(1)))
	if len(kept) != 0 || len(split) != len(instances) {
		t.Errorf("split with probability 100 kept %d and split %d instances, want 0 and %d", len(kept), len(split), len(instances))
	}
}

func TestCSVInstanceWriter(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	var buf bytes.Buffer
	w, err := csv.NewWriter(&buf, []*attribute.Attribute{a, b}, "class")
	if err != nil {
		t.Fatalf("building writer: %v", err)
	}
	cw := &csvInstanceWriter{w}
	instances := []dataset.Instance{
		dataset.NewInstance(map[string]int{"a": 0, "b": 2}, 0),
		dataset.NewInstance(map[string]int{"a": 1, "b": 0}, 1),
	}
	written, err := cw.Write(context.Background(), instances)
	if err != nil {
		t.Fatalf("writing instances: %v", err)
	}
	if written != 2 {
		t.Errorf("Write() = %d, want 2", written)
	}
	if err = cw.Flush(); err != nil {
		t.Fatalf("flushing writer: %v", err)
	}
	want := `a,b,class
0,2,0
1,0,1
`
	if got := buf.String(); got != want {
		t.Errorf("writer wrote:\n%s\nwant:\n%s", got, want)
	}
}
