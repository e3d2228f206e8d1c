package csv_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pmarti/arbonet/dataset/csv"
)

func TestReadDataset(t *testing.T) {
	data := `a,b,class
0,2,0
1,0,1
1,1,1
`
	d, err := csv.ReadDataset(strings.NewReader(data))
	if err != nil {
		t.Fatalf("reading dataset: %v", err)
	}
	attributes := d.Attributes()
	if len(attributes) != 2 {
		t.Fatalf("dataset has %d attributes, want 2", len(attributes))
	}
	if attributes[0].Name() != "a" || attributes[1].Name() != "b" {
		t.Errorf("attributes are %s and %s, want a and b", attributes[0].Name(), attributes[1].Name())
	}
	instances, err := d.Instances(context.Background())
	if err != nil {
		t.Fatalf("reading instances: %v", err)
	}
	if len(instances) != 3 {
		t.Fatalf("dataset has %d instances, want 3", len(instances))
	}
	v, err := instances[0].ValueFor(attributes[1])
	if err != nil {
		t.Fatalf("reading value: %v", err)
	}
	if v != 2 {
		t.Errorf("first instance's value for b = %d, want 2", v)
	}
	if got := instances[2].Class(); got != 1 {
		t.Errorf("third instance's class = %d, want 1", got)
	}
}

func TestReadDatasetFailsCompletely(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty input", ""},
		{"header without attributes", "class\n"},
		{"row with too few fields", "a,b,class\n0,0\n"},
		{"row with too many fields", "a,b,class\n0,0,0,0\n"},
		{"non-integer value", "a,b,class\n0,x,0\n"},
		{"non-integer class", "a,b,class\n0,0,yes\n"},
		{"negative value", "a,b,class\n0,-1,0\n"},
		{"negative class", "a,b,class\n0,0,-2\n"},
		{"malformed row after valid rows", "a,b,class\n0,0,0\n1,1,1\n2,oops,0\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := csv.ReadDataset(strings.NewReader(test.data)); err == nil {
				t.Errorf("ReadDataset(%q) returned no error", test.data)
			}
		})
	}
}

func TestWriteDataset(t *testing.T) {
	data := `a,b,class
0,2,0
1,0,1
`
	d, err := csv.ReadDataset(strings.NewReader(data))
	if err != nil {
		t.Fatalf("reading dataset: %v", err)
	}
	var buf bytes.Buffer
	if err = csv.WriteDataset(context.Background(), &buf, d, "class", nil); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	if got := buf.String(); got != data {
		t.Errorf("WriteDataset() wrote:\n%s\nwant:\n%s", got, data)
	}
}

func TestWriteDatasetWithLabels(t *testing.T) {
	data := `a,b,class
0,2,0
1,0,1
`
	d, err := csv.ReadDataset(strings.NewReader(data))
	if err != nil {
		t.Fatalf("reading dataset: %v", err)
	}
	var buf bytes.Buffer
	if err = csv.WriteDataset(context.Background(), &buf, d, "species", []int{3, 4}); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	want := `a,b,species
0,2,3
1,0,4
`
	if got := buf.String(); got != want {
		t.Errorf("WriteDataset() wrote:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteDatasetLabelCountMismatch(t *testing.T) {
	d, err := csv.ReadDataset(strings.NewReader("a,class\n0,0\n1,1\n"))
	if err != nil {
		t.Fatalf("reading dataset: %v", err)
	}
	var buf bytes.Buffer
	if err = csv.WriteDataset(context.Background(), &buf, d, "class", []int{0}); err == nil {
		t.Error("WriteDataset accepted a label slice shorter than the dataset")
	}
}

func TestWriterCount(t *testing.T) {
	d, err := csv.ReadDataset(strings.NewReader("a,class\n0,0\n1,1\n"))
	if err != nil {
		t.Fatalf("reading dataset: %v", err)
	}
	var buf bytes.Buffer
	w, err := csv.NewWriter(&buf, d.Attributes(), "class")
	if err != nil {
		t.Fatalf("building writer: %v", err)
	}
	instances, err := d.Instances(context.Background())
	if err != nil {
		t.Fatalf("reading instances: %v", err)
	}
	for _, i := range instances {
		if err = w.WriteInstance(i, i.Class()); err != nil {
			t.Fatalf("writing instance: %v", err)
		}
	}
	if got := w.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if err = w.Flush(); err != nil {
		t.Fatalf("flushing writer: %v", err)
	}
}
