/*
Package csv provides methods to read and write datasets as comma-delimited
text.

The expected format is a header row naming every attribute plus, as its last
field, the class column, followed by one row per instance whose fields are
the non-negative integer category codes for every attribute in header order,
with the class label as the last field. A malformed row or an I/O failure
makes reading fail completely: no partial dataset is ever returned.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
)

/*
Writer is an interface for a destination instances can be written to.
*/
type Writer interface {
	// WriteInstance will attempt to write the given instance with the
	// given class label, overriding the label the instance carries. It
	// returns an error if the instance could not be written.
	WriteInstance(dataset.Instance, int) error
	// Count returns the total number of instances written to the writer.
	Count() int
	// Flush ensures any pending write operations finish before
	// returning. It returns an error if that cannot be ensured.
	Flush() error
}

type csvWriter struct {
	count      int
	attributes []*attribute.Attribute
	w          *csv.Writer
}

/*
ReadDataset takes an io.Reader for a CSV stream and returns a
dataset.Dataset with the attributes declared by its header and the instances
parsed from its rows, or an error.

The header's fields name the attributes of the dataset in order; its last
field is taken as the name of the class column and discarded. Every other
row must have the same number of fields, all non-negative integers.
*/
func ReadDataset(reader io.Reader) (dataset.Dataset, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("parsing header: expected at least one attribute field and the class field, got %d fields", len(header))
	}
	attributes := make([]*attribute.Attribute, len(header)-1)
	for i := range attributes {
		attributes[i] = attribute.New(header[i])
	}
	instances := []dataset.Instance{}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		i, err := parseInstanceFromCSVRow(row, attributes)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		instances = append(instances, i)
	}
	return dataset.New(attributes, instances)
}

/*
ReadDatasetFromFilePath takes a filepath string, opens the file it points to
(os.Stdin when the filepath is "") and uses ReadDataset to return a
dataset.Dataset read from it or an error.
*/
func ReadDatasetFromFilePath(filepath string) (dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
	}
	defer f.Close()
	d, err := ReadDataset(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return d, err
}

/*
NewWriter takes an io.Writer, a slice of attributes and the name of the
class column and returns a Writer that will write instances on the
io.Writer in the same CSV format ReadDataset expects.
*/
func NewWriter(writer io.Writer, attributes []*attribute.Attribute, class string) (Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, len(attributes)+1)
	for i, a := range attributes {
		record[i] = a.Name()
	}
	record[len(attributes)] = class
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{attributes: attributes, w: w}, nil
}

/*
WriteDataset takes a writer, a dataset, the name of its class column and a
slice of class labels and dumps the dataset to the writer in CSV format,
labeling each instance with the corresponding label. When the labels slice
is nil the labels the instances carry are written instead. It returns an
error if something went wrong writing or encoding the instances.
*/
func WriteDataset(ctx context.Context, writer io.Writer, d dataset.Dataset, class string, labels []int) error {
	cw, err := NewWriter(writer, d.Attributes(), class)
	if err != nil {
		return err
	}
	instances, err := d.Instances(ctx)
	if err != nil {
		return err
	}
	if labels != nil && len(labels) != len(instances) {
		return fmt.Errorf("writing CSV dataset: %d labels for %d instances", len(labels), len(instances))
	}
	for n, i := range instances {
		label := i.Class()
		if labels != nil {
			label = labels[n]
		}
		if err = cw.WriteInstance(i, label); err != nil {
			return err
		}
	}
	return cw.Flush()
}

func parseInstanceFromCSVRow(row []string, attributes []*attribute.Attribute) (dataset.Instance, error) {
	if len(row) != len(attributes)+1 {
		return nil, fmt.Errorf("expected %d fields, got %d", len(attributes)+1, len(row))
	}
	values := make(map[string]int)
	for i, a := range attributes {
		v, err := parseValue(row[i])
		if err != nil {
			return nil, fmt.Errorf("value for attribute %s: %v", a.Name(), err)
		}
		values[a.Name()] = v
	}
	class, err := parseValue(row[len(attributes)])
	if err != nil {
		return nil, fmt.Errorf("class label: %v", err)
	}
	return dataset.NewInstance(values, class), nil
}

func parseValue(field string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("converting %s to integer: %v", field, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative category code %d", v)
	}
	return v, nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) WriteInstance(i dataset.Instance, class int) error {
	record := make([]string, len(cw.attributes)+1)
	for n, a := range cw.attributes {
		v, err := i.ValueFor(a)
		if err != nil {
			return err
		}
		record[n] = strconv.Itoa(v)
	}
	record[len(cw.attributes)] = strconv.Itoa(class)
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for instance %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
