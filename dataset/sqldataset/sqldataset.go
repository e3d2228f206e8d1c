package sqldataset

import (
	"context"
	"fmt"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
)

/*
Dataset is a dataset.Dataset to which instances can be added
*/
type Dataset interface {
	dataset.Dataset
	Write(context.Context, []dataset.Instance) (int, error)
}

type sqlDataset struct {
	db               Adapter
	attributes       []*attribute.Attribute
	class            string
	attributeColumns []string
	columnAttributes map[string]*attribute.Attribute
	classColumn      string
}

/*
Open takes an Adapter to a db backend, a slice of attributes and the name of
the class column and returns a Dataset backed by the given adapter, or an
error if the attribute or class names cannot be used as columns on the
backend.

This function expects the adapter to have the instance table already
created.
*/
func Open(dbAdapter Adapter, attributes []*attribute.Attribute, class string) (Dataset, error) {
	return newSQLDataset(dbAdapter, attributes, class)
}

/*
Create takes a context, an Adapter to a db backend, a slice of attributes and
the name of the class column and returns a Dataset backed by the given
adapter, or an error. It will ensure the instance table is created on the
database, cancelling the creation when the context is done.
*/
func Create(ctx context.Context, dbAdapter Adapter, attributes []*attribute.Attribute, class string) (Dataset, error) {
	sd, err := newSQLDataset(dbAdapter, attributes, class)
	if err != nil {
		return nil, err
	}
	err = dbAdapter.CreateInstanceTable(ctx, sd.attributeColumns, sd.classColumn)
	if err != nil {
		return nil, fmt.Errorf("creating instance table: %v", err)
	}
	return sd, nil
}

func newSQLDataset(dbAdapter Adapter, attributes []*attribute.Attribute, class string) (*sqlDataset, error) {
	sd := &sqlDataset{
		db:               dbAdapter,
		attributes:       attributes,
		class:            class,
		columnAttributes: make(map[string]*attribute.Attribute),
	}
	for _, a := range attributes {
		column, err := dbAdapter.ColumnName(a.Name())
		if err != nil {
			return nil, fmt.Errorf("mapping attribute %s to a column: %v", a.Name(), err)
		}
		sd.attributeColumns = append(sd.attributeColumns, column)
		sd.columnAttributes[column] = a
	}
	classColumn, err := dbAdapter.ColumnName(class)
	if err != nil {
		return nil, fmt.Errorf("mapping class %s to a column: %v", class, err)
	}
	sd.classColumn = classColumn
	return sd, nil
}

func (sd *sqlDataset) Attributes() []*attribute.Attribute {
	return sd.attributes
}

func (sd *sqlDataset) Instances(ctx context.Context) ([]dataset.Instance, error) {
	var instances []dataset.Instance
	err := sd.db.IterateOnInstances(sd.attributeColumns, sd.classColumn, func(_ int, raw map[string]int) (bool, error) {
		values := make(map[string]int)
		for column, a := range sd.columnAttributes {
			v, ok := raw[column]
			if !ok {
				return false, fmt.Errorf("instance row has no value for column %s", column)
			}
			values[a.Name()] = v
		}
		instances = append(instances, dataset.NewInstance(values, raw[sd.classColumn]))
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading instances: %v", err)
	}
	return instances, nil
}

func (sd *sqlDataset) Count(ctx context.Context) (int, error) {
	return sd.db.CountInstances()
}

func (sd *sqlDataset) MaxAttributeValue(ctx context.Context, a *attribute.Attribute) (int, error) {
	column, err := sd.db.ColumnName(a.Name())
	if err != nil {
		return 0, err
	}
	if sd.columnAttributes[column] == nil {
		return 0, fmt.Errorf("unknown attribute %s", a.Name())
	}
	return sd.db.MaxValue(column)
}

func (sd *sqlDataset) MaxClassValue(ctx context.Context) (int, error) {
	return sd.db.MaxValue(sd.classColumn)
}

func (sd *sqlDataset) Write(ctx context.Context, instances []dataset.Instance) (int, error) {
	rawInstances := make([]map[string]int, 0, len(instances))
	for _, i := range instances {
		raw := make(map[string]int)
		for n, a := range sd.attributes {
			v, err := i.ValueFor(a)
			if err != nil {
				return 0, err
			}
			raw[sd.attributeColumns[n]] = v
		}
		raw[sd.classColumn] = i.Class()
		rawInstances = append(rawInstances, raw)
	}
	return sd.db.AddInstances(rawInstances, sd.attributeColumns, sd.classColumn)
}
