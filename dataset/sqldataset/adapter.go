/*
Package sqldataset provides an implementation of dataset.Dataset that uses a
SQL database as backend.

Instances are stored on a single table with one integer column per attribute
plus an integer column for the class label.
*/
package sqldataset

import "context"

/*
Adapter is an interface providing the methods needed to implement a Dataset
with a SQL database backend.
*/
type Adapter interface {
	ColumnName(string) (string, error)

	CreateInstanceTable(ctx context.Context, attributeColumns []string, classColumn string) error

	AddInstances(rawInstances []map[string]int, attributeColumns []string, classColumn string) (int, error)
	IterateOnInstances(attributeColumns []string, classColumn string, lambda func(int, map[string]int) (bool, error)) error
	CountInstances() (int, error)

	MaxValue(column string) (int, error)
}
