package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmarti/arbonet"
	"github.com/pmarti/arbonet/attribute/yaml"
	"github.com/pmarti/arbonet/dataset"
	"github.com/pmarti/arbonet/dataset/csv"
	"github.com/pmarti/arbonet/dataset/mongodataset"
	"github.com/pmarti/arbonet/dataset/sqldataset"
	"github.com/pmarti/arbonet/dataset/sqldataset/pgadapter"
	"github.com/pmarti/arbonet/dataset/sqldataset/sqlite3adapter"
	mgo "gopkg.in/mgo.v2"
)

// defaultClassName names the class column on CSV outputs when no metadata
// declares one.
const defaultClassName = "class"

func isDBInput(input string) bool {
	return strings.HasPrefix(input, "postgresql://") || strings.HasPrefix(input, "mongodb://") || strings.HasSuffix(input, ".db")
}

/*
readDataset loads a dataset from the given input: a CSV file path (or STDIN
when the input is ""), an SQLite3 (.db) file, a PostgreSQL DB connection URL
or a MongoDB connection URL. Database-backed inputs have no header row, so
they require a metadata YML file declaring the attributes.
*/
func readDataset(config *rootCmdConfig, input, metadataInput string) (dataset.Dataset, error) {
	if !isDBInput(input) {
		if input == "" {
			config.Logf("Reading dataset from STDIN...")
		} else {
			config.Logf("Opening %s to read dataset...", input)
		}
		return csv.ReadDatasetFromFilePath(input)
	}
	if metadataInput == "" {
		return nil, fmt.Errorf("reading dataset from %s requires the metadata flag", input)
	}
	config.Logf("Reading attributes from metadata at %s...", metadataInput)
	attributes, class, err := yaml.ReadAttributesFromFile(metadataInput)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(input, "postgresql://") {
		config.Logf("Creating PostgreSQL adapter for url %s to read dataset...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		return sqldataset.Open(adapter, attributes, class)
	}
	if strings.HasPrefix(input, "mongodb://") {
		config.Logf("Dialing MongoDB at %s to read dataset...", input)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, err
		}
		return mongodataset.Open(session, attributes, class)
	}
	config.Logf("Creating SQLite3 adapter for file %s to read dataset...", input)
	adapter, err := sqlite3adapter.New(input)
	if err != nil {
		return nil, err
	}
	return sqldataset.Open(adapter, attributes, class)
}

/*
trainedClassifier loads the training dataset from the given input and
returns a classifier trained on it. When a tree input is given, the
previously learned tree is loaded from it and reused instead of learning the
structure again.
*/
func trainedClassifier(config *rootCmdConfig, ctx context.Context, input, metadataInput, treeInput, treeName string) (*arbonet.Classifier, error) {
	trainingSet, err := readDataset(config, input, metadataInput)
	if err != nil {
		return nil, err
	}
	c := arbonet.New(nil)
	if treeInput != "" {
		t, err := loadTree(config, ctx, treeInput, treeName)
		if err != nil {
			return nil, err
		}
		config.Logf("Training classifier reusing the loaded tree...")
		err = c.TrainWithTree(ctx, trainingSet, t)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	config.Logf("Training classifier...")
	err = c.Train(ctx, trainingSet)
	if err != nil {
		return nil, err
	}
	return c, nil
}

/*
classNameFor returns the name of the class column to use on outputs: the one
the metadata YML declares if a metadata input was given, defaultClassName
otherwise.
*/
func classNameFor(metadataInput string) (string, error) {
	if metadataInput == "" {
		return defaultClassName, nil
	}
	_, class, err := yaml.ReadAttributesFromFile(metadataInput)
	if err != nil {
		return "", err
	}
	return class, nil
}
