package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
	"github.com/pmarti/arbonet/dataset/csv"
	"github.com/pmarti/arbonet/dataset/mongodataset"
	"github.com/pmarti/arbonet/dataset/sqldataset"
	"github.com/pmarti/arbonet/dataset/sqldataset/pgadapter"
	"github.com/pmarti/arbonet/dataset/sqldataset/sqlite3adapter"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type datasetCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	output        string
	ctx           context.Context
	cancelFunc    context.CancelFunc
}

type instanceAdder interface {
	Write(context.Context, []dataset.Instance) (int, error)
}

type instanceWriter interface {
	instanceAdder
	Flush() error
}

type flushableInstanceAdder struct {
	instanceAdder
}

type csvInstanceWriter struct {
	w csv.Writer
}

func datasetCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &datasetCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage datasets",
		Long:  `Dump a dataset from one backend into another, for example from a CSV file into an SQLite3 file or a PostgreSQL or MongoDB database`,
		Run: func(cmd *cobra.Command, args []string) {
			d, err := readDataset(config.rootCmdConfig, config.dataInput, config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			instances, err := d.Instances(config.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			output, err := config.outputWriter(config.output, d.Attributes())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			written, err := output.Write(config.Context(), instances)
			if err != nil {
				fmt.Fprintf(os.Stderr, "dumping instances to the output dataset: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Flushing output dataset...")
			err = output.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Done")
			config.Logf("%d instances dumped to the output dataset", written)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the dataset to dump (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (required for DB-backed inputs)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the dataset to (defaults to STDOUT in CSV)")
	cmd.AddCommand(splitCmd(config))
	return cmd
}

/*
outputWriter returns an instanceWriter for the given output: a PostgreSQL or
MongoDB connection URL, an SQLite3 (.db) file, a CSV file path or STDOUT when
the output is "". Database-backed outputs get their instance table or
collection prepared before any instance is written.
*/
func (dcc *datasetCmdConfig) outputWriter(output string, attributes []*attribute.Attribute) (instanceWriter, error) {
	class, err := classNameFor(dcc.metadataInput)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(output, "postgresql://") {
		dcc.Logf("Creating PostgreSQL adapter for url %s to dump the output dataset...", output)
		adapter, err := pgadapter.New(output)
		if err != nil {
			return nil, err
		}
		ds, err := sqldataset.Create(dcc.Context(), adapter, attributes, class)
		if err != nil {
			return nil, err
		}
		return &flushableInstanceAdder{ds}, nil
	}
	if strings.HasPrefix(output, "mongodb://") {
		dcc.Logf("Dialing MongoDB at %s to dump the output dataset...", output)
		session, err := mgo.Dial(output)
		if err != nil {
			return nil, err
		}
		ds, err := mongodataset.Open(session, attributes, class)
		if err != nil {
			return nil, err
		}
		return &flushableInstanceAdder{ds}, nil
	}
	if strings.HasSuffix(output, ".db") {
		dcc.Logf("Creating SQLite3 adapter for file %s to dump the output dataset...", output)
		adapter, err := sqlite3adapter.New(output)
		if err != nil {
			return nil, err
		}
		ds, err := sqldataset.Create(dcc.Context(), adapter, attributes, class)
		if err != nil {
			return nil, err
		}
		return &flushableInstanceAdder{ds}, nil
	}
	var outputFile *os.File
	if output == "" {
		dcc.Logf("Using STDOUT to dump the output dataset...")
		outputFile = os.Stdout
	} else {
		dcc.Logf("Creating %s to dump the output dataset...", output)
		outputFile, err = os.Create(output)
		if err != nil {
			return nil, err
		}
	}
	w, err := csv.NewWriter(outputFile, attributes, class)
	if err != nil {
		return nil, err
	}
	return &csvInstanceWriter{w}, nil
}

func (dcc *datasetCmdConfig) Context() context.Context {
	dcc.setContextAndCancelFunc()
	return dcc.ctx
}

func (dcc *datasetCmdConfig) setContextAndCancelFunc() {
	if dcc.ctx == nil {
		dcc.ctx, dcc.cancelFunc = context.WithCancel(context.Background())
	}
}

func (fia *flushableInstanceAdder) Flush() error {
	return nil
}

func (cw *csvInstanceWriter) Write(ctx context.Context, instances []dataset.Instance) (int, error) {
	for n, i := range instances {
		if err := cw.w.WriteInstance(i, i.Class()); err != nil {
			return n, err
		}
	}
	return len(instances), nil
}

func (cw *csvInstanceWriter) Flush() error {
	return cw.w.Flush()
}

type splitCmdConfig struct {
	*datasetCmdConfig
	splitOutput      string
	splitProbability int
}

func splitCmd(datasetConfig *datasetCmdConfig) *cobra.Command {
	config := &splitCmdConfig{datasetCmdConfig: datasetConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a dataset into two datasets",
		Long:  `Split a dataset into an output dataset and a split dataset, for example to carve a test set out of a training set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			d, err := readDataset(config.rootCmdConfig, config.dataInput, config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			instances, err := d.Instances(config.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			output, err := config.outputWriter(config.output, d.Attributes())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			splitOutput, err := config.outputWriter(config.splitOutput, d.Attributes())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			randomizer := rand.New(rand.NewSource(time.Now().UnixNano()))
			kept, split := splitInstances(instances, config.splitProbability, randomizer)
			_, err = output.Write(config.Context(), kept)
			if err != nil {
				fmt.Fprintf(os.Stderr, "dumping instances to the output dataset: %v\n", err)
				os.Exit(6)
			}
			_, err = splitOutput.Write(config.Context(), split)
			if err != nil {
				fmt.Fprintf(os.Stderr, "dumping instances to the split dataset: %v\n", err)
				os.Exit(7)
			}
			config.Logf("Flushing output dataset...")
			err = output.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			config.Logf("Flushing split dataset...")
			err = splitOutput.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
			config.Logf("Done")
			config.Logf("Input dataset with %d instances was split into datasets with %d and %d instances", len(instances), len(kept), len(split))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the split dataset to (required)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that an instance of the dataset will be assigned to the split dataset")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

/*
splitInstances assigns each instance to the split slice with the given
probability, expressed as a percent integer, and to the kept slice otherwise.
Both slices preserve the relative order of the input.
*/
func splitInstances(instances []dataset.Instance, probability int, r *rand.Rand) ([]dataset.Instance, []dataset.Instance) {
	var kept, split []dataset.Instance
	for _, i := range instances {
		if (100 * r.Float32()) > float32(probability) {
			kept = append(kept, i)
		} else {
			split = append(split, i)
		}
	}
	return kept, split
}
