package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pmarti/arbonet"
	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset/csv"
	"github.com/pmarti/arbonet/dataset/inputsample"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	testInput     string
	output        string
	treeInput     string
	treeName      string
	interactive   bool
	ctx           context.Context
	cancelFunc    context.CancelFunc
}

type stdoutValueRequester struct{}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Label instances with a trained classifier",
		Long:  `Train a classifier on a training set and use it to label the instances of a test set, or a single instance provided interactively.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			c, err := trainedClassifier(config.rootCmdConfig, config.Context(), config.dataInput, config.metadataInput, config.treeInput, config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			if config.interactive {
				err = config.classifyInteractively(c)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
				return
			}
			err = config.classifySet(c)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to train the classifier (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (required for DB-backed inputs)")
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the instances to label")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file to dump the labeled instances (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.treeInput), "tree", "", "path to a file or a redis connection URL from which a previously learned tree will be loaded instead of learning it again")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "tree-name", "n", "default", "name under which the tree to load is stored when the tree input is a redis connection URL")
	cmd.PersistentFlags().BoolVar(&(config.interactive), "interactive", false, "prompt for a single instance's attribute values and print its predicted class")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.interactive && ccc.testInput != "" {
		return fmt.Errorf("cannot set both interactive and test-input flags at the same time")
	}
	if !ccc.interactive && ccc.testInput == "" {
		return fmt.Errorf("required test-input flag was not set")
	}
	return nil
}

func (ccc *classifyCmdConfig) classifyInteractively(c *arbonet.Classifier) error {
	instance := inputsample.New(os.Stdin, stdoutValueRequester{})
	label, err := c.Classify(instance)
	if err != nil {
		return err
	}
	fmt.Printf("Predicted class is %d\n", label)
	return nil
}

func (ccc *classifyCmdConfig) classifySet(c *arbonet.Classifier) error {
	testSet, err := readDataset(ccc.rootCmdConfig, ccc.testInput, ccc.metadataInput)
	if err != nil {
		return err
	}
	count, err := testSet.Count(ccc.Context())
	if err != nil {
		return fmt.Errorf("counting test set instances: %v", err)
	}
	ccc.Logf("Labeling %d instances...", count)
	labels, err := c.ClassifySet(ccc.Context(), testSet)
	if err != nil {
		return err
	}
	class, err := classNameFor(ccc.metadataInput)
	if err != nil {
		return err
	}
	var outputFile *os.File
	if ccc.output != "" {
		ccc.Logf("Creating %s to dump the labeled instances...", ccc.output)
		outputFile, err = os.Create(ccc.output)
		if err != nil {
			return err
		}
		defer outputFile.Close()
	} else {
		outputFile = os.Stdout
	}
	return csv.WriteDataset(ccc.Context(), outputFile, testSet, class, labels)
}

func (ccc *classifyCmdConfig) Context() context.Context {
	ccc.setContextAndCancelFunc()
	return ccc.ctx
}

func (ccc *classifyCmdConfig) setContextAndCancelFunc() {
	if ccc.ctx == nil {
		ccc.ctx, ccc.cancelFunc = context.WithCancel(context.Background())
	}
}

func (stdoutValueRequester) RequestValueFor(a *attribute.Attribute) error {
	fmt.Printf("Please provide the instance's %s:\n(valid values are non-negative integer category codes)\n", a.Name())
	return nil
}

func (stdoutValueRequester) RejectValueFor(a *attribute.Attribute, value string) error {
	fmt.Printf("%s is not a valid value for the instance's %s. Please provide a non-negative integer category code.\n", value, a.Name())
	return nil
}
