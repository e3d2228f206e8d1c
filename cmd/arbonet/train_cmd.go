package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pmarti/arbonet"
	"github.com/spf13/cobra"
)

type trainCmdConfig struct {
	*rootCmdConfig
	dataInput      string
	metadataInput  string
	output         string
	treeName       string
	weightStrategy string
	ctx            context.Context
	cancelFunc     context.CancelFunc
}

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &trainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a classifier from a set of data",
		Long:  `Train a tree-augmented naive bayes classifier from a set of data and output its learned dependency tree.`,
		Run: func(cmd *cobra.Command, args []string) {
			strategy, err := weightStrategy(config.weightStrategy)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			trainingSet, err := readDataset(config.rootCmdConfig, config.dataInput, config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			count, err := trainingSet.Count(config.Context())
			if err != nil {
				fmt.Fprintf(os.Stderr, "counting training set instances: %v\n", err)
				os.Exit(3)
			}
			c := arbonet.New(strategy)
			config.Logf("Training classifier from a set with %d instances and %d attributes...", count, len(trainingSet.Attributes()))
			err = c.Train(config.Context(), trainingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "training the classifier: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			config.Logf("%v", c)
			err = outputTree(config.rootCmdConfig, config.Context(), config.output, config.treeName, c.Tree())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to train the classifier (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (required for DB-backed inputs)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file or a redis connection URL to which the learned tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "tree-name", "n", "default", "name under which the learned tree is stored when the output is a redis connection URL")
	cmd.PersistentFlags().StringVarP(&(config.weightStrategy), "weight", "w", "log-likelihood", "weighting criterion to score attribute pairs with, the following are valid: log-likelihood")
	return cmd
}

func weightStrategy(name string) (arbonet.WeightStrategy, error) {
	if name == "log-likelihood" {
		return arbonet.LogLikelihood{}, nil
	}
	return nil, fmt.Errorf("unknown weighting criterion '%s'", name)
}

func (tcc *trainCmdConfig) Context() context.Context {
	tcc.setContextAndCancelFunc()
	return tcc.ctx
}

func (tcc *trainCmdConfig) setContextAndCancelFunc() {
	if tcc.ctx == nil {
		tcc.ctx, tcc.cancelFunc = context.WithCancel(context.Background())
	}
}
