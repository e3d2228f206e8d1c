package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput  string
	treeName   string
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Manage learned dependency trees",
		Long:  `Show dependency trees learned with the train command and manage the ones kept in redis`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := loadTree(config.rootCmdConfig, config.Context(), config.treeInput, config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			fmt.Println(t)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file or a redis connection URL from which the tree will be loaded (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "tree-name", "n", "default", "name under which the tree is stored when the tree input is a redis connection URL")
	cmd.AddCommand(deleteTreeCmd(config))
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func deleteTreeCmd(treeConfig *treeCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete a tree stored in redis",
		Long:  `Delete the tree stored under the given name from a redis database`,
		Run: func(cmd *cobra.Command, args []string) {
			err := treeConfig.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if !strings.HasPrefix(treeConfig.treeInput, "redis://") {
				fmt.Fprintln(os.Stderr, "only trees stored under a redis connection URL can be deleted")
				os.Exit(1)
			}
			store, err := redisTreeStore(treeConfig.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			treeConfig.Logf("Deleting tree %q from redis at %s...", treeConfig.treeName, treeConfig.treeInput)
			err = store.Delete(treeConfig.Context(), treeConfig.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			treeConfig.Logf("Done")
		},
	}
}

func (tcc *treeCmdConfig) Context() context.Context {
	tcc.setContextAndCancelFunc()
	return tcc.ctx
}

func (tcc *treeCmdConfig) setContextAndCancelFunc() {
	if tcc.ctx == nil {
		tcc.ctx, tcc.cancelFunc = context.WithCancel(context.Background())
	}
}
