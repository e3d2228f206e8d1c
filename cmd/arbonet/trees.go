package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/url"
	"strconv"
	"strings"

	"github.com/pmarti/arbonet/tree"
	treejson "github.com/pmarti/arbonet/tree/json"
	"github.com/pmarti/arbonet/tree/redisstore"
	"gopkg.in/redis.v5"
)

// redisTreePrefix name-spaces the keys trees are stored under in redis.
const redisTreePrefix = "arbonet:trees"

type jsonTreeEncodeDecoder struct{}

func (jsonTreeEncodeDecoder) Encode(t *tree.Directed) ([]byte, error) {
	return treejson.Encode(t)
}

func (jsonTreeEncodeDecoder) Decode(data []byte) (*tree.Directed, error) {
	return treejson.Decode(data)
}

/*
outputTree writes the given tree encoded as JSON to the given output: a
redis connection URL, a file path or STDOUT when the output is "". Trees
stored in redis are saved under the given name.
*/
func outputTree(config *rootCmdConfig, ctx context.Context, output, name string, t *tree.Directed) error {
	if strings.HasPrefix(output, "redis://") {
		config.Logf("Storing tree as %q in redis at %s...", name, output)
		store, err := redisTreeStore(output)
		if err != nil {
			return err
		}
		return store.Save(ctx, name, t)
	}
	data, err := treejson.Encode(t)
	if err != nil {
		return err
	}
	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	config.Logf("Writing tree to %s...", output)
	err = ioutil.WriteFile(output, data, 0644)
	if err != nil {
		return fmt.Errorf("writing tree to %s: %v", output, err)
	}
	return nil
}

/*
loadTree reads a tree encoded as JSON from the given input: a redis
connection URL, under the given name, or a file path.
*/
func loadTree(config *rootCmdConfig, ctx context.Context, input, name string) (*tree.Directed, error) {
	if strings.HasPrefix(input, "redis://") {
		config.Logf("Loading tree %q from redis at %s...", name, input)
		store, err := redisTreeStore(input)
		if err != nil {
			return nil, err
		}
		t, err := store.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no tree stored as %q at %s", name, input)
		}
		return t, nil
	}
	config.Logf("Reading tree from %s...", input)
	data, err := ioutil.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("reading tree from %s: %v", input, err)
	}
	return treejson.Decode(data)
}

func redisTreeStore(rawurl string) (*redisstore.Store, error) {
	opts, err := parseRedisURL(rawurl)
	if err != nil {
		return nil, err
	}
	return redisstore.New(redis.NewClient(opts), redisTreePrefix, jsonTreeEncodeDecoder{}), nil
}

/*
parseRedisURL parses a redis://[:password@]host:port[/db] connection URL
into redis client options.
*/
func parseRedisURL(rawurl string) (*redis.Options, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url %s: %v", rawurl, err)
	}
	opts := &redis.Options{Addr: u.Host}
	if u.User != nil {
		if password, ok := u.User.Password(); ok {
			opts.Password = password
		}
	}
	if len(u.Path) > 1 {
		db, err := strconv.Atoi(strings.TrimPrefix(u.Path, "/"))
		if err != nil {
			return nil, fmt.Errorf("parsing redis url %s: invalid db number %s", rawurl, strings.TrimPrefix(u.Path, "/"))
		}
		opts.DB = db
	}
	if opts.Addr == "" {
		return nil, fmt.Errorf("parsing redis url %s: no host", rawurl)
	}
	return opts, nil
}
