/*
Package redisstore provides storage of encoded directed dependency trees in
a redis database, so a structure learned by one process can be reused by
others.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/pmarti/arbonet/tree"
	"gopkg.in/redis.v5"
)

/*
TreeEncodeDecoder is an interface for objects that allow encoding trees into
slices of bytes and decoding them back to trees.
*/
type TreeEncodeDecoder interface {

	//Encode receives a *tree.Directed and returns a slice of bytes with
	//the tree encoded or an error if the encoding could not be performed
	//for some reason.
	Encode(*tree.Directed) ([]byte, error)

	//Decode receives a slice of bytes and returns a *tree.Directed
	//decoded from it or an error if the decoding could not be performed
	//for some reason.
	Decode([]byte) (*tree.Directed, error)
}

/*
Store keeps encoded trees in a redis DB under a name-spaced key per tree
name.
*/
type Store struct {
	rc      *redis.Client
	prefix  string
	tencdec TreeEncodeDecoder
}

//New builds a Store backed by a redis DB
func New(rc *redis.Client, prefix string, tencdec TreeEncodeDecoder) *Store {
	return &Store{rc, prefix, tencdec}
}

/*
Save takes a name and a tree and stores the encoded tree under the name,
replacing any tree previously stored under it. It returns an error if the
tree cannot be encoded or stored.
*/
func (s *Store) Save(ctx context.Context, name string, t *tree.Directed) error {
	data, err := s.tencdec.Encode(t)
	if err != nil {
		return fmt.Errorf("saving tree %q: encoding tree: %v", name, err)
	}
	_, err = s.rc.Set(s.keyFor(name), data, 0).Result()
	if err != nil {
		return fmt.Errorf("saving tree %q in redis: %v", name, err)
	}
	return nil
}

/*
Load takes a name and returns the tree stored under it, or nil if no tree is
stored under the name. It returns an error if the store cannot be queried or
the stored data cannot be decoded.
*/
func (s *Store) Load(ctx context.Context, name string) (*tree.Directed, error) {
	data, err := s.rc.Get(s.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", name, err)
	}
	t, err := s.tencdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding %q: %v", name, data, err)
	}
	return t, nil
}

/*
Delete takes a name and removes the tree stored under it, if any. It returns
an error if the deletion cannot be performed.
*/
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.rc.Del(s.keyFor(name)).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", name, err)
	}
	return nil
}

func (s *Store) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", s.prefix, name)
}
