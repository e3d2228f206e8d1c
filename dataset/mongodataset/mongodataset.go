/*
Package mongodataset provides an implementation of dataset.Dataset that uses
a MongoDB database as backend.

Instances are stored as documents on an instances collection, with one
integer property per attribute plus one for the class label.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const instancesCollectionName = "instances"

/*
Dataset is a dataset.Dataset to which instances can be added
*/
type Dataset interface {
	dataset.Dataset
	Write(context.Context, []dataset.Instance) (int, error)
}

type mongodataset struct {
	session    *mgo.Session
	attributes []*attribute.Attribute
	class      string
}

/*
Open takes a MongoDB database session, a slice of attributes and the name of
the class property and returns a Dataset that works on the default database
for that session or an error if it fails to prepare it. The mgo driver does
not support contexts, so cancellation is not available on the preparation
queries.
*/
func Open(session *mgo.Session, attributes []*attribute.Attribute, class string) (Dataset, error) {
	mds := &mongodataset{session, attributes, class}
	err := mds.ensureIndexes()
	if err != nil {
		return nil, err
	}
	return mds, nil
}

func (mds *mongodataset) Attributes() []*attribute.Attribute {
	return mds.attributes
}

func (mds *mongodataset) Instances(ctx context.Context) ([]dataset.Instance, error) {
	iter := mds.instancesCollection().Find(nil).Sort("_id").Iter()
	defer iter.Close()
	var doc bson.M
	var instances []dataset.Instance
	for iter.Next(&doc) {
		i, err := mds.instanceFromDoc(doc)
		if err != nil {
			return nil, err
		}
		instances = append(instances, i)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading instances from mongo: %v", err)
	}
	return instances, nil
}

func (mds *mongodataset) Count(ctx context.Context) (int, error) {
	return mds.instancesCollection().Count()
}

func (mds *mongodataset) MaxAttributeValue(ctx context.Context, a *attribute.Attribute) (int, error) {
	return mds.maxValue(a.Name())
}

func (mds *mongodataset) MaxClassValue(ctx context.Context) (int, error) {
	return mds.maxValue(mds.class)
}

func (mds *mongodataset) Write(ctx context.Context, instances []dataset.Instance) (int, error) {
	docs := make([]interface{}, 0, len(instances))
	for _, i := range instances {
		doc := make(bson.M)
		for _, a := range mds.attributes {
			value, err := i.ValueFor(a)
			if err != nil {
				return 0, err
			}
			doc[a.Name()] = value
		}
		doc[mds.class] = i.Class()
		docs = append(docs, doc)
	}
	err := mds.instancesCollection().Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("writing instances to mongo: %v", err)
	}
	return len(docs), nil
}

func (mds *mongodataset) maxValue(property string) (int, error) {
	iter := mds.instancesCollection().Pipe([]bson.M{{"$group": bson.M{"_id": nil, "max": bson.M{"$max": fmt.Sprintf("$%s", property)}}}}).Iter()
	defer iter.Close()
	var doc bson.M
	max := -1
	for iter.Next(&doc) {
		v, err := intValue(doc["max"])
		if err != nil {
			return 0, fmt.Errorf("querying maximum value of %s: %v", property, err)
		}
		max = v
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("querying maximum value of %s: %v", property, err)
	}
	return max, nil
}

func (mds *mongodataset) instanceFromDoc(doc bson.M) (dataset.Instance, error) {
	values := make(map[string]int)
	for _, a := range mds.attributes {
		v, err := intValue(doc[a.Name()])
		if err != nil {
			return nil, fmt.Errorf("reading value for attribute %s: %v", a.Name(), err)
		}
		values[a.Name()] = v
	}
	class, err := intValue(doc[mds.class])
	if err != nil {
		return nil, fmt.Errorf("reading class label: %v", err)
	}
	return dataset.NewInstance(values, class), nil
}

func (mds *mongodataset) instancesCollection() *mgo.Collection {
	return mds.session.DB("").C(instancesCollectionName)
}

func (mds *mongodataset) ensureIndexes() error {
	err := mds.instancesCollection().EnsureIndex(mgo.Index{Key: []string{mds.class}})
	if err != nil {
		return fmt.Errorf("ensuring index on %s: %v", mds.class, err)
	}
	return nil
}

func intValue(v interface{}) (int, error) {
	switch value := v.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	}
	return 0, fmt.Errorf("mongo returned a %T instead of an integer", v)
}
