/*
Package arbonet implements a Tree-Augmented Naive Bayes (TAN) classifier
over discrete, integer-coded datasets.

Instead of assuming all attributes mutually independent given the class, as
plain Naive Bayes does, the classifier learns a dependency tree over the
attributes: it scores every attribute pair with a pluggable WeightStrategy,
extracts a maximum-weight spanning tree from the resulting complete graph
and roots it, so that every attribute is conditioned on at most one other
attribute besides the class. Class hypotheses are then ranked by the joint
probability of the instance and the class, factorized along the tree with
additive smoothing.
*/
package arbonet

import (
	"context"
	"fmt"
	"math"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/dataset"
	"github.com/pmarti/arbonet/graph"
	"github.com/pmarti/arbonet/tree"
)

// pseudoCount is the additive smoothing constant applied to every
// frequency estimate, so no attribute-value combination ever gets a zero
// probability.
const pseudoCount = 0.5

// ClassifierError represents an error related with classifiers
type ClassifierError string

/*
ErrNotTrained is the error returned when asking an untrained classifier to
classify or describe its structure.
*/
const ErrNotTrained = ClassifierError("classifier has not been trained")

func (ce ClassifierError) Error() string {
	return string(ce)
}

/*
Classifier is a Tree-Augmented Naive Bayes classifier. A zero-value-like
classifier built with New is untrained; Train gives it a model consisting of
the training set counts and the learned directed dependency tree. Training
replaces the whole model: there is no partially trained state. A trained
classifier is read-only and may serve any number of classifications.
*/
type Classifier struct {
	strategy WeightStrategy
	counts   *counter
	tree     *tree.Directed
}

/*
New takes a WeightStrategy and returns an untrained Classifier that will
learn its dependency tree with it. A nil strategy selects LogLikelihood.
*/
func New(strategy WeightStrategy) *Classifier {
	if strategy == nil {
		strategy = LogLikelihood{}
	}
	return &Classifier{strategy: strategy}
}

/*
Train takes a training dataset and builds the classifier's model from it: it
scores every attribute pair with the classifier's weight strategy, extracts
a maximum-weight spanning tree over the attributes and roots it at the
spanning tree's origin. Any previously trained model is replaced; on error
the previous model is kept untouched and no partial model is ever left
behind.
*/
func (c *Classifier) Train(ctx context.Context, d dataset.Dataset) error {
	counts, err := newCounter(ctx, d)
	if err != nil {
		return fmt.Errorf("training classifier: %v", err)
	}
	dt, err := c.learnStructure(counts)
	if err != nil {
		return fmt.Errorf("training classifier: %v", err)
	}
	c.counts = counts
	c.tree = dt
	return nil
}

/*
TrainWithTree takes a training dataset and a previously learned directed
tree and builds the classifier's model reusing the given tree instead of
learning the structure again. It returns an error if the tree does not span
exactly the attributes of the dataset.
*/
func (c *Classifier) TrainWithTree(ctx context.Context, d dataset.Dataset, dt *tree.Directed) error {
	counts, err := newCounter(ctx, d)
	if err != nil {
		return fmt.Errorf("training classifier: %v", err)
	}
	if len(dt.Attributes()) != len(counts.attributes) {
		return fmt.Errorf("training classifier: tree spans %d attributes, dataset declares %d", len(dt.Attributes()), len(counts.attributes))
	}
	for _, a := range dt.Attributes() {
		if _, ok := counts.index[a.Name()]; !ok {
			return fmt.Errorf("training classifier: tree attribute %s does not belong to the dataset", a.Name())
		}
	}
	c.counts = counts
	c.tree = dt
	return nil
}

func (c *Classifier) learnStructure(counts *counter) (*tree.Directed, error) {
	g := graph.NewUndirected(len(counts.attributes))
	for _, a := range counts.attributes {
		if err := g.AddVertex(a); err != nil {
			return nil, fmt.Errorf("adding attribute %s to dependency graph: %v", a.Name(), err)
		}
	}
	for i := 0; i < len(counts.attributes); i++ {
		for j := i + 1; j < len(counts.attributes); j++ {
			weight := c.strategy.Weight(counts, counts.attributes[i], counts.attributes[j])
			if err := g.SetEdgeWeight(counts.attributes[i], counts.attributes[j], weight); err != nil {
				return nil, fmt.Errorf("weighting attribute pair %s-%s: %v", counts.attributes[i].Name(), counts.attributes[j].Name(), err)
			}
		}
	}
	st, err := graph.MaxSpanningTree(g)
	if err != nil {
		return nil, fmt.Errorf("extracting spanning tree: %v", err)
	}
	dt, err := tree.FromSpanningTree(st)
	if err != nil {
		return nil, fmt.Errorf("rooting spanning tree: %v", err)
	}
	return dt, nil
}

/*
Classify takes an instance and returns the class label with the greatest
joint probability according to the trained model. Classes are evaluated in
increasing label order and compared with strict greater-than, so ties go to
the first class encountered. It returns ErrNotTrained on an untrained
classifier.
*/
func (c *Classifier) Classify(i dataset.Instance) (int, error) {
	if c.tree == nil {
		return 0, ErrNotTrained
	}
	classMax := 0
	maximum := math.Inf(-1)
	for cl := 0; cl <= c.counts.MaxClassValue(); cl++ {
		prob, err := c.jointProbability(i, cl)
		if err != nil {
			return 0, fmt.Errorf("classifying instance: %v", err)
		}
		if prob > maximum {
			maximum = prob
			classMax = cl
		}
	}
	return classMax, nil
}

/*
ClassifySet takes a dataset and returns one class label per instance,
preserving instance order. It returns ErrNotTrained on an untrained
classifier.
*/
func (c *Classifier) ClassifySet(ctx context.Context, d dataset.Dataset) ([]int, error) {
	if c.tree == nil {
		return nil, ErrNotTrained
	}
	instances, err := d.Instances(ctx)
	if err != nil {
		return nil, fmt.Errorf("classifying dataset: %v", err)
	}
	labels := make([]int, len(instances))
	for n, i := range instances {
		labels[n], err = c.Classify(i)
		if err != nil {
			return nil, err
		}
	}
	return labels, nil
}

/*
Test takes a labeled dataset and returns the rate of instances whose
predicted class matches their label. It returns ErrNotTrained on an
untrained classifier; an empty dataset tests at rate 0.
*/
func (c *Classifier) Test(ctx context.Context, d dataset.Dataset) (float64, error) {
	labels, err := c.ClassifySet(ctx, d)
	if err != nil {
		return 0.0, err
	}
	instances, err := d.Instances(ctx)
	if err != nil {
		return 0.0, fmt.Errorf("testing classifier: %v", err)
	}
	if len(instances) == 0 {
		return 0.0, nil
	}
	var hits float64
	for n, i := range instances {
		if labels[n] == i.Class() {
			hits += 1.0
		}
	}
	return hits / float64(len(instances)), nil
}

/*
Tree returns the directed dependency tree of the trained model, or nil on an
untrained classifier.
*/
func (c *Classifier) Tree() *tree.Directed {
	return c.tree
}

func (c *Classifier) String() string {
	if c.tree == nil {
		return "<untrained classifier>"
	}
	return c.tree.String()
}

/*
jointProbability computes the unnormalized joint probability of an instance
and a class value: the smoothed class prior times the smoothed conditional
estimate of every attribute given its tree parent and the class, walking the
attributes in the dataset's declared order. Root attributes have a nil
parent, which the counting degradation rule turns into an estimate
conditioned on the class alone.
*/
func (c *Classifier) jointProbability(i dataset.Instance, cl int) (float64, error) {
	prob := c.classOFE(cl)
	for _, a := range c.counts.attributes {
		parent := c.tree.Parent(a)
		j := 0
		if parent != nil {
			var err error
			j, err = i.ValueFor(parent)
			if err != nil {
				return 0.0, err
			}
		}
		k, err := i.ValueFor(a)
		if err != nil {
			return 0.0, err
		}
		prob *= c.ofe(a, parent, j, k, cl)
	}
	return prob, nil
}

/*
ofe computes the observed frequency estimate for attribute i taking value k,
given that its parent iParent takes value j and the class takes value cl,
with additive smoothing over the attribute's observed cardinality. The
estimate is strictly positive even for combinations never observed.
*/
func (c *Classifier) ofe(i, iParent *attribute.Attribute, j, k, cl int) float64 {
	rI := c.counts.MaxAttributeValue(i) + 1
	return (float64(c.counts.CountPairClass(i, iParent, j, k, cl)) + pseudoCount) /
		(float64(c.counts.CountAttributeClass(iParent, j, cl)) + float64(rI)*pseudoCount)
}

/*
classOFE computes the smoothed observed frequency estimate for the class
taking value cl.
*/
func (c *Classifier) classOFE(cl int) float64 {
	s := c.counts.MaxClassValue() + 1
	return (float64(c.counts.CountClass(cl)) + pseudoCount) /
		(float64(c.counts.CountTotal()) + float64(s)*pseudoCount)
}
