package arbonet

import (
	"math"

	"github.com/pmarti/arbonet/attribute"
)

/*
WeightStrategy computes a pairwise dependence score between two attributes
from the counting queries over a training set. Scores are symmetric by
convention: the structure learner computes each unordered pair once and
assigns the same value to both edge directions. There is no restriction on
the sign or magnitude of the score, higher means stronger dependence.
*/
type WeightStrategy interface {
	Weight(cs Counts, i, iPrime *attribute.Attribute) float64
}

/*
LogLikelihood is a WeightStrategy that scores a pair of attributes with a
log-likelihood criterion, an empirical mutual-information style measure of
how much the two attributes depend on each other given the class.
*/
type LogLikelihood struct{}

/*
Weight computes the log-likelihood weight between two attributes. Terms
whose joint count is zero contribute nothing and are skipped, so the score
never divides by zero nor takes the logarithm of zero.
*/
func (LogLikelihood) Weight(cs Counts, i, iPrime *attribute.Attribute) float64 {
	qI := cs.MaxAttributeValue(iPrime) + 1
	rI := cs.MaxAttributeValue(i) + 1
	s := cs.MaxClassValue() + 1
	n := cs.CountTotal()
	var weight float64
	for c := 0; c < s; c++ {
		nc := cs.CountClass(c)
		for j := 0; j < qI; j++ {
			nijc := cs.CountAttributeClass(iPrime, j, c)
			for k := 0; k < rI; k++ {
				nikc := cs.CountAttributeClass(i, k, c)
				nijkc := cs.CountPairClass(i, iPrime, j, k, c)
				if nijkc != 0 {
					weight += float64(nijkc) / float64(n) * math.Log2(float64(nijkc*nc)/float64(nikc*nijc))
				}
			}
		}
	}
	return weight
}
