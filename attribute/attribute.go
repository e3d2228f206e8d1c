package attribute

/*
Attribute represents a discrete property observed on every instance of a
dataset. It is identified by its name. Its values are 0-based integer
category codes; the attribute carries no explicit value domain, the
cardinality of an attribute is derived from the maximum value observed for
it on a dataset.
*/
type Attribute struct {
	name string
}

/*
New takes a name string and returns an attribute with the given name.
*/
func New(name string) *Attribute {
	return &Attribute{name}
}

/*
Name returns a string with the name of the attribute
*/
func (a *Attribute) Name() string {
	return a.name
}

func (a *Attribute) String() string {
	return a.name
}
