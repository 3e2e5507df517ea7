package models

// Node is a node of the JSON syntax tree produced by the parser.
// The set of implementations is closed: *Object, *Array, *Pair, *Literal,
// *Number, True, False and Null.
type Node interface {
	node()
}

// Object is a JSON object. Pairs keep their input order and keys are unique.
type Object struct {
	Pairs []*Pair
}

// Array is a JSON array.
type Array struct {
	Items []Node
}

// Pair is a key/value association inside an Object.
type Pair struct {
	Key   *Literal
	Value Node
}

// Literal is a JSON string. Text is the unescaped content.
type Literal struct {
	Text string
}

// Number is a JSON number.
type Number struct {
	Value float64
}

// True, False and Null are the JSON keywords.
type (
	True  struct{}
	False struct{}
	Null  struct{}
)

func (*Object) node()  {}
func (*Array) node()   {}
func (*Pair) node()    {}
func (*Literal) node() {}
func (*Number) node()  {}
func (True) node()     {}
func (False) node()    {}
func (Null) node()     {}

// NewPair builds a pair from a key text and a value.
func NewPair(key string, value Node) *Pair {
	return &Pair{Key: &Literal{Text: key}, Value: value}
}
