package ljschema

import (
	"math"
	"math/big"
	"strconv"

	"github.com/ljschema/ljschema/internal/ljutil"
)

// Kind tags the shape of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	// KindProperty wraps one object member: Children[0] is the key, rendered
	// as a KindString node, Children[1] is the value.
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Node is one node of a Located JSON Tree: a JSON value augmented with a
// Location string of the form "<base-uri>#<json-pointer>". Nodes are built
// once (by Build) and are immutable thereafter.
type Node struct {
	Kind     Kind
	Location string

	Bool   bool
	Number float64
	Text   string // string value, or (for a KindProperty's key child) the key text

	// Children holds, depending on Kind: array elements (KindArray), property
	// nodes in document order (KindObject), or exactly [key, value]
	// (KindProperty). Leaf kinds leave it nil.
	Children []*Node
}

// Object is an ordered JSON object: a document-ordered sequence of members.
// Build requires objects to be given this way, rather than as a plain Go
// map, because the Located JSON Tree must preserve document order and a Go
// map has no deterministic iteration order.
type Object []Member

// Member is one key/value pair of an Object, in the position it occupies
// in the source document.
type Member struct {
	Key   string
	Value any
}

// Get returns the value associated with key, and whether it was found.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present in o.
func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the member keys of o in document order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Build converts a raw JSON-shaped Go value into a Located JSON Tree rooted
// at "<baseURI>#". Accepted shapes are nil, bool, float64 (and float32,
// int, int32, int64 and *big.Rat, converted to float64), string, []any
// (elements built recursively) and Object (members built recursively, in
// order). Anything else — including other numeric types and NaN/±Inf
// floats — fails with *InvalidJSONError.
func Build(raw any, baseURI string) (*Node, error) {
	return build(raw, baseURI+"#")
}

func build(raw any, location string) (*Node, error) {
	switch v := raw.(type) {
	case nil:
		return &Node{Kind: KindNull, Location: location}, nil
	case bool:
		return &Node{Kind: KindBool, Location: location, Bool: v}, nil
	case string:
		return &Node{Kind: KindString, Location: location, Text: v}, nil
	case float64:
		return buildNumber(v, location)
	case float32:
		return buildNumber(float64(v), location)
	case int:
		return buildNumber(float64(v), location)
	case int32:
		return buildNumber(float64(v), location)
	case int64:
		return buildNumber(float64(v), location)
	case *big.Rat:
		f, _ := v.Float64()
		return buildNumber(f, location)
	case []any:
		children := make([]*Node, len(v))
		for i, elem := range v {
			child, err := build(elem, appendSegment(location, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return &Node{Kind: KindArray, Location: location, Children: children}, nil
	case Object:
		children := make([]*Node, len(v))
		for i, m := range v {
			propLoc := appendSegment(location, m.Key)
			valNode, err := build(m.Value, propLoc)
			if err != nil {
				return nil, err
			}
			keyNode := &Node{Kind: KindString, Location: propLoc, Text: m.Key}
			children[i] = &Node{Kind: KindProperty, Location: propLoc, Children: []*Node{keyNode, valNode}}
		}
		return &Node{Kind: KindObject, Location: location, Children: children}, nil
	default:
		return nil, &InvalidJSONError{Location: location, Reason: "value is not null, bool, number, string, []any, or ljschema.Object"}
	}
}

func buildNumber(f float64, location string) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &InvalidJSONError{Location: location, Reason: "number is NaN or infinite"}
	}
	return &Node{Kind: KindNumber, Location: location, Number: f}, nil
}

// AssertType fails with *InvalidSchemaError unless n.Kind == want.
func AssertType(n *Node, want Kind) error {
	if n.Kind != want {
		return &InvalidSchemaError{Location: n.Location, Reason: "expected " + want.String() + ", got " + n.Kind.String()}
	}
	return nil
}

// propKeyValue returns the key and value of a KindProperty node, asserting
// the [KindProperty] shape invariant Build guarantees: exactly two
// children, the first a string.
func propKeyValue(prop *Node) (string, *Node) {
	ljutil.Assert(prop.Kind == KindProperty && len(prop.Children) == 2 && prop.Children[0].Kind == KindString,
		"malformed property node at "+prop.Location)
	return prop.Children[0].Text, prop.Children[1]
}

// ObjectGet returns the value node of the member named key, and whether it
// was found. n must be a KindObject node.
func (n *Node) ObjectGet(key string) (*Node, bool) {
	for _, prop := range n.Children {
		k, v := propKeyValue(prop)
		if k == key {
			return v, true
		}
	}
	return nil, false
}

// ObjectHas reports whether the object node n has a member named key.
func (n *Node) ObjectHas(key string) bool {
	_, ok := n.ObjectGet(key)
	return ok
}

// ObjectKeys returns the member keys of object node n in document order.
func (n *Node) ObjectKeys() []string {
	keys := make([]string, len(n.Children))
	for i, prop := range n.Children {
		k, _ := propKeyValue(prop)
		keys[i] = k
	}
	return keys
}

// PointerStep returns the value slot reached by stepping into n with a
// single JSON Pointer segment: for an object, the member named seg; for an
// array, the element at index seg. It returns (nil, false) if the step is
// not a member/index of n.
func PointerStep(n *Node, seg string) (*Node, bool) {
	switch n.Kind {
	case KindObject:
		return n.ObjectGet(seg)
	case KindArray:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(n.Children) {
			return nil, false
		}
		return n.Children[idx], true
	default:
		return nil, false
	}
}

// IsInteger reports whether a KindNumber node's value has no fractional
// part, satisfying JSON Schema's "integer" type.
func (n *Node) IsInteger() bool {
	return n.Kind == KindNumber && n.Number == math.Trunc(n.Number)
}
