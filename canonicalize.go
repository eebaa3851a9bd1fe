package ljschema

import (
	"math/big"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Canonicalize renders n to a deterministic string: object keys sorted
// lexicographically, numbers rendered through an exact rational form so
// that numerically-equal floats always produce identical text, and no
// incidental whitespace. It underlies Equal, used by const/enum/
// uniqueItems.
func Canonicalize(n *Node) string {
	var b strings.Builder
	writeCanonical(&b, n)
	return b.String()
}

// Equal reports whether a and b are equal under JSON Schema's notion of
// instance equality (deep structural equality, with numeric equality
// independent of integer/float representation).
func Equal(a, b *Node) bool {
	return Canonicalize(a) == Canonicalize(b)
}

func writeCanonical(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if n.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(canonicalNumber(n.Number))
	case KindString:
		writeCanonicalString(b, n.Text)
	case KindArray:
		b.WriteByte('[')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, c)
		}
		b.WriteByte(']')
	case KindObject:
		keys := n.ObjectKeys()
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonicalString(b, k)
			b.WriteByte(':')
			v, _ := n.ObjectGet(k)
			writeCanonical(b, v)
		}
		b.WriteByte('}')
	}
}

func writeCanonicalString(b *strings.Builder, s string) {
	data, err := json.Marshal(s)
	if err != nil {
		// s is a valid Go string; Marshal of a string cannot fail.
		panic(err)
	}
	b.Write(data)
}

// canonicalNumber renders f through a big.Rat, which captures its exact
// IEEE-754 value: two floats that compare == always produce identical
// output, and floats that differ (even by representation, e.g. 1.0 vs.
// 1.0000000000000002) produce different output. Grounded on the teacher's
// jsonNumber/equalValue use of math/big for numeric comparison.
func canonicalNumber(f float64) string {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		// f is NaN or ±Inf; Build rejects these before they reach a Node.
		return "0"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	return r.Num().String() + "/" + r.Denom().String()
}
