// Package ljtest holds small helpers shared by ljschema's test files, in
// the teacher's mustUnmarshal/mustMarshal idiom.
package ljtest

import (
	"testing"

	"github.com/ljschema/ljschema"
)

// MustBuild builds raw into a Located JSON Tree rooted at baseURI, failing
// the test on error.
func MustBuild(t *testing.T, raw any, baseURI string) *ljschema.Node {
	t.Helper()
	n, err := ljschema.Build(raw, baseURI)
	if err != nil {
		t.Fatalf("Build(%v, %q): %v", raw, baseURI, err)
	}
	return n
}

// MustValidate validates instance against schema with a fresh, isolated
// registry (so parallel tests never race over DefaultRegistry), failing the
// test on a schema/reference/recursion error.
func MustValidate(t *testing.T, schema, instance any) ljschema.Output {
	t.Helper()
	v := ljschema.NewValidator(ljschema.WithRegistry(ljschema.NewRegistry()))
	out, err := v.Validate(schema, instance)
	if err != nil {
		t.Fatalf("Validate(%v, %v): %v", schema, instance, err)
	}
	return out
}

// Obj builds an ljschema.Object from alternating key/value arguments, for
// compact literal test schemas and instances.
func Obj(kv ...any) ljschema.Object {
	if len(kv)%2 != 0 {
		panic("ljtest.Obj: odd number of arguments")
	}
	obj := make(ljschema.Object, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		obj = append(obj, ljschema.Member{Key: kv[i].(string), Value: kv[i+1]})
	}
	return obj
}
