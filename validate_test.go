package ljschema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ljschema/ljschema"
	"github.com/ljschema/ljschema/internal/ljtest"
)

// The TestScenario* tests are modeled on the concrete scenarios of
// SPEC_FULL.md §8, with their own schemas and instances. Only
// TestScenarioAdditionalPropertiesFalseTrace and
// TestScenarioPatternPropertiesLocationEscaping inspect the OutputUnit
// trace; the others check the Valid outcome.

func TestScenarioRef(t *testing.T) {
	schema := ljtest.Obj(
		"$defs", ljtest.Obj("positiveInteger", ljtest.Obj(
			"type", "integer",
			"minimum", 1.0,
		)),
		"$ref", "#/$defs/positiveInteger",
	)
	out := ljtest.MustValidate(t, schema, -1.0)
	if out.Valid {
		t.Fatal("expected -1 to fail positiveInteger")
	}
	if len(out.Errors) == 0 {
		t.Fatal("expected at least one OutputUnit")
	}
}

func TestScenarioAdditionalPropertiesFalseTrace(t *testing.T) {
	schema := ljtest.Obj(
		"type", "object",
		"properties", ljtest.Obj("name", ljtest.Obj("type", "string")),
		"additionalProperties", false,
	)
	instance := ljtest.Obj("name", "ok", "extra", 1.0)
	out := ljtest.MustValidate(t, schema, instance)
	want := []ljschema.OutputUnit{
		{AbsoluteKeywordLocation: "#/additionalProperties", InstanceLocation: "#"},
		{AbsoluteKeywordLocation: "#/additionalProperties", InstanceLocation: "#/extra"},
	}
	if diff := cmp.Diff(want, out.Errors); diff != "" {
		t.Errorf("unexpected OutputUnit trace (-want +got):\n%s", diff)
	}
}

func TestScenarioAdditionalPropertiesFalse(t *testing.T) {
	schema := ljtest.Obj(
		"type", "object",
		"properties", ljtest.Obj("name", ljtest.Obj("type", "string")),
		"additionalProperties", false,
	)
	instance := ljtest.Obj("name", "ok", "extra1", 1.0, "extra2", 2.0)
	out := ljtest.MustValidate(t, schema, instance)
	if out.Valid {
		t.Fatal("expected rejected additional properties")
	}
}

func TestScenarioPropertiesAndRequired(t *testing.T) {
	schema := ljtest.Obj(
		"type", "object",
		"properties", ljtest.Obj(
			"name", ljtest.Obj("type", "string"),
			"age", ljtest.Obj("type", "integer", "minimum", 0.0),
		),
		"required", []any{"name"},
	)
	out := ljtest.MustValidate(t, schema, ljtest.Obj("age", 30.0))
	if out.Valid {
		t.Fatal("expected missing required 'name' to fail")
	}
	out = ljtest.MustValidate(t, schema, ljtest.Obj("name", "a", "age", 30.0))
	if !out.Valid {
		t.Fatalf("expected valid instance to pass, got errors %v", out.Errors)
	}
}

func TestScenarioPatternPropertiesLocationEscaping(t *testing.T) {
	schema := ljtest.Obj(
		"patternProperties", ljtest.Obj("^f", ljtest.Obj("type", "number")),
	)
	out := ljtest.MustValidate(t, schema, ljtest.Obj("foo", "not a number"))
	if out.Valid {
		t.Fatal("expected non-number value under patternProperties to fail")
	}
	found := false
	for _, u := range out.Errors {
		if u.AbsoluteKeywordLocation == "#/patternProperties/%5Ef/type" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected escaped location in trace, got %+v", out.Errors)
	}
}

func TestScenarioIfThenElse(t *testing.T) {
	schema := ljtest.Obj(
		"if", ljtest.Obj("properties", ljtest.Obj("kind", ljtest.Obj("const", "a"))),
		"then", ljtest.Obj("required", []any{"x"}),
		"else", ljtest.Obj("required", []any{"y"}),
	)
	out := ljtest.MustValidate(t, schema, ljtest.Obj("kind", "a", "x", 1.0))
	if !out.Valid {
		t.Fatalf("expected then-branch instance to pass, got %v", out.Errors)
	}
	out = ljtest.MustValidate(t, schema, ljtest.Obj("kind", "a"))
	if out.Valid {
		t.Fatal("expected then-branch instance missing x to fail")
	}
	out = ljtest.MustValidate(t, schema, ljtest.Obj("kind", "b", "y", 1.0))
	if !out.Valid {
		t.Fatalf("expected else-branch instance to pass, got %v", out.Errors)
	}
}

func TestScenarioNestedProperties(t *testing.T) {
	schema := ljtest.Obj(
		"type", "object",
		"properties", ljtest.Obj(
			"address", ljtest.Obj(
				"type", "object",
				"properties", ljtest.Obj(
					"zip", ljtest.Obj("type", "string", "pattern", "^[0-9]{5}$"),
				),
			),
		),
	)
	out := ljtest.MustValidate(t, schema, ljtest.Obj("address", ljtest.Obj("zip", "abc")))
	if out.Valid {
		t.Fatal("expected malformed nested zip to fail")
	}
}

func TestDraftKeywordAcceptedAndRejected(t *testing.T) {
	schema := ljtest.Obj(
		"$schema", "https://json-schema.org/draft/2020-12/schema",
		"type", "string",
	)
	out := ljtest.MustValidate(t, schema, "ok")
	if !out.Valid {
		t.Fatalf("expected accepted dialect to validate, got %v", out.Errors)
	}

	v := ljschema.NewValidator(ljschema.WithRegistry(ljschema.NewRegistry()))
	_, err := v.Validate(ljtest.Obj("$schema", "https://example.com/other"), "x")
	if _, ok := err.(*ljschema.UnsupportedDialectError); !ok {
		t.Errorf("got %T, %v, want *UnsupportedDialectError", err, err)
	}
}

func TestUnsupportedFeatures(t *testing.T) {
	for _, kw := range []string{"$anchor", "$dynamicAnchor", "$dynamicRef", "unevaluatedProperties", "unevaluatedItems"} {
		v := ljschema.NewValidator(ljschema.WithRegistry(ljschema.NewRegistry()))
		_, err := v.Validate(ljtest.Obj(kw, true), "x")
		var featErr *ljschema.UnsupportedFeatureError
		if !errors.As(err, &featErr) {
			t.Errorf("keyword %q: got %T, want *UnsupportedFeatureError", kw, err)
		}
	}
}

func TestEmbeddedIDRejected(t *testing.T) {
	v := ljschema.NewValidator(ljschema.WithRegistry(ljschema.NewRegistry()))
	schema := ljtest.Obj(
		"properties", ljtest.Obj("a", ljtest.Obj("$id", "https://example.com/a")),
	)
	_, err := v.Validate(schema, ljtest.Obj("a", 1.0))
	var featErr *ljschema.UnsupportedFeatureError
	if !errors.As(err, &featErr) {
		t.Errorf("got %T, want *UnsupportedFeatureError", err)
	}
}

func TestBooleanSchemas(t *testing.T) {
	out := ljtest.MustValidate(t, true, "anything")
	if !out.Valid {
		t.Error("schema 'true' should accept anything")
	}
	out = ljtest.MustValidate(t, false, "anything")
	if out.Valid {
		t.Error("schema 'false' should reject everything")
	}
}

func TestRecursiveRefConsumingInstance(t *testing.T) {
	schema := ljtest.Obj(
		"$defs", ljtest.Obj("node", ljtest.Obj(
			"type", "object",
			"properties", ljtest.Obj("next", ljtest.Obj("$ref", "#/$defs/node")),
		)),
		"$ref", "#/$defs/node",
	)
	out := ljtest.MustValidate(t, schema, ljtest.Obj("next", ljtest.Obj()))
	if !out.Valid {
		t.Fatalf("expected acyclic-but-repeated $ref use to pass, got %v", out.Errors)
	}
}
