package ljschema_test

import (
	"testing"

	"github.com/ljschema/ljschema/internal/ljtest"
)

func TestAllOf(t *testing.T) {
	schema := ljtest.Obj("allOf", []any{
		ljtest.Obj("type", "number"),
		ljtest.Obj("minimum", 0.0),
	})
	if !ljtest.MustValidate(t, schema, 5.0).Valid {
		t.Error("expected 5 to satisfy both allOf members")
	}
	if ljtest.MustValidate(t, schema, -5.0).Valid {
		t.Error("expected -5 to violate the minimum member")
	}
}

func TestAnyOf(t *testing.T) {
	schema := ljtest.Obj("anyOf", []any{
		ljtest.Obj("type", "string"),
		ljtest.Obj("type", "number"),
	})
	if !ljtest.MustValidate(t, schema, "x").Valid {
		t.Error("expected string to satisfy anyOf")
	}
	if !ljtest.MustValidate(t, schema, 1.0).Valid {
		t.Error("expected number to satisfy anyOf")
	}
	if ljtest.MustValidate(t, schema, true).Valid {
		t.Error("expected boolean to fail anyOf")
	}
}

func TestOneOf(t *testing.T) {
	schema := ljtest.Obj("oneOf", []any{
		ljtest.Obj("multipleOf", 2.0),
		ljtest.Obj("multipleOf", 3.0),
	})
	if !ljtest.MustValidate(t, schema, 2.0).Valid {
		t.Error("2 should satisfy exactly one branch")
	}
	if ljtest.MustValidate(t, schema, 6.0).Valid {
		t.Error("6 satisfies both branches, violating oneOf")
	}
	if ljtest.MustValidate(t, schema, 5.0).Valid {
		t.Error("5 satisfies neither branch")
	}
}

func TestNot(t *testing.T) {
	schema := ljtest.Obj("not", ljtest.Obj("type", "string"))
	if !ljtest.MustValidate(t, schema, 1.0).Valid {
		t.Error("expected number to satisfy not(string)")
	}
	if ljtest.MustValidate(t, schema, "x").Valid {
		t.Error("expected string to fail not(string)")
	}
}
