package ljschema_test

import (
	"testing"

	"github.com/ljschema/ljschema/internal/ljtest"
)

func TestTypeKeyword(t *testing.T) {
	schema := ljtest.Obj("type", []any{"string", "null"})
	if !ljtest.MustValidate(t, schema, "x").Valid {
		t.Error("string should match [string, null]")
	}
	if !ljtest.MustValidate(t, schema, nil).Valid {
		t.Error("null should match [string, null]")
	}
	if ljtest.MustValidate(t, schema, 1.0).Valid {
		t.Error("number should not match [string, null]")
	}
}

func TestIntegerType(t *testing.T) {
	schema := ljtest.Obj("type", "integer")
	if !ljtest.MustValidate(t, schema, 3.0).Valid {
		t.Error("3.0 should satisfy integer")
	}
	if ljtest.MustValidate(t, schema, 3.5).Valid {
		t.Error("3.5 should not satisfy integer")
	}
}

func TestConstAndEnum(t *testing.T) {
	schema := ljtest.Obj("const", "red")
	if !ljtest.MustValidate(t, schema, "red").Valid {
		t.Error("expected const match")
	}
	if ljtest.MustValidate(t, schema, "blue").Valid {
		t.Error("expected const mismatch")
	}

	enumSchema := ljtest.Obj("enum", []any{"red", "green", "blue"})
	if !ljtest.MustValidate(t, enumSchema, "green").Valid {
		t.Error("expected enum match")
	}
	if ljtest.MustValidate(t, enumSchema, "purple").Valid {
		t.Error("expected enum mismatch")
	}
}

func TestNumericBounds(t *testing.T) {
	schema := ljtest.Obj("minimum", 0.0, "maximum", 10.0, "exclusiveMinimum", -1.0, "exclusiveMaximum", 11.0)
	if !ljtest.MustValidate(t, schema, 5.0).Valid {
		t.Error("5 should be within bounds")
	}
	if ljtest.MustValidate(t, schema, 11.0).Valid {
		t.Error("11 should violate maximum")
	}
	if ljtest.MustValidate(t, schema, -1.0).Valid {
		t.Error("-1 should violate exclusiveMinimum boundary via minimum too")
	}
}

func TestMultipleOfTolerance(t *testing.T) {
	schema := ljtest.Obj("multipleOf", 0.1)
	if !ljtest.MustValidate(t, schema, 0.3).Valid {
		t.Error("0.3 should be a tolerated multiple of 0.1 despite float rounding")
	}
	schema2 := ljtest.Obj("multipleOf", 2.0)
	if ljtest.MustValidate(t, schema2, 3.0).Valid {
		t.Error("3 should not be a multiple of 2")
	}
}

func TestLengthAndPattern(t *testing.T) {
	schema := ljtest.Obj("minLength", 2.0, "maxLength", 4.0, "pattern", "^[a-z]+$")
	if !ljtest.MustValidate(t, schema, "abc").Valid {
		t.Error("'abc' should satisfy length and pattern")
	}
	if ljtest.MustValidate(t, schema, "a").Valid {
		t.Error("'a' should violate minLength")
	}
	if ljtest.MustValidate(t, schema, "abcde").Valid {
		t.Error("'abcde' should violate maxLength")
	}
	if ljtest.MustValidate(t, schema, "ABC").Valid {
		t.Error("'ABC' should violate pattern")
	}
}

func TestLengthCountsRunesNotBytes(t *testing.T) {
	schema := ljtest.Obj("maxLength", 1.0)
	if !ljtest.MustValidate(t, schema, "é").Valid {
		t.Error("a single accented rune should satisfy maxLength 1")
	}
}
