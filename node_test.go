package ljschema

import "testing"

func TestBuildLocations(t *testing.T) {
	raw := Object{
		{Key: "a", Value: []any{1.0, "x"}},
		{Key: "b~c/d", Value: true},
	}
	n, err := Build(raw, "https://example.com/schema")
	if err != nil {
		t.Fatal(err)
	}
	if n.Location != "https://example.com/schema#" {
		t.Errorf("root location = %q", n.Location)
	}
	aVal, ok := n.ObjectGet("a")
	if !ok {
		t.Fatal("missing member a")
	}
	if aVal.Location != "https://example.com/schema#/a" {
		t.Errorf("a location = %q", aVal.Location)
	}
	if got := aVal.Children[1].Location; got != "https://example.com/schema#/a/1" {
		t.Errorf("a/1 location = %q", got)
	}
	bVal, ok := n.ObjectGet("b~c/d")
	if !ok {
		t.Fatal("missing member b~c/d")
	}
	if want := "https://example.com/schema#/b~0c~1d"; bVal.Location != want {
		t.Errorf("escaped location = %q, want %q", bVal.Location, want)
	}
}

func TestBuildRejectsUnsupportedShapes(t *testing.T) {
	_, err := Build(map[string]any{"a": 1}, "")
	if err == nil {
		t.Fatal("expected error building a plain Go map")
	}
	if _, ok := err.(*InvalidJSONError); !ok {
		t.Errorf("got %T, want *InvalidJSONError", err)
	}
}

func TestBuildRejectsNonFiniteNumbers(t *testing.T) {
	nan := 0.0
	nan = nan / nan
	_, err := Build(nan, "")
	if _, ok := err.(*InvalidJSONError); !ok {
		t.Errorf("got %T, want *InvalidJSONError for NaN", err)
	}
}

func TestIsInteger(t *testing.T) {
	n, err := Build(3.0, "")
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsInteger() {
		t.Error("3.0 should be an integer")
	}
	n, err = Build(3.5, "")
	if err != nil {
		t.Fatal(err)
	}
	if n.IsInteger() {
		t.Error("3.5 should not be an integer")
	}
}

func TestObjectOrderPreserved(t *testing.T) {
	raw := Object{{Key: "z", Value: 1.0}, {Key: "a", Value: 2.0}}
	n, err := Build(raw, "")
	if err != nil {
		t.Fatal(err)
	}
	got := n.ObjectKeys()
	want := []string{"z", "a"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ObjectKeys() = %v, want %v", got, want)
	}
}

func TestPointerStep(t *testing.T) {
	n, err := Build(Object{{Key: "xs", Value: []any{"a", "b"}}}, "")
	if err != nil {
		t.Fatal(err)
	}
	xs, ok := n.ObjectGet("xs")
	if !ok {
		t.Fatal("missing xs")
	}
	elem, ok := PointerStep(xs, "1")
	if !ok || elem.Text != "b" {
		t.Errorf("PointerStep(xs, 1) = %v, %v", elem, ok)
	}
	if _, ok := PointerStep(xs, "2"); ok {
		t.Error("expected out-of-range step to fail")
	}
	if _, ok := PointerStep(n, "nope"); ok {
		t.Error("expected missing member step to fail")
	}
}
