package ljschema

import "fmt"

// InvalidJSONError indicates a Go value could not be represented as a
// Located JSON Tree: it is not one of null, bool, a finite number of a
// type Build accepts, a string, a []any, or an ordered Object.
type InvalidJSONError struct {
	Location string
	Reason   string
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("ljschema: invalid JSON value at %s: %s", e.Location, e.Reason)
}

// InvalidSchemaError indicates the schema document itself is malformed:
// a keyword's value has the wrong shape, or a regular expression inside
// the schema fails to compile.
type InvalidSchemaError struct {
	Location string
	Reason   string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("ljschema: invalid schema at %s: %s", e.Location, e.Reason)
}

// InvalidReferenceError indicates a "$ref" could not be resolved: its
// target URI is not registered, or the JSON Pointer fragment does not
// locate a node within the target.
type InvalidReferenceError struct {
	Ref      string
	Location string
	Reason   string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("ljschema: invalid reference %q at %s: %s", e.Ref, e.Location, e.Reason)
}

// UnsupportedDialectError indicates a "$schema" value other than the
// accepted draft 2020-12 meta-schema URI.
type UnsupportedDialectError struct {
	Dialect string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("ljschema: unsupported dialect %q", e.Dialect)
}

// UnsupportedFeatureError indicates the schema uses a feature this
// validator refuses to interpret by design: embedded "$id", "$anchor",
// "$dynamicAnchor", "$dynamicRef", "unevaluatedProperties", or
// "unevaluatedItems". See the package doc's Deviations section.
type UnsupportedFeatureError struct {
	Feature  string
	Location string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("ljschema: unsupported feature %q at %s", e.Feature, e.Location)
}

// RecursionLimitError indicates that schema recursion exceeded the
// configured depth bound (see WithMaxDepth). A "$ref" cycle that returns to
// the same instance location is cut off by the "$ref" cycle guard before it
// reaches this bound.
type RecursionLimitError struct {
	Location string
	Limit    int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("ljschema: recursion limit (%d) exceeded at %s", e.Limit, e.Location)
}
