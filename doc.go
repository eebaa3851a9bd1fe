// Package ljschema validates JSON instances against JSON Schema draft
// 2020-12 documents.
//
// The core type is the Located JSON Tree (an LJT): every JSON value, once
// built, carries a location string of the form "<base-uri>#<json-pointer>"
// identifying where it sits in its source document. Validation recurses a
// schema LJT against an instance LJT, producing an Output that either
// reports success or a document-ordered trace of every schema location
// that rejected every instance location it touched.
//
// Basic usage:
//
//	schema := ljschema.Object{{Key: "type", Value: "string"}}
//	out, err := ljschema.Validate(schema, "hello")
//	if err != nil {
//		// the schema itself is malformed, or the instance isn't valid JSON
//	}
//	if !out.Valid {
//		for _, u := range out.Errors {
//			fmt.Println(u.AbsoluteKeywordLocation, u.InstanceLocation)
//		}
//	}
//
// # Deviations from the specification
//
// This validator deliberately does not implement full draft 2020-12
// conformance. The following are rejected with [UnsupportedFeatureError]
// rather than silently ignored or mishandled:
//
//   - Embedded "$id" (anywhere but the document root).
//   - "$anchor", "$dynamicAnchor", "$dynamicRef".
//   - "unevaluatedProperties", "unevaluatedItems".
//
// Any "$schema" value other than the 2020-12 meta-schema URI is rejected
// with [UnsupportedDialectError]. "pattern" and "patternProperties" use Go's
// RE2-based regexp package, which is not a drop-in replacement for the
// ECMA 262 regex dialect JSON Schema nominally specifies: lookaround and
// backreferences are not supported.
package ljschema
