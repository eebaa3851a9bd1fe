package ljschema

import (
	"log/slog"

	"github.com/creachadair/mds/mapset"
)

// Output is the result of a validation: either {Valid: true} or
// {Valid: false, Errors: [...]}, matching §3.3/§6.1.
type Output struct {
	Valid  bool         `json:"valid"`
	Errors []OutputUnit `json:"errors,omitempty"`
}

// OutputUnit is one entry in a failure trace.
type OutputUnit struct {
	AbsoluteKeywordLocation string `json:"absoluteKeywordLocation"`
	InstanceLocation        string `json:"instanceLocation"`
	KeywordLocation         string `json:"keywordLocation,omitempty"`
	Error                   string `json:"error,omitempty"`
}

// handlerFunc is the signature of a keyword handler: given the keyword's
// value node, the instance node it applies to, and the enclosing schema
// object node (for handlers that must read sibling keywords), it reports
// whether the instance satisfies the keyword, any child OutputUnits
// produced while deciding that (discarded by the dispatcher unless the
// keyword itself fails), and a non-nil error for a schema/reference/
// unsupported-feature condition, which aborts validation entirely.
type handlerFunc func(st *state, value, instance, parent *Node) (ok bool, childErrs []OutputUnit, err error)

var keywordTable map[string]handlerFunc

func init() {
	keywordTable = map[string]handlerFunc{
		// Reference & structure.
		"$ref":                  refHandler,
		"$id":                   idHandler,
		"$anchor":               unsupportedFeature("$anchor"),
		"$dynamicAnchor":        unsupportedFeature("$dynamicAnchor"),
		"$dynamicRef":           unsupportedFeature("$dynamicRef"),
		"unevaluatedProperties": unsupportedFeature("unevaluatedProperties"),
		"unevaluatedItems":      unsupportedFeature("unevaluatedItems"),

		// Composition.
		"allOf": allOfHandler,
		"anyOf": anyOfHandler,
		"oneOf": oneOfHandler,
		"not":   notHandler,

		// Conditional. "if" has no entry: it is read back from the parent by
		// then/else.
		"then": thenHandler,
		"else": elseHandler,

		// Object members.
		"properties":           propertiesHandler,
		"patternProperties":    patternPropertiesHandler,
		"additionalProperties": additionalPropertiesHandler,
		"propertyNames":        propertyNamesHandler,
		"dependentSchemas":     dependentSchemasHandler,
		"dependentRequired":    dependentRequiredHandler,
		"required":             requiredHandler,
		"maxProperties":        maxPropertiesHandler,
		"minProperties":        minPropertiesHandler,

		// Array members.
		"prefixItems": prefixItemsHandler,
		"items":       itemsHandler,
		"contains":    containsHandler,
		"maxItems":    maxItemsHandler,
		"minItems":    minItemsHandler,
		"uniqueItems": uniqueItemsHandler,

		// Scalars & equality.
		"type":             typeHandler,
		"const":            constHandler,
		"enum":             enumHandler,
		"maximum":          maximumHandler,
		"minimum":          minimumHandler,
		"exclusiveMaximum": exclusiveMaximumHandler,
		"exclusiveMinimum": exclusiveMinimumHandler,
		"multipleOf":       multipleOfHandler,
		"maxLength":        maxLengthHandler,
		"minLength":        minLengthHandler,
		"pattern":          patternHandler,
	}
}

// state carries the per-validate-call configuration and mutable bookkeeping
// threaded through the recursion: the registry $ref resolves against, the
// depth bound, and the cycle guard. There is no other mutable state during
// a call (§4.6) besides the registry entry inserted/removed around it.
type state struct {
	registry *Registry
	logger   *slog.Logger
	maxDepth int

	depth   int
	visited mapset.Set[string] // "$ref"-cycle guard: live (schema-loc, instance-loc) pairs
}

func newState(registry *Registry, logger *slog.Logger, maxDepth int) *state {
	return &state{
		registry: registry,
		logger:   logger,
		maxDepth: maxDepth,
		visited:  mapset.New[string](),
	}
}

// applyNode is the validator recursion (§4.3/§4.4): it applies schema to
// instance and returns whether instance satisfies schema, the document-
// ordered trace of OutputUnits produced if it does not, and a non-nil
// error if the schema itself (or a $ref it contains) is malformed.
func (st *state) applyNode(schema, instance *Node) (bool, []OutputUnit, error) {
	st.depth++
	defer func() { st.depth-- }()
	if st.depth > st.maxDepth {
		return false, nil, &RecursionLimitError{Location: schema.Location, Limit: st.maxDepth}
	}

	switch schema.Kind {
	case KindBool:
		if schema.Bool {
			return true, nil, nil
		}
		return false, []OutputUnit{{AbsoluteKeywordLocation: schema.Location, InstanceLocation: instance.Location}}, nil

	case KindObject:
		ok := true
		var errs []OutputUnit
		for _, prop := range schema.Children {
			key, value := propKeyValue(prop)
			handler, recognized := keywordTable[key]
			if !recognized {
				continue // unknown keywords are silently ignored, §4.3
			}
			passed, childErrs, err := handler(st, value, instance, schema)
			if err != nil {
				return false, nil, err
			}
			if !passed {
				ok = false
				errs = append(errs, OutputUnit{AbsoluteKeywordLocation: value.Location, InstanceLocation: instance.Location})
				errs = append(errs, childErrs...)
			}
		}
		return ok, errs, nil

	default:
		return false, nil, &InvalidSchemaError{Location: schema.Location, Reason: "schema node must be a boolean or an object, got " + schema.Kind.String()}
	}
}

func unsupportedFeature(name string) handlerFunc {
	return func(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
		return false, nil, &UnsupportedFeatureError{Feature: name, Location: value.Location}
	}
}
