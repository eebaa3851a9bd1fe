package ljschema

import (
	"net/url"
	"strconv"
	"strings"
)

// refHandler implements "$ref" (§4.5). If the schema's own base URI is
// empty (an anonymously-registered schema, whose locations all start with
// "#"), a fragment-only ref resolves within "", and an absolute ref
// resolves to its own base; otherwise the ref is resolved against the
// schema's base URI. The target is looked up in the registry and
// dereferenced by JSON Pointer, then the current instance recurses into
// it. A live (target, instance) pair already being evaluated — a $ref
// cycle that has not consumed any instance — is treated as vacuously
// valid rather than looping forever (§9).
func refHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindString); err != nil {
		return false, nil, err
	}
	refStr := value.Text
	schemaBase, _ := splitFragment(value.Location)

	var targetBase, pointer string
	switch {
	case schemaBase == "" && strings.HasPrefix(refStr, "#"):
		targetBase, pointer = "", refStr[1:]
	case schemaBase == "":
		abs, err := resolveIRI(refStr, "")
		if err != nil {
			return false, nil, &InvalidSchemaError{Location: value.Location, Reason: "malformed $ref: " + err.Error()}
		}
		targetBase, pointer = splitFragment(abs)
	default:
		abs, err := resolveIRI(refStr, schemaBase)
		if err != nil {
			return false, nil, &InvalidSchemaError{Location: value.Location, Reason: "malformed $ref: " + err.Error()}
		}
		targetBase, pointer = splitFragment(abs)
	}
	decoded, err := url.PathUnescape(pointer)
	if err != nil {
		return false, nil, &InvalidReferenceError{Ref: refStr, Location: value.Location, Reason: "malformed fragment: " + err.Error()}
	}
	pointer = decoded

	targetRoot, found := st.registry.Lookup(targetBase)
	if !found {
		return false, nil, &InvalidReferenceError{Ref: refStr, Location: value.Location, Reason: "no schema registered under base URI " + strconv.Quote(targetBase)}
	}
	targetNode, err := PointerGet(targetRoot, pointer)
	if err != nil {
		return false, nil, &InvalidReferenceError{Ref: refStr, Location: value.Location, Reason: err.Error()}
	}

	cycleKey := targetNode.Location + "\x00" + instance.Location
	if st.visited.Has(cycleKey) {
		if st.logger != nil {
			st.logger.Warn("ljschema: $ref cycle cut off", "ref", refStr, "location", value.Location, "instance", instance.Location)
		}
		return true, nil, nil
	}
	st.visited.Add(cycleKey)
	defer st.visited.Remove(cycleKey)

	return st.applyNode(targetNode, instance)
}

// idHandler implements "$id": legal only at the document root. Anywhere
// else it is an embedded $id, rejected per the Non-goals.
func idHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindString); err != nil {
		return false, nil, err
	}
	_, frag := splitFragment(value.Location)
	if frag != "/$id" {
		return false, nil, &UnsupportedFeatureError{Feature: "embedded $id", Location: value.Location}
	}
	return true, nil, nil
}
