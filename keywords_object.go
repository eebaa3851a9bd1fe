package ljschema

import "regexp"

// propertiesHandler implements "properties": for every instance member
// whose key exists in the properties schema, recurse the member's value
// into that sub-schema, iterating the properties schema's own keys in
// document order.
func propertiesHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindObject); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	ok := true
	var errs []OutputUnit
	for _, prop := range value.Children {
		name, sub := propKeyValue(prop)
		member, present := instance.ObjectGet(name)
		if !present {
			continue
		}
		passed, childErrs, err := st.applyNode(sub, member)
		if err != nil {
			return false, nil, err
		}
		if !passed {
			ok = false
			errs = append(errs, childErrs...)
		}
	}
	return ok, errs, nil
}

// patternPropertiesHandler implements "patternProperties": for every
// pattern/sub-schema pair and every instance member whose name matches
// that pattern, recurse the member's value into the sub-schema.
func patternPropertiesHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindObject); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	ok := true
	var errs []OutputUnit
	for _, prop := range value.Children {
		pattern, sub := propKeyValue(prop)
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, nil, &InvalidSchemaError{Location: sub.Location, Reason: "patternProperties key does not compile as a regexp: " + err.Error()}
		}
		for _, member := range instance.Children {
			name, memberVal := propKeyValue(member)
			if !re.MatchString(name) {
				continue
			}
			passed, childErrs, err := st.applyNode(sub, memberVal)
			if err != nil {
				return false, nil, err
			}
			if !passed {
				ok = false
				errs = append(errs, childErrs...)
			}
		}
	}
	return ok, errs, nil
}

// additionalPropertiesHandler implements "additionalProperties": for every
// instance member whose name is not covered by sibling "properties" (exact
// match) or sibling "patternProperties" (regex match), recurse its value
// into additionalProperties.
func additionalPropertiesHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	exact := map[string]bool{}
	if props, present := parent.ObjectGet("properties"); present {
		if err := AssertType(props, KindObject); err != nil {
			return false, nil, err
		}
		for _, k := range props.ObjectKeys() {
			exact[k] = true
		}
	}
	var patterns []*regexp.Regexp
	if pp, present := parent.ObjectGet("patternProperties"); present {
		if err := AssertType(pp, KindObject); err != nil {
			return false, nil, err
		}
		for _, prop := range pp.Children {
			pattern, sub := propKeyValue(prop)
			re, err := regexp.Compile(pattern)
			if err != nil {
				return false, nil, &InvalidSchemaError{Location: sub.Location, Reason: "patternProperties key does not compile as a regexp: " + err.Error()}
			}
			patterns = append(patterns, re)
		}
	}

	ok := true
	var errs []OutputUnit
	for _, member := range instance.Children {
		name, memberVal := propKeyValue(member)
		if exact[name] {
			continue
		}
		matched := false
		for _, re := range patterns {
			if re.MatchString(name) {
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		passed, childErrs, err := st.applyNode(value, memberVal)
		if err != nil {
			return false, nil, err
		}
		if !passed {
			ok = false
			errs = append(errs, childErrs...)
		}
	}
	return ok, errs, nil
}

// propertyNamesHandler implements "propertyNames": for every instance
// member, synthesizes a string node carrying the key and recurses it into
// propertyNames.
func propertyNamesHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	ok := true
	var errs []OutputUnit
	for _, member := range instance.Children {
		name, _ := propKeyValue(member)
		keyNode := &Node{Kind: KindString, Location: member.Location, Text: name}
		passed, childErrs, err := st.applyNode(value, keyNode)
		if err != nil {
			return false, nil, err
		}
		if !passed {
			ok = false
			errs = append(errs, childErrs...)
		}
	}
	return ok, errs, nil
}

// dependentSchemasHandler implements "dependentSchemas": for every key of
// this keyword that is also present in the instance, recurse the instance
// into the associated sub-schema.
func dependentSchemasHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindObject); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	ok := true
	var errs []OutputUnit
	for _, prop := range value.Children {
		name, sub := propKeyValue(prop)
		if !instance.ObjectHas(name) {
			continue
		}
		passed, childErrs, err := st.applyNode(sub, instance)
		if err != nil {
			return false, nil, err
		}
		if !passed {
			ok = false
			errs = append(errs, childErrs...)
		}
	}
	return ok, errs, nil
}

// dependentRequiredHandler implements "dependentRequired": for every key
// present in the instance, every listed required key must also be
// present. Reports a single keyword-level failure with no children (§9
// open question, resolved in favor of the single-failure behavior).
func dependentRequiredHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindObject); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	for _, prop := range value.Children {
		trigger, required := propKeyValue(prop)
		if !instance.ObjectHas(trigger) {
			continue
		}
		if err := AssertType(required, KindArray); err != nil {
			return false, nil, err
		}
		for _, req := range required.Children {
			if err := AssertType(req, KindString); err != nil {
				return false, nil, err
			}
			if !instance.ObjectHas(req.Text) {
				return false, nil, nil
			}
		}
	}
	return true, nil, nil
}

// requiredHandler implements "required": every listed key must be present.
func requiredHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindArray); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	for _, req := range value.Children {
		if err := AssertType(req, KindString); err != nil {
			return false, nil, err
		}
		if !instance.ObjectHas(req.Text) {
			return false, nil, nil
		}
	}
	return true, nil, nil
}

func maxPropertiesHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	return len(instance.Children) <= int(value.Number), nil, nil
}

func minPropertiesHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindObject {
		return true, nil, nil
	}
	return len(instance.Children) >= int(value.Number), nil, nil
}
