package ljschema

// allOfHandler implements "allOf": every member must pass; errors from all
// failing members are retained (§4.5).
func allOfHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindArray); err != nil {
		return false, nil, err
	}
	ok := true
	var errs []OutputUnit
	for _, member := range value.Children {
		passed, childErrs, err := st.applyNode(member, instance)
		if err != nil {
			return false, nil, err
		}
		if !passed {
			ok = false
		}
		errs = append(errs, childErrs...)
	}
	return ok, errs, nil
}

// anyOfHandler implements "anyOf": passes if any member passes. The error
// buffer accumulates from every attempt; the dispatcher only surfaces it
// when anyOf itself fails, so a passing anyOf never leaks these (§9 open
// question: implementers should not rely on error absence when anyOf
// passes — this implementation simply never surfaces them in that case).
func anyOfHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindArray); err != nil {
		return false, nil, err
	}
	ok := false
	var errs []OutputUnit
	for _, member := range value.Children {
		passed, childErrs, err := st.applyNode(member, instance)
		if err != nil {
			return false, nil, err
		}
		if passed {
			ok = true
		}
		errs = append(errs, childErrs...)
	}
	return ok, errs, nil
}

// oneOfHandler implements "oneOf": exactly one member must pass.
func oneOfHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindArray); err != nil {
		return false, nil, err
	}
	count := 0
	var errs []OutputUnit
	for _, member := range value.Children {
		passed, childErrs, err := st.applyNode(member, instance)
		if err != nil {
			return false, nil, err
		}
		if passed {
			count++
		}
		errs = append(errs, childErrs...)
	}
	return count == 1, errs, nil
}

// notHandler implements "not": recurses with a throwaway buffer and
// produces no child errors of its own (§4.4: decision-only sub-validations
// must not leak sub-errors into the parent buffer).
func notHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	passed, _, err := st.applyNode(value, instance)
	if err != nil {
		return false, nil, err
	}
	return !passed, nil, nil
}

// thenHandler implements "then": if the sibling "if" is present and passes
// (decided with a throwaway buffer), recurse into "then"; otherwise "then"
// vacuously passes.
func thenHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	ifSchema, hasIf := parent.ObjectGet("if")
	if !hasIf {
		return true, nil, nil
	}
	ifPassed, _, err := st.applyNode(ifSchema, instance)
	if err != nil {
		return false, nil, err
	}
	if !ifPassed {
		return true, nil, nil
	}
	return st.applyNode(value, instance)
}

// elseHandler implements "else": if the sibling "if" is present and fails
// (throwaway buffer), recurse into "else"; otherwise "else" vacuously
// passes.
func elseHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	ifSchema, hasIf := parent.ObjectGet("if")
	if !hasIf {
		return true, nil, nil
	}
	ifPassed, _, err := st.applyNode(ifSchema, instance)
	if err != nil {
		return false, nil, err
	}
	if ifPassed {
		return true, nil, nil
	}
	return st.applyNode(value, instance)
}
