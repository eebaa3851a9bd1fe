package ljschema

import "github.com/creachadair/mds/mapset"

// prefixItemsHandler implements "prefixItems": for each index less than
// both the prefix length and the instance length, recurse instance[i]
// into prefix[i].
func prefixItemsHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindArray); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindArray {
		return true, nil, nil
	}
	ok := true
	var errs []OutputUnit
	n := len(value.Children)
	if len(instance.Children) < n {
		n = len(instance.Children)
	}
	for i := 0; i < n; i++ {
		passed, childErrs, err := st.applyNode(value.Children[i], instance.Children[i])
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

// itemsHandler implements "items": for every instance element at index at
// or beyond the length of sibling prefixItems (0 if absent), recurse into
// items.
func itemsHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if instance.Kind != KindArray {
		return true, nil, nil
	}
	start := 0
	if prefix, present := parent.ObjectGet("prefixItems"); present {
		if err := AssertType(prefix, KindArray); err != nil {
			return false, nil, err
		}
		start = len(prefix.Children)
	}
	ok := true
	var errs []OutputUnit
	for i := start; i < len(instance.Children); i++ {
		passed, childErrs, err := st.applyNode(value, instance.Children[i])
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

// containsHandler implements "contains": counts passing elements (with an
// error buffer that accumulates across every element, surfaced only if
// contains itself fails) and reads sibling minContains (default 1) /
// maxContains (default unbounded) from the parent.
func containsHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if instance.Kind != KindArray {
		return true, nil, nil
	}
	min := 1
	if mn, present := parent.ObjectGet("minContains"); present {
		if err := AssertType(mn, KindNumber); err != nil {
			return false, nil, err
		}
		min = int(mn.Number)
	}
	max := -1 // unbounded
	if mx, present := parent.ObjectGet("maxContains"); present {
		if err := AssertType(mx, KindNumber); err != nil {
			return false, nil, err
		}
		max = int(mx.Number)
	}

	count := 0
	var errs []OutputUnit
	for _, elem := range instance.Children {
		passed, childErrs, err := st.applyNode(value, elem)
		if err != nil {
			return false, nil, err
		}
		if passed {
			count++
		}
		errs = append(errs, childErrs...)
	}
	ok := count >= min && (max < 0 || count <= max)
	return ok, errs, nil
}

func maxItemsHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindArray {
		return true, nil, nil
	}
	return len(instance.Children) <= int(value.Number), nil, nil
}

func minItemsHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindArray {
		return true, nil, nil
	}
	return len(instance.Children) >= int(value.Number), nil, nil
}

// uniqueItemsHandler implements "uniqueItems": a false value always
// passes; a true value requires every element to be canonically distinct.
// Grounded on the teacher's lack of such a check and this spec's own
// explicit canonicalize-based definition, using a set of canonical forms
// rather than an O(n^2) pairwise comparison.
func uniqueItemsHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindBool); err != nil {
		return false, nil, err
	}
	if !value.Bool || instance.Kind != KindArray {
		return true, nil, nil
	}
	seen := mapset.New[string]()
	for _, elem := range instance.Children {
		c := Canonicalize(elem)
		if seen.Has(c) {
			return false, nil, nil
		}
		seen.Add(c)
	}
	return true, nil, nil
}
