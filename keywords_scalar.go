package ljschema

import (
	"math"
	"regexp"
	"unicode/utf8"
)

// typeHandler implements "type": the instance must match at least one
// named type; "integer" is satisfied by a number with no fractional part.
func typeHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	names, err := typeNames(value)
	if err != nil {
		return false, nil, err
	}
	for _, t := range names {
		if instanceMatchesType(instance, t) {
			return true, nil, nil
		}
	}
	return false, nil, nil
}

func typeNames(value *Node) ([]string, error) {
	switch value.Kind {
	case KindString:
		return []string{value.Text}, nil
	case KindArray:
		names := make([]string, len(value.Children))
		for i, c := range value.Children {
			if err := AssertType(c, KindString); err != nil {
				return nil, err
			}
			names[i] = c.Text
		}
		return names, nil
	default:
		return nil, &InvalidSchemaError{Location: value.Location, Reason: "type must be a string or an array of strings"}
	}
}

func instanceMatchesType(instance *Node, t string) bool {
	switch t {
	case "null":
		return instance.Kind == KindNull
	case "boolean":
		return instance.Kind == KindBool
	case "object":
		return instance.Kind == KindObject
	case "array":
		return instance.Kind == KindArray
	case "string":
		return instance.Kind == KindString
	case "number":
		return instance.Kind == KindNumber
	case "integer":
		return instance.IsInteger()
	default:
		return false
	}
}

// constHandler implements "const": deep equality via canonicalization.
func constHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	return Equal(instance, value), nil, nil
}

// enumHandler implements "enum": the instance must canonically equal some
// member of the array.
func enumHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindArray); err != nil {
		return false, nil, err
	}
	for _, member := range value.Children {
		if Equal(instance, member) {
			return true, nil, nil
		}
	}
	return false, nil, nil
}

func maximumHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindNumber {
		return true, nil, nil
	}
	return instance.Number <= value.Number, nil, nil
}

func minimumHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindNumber {
		return true, nil, nil
	}
	return instance.Number >= value.Number, nil, nil
}

func exclusiveMaximumHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindNumber {
		return true, nil, nil
	}
	return instance.Number < value.Number, nil, nil
}

func exclusiveMinimumHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindNumber {
		return true, nil, nil
	}
	return instance.Number > value.Number, nil, nil
}

// multipleOfEpsilon is the float32 epsilon the source specification uses
// to tolerate IEEE-754 rounding in the multipleOf check (§4.5, §9).
const multipleOfEpsilon = 1.19209290e-7

func multipleOfHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if value.Number == 0 {
		return false, nil, &InvalidSchemaError{Location: value.Location, Reason: "multipleOf must be nonzero"}
	}
	if instance.Kind != KindNumber {
		return true, nil, nil
	}
	quotient := instance.Number / value.Number
	_, frac := math.Modf(quotient)
	if frac < 0 {
		frac += 1
	}
	return frac < multipleOfEpsilon || frac > 1-multipleOfEpsilon, nil, nil
}

func maxLengthHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindString {
		return true, nil, nil
	}
	return utf8.RuneCountInString(instance.Text) <= int(value.Number), nil, nil
}

func minLengthHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindNumber); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindString {
		return true, nil, nil
	}
	return utf8.RuneCountInString(instance.Text) >= int(value.Number), nil, nil
}

func patternHandler(st *state, value, instance, parent *Node) (bool, []OutputUnit, error) {
	if err := AssertType(value, KindString); err != nil {
		return false, nil, err
	}
	if instance.Kind != KindString {
		return true, nil, nil
	}
	re, err := regexp.Compile(value.Text)
	if err != nil {
		return false, nil, &InvalidSchemaError{Location: value.Location, Reason: "pattern does not compile: " + err.Error()}
	}
	return re.MatchString(instance.Text), nil, nil
}
