package ljschema

import (
	"net/url"
	"strconv"
	"strings"
)

// appendSegment extends a location (or a bare JSON Pointer) with one more
// segment: seg is escaped per RFC 6901 ("~" -> "~0", "/" -> "~1") and then
// percent-encoded for URI-fragment safety, matching the teacher's own
// escaping order in json_pointer.go.
func appendSegment(location, seg string) string {
	return location + "/" + percentEncodeFragment(escapeRFC6901(seg))
}

func escapeRFC6901(seg string) string {
	if !strings.ContainsAny(seg, "~/") {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg) + 2)
	for _, r := range seg {
		switch r {
		case '~':
			b.WriteString("~0")
		case '/':
			b.WriteString("~1")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescapeRFC6901(seg string) string {
	if !strings.Contains(seg, "~") {
		return seg
	}
	seg = strings.ReplaceAll(seg, "~1", "/")
	seg = strings.ReplaceAll(seg, "~0", "~")
	return seg
}

// percentEncodeFragment escapes s for safe inclusion in a URI fragment,
// using the same escaping rules net/url applies to URL.Fragment.
func percentEncodeFragment(s string) string {
	u := url.URL{Fragment: s}
	return u.EscapedFragment()
}

// parseJSONPointer splits a JSON Pointer (e.g. "/$defs/string") into its
// unescaped segments. The empty pointer "" yields no segments. Percent-
// decoding is the caller's responsibility (performed when a fragment is
// taken off a URI); this only undoes RFC 6901's "~0"/"~1" escaping.
func parseJSONPointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, &InvalidReferenceError{Reason: "JSON Pointer must be empty or start with '/'"}
	}
	raw := strings.Split(pointer[1:], "/")
	segs := make([]string, len(raw))
	for i, s := range raw {
		segs[i] = unescapeRFC6901(s)
	}
	return segs, nil
}

// PointerGet walks a JSON Pointer from root, returning the node at the end
// of the walk. It fails with *InvalidReferenceError on any step that does
// not locate a member or in-range index.
func PointerGet(root *Node, pointer string) (*Node, error) {
	segs, err := parseJSONPointer(pointer)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, seg := range segs {
		next, ok := PointerStep(cur, seg)
		if !ok {
			return nil, &InvalidReferenceError{
				Location: cur.Location,
				Reason:   "no such member or index: " + strconv.Quote(seg),
			}
		}
		cur = next
	}
	return cur, nil
}
