package ljschema

import (
	"net/url"
	"strings"
)

// resolveIRI resolves ref against base, in the sense of
// [url.URL.ResolveReference], mirroring the teacher's resolve.go. An empty
// base is treated as the "no base" case: ref is parsed and returned as-is.
func resolveIRI(ref, base string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if base == "" {
		return refURL.String(), nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// toAbsoluteIRI normalizes s via URL parsing and re-serialization. It does
// not itself enforce that s is absolute; callers check for a scheme when
// that distinction matters.
func toAbsoluteIRI(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// splitFragment divides a URI into its base (before '#') and fragment
// (after '#', not including it). A URI with no '#' has an empty fragment.
func splitFragment(s string) (base, fragment string) {
	i := strings.IndexByte(s, '#')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// isAbsoluteIRI reports whether s has a URI scheme.
func isAbsoluteIRI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}
