// Package ljutil collects small helpers shared across ljschema's
// production code, mirroring the teacher's own internal/mcp/internal/util
// package.
package ljutil

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Wrapf wraps *errp with a formatted prefix if *errp is non-nil, leaving
// it untouched otherwise. Grounded on the teacher's own Wrapf, used
// throughout validate.go as `defer wrapf(&err, "validating %s", schema)`.
func Wrapf(errp *error, format string, args ...any) {
	if *errp == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	*errp = xerrors.Errorf("%s: %w", msg, *errp)
}
