package ljschema

import (
	"log/slog"

	"github.com/ljschema/ljschema/internal/ljutil"
)

// draft202012 is the sole accepted "$schema" value (§6.4).
const draft202012 = "https://json-schema.org/draft/2020-12/schema"

// Validator validates instances against schemas using a configurable
// registry, logger, and recursion depth bound. The zero value is not
// usable; construct one with [NewValidator].
type Validator struct {
	registry *Registry
	logger   *slog.Logger
	maxDepth int
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry supplies an explicit registry instead of the process-wide
// DefaultRegistry, eliminating the race §5 describes for concurrent
// callers that auto-register under the same URI (the "conservative
// implementation" the spec's Design Notes invite).
func WithRegistry(r *Registry) Option {
	return func(v *Validator) { v.registry = r }
}

// WithMaxDepth bounds schema recursion depth (default 1000), a backstop
// against runaway recursion (§9) alongside the "$ref" cycle guard, which
// already cuts off a cyclic "$ref" that never consumes its instance.
func WithMaxDepth(n int) Option {
	return func(v *Validator) { v.maxDepth = n }
}

// WithLogger sets the logger used to report registration and "$ref"-cycle
// events. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// NewValidator returns a Validator configured by opts, defaulting to
// [DefaultRegistry], a depth bound of 1000, and slog.Default().
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		registry: DefaultRegistry,
		logger:   slog.Default(),
		maxDepth: 1000,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate registers schema (under its own top-level "$id" if present, or
// the anonymous URI "" otherwise), validates instance against it,
// unregisters it, and returns the result (§3.2, §6.1).
//
// Validate uses the process-wide [DefaultRegistry]. Concurrent callers
// that validate different schemas under the same URI (most commonly "")
// race; build a [Validator] with [WithRegistry] for concurrent use.
func Validate(schema, instance any) (Output, error) {
	return defaultValidator.Validate(schema, instance)
}

// Validate is the [Validator] method behind the package-level [Validate]
// convenience function.
func (v *Validator) Validate(schema, instance any) (Output, error) {
	uri := schemaURI(schema)

	root, err := v.registry.Register(schema, uri)
	if err != nil {
		ljutil.Wrapf(&err, "registering schema %q", uri)
		return Output{}, err
	}
	if v.logger != nil {
		v.logger.Debug("ljschema: registered schema", "uri", uri)
	}
	defer func() {
		v.registry.Unregister(uri)
		if v.logger != nil {
			v.logger.Debug("ljschema: unregistered schema", "uri", uri)
		}
	}()

	if root.Kind == KindObject {
		if dialect, present := root.ObjectGet("$schema"); present {
			if err := AssertType(dialect, KindString); err != nil {
				return Output{}, err
			}
			if dialect.Text != draft202012 {
				return Output{}, &UnsupportedDialectError{Dialect: dialect.Text}
			}
		}
	}

	// The instance is never itself registered; its location is always
	// rooted at the anonymous base, independent of where the schema lives.
	instNode, err := Build(instance, "")
	if err != nil {
		return Output{}, err
	}

	st := newState(v.registry, v.logger, v.maxDepth)
	passed, errs, err := st.applyNode(root, instNode)
	if err != nil {
		ljutil.Wrapf(&err, "validating against schema %q", uri)
		return Output{}, err
	}
	if passed {
		return Output{Valid: true}, nil
	}
	return Output{Valid: false, Errors: errs}, nil
}

// schemaURI returns the "$id" of schema if it is an Object carrying a
// string "$id" member, or "" otherwise (§3.2).
func schemaURI(schema any) string {
	obj, ok := schema.(Object)
	if !ok {
		return ""
	}
	idVal, present := obj.Get("$id")
	if !present {
		return ""
	}
	id, ok := idVal.(string)
	if !ok {
		return ""
	}
	return id
}
