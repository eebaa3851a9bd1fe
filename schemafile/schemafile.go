// Package schemafile loads JSON Schema documents and instances from text
// on disk into the JSON-shaped values ljschema's core operates on. It is
// explicitly not part of the core validator: the core never parses text
// (ljschema.Build takes already-decoded Go values), but a library this shape always ships an edge for callers who keep
// schemas in files, in the teacher's tradition of small example programs
// around a library core.
package schemafile

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/tailscale/hujson"

	"github.com/ljschema/ljschema"
)

var logger = slog.Default()

// SetLogger overrides the logger schemafile uses to report loaded files,
// at debug level.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Load reads a JSON document from r, tolerating "//" and "/* */" comments
// and trailing commas (for human-maintained schema files), and decodes it
// into the JSON-shaped value ljschema.Build accepts: objects become
// [ljschema.Object] in document order, arrays become []any, and numbers
// decode through json.Number and are then converted to float64, so
// integers beyond 2^53 lose precision.
func Load(r io.Reader) (any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("schemafile: reading: %w", err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("schemafile: standardizing: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()
	v, err := decodeOrdered(dec)
	if err != nil {
		return nil, fmt.Errorf("schemafile: decoding: %w", err)
	}
	return v, nil
}

// LoadFile opens and decodes the named file from fsys.
func LoadFile(fsys fs.FS, name string) (any, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("schemafile: opening %s: %w", name, err)
	}
	defer f.Close()
	v, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %s: %w", name, err)
	}
	logger.Debug("schemafile: loaded", "file", name)
	return v, nil
}

// RegisterFile loads the named schema file and registers it under uri
// using ljschema's process-wide default registry.
func RegisterFile(fsys fs.FS, name, uri string) error {
	v, err := LoadFile(fsys, name)
	if err != nil {
		return err
	}
	return ljschema.RegisterSchema(v, uri)
}

// decodeOrdered decodes one JSON value off dec, preserving object member
// order by driving the decoder's token stream directly rather than
// decoding into a Go map.
func decodeOrdered(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeValue(dec, tok)
}

func decodeValue(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch rune(t) {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("schemafile: unexpected delimiter %q", t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("schemafile: invalid number %q: %w", t.String(), err)
		}
		return f, nil
	case nil, bool, string:
		return tok, nil
	default:
		return nil, fmt.Errorf("schemafile: unexpected token %v (%T)", tok, tok)
	}
}

func decodeObject(dec *json.Decoder) (ljschema.Object, error) {
	obj := ljschema.Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("schemafile: expected object key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := decodeValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		obj = append(obj, ljschema.Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		elemTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		elem, err := decodeValue(dec, elemTok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return arr, nil
}
