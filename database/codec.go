package database

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Encode converts a typed value into a plain Document. Integral numbers are
// kept as int64 so backends with typed numbers do not store them as doubles.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return Document(normalize(out).(map[string]any)), nil
}

// EncodeValue is Encode for values that are not objects, such as item lists.
func EncodeValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	return normalize(out), nil
}

// Decode coerces a stored document into out. A document whose fields cannot
// be coerced into out's shape is reported as ErrMalformedDocument.
func Decode(doc Document, out any) error {
	raw, err := json.Marshal(map[string]any(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case Document:
		return normalize(map[string]any(t))
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}

func newID() string {
	return uuid.NewString()
}

// splitID returns the document id, generating one when absent, and a copy of
// the document without the id field.
func splitID(doc Document) (string, Document) {
	id := doc.ID()
	if id == "" {
		id = newID()
	}
	body := make(Document, len(doc))
	for k, v := range doc {
		if k == IDField {
			continue
		}
		body[k] = v
	}
	return id, body
}

func withID(id string, body Document) Document {
	out := make(Document, len(body)+1)
	for k, v := range body {
		out[k] = v
	}
	out[IDField] = id
	return out
}
