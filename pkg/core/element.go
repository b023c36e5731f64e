package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Element is one row of the element dataset: an ordered mapping from field
// name to textual value. The zero value is an empty record.
//
// Values are never parsed on load; numeric fields such as AtomicNumber and
// AtomicMass are validated on demand by the query engine.
type Element struct {
	keys   []string
	values map[string]string
}

// NewElement builds a record from parallel key and value slices.
// A repeated key keeps its first position and its last value.
// Missing trailing values are stored as empty strings.
func NewElement(keys, values []string) Element {
	e := Element{
		keys:   make([]string, 0, len(keys)),
		values: make(map[string]string, len(keys)),
	}
	for i, k := range keys {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		e.set(k, v)
	}
	return e
}

// ElementOf builds a record from alternating key, value arguments.
// It is a convenience for fixtures and literals.
func ElementOf(pairs ...string) Element {
	keys := make([]string, 0, len(pairs)/2)
	values := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		keys = append(keys, pairs[i])
		values = append(values, pairs[i+1])
	}
	return NewElement(keys, values)
}

func (e *Element) set(key, value string) {
	if e.values == nil {
		e.values = make(map[string]string)
	}
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Get returns the value stored for field and whether the field is present.
func (e Element) Get(field string) (string, bool) {
	v, ok := e.values[field]
	return v, ok
}

// Value returns the value stored for field, or "" when absent.
func (e Element) Value(field string) string {
	return e.values[field]
}

// Has reports whether the record carries field.
func (e Element) Has(field string) bool {
	_, ok := e.values[field]
	return ok
}

// Keys returns the record's field names in their original order.
func (e Element) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Len returns the number of fields.
func (e Element) Len() int {
	return len(e.keys)
}

// Symbol returns the trimmed chemical symbol.
func (e Element) Symbol() string {
	return strings.TrimSpace(e.values[FieldSymbol])
}

// Row converts the record into the fixed-column layout used by the
// document exporter.
func (e Element) Row() (ElementRow, error) {
	for _, f := range DocumentFields {
		if !e.Has(f) {
			return ElementRow{}, &MissingFieldError{Field: f, Index: -1, Symbol: e.Symbol()}
		}
	}
	return ElementRow{
		Symbol:     e.values[FieldSymbol],
		Name:       e.values[FieldName],
		AtomicMass: e.values[FieldAtomicMass],
		Group:      e.values[FieldGroup],
		Period:     e.values[FieldPeriod],
	}, nil
}

// MarshalJSON encodes the record as a JSON object, keeping field order.
// HTML escaping follows the caller: json.Marshal escapes <, > and &, an
// Encoder with SetEscapeHTML(false) keeps them as written.
func (e Element) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, e.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the record, keeping field order.
// Scalar values are converted to text; nested values are rejected.
func (e *Element) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("element must be a JSON object, got %v", tok)
	}

	*e = Element{keys: []string{}, values: map[string]string{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		text, err := scalarText(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		e.set(key, text)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// String renders the record as "key: value" pairs in field order.
func (e Element) String() string {
	parts := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		parts = append(parts, k+": "+e.values[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func scalarText(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
