package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotAnObject = errors.New("change set must be a JSON object")

// ChangeSet is an insertion-ordered mapping from logical field name to new value.
type ChangeSet struct {
	keys   []string
	values map[string]any
}

func NewChangeSet() ChangeSet {
	return ChangeSet{values: make(map[string]any)}
}

// Set adds or replaces a field. Replacing keeps the original position.
func (c *ChangeSet) Set(field string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[field]; !ok {
		c.keys = append(c.keys, field)
	}
	c.values[field] = value
}

func (c ChangeSet) Get(field string) (any, bool) {
	v, ok := c.values[field]
	return v, ok
}

// Keys returns the fields in insertion order.
func (c ChangeSet) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c ChangeSet) Len() int {
	return len(c.keys)
}

// UnmarshalJSON keeps the key order of the JSON object. Numbers are decoded
// as json.Number so that callers check value types themselves.
func (c *ChangeSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read change set: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotAnObject
	}

	out := NewChangeSet()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read change set key: %w", err)
		}
		field, ok := tok.(string)
		if !ok {
			return ErrNotAnObject
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("read change set value %q: %w", field, err)
		}
		out.Set(field, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read change set: %w", err)
	}

	*c = out
	return nil
}

func (c ChangeSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.values[field])
		if err != nil {
			return nil, fmt.Errorf("marshal change set value %q: %w", field, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
