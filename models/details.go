package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Details is an ordered label→value mapping for free-form product attributes
// (e.g. "Quantity" → "60 capsules"). Plain Go maps do not preserve insertion
// order, so Details keeps its own key slice and serializes as a JSON object
// whose keys appear in insertion order.
//
// The zero value is ready to use.
type Details struct {
	keys   []string
	values map[string]string
}

// NewDetails builds a Details map from alternating label, value pairs.
// Panics on an odd number of arguments; intended for literals and tests.
func NewDetails(pairs ...string) Details {
	if len(pairs)%2 != 0 {
		panic("models.NewDetails: odd number of arguments")
	}
	var d Details
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

// Set adds or replaces a value. A new label is appended to the key order;
// replacing an existing label keeps its original position.
func (d *Details) Set(label, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, exists := d.values[label]; !exists {
		d.keys = append(d.keys, label)
	}
	d.values[label] = value
}

// Get returns the value for a label and whether it was present.
func (d Details) Get(label string) (string, bool) {
	v, ok := d.values[label]
	return v, ok
}

// Len returns the number of entries.
func (d Details) Len() int {
	return len(d.keys)
}

// Keys returns the labels in insertion order. The returned slice is a copy.
func (d Details) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Equal reports whether two Details hold the same entries in the same order.
func (d Details) Equal(other Details) bool {
	if len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k || other.values[k] != d.values[k] {
			return false
		}
	}
	return true
}

// MarshalJSON emits a JSON object with keys in insertion order.
// A nil/empty Details marshals as {} rather than null, matching the stored
// file format.
func (d Details) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object preserving document key order.
// gjson's ForEach walks members in the order they appear in the source text,
// which encoding/json's map decoding would discard. Non-string values are
// stored using their string representation; the API performs no validation
// on caller-supplied detail values beyond this.
func (d *Details) UnmarshalJSON(data []byte) error {
	d.keys = nil
	d.values = nil

	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		return nil
	}
	if !result.IsObject() {
		return fmt.Errorf("details must be a JSON object, got %s", result.Type)
	}

	result.ForEach(func(key, value gjson.Result) bool {
		d.Set(key.String(), value.String())
		return true
	})
	return nil
}
