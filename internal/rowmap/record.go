package rowmap

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ErrEmptyPath is returned by Record.Set for an empty key path.
var ErrEmptyPath = errors.New("empty key path")

// Record is a nested key/value container that keeps keys in insertion
// order. Values are strings, nil (blank cell) or nested *Record.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores v at path, creating intermediate records on demand.
// An existing scalar is overwritten; descending through a scalar, or
// replacing a nested record with a scalar, is an error.
func (r *Record) Set(path []string, v any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	rec := r

	for i, key := range path[:len(path)-1] {
		existing, ok := rec.values[key]
		if !ok {
			child := NewRecord()
			rec.put(key, child)
			rec = child

			continue
		}

		child, ok := existing.(*Record)
		if !ok {
			return fmt.Errorf("key %q is a value, cannot descend into it",
				strings.Join(path[:i+1], "."))
		}

		rec = child
	}

	key := path[len(path)-1]
	if _, ok := rec.values[key].(*Record); ok {
		return fmt.Errorf("key %q holds nested fields, cannot store a value", strings.Join(path, "."))
	}

	rec.put(key, v)

	return nil
}

func (r *Record) put(key string, v any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = v
}

// Get returns the value stored at path.
func (r *Record) Get(path ...string) (any, bool) {
	var v any = r

	for _, key := range path {
		rec, ok := v.(*Record)
		if !ok {
			return nil, false
		}

		v, ok = rec.values[key]
		if !ok {
			return nil, false
		}
	}

	return v, true
}

// Keys returns the top-level keys in insertion order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of top-level keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Map converts the record to plain nested maps. Key order is lost.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.keys))

	for _, key := range r.keys {
		if rec, ok := r.values[key].(*Record); ok {
			m[key] = rec.Map()
			continue
		}

		m[key] = r.values[key]
	}

	return m
}

// MarshalJSON encodes the record as a JSON object with keys in insertion
// order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", key, err)
		}

		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
