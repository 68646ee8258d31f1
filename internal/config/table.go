package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNotObject = errors.New("value is not a JSON object")

// Table is a read-only string mapping that remembers the order keys appeared
// in the source document.
type Table struct {
	keys   []string
	values map[string]string
}

type (
	// TokenTable maps an authorization token to the label of the device using it.
	TokenTable struct{ Table }
	// RoutingTable maps a receiver-account identifier to a destination URL.
	RoutingTable struct{ Table }
)

func NewTable(pairs ...[2]string) Table {
	t := Table{values: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		t.set(p[0], p[1])
	}
	return t
}

func (t *Table) set(key, value string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

func (t Table) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t Table) Len() int {
	return len(t.keys)
}

func (t Table) without(key string) Table {
	out := Table{values: make(map[string]string, len(t.values))}
	for _, k := range t.keys {
		if k != key {
			out.set(k, t.values[k])
		}
	}
	return out
}

// ParseTable decodes a flat JSON object of string values. A key repeated in
// the document keeps its first position and its last value.
func ParseTable(raw string) (Table, error) {
	var t Table
	if strings.TrimSpace(raw) == "" {
		return t, nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	tok, err := dec.Token()
	if err != nil {
		return Table{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Table{}, ErrNotObject
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Table{}, err
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return Table{}, fmt.Errorf("key %q: %w", key, err)
		}
		t.set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return Table{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("trailing data after object")
	}

	return t, nil
}
