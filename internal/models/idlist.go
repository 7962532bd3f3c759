package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// IDList is an ordered list of merchant-assigned identifiers stored as a JSON
// array in a TEXT column. Ecwid payloads carry ids as numbers, older rows may
// carry them as strings; both decode to strings here.
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal id list: %w", err)
	}
	return string(data), nil
}

// Scan tolerates malformed stored JSON by decoding to an empty list, so a bad
// row degrades to "no ids" instead of failing the whole query.
func (l *IDList) Scan(value interface{}) error {
	var raw []byte

	switch v := value.(type) {
	case nil:
		*l = IDList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported id list column type %T", value)
	}

	if len(raw) == 0 {
		*l = IDList{}
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		*l = IDList{}
		return nil
	}

	out := make(IDList, 0, len(elems))
	for _, e := range elems {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			out = append(out, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(e, &n); err == nil {
			out = append(out, n.String())
		}
	}

	*l = out
	return nil
}

// Contains reports whether id is an element of the list. Exact element
// equality, not substring containment: category "1" must not match a product
// filed under category "21".
func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Intersects reports whether the two lists share at least one id.
func (l IDList) Intersects(other IDList) bool {
	for _, v := range other {
		if l.Contains(v) {
			return true
		}
	}
	return false
}

// FormatID normalizes a numeric or string merchant id to its string form.
func FormatID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
