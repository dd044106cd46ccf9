package domain

import (
	"encoding/json"
	"strings"
)

// Detail is one labelled observation echoed into the consult message.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Details is an insertion-ordered label to value record. Every stored value
// is non-empty after trimming.
type Details struct {
	entries []Detail
}

// Add stores value under label unless it is blank. Re-adding a label
// replaces its value and keeps its original position.
func (d *Details) Add(label, value string) {
	value = strings.TrimSpace(value)
	label = strings.TrimSpace(label)
	if value == "" || label == "" {
		return
	}
	for i := range d.entries {
		if d.entries[i].Label == label {
			d.entries[i].Value = value
			return
		}
	}
	d.entries = append(d.entries, Detail{Label: label, Value: value})
}

// AddList joins the non-blank items with ", " and stores them under label.
func (d *Details) AddList(label string, values []string) {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	d.Add(label, strings.Join(kept, ", "))
}

// Len reports the number of stored entries. A nil record is empty.
func (d *Details) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns a copy of the entries in insertion order.
func (d *Details) Entries() []Detail {
	if d == nil {
		return nil
	}
	out := make([]Detail, len(d.entries))
	copy(out, d.entries)
	return out
}

// Get returns the value stored under label.
func (d *Details) Get(label string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, e := range d.entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

func (d Details) MarshalJSON() ([]byte, error) {
	if d.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.entries)
}
