package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RepsKind discriminates the two shapes a Reps value can take.
type RepsKind int

const (
	// RepsLabel is free text such as "30s". It is the zero kind so that the
	// zero Reps is an empty label.
	RepsLabel RepsKind = iota
	RepsCount
)

// Reps is either a repetition count or a free-form label.
//
// The value is user-editable text: the editor never coerces one kind into the
// other, so "12" typed by the user stays a label even though the template
// default was the count 12.
type Reps struct {
	kind  RepsKind
	count int
	label string
}

func CountReps(n int) Reps {
	return Reps{kind: RepsCount, count: n}
}

func LabelReps(s string) Reps {
	return Reps{kind: RepsLabel, label: s}
}

func (r Reps) Kind() RepsKind { return r.kind }

func (r Reps) Count() (int, bool) {
	return r.count, r.kind == RepsCount
}

func (r Reps) Label() (string, bool) {
	return r.label, r.kind == RepsLabel
}

// String returns the raw editable text.
func (r Reps) String() string {
	if r.kind == RepsCount {
		return strconv.Itoa(r.count)
	}
	return r.label
}

// MarshalJSON writes a count as a JSON number and a label as a JSON string.
func (r Reps) MarshalJSON() ([]byte, error) {
	if r.kind == RepsCount {
		return []byte(strconv.Itoa(r.count)), nil
	}
	return json.Marshal(r.label)
}

// UnmarshalJSON accepts an integral JSON number or a JSON string.
func (r *Reps) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("reps: empty value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("reps: %w", err)
		}
		*r = LabelReps(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("reps: %w", err)
		}
		if n, err := num.Int64(); err == nil {
			*r = CountReps(int(n))
			return nil
		}
		f, err := num.Float64()
		if err != nil || f != float64(int64(f)) {
			return fmt.Errorf("reps: %s is not a whole number", data)
		}
		*r = CountReps(int(f))
		return nil
	}
	return fmt.Errorf("reps: expected number or string, got %s", data)
}
