package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindEmpty marks a cell without a value.
	KindEmpty Kind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindString is a text cell, including error literals such as #DIV/0!.
	KindString
	// KindTimestamp is a numeric cell carrying a date or time number format.
	KindTimestamp
	// KindBool is a boolean cell.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTimestamp:
		return "timestamp"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// Value is a single spreadsheet cell value.
// The zero Value is empty.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Time time.Time
	Bool bool
}

// Empty returns the empty marker.
func Empty() Value { return Value{} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// String returns a text value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Timestamp returns a date/time value.
func Timestamp(t time.Time) Value { return Value{Kind: KindTimestamp, Time: t} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IsEmpty reports whether v is the empty marker.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Equal reports whether v and o hold the same variant and value.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == o.Num
	case KindString:
		return v.Str == o.Str
	case KindTimestamp:
		return v.Time.Equal(o.Time)
	case KindBool:
		return v.Bool == o.Bool
	}
	return true
}

// Interface returns the value as a plain Go value:
// nil, float64, string, time.Time or bool.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindString:
		return v.Str
	case KindTimestamp:
		return v.Time
	case KindBool:
		return v.Bool
	}
	return nil
}

// String formats the value for text listings. Empty cells print as None
// and strings are quoted, so "1" and 1 stay distinguishable.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return strconv.Quote(v.Str)
	case KindTimestamp:
		return v.Time.Format(time.RFC3339)
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	}
	return "None"
}

// MarshalJSON encodes empty cells as null and timestamps as RFC 3339 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindTimestamp {
		return json.Marshal(v.Time.Format(time.RFC3339))
	}
	return json.Marshal(v.Interface())
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.Kind == KindTimestamp {
		return v.Time.Format(time.RFC3339), nil
	}
	return v.Interface(), nil
}

// Row is an ordered sequence of cell values.
type Row []Value

// IsEmpty reports whether every cell in the row is empty.
func (r Row) IsEmpty() bool {
	for _, v := range r {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

// Equal reports whether two rows hold the same values in the same order.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
