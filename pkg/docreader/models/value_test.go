package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{Empty(), "None"},
		{Number(95000), "95000"},
		{Number(200.5), "200.5"},
		{String("Alice"), `"Alice"`},
		{String("42"), `"42"`},
		{Bool(true), "True"},
		{Timestamp(time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)), "2020-01-15T00:00:00Z"},
	}

	for _, tt := range tests {
		if result := tt.v.String(); result != tt.expected {
			t.Errorf("%s.String() = %q, expected %q", tt.v.Kind, result, tt.expected)
		}
	}
}

func TestValueEqual(t *testing.T) {
	ts := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		a, b     Value
		expected bool
	}{
		{Number(1), Number(1), true},
		{Number(1), String("1"), false},
		{Empty(), Value{}, true},
		{Timestamp(ts), Timestamp(ts.In(time.FixedZone("X", 3600))), true},
		{Bool(true), Bool(false), false},
	}

	for _, tt := range tests {
		if result := tt.a.Equal(tt.b); result != tt.expected {
			t.Errorf("%v.Equal(%v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestRowJSON(t *testing.T) {
	row := Row{
		Number(1), String("Alice"), Empty(), Bool(false),
		Timestamp(time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)),
	}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `[1,"Alice",null,false,"2020-01-15T00:00:00Z"]`
	if string(data) != expected {
		t.Errorf("Marshal = %s, expected %s", data, expected)
	}
}

func TestRowIsEmpty(t *testing.T) {
	if !(Row{Empty(), Empty()}).IsEmpty() {
		t.Error("Expected all-empty row to be empty")
	}
	if !(Row{}).IsEmpty() {
		t.Error("Expected zero-width row to be empty")
	}
	if (Row{Empty(), Number(0)}).IsEmpty() {
		t.Error("Expected row with a zero to be non-empty")
	}
}
