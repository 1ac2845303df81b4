package models

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// SheetMap maps sheet names to their retained rows, keeping the order in
// which sheets are declared in the workbook.
type SheetMap struct {
	names []string
	rows  map[string][]Row
}

// NewSheetMap returns an empty SheetMap.
func NewSheetMap() *SheetMap {
	return &SheetMap{rows: make(map[string][]Row)}
}

// Set stores rows for a sheet. A new name is appended to the order;
// an existing name keeps its position.
func (m *SheetMap) Set(name string, rows []Row) {
	if rows == nil {
		rows = []Row{}
	}
	if _, ok := m.rows[name]; !ok {
		m.names = append(m.names, name)
	}
	m.rows[name] = rows
}

// Get returns the rows of a sheet by name.
func (m *SheetMap) Get(name string) ([]Row, bool) {
	rows, ok := m.rows[name]
	return rows, ok
}

// Names returns sheet names in declaration order.
func (m *SheetMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of sheets.
func (m *SheetMap) Len() int {
	return len(m.names)
}

// MarshalJSON encodes the map as a JSON object with keys in sheet order.
func (m *SheetMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.rows[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping with keys in sheet order.
func (m *SheetMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range m.names {
		var val yaml.Node
		if err := val.Encode(m.rows[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return node, nil
}
