package activity

import (
	"bytes"
	"encoding/json"
)

// SectionMap is the ordered mapping from section key to recovered
// content for one document. Keys are never duplicated; the first insert
// wins. Deadlines are carried separately from the sections so they never
// render as one.
type SectionMap struct {
	sections []Section
	index    map[string]int
	Prazos   *Prazos
}

// NewSectionMap returns an empty section map.
func NewSectionMap() *SectionMap {
	return &SectionMap{index: make(map[string]int)}
}

// Add appends a section. A section whose key is already present is
// dropped, preserving the first occurrence.
func (m *SectionMap) Add(s Section) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, dup := m.index[s.Key]; dup || s.Key == "" {
		return
	}
	m.index[s.Key] = len(m.sections)
	m.sections = append(m.sections, s)
}

// Get returns the section stored under key.
func (m *SectionMap) Get(key string) (Section, bool) {
	i, ok := m.index[key]
	if !ok {
		return Section{}, false
	}
	return m.sections[i], true
}

// Has reports whether key is present.
func (m *SectionMap) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Sections returns the sections in insertion order.
func (m *SectionMap) Sections() []Section {
	return m.sections
}

// Keys returns the section keys in insertion order.
func (m *SectionMap) Keys() []string {
	keys := make([]string, len(m.sections))
	for i, s := range m.sections {
		keys[i] = s.Key
	}
	return keys
}

// Len returns the number of sections, excluding deadlines.
func (m *SectionMap) Len() int { return len(m.sections) }

// MarshalJSON serializes the map as a JSON object in insertion order,
// with deadlines under the reserved "prazos" key. The web layer depends
// on this shape.
func (m *SectionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range m.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(s.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s.Content())
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	if m.Prazos != nil {
		if len(m.sections) > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"prazos":`)
		v, err := json.Marshal(m.Prazos)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
