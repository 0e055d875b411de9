package domain

import (
	"bytes"
	"encoding/json"
)

// Sheet is one worksheet converted to a rectangular grid of cell strings.
type Sheet struct {
	Name string
	Rows [][]string
}

// TableSet holds every sheet of a workbook in workbook-declared order.
// It marshals to a JSON object whose keys keep that order; a plain
// map[string][][]string would marshal with sorted keys and lose it.
type TableSet struct {
	Sheets []Sheet
}

func (t *TableSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sheet := range t.Sheets {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(sheet.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		rows := sheet.Rows
		if rows == nil {
			rows = [][]string{}
		}
		grid, err := json.Marshal(rows)
		if err != nil {
			return nil, err
		}
		buf.Write(grid)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ExtractedContent is the normalized form of an uploaded document: either
// linear text or a table set, tagged with its ContentType. Use the
// constructors so the tag always matches the payload.
type ExtractedContent struct {
	Type   ContentType
	Text   string
	Tables *TableSet
}

// NewTextContent wraps extracted plain text.
func NewTextContent(text string) *ExtractedContent {
	return &ExtractedContent{Type: ContentTypeText, Text: text}
}

// NewTableContent wraps extracted workbook data.
func NewTableContent(tables *TableSet) *ExtractedContent {
	return &ExtractedContent{Type: ContentTypeTable, Tables: tables}
}

// Payload returns the wire value for the extractedData response field:
// a string for text content, an ordered sheet mapping for table content.
func (c *ExtractedContent) Payload() interface{} {
	if c.Type == ContentTypeTable {
		return c.Tables
	}
	return c.Text
}

// SessionState is the client-held session value object. The backend keeps no
// session store; the client re-sends this with every query, and replaces it
// wholesale on a new upload or an explicit clear.
type SessionState struct {
	Document    json.RawMessage `json:"documentData"`
	ContentType ContentType     `json:"contentType"`
	Question    string          `json:"userQuery"`
	APIKey      string          `json:"apiKey"`
	Answer      string          `json:"answer,omitempty"`
}

// WithDocument returns a copy holding a newly uploaded document; the previous
// question and answer are dropped with the document they referred to.
func (s SessionState) WithDocument(document json.RawMessage, contentType ContentType) SessionState {
	return SessionState{
		Document:    document,
		ContentType: contentType,
		APIKey:      s.APIKey,
	}
}

// WithAnswer returns a copy holding the latest answer.
func (s SessionState) WithAnswer(answer string) SessionState {
	s.Answer = answer
	return s
}

// Clear returns an empty session.
func (s SessionState) Clear() SessionState {
	return SessionState{}
}
