package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document wraps a raw request payload together with its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document, copying raw.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("wire: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("wire: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the origin identifier, or "" when unknown.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Request decodes the payload into a RenderChartRequest.
func (d Document) Request() (RenderChartRequest, error) {
	req, err := DecodeRequest(d.raw)
	if err != nil {
		return RenderChartRequest{}, fmt.Errorf("wire: decode %s: %w", d.Location(), err)
	}
	return req, nil
}

// DecodeRequest parses a JSON or YAML request document. JSON is detected by a
// leading '{'; everything else is handed to the YAML decoder. Unknown fields
// and one-of members with several variants set are rejected in both formats.
func DecodeRequest(raw []byte) (RenderChartRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return RenderChartRequest{}, errors.New("empty document")
	}

	var req RenderChartRequest
	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return RenderChartRequest{}, fmt.Errorf("json: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(trimmed))
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil {
			return RenderChartRequest{}, fmt.Errorf("yaml: %w", err)
		}
	}

	if err := req.Validate(); err != nil {
		return RenderChartRequest{}, err
	}
	return req, nil
}
