package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goliatone/go-chartgen/pkg/wire"
)

// LoadDocument reads a fixture into a wire.Document with a file source.
func LoadDocument(t *testing.T, path string) wire.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T so
// setup helpers can share it.
func LoadDocumentFromPath(path string) (wire.Document, error) {
	if path == "" {
		return wire.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return wire.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := wire.NewDocument(wire.SourceFromFile(path), data)
	if err != nil {
		return wire.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadRequest decodes a JSON or YAML request fixture.
func MustLoadRequest(t *testing.T, path string) wire.RenderChartRequest {
	t.Helper()

	req, err := LoadDocument(t, path).Request()
	if err != nil {
		t.Fatalf("decode request: %v", err)
	}
	return req
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
