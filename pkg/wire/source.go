package wire

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source names where a chart request document is read from.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind tells loaders which strategy reads a Source.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type location struct {
	kind SourceKind
	path string
}

func (l location) Kind() SourceKind { return l.kind }
func (l location) Location() string { return l.path }

func (l location) String() string {
	return string(l.kind) + ":" + l.path
}

// SourceFromFile points at a document on the host disk.
func SourceFromFile(path string) Source {
	return location{kind: SourceKindFile, path: filepath.Clean(path)}
}

// SourceFromFS points at a document inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return location{kind: SourceKindFS, path: name}
}

// SourceFromURL points at a document served over HTTP(S). Invalid URLs panic;
// use ParseSource for user input.
func SourceFromURL(raw string) Source {
	src, err := urlSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// ParseSource reads a command-line style reference: http and https URLs become
// URL sources, anything else a file path.
func ParseSource(raw string) (Source, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return nil, errors.New("wire: source is empty")
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return urlSource(ref)
	}
	return SourceFromFile(ref), nil
}

func urlSource(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("wire: url source is empty")
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("wire: invalid url %q: %w", raw, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("wire: url %q has no host", raw)
	}
	return location{kind: SourceKindURL, path: raw}, nil
}
