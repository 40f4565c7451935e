package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-chartgen/pkg/wire"
)

// Loader implements wire.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level chartgen package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	remote    *lru.Cache[string, []byte]
}

var _ wire.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options wire.LoaderOptions) (*Loader, error) {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	l := &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}

	if options.RemoteCacheSize > 0 {
		cache, err := lru.New[string, []byte](options.RemoteCacheSize)
		if err != nil {
			return nil, fmt.Errorf("wire loader: remote cache: %w", err)
		}
		l.remote = cache
	}
	return l, nil
}

// Load fetches a document from src.
func (l *Loader) Load(ctx context.Context, src wire.Source) (wire.Document, error) {
	if src == nil {
		return wire.Document{}, errors.New("wire loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case wire.SourceKindFile:
		data, err = readLocal(ctx, nil, src.Location(), true)
	case wire.SourceKindFS:
		data, err = readLocal(ctx, l.fs, src.Location(), false)
	case wire.SourceKindURL:
		if !l.allowHTTP {
			return wire.Document{}, errors.New("wire loader: http support disabled")
		}
		data, err = l.loadRemote(ctx, src.Location())
	default:
		err = fmt.Errorf("wire loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return wire.Document{}, err
	}

	return wire.NewDocument(src, data)
}

func (l *Loader) loadRemote(ctx context.Context, location string) ([]byte, error) {
	if l.remote != nil {
		if cached, ok := l.remote.Get(location); ok {
			return append([]byte(nil), cached...), nil
		}
	}
	data, err := loadHTTP(ctx, l.http, location, l.timeout)
	if err != nil {
		return nil, err
	}
	if l.remote != nil {
		l.remote.Add(location, append([]byte(nil), data...))
	}
	return data, nil
}
