package chartgen

import (
	internalLoader "github.com/goliatone/go-chartgen/internal/wire/loader"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

// NewLoader constructs a request document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...wire.LoaderOption) (wire.Loader, error) {
	cfg := wire.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
