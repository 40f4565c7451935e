package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// readLocal reads name from filesystem, or from the host disk when
// filesystem is nil and onDisk is set. Paths inside an fs.FS are cleaned to
// the slash form fs.ValidPath expects.
func readLocal(ctx context.Context, filesystem fs.FS, name string, onDisk bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || name == "." {
		return nil, errors.New("wire loader: document path is required")
	}

	var (
		data []byte
		err  error
	)
	switch {
	case onDisk:
		data, err = os.ReadFile(name)
	case filesystem == nil:
		return nil, errors.New("wire loader: filesystem is not configured")
	default:
		data, err = fs.ReadFile(filesystem, path.Clean(name))
	}
	if err != nil {
		return nil, fmt.Errorf("wire loader: read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("wire loader: %s is empty", name)
	}
	return data, nil
}
