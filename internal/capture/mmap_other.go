//go:build !unix

package capture

import (
	"fmt"
	"io"
	"os"
)

// view reads the whole file once where memory mapping is unavailable. Same
// interface as the unix mapping, at the cost of one copy.
type view struct {
	data []byte
}

func openView(f *os.File, size int64) (*view, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("capture: could not read %s: %w", f.Name(), err)
	}
	return &view{data: data}, nil
}

func (v *view) close() error {
	if v == nil {
		return nil
	}
	v.data = nil
	return nil
}
