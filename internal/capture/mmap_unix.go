//go:build unix

package capture

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// view is a read-only memory-mapped window over a capture file. Record
// payloads are sliced straight out of the mapping, so no second copy of the
// file is ever held.
type view struct {
	data []byte
}

func openView(f *os.File, size int64) (*view, error) {
	if size == 0 {
		return &view{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("capture: could not mmap %s: %w", f.Name(), err)
	}

	v := &view{data: data}
	runtime.SetFinalizer(v, (*view).close)
	return v, nil
}

func (v *view) close() error {
	if v == nil || v.data == nil {
		return nil
	}
	data := v.data
	v.data = nil
	runtime.SetFinalizer(v, nil)

	return unix.Munmap(data)
}
