package capture

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"goasterix/internal/asterix"
)

// headerLen is the record header: 1 category byte + 2 length bytes.
const headerLen = 3

// Reader frames an ASTERIX capture file into records. The file is kept as a
// memory-mapped view; record payloads are slices into it and must be treated
// as read-only until Close.
type Reader struct {
	path   string
	view   *view
	pos    int
	logger *logrus.Logger

	recordCount  int
	skippedBytes int
}

// NewReader opens and maps a capture file.
func NewReader(path string, logger *logrus.Logger) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("capture: stat %s: %w", path, err)
	}

	v, err := openView(f, st.Size())
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"path": path,
		"size": st.Size(),
	}).Debug("Capture file mapped")

	return &Reader{
		path:   path,
		view:   v,
		logger: logger,
	}, nil
}

// Next returns the next framed record. It skips over records of unsupported
// categories and returns io.EOF once fewer than a header's worth of bytes
// remain or a malformed length field stops the scan.
func (r *Reader) Next() (*asterix.Record, error) {
	data := r.view.data

	for r.pos+headerLen <= len(data) {
		start := r.pos
		length := int(binary.BigEndian.Uint16(data[start+1 : start+3]))

		if length < headerLen || start+length > len(data) {
			// Malformed or truncated trailing record; abandon the rest.
			r.logger.WithFields(logrus.Fields{
				"offset": start,
				"length": length,
			}).Warn("Malformed record length, stopping scan")
			r.pos = len(data)
			return nil, io.EOF
		}

		category, ok := asterix.CategoryFromByte(data[start])
		if !ok {
			r.logger.WithFields(logrus.Fields{
				"category": data[start],
				"offset":   start,
				"length":   length,
			}).Debug("Skipping unsupported category")
			r.skippedBytes += length
			r.pos = start + length
			continue
		}

		r.pos = start + length
		r.recordCount++

		return &asterix.Record{
			Category:    category,
			Length:      length,
			RawData:     data[start+headerLen : start+length],
			BlockOffset: int64(start),
		}, nil
	}

	return nil, io.EOF
}

// ReadAll frames the remaining records in file order.
func (r *Reader) ReadAll() []*asterix.Record {
	var records []*asterix.Record
	for {
		rec, err := r.Next()
		if err != nil {
			break
		}
		records = append(records, rec)
	}
	return records
}

// ReadRecordAt frames a single record at the given file offset without
// touching the sequential scan position.
func (r *Reader) ReadRecordAt(offset int64) (*asterix.Record, error) {
	data := r.view.data
	start := int(offset)

	if start < 0 || start+headerLen > len(data) {
		return nil, fmt.Errorf("capture: offset %d out of range", offset)
	}

	category, ok := asterix.CategoryFromByte(data[start])
	if !ok {
		return nil, fmt.Errorf("capture: unsupported category %d at offset %d", data[start], offset)
	}

	length := int(binary.BigEndian.Uint16(data[start+1 : start+3]))
	if length < headerLen || start+length > len(data) {
		return nil, fmt.Errorf("capture: invalid record length %d at offset %d", length, offset)
	}

	return &asterix.Record{
		Category:    category,
		Length:      length,
		RawData:     data[start+headerLen : start+length],
		BlockOffset: offset,
	}, nil
}

// Size returns the capture file size in bytes.
func (r *Reader) Size() int64 {
	return int64(len(r.view.data))
}

// Close unmaps the file. Records framed from this reader must not be used
// after Close.
func (r *Reader) Close() error {
	r.logger.WithFields(logrus.Fields{
		"path":    r.path,
		"records": r.recordCount,
		"skipped": r.skippedBytes,
	}).Debug("Closing capture file")

	return r.view.close()
}
