package app

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goasterix/internal/asterix"
	"goasterix/internal/capture"
	"goasterix/internal/cat021"
	"goasterix/internal/cat048"
	"goasterix/internal/export"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// frameRecord builds one wire record: category + big-endian total length +
// payload
func frameRecord(category byte, payload []byte) []byte {
	buf := make([]byte, 3+len(payload))
	buf[0] = category
	binary.BigEndian.PutUint16(buf[1:3], uint16(3+len(payload)))
	copy(buf[3:], payload)
	return buf
}

// cat048Report builds a minimal CAT048 record carrying data source, time
// of day and aircraft address (FRN 1, 2, 8).
func cat048Report(seconds float64, addr [3]byte) []byte {
	raw := uint32(seconds * 128)
	payload := []byte{
		0xC1, 0x80, // FSPEC
		25, 201,
		byte(raw >> 16), byte(raw >> 8), byte(raw),
		addr[0], addr[1], addr[2],
	}
	return frameRecord(48, payload)
}

// cat021Report builds a minimal CAT021 record carrying data source,
// target address and time of reception of position (FRN 1, 11, 12).
func cat021Report(seconds float64, addr [3]byte) []byte {
	raw := uint32(seconds * 128)
	payload := []byte{
		0x81, 0x18, // FSPEC
		0, 1,
		addr[0], addr[1], addr[2],
		byte(raw >> 16), byte(raw >> 8), byte(raw),
	}
	return frameRecord(21, payload)
}

func writeCapture(t *testing.T, chunks ...[]byte) string {
	t.Helper()
	var file []byte
	for _, c := range chunks {
		file = append(file, c...)
	}
	path := filepath.Join(t.TempDir(), "capture.ast")
	require.NoError(t, os.WriteFile(path, file, 0644))
	return path
}

// TestApplication_Run exercises the full pipeline: frame, decode, sort,
// flatten and write both outputs.
func TestApplication_Run(t *testing.T) {
	input := writeCapture(t,
		cat048Report(100.0, [3]byte{0xAA, 0xAA, 0xAA}),
		cat048Report(50.0, [3]byte{0x3C, 0x66, 0x0C}),
		cat021Report(60.0, [3]byte{0x48, 0x40, 0xD6}),
		cat048Report(75.0, [3]byte{0x4C, 0xA1, 0xD2}),
	)
	outDir := t.TempDir()
	config := Config{
		InputFile:  input,
		CSVBase:    filepath.Join(outDir, "out.csv"),
		SQLitePath: filepath.Join(outDir, "out.db"),
		Workers:    2,
	}

	application := NewApplication(config, testLogger())
	require.NoError(t, application.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(outDir, "out_cat048.csv"))
	require.NoError(t, err)
	want048 := "CAT,SAC,SIC,Time,TA\n" +
		"48,25,201,00:00:50.000,3C660C\n" +
		"48,25,201,00:01:15.000,4CA1D2\n" +
		"48,25,201,00:01:40.000,AAAAAA\n"
	assert.Equal(t, want048, string(data))

	data, err = os.ReadFile(filepath.Join(outDir, "out_cat021.csv"))
	require.NoError(t, err)
	want021 := "CAT,SAC,SIC,Time,TA\n" +
		"21,0,1,00:01:00.000,4840D6\n"
	assert.Equal(t, want021, string(data))

	db, err := export.OpenDB(config.SQLitePath, testLogger())
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	n048, err := db.Count(asterix.Cat048)
	require.NoError(t, err)
	assert.Equal(t, 3, n048)
	n021, err := db.Count(asterix.Cat021)
	require.NoError(t, err)
	assert.Equal(t, 1, n021)
}

// TestApplication_WorkerCountEquivalence verifies the parallel decode
// produces byte-identical output to the sequential one.
func TestApplication_WorkerCountEquivalence(t *testing.T) {
	chunks := [][]byte{
		cat048Report(90.0, [3]byte{0x01, 0x02, 0x03}),
		cat021Report(10.0, [3]byte{0x04, 0x05, 0x06}),
		cat048Report(10.0, [3]byte{0x07, 0x08, 0x09}),
		cat048Report(300.0, [3]byte{0x0A, 0x0B, 0x0C}),
		cat021Report(300.0, [3]byte{0x0D, 0x0E, 0x0F}),
		cat048Report(40.0, [3]byte{0x10, 0x11, 0x12}),
		cat048Report(40.0, [3]byte{0x02, 0x11, 0x12}),
		cat021Report(99.5, [3]byte{0x13, 0x14, 0x15}),
		cat048Report(12.25, [3]byte{0x16, 0x17, 0x18}),
		cat048Report(1.0, [3]byte{0x19, 0x1A, 0x1B}),
	}
	input := writeCapture(t, chunks...)

	run := func(workers int) (string, string) {
		outDir := t.TempDir()
		config := Config{
			InputFile: input,
			CSVBase:   filepath.Join(outDir, "out.csv"),
			Workers:   workers,
		}
		require.NoError(t, NewApplication(config, testLogger()).Run(context.Background()))
		c048, err := os.ReadFile(filepath.Join(outDir, "out_cat048.csv"))
		require.NoError(t, err)
		c021, err := os.ReadFile(filepath.Join(outDir, "out_cat021.csv"))
		require.NoError(t, err)
		return string(c048), string(c021)
	}

	seq048, seq021 := run(1)
	par048, par021 := run(4)
	assert.Equal(t, seq048, par048)
	assert.Equal(t, seq021, par021)

	many048, many021 := run(32) // more workers than records
	assert.Equal(t, seq048, many048)
	assert.Equal(t, seq021, many021)
}

// TestApplication_FiltersDropEverything verifies no CSV file appears for
// a category whose rows are all filtered away.
func TestApplication_FiltersDropEverything(t *testing.T) {
	input := writeCapture(t, cat048Report(50.0, [3]byte{0x3C, 0x66, 0x0C}))
	outDir := t.TempDir()
	config := Config{
		InputFile: input,
		CSVBase:   filepath.Join(outDir, "out.csv"),
		Workers:   1,
		Filters:   export.Filters{Callsign: "KLM"},
	}

	require.NoError(t, NewApplication(config, testLogger()).Run(context.Background()))

	_, err := os.Stat(filepath.Join(outDir, "out_cat048.csv"))
	assert.True(t, os.IsNotExist(err))
}

// TestApplication_RunMissingInput verifies the open error surfaces.
func TestApplication_RunMissingInput(t *testing.T) {
	config := Config{InputFile: filepath.Join(t.TempDir(), "missing.ast")}
	err := NewApplication(config, testLogger()).Run(context.Background())
	assert.Error(t, err)
}

// TestSortRecords verifies ordering by time then address, with timeless
// records first and file order kept for ties.
func TestSortRecords(t *testing.T) {
	timed := func(seconds float64, addr string) *asterix.Record {
		return &asterix.Record{
			Category: asterix.Cat048,
			Items: []asterix.Item{
				{Type: asterix.Cat048TimeOfDay, Value: cat048.TimeOfDay{TotalSeconds: seconds}},
				{Type: asterix.Cat048AircraftAddress, Value: cat048.AircraftAddress{Hex: addr}},
			},
		}
	}
	timeless := &asterix.Record{Category: asterix.Cat048}
	a := timed(50.0, "BBB000")
	b := timed(50.0, "AAA000")
	c := timed(10.0, "CCC000")
	records := []*asterix.Record{a, b, timeless, c}

	sortRecords(records)

	assert.Equal(t, []*asterix.Record{timeless, c, b, a}, records)
}

// TestSortRecords_Cat021TimePriority verifies the reception-of-position
// time is the sort key even when another time item precedes it.
func TestSortRecords_Cat021TimePriority(t *testing.T) {
	rec := &asterix.Record{
		Category: asterix.Cat021,
		Items: []asterix.Item{
			{Type: asterix.Cat021TimeReportTransmission, Value: cat021.TimeOfDay{TotalSeconds: 500.0}},
			{Type: asterix.Cat021TimeReceptionPosition, Value: cat021.TimeOfDay{TotalSeconds: 20.0}},
		},
	}
	key := recordKey(rec)
	assert.True(t, key.hasTime)
	assert.InDelta(t, 20.0, key.time, 1e-9)
}

// TestCSVPath tests per-category output path derivation
func TestCSVPath(t *testing.T) {
	tests := []struct {
		name string
		base string
		cat  asterix.Category
		want string
	}{
		{"csv extension", "out.csv", asterix.Cat048, "out_cat048.csv"},
		{"no extension", "out", asterix.Cat021, "out_cat021.csv"},
		{"directory prefix", filepath.Join("dir", "x.csv"), asterix.Cat048, filepath.Join("dir", "x_cat048.csv")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, csvPath(tt.base, tt.cat))
		})
	}
}

// TestApplication_Inspect verifies the record printout format.
func TestApplication_Inspect(t *testing.T) {
	input := writeCapture(t,
		cat048Report(50.0, [3]byte{0x3C, 0x66, 0x0C}),
		cat021Report(60.0, [3]byte{0x48, 0x40, 0xD6}),
	)
	config := Config{InputFile: input, Workers: 1}
	application := NewApplication(config, testLogger())

	reader, err := capture.NewReader(input, testLogger())
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()
	records := reader.ReadAll()
	require.NoError(t, application.decode(context.Background(), records))

	var buf bytes.Buffer
	application.Inspect(&buf, records, 10)

	out := buf.String()
	assert.Contains(t, out, "record 1: CAT048")
	assert.Contains(t, out, "record 2: CAT021")
	assert.Contains(t, out, "SAC=25 SIC=201")
	assert.Contains(t, out, "00:00:50.000")
	assert.Contains(t, out, "3C660C")
	assert.Contains(t, out, "4840D6")
}

// TestShowVersion tests the version display functionality
func TestShowVersion(t *testing.T) {
	assert.NotPanics(t, func() {
		ShowVersion()
	})
}
