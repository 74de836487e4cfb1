package cat021

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goasterix/internal/asterix"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newRecord(raw []byte) *asterix.Record {
	return &asterix.Record{
		Category: asterix.Cat021,
		Length:   3 + len(raw),
		RawData:  raw,
	}
}

func TestDecode_FullRecord(t *testing.T) {
	raw := []byte{
		// FSPEC: FRN 1, 2, 6, 11, 12, 19, 21, 29, 48
		0xC5, 0x19, 0x0B, 0x01, 0x81, 0x01, 0x04,
		0x00, 0x01, // I021/010
		0x20,                               // I021/040: 24-bit ICAO address
		0x20, 0x00, 0x00, 0xE0, 0x00, 0x00, // I021/130: 45N 45W
		0x48, 0x40, 0xD6, // I021/080
		0x3A, 0x0C, 0x10, // I021/073
		0x02, 0x00, // I021/070: squawk 1000
		0x05, 0x14, // I021/145: FL325
		0x2C, 0xC3, 0x71, 0xCB, 0x3D, 0x20, // I021/170: KLM1234
		0x04, 0x80, 0x08, 0x54, // I021/RE: BPS 1013.2 hPa
	}
	rec := newRecord(raw)
	NewDecoder(testLogger()).Decode(rec)

	require.Len(t, rec.Items, 9)
	wantFRNs := []int{1, 2, 6, 11, 12, 19, 21, 29, 48}
	for i, item := range rec.Items {
		assert.Equal(t, wantFRNs[i], item.FRN)
	}

	ds := rec.Items[0].Value.(DataSource)
	assert.Equal(t, uint8(0), ds.SAC)
	assert.Equal(t, uint8(1), ds.SIC)

	trd := rec.Items[1].Value.(TargetReportDescriptor)
	assert.Equal(t, uint8(1), trd.ATP)
	assert.False(t, trd.HasExtension)

	pos := rec.Items[2].Value.(Position)
	assert.InDelta(t, 45.0, pos.LatitudeDeg, 1e-9)
	assert.InDelta(t, -45.0, pos.LongitudeDeg, 1e-9)
	assert.False(t, pos.HighRes)

	addr := rec.Items[3].Value.(TargetAddress)
	assert.Equal(t, "4840D6", addr.Hex)

	tod := rec.Items[4].Value.(TimeOfDay)
	assert.InDelta(t, 29720.125, tod.TotalSeconds, 1e-9)
	assert.Equal(t, "08:15:20.125", tod.TimeString)

	m3a := rec.Items[5].Value.(Mode3A)
	assert.Equal(t, "1000", m3a.Code)

	fl := rec.Items[6].Value.(FlightLevel)
	assert.InDelta(t, 325.0, fl.FL, 1e-9)
	assert.InDelta(t, 32500.0, fl.AltitudeFt, 1e-9)

	ident := rec.Items[7].Value.(TargetIdentification)
	assert.Equal(t, "KLM1234", ident.Callsign)

	re := rec.Items[8].Value.(ReservedExpansion)
	require.NotNil(t, re.BPS)
	assert.InDelta(t, 1013.2, *re.BPS, 0.001)
}

func TestDecode_UnmappedItemStopsRecord(t *testing.T) {
	// FSPEC announces FRN 1, then Trajectory Intent (FRN 34) and Service
	// Management (FRN 35). Trajectory Intent has no decoder, so FRN 35 is
	// never reached even though its bytes are present.
	raw := []byte{
		0x81, 0x01, 0x01, 0x01, 0x06,
		0x00, 0x01, // I021/010
		0xDE, 0xAD, // would-be trajectory intent bytes
		0x0A, // would-be service management
	}
	rec := newRecord(raw)
	NewDecoder(testLogger()).Decode(rec)

	require.Len(t, rec.Items, 1)
	assert.Equal(t, 1, rec.Items[0].FRN)
	assert.Equal(t, asterix.Cat021DataSource, rec.Items[0].Type)
}

func TestDecodePositionWGS84HighRes(t *testing.T) {
	rec := newRecord(nil)
	raw := []byte{0x10, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x00, 0x00}
	next := NewDecoder(testLogger()).decodePositionWGS84HighRes(raw, 0, rec)
	require.Equal(t, 8, next)

	pos := rec.Items[0].Value.(Position)
	assert.InDelta(t, 45.0, pos.LatitudeDeg, 1e-9)
	assert.InDelta(t, -90.0, pos.LongitudeDeg, 1e-9)
	assert.True(t, pos.HighRes)
}

func TestDecodeAirSpeed(t *testing.T) {
	d := NewDecoder(testLogger())

	rec := newRecord(nil)
	next := d.decodeAirSpeed([]byte{0x07, 0xB9}, 0, rec)
	require.Equal(t, 2, next)
	as := rec.Items[0].Value.(AirSpeed)
	assert.Equal(t, uint8(0), as.IM)
	require.NotNil(t, as.IASKt)
	assert.InDelta(t, 434.39941, *as.IASKt, 0.001)
	assert.Nil(t, as.Mach)

	rec = newRecord(nil)
	d.decodeAirSpeed([]byte{0x83, 0x20}, 0, rec)
	as = rec.Items[0].Value.(AirSpeed)
	assert.Equal(t, uint8(1), as.IM)
	require.NotNil(t, as.Mach)
	assert.InDelta(t, 0.8, *as.Mach, 1e-9)
	assert.Nil(t, as.IASKt)
}

func TestDecodeGeometricHeight(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want float64
	}{
		{"ten thousand feet", []byte{0x06, 0x40}, 10000.0},
		{"below ellipsoid", []byte{0xFF, 0xF0}, -100.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecord(nil)
			next := NewDecoder(testLogger()).decodeGeometricHeight(tt.raw, 0, rec)
			require.Equal(t, 2, next)
			gh := rec.Items[0].Value.(GeometricHeight)
			assert.InDelta(t, tt.want, gh.HeightFt, 1e-9)
		})
	}
}

func TestDecodeVerticalRate(t *testing.T) {
	d := NewDecoder(testLogger())
	dec := d.decoderMap[asterix.Cat021BarometricVerticalRate]

	rec := newRecord(nil)
	next := dec([]byte{0x00, 0xC0}, 0, rec)
	require.Equal(t, 2, next)
	vr := rec.Items[0].Value.(VerticalRate)
	assert.InDelta(t, 1200.0, vr.RateFtMin, 1e-9)

	rec = newRecord(nil)
	dec([]byte{0x7F, 0x40}, 0, rec)
	vr = rec.Items[0].Value.(VerticalRate)
	assert.InDelta(t, -1200.0, vr.RateFtMin, 1e-9)
}

func TestDecodeTargetReportDescriptor_GroundBit(t *testing.T) {
	rec := newRecord(nil)
	next := NewDecoder(testLogger()).decodeTargetReportDescriptor([]byte{0x21, 0x40}, 0, rec)
	require.Equal(t, 2, next)

	trd := rec.Items[0].Value.(TargetReportDescriptor)
	assert.Equal(t, uint8(1), trd.ATP)
	require.True(t, trd.HasExtension)
	assert.Equal(t, uint8(1), trd.GBS)
	assert.Equal(t, uint8(0), trd.SIM)
}

func TestDecodeSelectedAltitude(t *testing.T) {
	rec := newRecord(nil)
	next := NewDecoder(testLogger()).decodeSelectedAltitude([]byte{0xC1, 0x90}, 0, rec)
	require.Equal(t, 2, next)

	sa := rec.Items[0].Value.(SelectedAltitude)
	assert.Equal(t, uint8(1), sa.SAS)
	assert.Equal(t, uint8(2), sa.Source)
	assert.InDelta(t, 10000.0, sa.AltitudeFt, 1e-9)
}

func TestDecodeMetInformation(t *testing.T) {
	rec := newRecord(nil)
	raw := []byte{0xE0, 0x00, 0x19, 0x01, 0x0E, 0xFF, 0xCE}
	next := NewDecoder(testLogger()).decodeMetInformation(raw, 0, rec)
	require.Equal(t, 7, next)

	met := rec.Items[0].Value.(MetInformation)
	require.NotNil(t, met.WindSpeedKt)
	assert.InDelta(t, 25.0, *met.WindSpeedKt, 1e-9)
	require.NotNil(t, met.WindDirectionDeg)
	assert.InDelta(t, 270.0, *met.WindDirectionDeg, 1e-9)
	require.NotNil(t, met.TemperatureC)
	assert.InDelta(t, -12.5, *met.TemperatureC, 1e-9)
	assert.Nil(t, met.Turbulence)
}

func TestDecodeReservedExpansion(t *testing.T) {
	d := NewDecoder(testLogger())

	t.Run("without BPS", func(t *testing.T) {
		rec := newRecord(nil)
		next := d.decodeReservedExpansion([]byte{0x02, 0x00}, 0, rec)
		require.Equal(t, 2, next)
		re := rec.Items[0].Value.(ReservedExpansion)
		assert.Nil(t, re.BPS)
	})

	t.Run("truncated", func(t *testing.T) {
		rec := newRecord(nil)
		next := d.decodeReservedExpansion([]byte{0x06, 0x80, 0x08}, 0, rec)
		assert.Equal(t, 0, next)
		assert.Empty(t, rec.Items)
	})

	t.Run("zero length", func(t *testing.T) {
		rec := newRecord(nil)
		next := d.decodeReservedExpansion([]byte{0x00, 0x80}, 0, rec)
		assert.Equal(t, 0, next)
		assert.Empty(t, rec.Items)
	})
}

func TestDecodeSpecialPurpose(t *testing.T) {
	rec := newRecord(nil)
	next := NewDecoder(testLogger()).decodeSpecialPurpose([]byte{0x03, 0xAA, 0xBB, 0xCC}, 0, rec)
	assert.Equal(t, 3, next)
	assert.Empty(t, rec.Items)
}

func TestDecoderMapCoverage(t *testing.T) {
	d := NewDecoder(testLogger())
	unmapped := map[int]bool{34: true, 42: true}
	frns := make([]int, 0, 44)
	for frn := 1; frn <= 42; frn++ {
		frns = append(frns, frn)
	}
	frns = append(frns, 48, 49)

	for _, frn := range frns {
		typ, ok := asterix.Cat021.ItemTypeForFRN(frn)
		require.True(t, ok, "FRN %d", frn)
		if unmapped[frn] {
			assert.NotContains(t, d.decoderMap, typ, "FRN %d", frn)
		} else {
			assert.Contains(t, d.decoderMap, typ, "FRN %d", frn)
		}
	}
}
