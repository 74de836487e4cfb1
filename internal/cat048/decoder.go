// Package cat048 decodes ASTERIX Category 048 monoradar target reports.
package cat048

import (
	"math/bits"

	"github.com/sirupsen/logrus"

	"goasterix/internal/asterix"
)

// itemDecoder consumes one data item starting at pos and returns the new
// cursor. A decoder that finds fewer bytes than the item needs returns pos
// unchanged and appends nothing.
type itemDecoder func(data []byte, pos int, rec *asterix.Record) int

// Decoder decodes CAT048 records item by item in UAP order.
type Decoder struct {
	logger     *logrus.Logger
	decoderMap map[asterix.ItemType]itemDecoder
}

// NewDecoder creates a CAT048 decoder writing diagnostics to logger.
func NewDecoder(logger *logrus.Logger) *Decoder {
	d := &Decoder{logger: logger}
	d.decoderMap = map[asterix.ItemType]itemDecoder{
		asterix.Cat048DataSource:               d.decodeDataSource,
		asterix.Cat048TimeOfDay:                d.decodeTimeOfDay,
		asterix.Cat048TargetReportDescriptor:   d.decodeTargetReport,
		asterix.Cat048MeasuredPositionPolar:    d.decodeMeasuredPositionPolar,
		asterix.Cat048Mode3ACode:               d.decodeMode3A,
		asterix.Cat048FlightLevel:              d.decodeFlightLevel,
		asterix.Cat048RadarPlotCharacteristics: d.decodeRadarPlot,
		asterix.Cat048AircraftAddress:          d.decodeAircraftAddress,
		asterix.Cat048AircraftIdentification:   d.decodeAircraftIdentification,
		asterix.Cat048ModeSMBData:              d.decodeModeSMBData,
		asterix.Cat048TrackNumber:              d.decodeTrackNumber,
		asterix.Cat048TrackVelocityPolar:       d.decodeTrackVelocityPolar,
		asterix.Cat048TrackStatus:              d.decodeTrackStatus,
		asterix.Cat048CommunicationsACAS:       d.decodeCommunicationsACAS,

		// Items carried by the radar but not extracted. Their decoders
		// only advance the cursor so later items stay aligned.
		asterix.Cat048CalculatedPositionCartesian: skipFixed(4), // I048/042
		asterix.Cat048TrackQuality:                skipFixed(4), // I048/210
		asterix.Cat048WarningError:                skipVariable, // I048/030
		asterix.Cat048Mode3AConfidence:            skipFixed(2), // I048/080
		asterix.Cat048ModeCConfidence:             skipFixed(4), // I048/100
		asterix.Cat048Height3D:                    skipFixed(2), // I048/110
		asterix.Cat048RadialDopplerSpeed:          skipCompound, // I048/120
	}
	return d
}

// Decode parses rec.RawData and fills rec.Items. Items are appended in
// FSPEC order. An item whose type has no decoder aborts the remaining
// items of the record because its length is unknown.
func (d *Decoder) Decode(rec *asterix.Record) {
	refs, dataStart := asterix.ParseFSPEC(rec.RawData, asterix.Cat048)
	pos := dataStart
	for _, ref := range refs {
		dec, ok := d.decoderMap[ref.Type]
		if !ok {
			d.logger.WithFields(logrus.Fields{
				"item":   ref.Type.String(),
				"frn":    ref.FRN,
				"offset": rec.BlockOffset,
			}).Warn("No decoder for data item, skipping rest of record")
			break
		}
		before := len(rec.Items)
		pos = dec(rec.RawData, pos, rec)
		if len(rec.Items) > before {
			rec.Items[len(rec.Items)-1].FRN = ref.FRN
		}
	}
	d.logger.WithFields(logrus.Fields{
		"offset": rec.BlockOffset,
		"items":  len(rec.Items),
	}).Debug("Decoded CAT048 record")
}

// variableLength walks FX-extended octets starting at pos and returns the
// item length in bytes. At least one octet is counted.
func variableLength(data []byte, pos int) int {
	length := 1
	for pos+length-1 < len(data) && data[pos+length-1]&0x01 != 0 {
		length++
	}
	return length
}

// compoundLength returns the length of a compound item whose primary
// subfield octet announces one subfield octet per set bit 7..1.
func compoundLength(data []byte, pos int) int {
	primary := data[pos]
	return 1 + bits.OnesCount8(primary&0xFE)
}

// skipFixed returns a decoder that advances the cursor over a fixed-length
// item without extracting it.
func skipFixed(n int) itemDecoder {
	return func(data []byte, pos int, _ *asterix.Record) int {
		if pos+n > len(data) {
			return pos
		}
		return pos + n
	}
}

// skipVariable advances the cursor over an FX-extended item.
func skipVariable(data []byte, pos int, _ *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := variableLength(data, pos)
	if pos+length > len(data) {
		return pos
	}
	return pos + length
}

// skipCompound advances the cursor over a compound item.
func skipCompound(data []byte, pos int, _ *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := compoundLength(data, pos)
	if pos+length > len(data) {
		return pos
	}
	return pos + length
}
