// Package cat021 decodes ASTERIX Category 021 ADS-B target reports.
package cat021

import (
	"github.com/sirupsen/logrus"

	"goasterix/internal/asterix"
)

// itemDecoder consumes one data item starting at pos and returns the new
// cursor. A decoder that finds fewer bytes than the item needs returns pos
// unchanged and appends nothing.
type itemDecoder func(data []byte, pos int, rec *asterix.Record) int

// Decoder decodes CAT021 records item by item in UAP order.
type Decoder struct {
	logger     *logrus.Logger
	decoderMap map[asterix.ItemType]itemDecoder
}

// NewDecoder creates a CAT021 decoder writing diagnostics to logger.
// Trajectory Intent (I021/110) and Data Ages (I021/295) have no decoder;
// a record announcing either stops after the preceding item because the
// unparsed item's length is unknown.
func NewDecoder(logger *logrus.Logger) *Decoder {
	d := &Decoder{logger: logger}
	d.decoderMap = map[asterix.ItemType]itemDecoder{
		asterix.Cat021DataSource:                 d.decodeDataSource,
		asterix.Cat021TargetReportDescriptor:     d.decodeTargetReportDescriptor,
		asterix.Cat021TrackNumber:                d.decodeTrackNumber,
		asterix.Cat021ServiceIdentification:      d.decodeServiceIdentification,
		asterix.Cat021TimeApplicabilityPosition:  d.timeDecoder(asterix.Cat021TimeApplicabilityPosition),
		asterix.Cat021PositionWGS84:              d.decodePositionWGS84,
		asterix.Cat021PositionWGS84HighRes:       d.decodePositionWGS84HighRes,
		asterix.Cat021TimeApplicabilityVelocity:  d.timeDecoder(asterix.Cat021TimeApplicabilityVelocity),
		asterix.Cat021AirSpeed:                   d.decodeAirSpeed,
		asterix.Cat021TrueAirSpeed:               d.decodeTrueAirSpeed,
		asterix.Cat021TargetAddress:              d.decodeTargetAddress,
		asterix.Cat021TimeReceptionPosition:      d.timeDecoder(asterix.Cat021TimeReceptionPosition),
		asterix.Cat021TimeReceptionVelocity:      d.timeDecoder(asterix.Cat021TimeReceptionVelocity),
		asterix.Cat021GeometricHeight:            d.decodeGeometricHeight,
		asterix.Cat021MOPSVersion:                d.decodeMOPSVersion,
		asterix.Cat021Mode3ACode:                 d.decodeMode3A,
		asterix.Cat021RollAngle:                  d.decodeRollAngle,
		asterix.Cat021FlightLevel:                d.decodeFlightLevel,
		asterix.Cat021MagneticHeading:            d.decodeMagneticHeading,
		asterix.Cat021TargetStatus:               d.decodeTargetStatus,
		asterix.Cat021BarometricVerticalRate:     d.rateDecoder(asterix.Cat021BarometricVerticalRate),
		asterix.Cat021GeometricVerticalRate:      d.rateDecoder(asterix.Cat021GeometricVerticalRate),
		asterix.Cat021AirborneGroundVector:       d.decodeGroundVector,
		asterix.Cat021TimeReportTransmission:     d.timeDecoder(asterix.Cat021TimeReportTransmission),
		asterix.Cat021TargetIdentification:       d.decodeTargetIdentification,
		asterix.Cat021EmitterCategory:            d.decodeEmitterCategory,
		asterix.Cat021MetInformation:             d.decodeMetInformation,
		asterix.Cat021SelectedAltitude:           d.decodeSelectedAltitude,
		asterix.Cat021FinalStateSelectedAltitude: d.decodeFinalStateSelectedAltitude,
		asterix.Cat021ServiceManagement:          d.decodeServiceManagement,
		asterix.Cat021AircraftOperationalStatus:  d.decodeOperationalStatus,
		asterix.Cat021MessageAmplitude:           d.decodeMessageAmplitude,
		asterix.Cat021ModeSMBData:                d.decodeModeSMBData,
		asterix.Cat021ReceiverID:                 d.decodeReceiverID,
		asterix.Cat021ReservedExpansion:          d.decodeReservedExpansion,
		asterix.Cat021SpecialPurpose:             d.decodeSpecialPurpose,

		// Items carried by the stream but not extracted. Their decoders
		// only advance the cursor so later items stay aligned.
		asterix.Cat021TimeReceptionPositionHigh: skipFixed(4), // I021/074
		asterix.Cat021TimeReceptionVelocityHigh: skipFixed(4), // I021/076
		asterix.Cat021QualityIndicators:         skipVariable, // I021/090
		asterix.Cat021TrackAngleRate:            skipFixed(2), // I021/165
		asterix.Cat021SurfaceCapabilities:       skipVariable, // I021/271
		asterix.Cat021ACASResolutionAdvisory:    skipFixed(7), // I021/260
	}
	return d
}

// Decode parses rec.RawData and fills rec.Items. Items are appended in
// FSPEC order. An item whose type has no decoder aborts the remaining
// items of the record because its length is unknown.
func (d *Decoder) Decode(rec *asterix.Record) {
	refs, dataStart := asterix.ParseFSPEC(rec.RawData, asterix.Cat021)
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
	}).Debug("Decoded CAT021 record")
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
