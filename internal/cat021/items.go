package cat021

import (
	"encoding/binary"
	"fmt"

	"goasterix/internal/asterix"
	"goasterix/internal/bds"
)

const (
	positionScaleDeg     = 180.0 / 8388608.0    // 24-bit WGS-84 LSB (180/2^23)
	positionHighScaleDeg = 180.0 / 1073741824.0 // 32-bit WGS-84 LSB (180/2^30)
	angleScaleDeg        = 360.0 / 65536.0      // 16-bit angle LSB
	airspeedScaleKt      = 3600.0 / 16384.0     // 2^-14 NM/s expressed in knots
	machScale            = 0.001
	geoHeightScaleFt     = 6.25
	rollScaleDeg         = 0.01
	verticalRateScale    = 6.25 // ft/min LSB
	selectedAltScaleFt   = 25.0
	temperatureScaleC    = 0.25
	servicePeriodScaleS  = 0.5
	pressureScaleHPa     = 0.1
	pressureOffsetHPa    = 800.0
)

func appendItem(rec *asterix.Record, typ asterix.ItemType, pos, length int, v any) {
	rec.Items = append(rec.Items, asterix.Item{
		Offset: pos,
		Length: length,
		Type:   typ,
		Value:  v,
	})
}

// decodeDataSource handles I021/010 Data Source Identification.
func (d *Decoder) decodeDataSource(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	v := DataSource{
		SAC: data[pos],
		SIC: data[pos+1],
	}
	appendItem(rec, asterix.Cat021DataSource, pos, 2, v)
	return pos + 2
}

// decodeTargetReportDescriptor handles I021/040, a variable-length item.
func (d *Decoder) decodeTargetReportDescriptor(data []byte, pos int, rec *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := variableLength(data, pos)
	if pos+length > len(data) {
		return pos
	}

	oct1 := data[pos]
	v := TargetReportDescriptor{
		ATP: (oct1 >> 5) & 0x07,
		ARC: (oct1 >> 3) & 0x03,
		RC:  (oct1 >> 2) & 0x01,
		RAB: (oct1 >> 1) & 0x01,
	}
	if length >= 2 {
		oct2 := data[pos+1]
		v.HasExtension = true
		v.DCR = (oct2 >> 7) & 0x01
		v.GBS = (oct2 >> 6) & 0x01
		v.SIM = (oct2 >> 5) & 0x01
		v.TST = (oct2 >> 4) & 0x01
		v.SAA = (oct2 >> 3) & 0x01
		v.CL = (oct2 >> 1) & 0x03
	}
	appendItem(rec, asterix.Cat021TargetReportDescriptor, pos, length, v)
	return pos + length
}

// decodeTrackNumber handles I021/161.
func (d *Decoder) decodeTrackNumber(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	v := TrackNumber{
		Number: binary.BigEndian.Uint16(data[pos:]) & 0x0FFF,
	}
	appendItem(rec, asterix.Cat021TrackNumber, pos, 2, v)
	return pos + 2
}

// decodeServiceIdentification handles I021/015.
func (d *Decoder) decodeServiceIdentification(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	appendItem(rec, asterix.Cat021ServiceIdentification, pos, 1, ServiceIdentification{ID: data[pos]})
	return pos + 1
}

// timeDecoder returns a decoder for one of the 3-octet time items, all
// counted in 1/128 s since midnight UTC.
func (d *Decoder) timeDecoder(typ asterix.ItemType) itemDecoder {
	return func(data []byte, pos int, rec *asterix.Record) int {
		if pos+3 > len(data) {
			return pos
		}
		raw := uint32(data[pos])<<16 | uint32(data[pos+1])<<8 | uint32(data[pos+2])
		seconds := float64(raw) / 128.0
		v := TimeOfDay{
			Raw:          raw,
			TotalSeconds: seconds,
			TimeString:   asterix.TimeOfDayString(seconds),
		}
		appendItem(rec, typ, pos, 3, v)
		return pos + 3
	}
}

// decodePositionWGS84 handles I021/130, two signed 24-bit coordinates
// with an LSB of 180/2^23 degrees.
func (d *Decoder) decodePositionWGS84(data []byte, pos int, rec *asterix.Record) int {
	if pos+6 > len(data) {
		return pos
	}
	lat := uint64(data[pos])<<16 | uint64(data[pos+1])<<8 | uint64(data[pos+2])
	lon := uint64(data[pos+3])<<16 | uint64(data[pos+4])<<8 | uint64(data[pos+5])
	v := Position{
		LatitudeDeg:  float64(asterix.TwosComplement(lat, 24)) * positionScaleDeg,
		LongitudeDeg: float64(asterix.TwosComplement(lon, 24)) * positionScaleDeg,
	}
	appendItem(rec, asterix.Cat021PositionWGS84, pos, 6, v)
	return pos + 6
}

// decodePositionWGS84HighRes handles I021/131, two signed 32-bit
// coordinates with an LSB of 180/2^30 degrees.
func (d *Decoder) decodePositionWGS84HighRes(data []byte, pos int, rec *asterix.Record) int {
	if pos+8 > len(data) {
		return pos
	}
	lat := int32(binary.BigEndian.Uint32(data[pos:]))
	lon := int32(binary.BigEndian.Uint32(data[pos+4:]))
	v := Position{
		LatitudeDeg:  float64(lat) * positionHighScaleDeg,
		LongitudeDeg: float64(lon) * positionHighScaleDeg,
		HighRes:      true,
	}
	appendItem(rec, asterix.Cat021PositionWGS84HighRes, pos, 8, v)
	return pos + 8
}

// decodeAirSpeed handles I021/150. The IM bit selects the unit of the
// 15-bit speed field: IAS at 2^-14 NM/s or Mach at 0.001.
func (d *Decoder) decodeAirSpeed(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := binary.BigEndian.Uint16(data[pos:])
	v := AirSpeed{IM: uint8(raw >> 15)}
	speed := float64(raw & 0x7FFF)
	if v.IM == 0 {
		ias := speed * airspeedScaleKt
		v.IASKt = &ias
	} else {
		mach := speed * machScale
		v.Mach = &mach
	}
	appendItem(rec, asterix.Cat021AirSpeed, pos, 2, v)
	return pos + 2
}

// decodeTrueAirSpeed handles I021/151, knots with a range-exceeded bit.
func (d *Decoder) decodeTrueAirSpeed(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := binary.BigEndian.Uint16(data[pos:])
	v := TrueAirSpeed{
		RE:      uint8(raw >> 15),
		SpeedKt: float64(raw & 0x7FFF),
	}
	appendItem(rec, asterix.Cat021TrueAirSpeed, pos, 2, v)
	return pos + 2
}

// decodeTargetAddress handles I021/080, the 24-bit ICAO address.
func (d *Decoder) decodeTargetAddress(data []byte, pos int, rec *asterix.Record) int {
	if pos+3 > len(data) {
		return pos
	}
	addr := uint32(data[pos])<<16 | uint32(data[pos+1])<<8 | uint32(data[pos+2])
	v := TargetAddress{
		Address: addr,
		Hex:     fmt.Sprintf("%06X", addr),
	}
	appendItem(rec, asterix.Cat021TargetAddress, pos, 3, v)
	return pos + 3
}

// decodeGeometricHeight handles I021/140, signed 16 bits at 6.25 ft.
func (d *Decoder) decodeGeometricHeight(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := int16(binary.BigEndian.Uint16(data[pos:]))
	v := GeometricHeight{
		HeightFt: float64(raw) * geoHeightScaleFt,
	}
	appendItem(rec, asterix.Cat021GeometricHeight, pos, 2, v)
	return pos + 2
}

// decodeMOPSVersion handles I021/210.
func (d *Decoder) decodeMOPSVersion(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	oct := data[pos]
	v := MOPSVersion{
		VNS: (oct >> 6) & 0x01,
		VN:  (oct >> 3) & 0x07,
		LTT: oct & 0x07,
	}
	appendItem(rec, asterix.Cat021MOPSVersion, pos, 1, v)
	return pos + 1
}

// decodeMode3A handles I021/070, the squawk in the low 12 bits.
func (d *Decoder) decodeMode3A(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := binary.BigEndian.Uint16(data[pos:]) & 0x0FFF
	v := Mode3A{
		Raw: raw,
		Code: fmt.Sprintf("%d%d%d%d",
			(raw>>9)&0x07, (raw>>6)&0x07, (raw>>3)&0x07, raw&0x07),
	}
	appendItem(rec, asterix.Cat021Mode3ACode, pos, 2, v)
	return pos + 2
}

// decodeRollAngle handles I021/230, signed 16 bits at 0.01 degrees.
func (d *Decoder) decodeRollAngle(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := int16(binary.BigEndian.Uint16(data[pos:]))
	v := RollAngle{
		AngleDeg: float64(raw) * rollScaleDeg,
	}
	appendItem(rec, asterix.Cat021RollAngle, pos, 2, v)
	return pos + 2
}

// decodeFlightLevel handles I021/145, a signed count of quarter flight
// levels.
func (d *Decoder) decodeFlightLevel(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := int16(binary.BigEndian.Uint16(data[pos:]))
	level := float64(raw) / 4.0
	v := FlightLevel{
		FL:         level,
		AltitudeFt: level * 100.0,
	}
	appendItem(rec, asterix.Cat021FlightLevel, pos, 2, v)
	return pos + 2
}

// decodeMagneticHeading handles I021/152.
func (d *Decoder) decodeMagneticHeading(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := binary.BigEndian.Uint16(data[pos:])
	v := MagneticHeading{
		HeadingDeg: asterix.NormalizeAngle(float64(raw) * angleScaleDeg),
	}
	appendItem(rec, asterix.Cat021MagneticHeading, pos, 2, v)
	return pos + 2
}

// decodeTargetStatus handles I021/200.
func (d *Decoder) decodeTargetStatus(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	oct := data[pos]
	v := TargetStatus{
		ICF:  (oct >> 7) & 0x01,
		LNAV: (oct >> 6) & 0x01,
		PS:   (oct >> 3) & 0x07,
		SS:   oct & 0x03,
	}
	appendItem(rec, asterix.Cat021TargetStatus, pos, 1, v)
	return pos + 1
}

// rateDecoder returns a decoder for the 2-octet vertical rate items, a
// signed 15-bit field at 6.25 ft/min plus a range-exceeded bit.
func (d *Decoder) rateDecoder(typ asterix.ItemType) itemDecoder {
	return func(data []byte, pos int, rec *asterix.Record) int {
		if pos+2 > len(data) {
			return pos
		}
		raw := binary.BigEndian.Uint16(data[pos:])
		v := VerticalRate{
			RE:        uint8(raw >> 15),
			RateFtMin: float64(asterix.TwosComplement(uint64(raw&0x7FFF), 15)) * verticalRateScale,
		}
		appendItem(rec, typ, pos, 2, v)
		return pos + 2
	}
}

// decodeGroundVector handles I021/160, ground speed at 2^-14 NM/s and
// track angle at 360/2^16 degrees.
func (d *Decoder) decodeGroundVector(data []byte, pos int, rec *asterix.Record) int {
	if pos+4 > len(data) {
		return pos
	}
	speed := binary.BigEndian.Uint16(data[pos:])
	angle := binary.BigEndian.Uint16(data[pos+2:])
	v := GroundVector{
		RE:            uint8(speed >> 15),
		GroundSpeedKt: float64(speed&0x7FFF) * airspeedScaleKt,
		TrackAngleDeg: asterix.NormalizeAngle(float64(angle) * angleScaleDeg),
	}
	appendItem(rec, asterix.Cat021AirborneGroundVector, pos, 4, v)
	return pos + 4
}

// decodeTargetIdentification handles I021/170, eight IA5 characters
// packed into six octets.
func (d *Decoder) decodeTargetIdentification(data []byte, pos int, rec *asterix.Record) int {
	if pos+6 > len(data) {
		return pos
	}
	v := TargetIdentification{
		Callsign: asterix.DecodeIA5(data[pos : pos+6]),
	}
	appendItem(rec, asterix.Cat021TargetIdentification, pos, 6, v)
	return pos + 6
}

// decodeEmitterCategory handles I021/020.
func (d *Decoder) decodeEmitterCategory(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	appendItem(rec, asterix.Cat021EmitterCategory, pos, 1, EmitterCategory{ECAT: data[pos]})
	return pos + 1
}

// decodeMetInformation handles I021/220, a compound item with wind
// speed, wind direction, temperature and turbulence subfields.
func (d *Decoder) decodeMetInformation(data []byte, pos int, rec *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	primary := data[pos]
	length := 1
	if primary&0x80 != 0 {
		length += 2
	}
	if primary&0x40 != 0 {
		length += 2
	}
	if primary&0x20 != 0 {
		length += 2
	}
	if primary&0x10 != 0 {
		length++
	}
	if pos+length > len(data) {
		return pos
	}

	cur := pos + 1
	v := MetInformation{}
	if primary&0x80 != 0 {
		ws := float64(binary.BigEndian.Uint16(data[cur:]))
		v.WindSpeedKt = &ws
		cur += 2
	}
	if primary&0x40 != 0 {
		wd := float64(binary.BigEndian.Uint16(data[cur:]))
		v.WindDirectionDeg = &wd
		cur += 2
	}
	if primary&0x20 != 0 {
		tmp := float64(int16(binary.BigEndian.Uint16(data[cur:]))) * temperatureScaleC
		v.TemperatureC = &tmp
		cur += 2
	}
	if primary&0x10 != 0 {
		trb := data[cur]
		v.Turbulence = &trb
	}
	appendItem(rec, asterix.Cat021MetInformation, pos, length, v)
	return pos + length
}

// decodeSelectedAltitude handles I021/146, a signed 13-bit altitude at
// 25 ft with source bits.
func (d *Decoder) decodeSelectedAltitude(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := binary.BigEndian.Uint16(data[pos:])
	v := SelectedAltitude{
		SAS:        uint8(raw >> 15),
		Source:     uint8(raw>>13) & 0x03,
		AltitudeFt: float64(asterix.TwosComplement(uint64(raw&0x1FFF), 13)) * selectedAltScaleFt,
	}
	appendItem(rec, asterix.Cat021SelectedAltitude, pos, 2, v)
	return pos + 2
}

// decodeFinalStateSelectedAltitude handles I021/148.
func (d *Decoder) decodeFinalStateSelectedAltitude(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	raw := binary.BigEndian.Uint16(data[pos:])
	v := FinalStateSelectedAltitude{
		MV:         uint8(raw >> 15),
		AH:         uint8(raw>>14) & 0x01,
		AM:         uint8(raw>>13) & 0x01,
		AltitudeFt: float64(asterix.TwosComplement(uint64(raw&0x1FFF), 13)) * selectedAltScaleFt,
	}
	appendItem(rec, asterix.Cat021FinalStateSelectedAltitude, pos, 2, v)
	return pos + 2
}

// decodeServiceManagement handles I021/016, the report period at 0.5 s.
func (d *Decoder) decodeServiceManagement(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	v := ServiceManagement{
		PeriodS: float64(data[pos]) * servicePeriodScaleS,
	}
	appendItem(rec, asterix.Cat021ServiceManagement, pos, 1, v)
	return pos + 1
}

// decodeOperationalStatus handles I021/008.
func (d *Decoder) decodeOperationalStatus(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	oct := data[pos]
	v := OperationalStatus{
		RA:      (oct >> 7) & 0x01,
		TC:      (oct >> 5) & 0x03,
		TS:      (oct >> 4) & 0x01,
		ARV:     (oct >> 3) & 0x01,
		CDTIA:   (oct >> 2) & 0x01,
		NotTCAS: (oct >> 1) & 0x01,
		SA:      oct & 0x01,
	}
	appendItem(rec, asterix.Cat021AircraftOperationalStatus, pos, 1, v)
	return pos + 1
}

// decodeMessageAmplitude handles I021/132, signed dBm.
func (d *Decoder) decodeMessageAmplitude(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	v := MessageAmplitude{
		AmplitudeDBm: int(int8(data[pos])),
	}
	appendItem(rec, asterix.Cat021MessageAmplitude, pos, 1, v)
	return pos + 1
}

// decodeModeSMBData handles I021/250, a repetitive item of REP entries,
// each seven register octets plus a BDS code octet.
func (d *Decoder) decodeModeSMBData(data []byte, pos int, rec *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	rep := data[pos]
	length := 1 + int(rep)*8
	if pos+length > len(data) {
		return pos
	}
	v := ModeSMBData{Rep: rep}
	cur := pos + 1
	for i := 0; i < int(rep); i++ {
		payload := data[cur : cur+7]
		code := data[cur+7]
		v.Registers = append(v.Registers, bds.Decode(code>>4, code&0x0F, payload))
		cur += 8
	}
	appendItem(rec, asterix.Cat021ModeSMBData, pos, length, v)
	return pos + length
}

// decodeReceiverID handles I021/400.
func (d *Decoder) decodeReceiverID(data []byte, pos int, rec *asterix.Record) int {
	if pos+1 > len(data) {
		return pos
	}
	appendItem(rec, asterix.Cat021ReceiverID, pos, 1, ReceiverID{ID: data[pos]})
	return pos + 1
}

// decodeReservedExpansion handles the I021/RE field. The first octet is
// the total field length including itself; an item indicator octet then
// announces the barometric pressure setting subfield in its top bit.
func (d *Decoder) decodeReservedExpansion(data []byte, pos int, rec *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := int(data[pos])
	if length < 1 || pos+length > len(data) {
		return pos
	}
	v := ReservedExpansion{Length: length}
	if length >= 4 && data[pos+1]&0x80 != 0 {
		raw := binary.BigEndian.Uint16(data[pos+2:]) & 0x0FFF
		bps := float64(raw)*pressureScaleHPa + pressureOffsetHPa
		v.BPS = &bps
	}
	appendItem(rec, asterix.Cat021ReservedExpansion, pos, length, v)
	return pos + length
}

// decodeSpecialPurpose advances over the I021/SP field without
// extracting it. The first octet is the total length including itself.
func (d *Decoder) decodeSpecialPurpose(data []byte, pos int, _ *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := int(data[pos])
	if length < 1 || pos+length > len(data) {
		return pos
	}
	return pos + length
}
