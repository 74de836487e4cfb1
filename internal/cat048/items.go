package cat048

import (
	"encoding/binary"
	"fmt"

	"goasterix/internal/asterix"
	"goasterix/internal/bds"
)

const (
	rangeScaleNM     = 1.0 / 256.0      // I048/040 rho LSB
	azimuthScaleDeg  = 360.0 / 65536.0  // 16-bit angle LSB
	runlengthScale   = 360.0 / 8192.0   // plot runlength LSB
	azimuthDiffScale = 360.0 / 16384.0  // I048/130 APD LSB
	rangeDiffScaleNM = 1.0 / 256.0      // I048/130 RPD LSB
	speedScaleKt     = 3600.0 / 16384.0 // 2^-14 NM/s expressed in knots
)

func appendItem(rec *asterix.Record, typ asterix.ItemType, pos, length int, v any) {
	rec.Items = append(rec.Items, asterix.Item{
		Offset: pos,
		Length: length,
		Type:   typ,
		Value:  v,
	})
}

// decodeDataSource handles I048/010 Data Source Identifier.
func (d *Decoder) decodeDataSource(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	v := DataSource{
		SAC: data[pos],
		SIC: data[pos+1],
	}
	appendItem(rec, asterix.Cat048DataSource, pos, 2, v)
	return pos + 2
}

// decodeTimeOfDay handles I048/140 Time of Day, 1/128 s since midnight UTC.
func (d *Decoder) decodeTimeOfDay(data []byte, pos int, rec *asterix.Record) int {
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
	appendItem(rec, asterix.Cat048TimeOfDay, pos, 3, v)
	return pos + 3
}

// decodeTargetReport handles I048/020 Target Report Descriptor, a
// variable-length item of up to three octets.
func (d *Decoder) decodeTargetReport(data []byte, pos int, rec *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := variableLength(data, pos)
	if pos+length > len(data) {
		return pos
	}

	oct1 := data[pos]
	v := TargetReportDescriptor{
		TYP: (oct1 >> 5) & 0x07,
		SIM: (oct1 >> 4) & 0x01,
		RDP: (oct1 >> 3) & 0x01,
		SPI: (oct1 >> 2) & 0x01,
		RAB: (oct1 >> 1) & 0x01,
	}
	if length >= 2 && oct1&0x01 != 0 {
		oct2 := data[pos+1]
		v.HasExtension1 = true
		v.TST = (oct2 >> 7) & 0x01
		v.ERR = (oct2 >> 6) & 0x01
		v.XPP = (oct2 >> 5) & 0x01
		v.ME = (oct2 >> 4) & 0x01
		v.MI = (oct2 >> 3) & 0x01
		v.FOEFRI = (oct2 >> 1) & 0x03
	}
	if length >= 3 && data[pos+1]&0x01 != 0 {
		oct3 := data[pos+2]
		v.HasExtension2 = true
		v.ADSB = (oct3 >> 6) & 0x03
		v.SCN = (oct3 >> 4) & 0x03
		v.PAI = (oct3 >> 2) & 0x03
	}
	appendItem(rec, asterix.Cat048TargetReportDescriptor, pos, length, v)
	return pos + length
}

// decodeMeasuredPositionPolar handles I048/040 Measured Position in Slant
// Polar Coordinates. Rho LSB is 1/256 NM, theta LSB 360/2^16 deg.
func (d *Decoder) decodeMeasuredPositionPolar(data []byte, pos int, rec *asterix.Record) int {
	if pos+4 > len(data) {
		return pos
	}
	rho := binary.BigEndian.Uint16(data[pos:])
	theta := binary.BigEndian.Uint16(data[pos+2:])
	v := PolarPosition{
		RhoRaw:     rho,
		ThetaRaw:   theta,
		RangeNM:    float64(rho) * rangeScaleNM,
		AzimuthDeg: asterix.NormalizeAngle(float64(theta) * azimuthScaleDeg),
	}
	appendItem(rec, asterix.Cat048MeasuredPositionPolar, pos, 4, v)
	return pos + 4
}

// decodeMode3A handles I048/070 Mode-3/A Code in Octal Representation.
func (d *Decoder) decodeMode3A(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	oct1 := data[pos]
	raw := uint16(oct1&0x0F)<<8 | uint16(data[pos+1])
	v := Mode3A{
		V:   (oct1 >> 7) & 0x01,
		G:   (oct1 >> 6) & 0x01,
		L:   (oct1 >> 5) & 0x01,
		Raw: raw,
		Code: fmt.Sprintf("%d%d%d%d",
			(raw>>9)&0x07, (raw>>6)&0x07, (raw>>3)&0x07, raw&0x07),
	}
	appendItem(rec, asterix.Cat048Mode3ACode, pos, 2, v)
	return pos + 2
}

// decodeFlightLevel handles I048/090 Flight Level in Binary Representation.
// The level is a 14-bit two's complement count of quarter flight levels.
func (d *Decoder) decodeFlightLevel(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	oct1 := data[pos]
	raw := uint16(oct1&0x3F)<<8 | uint16(data[pos+1])
	level := float64(asterix.TwosComplement(uint64(raw), 14)) / 4.0
	v := FlightLevel{
		V:          (oct1 >> 7) & 0x01,
		G:          (oct1 >> 6) & 0x01,
		Raw:        raw,
		FL:         level,
		AltitudeFt: level * 100.0,
	}
	appendItem(rec, asterix.Cat048FlightLevel, pos, 2, v)
	return pos + 2
}

// decodeRadarPlot handles I048/130 Radar Plot Characteristics, a compound
// item whose primary octet announces one subfield octet per set bit.
func (d *Decoder) decodeRadarPlot(data []byte, pos int, rec *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := compoundLength(data, pos)
	if pos+length > len(data) {
		return pos
	}
	primary := data[pos]
	cur := pos + 1
	v := PlotCharacteristics{}
	if primary&0x80 != 0 && cur < pos+length {
		srl := float64(data[cur]) * runlengthScale
		v.SRL = &srl
		cur++
	}
	if primary&0x40 != 0 && cur < pos+length {
		srr := int(data[cur])
		v.SRR = &srr
		cur++
	}
	if primary&0x20 != 0 && cur < pos+length {
		sam := int(int8(data[cur]))
		v.SAM = &sam
		cur++
	}
	if primary&0x10 != 0 && cur < pos+length {
		prl := float64(data[cur]) * runlengthScale
		v.PRL = &prl
		cur++
	}
	if primary&0x08 != 0 && cur < pos+length {
		pam := int(int8(data[cur]))
		v.PAM = &pam
		cur++
	}
	if primary&0x04 != 0 && cur < pos+length {
		rpd := float64(int8(data[cur])) * rangeDiffScaleNM
		v.RPD = &rpd
		cur++
	}
	if primary&0x02 != 0 && cur < pos+length {
		apd := float64(int8(data[cur])) * azimuthDiffScale
		v.APD = &apd
		cur++
	}
	appendItem(rec, asterix.Cat048RadarPlotCharacteristics, pos, length, v)
	return pos + length
}

// decodeAircraftAddress handles I048/220 Aircraft Address, the 24-bit
// ICAO address assigned to the airframe.
func (d *Decoder) decodeAircraftAddress(data []byte, pos int, rec *asterix.Record) int {
	if pos+3 > len(data) {
		return pos
	}
	addr := uint32(data[pos])<<16 | uint32(data[pos+1])<<8 | uint32(data[pos+2])
	v := AircraftAddress{
		Address: addr,
		Hex:     fmt.Sprintf("%06X", addr),
	}
	appendItem(rec, asterix.Cat048AircraftAddress, pos, 3, v)
	return pos + 3
}

// decodeAircraftIdentification handles I048/240 Aircraft Identification,
// eight IA5 characters packed into six octets.
func (d *Decoder) decodeAircraftIdentification(data []byte, pos int, rec *asterix.Record) int {
	if pos+6 > len(data) {
		return pos
	}
	v := AircraftIdentification{
		Callsign: asterix.DecodeIA5(data[pos : pos+6]),
	}
	appendItem(rec, asterix.Cat048AircraftIdentification, pos, 6, v)
	return pos + 6
}

// decodeModeSMBData handles I048/250 BDS Register Data, a repetitive item
// of REP entries, each seven register octets plus a BDS code octet.
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
	appendItem(rec, asterix.Cat048ModeSMBData, pos, length, v)
	return pos + length
}

// decodeTrackNumber handles I048/161 Track Number, a 12-bit plot number.
func (d *Decoder) decodeTrackNumber(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	v := TrackNumber{
		Number: binary.BigEndian.Uint16(data[pos:]) & 0x0FFF,
	}
	appendItem(rec, asterix.Cat048TrackNumber, pos, 2, v)
	return pos + 2
}

// decodeTrackVelocityPolar handles I048/200 Calculated Track Velocity in
// Polar Representation. Speed LSB is 2^-14 NM/s.
func (d *Decoder) decodeTrackVelocityPolar(data []byte, pos int, rec *asterix.Record) int {
	if pos+4 > len(data) {
		return pos
	}
	speed := binary.BigEndian.Uint16(data[pos:])
	heading := binary.BigEndian.Uint16(data[pos+2:])
	v := PolarVelocity{
		SpeedRaw:      speed,
		HeadingRaw:    heading,
		GroundSpeedKt: float64(speed) * speedScaleKt,
		HeadingDeg:    asterix.NormalizeAngle(float64(heading) * azimuthScaleDeg),
	}
	appendItem(rec, asterix.Cat048TrackVelocityPolar, pos, 4, v)
	return pos + 4
}

// decodeTrackStatus handles I048/170 Track Status, a variable-length item.
func (d *Decoder) decodeTrackStatus(data []byte, pos int, rec *asterix.Record) int {
	if pos >= len(data) {
		return pos
	}
	length := variableLength(data, pos)
	if pos+length > len(data) {
		return pos
	}

	oct1 := data[pos]
	v := TrackStatus{
		CNF: (oct1 >> 7) & 0x01,
		RAD: (oct1 >> 5) & 0x03,
		DOU: (oct1 >> 4) & 0x01,
		MAH: (oct1 >> 3) & 0x01,
		CDM: (oct1 >> 1) & 0x03,
	}
	if length >= 2 {
		oct2 := data[pos+1]
		v.HasExtension = true
		v.TRE = (oct2 >> 7) & 0x01
		v.GHO = (oct2 >> 6) & 0x01
		v.SUP = (oct2 >> 5) & 0x01
		v.TCC = (oct2 >> 4) & 0x01
	}
	appendItem(rec, asterix.Cat048TrackStatus, pos, length, v)
	return pos + length
}

// decodeCommunicationsACAS handles I048/230 Communications/ACAS Capability
// and Flight Status.
func (d *Decoder) decodeCommunicationsACAS(data []byte, pos int, rec *asterix.Record) int {
	if pos+2 > len(data) {
		return pos
	}
	oct1 := data[pos]
	oct2 := data[pos+1]
	com := (oct1 >> 5) & 0x07
	stat := (oct1 >> 2) & 0x07
	v := CommunicationsACAS{
		COM:             com,
		COMDescription:  comDescriptions[com],
		STAT:            stat,
		STATDescription: statDescriptions[stat],
		SI:              (oct1 >> 1) & 0x01,
		MSSC:            (oct2 >> 7) & 0x01,
		ARC:             (oct2 >> 6) & 0x01,
		AIC:             (oct2 >> 5) & 0x01,
		B1A:             (oct2 >> 4) & 0x01,
		B1B:             oct2 & 0x0F,
	}
	appendItem(rec, asterix.Cat048CommunicationsACAS, pos, 2, v)
	return pos + 2
}
