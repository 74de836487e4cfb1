package bds

import "goasterix/internal/asterix"

// Field scales
const (
	altitudeScaleFt  = 16.0        // BDS 4.0 selected altitudes, ft per unit
	pressureScaleMb  = 0.1         // BDS 4.0 barometric pressure, mb per unit
	pressureOffsetMb = 800.0       // BDS 4.0 barometric pressure base
	rollScaleDeg     = 45.0 / 256  // BDS 5.0 roll angle
	trackScaleDeg    = 90.0 / 512  // BDS 5.0 true track / BDS 6.0 heading
	speedScaleKt     = 2.0         // BDS 5.0 ground speed / true airspeed
	turnScaleDegS    = 8.0 / 256   // BDS 5.0 track angle rate
	machScale        = 2.048 / 512 // BDS 6.0 Mach
	rateScaleFtMin   = 32.0        // BDS 6.0 vertical rates
)

// Decode interprets a 7-byte Mode S MB payload as the register named by the
// BDS code nibbles. Unrecognized codes yield a pass-through Register carrying
// only the code identity.
func Decode(bds1, bds2 uint8, payload []byte) *Register {
	reg := &Register{BDS1: bds1, BDS2: bds2}
	if len(payload) < 7 {
		return reg
	}

	var bits uint64
	for i := 0; i < 7; i++ {
		bits = bits<<8 | uint64(payload[i])
	}

	switch {
	case bds1 == 4 && bds2 == 0:
		decode40(bits, reg)
	case bds1 == 5 && bds2 == 0:
		decode50(bits, reg)
	case bds1 == 6 && bds2 == 0:
		decode60(bits, reg)
	}

	return reg
}

// statusBit reports the gate bit at the 1-based position counted from the
// register's least-significant bit.
func statusBit(bits uint64, pos int) bool {
	return bits>>(uint(pos)-1)&1 == 1
}

// uField extracts width unsigned bits whose least-significant bit sits at
// the 1-based position lsb.
func uField(bits uint64, lsb, width int) uint64 {
	return bits >> (uint(lsb) - 1) & (1<<uint(width) - 1)
}

// sField extracts width bits at lsb as a two's-complement signed value.
func sField(bits uint64, lsb, width int) int64 {
	return asterix.TwosComplement(uField(bits, lsb, width), width)
}

// decode40 fills the BDS 4.0 selected vertical intention fields. Layout:
// status 56 + 12-bit MCP/FCU altitude (55-44), status 43 + 12-bit FMS
// altitude (42-31), status 30 + 12-bit barometric pressure (29-18).
func decode40(bits uint64, reg *Register) {
	if statusBit(bits, 56) {
		reg.MCPSelectedAltitude = fptr(float64(uField(bits, 44, 12)) * altitudeScaleFt)
	}
	if statusBit(bits, 43) {
		reg.FMSSelectedAltitude = fptr(float64(uField(bits, 31, 12)) * altitudeScaleFt)
	}
	if statusBit(bits, 30) {
		reg.BarometricPressure = fptr(float64(uField(bits, 18, 12))*pressureScaleMb + pressureOffsetMb)
	}
}

// decode50 fills the BDS 5.0 track and turn fields. Layout: status 56 +
// signed 10-bit roll (55-46), status 45 + signed 11-bit true track (44-34),
// status 33 + 10-bit ground speed (32-23), status 22 + signed 10-bit track
// angle rate (21-12), status 11 + 10-bit true airspeed (10-1).
func decode50(bits uint64, reg *Register) {
	if statusBit(bits, 56) {
		reg.RollAngle = fptr(float64(sField(bits, 46, 10)) * rollScaleDeg)
	}
	if statusBit(bits, 45) {
		reg.TrueTrackAngle = fptr(float64(sField(bits, 34, 11)) * trackScaleDeg)
	}
	if statusBit(bits, 33) {
		reg.GroundSpeed = fptr(float64(uField(bits, 23, 10)) * speedScaleKt)
	}
	if statusBit(bits, 22) {
		reg.TrackAngleRate = fptr(float64(sField(bits, 12, 10)) * turnScaleDegS)
	}
	if statusBit(bits, 11) {
		reg.TrueAirspeed = fptr(float64(uField(bits, 1, 10)) * speedScaleKt)
	}
}

// decode60 fills the BDS 6.0 heading and speed fields. Layout: status 56 +
// signed 11-bit magnetic heading (55-45), status 44 + 10-bit indicated
// airspeed (43-34), status 33 + 10-bit Mach (32-23), status 22 + signed
// 10-bit barometric altitude rate (21-12), status 11 + signed 10-bit
// inertial vertical velocity (10-1).
func decode60(bits uint64, reg *Register) {
	if statusBit(bits, 56) {
		reg.MagneticHeading = fptr(float64(sField(bits, 45, 11)) * trackScaleDeg)
	}
	if statusBit(bits, 44) {
		reg.IndicatedAirspeed = fptr(float64(uField(bits, 34, 10)))
	}
	if statusBit(bits, 33) {
		reg.Mach = fptr(float64(uField(bits, 23, 10)) * machScale)
	}
	if statusBit(bits, 22) {
		reg.BarometricAltitudeRate = fptr(float64(sField(bits, 12, 10)) * rateScaleFtMin)
	}
	if statusBit(bits, 11) {
		reg.InertialVerticalVelocity = fptr(float64(sField(bits, 1, 10)) * rateScaleFtMin)
	}
}

func fptr(v float64) *float64 {
	return &v
}
