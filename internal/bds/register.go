// Package bds decodes Mode S Comm-B Data Selector registers carried inside
// ASTERIX Mode S MB Data items. Registers 4.0 (selected vertical intention),
// 5.0 (track and turn) and 6.0 (heading and speed) are decoded; any other
// register passes through with its code identity only.
package bds

import "fmt"

// Register is one 56-bit Mode S register. Every sub-field is gated by its
// own status bit: a nil pointer means the transponder did not report the
// field, which is distinct from a reported zero.
type Register struct {
	BDS1 uint8
	BDS2 uint8

	// BDS 4.0 selected vertical intention
	MCPSelectedAltitude *float64 // ft
	FMSSelectedAltitude *float64 // ft
	BarometricPressure  *float64 // mb

	// BDS 5.0 track and turn report
	RollAngle      *float64 // deg, negative left wing down
	TrueTrackAngle *float64 // deg
	GroundSpeed    *float64 // kt
	TrackAngleRate *float64 // deg/s
	TrueAirspeed   *float64 // kt

	// BDS 6.0 heading and speed report
	MagneticHeading          *float64 // deg
	IndicatedAirspeed        *float64 // kt
	Mach                     *float64
	BarometricAltitudeRate   *float64 // ft/min
	InertialVerticalVelocity *float64 // ft/min
}

// Code renders the register identity, e.g. "BDS4.0".
func (r *Register) Code() string {
	return fmt.Sprintf("BDS%X.%X", r.BDS1, r.BDS2)
}
