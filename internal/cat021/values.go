package cat021

import "goasterix/internal/bds"

// DataSource is I021/010, the SAC/SIC pair identifying the ground station.
type DataSource struct {
	SAC uint8
	SIC uint8
}

// TargetReportDescriptor is I021/040. The second octet is optional; the
// Has flag reports whether its fields were transmitted.
type TargetReportDescriptor struct {
	ATP uint8 // address type: 0=24-bit ICAO 1=duplicate 2=surface vehicle 3=anonymous
	ARC uint8 // altitude reporting capability: 0=25ft 1=100ft 2=unknown
	RC  uint8 // range check passed
	RAB uint8 // 0=aircraft transponder 1=field monitor

	HasExtension bool
	DCR          uint8 // differential correction
	GBS          uint8 // 1=ground bit set
	SIM          uint8 // 1=simulated
	TST          uint8 // 1=test target
	SAA          uint8 // selected altitude available
	CL           uint8 // confidence level
}

// TrackNumber is I021/161.
type TrackNumber struct {
	Number uint16
}

// ServiceIdentification is I021/015.
type ServiceIdentification struct {
	ID uint8
}

// TimeOfDay carries any of the 3-octet CAT021 time items, all counted in
// 1/128 s since midnight UTC. The Item.Type distinguishes which one.
type TimeOfDay struct {
	Raw          uint32
	TotalSeconds float64
	TimeString   string // HH:MM:SS.mmm
}

// Position is I021/130 or I021/131, a WGS-84 coordinate pair. HighRes
// reports the 32-bit encoding of I021/131.
type Position struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	HighRes      bool
}

// AirSpeed is I021/150. IM selects the unit: 0 carries IASKt, 1 carries
// Mach; the unused field is nil.
type AirSpeed struct {
	IM    uint8
	IASKt *float64
	Mach  *float64
}

// TrueAirSpeed is I021/151.
type TrueAirSpeed struct {
	RE      uint8 // range exceeded
	SpeedKt float64
}

// TargetAddress is I021/080, the 24-bit ICAO address.
type TargetAddress struct {
	Address uint32
	Hex     string // 6 hex digits
}

// GeometricHeight is I021/140, height above WGS-84 ellipsoid.
type GeometricHeight struct {
	HeightFt float64
}

// MOPSVersion is I021/210.
type MOPSVersion struct {
	VNS uint8 // 0=version supported
	VN  uint8 // 0=DO-260 1=DO-260A 2=DO-260B
	LTT uint8 // link technology
}

// Mode3A is I021/070, the 4-digit octal squawk.
type Mode3A struct {
	Raw  uint16
	Code string // "ABCD" octal digits
}

// RollAngle is I021/230.
type RollAngle struct {
	AngleDeg float64 // positive right wing down
}

// FlightLevel is I021/145, the barometric level in quarter-FL units.
type FlightLevel struct {
	FL         float64
	AltitudeFt float64
}

// MagneticHeading is I021/152.
type MagneticHeading struct {
	HeadingDeg float64
}

// TargetStatus is I021/200.
type TargetStatus struct {
	ICF  uint8 // intent change flag
	LNAV uint8 // LNAV mode engaged
	PS   uint8 // priority status
	SS   uint8 // surveillance status
}

// VerticalRate carries I021/155 or I021/157; the Item.Type distinguishes
// barometric from geometric.
type VerticalRate struct {
	RE        uint8 // range exceeded
	RateFtMin float64
}

// GroundVector is I021/160, ground speed and track angle.
type GroundVector struct {
	RE            uint8
	GroundSpeedKt float64
	TrackAngleDeg float64
}

// TargetIdentification is I021/170, the downlinked callsign.
type TargetIdentification struct {
	Callsign string
}

// EmitterCategory is I021/020.
type EmitterCategory struct {
	ECAT uint8
}

// MetInformation is I021/220. Every subfield is optional; nil means the
// station did not report it.
type MetInformation struct {
	WindSpeedKt      *float64
	WindDirectionDeg *float64
	TemperatureC     *float64
	Turbulence       *uint8
}

// SelectedAltitude is I021/146, the MCP/FCU or FMS selected altitude.
type SelectedAltitude struct {
	SAS        uint8 // source availability
	Source     uint8 // 0=unknown 1=aircraft altitude 2=FCU/MCP 3=FMS
	AltitudeFt float64
}

// FinalStateSelectedAltitude is I021/148.
type FinalStateSelectedAltitude struct {
	MV         uint8 // manage vertical mode
	AH         uint8 // altitude hold
	AM         uint8 // approach mode
	AltitudeFt float64
}

// ServiceManagement is I021/016, the report period.
type ServiceManagement struct {
	PeriodS float64
}

// OperationalStatus is I021/008, ACAS and CDTI capability bits.
type OperationalStatus struct {
	RA      uint8 // TCAS resolution advisory active
	TC      uint8 // target trajectory change capability
	TS      uint8 // target state report capability
	ARV     uint8 // air-referenced velocity capability
	CDTIA   uint8 // CDTI airborne operational
	NotTCAS uint8 // TCAS not operational
	SA      uint8 // single antenna
}

// MessageAmplitude is I021/132, received signal level.
type MessageAmplitude struct {
	AmplitudeDBm int
}

// ModeSMBData is I021/250, the repetitive Comm-B register block.
type ModeSMBData struct {
	Rep       uint8
	Registers []*bds.Register
}

// ReceiverID is I021/400.
type ReceiverID struct {
	ID uint8
}

// ReservedExpansion is the I021/RE field. BPS is the barometric pressure
// setting subfield in hPa, nil when absent.
type ReservedExpansion struct {
	Length int
	BPS    *float64
}
