package cat048

import "goasterix/internal/bds"

// DataSource is I048/010, the SAC/SIC pair identifying the radar.
type DataSource struct {
	SAC uint8
	SIC uint8
}

// TimeOfDay is I048/140, elapsed time since midnight in 1/128 s units.
type TimeOfDay struct {
	Raw          uint32 // 1/128 s units
	TotalSeconds float64
	TimeString   string // HH:MM:SS.mmm
}

// TargetReportDescriptor is I048/020. Extension octets are optional; the
// Has flags report whether their fields were transmitted.
type TargetReportDescriptor struct {
	TYP uint8 // 0=no detection 1=PSR 2=SSR 3=SSR+PSR 4=Mode S all-call ...
	SIM uint8 // 0=actual 1=simulated
	RDP uint8 // RDP chain
	SPI uint8 // special position identification
	RAB uint8 // 0=transponder 1=field monitor

	HasExtension1 bool
	TST           uint8
	ERR           uint8
	XPP           uint8
	ME            uint8
	MI            uint8
	FOEFRI        uint8

	HasExtension2 bool
	ADSB          uint8
	SCN           uint8
	PAI           uint8
}

// PolarPosition is I048/040, slant range and azimuth as measured.
type PolarPosition struct {
	RhoRaw     uint16
	ThetaRaw   uint16
	RangeNM    float64
	AzimuthDeg float64 // normalized to [0,360)
}

// Mode3A is I048/070, the 4-digit octal squawk with validity flags.
type Mode3A struct {
	V    uint8 // 0=validated 1=not validated
	G    uint8 // 0=default 1=garbled
	L    uint8 // 0=from transponder 1=smoothed
	Raw  uint16
	Code string // "ABCD" octal digits
}

// FlightLevel is I048/090, the Mode C level in quarter-FL units.
type FlightLevel struct {
	V          uint8
	G          uint8
	Raw        uint16
	FL         float64
	AltitudeFt float64
}

// PlotCharacteristics is I048/130. Every subfield is optional; nil means
// the radar did not report it.
type PlotCharacteristics struct {
	SRL *float64 // SSR plot runlength, deg
	SRR *int     // number of received MSSR replies
	SAM *int     // MSSR reply amplitude, dBm
	PRL *float64 // PSR plot runlength, deg
	PAM *int     // PSR amplitude, dBm
	RPD *float64 // PSR-SSR range difference, NM
	APD *float64 // PSR-SSR azimuth difference, deg
}

// AircraftAddress is I048/220, the 24-bit ICAO address.
type AircraftAddress struct {
	Address uint32
	Hex     string // 6 hex digits, e.g. "4CA1D2"
}

// AircraftIdentification is I048/240, the Mode S callsign.
type AircraftIdentification struct {
	Callsign string
}

// ModeSMBData is I048/250, the repetitive Comm-B register block.
type ModeSMBData struct {
	Rep       uint8
	Registers []*bds.Register
}

// TrackNumber is I048/161.
type TrackNumber struct {
	Number uint16
}

// PolarVelocity is I048/200, calculated ground speed and heading.
type PolarVelocity struct {
	SpeedRaw      uint16
	HeadingRaw    uint16
	GroundSpeedKt float64
	HeadingDeg    float64 // normalized to [0,360)
}

// TrackStatus is I048/170.
type TrackStatus struct {
	CNF uint8 // 0=confirmed 1=tentative
	RAD uint8 // 0=combined 1=PSR 2=SSR/Mode S 3=invalid
	DOU uint8
	MAH uint8
	CDM uint8 // 0=maintaining 1=climbing 2=descending 3=unknown

	HasExtension bool
	TRE          uint8
	GHO          uint8
	SUP          uint8
	TCC          uint8
}

// CommunicationsACAS is I048/230, transponder capability and flight status.
type CommunicationsACAS struct {
	COM             uint8
	COMDescription  string
	STAT            uint8
	STATDescription string
	SI              uint8
	MSSC            uint8
	ARC             uint8 // 0=100 ft resolution 1=25 ft resolution
	AIC             uint8
	B1A             uint8
	B1B             uint8
}

// comDescriptions maps the COM capability field to its meaning.
var comDescriptions = map[uint8]string{
	0: "No communications capability (surveillance only)",
	1: "Comm. A and Comm. B capability",
	2: "Comm. A, Comm. B and Uplink ELM",
	3: "Comm. A, Comm. B, Uplink ELM and Downlink ELM",
	4: "Level 5 Transponder capability",
	5: "Not assigned",
	6: "Not assigned",
	7: "Not assigned",
}

// statDescriptions maps the flight status field to its meaning.
var statDescriptions = map[uint8]string{
	0: "No alert, no SPI, aircraft airborne",
	1: "No alert, no SPI, aircraft on ground",
	2: "Alert, no SPI, aircraft airborne",
	3: "Alert, no SPI, aircraft on ground",
	4: "Alert, SPI, aircraft airborne or on ground",
	5: "No alert, SPI, aircraft airborne or on ground",
	6: "Not assigned",
	7: "Unknown",
}
