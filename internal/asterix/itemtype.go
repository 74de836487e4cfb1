package asterix

// ItemType identifies a data item within a category's UAP.
type ItemType int

// ItemTypeUnknown marks an FRN with no item assignment.
const ItemTypeUnknown ItemType = 0

// CAT048 data items, in UAP (FRN) order
const (
	Cat048DataSource ItemType = iota + 1 // I048/010 Data Source Identifier
	Cat048TimeOfDay                      // I048/140 Time of Day
	Cat048TargetReportDescriptor         // I048/020 Target Report Descriptor
	Cat048MeasuredPositionPolar          // I048/040 Measured Position, Polar
	Cat048Mode3ACode                     // I048/070 Mode-3/A Code
	Cat048FlightLevel                    // I048/090 Flight Level
	Cat048RadarPlotCharacteristics       // I048/130 Radar Plot Characteristics
	Cat048AircraftAddress                // I048/220 Aircraft Address
	Cat048AircraftIdentification         // I048/240 Aircraft Identification
	Cat048ModeSMBData                    // I048/250 Mode S MB Data
	Cat048TrackNumber                    // I048/161 Track Number
	Cat048CalculatedPositionCartesian    // I048/042 Calculated Position, Cartesian
	Cat048TrackVelocityPolar             // I048/200 Calculated Track Velocity, Polar
	Cat048TrackStatus                    // I048/170 Track Status
	Cat048TrackQuality                   // I048/210 Track Quality
	Cat048WarningError                   // I048/030 Warning/Error Conditions
	Cat048Mode3AConfidence               // I048/080 Mode-3/A Code Confidence
	Cat048ModeCConfidence                // I048/100 Mode-C Code Confidence
	Cat048Height3D                       // I048/110 Height Measured by 3D Radar
	Cat048RadialDopplerSpeed             // I048/120 Radial Doppler Speed
	Cat048CommunicationsACAS             // I048/230 Communications/ACAS Capability
)

// CAT021 data items, in UAP (FRN) order
const (
	Cat021DataSource ItemType = iota + 101 // I021/010 Data Source Identification
	Cat021TargetReportDescriptor           // I021/040 Target Report Descriptor
	Cat021TrackNumber                      // I021/161 Track Number
	Cat021ServiceIdentification            // I021/015 Service Identification
	Cat021TimeApplicabilityPosition        // I021/071 Time of Applicability for Position
	Cat021PositionWGS84                    // I021/130 Position in WGS-84 Co-ordinates
	Cat021PositionWGS84HighRes             // I021/131 High-Resolution Position in WGS-84 Co-ordinates
	Cat021TimeApplicabilityVelocity        // I021/072 Time of Applicability for Velocity
	Cat021AirSpeed                         // I021/150 Air Speed
	Cat021TrueAirSpeed                     // I021/151 True Air Speed
	Cat021TargetAddress                    // I021/080 Target Address
	Cat021TimeReceptionPosition            // I021/073 Time of Message Reception for Position
	Cat021TimeReceptionPositionHigh        // I021/074 Time of Message Reception for Position, High Precision
	Cat021TimeReceptionVelocity            // I021/075 Time of Message Reception for Velocity
	Cat021TimeReceptionVelocityHigh        // I021/076 Time of Message Reception for Velocity, High Precision
	Cat021GeometricHeight                  // I021/140 Geometric Height
	Cat021QualityIndicators                // I021/090 Quality Indicators
	Cat021MOPSVersion                      // I021/210 MOPS Version
	Cat021Mode3ACode                       // I021/070 Mode-3/A Code
	Cat021RollAngle                        // I021/230 Roll Angle
	Cat021FlightLevel                      // I021/145 Flight Level
	Cat021MagneticHeading                  // I021/152 Magnetic Heading
	Cat021TargetStatus                     // I021/200 Target Status
	Cat021BarometricVerticalRate           // I021/155 Barometric Vertical Rate
	Cat021GeometricVerticalRate            // I021/157 Geometric Vertical Rate
	Cat021AirborneGroundVector             // I021/160 Airborne Ground Vector
	Cat021TrackAngleRate                   // I021/165 Track Angle Rate
	Cat021TimeReportTransmission           // I021/077 Time of ASTERIX Report Transmission
	Cat021TargetIdentification             // I021/170 Target Identification
	Cat021EmitterCategory                  // I021/020 Emitter Category
	Cat021MetInformation                   // I021/220 Met Information
	Cat021SelectedAltitude                 // I021/146 Selected Altitude
	Cat021FinalStateSelectedAltitude       // I021/148 Final State Selected Altitude
	Cat021TrajectoryIntent                 // I021/110 Trajectory Intent
	Cat021ServiceManagement                // I021/016 Service Management
	Cat021AircraftOperationalStatus        // I021/008 Aircraft Operational Status
	Cat021SurfaceCapabilities              // I021/271 Surface Capabilities and Characteristics
	Cat021MessageAmplitude                 // I021/132 Message Amplitude
	Cat021ModeSMBData                      // I021/250 Mode S MB Data
	Cat021ACASResolutionAdvisory           // I021/260 ACAS Resolution Advisory Report
	Cat021ReceiverID                       // I021/400 Receiver ID
	Cat021DataAges                         // I021/295 Data Ages
	Cat021ReservedExpansion                // I021/RE Reserved Expansion Field
	Cat021SpecialPurpose                   // I021/SP Special Purpose Field
)

// cat048UAP maps FSPEC FRN to data item for CAT048 (21 assigned positions).
var cat048UAP = map[int]ItemType{
	1:  Cat048DataSource,
	2:  Cat048TimeOfDay,
	3:  Cat048TargetReportDescriptor,
	4:  Cat048MeasuredPositionPolar,
	5:  Cat048Mode3ACode,
	6:  Cat048FlightLevel,
	7:  Cat048RadarPlotCharacteristics,
	8:  Cat048AircraftAddress,
	9:  Cat048AircraftIdentification,
	10: Cat048ModeSMBData,
	11: Cat048TrackNumber,
	12: Cat048CalculatedPositionCartesian,
	13: Cat048TrackVelocityPolar,
	14: Cat048TrackStatus,
	15: Cat048TrackQuality,
	16: Cat048WarningError,
	17: Cat048Mode3AConfidence,
	18: Cat048ModeCConfidence,
	19: Cat048Height3D,
	20: Cat048RadialDopplerSpeed,
	21: Cat048CommunicationsACAS,
}

// cat021UAP maps FSPEC FRN to data item for CAT021. FRNs 43-47 are spare.
var cat021UAP = map[int]ItemType{
	1:  Cat021DataSource,
	2:  Cat021TargetReportDescriptor,
	3:  Cat021TrackNumber,
	4:  Cat021ServiceIdentification,
	5:  Cat021TimeApplicabilityPosition,
	6:  Cat021PositionWGS84,
	7:  Cat021PositionWGS84HighRes,
	8:  Cat021TimeApplicabilityVelocity,
	9:  Cat021AirSpeed,
	10: Cat021TrueAirSpeed,
	11: Cat021TargetAddress,
	12: Cat021TimeReceptionPosition,
	13: Cat021TimeReceptionPositionHigh,
	14: Cat021TimeReceptionVelocity,
	15: Cat021TimeReceptionVelocityHigh,
	16: Cat021GeometricHeight,
	17: Cat021QualityIndicators,
	18: Cat021MOPSVersion,
	19: Cat021Mode3ACode,
	20: Cat021RollAngle,
	21: Cat021FlightLevel,
	22: Cat021MagneticHeading,
	23: Cat021TargetStatus,
	24: Cat021BarometricVerticalRate,
	25: Cat021GeometricVerticalRate,
	26: Cat021AirborneGroundVector,
	27: Cat021TrackAngleRate,
	28: Cat021TimeReportTransmission,
	29: Cat021TargetIdentification,
	30: Cat021EmitterCategory,
	31: Cat021MetInformation,
	32: Cat021SelectedAltitude,
	33: Cat021FinalStateSelectedAltitude,
	34: Cat021TrajectoryIntent,
	35: Cat021ServiceManagement,
	36: Cat021AircraftOperationalStatus,
	37: Cat021SurfaceCapabilities,
	38: Cat021MessageAmplitude,
	39: Cat021ModeSMBData,
	40: Cat021ACASResolutionAdvisory,
	41: Cat021ReceiverID,
	42: Cat021DataAges,
	48: Cat021ReservedExpansion,
	49: Cat021SpecialPurpose,
}

// ItemTypeForFRN resolves a Field Reference Number through the category's UAP.
// FRNs without an assigned item return false; FSPEC parsing still consumes
// their bit position.
func (c Category) ItemTypeForFRN(frn int) (ItemType, bool) {
	var t ItemType
	var ok bool
	switch c {
	case Cat048:
		t, ok = cat048UAP[frn]
	case Cat021:
		t, ok = cat021UAP[frn]
	}
	return t, ok
}

var itemTypeNames = map[ItemType]string{
	Cat048DataSource:                  "I048/010",
	Cat048TimeOfDay:                   "I048/140",
	Cat048TargetReportDescriptor:      "I048/020",
	Cat048MeasuredPositionPolar:       "I048/040",
	Cat048Mode3ACode:                  "I048/070",
	Cat048FlightLevel:                 "I048/090",
	Cat048RadarPlotCharacteristics:    "I048/130",
	Cat048AircraftAddress:             "I048/220",
	Cat048AircraftIdentification:      "I048/240",
	Cat048ModeSMBData:                 "I048/250",
	Cat048TrackNumber:                 "I048/161",
	Cat048CalculatedPositionCartesian: "I048/042",
	Cat048TrackVelocityPolar:          "I048/200",
	Cat048TrackStatus:                 "I048/170",
	Cat048TrackQuality:                "I048/210",
	Cat048WarningError:                "I048/030",
	Cat048Mode3AConfidence:            "I048/080",
	Cat048ModeCConfidence:             "I048/100",
	Cat048Height3D:                    "I048/110",
	Cat048RadialDopplerSpeed:          "I048/120",
	Cat048CommunicationsACAS:          "I048/230",

	Cat021DataSource:                 "I021/010",
	Cat021TargetReportDescriptor:     "I021/040",
	Cat021TrackNumber:                "I021/161",
	Cat021ServiceIdentification:      "I021/015",
	Cat021TimeApplicabilityPosition:  "I021/071",
	Cat021PositionWGS84:              "I021/130",
	Cat021PositionWGS84HighRes:       "I021/131",
	Cat021TimeApplicabilityVelocity:  "I021/072",
	Cat021AirSpeed:                   "I021/150",
	Cat021TrueAirSpeed:               "I021/151",
	Cat021TargetAddress:              "I021/080",
	Cat021TimeReceptionPosition:      "I021/073",
	Cat021TimeReceptionPositionHigh:  "I021/074",
	Cat021TimeReceptionVelocity:      "I021/075",
	Cat021TimeReceptionVelocityHigh:  "I021/076",
	Cat021GeometricHeight:            "I021/140",
	Cat021QualityIndicators:          "I021/090",
	Cat021MOPSVersion:                "I021/210",
	Cat021Mode3ACode:                 "I021/070",
	Cat021RollAngle:                  "I021/230",
	Cat021FlightLevel:                "I021/145",
	Cat021MagneticHeading:            "I021/152",
	Cat021TargetStatus:               "I021/200",
	Cat021BarometricVerticalRate:     "I021/155",
	Cat021GeometricVerticalRate:      "I021/157",
	Cat021AirborneGroundVector:       "I021/160",
	Cat021TrackAngleRate:             "I021/165",
	Cat021TimeReportTransmission:     "I021/077",
	Cat021TargetIdentification:       "I021/170",
	Cat021EmitterCategory:            "I021/020",
	Cat021MetInformation:             "I021/220",
	Cat021SelectedAltitude:           "I021/146",
	Cat021FinalStateSelectedAltitude: "I021/148",
	Cat021TrajectoryIntent:           "I021/110",
	Cat021ServiceManagement:          "I021/016",
	Cat021AircraftOperationalStatus:  "I021/008",
	Cat021SurfaceCapabilities:        "I021/271",
	Cat021MessageAmplitude:           "I021/132",
	Cat021ModeSMBData:                "I021/250",
	Cat021ACASResolutionAdvisory:     "I021/260",
	Cat021ReceiverID:                 "I021/400",
	Cat021DataAges:                   "I021/295",
	Cat021ReservedExpansion:          "I021/RE",
	Cat021SpecialPurpose:             "I021/SP",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
