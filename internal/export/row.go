// Package export flattens decoded records into tabular rows and writes
// them to CSV files or a SQLite database.
package export

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"goasterix/internal/asterix"
	"goasterix/internal/cat021"
	"goasterix/internal/cat048"
	"goasterix/internal/qnh"
)

// cat048Columns is the canonical column order for CAT048 rows. Only
// columns that occur in at least one row are written.
var cat048Columns = []string{
	"CAT", "SAC", "SIC", "Time", "TYP", "SIM", "SPI", "RHO", "THETA",
	"Mode3/A", "V", "G", "L", "FL", "ALT_QNH_ft", "QNH_CORRECTED",
	"FL_V", "FL_G", "SRL", "SRR", "SAM", "TA", "TI", "TN",
	"CALC_GS", "CALC_HDG", "CNF", "RAD", "CDM", "COM", "STAT", "STAT_DESC",
	"MCP_FCU_ALT", "FMS_ALT", "BP",
	"RA", "TTA", "GS", "TAR", "TAS",
	"HDG", "IAS", "MACH", "BAR", "IVV",
}

// cat021Columns is the canonical column order for CAT021 rows.
var cat021Columns = []string{
	"CAT", "SAC", "SIC", "Time", "ATP", "ARC", "RC", "RAB",
	"DCR", "GBS", "SIM", "TST", "LAT", "LON", "TA", "Mode3/A",
	"FL", "ALT_ft", "TI", "BPS",
}

// Columns returns the canonical column order for a category.
func Columns(cat asterix.Category) []string {
	switch cat {
	case asterix.Cat048:
		return cat048Columns
	case asterix.Cat021:
		return cat021Columns
	}
	return nil
}

// Row is one flattened record. Cells maps column name to rendered value;
// absent columns are simply missing from the map. The typed fields mirror
// the cells used by filters, statistics and sorting.
type Row struct {
	Category asterix.Category
	Cells    map[string]string

	TimeSeconds *float64
	Address     string
	Callsign    string
	FlightLevel *float64
	GroundSpeed *float64
	Latitude    *float64
	Longitude   *float64
	Airborne    *bool // nil when the record does not say
	GroundBit   bool  // CAT021 GBS=1
}

// Flattener turns decoded records into rows, applying the QNH altitude
// correction as it goes. Records must be fed in non-decreasing time order
// per aircraft for the correction to be valid.
type Flattener struct {
	logger *logrus.Logger
	qnh    *qnh.Corrector
}

// NewFlattener creates a Flattener with a fresh QNH corrector.
func NewFlattener(logger *logrus.Logger) *Flattener {
	return &Flattener{
		logger: logger,
		qnh:    qnh.NewCorrector(logger),
	}
}

// Flatten produces one row from a decoded record. Records of an
// unsupported category return nil.
func (f *Flattener) Flatten(rec *asterix.Record) *Row {
	switch rec.Category {
	case asterix.Cat048:
		return f.flattenCat048(rec)
	case asterix.Cat021:
		return f.flattenCat021(rec)
	}
	return nil
}

func (f *Flattener) flattenCat048(rec *asterix.Record) *Row {
	row := &Row{
		Category: rec.Category,
		Cells:    map[string]string{"CAT": "48"},
	}
	var flightLevel, pressure *float64

	for _, item := range rec.Items {
		switch v := item.Value.(type) {
		case cat048.DataSource:
			row.Cells["SAC"] = itoa(int(v.SAC))
			row.Cells["SIC"] = itoa(int(v.SIC))
		case cat048.TimeOfDay:
			row.Cells["Time"] = v.TimeString
			row.TimeSeconds = fptr(v.TotalSeconds)
		case cat048.TargetReportDescriptor:
			row.Cells["TYP"] = itoa(int(v.TYP))
			row.Cells["SIM"] = itoa(int(v.SIM))
			row.Cells["SPI"] = itoa(int(v.SPI))
		case cat048.PolarPosition:
			row.Cells["RHO"] = ftoa(v.RangeNM)
			row.Cells["THETA"] = ftoa(v.AzimuthDeg)
		case cat048.Mode3A:
			row.Cells["Mode3/A"] = v.Code
			row.Cells["V"] = itoa(int(v.V))
			row.Cells["G"] = itoa(int(v.G))
			row.Cells["L"] = itoa(int(v.L))
		case cat048.FlightLevel:
			row.Cells["FL"] = ftoa(v.FL)
			row.Cells["FL_V"] = itoa(int(v.V))
			row.Cells["FL_G"] = itoa(int(v.G))
			flightLevel = fptr(v.FL)
		case cat048.PlotCharacteristics:
			putFloat(row.Cells, "SRL", v.SRL)
			if v.SRR != nil {
				row.Cells["SRR"] = itoa(*v.SRR)
			}
			if v.SAM != nil {
				row.Cells["SAM"] = itoa(*v.SAM)
			}
		case cat048.AircraftAddress:
			row.Cells["TA"] = v.Hex
			row.Address = v.Hex
		case cat048.AircraftIdentification:
			row.Cells["TI"] = v.Callsign
			row.Callsign = v.Callsign
		case cat048.ModeSMBData:
			for _, reg := range v.Registers {
				switch {
				case reg.BDS1 == 4 && reg.BDS2 == 0:
					putFloat(row.Cells, "MCP_FCU_ALT", reg.MCPSelectedAltitude)
					putFloat(row.Cells, "FMS_ALT", reg.FMSSelectedAltitude)
					putFloat(row.Cells, "BP", reg.BarometricPressure)
					if reg.BarometricPressure != nil {
						pressure = reg.BarometricPressure
					}
				case reg.BDS1 == 5 && reg.BDS2 == 0:
					putFloat(row.Cells, "RA", reg.RollAngle)
					putFloat(row.Cells, "TTA", reg.TrueTrackAngle)
					putFloat(row.Cells, "GS", reg.GroundSpeed)
					putFloat(row.Cells, "TAR", reg.TrackAngleRate)
					putFloat(row.Cells, "TAS", reg.TrueAirspeed)
				case reg.BDS1 == 6 && reg.BDS2 == 0:
					putFloat(row.Cells, "HDG", reg.MagneticHeading)
					putFloat(row.Cells, "IAS", reg.IndicatedAirspeed)
					putFloat(row.Cells, "MACH", reg.Mach)
					putFloat(row.Cells, "BAR", reg.BarometricAltitudeRate)
					putFloat(row.Cells, "IVV", reg.InertialVerticalVelocity)
				}
			}
		case cat048.TrackNumber:
			row.Cells["TN"] = itoa(int(v.Number))
		case cat048.PolarVelocity:
			row.Cells["CALC_GS"] = ftoa(v.GroundSpeedKt)
			row.Cells["CALC_HDG"] = ftoa(v.HeadingDeg)
			row.GroundSpeed = fptr(v.GroundSpeedKt)
		case cat048.TrackStatus:
			row.Cells["CNF"] = itoa(int(v.CNF))
			row.Cells["RAD"] = itoa(int(v.RAD))
			row.Cells["CDM"] = itoa(int(v.CDM))
		case cat048.CommunicationsACAS:
			row.Cells["COM"] = itoa(int(v.COM))
			row.Cells["STAT"] = itoa(int(v.STAT))
			row.Cells["STAT_DESC"] = v.STATDescription
			switch v.STAT {
			case 0, 2:
				row.Airborne = bptr(true)
			case 1, 3:
				row.Airborne = bptr(false)
			}
		}
	}

	row.FlightLevel = flightLevel
	if res, ok := f.qnh.Correct(row.Address, flightLevel, pressure); ok {
		row.Cells["ALT_QNH_ft"] = ftoa(res.AltitudeFt)
		if res.Corrected {
			row.Cells["QNH_CORRECTED"] = "1"
		} else {
			row.Cells["QNH_CORRECTED"] = "0"
		}
	}
	return row
}

func (f *Flattener) flattenCat021(rec *asterix.Record) *Row {
	row := &Row{
		Category: rec.Category,
		Cells:    map[string]string{"CAT": "21"},
	}
	var flightLevel, pressure *float64

	for _, item := range rec.Items {
		switch v := item.Value.(type) {
		case cat021.DataSource:
			row.Cells["SAC"] = itoa(int(v.SAC))
			row.Cells["SIC"] = itoa(int(v.SIC))
		case cat021.TargetReportDescriptor:
			row.Cells["ATP"] = itoa(int(v.ATP))
			row.Cells["ARC"] = itoa(int(v.ARC))
			row.Cells["RC"] = itoa(int(v.RC))
			row.Cells["RAB"] = itoa(int(v.RAB))
			if v.HasExtension {
				row.Cells["DCR"] = itoa(int(v.DCR))
				row.Cells["GBS"] = itoa(int(v.GBS))
				row.Cells["SIM"] = itoa(int(v.SIM))
				row.Cells["TST"] = itoa(int(v.TST))
				row.GroundBit = v.GBS == 1
				row.Airborne = bptr(v.GBS == 0)
			}
		case cat021.TimeOfDay:
			// Reception-of-position time wins over the other time items.
			if _, have := row.Cells["Time"]; !have || item.Type == asterix.Cat021TimeReceptionPosition {
				row.Cells["Time"] = v.TimeString
				row.TimeSeconds = fptr(v.TotalSeconds)
			}
		case cat021.Position:
			row.Cells["LAT"] = ftoa(v.LatitudeDeg)
			row.Cells["LON"] = ftoa(v.LongitudeDeg)
			row.Latitude = fptr(v.LatitudeDeg)
			row.Longitude = fptr(v.LongitudeDeg)
		case cat021.TargetAddress:
			row.Cells["TA"] = v.Hex
			row.Address = v.Hex
		case cat021.Mode3A:
			row.Cells["Mode3/A"] = v.Code
		case cat021.FlightLevel:
			row.Cells["FL"] = ftoa(v.FL)
			flightLevel = fptr(v.FL)
		case cat021.TargetIdentification:
			row.Cells["TI"] = v.Callsign
			row.Callsign = v.Callsign
		case cat021.GroundVector:
			row.GroundSpeed = fptr(v.GroundSpeedKt)
		case cat021.ReservedExpansion:
			if v.BPS != nil {
				row.Cells["BPS"] = ftoa(*v.BPS)
				pressure = v.BPS
			}
		}
	}

	row.FlightLevel = flightLevel
	if res, ok := f.qnh.Correct(row.Address, flightLevel, pressure); ok {
		row.Cells["ALT_ft"] = ftoa(res.AltitudeFt)
	}
	return row
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func fptr(v float64) *float64 { return &v }

func bptr(v bool) *bool { return &v }

func putFloat(cells map[string]string, col string, v *float64) {
	if v != nil {
		cells[col] = ftoa(*v)
	}
}
