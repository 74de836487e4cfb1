package app

import (
	"fmt"
	"io"
	"strings"

	"goasterix/internal/asterix"
	"goasterix/internal/bds"
	"goasterix/internal/cat021"
	"goasterix/internal/cat048"
)

// Inspect prints the first n decoded records with their item values, one
// item per line. This is the --inspect mode behind the CLI.
func (app *Application) Inspect(w io.Writer, records []*asterix.Record, n int) {
	if n > len(records) {
		n = len(records)
	}
	for i := 0; i < n; i++ {
		rec := records[i]
		fmt.Fprintf(w, "record %d: %s offset=%d length=%d items=%d\n",
			i+1, rec.Category, rec.BlockOffset, rec.Length, len(rec.Items))
		for _, item := range rec.Items {
			fmt.Fprintf(w, "  FRN %2d %-28s %s\n", item.FRN, item.Type, describeItem(item))
		}
	}
}

// describeItem renders one decoded item value as a short human-readable
// line.
func describeItem(item asterix.Item) string {
	switch v := item.Value.(type) {
	case cat048.DataSource:
		return fmt.Sprintf("SAC=%d SIC=%d", v.SAC, v.SIC)
	case cat048.TimeOfDay:
		return fmt.Sprintf("%s (%.3f s)", v.TimeString, v.TotalSeconds)
	case cat048.TargetReportDescriptor:
		s := fmt.Sprintf("TYP=%d SIM=%d RDP=%d SPI=%d RAB=%d", v.TYP, v.SIM, v.RDP, v.SPI, v.RAB)
		if v.HasExtension1 {
			s += fmt.Sprintf(" TST=%d ERR=%d ME=%d MI=%d FOEFRI=%d", v.TST, v.ERR, v.ME, v.MI, v.FOEFRI)
		}
		return s
	case cat048.PolarPosition:
		return fmt.Sprintf("rho=%.3f NM theta=%.3f deg", v.RangeNM, v.AzimuthDeg)
	case cat048.Mode3A:
		return fmt.Sprintf("code=%s V=%d G=%d L=%d", v.Code, v.V, v.G, v.L)
	case cat048.FlightLevel:
		return fmt.Sprintf("FL=%.2f (%.0f ft)", v.FL, v.AltitudeFt)
	case cat048.PlotCharacteristics:
		var parts []string
		if v.SRL != nil {
			parts = append(parts, fmt.Sprintf("SRL=%.4f deg", *v.SRL))
		}
		if v.SRR != nil {
			parts = append(parts, fmt.Sprintf("SRR=%d", *v.SRR))
		}
		if v.SAM != nil {
			parts = append(parts, fmt.Sprintf("SAM=%d dBm", *v.SAM))
		}
		if v.PRL != nil {
			parts = append(parts, fmt.Sprintf("PRL=%.4f deg", *v.PRL))
		}
		if v.PAM != nil {
			parts = append(parts, fmt.Sprintf("PAM=%d dBm", *v.PAM))
		}
		if v.RPD != nil {
			parts = append(parts, fmt.Sprintf("RPD=%.4f NM", *v.RPD))
		}
		if v.APD != nil {
			parts = append(parts, fmt.Sprintf("APD=%.4f deg", *v.APD))
		}
		if len(parts) == 0 {
			return "empty"
		}
		return strings.Join(parts, " ")
	case cat048.AircraftAddress:
		return v.Hex
	case cat048.AircraftIdentification:
		return v.Callsign
	case cat048.ModeSMBData:
		return describeRegisters(int(v.Rep), regCodes(v.Registers))
	case cat048.TrackNumber:
		return fmt.Sprintf("TN=%d", v.Number)
	case cat048.PolarVelocity:
		return fmt.Sprintf("GS=%.1f kt HDG=%.1f deg", v.GroundSpeedKt, v.HeadingDeg)
	case cat048.TrackStatus:
		return fmt.Sprintf("CNF=%d RAD=%d DOU=%d MAH=%d CDM=%d", v.CNF, v.RAD, v.DOU, v.MAH, v.CDM)
	case cat048.CommunicationsACAS:
		return fmt.Sprintf("COM=%d (%s) STAT=%d (%s)", v.COM, v.COMDescription, v.STAT, v.STATDescription)

	case cat021.DataSource:
		return fmt.Sprintf("SAC=%d SIC=%d", v.SAC, v.SIC)
	case cat021.TargetReportDescriptor:
		s := fmt.Sprintf("ATP=%d ARC=%d RC=%d RAB=%d", v.ATP, v.ARC, v.RC, v.RAB)
		if v.HasExtension {
			s += fmt.Sprintf(" DCR=%d GBS=%d SIM=%d TST=%d", v.DCR, v.GBS, v.SIM, v.TST)
		}
		return s
	case cat021.TrackNumber:
		return fmt.Sprintf("TN=%d", v.Number)
	case cat021.ServiceIdentification:
		return fmt.Sprintf("ID=%d", v.ID)
	case cat021.TimeOfDay:
		return fmt.Sprintf("%s (%.3f s)", v.TimeString, v.TotalSeconds)
	case cat021.Position:
		return fmt.Sprintf("lat=%.6f lon=%.6f", v.LatitudeDeg, v.LongitudeDeg)
	case cat021.AirSpeed:
		if v.Mach != nil {
			return fmt.Sprintf("Mach=%.3f", *v.Mach)
		}
		if v.IASKt != nil {
			return fmt.Sprintf("IAS=%.1f kt", *v.IASKt)
		}
		return "empty"
	case cat021.TrueAirSpeed:
		return fmt.Sprintf("TAS=%.1f kt", v.SpeedKt)
	case cat021.TargetAddress:
		return v.Hex
	case cat021.GeometricHeight:
		return fmt.Sprintf("%.1f ft", v.HeightFt)
	case cat021.MOPSVersion:
		return fmt.Sprintf("VNS=%d VN=%d LTT=%d", v.VNS, v.VN, v.LTT)
	case cat021.Mode3A:
		return "code=" + v.Code
	case cat021.RollAngle:
		return fmt.Sprintf("%.2f deg", v.AngleDeg)
	case cat021.FlightLevel:
		return fmt.Sprintf("FL=%.2f (%.0f ft)", v.FL, v.AltitudeFt)
	case cat021.MagneticHeading:
		return fmt.Sprintf("%.1f deg", v.HeadingDeg)
	case cat021.TargetStatus:
		return fmt.Sprintf("ICF=%d LNAV=%d PS=%d SS=%d", v.ICF, v.LNAV, v.PS, v.SS)
	case cat021.VerticalRate:
		return fmt.Sprintf("%.1f ft/min", v.RateFtMin)
	case cat021.GroundVector:
		return fmt.Sprintf("GS=%.1f kt TA=%.1f deg", v.GroundSpeedKt, v.TrackAngleDeg)
	case cat021.TargetIdentification:
		return v.Callsign
	case cat021.EmitterCategory:
		return fmt.Sprintf("ECAT=%d", v.ECAT)
	case cat021.MetInformation:
		var parts []string
		if v.WindSpeedKt != nil {
			parts = append(parts, fmt.Sprintf("wind=%.0f kt", *v.WindSpeedKt))
		}
		if v.WindDirectionDeg != nil {
			parts = append(parts, fmt.Sprintf("dir=%.0f deg", *v.WindDirectionDeg))
		}
		if v.TemperatureC != nil {
			parts = append(parts, fmt.Sprintf("temp=%.2f C", *v.TemperatureC))
		}
		if v.Turbulence != nil {
			parts = append(parts, fmt.Sprintf("turb=%d", *v.Turbulence))
		}
		if len(parts) == 0 {
			return "empty"
		}
		return strings.Join(parts, " ")
	case cat021.SelectedAltitude:
		return fmt.Sprintf("%.0f ft (SAS=%d source=%d)", v.AltitudeFt, v.SAS, v.Source)
	case cat021.FinalStateSelectedAltitude:
		return fmt.Sprintf("%.0f ft (MV=%d AH=%d AM=%d)", v.AltitudeFt, v.MV, v.AH, v.AM)
	case cat021.ServiceManagement:
		return fmt.Sprintf("period=%.1f s", v.PeriodS)
	case cat021.OperationalStatus:
		return fmt.Sprintf("RA=%d TC=%d TS=%d ARV=%d CDTIA=%d", v.RA, v.TC, v.TS, v.ARV, v.CDTIA)
	case cat021.MessageAmplitude:
		return fmt.Sprintf("%d dBm", v.AmplitudeDBm)
	case cat021.ModeSMBData:
		return describeRegisters(int(v.Rep), regCodes(v.Registers))
	case cat021.ReceiverID:
		return fmt.Sprintf("ID=%d", v.ID)
	case cat021.ReservedExpansion:
		if v.BPS != nil {
			return fmt.Sprintf("BPS=%.1f hPa", *v.BPS)
		}
		return fmt.Sprintf("%d bytes", v.Length)
	}
	return fmt.Sprintf("%v", item.Value)
}

func describeRegisters(rep int, codes []string) string {
	if len(codes) == 0 {
		return fmt.Sprintf("%d registers", rep)
	}
	return fmt.Sprintf("%d registers: %s", rep, strings.Join(codes, " "))
}

func regCodes(regs []*bds.Register) []string {
	codes := make([]string, len(regs))
	for i, reg := range regs {
		codes[i] = reg.Code()
	}
	return codes
}
