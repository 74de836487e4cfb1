package export

import "strings"

// Box is a geographic bounding box in degrees.
type Box struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(lat, lon float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lon >= b.LonMin && lon <= b.LonMax
}

// Filters selects rows for export. Zero-valued fields are inactive. A row
// must satisfy every active condition; rows lacking a field an active
// condition needs are dropped.
type Filters struct {
	Airborne bool // rows known airborne (CAT048 STAT 0/2, CAT021 GBS=0)
	Ground   bool // rows known on ground (CAT048 STAT 1/3, CAT021 GBS=1)

	MinFL *float64
	MaxFL *float64

	Callsign string // case-insensitive substring

	MinSpeedKt *float64
	MaxSpeedKt *float64

	Bounds *Box // positions only, so effectively CAT021

	ExcludeGroundBit bool // drop CAT021 rows with GBS=1
}

// Match reports whether the row passes all active conditions.
func (f *Filters) Match(r *Row) bool {
	if f.Airborne && (r.Airborne == nil || !*r.Airborne) {
		return false
	}
	if f.Ground && (r.Airborne == nil || *r.Airborne) {
		return false
	}
	if f.MinFL != nil && (r.FlightLevel == nil || *r.FlightLevel < *f.MinFL) {
		return false
	}
	if f.MaxFL != nil && (r.FlightLevel == nil || *r.FlightLevel > *f.MaxFL) {
		return false
	}
	if f.Callsign != "" &&
		!strings.Contains(strings.ToLower(r.Callsign), strings.ToLower(f.Callsign)) {
		return false
	}
	if f.MinSpeedKt != nil && (r.GroundSpeed == nil || *r.GroundSpeed < *f.MinSpeedKt) {
		return false
	}
	if f.MaxSpeedKt != nil && (r.GroundSpeed == nil || *r.GroundSpeed > *f.MaxSpeedKt) {
		return false
	}
	if f.Bounds != nil {
		if r.Latitude == nil || r.Longitude == nil {
			return false
		}
		if !f.Bounds.Contains(*r.Latitude, *r.Longitude) {
			return false
		}
	}
	if f.ExcludeGroundBit && r.GroundBit {
		return false
	}
	return true
}

// Apply returns the rows passing Match, preserving order.
func (f *Filters) Apply(rows []*Row) []*Row {
	out := make([]*Row, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
