package export

// Stats summarizes a set of flattened rows.
type Stats struct {
	Total          int
	UniqueAircraft int
	Airborne       int
	OnGround       int
	MeanAltitudeFt float64 // over rows with a flight level
	MeanSpeedKt    float64 // over rows with a ground speed
	MinFL          float64 // zero when no flight level seen
	MaxFL          float64
}

// Summarize computes aggregate statistics over rows.
func Summarize(rows []*Row) Stats {
	var s Stats
	s.Total = len(rows)

	aircraft := make(map[string]bool)
	var altSum, speedSum float64
	var altN, speedN int
	for _, r := range rows {
		if r.Address != "" {
			aircraft[r.Address] = true
		}
		if r.Airborne != nil {
			if *r.Airborne {
				s.Airborne++
			} else {
				s.OnGround++
			}
		}
		if r.FlightLevel != nil {
			fl := *r.FlightLevel
			altSum += fl * 100.0
			altN++
			if altN == 1 || fl < s.MinFL {
				s.MinFL = fl
			}
			if altN == 1 || fl > s.MaxFL {
				s.MaxFL = fl
			}
		}
		if r.GroundSpeed != nil {
			speedSum += *r.GroundSpeed
			speedN++
		}
	}
	s.UniqueAircraft = len(aircraft)
	if altN > 0 {
		s.MeanAltitudeFt = altSum / float64(altN)
	}
	if speedN > 0 {
		s.MeanSpeedKt = speedSum / float64(speedN)
	}
	return s
}
