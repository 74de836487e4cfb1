// Package qnh corrects barometric flight levels into locally calibrated
// altitudes below the transition altitude.
package qnh

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// TransitionAltitudeFt is the altitude at and above which standard
	// pressure applies and no correction is made.
	TransitionAltitudeFt = 6000.0

	// StandardPressureHPa is the ISA standard pressure setting.
	StandardPressureHPa = 1013.25

	// ftPerHPa approximates the altitude change per hPa of pressure
	// deviation near sea level.
	ftPerHPa = 30.0

	// adoptToleranceHPa is how far a reported setting must deviate from
	// standard before it is treated as a local QNH.
	adoptToleranceHPa = 0.25
)

// Result is the outcome of one correction. Corrected reports whether a
// local QNH was applied to AltitudeFt.
type Result struct {
	AltitudeFt float64
	Corrected  bool
}

// Corrector converts flight levels into altitudes, remembering the last
// non-standard barometric setting seen per aircraft so the correction
// survives records that carry no fresh pressure value.
//
// Calls must be made in non-decreasing time order per aircraft; the
// corrector does not enforce ordering itself. It is not safe for
// concurrent use.
type Corrector struct {
	logger  *logrus.Logger
	lastQNH map[string]float64
}

// NewCorrector creates a Corrector writing diagnostics to logger.
func NewCorrector(logger *logrus.Logger) *Corrector {
	return &Corrector{
		logger:  logger,
		lastQNH: make(map[string]float64),
	}
}

// Correct derives an altitude from flightLevel for the given aircraft.
// A nil flightLevel produces no altitude (ok=false). At or above the
// transition altitude the stored QNH for the aircraft is dropped and the
// altitude returned unchanged. Below it, a pressureHPa deviating from
// standard is adopted and persisted; otherwise a previously stored QNH is
// reused. Without either, the uncorrected altitude is returned.
func (c *Corrector) Correct(aircraft string, flightLevel, pressureHPa *float64) (Result, bool) {
	if flightLevel == nil {
		return Result{}, false
	}
	altitude := *flightLevel * 100.0
	if altitude >= TransitionAltitudeFt {
		delete(c.lastQNH, aircraft)
		return Result{AltitudeFt: altitude}, true
	}

	qnh, have := c.lastQNH[aircraft]
	if pressureHPa != nil && math.Abs(*pressureHPa-StandardPressureHPa) > adoptToleranceHPa {
		qnh, have = *pressureHPa, true
		c.lastQNH[aircraft] = qnh
		c.logger.WithFields(logrus.Fields{
			"aircraft": aircraft,
			"qnh":      qnh,
		}).Debug("Adopted local QNH")
	}
	if !have {
		return Result{AltitudeFt: altitude}, true
	}
	return Result{
		AltitudeFt: altitude + (qnh-StandardPressureHPa)*ftPerHPa,
		Corrected:  true,
	}, true
}

// TrackedAircraft returns how many aircraft currently hold a stored QNH.
func (c *Corrector) TrackedAircraft() int {
	return len(c.lastQNH)
}
