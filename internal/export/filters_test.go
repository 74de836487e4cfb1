package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goasterix/internal/asterix"
)

func TestFilters_Match(t *testing.T) {
	airborne := &Row{Category: asterix.Cat048, Airborne: bptr(true),
		Callsign: "KLM1234", FlightLevel: fptr(330.0), GroundSpeed: fptr(430.0)}
	ground := &Row{Category: asterix.Cat048, Airborne: bptr(false),
		FlightLevel: fptr(0.0), GroundSpeed: fptr(12.0)}
	unknown := &Row{Category: asterix.Cat048}
	positioned := &Row{Category: asterix.Cat021,
		Latitude: fptr(52.3), Longitude: fptr(4.8), GroundBit: true}

	tests := []struct {
		name    string
		filters Filters
		row     *Row
		want    bool
	}{
		{"no filters pass everything", Filters{}, unknown, true},
		{"airborne passes airborne", Filters{Airborne: true}, airborne, true},
		{"airborne drops ground", Filters{Airborne: true}, ground, false},
		{"airborne drops unknown", Filters{Airborne: true}, unknown, false},
		{"ground passes ground", Filters{Ground: true}, ground, true},
		{"ground drops airborne", Filters{Ground: true}, airborne, false},
		{"min fl passes", Filters{MinFL: fptr(100.0)}, airborne, true},
		{"min fl drops low", Filters{MinFL: fptr(100.0)}, ground, false},
		{"min fl drops missing", Filters{MinFL: fptr(100.0)}, unknown, false},
		{"max fl drops high", Filters{MaxFL: fptr(100.0)}, airborne, false},
		{"callsign substring", Filters{Callsign: "klm"}, airborne, true},
		{"callsign mismatch", Filters{Callsign: "BAW"}, airborne, false},
		{"min speed passes", Filters{MinSpeedKt: fptr(400.0)}, airborne, true},
		{"max speed drops fast", Filters{MaxSpeedKt: fptr(400.0)}, airborne, false},
		{"bounds inside", Filters{Bounds: &Box{52.0, 53.0, 4.0, 5.0}}, positioned, true},
		{"bounds outside", Filters{Bounds: &Box{40.0, 41.0, 4.0, 5.0}}, positioned, false},
		{"bounds drops missing position", Filters{Bounds: &Box{40.0, 60.0, 0.0, 10.0}}, airborne, false},
		{"exclude ground bit", Filters{ExcludeGroundBit: true}, positioned, false},
		{"exclude ground bit keeps others", Filters{ExcludeGroundBit: true}, airborne, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filters.Match(tc.row))
		})
	}
}

func TestFilters_ApplyPreservesOrder(t *testing.T) {
	rows := []*Row{
		{Callsign: "AAA1"},
		{Callsign: "BBB2"},
		{Callsign: "AAA3"},
	}
	f := Filters{Callsign: "AAA"}

	got := f.Apply(rows)
	assert.Len(t, got, 2)
	assert.Equal(t, "AAA1", got[0].Callsign)
	assert.Equal(t, "AAA3", got[1].Callsign)
}

func TestSummarize(t *testing.T) {
	rows := []*Row{
		{Address: "4CA1D2", Airborne: bptr(true), FlightLevel: fptr(330.0), GroundSpeed: fptr(430.0)},
		{Address: "4CA1D2", Airborne: bptr(true), FlightLevel: fptr(110.0), GroundSpeed: fptr(250.0)},
		{Address: "3C660C", Airborne: bptr(false)},
		{Address: ""},
	}

	s := Summarize(rows)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.UniqueAircraft)
	assert.Equal(t, 2, s.Airborne)
	assert.Equal(t, 1, s.OnGround)
	assert.InDelta(t, 22000.0, s.MeanAltitudeFt, 1e-9)
	assert.InDelta(t, 340.0, s.MeanSpeedKt, 1e-9)
	assert.InDelta(t, 110.0, s.MinFL, 1e-9)
	assert.InDelta(t, 330.0, s.MaxFL, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.UniqueAircraft)
	assert.Zero(t, s.MeanAltitudeFt)
	assert.Zero(t, s.MinFL)
	assert.Zero(t, s.MaxFL)
}
