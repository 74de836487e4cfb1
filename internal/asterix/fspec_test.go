package asterix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFSPEC_SingleOctet tests FSPEC parsing with one octet
func TestParseFSPEC_SingleOctet(t *testing.T) {
	tests := []struct {
		name          string
		raw           []byte
		cat           Category
		wantFRNs      []int
		wantTypes     []ItemType
		wantDataStart int
	}{
		{
			name:          "First seven items present",
			raw:           []byte{0xFE},
			cat:           Cat048,
			wantFRNs:      []int{1, 2, 3, 4, 5, 6, 7},
			wantTypes:     []ItemType{Cat048DataSource, Cat048TimeOfDay, Cat048TargetReportDescriptor, Cat048MeasuredPositionPolar, Cat048Mode3ACode, Cat048FlightLevel, Cat048RadarPlotCharacteristics},
			wantDataStart: 1,
		},
		{
			name:          "Only first item present",
			raw:           []byte{0x80},
			cat:           Cat048,
			wantFRNs:      []int{1},
			wantTypes:     []ItemType{Cat048DataSource},
			wantDataStart: 1,
		},
		{
			name:          "No items present",
			raw:           []byte{0x00},
			cat:           Cat048,
			wantFRNs:      nil,
			wantTypes:     nil,
			wantDataStart: 1,
		},
		{
			name:          "Sparse items one and five",
			raw:           []byte{0x88},
			cat:           Cat048,
			wantFRNs:      []int{1, 5},
			wantTypes:     []ItemType{Cat048DataSource, Cat048Mode3ACode},
			wantDataStart: 1,
		},
		{
			name:          "CAT021 data source",
			raw:           []byte{0x80},
			cat:           Cat021,
			wantFRNs:      []int{1},
			wantTypes:     []ItemType{Cat021DataSource},
			wantDataStart: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, dataStart := ParseFSPEC(tt.raw, tt.cat)

			assert.Equal(t, tt.wantDataStart, dataStart)
			require.Len(t, refs, len(tt.wantFRNs))
			for i, ref := range refs {
				assert.Equal(t, tt.wantFRNs[i], ref.FRN)
				assert.Equal(t, tt.wantTypes[i], ref.Type)
			}
		})
	}
}

// TestParseFSPEC_Extension tests FX-chained FSPEC octets
func TestParseFSPEC_Extension(t *testing.T) {
	tests := []struct {
		name          string
		raw           []byte
		cat           Category
		wantFRNs      []int
		wantDataStart int
	}{
		{
			name:          "Second octet item",
			raw:           []byte{0x01, 0x80},
			cat:           Cat048,
			wantFRNs:      []int{8},
			wantDataStart: 2,
		},
		{
			name:          "Items across two octets",
			raw:           []byte{0xFF, 0x80},
			cat:           Cat048,
			wantFRNs:      []int{1, 2, 3, 4, 5, 6, 7, 8},
			wantDataStart: 2,
		},
		{
			name:          "Three octet chain",
			raw:           []byte{0x01, 0x01, 0x80},
			cat:           Cat048,
			wantFRNs:      []int{15},
			wantDataStart: 3,
		},
		{
			name:          "Trailing payload not consumed",
			raw:           []byte{0x80, 0x2A, 0x0F},
			cat:           Cat048,
			wantFRNs:      []int{1},
			wantDataStart: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, dataStart := ParseFSPEC(tt.raw, tt.cat)

			assert.Equal(t, tt.wantDataStart, dataStart)
			require.Len(t, refs, len(tt.wantFRNs))
			for i, ref := range refs {
				assert.Equal(t, tt.wantFRNs[i], ref.FRN)
			}
		})
	}
}

// TestParseFSPEC_UnknownFRN verifies that an FRN without a UAP assignment
// consumes its bit position but contributes no item
func TestParseFSPEC_UnknownFRN(t *testing.T) {
	// CAT048 assigns FRNs 1-21 only; bit for FRN 22 sits in the fourth octet
	raw := []byte{0x01, 0x01, 0x01, 0x80}

	refs, dataStart := ParseFSPEC(raw, Cat048)

	assert.Empty(t, refs)
	assert.Equal(t, 4, dataStart)
}

// TestParseFSPEC_Monotonic verifies returned FRNs are strictly increasing
func TestParseFSPEC_Monotonic(t *testing.T) {
	raw := []byte{0xFF, 0xFF, 0xFE}

	refs, dataStart := ParseFSPEC(raw, Cat048)

	assert.Equal(t, 3, dataStart)
	require.NotEmpty(t, refs)
	for i := 1; i < len(refs); i++ {
		assert.Greater(t, refs[i].FRN, refs[i-1].FRN,
			"FRN order must be strictly increasing")
	}
	// CAT048 assigns all 21 FRNs announced by three full octets
	assert.Len(t, refs, 21)
}

// TestParseFSPEC_EmptyData tests FSPEC parsing with no bytes
func TestParseFSPEC_EmptyData(t *testing.T) {
	refs, dataStart := ParseFSPEC(nil, Cat048)

	assert.Empty(t, refs)
	assert.Equal(t, 0, dataStart)
}

// TestCategoryFromByte tests wire byte to category mapping
func TestCategoryFromByte(t *testing.T) {
	tests := []struct {
		name   string
		b      byte
		want   Category
		wantOK bool
	}{
		{name: "CAT021", b: 21, want: Cat021, wantOK: true},
		{name: "CAT048", b: 48, want: Cat048, wantOK: true},
		{name: "Unsupported CAT062", b: 62, wantOK: false},
		{name: "Zero byte", b: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CategoryFromByte(tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// TestItemTypeForFRN tests UAP lookups at the table edges
func TestItemTypeForFRN(t *testing.T) {
	tests := []struct {
		name   string
		cat    Category
		frn    int
		want   ItemType
		wantOK bool
	}{
		{name: "CAT048 first", cat: Cat048, frn: 1, want: Cat048DataSource, wantOK: true},
		{name: "CAT048 last", cat: Cat048, frn: 21, want: Cat048CommunicationsACAS, wantOK: true},
		{name: "CAT048 beyond UAP", cat: Cat048, frn: 22, wantOK: false},
		{name: "CAT021 last regular", cat: Cat021, frn: 42, want: Cat021DataAges, wantOK: true},
		{name: "CAT021 spare", cat: Cat021, frn: 43, wantOK: false},
		{name: "CAT021 reserved expansion", cat: Cat021, frn: 48, want: Cat021ReservedExpansion, wantOK: true},
		{name: "Zero FRN", cat: Cat048, frn: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cat.ItemTypeForFRN(tt.frn)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
