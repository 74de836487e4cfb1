package asterix

import "fmt"

// Category identifies an ASTERIX data category.
type Category uint8

// Supported ASTERIX categories
const (
	Cat021 Category = 21 // ADS-B target reports
	Cat048 Category = 48 // Monoradar target reports
)

// CategoryFromByte maps a wire category byte to a supported Category.
func CategoryFromByte(b byte) (Category, bool) {
	switch Category(b) {
	case Cat021:
		return Cat021, true
	case Cat048:
		return Cat048, true
	}
	return 0, false
}

func (c Category) String() string {
	switch c {
	case Cat021:
		return "CAT021"
	case Cat048:
		return "CAT048"
	}
	return fmt.Sprintf("CAT%03d", uint8(c))
}
