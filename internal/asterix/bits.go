package asterix

import (
	"fmt"
	"math"
	"strings"
)

// IA5Charset is the 6-bit character subset used for aircraft identification
// items: index 1-26 are 'A'-'Z', 32 is space, 48-57 are '0'-'9'.
const IA5Charset = "@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_ !\"#$%&'()*+,-./0123456789:;<=>?"

// DecodeIA5 unpacks eight 6-bit characters from 6 bytes and returns the
// callsign with undefined code points replaced by spaces and trailing
// spaces trimmed.
func DecodeIA5(data []byte) string {
	if len(data) < 6 {
		return ""
	}

	var bits uint64
	for i := 0; i < 6; i++ {
		bits = bits<<8 | uint64(data[i])
	}

	var out [8]byte
	for i := 0; i < 8; i++ {
		code := byte(bits>>(uint(7-i)*6)) & 0x3F
		ch := IA5Charset[code]
		if !(ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == ' ') {
			ch = ' '
		}
		out[i] = ch
	}

	return strings.TrimRight(string(out[:]), " ")
}

// TwosComplement interprets the low width bits of raw as a signed value.
func TwosComplement(raw uint64, width int) int64 {
	if raw&(1<<uint(width-1)) != 0 {
		return int64(raw) - (1 << uint(width))
	}
	return int64(raw)
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// TimeOfDayString renders seconds since midnight as "HH:MM:SS.mmm".
func TimeOfDayString(totalSeconds float64) string {
	hours := int(totalSeconds) / 3600
	minutes := (int(totalSeconds) % 3600) / 60
	seconds := math.Mod(totalSeconds, 60.0)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, seconds)
}
