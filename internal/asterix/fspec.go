package asterix

// ParseFSPEC walks the FSPEC octets at the start of raw and returns the
// announced items in FSPEC order plus the offset of the first payload byte.
//
// Bits 7..1 of each octet (MSB first) are presence flags for consecutive
// FRNs starting at 1; bit 0 is the FX extension flag. An FRN the UAP does
// not assign still consumes its bit position. The first octet with FX=0
// terminates the FSPEC.
func ParseFSPEC(raw []byte, cat Category) ([]ItemRef, int) {
	var refs []ItemRef
	frn := 1
	pos := 0

	for pos < len(raw) {
		octet := raw[pos]
		pos++

		for bit := 7; bit >= 1; bit-- {
			if octet&(1<<uint(bit)) != 0 {
				if t, ok := cat.ItemTypeForFRN(frn); ok {
					refs = append(refs, ItemRef{FRN: frn, Type: t})
				}
			}
			frn++
		}

		if octet&0x01 == 0 {
			break
		}
	}

	return refs, pos
}
