package asterix

// Item is one decoded data item within a record. Value holds a typed struct
// specific to the item type; consumers type-switch on it.
type Item struct {
	Offset int // byte offset within Record.RawData
	Length int // item length in bytes
	FRN    int // 1-based FSPEC field reference number
	Type   ItemType
	Value  any
}

// Record is one framed ASTERIX record. RawData is the payload after the
// 3-byte header (category + length) and must not be modified; Items is
// populated exactly once by a category decoder.
type Record struct {
	Category    Category
	Length      int    // total record length including the 3-byte header
	RawData     []byte // Length-3 payload bytes
	BlockOffset int64  // file offset of the record's category byte
	Items       []Item
}

// ItemRef names one FSPEC-announced item: its FRN and the item type the
// category UAP assigns to that FRN.
type ItemRef struct {
	FRN  int
	Type ItemType
}
