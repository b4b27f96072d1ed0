package model

import flatbuffers "github.com/google/flatbuffers/go"

// HasField reports whether the field in the given slot was written to the
// table. Slots are numbered from zero in declaration order.
func HasField(t flatbuffers.Table, slot int) bool {
	return t.Offset(flatbuffers.VOffsetT(4+2*slot)) != 0
}
