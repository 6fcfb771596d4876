package sulid

// Uint128 is the raw integer representation of a SULID, most significant
// 64 bits in Hi.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Compare returns -1, 0, 1 based on unsigned 128-bit comparison.
func (u Uint128) Compare(other Uint128) int {
	switch {
	case u.Hi < other.Hi:
		return -1
	case u.Hi > other.Hi:
		return 1
	case u.Lo < other.Lo:
		return -1
	case u.Lo > other.Lo:
		return 1
	}
	return 0
}
