package sulid

// the bit layout here follows the SULID scheme, itself a blend of:
// ULID https://github.com/ulid/spec (48-bit millisecond timestamp, Crockford
// Base32 text form) and Twitter's `snowflake` worker identity suffix

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// TimeBits is the number of bits in the millisecond timestamp field.
	TimeBits = 48
	// RandomBits is the number of bits in the random field.
	RandomBits = 70
	// DataCenterBits is the number of bits in the V1 data center field.
	DataCenterBits = 5
	// MachineBits is the number of bits in the V1 machine field.
	MachineBits = 5
	// WorkerBits is the number of bits in the V2 worker field. It spans
	// the same low bits V1 splits into data center and machine.
	WorkerBits = DataCenterBits + MachineBits

	// EncodedSize is the length of a text encoded SULID.
	EncodedSize = ulid.EncodedSize

	randomShift = WorkerBits
	timeShift   = RandomBits + WorkerBits

	// MaxTimestamp is the largest millisecond timestamp a SULID can hold.
	// Larger inputs are truncated to this width.
	MaxTimestamp = uint64(1)<<TimeBits - 1

	MaxDataCenterID = uint8(1)<<DataCenterBits - 1
	MaxMachineID    = uint8(1)<<MachineBits - 1
	MaxWorkerID     = uint16(1)<<WorkerBits - 1

	maxRandomHi = uint64(1)<<(RandomBits-64) - 1
)

// MaxRandom is the largest value the random field can hold. Increment
// reports exhaustion once a value's random field reaches it.
var MaxRandom = Uint128{Hi: maxRandomHi, Lo: ^uint64(0)}

// Nil is the zero SULID, all 128 bits unset.
var Nil SULID

// SULID is a 128-bit lexicographically sortable identifier stored as 16
// big-endian bytes. The zero value is Nil. Values are immutable; every
// projection is a pure read of the packed bits.
type SULID ulid.ULID

// FromParts packs a V1 SULID from its fields. Each field is masked to its
// declared width; under the sulid_debug build tag out-of-range fields
// panic instead.
func FromParts(timestampMs uint64, random Uint128, dataCenterID uint8, machineID uint8) SULID {
	assertV1Parts(timestampMs, random, dataCenterID, machineID)
	suffix := uint64(dataCenterID&MaxDataCenterID)<<MachineBits |
		uint64(machineID&MaxMachineID)
	return pack(timestampMs, random, suffix)
}

// FromPartsV2 packs a V2 SULID, placing the 10-bit worker id where V1
// carries the data center and machine ids.
func FromPartsV2(timestampMs uint64, random Uint128, workerID uint16) SULID {
	assertV2Parts(timestampMs, random, workerID)
	return pack(timestampMs, random, uint64(workerID&MaxWorkerID))
}

func pack(timestampMs uint64, random Uint128, suffix uint64) SULID {
	ts := timestampMs & MaxTimestamp
	rhi := random.Hi & maxRandomHi
	rlo := random.Lo

	var id SULID
	binary.BigEndian.PutUint64(id[0:8],
		ts<<(64-TimeBits)|rhi<<randomShift|rlo>>(64-randomShift))
	binary.BigEndian.PutUint64(id[8:16], rlo<<randomShift|suffix)
	return id
}

// FromUint128 reinterprets a raw 128-bit value as a SULID.
func FromUint128(v Uint128) SULID {
	var id SULID
	binary.BigEndian.PutUint64(id[0:8], v.Hi)
	binary.BigEndian.PutUint64(id[8:16], v.Lo)
	return id
}

// FromBytes creates a SULID from a 16-byte big-endian array.
func FromBytes(b [16]byte) SULID {
	return SULID(b)
}

// Parse decodes a SULID from its 26 character text form. It fails with
// ulid.ErrDataSize when the input is not exactly EncodedSize bytes and
// ulid.ErrInvalidCharacters when the input contains a byte outside the
// Base32 alphabet. Malformed text never yields a partial value.
func Parse(s string) (SULID, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return Nil, err
	}
	return SULID(u), nil
}

// Uint128 returns the raw integer representation.
func (s SULID) Uint128() Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(s[0:8]),
		Lo: binary.BigEndian.Uint64(s[8:16]),
	}
}

// ToBytes returns the 16-byte big-endian array representation.
func (s SULID) ToBytes() [16]byte {
	return [16]byte(s)
}

// Bytes returns the raw 16 bytes, most significant first.
func (s SULID) Bytes() []byte {
	return ulid.ULID(s).Bytes()
}

// Timestamp returns the millisecond timestamp field.
func (s SULID) Timestamp() uint64 {
	return binary.BigEndian.Uint64(s[0:8]) >> (64 - TimeBits)
}

// Time returns the timestamp field as a time.Time, accurate to 1ms.
func (s SULID) Time() time.Time {
	return ulid.Time(s.Timestamp())
}

// Random returns the 70-bit random field.
func (s SULID) Random() Uint128 {
	hi := binary.BigEndian.Uint64(s[0:8])
	lo := binary.BigEndian.Uint64(s[8:16])
	return Uint128{
		Hi: (hi >> randomShift) & maxRandomHi,
		Lo: hi<<(64-randomShift) | lo>>randomShift,
	}
}

// DataCenterID returns the V1 data center field.
func (s SULID) DataCenterID() uint8 {
	return uint8(binary.BigEndian.Uint64(s[8:16])>>MachineBits) & MaxDataCenterID
}

// MachineID returns the V1 machine field.
func (s SULID) MachineID() uint8 {
	return uint8(binary.BigEndian.Uint64(s[8:16])) & MaxMachineID
}

// WorkerID returns the V2 worker field (V1's data center and machine ids
// read as one 10-bit value).
func (s SULID) WorkerID() uint16 {
	return uint16(binary.BigEndian.Uint64(s[8:16])) & MaxWorkerID
}

// IsNil reports whether all 128 bits are zero.
func (s SULID) IsNil() bool {
	return s == Nil
}

// Increment returns a copy of s with the random field incremented by one,
// leaving the timestamp and identity bits untouched. ok is false when the
// random field is already saturated, signaling exhaustion for that
// millisecond and identity.
func (s SULID) Increment() (next SULID, ok bool) {
	if s.Random() == MaxRandom {
		return Nil, false
	}
	v := s.Uint128()
	lo := v.Lo + 1<<randomShift
	if lo < v.Lo {
		v.Hi++
	}
	v.Lo = lo
	return FromUint128(v), true
}

// Compare returns -1, 0, 1 based on unsigned 128-bit (equivalently,
// byte-wise and text) ordering.
func (s SULID) Compare(other SULID) int {
	return bytes.Compare(s[:], other[:])
}

// String returns the canonical 26 character Crockford Base32 encoding.
func (s SULID) String() string {
	return ulid.ULID(s).String()
}

// AppendFormat appends the text encoding of s to dst and returns the
// extended buffer, avoiding the allocation String incurs when dst has
// EncodedSize spare capacity.
func (s SULID) AppendFormat(dst []byte) []byte {
	var buf [EncodedSize]byte
	ulid.ULID(s).MarshalTextTo(buf[:])
	return append(dst, buf[:]...)
}

// MarshalText implements encoding.TextMarshaler. It never fails.
func (s SULID) MarshalText() ([]byte, error) {
	return ulid.ULID(s).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler with the same error
// taxonomy as Parse.
func (s *SULID) UnmarshalText(v []byte) error {
	id, err := Parse(string(v))
	if err != nil {
		return err
	}
	*s = id
	return nil
}
